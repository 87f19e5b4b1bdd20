package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

func TestService_Summary(t *testing.T) {
	t.Run("Receita, meta e gap do trimestre de referência", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Deals: []domain.Deal{
				{
					DealID:    "D1",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(100000),
					CreatedAt: domain.NewDate(2025, 5, 1),
					ClosedAt:  datePtr(domain.NewDate(2025, 6, 15)),
				},
			},
			Targets: []domain.Target{
				{Month: "2025-06", Target: 90000},
			},
		})

		summary, err := service.Summary()
		require.NoError(t, err)

		assert.Equal(t, 100000.0, summary.CurrentQuarterRevenue)
		assert.Equal(t, 90000.0, summary.Target)
		assert.Equal(t, 10000.0, summary.Gap)
		assert.Equal(t, 11.1, summary.GapPercentage)
		// Trimestre anterior sem receita: variação zero, nunca divisão por zero.
		assert.Equal(t, 0.0, summary.QoQChange)
	})

	t.Run("Variação trimestre a trimestre", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Deals: []domain.Deal{
				{
					DealID:    "D1",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(100000),
					CreatedAt: domain.NewDate(2025, 5, 1),
					ClosedAt:  datePtr(domain.NewDate(2025, 6, 15)),
				},
				{
					DealID:    "D2",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(50000),
					CreatedAt: domain.NewDate(2025, 1, 10),
					ClosedAt:  datePtr(domain.NewDate(2025, 2, 10)),
				},
			},
			Targets: []domain.Target{
				{Month: "2025-06", Target: 90000},
			},
		})

		summary, err := service.Summary()
		require.NoError(t, err)

		assert.Equal(t, 100.0, summary.QoQChange)
	})

	t.Run("Metas duplicadas do mesmo mês somam", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Targets: []domain.Target{
				{Month: "2025-06", Target: 90000},
				{Month: "2025-06", Target: 10000},
				{Month: "2025-04", Target: 20000},
				{Month: "2025-01", Target: 99999}, // fora do trimestre de referência
			},
		})

		summary, err := service.Summary()
		require.NoError(t, err)

		assert.Equal(t, 120000.0, summary.Target)
	})

	t.Run("Limites do trimestre são inclusivos", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Deals: []domain.Deal{
				{
					DealID:    "D1",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(30000),
					CreatedAt: domain.NewDate(2025, 3, 1),
					ClosedAt:  datePtr(domain.NewDate(2025, 4, 1)), // primeiro dia do trimestre
				},
				{
					DealID:    "D2",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(40000),
					CreatedAt: domain.NewDate(2025, 2, 1),
					ClosedAt:  datePtr(domain.NewDate(2025, 3, 31)), // trimestre anterior
				},
			},
			Targets: []domain.Target{
				{Month: "2025-06", Target: 90000},
			},
		})

		summary, err := service.Summary()
		require.NoError(t, err)

		assert.Equal(t, 30000.0, summary.CurrentQuarterRevenue)
	})

	t.Run("Ganhos sem valor ou sem data de fechamento ficam fora da receita", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Deals: []domain.Deal{
				{
					DealID:    "D1",
					Stage:     domain.StageClosedWon,
					Amount:    nil,
					CreatedAt: domain.NewDate(2025, 5, 1),
					ClosedAt:  datePtr(domain.NewDate(2025, 6, 15)),
				},
				{
					DealID:    "D2",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(25000),
					CreatedAt: domain.NewDate(2025, 5, 1),
					ClosedAt:  nil,
				},
			},
			Targets: []domain.Target{
				{Month: "2025-06", Target: 50000},
			},
		})

		summary, err := service.Summary()
		require.NoError(t, err)

		assert.Equal(t, 0.0, summary.CurrentQuarterRevenue)
		assert.Equal(t, -50000.0, summary.Gap)
		assert.Equal(t, -100.0, summary.GapPercentage)
	})

	t.Run("Meta zerada produz gap percentual zero", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Deals: []domain.Deal{
				{
					DealID:    "D1",
					Stage:     domain.StageClosedWon,
					Amount:    floatPtr(10000),
					CreatedAt: domain.NewDate(2025, 5, 1),
					ClosedAt:  datePtr(domain.NewDate(2025, 6, 15)),
				},
			},
			Targets: []domain.Target{
				{Month: "2025-06", Target: 0},
			},
		})

		summary, err := service.Summary()
		require.NoError(t, err)

		assert.Equal(t, 0.0, summary.GapPercentage)
	})
}
