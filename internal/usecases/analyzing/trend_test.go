package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

func TestService_RevenueTrend(t *testing.T) {
	service := newTestService(&domain.Dataset{
		Deals: []domain.Deal{
			{
				DealID:    "D1",
				Stage:     domain.StageClosedWon,
				Amount:    floatPtr(60000),
				CreatedAt: domain.NewDate(2025, 1, 10),
				ClosedAt:  datePtr(domain.NewDate(2025, 3, 10)),
			},
			{
				DealID:    "D2",
				Stage:     domain.StageClosedWon,
				Amount:    floatPtr(75000),
				CreatedAt: domain.NewDate(2025, 4, 1),
				ClosedAt:  datePtr(domain.NewDate(2025, 6, 20)),
			},
			// Receita sem meta no mês: atingimento zero, nunca divisão por zero.
			{
				DealID:    "D3",
				Stage:     domain.StageClosedWon,
				Amount:    floatPtr(10000),
				CreatedAt: domain.NewDate(2025, 1, 5),
				ClosedAt:  datePtr(domain.NewDate(2025, 2, 14)),
			},
			// Perdida e ganha sem valor não entram na receita.
			{
				DealID:    "D4",
				Stage:     domain.StageClosedLost,
				Amount:    floatPtr(99999),
				CreatedAt: domain.NewDate(2025, 2, 1),
				ClosedAt:  datePtr(domain.NewDate(2025, 3, 15)),
			},
			{
				DealID:    "D5",
				Stage:     domain.StageClosedWon,
				Amount:    nil,
				CreatedAt: domain.NewDate(2025, 5, 1),
				ClosedAt:  datePtr(domain.NewDate(2025, 6, 25)),
			},
		},
		Targets: []domain.Target{
			{Month: "2025-03", Target: 50000},
			{Month: "2025-06", Target: 100000},
			{Month: "2025-06", Target: 50000}, // duplicada: soma
		},
	})

	trend, err := service.RevenueTrend()
	require.NoError(t, err)

	months := trend.Months
	require.Len(t, months, 6)

	labels := make([]string, 0, len(months))
	for _, m := range months {
		labels = append(labels, m.Month)
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, labels)

	// Janeiro: sem receita e sem meta.
	assert.Equal(t, 0.0, months[0].Revenue)
	assert.Equal(t, 0.0, months[0].Target)
	assert.Equal(t, 0.0, months[0].Achieved)

	// Fevereiro: receita sem meta.
	assert.Equal(t, 10000.0, months[1].Revenue)
	assert.Equal(t, 0.0, months[1].Achieved)

	// Março: 60000 sobre meta de 50000.
	assert.Equal(t, 60000.0, months[2].Revenue)
	assert.Equal(t, 50000.0, months[2].Target)
	assert.Equal(t, 120.0, months[2].Achieved)

	// Junho: metas duplicadas somadas.
	assert.Equal(t, 75000.0, months[5].Revenue)
	assert.Equal(t, 150000.0, months[5].Target)
	assert.Equal(t, 50.0, months[5].Achieved)
}
