package analyzing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// referenceTargets ancora a data de referência em junho/2025.
func referenceTargets() []domain.Target {
	return []domain.Target{{Month: "2025-06", Target: 100000}}
}

func TestService_RiskFactorsStaleDeals(t *testing.T) {
	service := newTestService(&domain.Dataset{
		Deals: []domain.Deal{
			// Conta desconhecida: só entra pelo valor acima do limiar.
			{
				DealID:    "D1",
				AccountID: "A-missing",
				RepID:     "R-missing",
				Stage:     "Proposal",
				Amount:    floatPtr(60000),
				CreatedAt: domain.NewDate(2025, 4, 1),
			},
			// Enterprise abaixo do limiar: entra pelo segmento.
			{
				DealID:    "D2",
				AccountID: "A1",
				RepID:     "R1",
				Stage:     "Negotiation",
				Amount:    floatPtr(40000),
				CreatedAt: domain.NewDate(2025, 4, 1),
			},
			// SMB abaixo do limiar: fica de fora.
			{
				DealID:    "D3",
				AccountID: "A2",
				RepID:     "R1",
				Stage:     "Proposal",
				Amount:    floatPtr(40000),
				CreatedAt: domain.NewDate(2025, 4, 1),
			},
			// Parada há exatamente 30 dias: o corte é estrito.
			{
				DealID:    "D4",
				AccountID: "A1",
				RepID:     "R1",
				Stage:     "Proposal",
				Amount:    floatPtr(90000),
				CreatedAt: domain.NewDate(2025, 5, 2),
			},
			// Sem valor: excluída antes de qualquer filtro.
			{
				DealID:    "D5",
				AccountID: "A1",
				RepID:     "R1",
				Stage:     "Proposal",
				Amount:    nil,
				CreatedAt: domain.NewDate(2025, 4, 1),
			},
			// Encerrada: nunca é considerada parada.
			{
				DealID:    "D6",
				AccountID: "A1",
				RepID:     "R1",
				Stage:     domain.StageClosedWon,
				Amount:    floatPtr(100000),
				CreatedAt: domain.NewDate(2025, 1, 1),
				ClosedAt:  datePtr(domain.NewDate(2025, 2, 1)),
			},
		},
		Targets: referenceTargets(),
		Reps: []domain.Rep{
			{RepID: "R1", Name: "Ana Souza"},
		},
		Accounts: []domain.Account{
			{AccountID: "A1", Name: "Acme Corp", Segment: "Enterprise"},
			{AccountID: "A2", Name: "Loja Pequena", Segment: "SMB"},
		},
	})

	riskFactors, err := service.RiskFactors()
	require.NoError(t, err)

	staleDeals := riskFactors.StaleDeals
	require.Len(t, staleDeals, 2)

	// Ordenadas por valor decrescente.
	assert.Equal(t, "D1", staleDeals[0].DealID)
	assert.Equal(t, 60000.0, staleDeals[0].Value)
	assert.Equal(t, "Unknown", staleDeals[0].AccountName)
	assert.Equal(t, "Unknown", staleDeals[0].Segment)
	assert.Equal(t, "Unknown", staleDeals[0].RepName)
	assert.Equal(t, 61, staleDeals[0].DaysStale)

	assert.Equal(t, "D2", staleDeals[1].DealID)
	assert.Equal(t, "Acme Corp", staleDeals[1].AccountName)
	assert.Equal(t, "Enterprise", staleDeals[1].Segment)
	assert.Equal(t, "Ana Souza", staleDeals[1].RepName)
}

func TestService_RiskFactorsStaleDealsLimit(t *testing.T) {
	deals := make([]domain.Deal, 0, 12)
	for i := 0; i < 12; i++ {
		deals = append(deals, domain.Deal{
			DealID:    fmt.Sprintf("D%02d", i),
			AccountID: "A-missing",
			Stage:     "Proposal",
			Amount:    floatPtr(60000 + float64(i)*1000),
			CreatedAt: domain.NewDate(2025, 3, 1),
		})
	}

	service := newTestService(&domain.Dataset{
		Deals:   deals,
		Targets: referenceTargets(),
	})

	riskFactors, err := service.RiskFactors()
	require.NoError(t, err)

	require.Len(t, riskFactors.StaleDeals, 10)
	assert.Equal(t, 71000.0, riskFactors.StaleDeals[0].Value)
}

// makeRepDeals gera oportunidades encerradas com a proporção de ganhos pedida.
func makeRepDeals(repID string, won, lost int) []domain.Deal {
	deals := make([]domain.Deal, 0, won+lost)
	for i := 0; i < won; i++ {
		deals = append(deals, domain.Deal{
			DealID:    fmt.Sprintf("%s-won-%d", repID, i),
			RepID:     repID,
			Stage:     domain.StageClosedWon,
			Amount:    floatPtr(10000),
			CreatedAt: domain.NewDate(2025, 1, 1),
			ClosedAt:  datePtr(domain.NewDate(2025, 2, 1)),
		})
	}
	for i := 0; i < lost; i++ {
		deals = append(deals, domain.Deal{
			DealID:    fmt.Sprintf("%s-lost-%d", repID, i),
			RepID:     repID,
			Stage:     domain.StageClosedLost,
			Amount:    floatPtr(10000),
			CreatedAt: domain.NewDate(2025, 1, 1),
			ClosedAt:  datePtr(domain.NewDate(2025, 2, 1)),
		})
	}
	return deals
}

func TestService_RiskFactorsUnderperformingReps(t *testing.T) {
	t.Run("Abaixo da média dos elegíveis, do pior para o melhor", func(t *testing.T) {
		var deals []domain.Deal
		deals = append(deals, makeRepDeals("R1", 8, 2)...) // 80%
		deals = append(deals, makeRepDeals("R2", 7, 3)...) // 70%
		deals = append(deals, makeRepDeals("R3", 6, 4)...) // 60%
		deals = append(deals, makeRepDeals("R4", 5, 5)...) // 50%
		deals = append(deals, makeRepDeals("R5", 4, 6)...) // 40%
		// Abaixo do mínimo de oportunidades: não entra nem na média.
		deals = append(deals, makeRepDeals("R6", 0, 4)...)

		service := newTestService(&domain.Dataset{
			Deals:   deals,
			Targets: referenceTargets(),
			Reps: []domain.Rep{
				{RepID: "R1", Name: "Rep Um"},
				{RepID: "R2", Name: "Rep Dois"},
				{RepID: "R3", Name: "Rep Três"},
				{RepID: "R4", Name: "Rep Quatro"},
				{RepID: "R5", Name: "Rep Cinco"},
				{RepID: "R6", Name: "Rep Seis"},
			},
		})

		riskFactors, err := service.RiskFactors()
		require.NoError(t, err)

		// Média dos elegíveis: 60%. R3 não está estritamente abaixo.
		reps := riskFactors.UnderperformingReps
		require.Len(t, reps, 2)
		assert.Equal(t, "R5", reps[0].RepID)
		assert.Equal(t, 40.0, reps[0].WinRate)
		assert.Equal(t, 10, reps[0].DealsWorked)
		assert.Equal(t, "R4", reps[1].RepID)
		assert.Equal(t, 50.0, reps[1].WinRate)
	})

	t.Run("Nenhum vendedor elegível devolve lista vazia", func(t *testing.T) {
		service := newTestService(&domain.Dataset{
			Deals:   makeRepDeals("R1", 2, 2),
			Targets: referenceTargets(),
			Reps:    []domain.Rep{{RepID: "R1", Name: "Rep Um"}},
		})

		riskFactors, err := service.RiskFactors()
		require.NoError(t, err)

		assert.Empty(t, riskFactors.UnderperformingReps)
	})
}

func TestService_RiskFactorsLowActivityAccounts(t *testing.T) {
	service := newTestService(&domain.Dataset{
		Deals: []domain.Deal{
			// Atividade recente: a conta sai da lista.
			{
				DealID:    "D1",
				AccountID: "A1",
				RepID:     "R1",
				Stage:     "Proposal",
				Amount:    floatPtr(20000),
				CreatedAt: domain.NewDate(2025, 3, 1),
			},
			// Atividade antiga demais: continua ociosa.
			{
				DealID:    "D2",
				AccountID: "A2",
				RepID:     "R1",
				Stage:     "Negotiation",
				Amount:    floatPtr(30000),
				CreatedAt: domain.NewDate(2025, 3, 1),
			},
			// Sem valor: conta no total como zero, mas conta como aberta.
			{
				DealID:    "D3",
				AccountID: "A2",
				RepID:     "R2",
				Stage:     "Discovery",
				Amount:    nil,
				CreatedAt: domain.NewDate(2025, 4, 1),
			},
			// Sem nenhuma atividade.
			{
				DealID:    "D4",
				AccountID: "A3",
				RepID:     "R2",
				Stage:     "Proposal",
				Amount:    floatPtr(50000),
				CreatedAt: domain.NewDate(2025, 4, 1),
			},
			// Encerrada: ignorada.
			{
				DealID:    "D5",
				AccountID: "A4",
				RepID:     "R1",
				Stage:     domain.StageClosedLost,
				Amount:    floatPtr(10000),
				CreatedAt: domain.NewDate(2025, 1, 1),
				ClosedAt:  datePtr(domain.NewDate(2025, 2, 1)),
			},
		},
		Targets: referenceTargets(),
		Activities: []domain.Activity{
			{ActivityID: "AC1", DealID: "D1", Type: "call", Timestamp: domain.NewDate(2025, 5, 20)},
			{ActivityID: "AC2", DealID: "D2", Type: "email", Timestamp: domain.NewDate(2025, 3, 1)},
		},
		Reps: []domain.Rep{
			{RepID: "R1", Name: "Ana Souza"},
			{RepID: "R2", Name: "Bruno Lima"},
		},
		Accounts: []domain.Account{
			{AccountID: "A1", Name: "Conta Ativa", Segment: "Enterprise"},
			{AccountID: "A2", Name: "Conta Parada", Segment: "Mid-Market"},
		},
	})

	riskFactors, err := service.RiskFactors()
	require.NoError(t, err)

	rows := riskFactors.LowActivityAccounts
	require.Len(t, rows, 2)

	// Ordenadas pelo valor total em risco.
	assert.Equal(t, "A3", rows[0].AccountID)
	assert.Equal(t, 50000.0, rows[0].TotalValue)
	assert.Equal(t, "Unknown", rows[0].AccountName)
	assert.Equal(t, "Bruno Lima", rows[0].RepName)

	assert.Equal(t, "A2", rows[1].AccountID)
	assert.Equal(t, 2, rows[1].OpenDeals)
	assert.Equal(t, 30000.0, rows[1].TotalValue)
	assert.Equal(t, "Conta Parada", rows[1].AccountName)
	// Vendedor de referência: o da primeira oportunidade do grupo.
	assert.Equal(t, "Ana Souza", rows[1].RepName)
}
