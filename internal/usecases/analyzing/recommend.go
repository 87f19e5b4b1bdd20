package analyzing

import (
	"fmt"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// Recommendations avalia as regras fixas, sempre na mesma ordem, e monta a
// resposta de GET /recommendations. Cada regra é independente e opcional; a
// saída é determinística para um dataset fixo e limitada a
// MaxRecommendations itens.
func (s *Service) Recommendations() (*domain.RecommendationList, error) {
	ref := referenceDate(s.data.Targets)

	staleDeals := s.staleDeals(ref)
	underperformers := s.underperformingReps()
	lowActivity := s.lowActivityAccounts(ref)
	overallWinRate := winRatePercent(s.data.Deals)

	recommendations := make([]domain.Recommendation, 0, 4)

	// Regra 1: oportunidades de alto valor paradas.
	if len(staleDeals) > 0 {
		totalValue := 0.0
		for _, d := range staleDeals {
			totalValue += d.Value
		}
		recoverable := totalValue * s.cfg.RecoveryRate

		recommendations = append(recommendations, domain.Recommendation{
			ID:          "rec-1",
			Priority:    "high",
			Category:    "deals",
			Title:       "Focus on aging Enterprise deals",
			Description: fmt.Sprintf("%d high-value deals worth $%.1fM have been inactive.", len(staleDeals), totalValue/1e6),
			Impact:      fmt.Sprintf("Recovering %.0f%% could unlock ~$%.1fM", s.cfg.RecoveryRate*100, recoverable/1e6),
			Action:      "Schedule executive sponsor reviews for top deals",
		})
	}

	// Regra 2: coaching para o pior vendedor elegível.
	if len(underperformers) > 0 {
		rep := underperformers[0]
		recommendations = append(recommendations, domain.Recommendation{
			ID:          "rec-2",
			Priority:    "high",
			Category:    "reps",
			Title:       fmt.Sprintf("Coach %s on deal qualification", rep.RepName),
			Description: fmt.Sprintf("%s has a %.1f%% win rate vs team average.", rep.RepName, rep.WinRate),
			Impact:      "Improving to team average could increase quarterly revenue",
			Action:      "Implement structured deal review sessions",
		})
	}

	// Regra 3: reengajamento de contas sem atividade recente.
	if len(lowActivity) > 0 {
		totalValue := 0.0
		for _, a := range lowActivity {
			totalValue += a.TotalValue
		}

		recommendations = append(recommendations, domain.Recommendation{
			ID:          "rec-3",
			Priority:    "medium",
			Category:    "accounts",
			Title:       "Re-engage inactive pipeline accounts",
			Description: fmt.Sprintf("%d accounts with $%.1fM in pipeline show low activity.", len(lowActivity), totalValue/1e6),
			Impact:      "Re-engagement may reduce pipeline slippage risk",
			Action:      "Launch targeted re-engagement outreach campaign",
		})
	}

	// Regra 4: win rate geral (todas as oportunidades, não por vendedor)
	// abaixo do piso de mercado.
	if overallWinRate < s.cfg.IndustryWinRateMin {
		recommendations = append(recommendations, domain.Recommendation{
			ID:          "rec-4",
			Priority:    "high",
			Category:    "strategy",
			Title:       "Improve overall win rate",
			Description: fmt.Sprintf("Current win rate %.1f%% is below industry benchmark (%.0f%%).", overallWinRate, s.cfg.IndustryWinRateMin),
			Impact:      "Higher qualification discipline could improve conversion",
			Action:      "Adopt structured qualification framework (e.g., MEDDIC)",
		})
	}

	return &domain.RecommendationList{
		Recommendations: capSlice(recommendations, s.cfg.MaxRecommendations),
	}, nil
}
