package analyzing

import "github.com/vfg2006/sales-pipeline-api/internal/domain"

// RevenueTrend monta a série de GET /trend: para cada um dos TrendMonths
// meses que terminam no mês de referência (do mais antigo para o mais
// recente), a receita realizada, a meta do mês e o percentual atingido.
func (s *Service) RevenueTrend() (*domain.RevenueTrendResponse, error) {
	ref := monthStart(referenceDate(s.data.Targets))

	closedByMonth := groupBy(s.data.Deals, func(d domain.Deal) (string, bool) {
		if d.ClosedAt == nil {
			return "", false
		}
		return monthKey(d.ClosedAt.Time), true
	})

	// Metas duplicadas para o mesmo mês somam, a mesma política das somas
	// trimestrais.
	targetByMonth := make(map[string]float64, len(s.data.Targets))
	for _, t := range s.data.Targets {
		targetByMonth[t.Month] += t.Target
	}

	months := make([]domain.MonthlyRevenueTrend, 0, s.cfg.TrendMonths)
	for i := s.cfg.TrendMonths - 1; i >= 0; i-- {
		month := ref.AddDate(0, -i, 0)
		key := monthKey(month)

		revenue := 0.0
		for _, d := range closedByMonth[key] {
			if d.IsWon() && d.Amount != nil {
				revenue += *d.Amount
			}
		}

		target := targetByMonth[key]
		achieved := 0.0
		if target != 0 {
			achieved = revenue / target * 100
		}

		months = append(months, domain.MonthlyRevenueTrend{
			Month:    month.Format("Jan"),
			Revenue:  revenue,
			Target:   target,
			Achieved: achieved,
		})
	}

	return &domain.RevenueTrendResponse{Months: months}, nil
}
