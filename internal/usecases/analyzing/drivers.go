package analyzing

import "github.com/vfg2006/sales-pipeline-api/internal/domain"

// RevenueDrivers calcula as quatro métricas de GET /drivers sobre a janela
// móvel que termina no mês de referência.
//
// Convenção de agrupamento (única e documentada): métricas de desfecho (win
// rate, ticket médio, ciclo de venda) agrupam pelo mês de FECHAMENTO;
// pipeline agrupa pelo mês de CRIAÇÃO, o único eixo definido para
// oportunidades em aberto.
func (s *Service) RevenueDrivers() (*domain.RevenueDrivers, error) {
	ref := monthStart(referenceDate(s.data.Targets))
	months := s.cfg.TrendMonths

	createdByMonth := groupBy(s.data.Deals, func(d domain.Deal) (string, bool) {
		if d.CreatedAt.IsZero() {
			return "", false
		}
		return monthKey(d.CreatedAt.Time), true
	})
	closedByMonth := groupBy(s.data.Deals, func(d domain.Deal) (string, bool) {
		if d.ClosedAt == nil {
			return "", false
		}
		return monthKey(d.ClosedAt.Time), true
	})

	pipelineTrend := make([]float64, 0, months)
	winRateTrend := make([]float64, 0, months)
	avgDealTrend := make([]float64, 0, months)
	cycleTrend := make([]float64, 0, months)

	for i := months - 1; i >= 0; i-- {
		key := monthKey(ref.AddDate(0, -i, 0))
		createdDeals := createdByMonth[key]
		closedDeals := closedByMonth[key]

		pipelineTrend = append(pipelineTrend, pipelineSize(createdDeals))
		winRateTrend = append(winRateTrend, winRatePercent(closedDeals))
		avgDealTrend = append(avgDealTrend, averageDealSize(closedDeals))
		cycleTrend = append(cycleTrend, averageCycleDays(closedDeals))
	}

	return &domain.RevenueDrivers{
		PipelineSize:    metricWithTrend(pipelineTrend),
		WinRate:         metricWithTrend(winRateTrend),
		AverageDealSize: metricWithTrend(avgDealTrend),
		SalesCycleTime:  metricWithTrend(cycleTrend),
	}, nil
}

// metricWithTrend deriva valor atual, variação e percentual a partir da série
// (os dois últimos pontos são mês de referência e mês anterior).
func metricWithTrend(trend []float64) domain.MetricWithTrend {
	current := trend[len(trend)-1]
	previous := trend[len(trend)-2]

	change := current - previous
	changePercentage := 0.0
	if previous != 0 {
		changePercentage = change / previous * 100
	}

	return domain.MetricWithTrend{
		Value:            current,
		Change:           change,
		ChangePercentage: changePercentage,
		Trend:            trend,
	}
}

// pipelineSize soma o valor das oportunidades criadas no mês que continuam em
// aberto e têm valor informado.
func pipelineSize(createdDeals []domain.Deal) float64 {
	total := 0.0
	for _, d := range createdDeals {
		if d.IsOpen() && d.Amount != nil {
			total += *d.Amount
		}
	}
	return total
}

// averageDealSize é a média de valor das oportunidades ganhas (com valor) no
// mês; zero quando não houve ganho.
func averageDealSize(closedDeals []domain.Deal) float64 {
	total := 0.0
	count := 0
	for _, d := range closedDeals {
		if d.IsWon() && d.Amount != nil {
			total += *d.Amount
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return total / float64(count)
}

// averageCycleDays é a média de dias entre criação e fechamento das
// oportunidades ganhas do mês com as duas datas presentes.
func averageCycleDays(closedDeals []domain.Deal) float64 {
	totalDays := 0
	count := 0
	for _, d := range closedDeals {
		if !d.IsWon() || d.Amount == nil || d.ClosedAt == nil || d.CreatedAt.IsZero() {
			continue
		}
		totalDays += daysBetween(d.CreatedAt.Time, d.ClosedAt.Time)
		count++
	}

	if count == 0 {
		return 0
	}

	return float64(totalDays) / float64(count)
}
