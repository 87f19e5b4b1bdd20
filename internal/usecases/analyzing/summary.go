package analyzing

import (
	"math"
	"time"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

// Summary monta a resposta de GET /summary: receita realizada do trimestre de
// referência, meta, gap e variação trimestre a trimestre.
func (s *Service) Summary() (*domain.PipelineSummary, error) {
	ref := referenceDate(s.data.Targets)

	revenue := s.currentQuarterRevenue(ref)
	target := s.quarterTarget(ref)

	gap := revenue - target
	gapPercentage := 0.0
	if target != 0 {
		gapPercentage = gap / target * 100
	}

	return &domain.PipelineSummary{
		CurrentQuarterRevenue: math.Round(revenue),
		Target:                math.Round(target),
		Gap:                   math.Round(gap),
		GapPercentage:         utils.RoundWithOneDecimalPlace(gapPercentage),
		QoQChange:             utils.RoundWithOneDecimalPlace(s.qoqChange(ref)),
	}, nil
}

// currentQuarterRevenue soma o valor das oportunidades ganhas cujo fechamento
// cai dentro do trimestre de referência (limites inclusivos).
func (s *Service) currentQuarterRevenue(ref time.Time) float64 {
	start, end := quarterBounds(ref)
	return closedWonRevenueBetween(s.data.Deals, start, end)
}

// quarterTarget soma todas as metas cujo mês cai no trimestre/ano de
// referência. Meses duplicados contam duas vezes: política, não bug.
func (s *Service) quarterTarget(ref time.Time) float64 {
	quarter := quarterOf(ref)
	year := ref.Year()

	total := 0.0
	for _, t := range s.data.Targets {
		month, ok := t.MonthTime()
		if !ok {
			continue
		}
		if quarterOf(month) == quarter && month.Year() == year {
			total += t.Target
		}
	}

	return total
}

// qoqChange é a variação percentual da receita realizada entre o trimestre de
// referência e o imediatamente anterior. Trimestre anterior zerado significa
// "sem variação", nunca divisão por zero.
func (s *Service) qoqChange(ref time.Time) float64 {
	currentStart, currentEnd := quarterBounds(ref)
	previousStart, previousEnd := quarterBounds(monthStart(ref).AddDate(0, -3, 0))

	currentRevenue := closedWonRevenueBetween(s.data.Deals, currentStart, currentEnd)
	previousRevenue := closedWonRevenueBetween(s.data.Deals, previousStart, previousEnd)

	if previousRevenue == 0 {
		return 0
	}

	return (currentRevenue - previousRevenue) / previousRevenue * 100
}

// closedWonRevenueBetween aplica o predicado de receita realizada: ganho, com
// valor e com data de fechamento dentro da janela.
func closedWonRevenueBetween(deals []domain.Deal, start, end time.Time) float64 {
	total := 0.0
	for _, d := range deals {
		if !d.IsWon() || d.Amount == nil || d.ClosedAt == nil {
			continue
		}
		if withinInclusive(d.ClosedAt.Time, start, end) {
			total += *d.Amount
		}
	}
	return total
}
