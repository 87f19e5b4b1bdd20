package analyzing

import (
	"time"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// referenceDate é o "agora" analítico: o mês mais recente presente nas metas.
// Ancorar os períodos no próprio dataset garante resultados reproduzíveis
// independentemente de quando a consulta roda. Sem metas, cai no relógio.
func referenceDate(targets []domain.Target) time.Time {
	var latest time.Time
	found := false

	for _, t := range targets {
		month, ok := t.MonthTime()
		if !ok {
			continue
		}
		if !found || month.After(latest) {
			latest = month
			found = true
		}
	}

	if !found {
		return time.Now().UTC()
	}

	return latest
}

// quarterBounds devolve os limites inclusivos [início, fim] do trimestre
// civil que contém a data.
func quarterBounds(t time.Time) (time.Time, time.Time) {
	startMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	start := time.Date(t.Year(), startMonth, 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 3, 0).Add(-time.Nanosecond)
	return start, end
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// withinInclusive testa início <= t <= fim.
func withinInclusive(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// monthKey é o rótulo canônico "YYYY-MM" usado para agrupamento e para a
// busca de metas.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// monthStart normaliza para o primeiro dia do mês antes de aritmética de
// meses, evitando o estouro de AddDate em meses curtos.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween conta dias inteiros de from até to, truncando como o diff em
// dias do dashboard original.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
