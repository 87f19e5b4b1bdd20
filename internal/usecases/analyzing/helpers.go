package analyzing

import "github.com/vfg2006/sales-pipeline-api/internal/domain"

// indexBy monta um índice 1:1 id→registro. Chaves duplicadas seguem a
// semântica de última escrita, irrelevante aqui porque os ids são únicos.
func indexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}

// groupBy agrupa registros pela chave extraída; o extrator devolve ok=false
// para registros sem chave (ex.: deal sem closed_at), que ficam de fora.
func groupBy[T any, K comparable](items []T, key func(T) (K, bool)) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		groups[k] = append(groups[k], item)
	}
	return groups
}

// capSlice limita o tamanho de uma lista top-N já ordenada.
func capSlice[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func sumDealAmounts(deals []domain.Deal) float64 {
	total := 0.0
	for _, d := range deals {
		total += d.AmountOrZero()
	}
	return total
}

// winRatePercent calcula ganhos/(ganhos+perdidos)×100 sobre o conjunto
// informado. Deal ganho sem valor conta no denominador mas não no numerador,
// política herdada do dashboard.
func winRatePercent(deals []domain.Deal) float64 {
	var closed, won int
	for _, d := range deals {
		if !d.IsClosed() {
			continue
		}
		closed++
		if d.IsWon() && d.Amount != nil {
			won++
		}
	}

	if closed == 0 {
		return 0
	}

	return float64(won) / float64(closed) * 100
}
