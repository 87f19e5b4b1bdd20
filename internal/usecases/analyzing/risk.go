package analyzing

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

const (
	enterpriseSegment = "Enterprise"
	unknownLabel      = "Unknown"
)

// RiskFactors monta a resposta de GET /risk-factors. As três listas são
// independentes e puras, então o cálculo faz fan-out em goroutines e junta
// tudo antes de responder; resposta parcial não existe.
func (s *Service) RiskFactors() (*domain.RiskFactors, error) {
	ref := referenceDate(s.data.Targets)

	var (
		staleDeals          []domain.StaleDeal
		underperformingReps []domain.RepPerformance
		lowActivityAccounts []domain.LowActivityAccount
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		staleDeals = s.staleDeals(ref)
	}()

	go func() {
		defer wg.Done()
		underperformingReps = s.underperformingReps()
	}()

	go func() {
		defer wg.Done()
		lowActivityAccounts = s.lowActivityAccounts(ref)
	}()

	wg.Wait()

	return &domain.RiskFactors{
		StaleDeals:          staleDeals,
		UnderperformingReps: underperformingReps,
		LowActivityAccounts: lowActivityAccounts,
	}, nil
}

// staleDeals lista oportunidades em aberto paradas há mais de StaleDays dias,
// restritas a contas Enterprise ou valor acima do limiar, enriquecidas com
// conta e vendedor, ordenadas por valor decrescente e limitadas ao top N.
func (s *Service) staleDeals(ref time.Time) []domain.StaleDeal {
	accountsByID := indexBy(s.data.Accounts, func(a domain.Account) string { return a.AccountID })
	repsByID := indexBy(s.data.Reps, func(r domain.Rep) string { return r.RepID })

	rows := make([]domain.StaleDeal, 0)
	for _, d := range s.data.Deals {
		if d.IsClosed() || d.Amount == nil || d.CreatedAt.IsZero() {
			continue
		}

		age := daysBetween(d.CreatedAt.Time, ref)
		if age <= s.cfg.StaleDays {
			continue
		}

		row := domain.StaleDeal{
			DealID:      d.DealID,
			AccountName: unknownLabel,
			Segment:     unknownLabel,
			RepName:     unknownLabel,
			Value:       *d.Amount,
			DaysStale:   age,
		}
		if account, ok := accountsByID[d.AccountID]; ok {
			row.AccountName = account.Name
			row.Segment = account.Segment
		}
		if rep, ok := repsByID[d.RepID]; ok {
			row.RepName = rep.Name
		}

		// O filtro de segmento roda depois do enriquecimento: conta
		// desconhecida só entra pelo valor.
		if row.Segment != enterpriseSegment && row.Value <= s.cfg.HighValueThreshold {
			continue
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })

	return capSlice(rows, s.cfg.StaleDealsLimit)
}

// underperformingReps devolve os vendedores elegíveis (MinRepDeals ou mais
// oportunidades encerradas) com win rate abaixo da média dos elegíveis, do
// pior para o melhor. Ninguém elegível ou abaixo da média: lista vazia.
func (s *Service) underperformingReps() []domain.RepPerformance {
	dealsByRep := groupBy(s.data.Deals, func(d domain.Deal) (string, bool) { return d.RepID, true })

	valid := make([]domain.RepPerformance, 0)
	for _, rep := range s.data.Reps {
		repDeals := dealsByRep[rep.RepID]

		closed := 0
		for _, d := range repDeals {
			if d.IsClosed() {
				closed++
			}
		}
		if closed < s.cfg.MinRepDeals {
			continue
		}

		valid = append(valid, domain.RepPerformance{
			RepID:       rep.RepID,
			RepName:     rep.Name,
			WinRate:     winRatePercent(repDeals),
			DealsWorked: closed,
		})
	}

	if len(valid) == 0 {
		return valid
	}

	sum := 0.0
	for _, r := range valid {
		sum += r.WinRate
	}
	average := sum / float64(len(valid))

	underperformers := make([]domain.RepPerformance, 0, len(valid))
	for _, r := range valid {
		if r.WinRate < average {
			underperformers = append(underperformers, r)
		}
	}

	sort.SliceStable(underperformers, func(i, j int) bool {
		return underperformers[i].WinRate < underperformers[j].WinRate
	})

	return capSlice(underperformers, s.cfg.UnderperformersLimit)
}

// lowActivityAccounts agrupa por conta as oportunidades em aberto sem nenhuma
// atividade nos últimos LowActivityDays dias em relação à data de referência,
// ordenadas pelo valor total em risco.
func (s *Service) lowActivityAccounts(ref time.Time) []domain.LowActivityAccount {
	activeDealIDs := make(map[string]struct{})
	for _, a := range s.data.Activities {
		if a.Timestamp.IsZero() {
			continue
		}
		if daysBetween(a.Timestamp.Time, ref) < s.cfg.LowActivityDays {
			activeDealIDs[a.DealID] = struct{}{}
		}
	}

	// Agrupamento com ordem de inserção preservada para que empates de valor
	// saiam determinísticos.
	idleByAccount := make(map[string][]domain.Deal)
	accountOrder := make([]string, 0)
	for _, d := range s.data.Deals {
		if d.IsClosed() {
			continue
		}
		if _, active := activeDealIDs[d.DealID]; active {
			continue
		}
		if _, seen := idleByAccount[d.AccountID]; !seen {
			accountOrder = append(accountOrder, d.AccountID)
		}
		idleByAccount[d.AccountID] = append(idleByAccount[d.AccountID], d)
	}

	accountsByID := indexBy(s.data.Accounts, func(a domain.Account) string { return a.AccountID })
	repsByID := indexBy(s.data.Reps, func(r domain.Rep) string { return r.RepID })

	rows := make([]domain.LowActivityAccount, 0, len(accountOrder))
	for _, accountID := range accountOrder {
		idleDeals := idleByAccount[accountID]

		row := domain.LowActivityAccount{
			AccountID:   accountID,
			AccountName: unknownLabel,
			Segment:     unknownLabel,
			RepName:     unknownLabel,
			OpenDeals:   len(idleDeals),
			TotalValue:  sumDealAmounts(idleDeals),
		}
		if account, ok := accountsByID[accountID]; ok {
			row.AccountName = account.Name
			row.Segment = account.Segment
		}
		// Vendedor de referência: o da primeira oportunidade do grupo.
		if rep, ok := repsByID[idleDeals[0].RepID]; ok {
			row.RepName = rep.Name
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalValue > rows[j].TotalValue })

	return capSlice(rows, s.cfg.LowActivityLimit)
}
