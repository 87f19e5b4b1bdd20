package domain

// Tipos derivados expostos pelo dashboard. São calculados a cada requisição,
// nunca armazenados.

// PipelineSummary é a resposta de GET /summary. Valores monetários são
// arredondados para inteiro; percentuais para uma casa decimal.
type PipelineSummary struct {
	CurrentQuarterRevenue float64 `json:"currentQuarterRevenue"`
	Target                float64 `json:"target"`
	Gap                   float64 `json:"gap"`
	GapPercentage         float64 `json:"gapPercentage"`
	QoQChange             float64 `json:"qoqChange"`
}

// MetricWithTrend carrega o valor do mês de referência, a variação em relação
// ao mês anterior e a série dos últimos meses (do mais antigo para o mais
// recente, com o mês de referência como último ponto).
type MetricWithTrend struct {
	Value            float64   `json:"value"`
	Change           float64   `json:"change"`
	ChangePercentage float64   `json:"changePercentage"`
	Trend            []float64 `json:"trend"`
}

// RevenueDrivers é a resposta de GET /drivers.
type RevenueDrivers struct {
	PipelineSize    MetricWithTrend `json:"pipelineSize"`
	WinRate         MetricWithTrend `json:"winRate"`
	AverageDealSize MetricWithTrend `json:"averageDealSize"`
	SalesCycleTime  MetricWithTrend `json:"salesCycleTime"`
}

// StaleDeal é uma oportunidade em aberto parada há mais tempo que o limite.
type StaleDeal struct {
	DealID      string  `json:"dealId"`
	AccountName string  `json:"accountName"`
	Segment     string  `json:"segment"`
	RepName     string  `json:"repName"`
	Value       float64 `json:"value"`
	DaysStale   int     `json:"daysStale"`
}

// RepPerformance resume a taxa de conversão de um vendedor elegível.
type RepPerformance struct {
	RepID       string  `json:"repId"`
	RepName     string  `json:"repName"`
	WinRate     float64 `json:"winRate"`
	DealsWorked int     `json:"dealsWorked"`
}

// LowActivityAccount agrupa oportunidades em aberto sem atividade recente.
type LowActivityAccount struct {
	AccountID   string  `json:"accountId"`
	AccountName string  `json:"accountName"`
	Segment     string  `json:"segment"`
	RepName     string  `json:"repName"`
	OpenDeals   int     `json:"openDeals"`
	TotalValue  float64 `json:"totalValue"`
}

// RiskFactors é a resposta de GET /risk-factors.
type RiskFactors struct {
	StaleDeals          []StaleDeal          `json:"staleDeals"`
	UnderperformingReps []RepPerformance     `json:"underperformingReps"`
	LowActivityAccounts []LowActivityAccount `json:"lowActivityAccounts"`
}

// Recommendation é uma sugestão determinística produzida pelas regras fixas.
type Recommendation struct {
	ID          string `json:"id"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Action      string `json:"action"`
}

// RecommendationList é a resposta de GET /recommendations.
type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// MonthlyRevenueTrend é um ponto da série de GET /trend.
type MonthlyRevenueTrend struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
}

// RevenueTrendResponse é a resposta de GET /trend, do mês mais antigo para o
// mais recente.
type RevenueTrendResponse struct {
	Months []MonthlyRevenueTrend `json:"months"`
}
