package analyzing

import "github.com/vfg2006/sales-pipeline-api/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzer_mock.go -package=mocks

// Analyzer é o motor de análise do pipeline de vendas. Cada método recalcula
// o resultado a partir do dataset residente em memória; falhas inesperadas
// voltam como erro para a borda HTTP converter na resposta 500 uniforme.
type Analyzer interface {
	Summary() (*domain.PipelineSummary, error)
	RevenueDrivers() (*domain.RevenueDrivers, error)
	RiskFactors() (*domain.RiskFactors, error)
	Recommendations() (*domain.RecommendationList, error)
	RevenueTrend() (*domain.RevenueTrendResponse, error)
}
