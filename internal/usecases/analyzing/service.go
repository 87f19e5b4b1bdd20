// Package analyzing implementa o motor de análise do pipeline de vendas:
// resolução de janelas de tempo, métricas de resumo, drivers de receita,
// fatores de risco, recomendações e a série de tendência.
package analyzing

import (
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// Service computa as análises sobre um Dataset somente leitura recebido na
// construção. Não há estado mutável nem cache de resultados: cada chamada
// recalcula tudo a partir das coleções, então o serviço é seguro para uso
// concorrente.
type Service struct {
	cfg  config.Analytics
	data *domain.Dataset
}

func NewService(cfg *config.Config, data *domain.Dataset) Analyzer {
	return &Service{
		cfg:  cfg.Analytics,
		data: data,
	}
}
