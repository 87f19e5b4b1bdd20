package analyzing

import (
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// testAnalyticsConfig replica os limiares padrão da aplicação.
func testAnalyticsConfig() config.Analytics {
	return config.Analytics{
		StaleDays:            30,
		LowActivityDays:      30,
		HighValueThreshold:   50000,
		MinRepDeals:          5,
		RecoveryRate:         0.3,
		IndustryWinRateMin:   25,
		MaxRecommendations:   5,
		StaleDealsLimit:      10,
		UnderperformersLimit: 5,
		LowActivityLimit:     15,
		TrendMonths:          6,
	}
}

func newTestService(data *domain.Dataset) *Service {
	return &Service{
		cfg:  testAnalyticsConfig(),
		data: data,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func datePtr(d domain.Date) *domain.Date {
	return &d
}
