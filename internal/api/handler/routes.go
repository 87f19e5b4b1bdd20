package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pipeline-api/internal/api/handler/router"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Analytics expõe as cinco consultas do dashboard.
func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/drivers",
			Method:  http.MethodGet,
			Handler: GetDrivers(service),
		},
		{
			Path:    "/risk-factors",
			Method:  http.MethodGet,
			Handler: GetRiskFactors(service),
		},
		{
			Path:    "/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service),
		},
		{
			Path:    "/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
