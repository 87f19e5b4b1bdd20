package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Os handlers do dashboard são cola fina: chamam o motor de análise e
// serializam o resultado. Qualquer erro vira a resposta 500 uniforme; nunca
// JSON parcial.

func GetSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Summary()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to compute pipeline summary")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, logger, summary)
	})
}

func GetDrivers(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		drivers, err := service.RevenueDrivers()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to compute revenue drivers")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, logger, drivers)
	})
}

func GetRiskFactors(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		riskFactors, err := service.RiskFactors()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to compute risk factors")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, logger, riskFactors)
	})
}

func GetRecommendations(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		recommendations, err := service.Recommendations()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to compute recommendations")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, logger, recommendations)
	})
}

func GetTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		trend, err := service.RevenueTrend()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to compute revenue trend")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, logger, trend)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Status já foi enviado; só resta registrar a falha de encoding.
		logger.WithError(err).Error("analytics: failed to encode response")
	}
}
