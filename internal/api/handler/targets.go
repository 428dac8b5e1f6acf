package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

// CalculateTargets calcula metas, tendências e projeções para os sites selecionados
func CalculateTargets(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var raw analyzing.RawParams
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			logger.WithError(err).Warn("targets: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Calculate(r.Context(), raw)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// GetEntityResult retorna o resultado de um site (ou "Combined") do último cálculo
func GetEntityResult(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entity := httprouter.ParamsFromContext(r.Context()).ByName("entity")

		result, err := service.Entity(r.Context(), entity)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
