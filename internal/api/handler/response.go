package handler

import (
	"bytes"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta antes de enviar o status, para que uma falha de
// serialização ainda possa ser respondida como SRV_001. Falhas de escrita apenas são registradas.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	logger := log.ForContext(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logger.WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Não foi possível serializar a resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleAnalysisError traduz os erros da sessão de análise para o envelope da API
func handleAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		schemaErr *dataset.SchemaError
		typeErr   *dataset.TypeError
		configErr *analyzing.ConfigError
		dataErr   *targeting.InsufficientDataError
	)

	switch {
	case errors.As(err, &schemaErr):
		apiErrors.WriteError(w, apiErrors.ErrSchema, err.Error(), map[string]any{
			"missing": schemaErr.Missing,
		})

	case errors.As(err, &typeErr):
		details := map[string]any{
			"column":   typeErr.Column,
			"expected": typeErr.Expected,
			"found":    typeErr.Found,
		}
		if typeErr.Row > 0 {
			details["row"] = typeErr.Row
		}
		apiErrors.WriteError(w, apiErrors.ErrColumnType, err.Error(), details)

	case errors.Is(err, dataset.ErrEmptyTable):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.As(err, &configErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{
			"field": configErr.Field,
			"value": configErr.Value,
		})

	case errors.Is(err, analyzing.ErrMissingSelection):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione ao menos um site", nil)

	case errors.Is(err, analyzing.ErrUnknownSite), errors.Is(err, analyzing.ErrUnknownEntity):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	case errors.As(err, &dataErr):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientData, err.Error(), map[string]any{
			"entity": dataErr.Entity,
		})

	case errors.Is(err, analyzing.ErrNoDataset):
		apiErrors.WriteError(w, apiErrors.ErrNoDataset, "Envie um arquivo de vendas antes de continuar", nil)

	case errors.Is(err, analyzing.ErrNoCalculation):
		apiErrors.WriteError(w, apiErrors.ErrNoCalculation, "Calcule as metas antes de gerar o relatório", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro interno na sessão de análise")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
