package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/ingest"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

const uploadField = "file"

// UploadDataset recebe um arquivo CSV ou XLSX no campo multipart "file" e substitui o
// conjunto de dados da sessão
func UploadDataset(service analyzing.Analyzer, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrUploadTooLarge, "Arquivo excede o tamanho máximo permitido", map[string]any{
					"max_bytes": maxErr.Limit,
				})
				return
			}

			logger.WithError(err).Warn("dataset: arquivo ausente na requisição")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie o arquivo no campo 'file'", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"source": header.Filename,
			"size":   header.Size,
		}).Info("dataset: arquivo recebido")

		table, err := ingest.Read(header.Filename, file)
		if err != nil {
			if errors.Is(err, ingest.ErrUnsupportedFormat) || errors.Is(err, ingest.ErrNoHeader) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithError(err).WithField("source", header.Filename).Warn("dataset: falha ao ler arquivo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo enviado", nil)
			return
		}

		summary, err := service.LoadDataset(r.Context(), header.Filename, table)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, summary)
	})
}

// GetDataset descreve o conjunto de dados carregado
func GetDataset(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// GetSites lista os sites do conjunto de dados na ordem do arquivo
func GetSites(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sites, err := service.Sites(r.Context())
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"sites": sites})
	})
}
