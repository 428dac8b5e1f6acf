package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
)

type healthcheckResponse struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	DatasetID string `json:"dataset_id,omitempty"`
}

// HealthcheckHandler responde 200 mesmo sem conjunto de dados carregado
func HealthcheckHandler(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthcheckResponse{
			Status: "ok",
			Time:   time.Now().Format(time.RFC3339),
		}

		if summary, err := service.Summary(r.Context()); err == nil {
			resp.DatasetID = summary.ID
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
