package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// GetHolidays lista os feriados de ?year= e ?month=
func GetHolidays(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		year, err := strconv.Atoi(query.Get("year"))
		if err != nil || year <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'year' inválido", nil)
			return
		}

		month, err := domain.ParseMonth(query.Get("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'month' inválido. Use Jan..Dec", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"year":     year,
			"month":    month,
			"holidays": service.Holidays(r.Context(), year, month),
		})
	})
}
