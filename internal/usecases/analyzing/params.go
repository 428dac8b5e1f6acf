package analyzing

import (
	"strconv"
	"strings"

	"github.com/vfg2006/sales-target-api/internal/domain"
)

// RawParams são os parâmetros do cálculo como recebidos da interface.
// Campos vazios assumem os valores padrão da configuração.
type RawParams struct {
	BaseYears       string   `json:"base_years"`
	OptimisticPct   *float64 `json:"optimistic_pct,omitempty"`
	ConservativePct *float64 `json:"conservative_pct,omitempty"`
	Month           string   `json:"month"`
	Year            int      `json:"year"`
	Mode            string   `json:"mode"`
	Sites           []string `json:"sites"`
}

// Defaults são os valores padrão aplicados a RawParams
type Defaults struct {
	BaseYears       string
	OptimisticPct   float64
	ConservativePct float64
}

// ParseBaseYears converte a lista separada por vírgulas em anos. Entradas vazias são
// ignoradas e anos repetidos aparecem uma única vez.
func ParseBaseYears(s string) ([]int, error) {
	years := make([]int, 0)
	seen := make(map[int]struct{})

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, &ConfigError{Field: "base_years", Value: s, Details: "ano inválido: " + part}
		}

		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}

	if len(years) == 0 {
		return nil, &ConfigError{Field: "base_years", Value: s, Details: "informe ao menos um ano base"}
	}

	return years, nil
}

func parsePercent(field string, value *float64, fallback float64) (float64, error) {
	if value == nil {
		return fallback, nil
	}
	if *value < 0 || *value > 100 {
		return 0, &ConfigError{Field: field, Value: strconv.FormatFloat(*value, 'f', -1, 64), Details: "deve estar entre 0 e 100"}
	}
	return *value, nil
}

// ParseParams valida os parâmetros recebidos e aplica os valores padrão
func ParseParams(raw RawParams, defaults Defaults) (domain.CalculationParams, error) {
	baseYears := raw.BaseYears
	if strings.TrimSpace(baseYears) == "" {
		baseYears = defaults.BaseYears
	}

	years, err := ParseBaseYears(baseYears)
	if err != nil {
		return domain.CalculationParams{}, err
	}

	optimistic, err := parsePercent("optimistic_pct", raw.OptimisticPct, defaults.OptimisticPct)
	if err != nil {
		return domain.CalculationParams{}, err
	}

	conservative, err := parsePercent("conservative_pct", raw.ConservativePct, defaults.ConservativePct)
	if err != nil {
		return domain.CalculationParams{}, err
	}

	month, err := domain.ParseMonth(raw.Month)
	if err != nil {
		return domain.CalculationParams{}, &ConfigError{Field: "month", Value: raw.Month, Details: "use Jan..Dec"}
	}

	if raw.Year <= 0 {
		return domain.CalculationParams{}, &ConfigError{Field: "year", Value: strconv.Itoa(raw.Year)}
	}

	mode := domain.CalculationMode(strings.ToLower(strings.TrimSpace(raw.Mode)))
	switch mode {
	case "":
		mode = domain.PerSiteMode
	case domain.PerSiteMode, domain.CombinedMode:
	default:
		return domain.CalculationParams{}, &ConfigError{Field: "mode", Value: raw.Mode, Details: "use per_site ou combined"}
	}

	sites := make([]string, 0, len(raw.Sites))
	seen := make(map[string]struct{}, len(raw.Sites))
	for _, site := range raw.Sites {
		if _, ok := seen[site]; ok {
			continue
		}
		seen[site] = struct{}{}
		sites = append(sites, site)
	}

	if len(sites) == 0 {
		return domain.CalculationParams{}, ErrMissingSelection
	}

	return domain.CalculationParams{
		BaseYears:       years,
		OptimisticPct:   optimistic,
		ConservativePct: conservative,
		Month:           month,
		Year:            raw.Year,
		Mode:            mode,
		Sites:           sites,
	}, nil
}
