package domain

import "fmt"

// Period identifica um mês de um ano específico
type Period struct {
	Month Month `json:"month"`
	Year  int   `json:"year"`
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// Next avança um mês, incrementando o ano na virada de Dec para Jan
func (p Period) Next() Period {
	if p.Month == Dec {
		return Period{Month: Jan, Year: p.Year + 1}
	}
	return Period{Month: p.Month.Next(), Year: p.Year}
}

// Prev recua um mês, decrementando o ano na virada de Jan para Dec
func (p Period) Prev() Period {
	if p.Month == Jan {
		return Period{Month: Dec, Year: p.Year - 1}
	}
	return Period{Month: p.Month.Prev(), Year: p.Year}
}

// Before indica se p é cronologicamente anterior a other
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// TrailingWindow retorna os count períodos que terminam no mês âncora (inclusive),
// do mais antigo para o mais recente.
func TrailingWindow(month Month, year, count int) []Period {
	if count <= 0 {
		return []Period{}
	}

	window := make([]Period, count)
	current := Period{Month: month, Year: year}
	for i := count - 1; i >= 0; i-- {
		window[i] = current
		current = current.Prev()
	}

	return window
}

// ForwardWindow retorna os count períodos imediatamente posteriores ao mês âncora
func ForwardWindow(month Month, year, count int) []Period {
	if count <= 0 {
		return []Period{}
	}

	window := make([]Period, 0, count)
	current := Period{Month: month, Year: year}
	for i := 0; i < count; i++ {
		current = current.Next()
		window = append(window, current)
	}

	return window
}
