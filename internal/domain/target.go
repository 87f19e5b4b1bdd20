package domain

import "time"

// Target é a meta de receita de um mês no formato "YYYY-MM". A coleção pode
// ser esparsa e meses duplicados são permitidos (ambos contam nas somas).
type Target struct {
	Month  string  `json:"month"`
	Target float64 `json:"target"`
}

// MonthTime converte a chave de mês para o primeiro dia do mês. Entradas com
// formato inválido são ignoradas pelos agregadores.
func (t Target) MonthTime() (time.Time, bool) {
	parsed, err := time.Parse("2006-01", t.Month)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
