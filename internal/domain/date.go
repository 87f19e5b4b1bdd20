package domain

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos nos arquivos de dados: datas puras para created_at/closed_at
// e timestamps completos para as atividades.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date encapsula time.Time para aceitar os formatos de data usados no dataset.
// Campos opcionais (closed_at) usam *Date e ficam nil quando o JSON traz null.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			d.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("data em formato desconhecido: %q", raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// NewDate é um atalho para construir datas em testes e fixtures.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}
