package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

func TestReferenceDate(t *testing.T) {
	t.Run("Usa o mês mais recente das metas", func(t *testing.T) {
		targets := []domain.Target{
			{Month: "2025-01", Target: 100000},
			{Month: "2025-06", Target: 120000},
			{Month: "2025-03", Target: 110000},
		}

		ref := referenceDate(targets)

		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), ref)
	})

	t.Run("Ignora metas com mês em formato inválido", func(t *testing.T) {
		targets := []domain.Target{
			{Month: "junho/2025", Target: 100000},
			{Month: "2025-02", Target: 90000},
		}

		ref := referenceDate(targets)

		assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), ref)
	})

	t.Run("Sem metas válidas cai no relógio", func(t *testing.T) {
		ref := referenceDate(nil)

		assert.WithinDuration(t, time.Now().UTC(), ref, time.Minute)
	})
}

func TestQuarterBounds(t *testing.T) {
	start, end := quarterBounds(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), start)

	// Limites inclusivos: o último instante de junho pertence ao trimestre,
	// o primeiro de julho não.
	lastOfJune := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)
	firstOfJuly := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, withinInclusive(lastOfJune, start, end))
	assert.True(t, withinInclusive(start, start, end))
	assert.False(t, withinInclusive(firstOfJuly, start, end))
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month   time.Month
		quarter int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, tt := range tests {
		got := quarterOf(time.Date(2025, tt.month, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, tt.quarter, got, "mês %s", tt.month)
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 31, daysBetween(from, to))

	// Horas parciais são truncadas, não arredondadas.
	almostOneDay := from.Add(23 * time.Hour)
	assert.Equal(t, 0, daysBetween(from, almostOneDay))
}

func TestMonthStart(t *testing.T) {
	// Normalizar antes da aritmética de meses evita o estouro de AddDate em
	// meses curtos (31 de março - 1 mês não pode virar 3 de março).
	ref := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	previous := monthStart(ref).AddDate(0, -1, 0)

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), previous)
}
