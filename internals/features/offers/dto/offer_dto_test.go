package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOfferDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("orden correcto", func(t *testing.T) {
		limite, inicio, err := ParseOfferDates("2026-03-20", "2026-04-01", now)
		require.NoError(t, err)
		assert.True(t, limite.Before(inicio))
	})

	t.Run("mismo día de hoy es válido", func(t *testing.T) {
		_, _, err := ParseOfferDates("2026-03-10", "2026-03-11", now)
		assert.NoError(t, err)
	})

	t.Run("límite en el pasado", func(t *testing.T) {
		_, _, err := ParseOfferDates("2026-03-09", "2026-04-01", now)
		assert.Error(t, err)
	})

	t.Run("inicio en el pasado", func(t *testing.T) {
		_, _, err := ParseOfferDates("2026-03-20", "2026-03-01", now)
		assert.Error(t, err)
	})

	t.Run("límite igual al inicio se rechaza", func(t *testing.T) {
		_, _, err := ParseOfferDates("2026-04-01", "2026-04-01", now)
		assert.Error(t, err)
	})

	t.Run("límite posterior al inicio se rechaza", func(t *testing.T) {
		_, _, err := ParseOfferDates("2026-04-10", "2026-04-01", now)
		assert.Error(t, err)
	})

	t.Run("formato inválido", func(t *testing.T) {
		_, _, err := ParseOfferDates("20-03-2026", "2026-04-01", now)
		assert.Error(t, err)
	})
}
