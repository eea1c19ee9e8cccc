package translate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/translate"
)

func TestLoadYAMLOverrides(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		src := `
ru_ru:
  diamond: Алмазик
  Stone: Камушек
EN_US:
  diamond: Gem
`
		o, err := translate.LoadYAMLOverrides(strings.NewReader(src))
		require.NoError(t, err)

		require.Len(t, o, 2)
		assert.Equal(t, "Алмазик", o[catalog.RuRU]["DIAMOND"])
		assert.Equal(t, "Камушек", o[catalog.RuRU]["STONE"])
		assert.Equal(t, "Gem", o[catalog.EnUS]["DIAMOND"])

		providers := o.Providers()
		name, ok := providers[catalog.RuRU].Translate(context.Background(), "DIAMOND")
		assert.True(t, ok)
		assert.Equal(t, "Алмазик", name)
		assert.Len(t, o.Options(), 2)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		o, err := translate.LoadYAMLOverrides(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, o)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		_, err := translate.LoadYAMLOverrides(strings.NewReader("xx_yy:\n  diamond: X\n"))
		assert.ErrorIs(t, err, translate.ErrInvalidOverrides)
		assert.ErrorIs(t, err, catalog.ErrUnknownLanguage)
	})

	t.Run("wrong shape", func(t *testing.T) {
		t.Parallel()

		_, err := translate.LoadYAMLOverrides(strings.NewReader("- a\n- b\n"))
		assert.ErrorIs(t, err, translate.ErrInvalidOverrides)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := translate.LoadYAMLOverrides(strings.NewReader("en_us:\n  diamond: \"\"\n"))
		assert.ErrorIs(t, err, translate.ErrInvalidOverrides)
	})
}

func TestOverrides_Merge(t *testing.T) {
	t.Parallel()

	base := translate.Overrides{}
	base.Set(catalog.EnUS, "diamond", "Gem")
	base.Set(catalog.EnUS, "stone", "Rock")

	other := translate.Overrides{}
	other.Set(catalog.EnUS, "diamond", "Jewel")
	other.Set(catalog.RuRU, "diamond", "Алмаз")

	base.Merge(other)

	assert.Equal(t, "Jewel", base[catalog.EnUS]["DIAMOND"])
	assert.Equal(t, "Rock", base[catalog.EnUS]["STONE"])
	assert.Equal(t, "Алмаз", base[catalog.RuRU]["DIAMOND"])
}
