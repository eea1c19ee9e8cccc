package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
)

func TestLangParser_Parse(t *testing.T) {
	t.Parallel()

	universe := catalog.NewUniverse("DIAMOND", "STONE", "OAK_PLANKS")
	p := dictionary.NewLangParser(dictionary.WithUniverse(universe))

	t.Run("filters keys", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{"item.minecraft.diamond": "Diamond", "container.chest": "Chest", "item.minecraft.unknownthing": "X"}`)
		dict := p.Parse(raw)

		require.Equal(t, 1, dict.Len())
		name, ok := dict.Lookup("DIAMOND")
		assert.True(t, ok)
		assert.Equal(t, "Diamond", name)

		_, ok = dict.Lookup("UNKNOWNTHING")
		assert.False(t, ok)
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{
			"block.minecraft.stone": "Stone",
			"item.minecraft.stone": "Stone Item"
		}`)
		dict := p.Parse(raw)

		name, ok := dict.Lookup("STONE")
		require.True(t, ok)
		assert.Equal(t, "Stone", name)
		assert.Equal(t, 1, dict.Len())
	})

	t.Run("ignores namespace and suffix segments", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{"block.mymod.oak_planks.desc": "Planks", "item.diamond": "Too Short"}`)
		dict := p.Parse(raw)

		name, ok := dict.Lookup("OAK_PLANKS")
		require.True(t, ok)
		assert.Equal(t, "Planks", name)
		assert.Equal(t, 1, dict.Len())
	})

	t.Run("decodes escapes", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{"item.minecraft.diamond": "Алмаз \"x\""}`)
		dict := p.Parse(raw)

		name, ok := dict.Lookup("DIAMOND")
		require.True(t, ok)
		assert.Equal(t, `Алмаз "x"`, name)
	})

	t.Run("tolerates broken input", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`garbage "block.minecraft.stone" : "Stone", {{{ "item.minecraft.diamond": `)
		dict := p.Parse(raw)

		assert.Equal(t, 1, dict.Len())
		_, ok := dict.Lookup("STONE")
		assert.True(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.True(t, p.Parse(nil).IsEmpty())
		assert.True(t, p.Parse([]byte("{}")).IsEmpty())
	})
}

func TestLangParser_Categories(t *testing.T) {
	t.Parallel()

	universe := catalog.NewUniverse("CHEST", "DIAMOND")
	p := dictionary.NewLangParser(
		dictionary.WithUniverse(universe),
		dictionary.WithCategories("container"),
	)

	dict := p.Parse([]byte(`{"container.minecraft.chest": "Chest", "item.minecraft.diamond": "Diamond"}`))

	assert.Equal(t, []catalog.Material{"CHEST"}, dict.Materials())
}

func TestLangParser_DefaultUniverse(t *testing.T) {
	t.Parallel()

	dict := dictionary.NewLangParser().Parse([]byte(`{"item.minecraft.diamond_sword": "Diamond Sword"}`))

	name, ok := dict.Lookup("DIAMOND_SWORD")
	require.True(t, ok)
	assert.Equal(t, "Diamond Sword", name)
}

func TestDictionary(t *testing.T) {
	t.Parallel()

	src := map[catalog.Material]string{"STONE": "Stone", "DIAMOND": "Diamond"}
	dict := dictionary.New(src)
	src["DIRT"] = "Dirt"

	assert.Equal(t, 2, dict.Len())
	assert.Equal(t, []catalog.Material{"DIAMOND", "STONE"}, dict.Materials())

	seen := map[catalog.Material]string{}
	for id, name := range dict.All() {
		seen[id] = name
	}
	assert.Len(t, seen, 2)

	var zero dictionary.Dictionary
	assert.True(t, zero.IsEmpty())
	_, ok := zero.Lookup("STONE")
	assert.False(t, ok)
}
