package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		want    catalog.Language
		wantErr bool
	}{
		{name: "lowercase", code: "en_us", want: catalog.EnUS},
		{name: "uppercase", code: "RU_RU", want: catalog.RuRU},
		{name: "mixed case with spaces", code: "  Zlm_Arab ", want: catalog.Language("zlm_arab")},
		{name: "no region", code: "tok", want: catalog.Language("tok")},
		{name: "unknown", code: "xx_yy", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := catalog.ParseLanguage(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, catalog.ErrUnknownLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := catalog.Languages()
	require.NotEmpty(t, langs)
	assert.Contains(t, langs, catalog.EnUS)
	assert.Contains(t, langs, catalog.DefaultLanguage)

	// Mutating the copy must not affect the table.
	langs[0] = "broken"
	assert.NotEqual(t, catalog.Language("broken"), catalog.Languages()[0])

	for _, l := range catalog.Languages() {
		assert.True(t, l.Valid(), "language %s should be valid", l)
	}
}

func TestLanguageConstants(t *testing.T) {
	t.Parallel()

	for _, l := range []catalog.Language{
		catalog.EnUS, catalog.EnGB, catalog.RuRU, catalog.DeDE,
		catalog.FrFR, catalog.EsES, catalog.JaJP, catalog.ZhCN,
		catalog.DefaultLanguage,
	} {
		assert.True(t, l.Valid(), "language %s should be valid", l)
		parsed, err := catalog.ParseLanguage(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	assert.True(t, catalog.Language("fr_ca").Valid())
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("release", func(t *testing.T) {
		t.Parallel()
		v, err := catalog.ParseVersion("1.20.4")
		require.NoError(t, err)
		assert.Equal(t, catalog.Release, v.Kind)
		assert.Equal(t, catalog.DefaultVersion, v)
	})

	t.Run("snapshot", func(t *testing.T) {
		t.Parallel()
		v, err := catalog.ParseVersion("24w21a")
		require.NoError(t, err)
		assert.Equal(t, catalog.Snapshot, v.Kind)
	})

	t.Run("upper-case snapshot label kept verbatim", func(t *testing.T) {
		t.Parallel()
		v, err := catalog.ParseVersion("21w10a")
		require.NoError(t, err)
		assert.Equal(t, "21W10A", v.Name)
	})

	t.Run("pre-release", func(t *testing.T) {
		t.Parallel()
		v, err := catalog.ParseVersion("1.21-pre3")
		require.NoError(t, err)
		assert.Equal(t, catalog.PreRelease, v.Kind)
		assert.Equal(t, "pre-release", v.Kind.String())
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.ParseVersion("9.99")
		assert.ErrorIs(t, err, catalog.ErrUnknownVersion)
	})
}

func TestUniverse(t *testing.T) {
	t.Parallel()

	u := catalog.NewUniverse("diamond", " Oak_Planks ", "")
	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Contains("DIAMOND"))
	assert.True(t, u.Contains("OAK_PLANKS"))
	assert.False(t, u.Contains("diamond"))
	assert.Equal(t, []catalog.Material{"DIAMOND", "OAK_PLANKS"}, u.Materials())

	var nilSet *catalog.MaterialSet
	assert.False(t, nilSet.Contains("DIAMOND"))
}

func TestDefaultUniverse(t *testing.T) {
	t.Parallel()

	u := catalog.DefaultUniverse()
	assert.Same(t, u, catalog.DefaultUniverse())
	assert.True(t, u.Contains("DIAMOND"))
	assert.True(t, u.Contains("DIAMOND_SWORD"))
	assert.True(t, u.Contains("OAK_PLANKS"))
	assert.False(t, u.Contains("UNKNOWNTHING"))

	// one identifier per recent release
	for _, m := range []catalog.Material{
		"DIRT_PATH",       // 1.17
		"SCULK_CATALYST",  // 1.19
		"SNIFFER_EGG",     // 1.20
		"CRAFTER",         // 1.20.3
		"TUFF_BRICKS",     // 1.20.3
		"ARMADILLO_SCUTE", // 1.20.5
		"WOLF_ARMOR",      // 1.20.5
		"COPPER_BULB",     // 1.21
		"TRIAL_KEY",       // 1.21
		"BREEZE_ROD",      // 1.21
		"MACE",            // 1.21
	} {
		assert.True(t, u.Contains(m), "universe should contain %s", m)
	}
}

func TestParseMaterial(t *testing.T) {
	t.Parallel()

	u := catalog.NewUniverse("DIAMOND")

	m, err := catalog.ParseMaterial(u, "diamond")
	require.NoError(t, err)
	assert.Equal(t, catalog.Material("DIAMOND"), m)

	_, err = catalog.ParseMaterial(u, "emerald")
	assert.ErrorIs(t, err, catalog.ErrUnknownMaterial)

	_, err = catalog.ParseMaterial(nil, "diamond")
	assert.ErrorIs(t, err, catalog.ErrUnknownMaterial)
}
