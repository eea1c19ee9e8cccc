package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
)

func TestAppConfig_Languages(t *testing.T) {
	t.Parallel()

	langs, err := AppConfig{Languages: []string{"EN_US", " ru_ru "}}.languages()
	require.NoError(t, err)
	assert.Equal(t, []catalog.Language{catalog.EnUS, catalog.RuRU}, langs)

	_, err = AppConfig{Languages: []string{"en_us", "klingon"}}.languages()
	assert.ErrorIs(t, err, catalog.ErrUnknownLanguage)
}

func TestAppConfig_UpstreamFetcher(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	f, err := AppConfig{Source: SourceHTTP}.upstreamFetcher(ctx)
	require.NoError(t, err)
	assert.IsType(t, &dictionary.HTTPFetcher{}, f)

	f, err = AppConfig{Source: SourceFS, MirrorDir: t.TempDir()}.upstreamFetcher(ctx)
	require.NoError(t, err)
	assert.IsType(t, &dictionary.FSFetcher{}, f)

	_, err = AppConfig{Source: SourceFS}.upstreamFetcher(ctx)
	assert.ErrorIs(t, err, errMissingMirrorDir)

	_, err = AppConfig{Source: SourceS3}.upstreamFetcher(ctx)
	assert.ErrorIs(t, err, dictionary.ErrMissingBucket)

	_, err = AppConfig{Source: "ftp"}.upstreamFetcher(ctx)
	assert.ErrorIs(t, err, errUnknownSource)
}

func TestLoadOverridesFile(t *testing.T) {
	t.Parallel()

	_, err := loadOverridesFile("does-not-exist.yaml")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ru_ru:\n  diamond: Алмазик\n"), 0o600))

	o, err := loadOverridesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Алмазик", o[catalog.RuRU]["DIAMOND"])
}
