package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Int("lambda", 4, "")
	f.String("mode", "part", "")
	f.String("selection", "level_mdl", "")
	require.NoError(t, f.Parse(args))
	return f
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil, filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Lambda)
	assert.Equal(t, ClusteringLouvain, cfg.Clustering)
	assert.Equal(t, AlgorithmGreedy, cfg.Algorithm)
	assert.Equal(t, 1.0, cfg.Resolution)
	assert.Equal(t, int64(1), cfg.Seed)

	mode, err := cfg.ParsedMode()
	require.NoError(t, err)
	assert.Equal(t, rule.ModePart, mode)
	sel, err := cfg.ParsedSelection()
	require.NoError(t, err)
	assert.Equal(t, grammar.SelectLevelMDL, sel)
}

func TestLoad_Layering(t *testing.T) {
	path := writeTOML(t, "lambda = 7\nmode = \"no\"\nname = \"from-file\"\n")

	cfg, err := load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Lambda)
	assert.Equal(t, "no", cfg.Mode)
	assert.Equal(t, "from-file", cfg.Name)

	t.Setenv("VRG_LAMBDA", "9")
	cfg, err = load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Lambda, "env beats file")

	cfg, err = load(flags(t, "--lambda=11"), path)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Lambda, "flags beat env")
	assert.Equal(t, "no", cfg.Mode, "unset flags keep lower layers")
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load(flags(t, "--mode=bogus"), "")
	assert.ErrorIs(t, err, rule.ErrUnknownMode)

	_, err = load(flags(t, "--selection=best"), "")
	assert.ErrorIs(t, err, grammar.ErrUnknownSelection)

	_, err = load(flags(t, "--lambda=0"), "")
	assert.ErrorIs(t, err, ErrInvalid)

	path := writeTOML(t, "clustering = \"file\"\n")
	_, err = load(nil, path)
	assert.ErrorIs(t, err, ErrInvalid)

	path = writeTOML(t, "algorithm = \"exhaustive\"\n")
	_, err = load(nil, path)
	assert.ErrorIs(t, err, ErrInvalid)
}
