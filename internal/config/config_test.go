package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithInfo_MissingFileUsesDefaults(t *testing.T) {
	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.False(t, info.FromFile)
	assert.False(t, info.PortSpecified)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
	assert.Equal(t, "nomor id jaminan", cfg.Report.HeaderMarker)
	assert.Len(t, cfg.Report.Variants, 2)
}

func TestLoadConfigWithInfo_ParsesTomlAndVariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
port = 8081

[report]
default_variant = "custom"
fold_hospital_names = false

[[report.variants]]
name = "custom"
date_column = "tanggal klaim diajukan"
date_header = "Tanggal Klaim"
require_done = false
labels = ["a", "b", "c"]
upper_bounds = [5, 20]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)

	assert.True(t, info.FromFile)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.False(t, cfg.Report.FoldHospitalNames)

	v, ok := cfg.Report.Variant("CUSTOM")
	require.True(t, ok)
	assert.Equal(t, [3]string{"a", "b", "c"}, v.Labels)
	assert.Equal(t, [2]int{5, 20}, v.UpperBounds)
}

func TestLoadConfigWithInfo_EnvOverrides(t *testing.T) {
	t.Setenv("REKAP_PORT", "9090")
	t.Setenv("REKAP_DEFAULT_VARIANT", VariantSubmission)

	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.True(t, info.PortSpecified)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, VariantSubmission, cfg.Report.DefaultVariant)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Report.DefaultVariant = "nope"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Report.Variants[0].UpperBounds = [2]int{14, 9}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Report.HeaderMarker = "  "
	assert.Error(t, cfg.Validate())
}

func TestVariant_EmptyNameFallsBackToDefault(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	v, ok := cfg.Report.Variant("")
	require.True(t, ok)
	assert.Equal(t, VariantVerification, v.Name)
	assert.Equal(t, "tanggal verifikasi", v.DateColumn)
}

func TestEnsureDataDir_CreatesSubdirs(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Data.DataDir = t.TempDir()

	dir, err := EnsureDataDir(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Data.DataDir, dir)

	for _, sub := range []string{UploadsDir, ResultsDir} {
		st, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, st.IsDir())
	}
	assert.Equal(t, filepath.Join(dir, ResultsDir, "x.xlsx"), GetDataPath(cfg, ResultsDir, "x.xlsx"))
}
