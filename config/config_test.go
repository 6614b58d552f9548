package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewConfigurationInstance_usesDefaults(t *testing.T) {
	assertion := assert.New(t)

	sut := Defaults()

	assertion.Equal(log.InfoLevel, sut.LogLevel())
	assertion.Equal(OrderDiscovery, sut.CandidateOrder())
	assertion.False(sut.MeasureSize())
	assertion.Equal("", sut.MetricsTextfile())
	assertion.Equal("", sut.Source())
	assertion.True(sut.Directories().IsDirectoryIncluded("anything"))
}

func Test_NewConfigurationInstance_readsAllKeys(t *testing.T) {
	assertion := assert.New(t)

	raw, err := ParseFromString(
		`
log_level: debug
candidate_order: oldest_first
measure_size: true
metrics_textfile: /var/lib/node_exporter/staledirs.prom
directories:
  exclude:
    - keep-me
`)
	require.NoError(t, err)

	sut := NewConfigurationInstance(raw)

	assertion.Equal(log.DebugLevel, sut.LogLevel())
	assertion.Equal(OrderOldestFirst, sut.CandidateOrder())
	assertion.True(sut.MeasureSize())
	assertion.Equal("/var/lib/node_exporter/staledirs.prom", sut.MetricsTextfile())
	assertion.False(sut.Directories().IsDirectoryIncluded("keep-me"))
	assertion.True(sut.Directories().IsDirectoryIncluded("other"))
}

func Test_NewConfigurationInstance_invalidValuesFallBackToDefaults(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
log_level: chatty
candidate_order: newest_first
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal(log.InfoLevel, sut.LogLevel())
	assertion.Equal(OrderDiscovery, sut.CandidateOrder())
}

func Test_NewConfigurationInstance_interpolatesEnvironment(t *testing.T) {
	assertion := assert.New(t)
	t.Setenv("STALEDIRS_METRICS", "/tmp/metrics.prom")
	t.Setenv("STALEDIRS_MEASURE", "true")

	raw, _ := ParseFromString(
		`
metrics_textfile: __${STALEDIRS_METRICS}__
measure_size: __${STALEDIRS_MEASURE}__
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal("/tmp/metrics.prom", sut.MetricsTextfile())
	assertion.True(sut.MeasureSize())
}

func Test_Load_failsForMissingExplicitFile(t *testing.T) {
	assertion := assert.New(t)

	sut, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assertion.Nil(sut)
	assertion.ErrorIs(err, os.ErrNotExist)
}

func Test_Load_failsForInvalidYaml(t *testing.T) {
	assertion := assert.New(t)
	path := filepath.Join(t.TempDir(), CfgFileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0o644))

	sut, err := Load(path)

	assertion.Nil(sut)
	assertion.ErrorContains(err, "parsing config file")
}

func Test_Load_readsExplicitFile(t *testing.T) {
	assertion := assert.New(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("candidate_order: oldest_first\n"), 0o644))

	sut, err := Load(path)

	assertion.NoError(err)
	assertion.Equal(OrderOldestFirst, sut.CandidateOrder())
	assertion.Equal(path, sut.Source())
}

func Test_Load_acceptsEmptyFile(t *testing.T) {
	assertion := assert.New(t)
	path := filepath.Join(t.TempDir(), CfgFileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	sut, err := Load(path)

	assertion.NoError(err)
	assertion.Equal(OrderDiscovery, sut.CandidateOrder())
}

func Test_LoadFromDirectories_takesFirstMatch(t *testing.T) {
	assertion := assert.New(t)
	empty := t.TempDir()
	first := t.TempDir()
	second := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(first, CfgFileName), []byte("log_level: warn\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, CfgFileName), []byte("log_level: error\n"), 0o644))

	sut, err := LoadFromDirectories([]string{empty, first, second})

	assertion.NoError(err)
	assertion.Equal(log.WarnLevel, sut.LogLevel())
	assertion.Equal(filepath.Join(first, CfgFileName), sut.Source())
}

func Test_LoadFromDirectories_usesDefaultsWithoutFile(t *testing.T) {
	assertion := assert.New(t)

	sut, err := LoadFromDirectories([]string{t.TempDir()})

	assertion.NoError(err)
	assertion.Equal("", sut.Source())
	assertion.Equal(log.InfoLevel, sut.LogLevel())
}

func Test_SearchDirectories_startsLocallyAndEndsGlobally(t *testing.T) {
	assertion := assert.New(t)

	sut := SearchDirectories()

	assertion.Equal(PathLocal, sut[0])
	assertion.Equal(PathGlobal, sut[len(sut)-1])
}
