package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eventcore.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfig(t, "system:\n  http_port: 9090\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "", cfg.BacktestAddr)
	assert.Equal(t, 600, cfg.SLA.CooldownSeconds)
	assert.Equal(t, 5, cfg.SLA.WarningRepeatEscalate)
	assert.Equal(t, 3, cfg.SLA.CriticalRepeatEscalate)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.RunAge)
	assert.Equal(t, 12*time.Hour, cfg.Retention.PruneInterval)
	assert.Empty(t, cfg.Sources)
	assert.Empty(t, cfg.Connectors)
}

func TestInitialize_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
system:
  http_port: 8081
  backtest_addr: "localhost:50051"
  retention:
    run_age: 168h
    prune_interval: 1h
sla:
  cooldown_seconds: 300
sources:
  - source_name: cninfo
    source_type: announcement
    provider: cninfo
    timezone: Asia/Shanghai
    reliability_score: 0.9
connectors:
  - connector_name: cninfo_daily
    source_name: cninfo
    connector_type: http_json
    fetch_limit: 500
    config:
      url: "http://example.test/api"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTPPort)
	assert.Equal(t, "localhost:50051", cfg.BacktestAddr)
	assert.Equal(t, 300, cfg.SLA.CooldownSeconds)
	// Unset SLA values keep defaults.
	assert.Equal(t, 5, cfg.SLA.WarningRepeatEscalate)
	assert.Equal(t, 168*time.Hour, cfg.Retention.RunAge)
	assert.Equal(t, time.Hour, cfg.Retention.PruneInterval)
	// Unset retention values keep defaults.
	assert.Equal(t, 90*24*time.Hour, cfg.Retention.SLAHistory)

	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "cninfo", cfg.Sources[0].SourceName)
	require.Len(t, cfg.Connectors, 1)
	assert.Equal(t, "cninfo_daily", cfg.Connectors[0].ConnectorName)
	assert.Equal(t, "http://example.test/api", cfg.Connectors[0].Config["url"])
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "system: [unclosed\n")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("EVENTCORE_TEST_TOKEN", "tok-123")
	dir := writeConfig(t, `
connectors:
  - connector_name: tushare_daily
    source_name: tushare
    connector_type: tushare_announcement
    config:
      token: "{{.EVENTCORE_TEST_TOKEN}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, cfg.Connectors, 1)
	assert.Equal(t, "tok-123", cfg.Connectors[0].Config["token"])
}

func TestInitialize_UnknownConnectorType(t *testing.T) {
	dir := writeConfig(t, `
connectors:
  - connector_name: bad
    source_name: src
    connector_type: carrier_pigeon
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "carrier_pigeon")
}
