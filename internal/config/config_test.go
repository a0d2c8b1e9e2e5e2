package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	conf, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "expenses.csv", conf.Ledger().File())
	assert.Equal(t, "expense_report.csv", conf.Ledger().ExportFile())
	assert.Equal(t, "$", conf.App().CurrencySymbol())
	assert.Equal(t, "", conf.Metrics().Addr())
	assert.False(t, conf.Tracing().Enabled())
	assert.Equal(t, "expense-tracker", conf.Tracing().ServiceName())
}

func Test_OnPartialFile_ShouldOverrideOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "ledger:\n  file: /tmp/mine.csv\napp:\n  currency-symbol: \"€\"\nmetrics:\n  addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	conf, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/mine.csv", conf.Ledger().File())
	assert.Equal(t, "expense_report.csv", conf.Ledger().ExportFile())
	assert.Equal(t, "€", conf.App().CurrencySymbol())
	assert.Equal(t, ":9090", conf.Metrics().Addr())
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger: [unclosed"), 0o644))

	_, err := New(path)
	assert.Error(t, err)
}
