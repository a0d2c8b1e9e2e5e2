package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) (configPath, ledgerPath, exportPath string) {
	t.Helper()

	dir := t.TempDir()
	ledgerPath = filepath.Join(dir, "expenses.csv")
	exportPath = filepath.Join(dir, "report.csv")
	configPath = filepath.Join(dir, "config.yaml")
	raw := "ledger:\n  file: " + ledgerPath + "\n  export-file: " + exportPath + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(raw), 0o644))
	return configPath, ledgerPath, exportPath
}

func execute(t *testing.T, configPath, input string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func Test_OnCommands_ShouldDriveLedger(t *testing.T) {
	configPath, ledgerPath, exportPath := writeConfig(t)
	today := time.Now().Format("2006-01-02")

	_, err := execute(t, configPath, "", "add", "10.00", "Food", "weekly", "groceries")
	require.NoError(t, err)
	_, err = execute(t, configPath, "", "add", "5.50", "Food")
	require.NoError(t, err)
	_, err = execute(t, configPath, "", "add", "20", "Bills", "phone")
	require.NoError(t, err)

	out, err := execute(t, configPath, "", "list")
	require.NoError(t, err)
	assert.Equal(t,
		"1. "+today+", 10.00, Food, weekly groceries\n"+
			"2. "+today+", 5.50, Food, \n"+
			"3. "+today+", 20, Bills, phone\n",
		out)

	out, err = execute(t, configPath, "", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Food: $15.50\nBills: $20.00\nTotal: $35.50\n", out)

	out, err = execute(t, configPath, "", "search", "PHONE")
	require.NoError(t, err)
	assert.Equal(t, today+", 20, Bills, phone\n", out)

	out, err = execute(t, configPath, "", "month")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, today))

	out, err = execute(t, configPath, "", "month", "1999-01")
	require.NoError(t, err)
	assert.Equal(t, "No expenses found for 1999-01.\n", out)

	_, err = execute(t, configPath, "", "delete", "2")
	require.NoError(t, err)

	_, err = execute(t, configPath, "", "export")
	require.NoError(t, err)
	want, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	got, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 3, strings.Count(string(got), "\n"))
}

func Test_OnInvalidInput_ShouldFail(t *testing.T) {
	configPath, ledgerPath, _ := writeConfig(t)

	_, err := execute(t, configPath, "", "add", "--", "-3", "Food")
	assert.Error(t, err)

	_, err = execute(t, configPath, "", "delete", "1")
	assert.Error(t, err)

	_, err = execute(t, configPath, "", "delete", "one")
	assert.Error(t, err)

	raw, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount,Category,Description\n", string(raw))
}

func Test_OnNoSubcommand_ShouldRunMenu(t *testing.T) {
	configPath, _, _ := writeConfig(t)

	out, err := execute(t, configPath, "1\n7\nTaxi\nairport\n2\n8\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Expense added successfully!")
	assert.Contains(t, out, ", 7, Taxi, airport")
	assert.Contains(t, out, "Exiting. Have a great day!")
}
