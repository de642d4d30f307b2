package container

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Data.File = filepath.Join(t.TempDir(), "users.txt")
	cfg.Log.Level = "error"
	return cfg
}

func TestNewContainer_NilConfig(t *testing.T) {
	c, err := NewContainer(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
	assert.Nil(t, c)

	c, err = NewContainerWithLogger(nil, logging.NewMockLogger())
	require.Error(t, err)
	assert.Nil(t, c)
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Budget.WarningThreshold = 2

	_, err := NewContainer(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestNewContainer_WiresDependencies(t *testing.T) {
	cfg := testConfig(t)
	cfg.Budget.WarningThreshold = 0.8
	cfg.CSV.Delimiter = ";"
	cfg.Report.Format = "json"

	c, err := NewContainer(cfg)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.NotNil(t, c.GetLogger())
	assert.Same(t, cfg, c.GetConfig())
	assert.Equal(t, cfg.Data.File, c.GetStore().FilePath)
	assert.NotNil(t, c.GetReportGenerator())
	assert.Equal(t, ';', c.GetDelimiter())
	assert.Equal(t, "json", c.GetReportFormat())

	tr := c.GetTracker()
	require.NotNil(t, tr)
	assert.Empty(t, tr.Profiles())
	assert.True(t, tr.WarningThreshold().Equal(decimal.RequireFromString("0.8")))
}

func TestNewContainer_LoadsExistingData(t *testing.T) {
	cfg := testConfig(t)
	data := "USER|alice|pw\nNEXT_ID|2\nBUDGETS|\nTRANS|1|2024-01-01|Food|x|5|E\nENDUSER\n"
	require.NoError(t, os.WriteFile(cfg.Data.File, []byte(data), 0600))

	logger := logging.NewMockLogger()
	c, err := NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)

	_, err = c.GetTracker().Login("alice", "pw")
	require.NoError(t, err)
	txs, err := c.GetTracker().Transactions("")
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestNewContainer_UnreadableData(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Mkdir(cfg.Data.File, 0750))

	_, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	assert.Error(t, err)
}
