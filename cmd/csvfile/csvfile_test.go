package csvfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/tracker"
	"fjacquet/fintrack/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedInTracker(t *testing.T, username string) *tracker.Tracker {
	t.Helper()
	tr, err := tracker.Open(&store.MockUserStore{}, tracker.Options{}, logging.NewMockLogger())
	require.NoError(t, err)
	_, err = tr.Register(username, "pw")
	require.NoError(t, err)
	return tr
}

func TestCommands_Flags(t *testing.T) {
	assert.Equal(t, "export", ExportCmd.Use)
	assert.Equal(t, "import", ImportCmd.Use)
	assert.NotNil(t, ExportCmd.Flags().Lookup("output"))
	assert.NotNil(t, ImportCmd.Flags().Lookup("input"))
}

func TestExportThenImport(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "export.csv")

	source := newLoggedInTracker(t, "alice")
	for _, input := range []models.TransactionInput{
		{Date: "2024-01-10", Category: "Salary", Description: "jan, pay", Amount: "1000", Type: "I"},
		{Date: "2024-01-12", Category: "Food", Amount: "12.5", Type: "E"},
	} {
		_, err := source.AddTransaction(input)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	require.NoError(t, runExport(&out, source, path, ';', logger))
	assert.Equal(t, "Exported 2 transactions to "+path+"\n", out.String())

	target := newLoggedInTracker(t, "bob")
	_, err := target.AddTransaction(models.TransactionInput{Date: "2023-12-31", Category: "Gift", Amount: "5", Type: "I"})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, runImport(&out, target, path, ';', logger))
	assert.Equal(t, "Imported 2 transactions from "+path+"\n", out.String())

	txs, err := target.Transactions("")
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, 2, txs[1].ID)
	assert.Equal(t, "jan, pay", txs[1].Description)
	assert.Equal(t, "12.50", txs[2].Amount.StringFixed(2))
}

func TestImport_ReportsRejectedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "date,category,description,amount,type\n" +
		"2024-01-01,Food,ok,5,E\n" +
		"2024-01-02,Food,bad amount,abc,E\n" +
		"2024-01-03,Food,bad type,5,X\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	tr := newLoggedInTracker(t, "alice")
	var out bytes.Buffer
	require.NoError(t, runImport(&out, tr, path, ',', logging.NewMockLogger()))

	assert.Contains(t, out.String(), "Imported 1 transactions")
	assert.Contains(t, out.String(), "skipped row 2: failed to parse amount='abc'")
	assert.Contains(t, out.String(), "skipped row 3: failed to parse type='X'")
}

func TestImport_Errors(t *testing.T) {
	tr := newLoggedInTracker(t, "alice")
	assert.Error(t, runImport(&bytes.Buffer{}, tr, filepath.Join(t.TempDir(), "missing.csv"), ',', logging.NewMockLogger()))

	tr.Logout()
	err := runImport(&bytes.Buffer{}, tr, "unused.csv", ',', logging.NewMockLogger())
	assert.ErrorIs(t, err, trackererror.ErrNotLoggedIn)

	err = runExport(&bytes.Buffer{}, tr, filepath.Join(t.TempDir(), "out.csv"), ',', logging.NewMockLogger())
	assert.ErrorIs(t, err, trackererror.ErrNotLoggedIn)
}
