package report

import (
	"bytes"
	"testing"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/tracker"
	"fjacquet/fintrack/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newReportFixture(t *testing.T) (*tracker.Tracker, *report.ReportGenerator) {
	t.Helper()
	tr, err := tracker.Open(&store.MockUserStore{}, tracker.Options{}, logging.NewMockLogger())
	require.NoError(t, err)
	_, err = tr.Register("alice", "pw")
	require.NoError(t, err)

	for _, input := range []models.TransactionInput{
		{Date: "2024-01-10", Category: "Salary", Amount: "1000", Type: "I"},
		{Date: "2024-01-12", Category: "Food", Amount: "95", Type: "E"},
		{Date: "2024-02-01", Category: "Rent", Amount: "500", Type: "E"},
	} {
		_, err := tr.AddTransaction(input)
		require.NoError(t, err)
	}
	require.NoError(t, tr.SetBudget("Food", "100"))

	return tr, report.NewReportGenerator(logging.NewMockLogger(), "$")
}

func TestReportCommand_Structure(t *testing.T) {
	assert.Equal(t, "report", Cmd.Use)
	names := []string{}
	for _, c := range Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{KindSummary, KindBudget, KindTimeSeries, KindCategories}, names)
	assert.NotNil(t, Cmd.PersistentFlags().Lookup("format"))
}

func TestRunReport_Text(t *testing.T) {
	tr, generator := newReportFixture(t)

	tests := []struct {
		kind     string
		contains []string
	}{
		{KindSummary, []string{"Financial Summary", "$1000.00", "$595.00", "$405.00"}},
		{KindBudget, []string{"Budget Report for alice", "Food", "WARNING", "Rent"}},
		{KindTimeSeries, []string{"Monthly Summary:", "2024-01", "2024-02", "Yearly Summary:", "2024"}},
		{KindCategories, []string{"Expenses by Category", "Food", "Rent", "Total"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runReport(&out, tr, generator, tt.kind, "text"))
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunReport_YAMLBudget(t *testing.T) {
	tr, generator := newReportFixture(t)

	var out bytes.Buffer
	require.NoError(t, runReport(&out, tr, generator, KindBudget, "yaml"))

	var decoded struct {
		Username    string `yaml:"username"`
		AnyExceeded bool   `yaml:"any_exceeded"`
		Lines       []struct {
			Category string `yaml:"category"`
			Status   string `yaml:"status"`
		} `yaml:"lines"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "alice", decoded.Username)
	assert.False(t, decoded.AnyExceeded)
	require.Len(t, decoded.Lines, 1)
	assert.Equal(t, "WARNING", decoded.Lines[0].Status)
}

func TestRunReport_Errors(t *testing.T) {
	tr, generator := newReportFixture(t)

	assert.EqualError(t, runReport(&bytes.Buffer{}, tr, generator, "weekly", "text"), "unknown report: weekly")
	assert.Error(t, runReport(&bytes.Buffer{}, tr, generator, KindSummary, "xml"))

	tr.Logout()
	assert.ErrorIs(t, runReport(&bytes.Buffer{}, tr, generator, KindSummary, "text"), trackererror.ErrNotLoggedIn)
}
