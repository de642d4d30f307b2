package shell

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCommand_Metadata(t *testing.T) {
	assert.Equal(t, "shell", Cmd.Use)
	assert.Contains(t, Cmd.Long, ":q")
	assert.NotNil(t, Cmd.RunE)
}

func TestRunShell_OverTerminal(t *testing.T) {
	mock := &store.MockUserStore{}
	logger := logging.NewMockLogger()
	tr, err := tracker.Open(mock, tracker.Options{}, logger)
	require.NoError(t, err)

	input := strings.Join([]string{
		"2", "alice", "pw",
		"",
		"1", "2024-03-05", "Food", "lunch", "12", "E",
		"",
		"5",
		"",
		"11",
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, runShell(strings.NewReader(input), &out, tr, report.NewReportGenerator(logger, "$"), logger))

	assert.Contains(t, out.String(), "Welcome to Personal Finance Tracker")
	assert.Contains(t, out.String(), "Registration successful! Logged in as alice")
	assert.Contains(t, out.String(), "Transaction 1 added successfully!")
	assert.Contains(t, out.String(), "$-12.00")
	assert.Equal(t, 2, mock.Saves)
}

func TestRunShell_EndOfInput(t *testing.T) {
	tr, err := tracker.Open(&store.MockUserStore{}, tracker.Options{}, logging.NewMockLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, runShell(strings.NewReader(""), &out, tr, report.NewReportGenerator(nil, "$"), nil))
}
