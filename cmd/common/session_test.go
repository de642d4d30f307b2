package common

import (
	"bytes"
	"errors"
	"testing"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/tracker"
	"fjacquet/fintrack/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tr, err := tracker.Open(&store.MockUserStore{}, tracker.Options{}, logging.NewMockLogger())
	require.NoError(t, err)
	_, err = tr.Register("alice", "pw")
	require.NoError(t, err)
	tr.Logout()

	assert.ErrorIs(t, Login(tr, "", "pw"), ErrMissingCredentials)
	assert.ErrorIs(t, Login(tr, "alice", ""), ErrMissingCredentials)

	var invalid *trackererror.InvalidCredentialsError
	assert.True(t, errors.As(Login(tr, "alice", "wrong"), &invalid))
	assert.False(t, tr.IsLoggedIn())

	require.NoError(t, Login(tr, "alice", "pw"))
	assert.True(t, tr.IsLoggedIn())
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		requested, fallback, want string
		wantErr                   bool
	}{
		{"", "", "text", false},
		{"", "json", "json", false},
		{"yaml", "json", "yaml", false},
		{"xml", "text", "", true},
	}
	for _, tt := range tests {
		got, err := ResolveFormat(tt.requested, tt.fallback)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, []byte("hello\n"), nil))
	assert.Equal(t, "hello\n", buf.String())

	assert.Error(t, WriteReport(&buf, nil, errors.New("boom")))
}
