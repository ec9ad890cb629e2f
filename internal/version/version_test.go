package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoDefaults(t *testing.T) {
	v, c, d := Info()
	require.Equal(t, GetVersion(), v)
	require.Equal(t, GetCommit(), c)
	require.Equal(t, GetDate(), d)
	require.NotEmpty(t, v)
	require.NotEmpty(t, c)
	require.NotEmpty(t, d)
}

func TestString(t *testing.T) {
	s := String()
	require.True(t, strings.HasPrefix(s, "version="+GetVersion()))
	require.Contains(t, s, "commit="+GetCommit())
}

func TestFields(t *testing.T) {
	fields := Fields()
	require.Equal(t, GetVersion(), fields["version"])
	require.Len(t, fields, 3)
}

func TestOverriddenBuildInfo(t *testing.T) {
	origV, origC, origD := version, commit, date
	t.Cleanup(func() { version, commit, date = origV, origC, origD })

	version, commit, date = "v1.2.0", "abc123", "2024-03-01"
	require.Equal(t, "version=v1.2.0 commit=abc123 date=2024-03-01", String())
}
