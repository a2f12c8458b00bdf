package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// RequireStarted fails the test unless the app in result started.
func RequireStarted(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.NoError(t, result.Err, "the application should start without errors")
	require.NotNil(t, result.App, "the app instance should not be nil")
}

// RequireGet resolves name as want and fails the test unless an instance
// was produced.
func RequireGet(t *testing.T, result *HarnessResult, name string, want datapkg.Type) any {
	t.Helper()
	v, ok, err := result.App.Get(context.Background(), name, want)
	require.NoError(t, err, "get %s as %s", name, want)
	require.True(t, ok, "package %s should provide %s", name, want)
	return v
}
