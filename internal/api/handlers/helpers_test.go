package handlers_test

import (
	"testing"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/require"
)

var editor = auth.NewIdentity("editor@example.com")

// newAuthenticatedHTTP returns a router behind RequireAuth and a client that
// sends a token for editor
func newAuthenticatedHTTP(t *testing.T) *testutils.HTTPTestSuite {
	t.Helper()

	authService, err := auth.NewAuthService(auth.NewAuthConfig("handler-test-secret"))
	require.NoError(t, err)
	token, err := authService.GenerateJWT(editor)
	require.NoError(t, err)

	client := testutils.SetupHTTPTest()
	client.Router.Use(auth.NewAuthMiddleware(authService).RequireAuth())
	client.Token = token
	return client
}
