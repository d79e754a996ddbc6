package main

import (
	"context"
	"io"
	"testing"

	"github.com/jmakela/crossroads/internal/e2etest"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUsername = "root"
	testAdminPassword = "correct-horse-battery-staple"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "CROSSROADS_ADDR":
		return "localhost:0", true
	case "CROSSROADS_PPROF_PORT":
		// Parallel test servers must not fight over the pprof port.
		return "", true
	case "CROSSROADS_SQLITE_URL":
		return ":memory:", true
	case "CROSSROADS_JWT_SECRET":
		return "test-secret", true
	case "CROSSROADS_ADMIN_USERNAME":
		return testAdminUsername, true
	case "CROSSROADS_ADMIN_PASSWORD":
		return testAdminPassword, true
	default:
		return "", false
	}
}

// startTestServer boots the full application on a free port with an in-memory
// database and returns a handle for driving it over HTTP.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv, run)
	require.NoError(t, err)
	return server
}
