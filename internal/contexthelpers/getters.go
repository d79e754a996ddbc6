package contexthelpers

import (
	"context"
)

func AdminUsername(ctx context.Context) string {
	username, ok := ctx.Value(adminUsernameContextKey).(string)
	if !ok {
		return ""
	}

	return username
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}
