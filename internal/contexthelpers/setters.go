package contexthelpers

import (
	"context"
	"net/http"
)

func AuthenticateAdminContext(r *http.Request, username string) *http.Request {
	ctx := context.WithValue(r.Context(), adminUsernameContextKey, username)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, currentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenContextKey, csrfToken)
	return r.WithContext(ctx)
}
