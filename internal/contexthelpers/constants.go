package contexthelpers

type contextKey string

const adminUsernameContextKey = contextKey("adminUsername")
const currentPathContextKey = contextKey("currentPath")
const csrfTokenContextKey = contextKey("csrfToken")
