package consts

// Gin context keys set by the auth middleware.
const (
	ContextTokenKey = "auth_token"
	ContextUserKey  = "auth_user"
)
