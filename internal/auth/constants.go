package auth

const (
	ContextKeyAdmin   = "admin_identity"
	ContextKeyAdminID = "admin_id"

	jsonKeySuccess = "success"
	jsonKeyError   = "error"

	headerAuthorization = "Authorization"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgMissingAuthorization    = "missing authorization token"
	msgInvalidOrExpiredToken   = "invalid or expired token"
	msgAdminNotAuthenticated   = "admin not authenticated"
	msgInvalidIdentityCtx      = "invalid admin identity in context"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
	msgInvalidAdminIDClaim     = "invalid admin id in token claims"
)
