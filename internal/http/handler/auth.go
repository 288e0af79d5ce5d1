package handler

import (
	"estate-service/internal/auth"
	"estate-service/internal/domain/activity"
	"estate-service/pkg/password"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Pre-computed bcrypt hash (cost 12) used to equalize timing on failed lookups.
// The actual plaintext is irrelevant — this just ensures constant-time response.
const dummyBcryptHash = "$2a$12$dWR5CQpS4zNHLavLSIr4o.P6QDQEUJKv7mJ7WekUHHqyRSRMJzH0S"

const jsonKeyAdmin = "admin"

type AuthHandler struct {
	adminRepo  AdminRepository
	jwtService TokenGenerator
	recorder   ActivityRecorder
}

func NewAuthHandler(adminRepo AdminRepository, jwtService TokenGenerator, recorder ActivityRecorder) *AuthHandler {
	return &AuthHandler{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		recorder:   recorder,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		password.Verify("", dummyBcryptHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	a, err := h.adminRepo.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		// Run bcrypt against a dummy hash to prevent timing oracle.
		// Without this, "admin not found" returns in ~1ms while
		// "wrong password" takes ~200ms, leaking email existence.
		password.Verify(req.Password, dummyBcryptHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	if !password.Verify(req.Password, a.PasswordHash) {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := h.jwtService.Generate(a)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgGenerateTokenFail)
	}

	h.recorder.Record(c, activity.ActionLogin, activity.TypeAdmin, "Admin logged in: "+a.Email)

	return respondData(c, http.StatusOK, map[string]any{
		"token": token,
		jsonKeyAdmin: AdminView{
			ID:    a.ID.Hex(),
			Email: a.Email,
			Name:  a.Name,
			Role:  a.Role,
		},
	})
}

// Verify reports the identity behind a valid bearer token. RequireJWT has
// already rejected anonymous or expired callers by the time this runs.
func (h *AuthHandler) Verify(c echo.Context) error {
	identity, err := auth.GetIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyAdmin: AdminView{
			ID:    identity.AdminID.Hex(),
			Email: identity.Email,
			Name:  identity.Name,
			Role:  identity.Role,
		},
	})
}
