package handler

import (
	"context"
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/admin"
	apperrors "estate-service/pkg/errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admin *admin.Admin
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*admin.Admin, error) {
	if r.admin != nil && r.admin.Email == email {
		return r.admin, nil
	}
	return nil, apperrors.NotFound("admin not found")
}

type stubTokenGenerator struct {
	token string
	err   error
}

func (g *stubTokenGenerator) Generate(_ *admin.Admin) (string, error) {
	return g.token, g.err
}

func testAdmin(t *testing.T, email, plaintext string) *admin.Admin {
	t.Helper()

	// Min cost keeps the test fast; the handler only calls Verify.
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	require.NoError(t, err)

	return &admin.Admin{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test Admin",
		Role:         admin.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	a := testAdmin(t, "admin@example.com", "correct-horse")
	recorder := &recorderStub{}
	h := NewAuthHandler(&fakeAdminRepo{admin: a}, &stubTokenGenerator{token: "signed-token"}, recorder)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"Admin@Example.com","password":"correct-horse"}`)

	require.NoError(t, h.Login(c))

	body := requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "signed-token", body["token"])

	adminView := body["admin"].(map[string]any)
	assert.Equal(t, a.Email, adminView["email"])
	assert.Equal(t, a.ID.Hex(), adminView["id"])

	require.Len(t, recorder.records, 1)
	assert.Equal(t, activity.ActionLogin, recorder.records[0].Action)
	assert.Equal(t, activity.TypeAdmin, recorder.records[0].Type)
}

func TestLoginWrongPassword(t *testing.T) {
	a := testAdmin(t, "admin@example.com", "correct-horse")
	h := NewAuthHandler(&fakeAdminRepo{admin: a}, &stubTokenGenerator{token: "signed-token"}, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))

	body := requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, msgInvalidCredentials, body["error"])
}

func TestLoginUnknownEmailSameResponse(t *testing.T) {
	h := NewAuthHandler(&fakeAdminRepo{}, &stubTokenGenerator{token: "signed-token"}, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)

	require.NoError(t, h.Login(c))

	body := requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, msgInvalidCredentials, body["error"])
}

func TestLoginRejectsUnknownFields(t *testing.T) {
	h := NewAuthHandler(&fakeAdminRepo{}, &stubTokenGenerator{}, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.co","password":"x","extra":true}`)

	require.NoError(t, h.Login(c))
	requireStatus(t, rec, http.StatusBadRequest)
}
