package handler

import (
	"estate-service/internal/domain/contact"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitMissingMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	h := NewContactHandler(repo, &notifierStub{}, &recorderStub{}, 20)

	c, rec := newJSONContext(t, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com"}`)

	require.NoError(t, h.Submit(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Name, email, and message are required fields", body["error"])
	assert.Empty(t, repo.contacts)
}

func TestContactSubmitInvalidEmail(t *testing.T) {
	h := NewContactHandler(&fakeContactRepo{}, &notifierStub{}, &recorderStub{}, 20)

	c, rec := newJSONContext(t, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"not-an-email","message":"hello"}`)

	require.NoError(t, h.Submit(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, msgInvalidEmailAddress, body["error"])
}

func TestContactSubmitDefaultsAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &notifierStub{}
	h := NewContactHandler(repo, notifier, &recorderStub{}, 20)

	c, rec := newJSONContext(t, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"JANE@Example.com","message":"I want to buy a house"}`)

	require.NoError(t, h.Submit(c))

	body := requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, msgContactSubmitted, body["message"])
	assert.NotEmpty(t, body["contactId"])

	require.Len(t, repo.contacts, 1)
	stored := repo.contacts[0]
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, contact.DefaultService, stored.Service)
	assert.Equal(t, contact.StatusNew, stored.Status)
	assert.Equal(t, contact.SourceWebsite, stored.Source)

	require.Len(t, notifier.contacts, 1)
	assert.Equal(t, stored.ID, notifier.contacts[0].ID)
}

func TestContactListPaginationEnvelope(t *testing.T) {
	repo := &fakeContactRepo{}
	for i := 0; i < 45; i++ {
		_, err := repo.Create(nil, &contact.Contact{
			Name:    fmt.Sprintf("Visitor %d", i),
			Email:   fmt.Sprintf("v%d@example.com", i),
			Message: "hi",
			Status:  contact.StatusNew,
		})
		require.NoError(t, err)
	}

	h := NewContactHandler(repo, &notifierStub{}, &recorderStub{}, 20)

	c, rec := newJSONContext(t, http.MethodGet, "/api/contacts?page=2", "")

	require.NoError(t, h.List(c))

	body := requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, float64(2), body["currentPage"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Equal(t, float64(45), body["totalContacts"])
	assert.Equal(t, true, body["hasNext"])
	assert.Equal(t, true, body["hasPrev"])
	assert.Len(t, body["contacts"], 20)
}

func TestContactUpdateStatus(t *testing.T) {
	repo := &fakeContactRepo{}
	created, err := repo.Create(nil, &contact.Contact{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "hi",
		Status:  contact.StatusNew,
	})
	require.NoError(t, err)

	h := NewContactHandler(repo, &notifierStub{}, &recorderStub{}, 20)

	c, rec := newJSONContext(t, http.MethodPut, "/api/contacts/"+created.ID.Hex()+"/status",
		`{"status":"contacted"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())

	require.NoError(t, h.UpdateStatus(c))

	body := requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, msgContactStatusUpdated, body["message"])
	assert.Equal(t, contact.StatusContacted, repo.contacts[0].Status)
}

func TestContactUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &fakeContactRepo{}
	created, err := repo.Create(nil, &contact.Contact{Name: "J", Email: "j@e.co", Message: "m", Status: contact.StatusNew})
	require.NoError(t, err)

	h := NewContactHandler(repo, &notifierStub{}, &recorderStub{}, 20)

	c, rec := newJSONContext(t, http.MethodPut, "/api/contacts/x/status", `{"status":"spam"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())

	require.NoError(t, h.UpdateStatus(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, msgInvalidStatusValue, body["error"])
	assert.Equal(t, contact.StatusNew, repo.contacts[0].Status)
}
