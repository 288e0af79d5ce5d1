package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterSubscribe(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	h := NewNewsletterHandler(repo)

	c, rec := newJSONContext(t, http.MethodPost, "/api/newsletter",
		`{"email":"Reader@Example.com","name":"Reader"}`)

	require.NoError(t, h.Subscribe(c))

	body := requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, msgSubscribed, body["message"])

	require.Len(t, repo.subscribers, 1)
	assert.Equal(t, "reader@example.com", repo.subscribers[0].Email)
	assert.Equal(t, "active", repo.subscribers[0].Status)
}

func TestNewsletterSubscribeDuplicate(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	h := NewNewsletterHandler(repo)

	c, rec := newJSONContext(t, http.MethodPost, "/api/newsletter", `{"email":"reader@example.com"}`)
	require.NoError(t, h.Subscribe(c))
	requireStatus(t, rec, http.StatusCreated)

	// The same address again, different casing
	c, rec = newJSONContext(t, http.MethodPost, "/api/newsletter", `{"email":"READER@example.com"}`)
	require.NoError(t, h.Subscribe(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, msgAlreadySubscribed, body["error"])
	assert.Len(t, repo.subscribers, 1)
}

func TestNewsletterSubscribeMissingEmail(t *testing.T) {
	h := NewNewsletterHandler(&fakeNewsletterRepo{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/newsletter", `{"name":"No Email"}`)
	require.NoError(t, h.Subscribe(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, msgEmailRequired, body["error"])
}

func TestNewsletterDelete(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	h := NewNewsletterHandler(repo)

	c, rec := newJSONContext(t, http.MethodPost, "/api/newsletter", `{"email":"reader@example.com"}`)
	require.NoError(t, h.Subscribe(c))
	requireStatus(t, rec, http.StatusCreated)

	id := repo.subscribers[0].ID.Hex()

	c, rec = newJSONContext(t, http.MethodDelete, "/api/newsletter/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.Delete(c))

	body := requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, msgUnsubscribed, body["message"])
	assert.Empty(t, repo.subscribers)
}
