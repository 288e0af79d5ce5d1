package handler

import (
	"estate-service/internal/domain/team"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCreateNormalizesSkills(t *testing.T) {
	repo := newFakeTeamRepo()
	h := NewTeamHandler(repo, &mediaStub{}, &recorderStub{})

	c, rec := newFormContext(t, http.MethodPost, "/api/team", map[string]string{
		"name":     "Alice Umutoni",
		"position": "Senior Agent",
		"skills":   " Sales , , Negotiation ",
		"socialLinks": `{"linkedin":"https://linkedin.com/in/alice"}`,
	})

	require.NoError(t, h.Create(c))

	body := requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, msgTeamCreated, body["message"])

	require.Len(t, repo.members, 1)
	for _, m := range repo.members {
		assert.Equal(t, []string{"Sales", "Negotiation"}, m.Skills)
		assert.Equal(t, "https://linkedin.com/in/alice", m.SocialLinks.LinkedIn)
	}
}

func TestTeamCreateRejectsNonArraySkillsJSON(t *testing.T) {
	repo := newFakeTeamRepo()
	h := NewTeamHandler(repo, &mediaStub{}, &recorderStub{})

	c, rec := newFormContext(t, http.MethodPost, "/api/team", map[string]string{
		"name":     "Alice Umutoni",
		"position": "Senior Agent",
		"skills":   `{"not":"an array"}`,
	})

	require.NoError(t, h.Create(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	fields := body["fields"].([]any)
	assert.Contains(t, fields, "skills")
	assert.Empty(t, repo.members)
}

func TestTeamUpdateReplacesImage(t *testing.T) {
	repo := newFakeTeamRepo()
	created, err := repo.Create(nil, &team.Member{
		Name:     "Alice Umutoni",
		Position: "Senior Agent",
		Image:    "https://cdn.test/team/old.jpg",
	})
	require.NoError(t, err)

	media := &mediaStub{}
	h := NewTeamHandler(repo, media, &recorderStub{})

	c, rec := newMultipartContext(t, "/api/team/x", map[string]string{
		"position": "Lead Agent",
	}, map[string][]string{
		"image": {"new.jpg"},
	})
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())

	require.NoError(t, h.Update(c))
	requireStatus(t, rec, http.StatusOK)

	stored := repo.members[created.ID]
	assert.Equal(t, "Lead Agent", stored.Position)
	assert.Equal(t, "https://cdn.test/team/new.jpg", stored.Image)
	assert.Equal(t, []string{"https://cdn.test/team/old.jpg"}, media.deleted)
}

func TestTeamPublicListProjection(t *testing.T) {
	repo := newFakeTeamRepo()
	_, err := repo.Create(nil, &team.Member{
		Name:     "Alice Umutoni",
		Position: "Senior Agent",
		Email:    "alice@amizero.rw",
		Phone:    "+250788000000",
	})
	require.NoError(t, err)

	h := NewTeamHandler(repo, &mediaStub{}, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/public/team", "")

	require.NoError(t, h.PublicList(c))

	body := requireStatus(t, rec, http.StatusOK)
	members := body["team"].([]any)
	require.Len(t, members, 1)

	view := members[0].(map[string]any)
	assert.Equal(t, "Alice Umutoni", view["name"])

	// Contact details stay off the public projection
	assert.NotContains(t, view, "email")
	assert.NotContains(t, view, "phone")
}
