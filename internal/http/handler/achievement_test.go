package handler

import (
	"context"
	"estate-service/internal/domain/achievement"
	apperrors "estate-service/pkg/errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAchievementRepo keeps the full insert history, newest last.

type fakeAchievementRepo struct {
	records []*achievement.Record
}

func (r *fakeAchievementRepo) Latest(_ context.Context) (*achievement.Record, error) {
	if len(r.records) == 0 {
		return nil, apperrors.NotFound("achievements not found")
	}

	clone := *r.records[len(r.records)-1]
	return &clone, nil
}

func (r *fakeAchievementRepo) Insert(_ context.Context, rec *achievement.Record) (*achievement.Record, error) {
	rec.ID = primitive.NewObjectID()
	r.records = append(r.records, rec)
	return rec, nil
}

func TestAchievementsGetSeedsDefaults(t *testing.T) {
	repo := &fakeAchievementRepo{}
	h := NewAchievementHandler(repo, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/achievements", "")

	require.NoError(t, h.Get(c))

	body := requireStatus(t, rec, http.StatusOK)
	counters := body["achievements"].(map[string]any)
	assert.Equal(t, float64(0), counters["listings"])
	assert.Equal(t, "system", counters["updatedBy"])

	// The seed record is persisted
	require.Len(t, repo.records, 1)
}

func TestAchievementsUpdateCarriesForward(t *testing.T) {
	repo := &fakeAchievementRepo{}
	_, err := repo.Insert(nil, &achievement.Record{
		Listings:          10,
		PropertiesManaged: 25,
		Transactions:      40,
		Projects:          5,
		UpdatedBy:         "system",
	})
	require.NoError(t, err)

	h := NewAchievementHandler(repo, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPut, "/api/achievements", `{"listings":12,"projects":6}`)

	require.NoError(t, h.Update(c))

	body := requireStatus(t, rec, http.StatusOK)
	counters := body["achievements"].(map[string]any)
	assert.Equal(t, float64(12), counters["listings"])
	assert.Equal(t, float64(6), counters["projects"])

	// Untouched counters carry forward from the previous record
	assert.Equal(t, float64(25), counters["propertiesManaged"])
	assert.Equal(t, float64(40), counters["transactions"])

	// History keeps both versions
	require.Len(t, repo.records, 2)
	assert.Equal(t, 10, repo.records[0].Listings)
}

func TestAchievementsUpdateSingleField(t *testing.T) {
	repo := &fakeAchievementRepo{}
	_, err := repo.Insert(nil, &achievement.Record{Listings: 10, Transactions: 40})
	require.NoError(t, err)

	h := NewAchievementHandler(repo, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPut, "/api/achievements/transactions", `{"value":41}`)
	c.SetParamNames("field")
	c.SetParamValues("transactions")

	require.NoError(t, h.UpdateField(c))

	body := requireStatus(t, rec, http.StatusOK)
	counters := body["achievements"].(map[string]any)
	assert.Equal(t, float64(41), counters["transactions"])
	assert.Equal(t, float64(10), counters["listings"])
}

func TestAchievementsUpdateRejectsNegativeCounters(t *testing.T) {
	repo := &fakeAchievementRepo{}
	h := NewAchievementHandler(repo, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPut, "/api/achievements", `{"listings":-3,"projects":2}`)

	require.NoError(t, h.Update(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, body["fields"], "listings")
	assert.NotContains(t, body["fields"], "projects")
	assert.Empty(t, repo.records)
}

func TestAchievementsUpdateFieldRejectsNegativeValue(t *testing.T) {
	repo := &fakeAchievementRepo{}
	h := NewAchievementHandler(repo, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPut, "/api/achievements/listings", `{"value":-1}`)
	c.SetParamNames("field")
	c.SetParamValues("listings")

	require.NoError(t, h.UpdateField(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, body["fields"], "value")
	assert.Empty(t, repo.records)
}

func TestAchievementsUpdateUnknownField(t *testing.T) {
	repo := &fakeAchievementRepo{}
	h := NewAchievementHandler(repo, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodPut, "/api/achievements/downloads", `{"value":7}`)
	c.SetParamNames("field")
	c.SetParamValues("downloads")

	require.NoError(t, h.UpdateField(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, msgInvalidAchievementField, body["error"])
	assert.Empty(t, repo.records)
}
