package handler

import (
	"bytes"
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/property"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultipartContext(t *testing.T, target string, fields map[string]string, files map[string][]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPropertyCreateCoercesNumericFields(t *testing.T) {
	repo := newFakePropertyRepo()
	media := &mediaStub{}
	recorder := &recorderStub{}
	h := NewPropertyHandler(repo, media, recorder)

	c, rec := newMultipartContext(t, "/api/properties", map[string]string{
		"title":        "Lakeside Villa",
		"location":     "Kigali",
		"price":        "250000.50",
		"type":         "sale",
		"propertyType": "villa",
		"bedrooms":     "4",
		"bathrooms":    "3",
		"area":         "320.5",
		"description":  "Quiet, green neighborhood",
	}, map[string][]string{
		"images": {"front.jpg", "garden.jpg"},
	})

	require.NoError(t, h.Create(c))

	body := requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, msgPropertyCreated, body["message"])

	created := body["property"].(map[string]any)
	assert.Equal(t, 250000.50, created["price"])
	assert.Equal(t, float64(4), created["bedrooms"])
	assert.Equal(t, 320.5, created["area"])
	assert.Equal(t, property.StatusActive, created["status"])

	assert.Len(t, media.uploaded, 2)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, activity.ActionCreate, recorder.records[0].Action)
	assert.Equal(t, activity.TypeProperty, recorder.records[0].Type)
}

func TestPropertyCreateRejectsBadEnumWithoutPersisting(t *testing.T) {
	repo := newFakePropertyRepo()
	media := &mediaStub{}
	h := NewPropertyHandler(repo, media, &recorderStub{})

	c, rec := newMultipartContext(t, "/api/properties", map[string]string{
		"title":        "Lakeside Villa",
		"price":        "250000",
		"type":         "lease",
		"propertyType": "villa",
	}, nil)

	require.NoError(t, h.Create(c))

	body := requireStatus(t, rec, http.StatusBadRequest)
	fields := body["fields"].([]any)
	assert.Contains(t, fields, "type")
	assert.Empty(t, repo.items)
	assert.Empty(t, media.uploaded)
}

func TestPropertyPublicListHidesInactive(t *testing.T) {
	repo := newFakePropertyRepo()

	_, err := repo.Create(nil, &property.Property{Title: "Active", Type: "sale", PropertyType: "house", Status: property.StatusActive})
	require.NoError(t, err)
	_, err = repo.Create(nil, &property.Property{Title: "Sold", Type: "sale", PropertyType: "house", Status: property.StatusSold})
	require.NoError(t, err)

	h := NewPropertyHandler(repo, &mediaStub{}, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/public/properties", "")

	require.NoError(t, h.PublicList(c))

	body := requireStatus(t, rec, http.StatusOK)
	properties := body["properties"].([]any)
	require.Len(t, properties, 1)
	assert.Equal(t, "Active", properties[0].(map[string]any)["title"])
}

func TestPropertyPublicGetGatesByStatus(t *testing.T) {
	repo := newFakePropertyRepo()
	sold, err := repo.Create(nil, &property.Property{Title: "Sold", Type: "sale", PropertyType: "house", Status: property.StatusSold})
	require.NoError(t, err)

	h := NewPropertyHandler(repo, &mediaStub{}, &recorderStub{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/public/properties/x", "")
	c.SetParamNames("id")
	c.SetParamValues(sold.ID.Hex())

	require.NoError(t, h.PublicGet(c))

	body := requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, msgPropertyNotFound, body["error"])
}

func TestPropertyPublicViewSentinels(t *testing.T) {
	p := &property.Property{Title: "Bare"}
	view := p.Public()

	assert.Equal(t, "Not available", view.Location)
	assert.Equal(t, "Not available", view.Description)
	assert.NotNil(t, view.Images)
}

func TestPropertyUpdateReplacesImages(t *testing.T) {
	repo := newFakePropertyRepo()
	created, err := repo.Create(nil, &property.Property{
		Title:        "Villa",
		Type:         "sale",
		PropertyType: "villa",
		Status:       property.StatusActive,
		Images:       []string{"https://cdn.test/properties/old.jpg", "https://cdn.test/properties/keep.jpg"},
	})
	require.NoError(t, err)

	media := &mediaStub{}
	h := NewPropertyHandler(repo, media, &recorderStub{})

	c, rec := newMultipartContext(t, "/api/properties/x", map[string]string{
		"existingImages": `["https://cdn.test/properties/keep.jpg"]`,
	}, map[string][]string{
		"images": {"new.jpg"},
	})
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())

	require.NoError(t, h.Update(c))
	requireStatus(t, rec, http.StatusOK)

	stored := repo.items[created.ID]
	assert.Equal(t, []string{
		"https://cdn.test/properties/keep.jpg",
		"https://cdn.test/properties/new.jpg",
	}, stored.Images)

	// The dropped image is deleted from storage
	assert.Equal(t, []string{"https://cdn.test/properties/old.jpg"}, media.deleted)
}

func TestPropertyDeleteCleansUp(t *testing.T) {
	repo := newFakePropertyRepo()
	created, err := repo.Create(nil, &property.Property{
		Title:        "Villa",
		Type:         "sale",
		PropertyType: "villa",
		Status:       property.StatusActive,
		Images:       []string{"https://cdn.test/properties/a.jpg"},
	})
	require.NoError(t, err)

	media := &mediaStub{}
	recorder := &recorderStub{}
	h := NewPropertyHandler(repo, media, recorder)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/properties/x", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.Hex())

	require.NoError(t, h.Delete(c))

	body := requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, msgPropertyDeleted, body["message"])
	assert.Empty(t, repo.items)
	assert.Equal(t, []string{"https://cdn.test/properties/a.jpg"}, media.deleted)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, activity.ActionDelete, recorder.records[0].Action)
}
