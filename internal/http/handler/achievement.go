package handler

import (
	"context"
	"errors"
	"estate-service/internal/auth"
	"estate-service/internal/domain/achievement"
	"estate-service/internal/domain/activity"
	apperrors "estate-service/pkg/errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeyAchievements = "achievements"

	msgInvalidAchievementField = "Invalid achievement field"
)

type AchievementHandler struct {
	repo     AchievementRepository
	recorder ActivityRecorder
}

func NewAchievementHandler(repo AchievementRepository, recorder ActivityRecorder) *AchievementHandler {
	return &AchievementHandler{
		repo:     repo,
		recorder: recorder,
	}
}

// Get returns the current counters, seeding a zeroed record on first use so
// the public site never sees a 404 here.
func (h *AchievementHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	rec, err := h.repo.Latest(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return respondRepoError(c, err, msgAchievementsFail, msgAchievementsFail)
		}

		seed := achievement.Defaults()
		rec, err = h.repo.Insert(ctx, &seed)
		if err != nil {
			return respondRepoError(c, err, msgAchievementsFail, msgAchievementsFail)
		}
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyAchievements: rec})
}

type UpdateAchievementsRequest struct {
	Listings          *int `json:"listings"`
	PropertiesManaged *int `json:"propertiesManaged"`
	Transactions      *int `json:"transactions"`
	Projects          *int `json:"projects"`
}

// Update inserts a successor record with the provided counters applied and
// the rest carried forward.
func (h *AchievementHandler) Update(c echo.Context) error {
	var req UpdateAchievementsRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	var badFields []string
	if req.Listings != nil && *req.Listings < 0 {
		badFields = append(badFields, "listings")
	}
	if req.PropertiesManaged != nil && *req.PropertiesManaged < 0 {
		badFields = append(badFields, "propertiesManaged")
	}
	if req.Transactions != nil && *req.Transactions < 0 {
		badFields = append(badFields, "transactions")
	}
	if req.Projects != nil && *req.Projects < 0 {
		badFields = append(badFields, "projects")
	}
	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	ctx := c.Request().Context()

	prev, err := h.latestOrDefaults(ctx)
	if err != nil {
		return respondRepoError(c, err, msgAchievementUpdateFail, msgAchievementUpdateFail)
	}

	next := prev.Next(req.Listings, req.PropertiesManaged, req.Transactions, req.Projects, h.updatedBy(c))

	created, err := h.repo.Insert(ctx, &next)
	if err != nil {
		return respondRepoError(c, err, msgAchievementUpdateFail, msgAchievementUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypeAchievement, "Updated achievement counters")

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage:      msgAchievementsUpdated,
		jsonKeyAchievements: created,
	})
}

type UpdateAchievementFieldRequest struct {
	Value int `json:"value"`
}

// UpdateField patches a single named counter.
func (h *AchievementHandler) UpdateField(c echo.Context) error {
	field := c.Param("field")

	var req UpdateAchievementFieldRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Value < 0 {
		fields := []string{"value"}
		return respondValidationError(c, invalidFieldsMessage(fields), fields)
	}

	ctx := c.Request().Context()

	prev, err := h.latestOrDefaults(ctx)
	if err != nil {
		return respondRepoError(c, err, msgAchievementUpdateFail, msgAchievementUpdateFail)
	}

	next, err := prev.NextField(field, req.Value, h.updatedBy(c))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidAchievementField)
	}

	created, err := h.repo.Insert(ctx, &next)
	if err != nil {
		return respondRepoError(c, err, msgAchievementUpdateFail, msgAchievementUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypeAchievement, "Updated achievement counter: "+field)

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage:      msgAchievementsUpdated,
		jsonKeyAchievements: created,
	})
}

func (h *AchievementHandler) latestOrDefaults(ctx context.Context) (achievement.Record, error) {
	rec, err := h.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return achievement.Defaults(), nil
		}
		return achievement.Record{}, err
	}

	return *rec, nil
}

func (h *AchievementHandler) updatedBy(c echo.Context) string {
	identity, err := auth.GetIdentity(c)
	if err != nil {
		return "admin"
	}

	return identity.Email
}
