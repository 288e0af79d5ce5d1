package handler

import (
	"errors"
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/visit"
	apperrors "estate-service/pkg/errors"
	"estate-service/pkg/validator"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeyVisit  = "visit"
	jsonKeyVisits = "visits"
)

type VisitHandler struct {
	repo       VisitRepository
	properties PropertyGetter
	notifier   VisitNotifier
	recorder   ActivityRecorder
}

func NewVisitHandler(repo VisitRepository, properties PropertyGetter, notifier VisitNotifier, recorder ActivityRecorder) *VisitHandler {
	return &VisitHandler{
		repo:       repo,
		properties: properties,
		notifier:   notifier,
		recorder:   recorder,
	}
}

type ScheduleVisitRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PropertyID    string `json:"propertyId"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

// Schedule is the public booking endpoint. New requests always start in
// the pending state.
func (h *VisitHandler) Schedule(c echo.Context) error {
	var req ScheduleVisitRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var badFields []string

	if req.FirstName == "" {
		badFields = append(badFields, "firstName")
	}
	if req.LastName == "" {
		badFields = append(badFields, "lastName")
	}
	if err := validator.Email(req.Email); err != nil {
		badFields = append(badFields, "email")
	}
	if err := validator.Date(req.PreferredDate); err != nil {
		badFields = append(badFields, "preferredDate")
	}

	propertyID, idErr := parseObjectID(req.PropertyID, msgInvalidPropertyID)
	if idErr != nil {
		badFields = append(badFields, "propertyId")
	}

	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	ctx := c.Request().Context()

	p, err := h.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgVisitPropNotFound)
		}
		return respondRepoError(c, err, msgVisitPropNotFound, msgVisitCreateFail)
	}

	v := &visit.Visit{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         strings.TrimSpace(req.Phone),
		PropertyID:    propertyID,
		PreferredDate: req.PreferredDate,
		PreferredTime: strings.TrimSpace(req.PreferredTime),
		Message:       strings.TrimSpace(req.Message),
		Status:        visit.StatusPending,
	}

	created, err := h.repo.Create(ctx, v)
	if err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitCreateFail)
	}

	h.notifier.VisitRequested(created, p.Title)

	return respondData(c, http.StatusCreated, map[string]any{
		jsonKeyMessage: msgVisitScheduled,
		"visitId":      created.ID.Hex(),
	})
}

func (h *VisitHandler) List(c echo.Context) error {
	visits, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitsFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyVisits: visits})
}

func (h *VisitHandler) Get(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidVisitID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	v, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitsFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyVisit: v})
}

type UpdateVisitRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	PreferredDate *string `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime"`
	Message       *string `json:"message"`
	Status        *string `json:"status"`
}

func (h *VisitHandler) Update(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidVisitID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req UpdateVisitRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	var badFields []string

	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := validator.Email(normalized); err != nil {
			badFields = append(badFields, "email")
		}
		req.Email = &normalized
	}
	if req.PreferredDate != nil {
		if err := validator.Date(*req.PreferredDate); err != nil {
			badFields = append(badFields, "preferredDate")
		}
	}
	if req.Status != nil {
		if err := validator.Enum("status", *req.Status, visit.Statuses); err != nil {
			badFields = append(badFields, "status")
		}
	}

	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	input := visit.UpdateInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Status:        req.Status,
	}

	ctx := c.Request().Context()

	if err := h.repo.Update(ctx, id, input); err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitUpdateFail)
	}

	updated, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypeScheduleVisit, "Updated visit request for "+updated.Email)

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage: msgVisitUpdated,
		jsonKeyVisit:   updated,
	})
}

type UpdateVisitStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus is the PATCH endpoint for workflow transitions only.
func (h *VisitHandler) UpdateStatus(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidVisitID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req UpdateVisitStatusRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if err := validator.Enum("status", req.Status, visit.Statuses); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidStatusValue)
	}

	ctx := c.Request().Context()

	if err := h.repo.Update(ctx, id, visit.UpdateInput{Status: &req.Status}); err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitUpdateFail)
	}

	updated, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypeScheduleVisit, "Visit request marked "+req.Status)

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage: msgVisitUpdated,
		jsonKeyVisit:   updated,
	})
}

func (h *VisitHandler) Delete(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidVisitID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	v, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitDeleteFail)
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return respondRepoError(c, err, msgVisitNotFound, msgVisitDeleteFail)
	}

	h.recorder.Record(c, activity.ActionDelete, activity.TypeScheduleVisit, "Deleted visit request for "+v.Email)

	return respondMessage(c, http.StatusOK, msgVisitDeleted)
}
