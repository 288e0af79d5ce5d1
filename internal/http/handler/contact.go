package handler

import (
	"estate-service/internal/domain/contact"
	"estate-service/pkg/validator"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeyContact  = "contact"
	jsonKeyContacts = "contacts"

	defaultContactsPerPage = 20
)

type ContactHandler struct {
	repo     ContactRepository
	notifier ContactNotifier
	recorder ActivityRecorder
	pageSize int
}

func NewContactHandler(repo ContactRepository, notifier ContactNotifier, recorder ActivityRecorder, pageSize int) *ContactHandler {
	if pageSize <= 0 {
		pageSize = defaultContactsPerPage
	}

	return &ContactHandler{
		repo:     repo,
		notifier: notifier,
		recorder: recorder,
		pageSize: pageSize,
	}
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Submit handles the public contact form. The response texts here are
// rendered verbatim by the site, so they stay as-is.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req SubmitContactRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return respondError(c, http.StatusBadRequest, msgContactFieldsRequired)
	}

	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidEmailAddress)
	}

	service := strings.TrimSpace(req.Service)
	if service == "" {
		service = contact.DefaultService
	}

	entry := &contact.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Service:   service,
		Message:   req.Message,
		Status:    contact.StatusNew,
		Source:    contact.SourceWebsite,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}

	created, err := h.repo.Create(c.Request().Context(), entry)
	if err != nil {
		c.Logger().Errorf("Failed to store contact: %v", err)
		return respondError(c, http.StatusInternalServerError, msgContactSubmitFail)
	}

	h.notifier.ContactReceived(created)

	return respondData(c, http.StatusCreated, map[string]any{
		jsonKeyMessage: msgContactSubmitted,
		"contactId":    created.ID.Hex(),
	})
}

// List serves the admin inbox with the pagination envelope the dashboard
// expects.
func (h *ContactHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}

	limit := queryInt(c, "limit", h.pageSize)
	if limit < 1 {
		limit = h.pageSize
	}

	contacts, total, err := h.repo.List(c.Request().Context(), page, limit)
	if err != nil {
		return respondRepoError(c, err, msgContactsRetrieveFail, msgContactsRetrieveFail)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyContacts: contacts,
		"currentPage":   page,
		"totalPages":    totalPages,
		"totalContacts": total,
		"hasNext":       page < totalPages,
		"hasPrev":       page > 1,
	})
}

type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidContactID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req UpdateContactStatusRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if err := validator.Enum("status", req.Status, contact.Statuses); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidStatusValue)
	}

	if err := h.repo.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return respondRepoError(c, err, msgContactNotFound, msgContactStatusUpdateFail)
	}

	return respondMessage(c, http.StatusOK, msgContactStatusUpdated)
}
