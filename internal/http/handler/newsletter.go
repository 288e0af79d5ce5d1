package handler

import (
	"errors"
	"estate-service/internal/domain/newsletter"
	apperrors "estate-service/pkg/errors"
	"estate-service/pkg/validator"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeySubscribers = "subscribers"
)

type NewsletterHandler struct {
	repo NewsletterRepository
}

func NewNewsletterHandler(repo NewsletterRepository) *NewsletterHandler {
	return &NewsletterHandler{repo: repo}
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return respondError(c, http.StatusBadRequest, msgEmailRequired)
	}
	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidEmailAddress)
	}

	sub := &newsletter.Subscriber{
		Email:  req.Email,
		Name:   strings.TrimSpace(req.Name),
		Status: newsletter.StatusActive,
		Source: newsletter.SourceWebsite,
	}

	if _, err := h.repo.Create(c.Request().Context(), sub); err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			return respondError(c, http.StatusBadRequest, msgAlreadySubscribed)
		}

		c.Logger().Errorf("Failed to store subscriber: %v", err)
		return respondError(c, http.StatusInternalServerError, msgSubscribeFail)
	}

	return respondMessage(c, http.StatusCreated, msgSubscribed)
}

func (h *NewsletterHandler) List(c echo.Context) error {
	subscribers, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgSubscriberNotFound, msgSubscribersFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeySubscribers: subscribers})
}

func (h *NewsletterHandler) Delete(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgSubscriberNotFound)
	if err != nil {
		return handleHTTPError(c, err)
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respondRepoError(c, err, msgSubscriberNotFound, msgUnsubscribeFail)
	}

	return respondMessage(c, http.StatusOK, msgUnsubscribed)
}
