package handler

import (
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/portfolio"
	"estate-service/pkg/validator"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	portfolioKeyPrefix = "portfolio"

	jsonKeyItem  = "item"
	jsonKeyItems = "items"
)

type PortfolioHandler struct {
	repo     PortfolioRepository
	media    MediaStore
	recorder ActivityRecorder
}

func NewPortfolioHandler(repo PortfolioRepository, media MediaStore, recorder ActivityRecorder) *PortfolioHandler {
	return &PortfolioHandler{
		repo:     repo,
		media:    media,
		recorder: recorder,
	}
}

func (h *PortfolioHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyItems: items})
}

func (h *PortfolioHandler) Get(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPortfolioID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	item, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyItem: item})
}

func (h *PortfolioHandler) Create(c echo.Context) error {
	item := &portfolio.Item{
		Title:       formValue(c, "title"),
		Category:    formValue(c, "category"),
		Description: formValue(c, "description"),
		Value:       formValue(c, "value"),
		Date:        formValue(c, "date"),
		Client:      formValue(c, "client"),
		Location:    formValue(c, "location"),
		Duration:    formValue(c, "duration"),
		Status:      formValue(c, "status"),
	}

	var badFields []string

	if err := validator.Title(item.Title); err != nil {
		badFields = append(badFields, "title")
	}
	if err := validator.Enum("category", item.Category, portfolio.Categories); err != nil {
		badFields = append(badFields, "category")
	}
	if err := validator.Date(item.Date); err != nil {
		badFields = append(badFields, "date")
	}

	if item.Status == "" {
		item.Status = portfolio.StatusCompleted
	} else if err := validator.Enum("status", item.Status, portfolio.Statuses); err != nil {
		badFields = append(badFields, "status")
	}

	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	files, err := formFiles(c, formFieldImages)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	images, err := uploadAll(ctx, h.media, files, portfolioKeyPrefix)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgImageUploadFail, err)
		return respondError(c, http.StatusInternalServerError, msgImageUploadFail)
	}
	item.Images = images

	created, err := h.repo.Create(ctx, item)
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioCreateFail)
	}

	h.recorder.Record(c, activity.ActionCreate, activity.TypePortfolio, "Created portfolio item: "+created.Title)

	return respondData(c, http.StatusCreated, map[string]any{
		jsonKeyMessage: msgPortfolioCreated,
		jsonKeyItem:    created,
	})
}

func (h *PortfolioHandler) Update(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPortfolioID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	current, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioUpdateFail)
	}

	var input portfolio.UpdateInput
	var badFields []string

	if raw, ok := lookupFormValue(c, "title"); ok {
		if err := validator.Title(raw); err != nil {
			badFields = append(badFields, "title")
		}
		input.Title = &raw
	}
	if raw, ok := lookupFormValue(c, "category"); ok {
		if err := validator.Enum("category", raw, portfolio.Categories); err != nil {
			badFields = append(badFields, "category")
		}
		input.Category = &raw
	}
	if raw, ok := lookupFormValue(c, "description"); ok {
		input.Description = &raw
	}
	if raw, ok := lookupFormValue(c, "value"); ok {
		input.Value = &raw
	}
	if raw, ok := lookupFormValue(c, "date"); ok {
		if err := validator.Date(raw); err != nil {
			badFields = append(badFields, "date")
		}
		input.Date = &raw
	}
	if raw, ok := lookupFormValue(c, "client"); ok {
		input.Client = &raw
	}
	if raw, ok := lookupFormValue(c, "location"); ok {
		input.Location = &raw
	}
	if raw, ok := lookupFormValue(c, "duration"); ok {
		input.Duration = &raw
	}
	if raw, ok := lookupFormValue(c, "status"); ok {
		if err := validator.Enum("status", raw, portfolio.Statuses); err != nil {
			badFields = append(badFields, "status")
		}
		input.Status = &raw
	}

	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	retained, retainedPresent, err := parseExistingImages(c, formFieldExistingImages)
	if err != nil {
		return handleHTTPError(c, err)
	}

	files, err := formFiles(c, formFieldImages)
	if err != nil {
		return handleHTTPError(c, err)
	}

	if retainedPresent || len(files) > 0 {
		if !retainedPresent {
			retained = current.Images
		}

		uploaded, err := uploadAll(ctx, h.media, files, portfolioKeyPrefix)
		if err != nil {
			c.Logger().Errorf("%s: %v", msgImageUploadFail, err)
			return respondError(c, http.StatusInternalServerError, msgImageUploadFail)
		}

		input.Images = append(retained, uploaded...)
	}

	if err := h.repo.Update(ctx, id, input); err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioUpdateFail)
	}

	if input.Images != nil {
		for _, url := range diffRemoved(current.Images, input.Images) {
			if err := h.media.DeleteObjectByURL(ctx, url); err != nil {
				c.Logger().Warnf("Failed to delete image %s: %v", url, err)
			}
		}
	}

	updated, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypePortfolio, "Updated portfolio item: "+updated.Title)

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage: msgPortfolioUpdated,
		jsonKeyItem:    updated,
	})
}

func (h *PortfolioHandler) Delete(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPortfolioID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	item, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioDeleteFail)
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioDeleteFail)
	}

	for _, url := range item.Images {
		if err := h.media.DeleteObjectByURL(ctx, url); err != nil {
			c.Logger().Warnf("Failed to delete image %s: %v", url, err)
		}
	}

	h.recorder.Record(c, activity.ActionDelete, activity.TypePortfolio, "Deleted portfolio item: "+item.Title)

	return respondMessage(c, http.StatusOK, msgPortfolioDeleted)
}

// PublicList filters server-side by category and status when provided.
func (h *PortfolioHandler) PublicList(c echo.Context) error {
	filter := portfolio.PublicFilter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}

	items, err := h.repo.ListPublic(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err, msgPortfolioNotFound, msgPortfolioFail)
	}

	views := make([]portfolio.PublicView, 0, len(items))
	for _, item := range items {
		views = append(views, item.Public())
	}

	return respondData(c, http.StatusOK, map[string]any{"portfolio": views})
}
