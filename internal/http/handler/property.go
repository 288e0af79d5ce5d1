package handler

import (
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/property"
	"estate-service/pkg/validator"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	propertyKeyPrefix = "properties"

	jsonKeyProperty   = "property"
	jsonKeyProperties = "properties"

	formFieldImages         = "images"
	formFieldExistingImages = "existingImages"
)

type PropertyHandler struct {
	repo     PropertyRepository
	media    MediaStore
	recorder ActivityRecorder
}

func NewPropertyHandler(repo PropertyRepository, media MediaStore, recorder ActivityRecorder) *PropertyHandler {
	return &PropertyHandler{
		repo:     repo,
		media:    media,
		recorder: recorder,
	}
}

func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertiesFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyProperties: properties})
}

func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPropertyID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	p, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertiesFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyProperty: p})
}

// Create accepts a multipart form: text fields plus any number of files
// under "images". Numeric fields arrive as strings and are coerced here.
func (h *PropertyHandler) Create(c echo.Context) error {
	p := &property.Property{
		Title:        formValue(c, "title"),
		Location:     formValue(c, "location"),
		Type:         formValue(c, "type"),
		PropertyType: formValue(c, "propertyType"),
		Description:  formValue(c, "description"),
		Status:       formValue(c, "status"),
	}

	var badFields []string

	if err := validator.Title(p.Title); err != nil {
		badFields = append(badFields, "title")
	}

	price, err := validator.NonNegativeFloat("price", formValue(c, "price"))
	if err != nil {
		badFields = append(badFields, "price")
	}
	p.Price = price

	if err := validator.Enum("type", p.Type, property.Types); err != nil {
		badFields = append(badFields, "type")
	}
	if err := validator.Enum("propertyType", p.PropertyType, property.PropertyTypes); err != nil {
		badFields = append(badFields, "propertyType")
	}

	if raw := formValue(c, "bedrooms"); raw != "" {
		n, err := validator.NonNegativeInt("bedrooms", raw)
		if err != nil {
			badFields = append(badFields, "bedrooms")
		}
		p.Bedrooms = n
	}
	if raw := formValue(c, "bathrooms"); raw != "" {
		n, err := validator.NonNegativeInt("bathrooms", raw)
		if err != nil {
			badFields = append(badFields, "bathrooms")
		}
		p.Bathrooms = n
	}
	if raw := formValue(c, "area"); raw != "" {
		f, err := validator.NonNegativeFloat("area", raw)
		if err != nil {
			badFields = append(badFields, "area")
		}
		p.Area = f
	}

	if p.Status == "" {
		p.Status = property.StatusActive
	} else if err := validator.Enum("status", p.Status, property.Statuses); err != nil {
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

	images, err := uploadAll(ctx, h.media, files, propertyKeyPrefix)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgImageUploadFail, err)
		return respondError(c, http.StatusInternalServerError, msgImageUploadFail)
	}
	p.Images = images

	created, err := h.repo.Create(ctx, p)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertyCreateFail)
	}

	h.recorder.Record(c, activity.ActionCreate, activity.TypeProperty, "Created property: "+created.Title)

	return respondData(c, http.StatusCreated, map[string]any{
		jsonKeyMessage:  msgPropertyCreated,
		jsonKeyProperty: created,
	})
}

func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPropertyID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	current, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertyUpdateFail)
	}

	var input property.UpdateInput
	var badFields []string

	if raw, ok := lookupFormValue(c, "title"); ok {
		if err := validator.Title(raw); err != nil {
			badFields = append(badFields, "title")
		}
		input.Title = &raw
	}
	if raw, ok := lookupFormValue(c, "location"); ok {
		input.Location = &raw
	}
	if raw, ok := lookupFormValue(c, "price"); ok {
		f, err := validator.NonNegativeFloat("price", raw)
		if err != nil {
			badFields = append(badFields, "price")
		}
		input.Price = &f
	}
	if raw, ok := lookupFormValue(c, "type"); ok {
		if err := validator.Enum("type", raw, property.Types); err != nil {
			badFields = append(badFields, "type")
		}
		input.Type = &raw
	}
	if raw, ok := lookupFormValue(c, "propertyType"); ok {
		if err := validator.Enum("propertyType", raw, property.PropertyTypes); err != nil {
			badFields = append(badFields, "propertyType")
		}
		input.PropertyType = &raw
	}
	if raw, ok := lookupFormValue(c, "bedrooms"); ok {
		n, err := validator.NonNegativeInt("bedrooms", raw)
		if err != nil {
			badFields = append(badFields, "bedrooms")
		}
		input.Bedrooms = &n
	}
	if raw, ok := lookupFormValue(c, "bathrooms"); ok {
		n, err := validator.NonNegativeInt("bathrooms", raw)
		if err != nil {
			badFields = append(badFields, "bathrooms")
		}
		input.Bathrooms = &n
	}
	if raw, ok := lookupFormValue(c, "area"); ok {
		f, err := validator.NonNegativeFloat("area", raw)
		if err != nil {
			badFields = append(badFields, "area")
		}
		input.Area = &f
	}
	if raw, ok := lookupFormValue(c, "description"); ok {
		input.Description = &raw
	}
	if raw, ok := lookupFormValue(c, "status"); ok {
		if err := validator.Enum("status", raw, property.Statuses); err != nil {
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

		uploaded, err := uploadAll(ctx, h.media, files, propertyKeyPrefix)
		if err != nil {
			c.Logger().Errorf("%s: %v", msgImageUploadFail, err)
			return respondError(c, http.StatusInternalServerError, msgImageUploadFail)
		}

		input.Images = append(retained, uploaded...)
	}

	if err := h.repo.Update(ctx, id, input); err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertyUpdateFail)
	}

	if input.Images != nil {
		h.deleteMediaQuietly(c, diffRemoved(current.Images, input.Images))
	}

	updated, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertyUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypeProperty, "Updated property: "+updated.Title)

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage:  msgPropertyUpdated,
		jsonKeyProperty: updated,
	})
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPropertyID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertyDeleteFail)
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertyDeleteFail)
	}

	h.deleteMediaQuietly(c, p.Images)
	h.recorder.Record(c, activity.ActionDelete, activity.TypeProperty, "Deleted property: "+p.Title)

	return respondMessage(c, http.StatusOK, msgPropertyDeleted)
}

// PublicList serves the marketing site. Only active properties, reduced
// projection, optional filters and pagination.
func (h *PropertyHandler) PublicList(c echo.Context) error {
	filter := property.PublicFilter{
		Type:         c.QueryParam("type"),
		Location:     c.QueryParam("location"),
		PropertyType: c.QueryParam("propertyType"),
		MinBedrooms:  queryInt(c, "bedrooms", 0),
		MinPrice:     queryFloat(c, "minPrice"),
		MaxPrice:     queryFloat(c, "maxPrice"),
		Query:        c.QueryParam("q"),
		Page:         queryInt(c, "page", 0),
		Limit:        queryInt(c, "limit", 0),
	}

	properties, err := h.repo.ListPublic(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertiesFail)
	}

	views := make([]property.PublicView, 0, len(properties))
	for _, p := range properties {
		views = append(views, p.Public())
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyProperties: views})
}

func (h *PropertyHandler) PublicGet(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidPropertyID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	p, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertiesFail)
	}

	if p.Status != property.StatusActive {
		return respondError(c, http.StatusNotFound, msgPropertyNotFound)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyProperty: p.Public()})
}

// deleteMediaQuietly removes stored images best-effort. Entity mutations
// must not fail because object storage is unavailable.
func (h *PropertyHandler) deleteMediaQuietly(c echo.Context, urls []string) {
	ctx := c.Request().Context()
	for _, url := range urls {
		if err := h.media.DeleteObjectByURL(ctx, url); err != nil {
			c.Logger().Warnf("Failed to delete image %s: %v", url, err)
		}
	}
}
