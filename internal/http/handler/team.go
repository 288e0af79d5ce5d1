package handler

import (
	"encoding/json"
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/team"
	"estate-service/pkg/validator"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	teamKeyPrefix = "team"

	jsonKeyMember  = "member"
	jsonKeyMembers = "members"

	formFieldImage       = "image"
	formFieldSkills      = "skills"
	formFieldSocialLinks = "socialLinks"

	msgInvalidSocialLinks = "socialLinks must be a JSON object"
)

type TeamHandler struct {
	repo     TeamRepository
	media    MediaStore
	recorder ActivityRecorder
}

func NewTeamHandler(repo TeamRepository, media MediaStore, recorder ActivityRecorder) *TeamHandler {
	return &TeamHandler{
		repo:     repo,
		media:    media,
		recorder: recorder,
	}
}

func (h *TeamHandler) List(c echo.Context) error {
	members, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyMembers: members})
}

func (h *TeamHandler) Get(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidTeamMemberID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	m, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyMember: m})
}

func (h *TeamHandler) Create(c echo.Context) error {
	m := &team.Member{
		Name:     formValue(c, "name"),
		Position: formValue(c, "position"),
		Email:    formValue(c, "email"),
		Phone:    formValue(c, "phone"),
		Bio:      formValue(c, "bio"),
	}

	var badFields []string

	if err := validator.Name(m.Name); err != nil {
		badFields = append(badFields, "name")
	}
	if m.Position == "" {
		badFields = append(badFields, "position")
	}
	if m.Email != "" {
		if err := validator.Email(m.Email); err != nil {
			badFields = append(badFields, "email")
		}
	}

	skills, err := team.NormalizeSkills(c.FormValue(formFieldSkills))
	if err != nil {
		badFields = append(badFields, "skills")
	}
	m.Skills = skills

	links, err := parseSocialLinks(c)
	if err != nil {
		return handleHTTPError(c, err)
	}
	if links != nil {
		m.SocialLinks = *links
	}

	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	ctx := c.Request().Context()

	imageURL, err := h.uploadImage(c)
	if err != nil {
		return h.respondUploadError(c, err)
	}
	m.Image = imageURL

	created, err := h.repo.Create(ctx, m)
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamCreateFail)
	}

	h.recorder.Record(c, activity.ActionCreate, activity.TypeTeam, "Added team member: "+created.Name)

	return respondData(c, http.StatusCreated, map[string]any{
		jsonKeyMessage: msgTeamCreated,
		jsonKeyMember:  created,
	})
}

func (h *TeamHandler) Update(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidTeamMemberID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	current, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamUpdateFail)
	}

	var input team.UpdateInput
	var badFields []string

	if raw, ok := lookupFormValue(c, "name"); ok {
		if err := validator.Name(raw); err != nil {
			badFields = append(badFields, "name")
		}
		input.Name = &raw
	}
	if raw, ok := lookupFormValue(c, "position"); ok {
		if raw == "" {
			badFields = append(badFields, "position")
		}
		input.Position = &raw
	}
	if raw, ok := lookupFormValue(c, "email"); ok {
		if raw != "" {
			if err := validator.Email(raw); err != nil {
				badFields = append(badFields, "email")
			}
		}
		input.Email = &raw
	}
	if raw, ok := lookupFormValue(c, "phone"); ok {
		input.Phone = &raw
	}
	if raw, ok := lookupFormValue(c, "bio"); ok {
		input.Bio = &raw
	}
	if raw, ok := lookupFormValue(c, formFieldSkills); ok {
		skills, err := team.NormalizeSkills(raw)
		if err != nil {
			badFields = append(badFields, "skills")
		}
		input.Skills = skills
	}

	links, err := parseSocialLinks(c)
	if err != nil {
		return handleHTTPError(c, err)
	}
	input.SocialLinks = links

	if len(badFields) > 0 {
		return respondValidationError(c, invalidFieldsMessage(badFields), badFields)
	}

	imageURL, uploadErr := h.uploadImage(c)
	if uploadErr != nil {
		return h.respondUploadError(c, uploadErr)
	}
	if imageURL != "" {
		input.Image = &imageURL
	}

	if err := h.repo.Update(ctx, id, input); err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamUpdateFail)
	}

	if imageURL != "" && current.Image != "" {
		if err := h.media.DeleteObjectByURL(ctx, current.Image); err != nil {
			c.Logger().Warnf("Failed to delete image %s: %v", current.Image, err)
		}
	}

	updated, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamUpdateFail)
	}

	h.recorder.Record(c, activity.ActionUpdate, activity.TypeTeam, "Updated team member: "+updated.Name)

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyMessage: msgTeamUpdated,
		jsonKeyMember:  updated,
	})
}

func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), msgInvalidTeamMemberID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	ctx := c.Request().Context()

	m, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamDeleteFail)
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamDeleteFail)
	}

	if m.Image != "" {
		if err := h.media.DeleteObjectByURL(ctx, m.Image); err != nil {
			c.Logger().Warnf("Failed to delete image %s: %v", m.Image, err)
		}
	}

	h.recorder.Record(c, activity.ActionDelete, activity.TypeTeam, "Removed team member: "+m.Name)

	return respondMessage(c, http.StatusOK, msgTeamDeleted)
}

func (h *TeamHandler) PublicList(c echo.Context) error {
	members, err := h.repo.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgTeamMemberNotFound, msgTeamFail)
	}

	views := make([]team.PublicView, 0, len(members))
	for _, m := range members {
		views = append(views, m.Public())
	}

	return respondData(c, http.StatusOK, map[string]any{"team": views})
}

// uploadImage stores a single optional "image" upload and returns its URL,
// or "" when the form carries no file.
func (h *TeamHandler) uploadImage(c echo.Context) (string, error) {
	files, err := formFiles(c, formFieldImage)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}

	return uploadOne(c.Request().Context(), h.media, files[0], teamKeyPrefix)
}

func (h *TeamHandler) respondUploadError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		return handleHTTPError(c, he)
	}

	c.Logger().Errorf("%s: %v", msgImageUploadFail, err)
	return respondError(c, http.StatusInternalServerError, msgImageUploadFail)
}

func parseSocialLinks(c echo.Context) (*team.SocialLinks, error) {
	raw, ok := lookupFormValue(c, formFieldSocialLinks)
	if !ok || raw == "" {
		return nil, nil
	}

	var links team.SocialLinks
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, msgInvalidSocialLinks)
	}

	return &links, nil
}
