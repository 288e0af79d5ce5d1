package handler

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	contentTypeJSON          = "application/json"
	maxStrictBodyBytes int64 = 1 << 20 // Keep parser bound aligned with global body limit.

	fallbackImageContentType = "application/octet-stream"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "Invalid request body"
)

func bindStrictJSON(c echo.Context, dst interface{}) error {
	if !strings.HasPrefix(strings.ToLower(c.Request().Header.Get(echo.HeaderContentType)), contentTypeJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, msgContentTypeJSONRequired)
	}

	body := io.LimitReader(c.Request().Body, maxStrictBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	}

	return nil
}

func formValue(c echo.Context, name string) string {
	return strings.TrimSpace(c.FormValue(name))
}

// lookupFormValue reports whether the field was present in the form at all,
// so partial updates can distinguish "clear" from "leave alone".
func lookupFormValue(c echo.Context, name string) (string, bool) {
	params, err := c.FormParams()
	if err != nil {
		return "", false
	}

	values, ok := params[name]
	if !ok || len(values) == 0 {
		return "", false
	}

	return strings.TrimSpace(values[0]), true
}

func invalidFieldsMessage(fields []string) string {
	return "invalid or missing fields: " + strings.Join(fields, ", ")
}

// parseObjectID validates a path or form id. The invalidMsg is returned to
// the client on malformed input, which is a 400 rather than a 404.
func parseObjectID(raw, invalidMsg string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, invalidMsg)
	}

	return id, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}

	return n
}

func queryFloat(c echo.Context, name string) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}

	return f
}

// formFiles returns all uploads under the given multipart field. A request
// without a multipart body yields an empty slice, not an error, so JSON-only
// updates keep working.
func formFiles(c echo.Context, field string) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart || err == http.ErrMissingBoundary {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, msgInvalidMultipart)
	}

	return form.File[field], nil
}

// parseExistingImages decodes the retained-image list sent with multipart
// updates. present reports whether the field was in the form at all.
func parseExistingImages(c echo.Context, field string) (urls []string, present bool, err error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, false, nil
	}

	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil, true, echo.NewHTTPError(http.StatusBadRequest, msgInvalidExistingImgs)
	}

	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u != "" {
			cleaned = append(cleaned, u)
		}
	}

	return cleaned, true, nil
}

// uploadAll stores each uploaded file and returns the resulting public URLs.
func uploadAll(ctx context.Context, store MediaStore, files []*multipart.FileHeader, keyPrefix string) ([]string, error) {
	urls := make([]string, 0, len(files))

	for _, fh := range files {
		url, err := uploadOne(ctx, store, fh, keyPrefix)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func uploadOne(ctx context.Context, store MediaStore, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = fallbackImageContentType
	}

	return store.UploadObject(ctx, store.BuildKey(keyPrefix, fh.Filename), contentType, src)
}

// diffRemoved returns the URLs in before that are absent from after.
func diffRemoved(before, after []string) []string {
	kept := make(map[string]struct{}, len(after))
	for _, u := range after {
		kept[u] = struct{}{}
	}

	removed := []string{}
	for _, u := range before {
		if _, ok := kept[u]; !ok {
			removed = append(removed, u)
		}
	}

	return removed
}
