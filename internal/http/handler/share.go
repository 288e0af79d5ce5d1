package handler

import (
	"encoding/json"
	"errors"
	"estate-service/internal/domain/property"
	apperrors "estate-service/pkg/errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	siteName = "AMIZERO Real Estate"

	sharePriceFmt    = "RWF %.0f"
	shareDescMaxLen  = 200
	shareRedirectFmt = "/properties.html?id=%s"
)

// sharePageTemplate is the minimal document served to link crawlers. Humans
// are redirected to the SPA route immediately.
var sharePageTemplate = template.Must(template.New("share").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} | ` + siteName + `</title>
<meta name="description" content="{{.Description}}">
<meta property="og:type" content="website">
<meta property="og:site_name" content="` + siteName + `">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
{{if .Image}}<meta property="og:image" content="{{.Image}}">
{{end}}<meta property="og:url" content="{{.PageURL}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.Title}}">
<meta name="twitter:description" content="{{.Description}}">
{{if .Image}}<meta name="twitter:image" content="{{.Image}}">
{{end}}<script type="application/ld+json">{{.StructuredData}}</script>
<meta http-equiv="refresh" content="0;url={{.RedirectURL}}">
<script>window.location.replace({{.RedirectURL}});</script>
</head>
<body>
<p>Redirecting to <a href="{{.RedirectURL}}">{{.Title}}</a>…</p>
</body>
</html>
`))

var shareNotFoundTemplate = template.Must(template.New("share404").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Property not found | ` + siteName + `</title>
</head>
<body>
<h1>Property not found</h1>
<p>This listing is no longer available. <a href="/">Back to ` + siteName + `</a></p>
</body>
</html>
`))

type ShareHandler struct {
	properties PropertyGetter
	baseURL    string
}

func NewShareHandler(properties PropertyGetter, baseURL string) *ShareHandler {
	return &ShareHandler{
		properties: properties,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type sharePageData struct {
	Title          string
	Description    string
	Image          string
	PageURL        string
	RedirectURL    string
	StructuredData template.JS
}

// Property renders the crawler-facing listing page. Anything that cannot
// resolve to an active listing gets the static not-found page.
func (h *ShareHandler) Property(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return h.renderNotFound(c)
	}

	p, err := h.properties.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return h.renderNotFound(c)
		}
		return respondRepoError(c, err, msgPropertyNotFound, msgPropertiesFail)
	}

	if p.Status != property.StatusActive {
		return h.renderNotFound(c)
	}

	data := sharePageData{
		Title:       p.Title,
		Description: shareDescription(p),
		PageURL:     h.baseURL + "/property/" + p.ID.Hex(),
		RedirectURL: fmt.Sprintf(shareRedirectFmt, p.ID.Hex()),
	}
	if len(p.Images) > 0 {
		data.Image = p.Images[0]
	}
	data.StructuredData = structuredData(p, data.PageURL, data.Image)

	var buf strings.Builder
	if err := sharePageTemplate.Execute(&buf, data); err != nil {
		c.Logger().Errorf("Failed to render share page: %v", err)
		return respondError(c, http.StatusInternalServerError, msgPropertiesFail)
	}

	return c.HTML(http.StatusOK, buf.String())
}

func (h *ShareHandler) renderNotFound(c echo.Context) error {
	var buf strings.Builder
	if err := shareNotFoundTemplate.Execute(&buf, nil); err != nil {
		return respondError(c, http.StatusInternalServerError, msgPropertiesFail)
	}

	return c.HTML(http.StatusNotFound, buf.String())
}

func shareDescription(p *property.Property) string {
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		desc = fmt.Sprintf("%s in %s. %s.", p.Title, p.Location, fmt.Sprintf(sharePriceFmt, p.Price))
	}

	if runes := []rune(desc); len(runes) > shareDescMaxLen {
		desc = string(runes[:shareDescMaxLen-1]) + "…"
	}

	return desc
}

// structuredData builds the JSON-LD block. Marshalling through encoding/json
// keeps the payload well formed regardless of listing content.
func structuredData(p *property.Property, pageURL, image string) template.JS {
	payload := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "RealEstateListing",
		"name":        p.Title,
		"url":         pageURL,
		"description": shareDescription(p),
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         p.Price,
			"priceCurrency": "RWF",
		},
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": p.Location,
			"addressCountry":  "RW",
		},
	}
	if image != "" {
		payload["image"] = image
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}

	return template.JS(encoded)
}
