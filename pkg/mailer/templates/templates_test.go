package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactAlertRender(t *testing.T) {
	tmpl, err := ContactAlertTemplate()
	require.NoError(t, err)

	html, text, err := tmpl.Render(ContactAlertContext{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Message:     "Looking for a villa",
		ContactID:   "abc123",
		SubmittedAt: "2026-08-29 10:00:00 UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "Not provided")

	// Missing service falls back to the default label
	assert.Contains(t, html, defaultServiceLabel)
	assert.Contains(t, html, "Contact ID: abc123")

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, defaultServiceLabel)
}

func TestContactAlertRequiresNameAndEmail(t *testing.T) {
	tmpl, err := ContactAlertTemplate()
	require.NoError(t, err)

	_, _, err = tmpl.Render(ContactAlertContext{Email: "jane@example.com"})
	assert.Error(t, err)

	_, _, err = tmpl.Render(ContactAlertContext{Name: "Jane"})
	assert.Error(t, err)
}

func TestContactAlertEscapesHTML(t *testing.T) {
	tmpl, err := ContactAlertTemplate()
	require.NoError(t, err)

	html, _, err := tmpl.Render(ContactAlertContext{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
}

func TestVisitAlertRequiresDate(t *testing.T) {
	tmpl, err := VisitAlertTemplate()
	require.NoError(t, err)

	_, _, err = tmpl.Render(VisitAlertContext{
		Name:  "Jane",
		Email: "jane@example.com",
	})
	assert.Error(t, err)
}

func TestContactReplyRender(t *testing.T) {
	tmpl, err := ContactReplyTemplate()
	require.NoError(t, err)

	html, _, err := tmpl.Render(ContactReplyContext{
		Name:    "Jane",
		Service: "Property Valuation",
		Message: "Need a valuation",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Jane")
	assert.Contains(t, html, "Property Valuation")
	assert.Contains(t, html, "AMIZERO Real Estate")
}
