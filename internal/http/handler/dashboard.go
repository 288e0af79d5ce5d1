package handler

import (
	"estate-service/internal/domain/contact"
	"estate-service/internal/domain/property"
	"estate-service/internal/domain/visit"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeyActivities = "activities"
	jsonKeyStats      = "stats"
	jsonKeyAnalytics  = "analytics"
	jsonKeyVisitors   = "visitors"

	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// DashboardHandler serves the admin overview endpoints: recent activity,
// entity counts and contact analytics.
type DashboardHandler struct {
	activities ActivityReader
	properties PropertyCounter
	team       Counter
	portfolio  Counter
	visits     StatusCounter
	contacts   StatusCounter
	newsletter Counter
	analytics  ContactAnalytics
	visitors   VisitorStats
}

type DashboardDeps struct {
	Activities ActivityReader
	Properties PropertyCounter
	Team       Counter
	Portfolio  Counter
	Visits     StatusCounter
	Contacts   StatusCounter
	Newsletter Counter
	Analytics  ContactAnalytics
	Visitors   VisitorStats
}

func NewDashboardHandler(deps DashboardDeps) *DashboardHandler {
	return &DashboardHandler{
		activities: deps.Activities,
		properties: deps.Properties,
		team:       deps.Team,
		portfolio:  deps.Portfolio,
		visits:     deps.Visits,
		contacts:   deps.Contacts,
		newsletter: deps.Newsletter,
		analytics:  deps.Analytics,
		visitors:   deps.Visitors,
	}
}

func (h *DashboardHandler) Activity(c echo.Context) error {
	limit := queryInt(c, "limit", defaultActivityLimit)
	if limit < 1 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	activities, err := h.activities.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return respondRepoError(c, err, msgActivityFail, msgActivityFail)
	}

	return respondData(c, http.StatusOK, map[string]any{jsonKeyActivities: activities})
}

// Stats aggregates the headline counts shown on the dashboard landing page.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	totalProperties, err := h.properties.Count(ctx)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	activeProperties, err := h.properties.CountByStatus(ctx, property.StatusActive)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	teamMembers, err := h.team.Count(ctx)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	portfolioItems, err := h.portfolio.Count(ctx)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	pendingVisits, err := h.visits.CountByStatus(ctx, visit.StatusPending)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	newContacts, err := h.contacts.CountByStatus(ctx, contact.StatusNew)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	subscribers, err := h.newsletter.Count(ctx)
	if err != nil {
		return respondRepoError(c, err, msgStatsFail, msgStatsFail)
	}

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyStats: map[string]any{
			"totalProperties":  totalProperties,
			"activeProperties": activeProperties,
			"teamMembers":      teamMembers,
			"portfolioItems":   portfolioItems,
			"pendingVisits":    pendingVisits,
			"newContacts":      newContacts,
			"subscribers":      subscribers,
		},
	})
}

func (h *DashboardHandler) Analytics(c echo.Context) error {
	analytics, err := h.analytics.Analytics(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgAnalyticsRetrieveFail, msgAnalyticsRetrieveFail)
	}

	return respondData(c, http.StatusOK, map[string]any{
		jsonKeyAnalytics: analytics,
		jsonKeyVisitors:  h.visitors.Stats(),
	})
}
