package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/contact"
	"estate-service/internal/domain/newsletter"
	"estate-service/internal/domain/portfolio"
	"estate-service/internal/domain/property"
	"estate-service/internal/domain/team"
	"estate-service/internal/domain/visit"
	apperrors "estate-service/pkg/errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared test doubles and request helpers for the handler package.

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func newFormContext(t *testing.T, method, target string, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// recorderStub captures activity records synchronously.

type recordedActivity struct {
	Action      activity.Action
	Type        activity.Type
	Description string
}

type recorderStub struct {
	records []recordedActivity
}

func (r *recorderStub) Record(_ echo.Context, action activity.Action, entityType activity.Type, description string) {
	r.records = append(r.records, recordedActivity{Action: action, Type: entityType, Description: description})
}

// mediaStub satisfies MediaStore without touching S3.

type mediaStub struct {
	uploaded []string
	deleted  []string
	failNext bool
}

func (m *mediaStub) BuildKey(prefix, filename string) string {
	return prefix + "/" + filename
}

func (m *mediaStub) UploadObject(_ context.Context, key, _ string, _ io.ReadSeeker) (string, error) {
	if m.failNext {
		return "", apperrors.InternalServer("upload failed", nil)
	}

	url := "https://cdn.test/" + key
	m.uploaded = append(m.uploaded, url)
	return url, nil
}

func (m *mediaStub) DeleteObjectByURL(_ context.Context, objectURL string) error {
	m.deleted = append(m.deleted, objectURL)
	return nil
}

// fakePropertyRepo is an in-memory PropertyRepository.

type fakePropertyRepo struct {
	items map[primitive.ObjectID]*property.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{items: map[primitive.ObjectID]*property.Property{}}
}

func (r *fakePropertyRepo) Create(_ context.Context, p *property.Property) (*property.Property, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.items[p.ID] = p
	return p, nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id primitive.ObjectID) (*property.Property, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, apperrors.NotFound("property not found")
	}

	clone := *p
	return &clone, nil
}

func (r *fakePropertyRepo) List(_ context.Context) ([]*property.Property, error) {
	out := []*property.Property{}
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePropertyRepo) ListPublic(_ context.Context, filter property.PublicFilter) ([]*property.Property, error) {
	out := []*property.Property{}
	for _, p := range r.items {
		if p.Status != property.StatusActive {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.PropertyType != "" && p.PropertyType != filter.PropertyType {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePropertyRepo) Update(_ context.Context, id primitive.ObjectID, input property.UpdateInput) error {
	p, ok := r.items[id]
	if !ok {
		return apperrors.NotFound("property not found")
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.PropertyType != nil {
		p.PropertyType = *input.PropertyType
	}
	if input.Bedrooms != nil {
		p.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		p.Bathrooms = *input.Bathrooms
	}
	if input.Area != nil {
		p.Area = *input.Area
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Images != nil {
		p.Images = input.Images
	}
	p.UpdatedAt = time.Now()

	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NotFound("property not found")
	}
	delete(r.items, id)
	return nil
}

// fakeVisitRepo is an in-memory VisitRepository.

type fakeVisitRepo struct {
	items map[primitive.ObjectID]*visit.Visit
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{items: map[primitive.ObjectID]*visit.Visit{}}
}

func (r *fakeVisitRepo) Create(_ context.Context, v *visit.Visit) (*visit.Visit, error) {
	v.ID = primitive.NewObjectID()
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	r.items[v.ID] = v
	return v, nil
}

func (r *fakeVisitRepo) GetByID(_ context.Context, id primitive.ObjectID) (*visit.Visit, error) {
	v, ok := r.items[id]
	if !ok {
		return nil, apperrors.NotFound("visit not found")
	}

	clone := *v
	return &clone, nil
}

func (r *fakeVisitRepo) List(_ context.Context) ([]*visit.Visit, error) {
	out := []*visit.Visit{}
	for _, v := range r.items {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVisitRepo) Update(_ context.Context, id primitive.ObjectID, input visit.UpdateInput) error {
	v, ok := r.items[id]
	if !ok {
		return apperrors.NotFound("visit not found")
	}

	if input.FirstName != nil {
		v.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		v.LastName = *input.LastName
	}
	if input.Email != nil {
		v.Email = *input.Email
	}
	if input.Phone != nil {
		v.Phone = *input.Phone
	}
	if input.PreferredDate != nil {
		v.PreferredDate = *input.PreferredDate
	}
	if input.PreferredTime != nil {
		v.PreferredTime = *input.PreferredTime
	}
	if input.Message != nil {
		v.Message = *input.Message
	}
	if input.Status != nil {
		v.Status = *input.Status
	}
	v.UpdatedAt = time.Now()

	return nil
}

func (r *fakeVisitRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NotFound("visit not found")
	}
	delete(r.items, id)
	return nil
}

// fakeContactRepo is an in-memory ContactRepository.

type fakeContactRepo struct {
	contacts []*contact.Contact
}

func (r *fakeContactRepo) Create(_ context.Context, c *contact.Contact) (*contact.Contact, error) {
	c.ID = primitive.NewObjectID()
	c.Timestamp = time.Now()
	r.contacts = append(r.contacts, c)
	return c, nil
}

func (r *fakeContactRepo) List(_ context.Context, page, limit int) ([]*contact.Contact, int64, error) {
	total := int64(len(r.contacts))

	start := (page - 1) * limit
	if start >= len(r.contacts) {
		return []*contact.Contact{}, total, nil
	}

	end := start + limit
	if end > len(r.contacts) {
		end = len(r.contacts)
	}

	return r.contacts[start:end], total, nil
}

func (r *fakeContactRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	for _, c := range r.contacts {
		if c.ID == id {
			c.Status = status
			c.LastUpdated = time.Now()
			return nil
		}
	}
	return apperrors.NotFound("contact not found")
}

// fakeNewsletterRepo enforces the unique email index in memory.

type fakeNewsletterRepo struct {
	subscribers []*newsletter.Subscriber
}

func (r *fakeNewsletterRepo) Create(_ context.Context, s *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	for _, existing := range r.subscribers {
		if existing.Email == s.Email {
			return nil, apperrors.EmailExists("email already subscribed")
		}
	}

	s.ID = primitive.NewObjectID()
	s.SubscribedAt = time.Now()
	r.subscribers = append(r.subscribers, s)
	return s, nil
}

func (r *fakeNewsletterRepo) List(_ context.Context) ([]*newsletter.Subscriber, error) {
	return r.subscribers, nil
}

func (r *fakeNewsletterRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, s := range r.subscribers {
		if s.ID == id {
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("subscriber not found")
}

// notifierStub satisfies both notifier interfaces.

type notifierStub struct {
	contacts []*contact.Contact
	visits   []string
}

func (n *notifierStub) ContactReceived(c *contact.Contact) {
	n.contacts = append(n.contacts, c)
}

func (n *notifierStub) VisitRequested(_ *visit.Visit, propertyTitle string) {
	n.visits = append(n.visits, propertyTitle)
}

// fakeTeamRepo is an in-memory TeamRepository.

type fakeTeamRepo struct {
	members map[primitive.ObjectID]*team.Member
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{members: map[primitive.ObjectID]*team.Member{}}
}

func (r *fakeTeamRepo) Create(_ context.Context, m *team.Member) (*team.Member, error) {
	m.ID = primitive.NewObjectID()
	r.members[m.ID] = m
	return m, nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id primitive.ObjectID) (*team.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, apperrors.NotFound("team member not found")
	}

	clone := *m
	return &clone, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*team.Member, error) {
	out := []*team.Member{}
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, id primitive.ObjectID, input team.UpdateInput) error {
	m, ok := r.members[id]
	if !ok {
		return apperrors.NotFound("team member not found")
	}

	if input.Name != nil {
		m.Name = *input.Name
	}
	if input.Position != nil {
		m.Position = *input.Position
	}
	if input.Email != nil {
		m.Email = *input.Email
	}
	if input.Phone != nil {
		m.Phone = *input.Phone
	}
	if input.Bio != nil {
		m.Bio = *input.Bio
	}
	if input.Image != nil {
		m.Image = *input.Image
	}
	if input.Skills != nil {
		m.Skills = input.Skills
	}
	if input.SocialLinks != nil {
		m.SocialLinks = *input.SocialLinks
	}

	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.members[id]; !ok {
		return apperrors.NotFound("team member not found")
	}
	delete(r.members, id)
	return nil
}

// fakePortfolioRepo is an in-memory PortfolioRepository.

type fakePortfolioRepo struct {
	items map[primitive.ObjectID]*portfolio.Item
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{items: map[primitive.ObjectID]*portfolio.Item{}}
}

func (r *fakePortfolioRepo) Create(_ context.Context, item *portfolio.Item) (*portfolio.Item, error) {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.items[item.ID] = item
	return item, nil
}

func (r *fakePortfolioRepo) GetByID(_ context.Context, id primitive.ObjectID) (*portfolio.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.NotFound("portfolio item not found")
	}

	clone := *item
	return &clone, nil
}

func (r *fakePortfolioRepo) List(_ context.Context) ([]*portfolio.Item, error) {
	out := []*portfolio.Item{}
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePortfolioRepo) ListPublic(_ context.Context, filter portfolio.PublicFilter) ([]*portfolio.Item, error) {
	out := []*portfolio.Item{}
	for _, item := range r.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePortfolioRepo) Update(_ context.Context, id primitive.ObjectID, input portfolio.UpdateInput) error {
	item, ok := r.items[id]
	if !ok {
		return apperrors.NotFound("portfolio item not found")
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Value != nil {
		item.Value = *input.Value
	}
	if input.Date != nil {
		item.Date = *input.Date
	}
	if input.Client != nil {
		item.Client = *input.Client
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.Duration != nil {
		item.Duration = *input.Duration
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.Images != nil {
		item.Images = input.Images
	}
	item.UpdatedAt = time.Now()

	return nil
}

func (r *fakePortfolioRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NotFound("portfolio item not found")
	}
	delete(r.items, id)
	return nil
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) map[string]any {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
	return decodeBody(t, rec)
}
