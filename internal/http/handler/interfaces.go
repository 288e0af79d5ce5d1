package handler

import (
	"context"
	"estate-service/internal/domain/achievement"
	"estate-service/internal/domain/activity"
	"estate-service/internal/domain/admin"
	"estate-service/internal/domain/contact"
	"estate-service/internal/domain/newsletter"
	"estate-service/internal/domain/portfolio"
	"estate-service/internal/domain/property"
	"estate-service/internal/domain/team"
	"estate-service/internal/domain/visit"
	"estate-service/internal/visitors"
	"io"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Consumer-side interfaces defined by handlers
// Each interface contains only the methods needed by the specific handler

// AuthHandler interfaces
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*admin.Admin, error)
}

type TokenGenerator interface {
	Generate(a *admin.Admin) (string, error)
}

// PropertyHandler interfaces
type PropertyRepository interface {
	Create(ctx context.Context, p *property.Property) (*property.Property, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*property.Property, error)
	List(ctx context.Context) ([]*property.Property, error)
	ListPublic(ctx context.Context, filter property.PublicFilter) ([]*property.Property, error)
	Update(ctx context.Context, id primitive.ObjectID, input property.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PropertyGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*property.Property, error)
}

// TeamHandler interfaces
type TeamRepository interface {
	Create(ctx context.Context, m *team.Member) (*team.Member, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*team.Member, error)
	List(ctx context.Context) ([]*team.Member, error)
	Update(ctx context.Context, id primitive.ObjectID, input team.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PortfolioHandler interfaces
type PortfolioRepository interface {
	Create(ctx context.Context, item *portfolio.Item) (*portfolio.Item, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*portfolio.Item, error)
	List(ctx context.Context) ([]*portfolio.Item, error)
	ListPublic(ctx context.Context, filter portfolio.PublicFilter) ([]*portfolio.Item, error)
	Update(ctx context.Context, id primitive.ObjectID, input portfolio.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// VisitHandler interfaces
type VisitRepository interface {
	Create(ctx context.Context, v *visit.Visit) (*visit.Visit, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*visit.Visit, error)
	List(ctx context.Context) ([]*visit.Visit, error)
	Update(ctx context.Context, id primitive.ObjectID, input visit.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ContactHandler interfaces
type ContactRepository interface {
	Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error)
	List(ctx context.Context, page, limit int) ([]*contact.Contact, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// NewsletterHandler interfaces
type NewsletterRepository interface {
	Create(ctx context.Context, s *newsletter.Subscriber) (*newsletter.Subscriber, error)
	List(ctx context.Context) ([]*newsletter.Subscriber, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AchievementHandler interfaces
type AchievementRepository interface {
	Latest(ctx context.Context) (*achievement.Record, error)
	Insert(ctx context.Context, rec *achievement.Record) (*achievement.Record, error)
}

// ActivityHandler interfaces
type ActivityReader interface {
	ListRecent(ctx context.Context, limit int) ([]*activity.Activity, error)
}

type PropertyCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type StatusCounter interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type ContactAnalytics interface {
	Analytics(ctx context.Context) (*contact.Analytics, error)
}

type VisitorStats interface {
	Stats() visitors.Snapshot
}

// Shared side-effect interfaces
type MediaStore interface {
	BuildKey(prefix, filename string) string
	UploadObject(ctx context.Context, key, contentType string, body io.ReadSeeker) (string, error)
	DeleteObjectByURL(ctx context.Context, objectURL string) error
}

type ActivityRecorder interface {
	Record(c echo.Context, action activity.Action, entityType activity.Type, description string)
}

type ContactNotifier interface {
	ContactReceived(c *contact.Contact)
}

type VisitNotifier interface {
	VisitRequested(v *visit.Visit, propertyTitle string)
}
