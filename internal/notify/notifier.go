package notify

import (
	"estate-service/internal/domain/contact"
	"estate-service/internal/domain/visit"
	"estate-service/pkg/mailer"
	"estate-service/pkg/mailer/providers"
	"estate-service/pkg/mailer/templates"
	"log"
	"strings"
	"sync"
	"time"
)

const (
	subjectContactAlert = "🏠 New Contact Request - AMIZERO Real Estate"
	subjectContactReply = "Thank you for contacting AMIZERO Real Estate"
	subjectVisitAlert   = "🏠 New Visit Request - AMIZERO Real Estate"

	jobContactAlert = "contact-alert"
	jobContactReply = "contact-reply"
	jobVisitAlert   = "visit-alert"

	defaultQueueSize  = 64
	submittedAtLayout = "2006-01-02 15:04:05 MST"
)

type emailJob struct {
	name string
	send func() (*providers.EmailResult, error)
}

// Notifier delivers notification emails in the background. Submissions
// never block request handling; a full queue drops the email with a log
// line rather than stalling the caller.
type Notifier struct {
	service      *mailer.EmailService
	adminEmail   string
	contactAlert *templates.TypedTemplate[templates.ContactAlertContext]
	contactReply *templates.TypedTemplate[templates.ContactReplyContext]
	visitAlert   *templates.TypedTemplate[templates.VisitAlertContext]

	jobs      chan emailJob
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type Config struct {
	Service    *mailer.EmailService
	AdminEmail string
	QueueSize  int
}

func NewNotifier(cfg Config) (*Notifier, error) {
	contactAlert, err := templates.ContactAlertTemplate()
	if err != nil {
		return nil, err
	}

	contactReply, err := templates.ContactReplyTemplate()
	if err != nil {
		return nil, err
	}

	visitAlert, err := templates.VisitAlertTemplate()
	if err != nil {
		return nil, err
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	n := &Notifier{
		service:      cfg.Service,
		adminEmail:   cfg.AdminEmail,
		contactAlert: contactAlert,
		contactReply: contactReply,
		visitAlert:   visitAlert,
		jobs:         make(chan emailJob, queueSize),
	}

	n.wg.Add(1)
	go n.worker()

	return n, nil
}

// ContactReceived queues the office alert and the customer auto-reply for a
// new contact submission.
func (n *Notifier) ContactReceived(c *contact.Contact) {
	alertCtx := templates.ContactAlertContext{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Service:     c.Service,
		Message:     c.Message,
		ContactID:   c.ID.Hex(),
		SubmittedAt: c.Timestamp.Format(submittedAtLayout),
	}

	n.enqueue(emailJob{
		name: jobContactAlert,
		send: func() (*providers.EmailResult, error) {
			return mailer.SendWithTypedTemplate(n.service, n.contactAlert, alertCtx, &providers.EmailData{
				To:      []string{n.adminEmail},
				Subject: subjectContactAlert,
				ReplyTo: c.Email,
			})
		},
	})

	replyCtx := templates.ContactReplyContext{
		Name:    c.Name,
		Service: c.Service,
		Message: c.Message,
	}
	customerEmail := c.Email

	n.enqueue(emailJob{
		name: jobContactReply,
		send: func() (*providers.EmailResult, error) {
			return mailer.SendWithTypedTemplate(n.service, n.contactReply, replyCtx, &providers.EmailData{
				To:      []string{customerEmail},
				Subject: subjectContactReply,
			})
		},
	})
}

// VisitRequested queues the office alert for a new viewing request.
func (n *Notifier) VisitRequested(v *visit.Visit, propertyTitle string) {
	alertCtx := templates.VisitAlertContext{
		Name:          strings.TrimSpace(v.FirstName + " " + v.LastName),
		Email:         v.Email,
		Phone:         v.Phone,
		PropertyTitle: propertyTitle,
		VisitDate:     v.PreferredDate,
		VisitTime:     v.PreferredTime,
		Message:       v.Message,
	}

	n.enqueue(emailJob{
		name: jobVisitAlert,
		send: func() (*providers.EmailResult, error) {
			return mailer.SendWithTypedTemplate(n.service, n.visitAlert, alertCtx, &providers.EmailData{
				To:      []string{n.adminEmail},
				Subject: subjectVisitAlert,
				ReplyTo: v.Email,
			})
		},
	})
}

// Close stops accepting jobs and waits for queued emails to drain.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		close(n.jobs)
	})
	n.wg.Wait()
}

func (n *Notifier) enqueue(job emailJob) {
	defer func() {
		// Sending on a closed channel during shutdown is not worth a crash.
		if r := recover(); r != nil {
			log.Printf("Email %s dropped: notifier closed", job.name)
		}
	}()

	select {
	case n.jobs <- job:
	default:
		log.Printf("Email %s dropped: queue full", job.name)
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()

	for job := range n.jobs {
		start := time.Now()
		result, err := job.send()
		if err != nil {
			log.Printf("Email %s failed after %s: %v", job.name, time.Since(start).Round(time.Millisecond), err)
			continue
		}
		if result != nil && !result.Success {
			log.Printf("Email %s failed via %s: %s", job.name, result.Provider, result.Error)
		}
	}
}
