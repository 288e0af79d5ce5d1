package registry

import (
	"errors"
	"fmt"
)

var (
	ErrAtLeastOneProviderRequired = errors.New("at least one provider is required")
	ErrProviderCannotBeNil        = errors.New("provider cannot be nil")
	ErrInvalidDefaultFromEmail    = errors.New("invalid default from email")
	ErrEmailDataRequired          = errors.New("email data is required")
	ErrEmailTemplateRequired      = errors.New("email template is required")
	ErrEmailServiceRequired       = errors.New("email service is required")
	ErrTemplateContextRequired    = errors.New("template context is required")
	ErrNoProvidersConfigured      = errors.New("no email providers configured")
	ErrAllProvidersFailed         = errors.New("all providers failed")
	ErrSMTPHostRequired           = errors.New("smtp host is required")
	ErrAtLeastOneRecipient        = errors.New("at least one recipient required")
	ErrInvalidFromEmail           = errors.New("invalid 'from' email")
	ErrSubjectRequired            = errors.New("subject is required")
	ErrHTMLContentRequired        = errors.New("html content is required")
	ErrInvalidReplyToEmail        = errors.New("invalid 'replyTo' email")
	ErrContactNameRequired        = errors.New("contact name is required")
	ErrContactEmailRequired       = errors.New("contact email is required")
	ErrVisitDateRequired          = errors.New("visit date is required")
)

func ErrInvalidToEmail(email string) error {
	return fmt.Errorf("invalid 'to' email: %s", email)
}

func ErrInvalidCCEmail(email string) error {
	return fmt.Errorf("invalid 'cc' email: %s", email)
}

func ErrInvalidBCCEmail(email string) error {
	return fmt.Errorf("invalid 'bcc' email: %s", email)
}

func ErrInvalidTemplateContextType(name string) error {
	return fmt.Errorf("invalid template context type for %q", name)
}
