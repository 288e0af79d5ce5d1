package providers

import (
	"estate-service/pkg/mailer/registry"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPProvider struct {
	BaseProvider
	Host     string
	Port     string
	Username string
	Password string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func NewSMTPProvider(config SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		BaseProvider: BaseProvider{
			ProviderName: registry.ProviderSMTP,
		},
		Host:     config.Host,
		Port:     config.Port,
		Username: config.Username,
		Password: config.Password,
	}
}

func (p *SMTPProvider) Send(emailData *EmailData) (*EmailResult, error) {
	if p.Host == "" {
		return &EmailResult{
			Success:  false,
			Error:    registry.ErrSMTPHostRequired.Error(),
			Provider: p.ProviderName,
		}, registry.ErrSMTPHostRequired
	}

	recipients := make([]string, 0, len(emailData.To)+len(emailData.CC)+len(emailData.BCC))
	recipients = append(recipients, emailData.To...)
	recipients = append(recipients, emailData.CC...)
	recipients = append(recipients, emailData.BCC...)

	message := buildMessage(emailData)

	auth := p.auth()
	addr := p.Host + ":" + p.Port

	if err := smtp.SendMail(addr, auth, emailData.From, recipients, message); err != nil {
		return &EmailResult{
			Success:  false,
			Error:    fmt.Sprintf(registry.MsgSMTPSendFailedFmt, err),
			Provider: p.ProviderName,
		}, err
	}

	return &EmailResult{
		Success:  true,
		Provider: p.ProviderName,
	}, nil
}

func (p *SMTPProvider) Verify() (bool, error) {
	if p.Host == "" {
		return false, registry.ErrSMTPHostRequired
	}

	client, err := smtp.Dial(p.Host + ":" + p.Port)
	if err != nil {
		return false, fmt.Errorf(registry.MsgSMTPVerifyFailedFmt, err)
	}
	defer client.Close()

	return true, client.Quit()
}

func (p *SMTPProvider) auth() smtp.Auth {
	if p.Username == "" {
		return nil
	}
	return smtp.PlainAuth("", p.Username, p.Password, p.Host)
}

// buildMessage renders the RFC 5322 message. BCC recipients are passed to
// the server only, never written into headers.
func buildMessage(emailData *EmailData) []byte {
	var b strings.Builder

	writeHeader(&b, registry.HeaderFrom, emailData.From)
	writeHeader(&b, registry.HeaderTo, strings.Join(emailData.To, registry.AddressListSeparator))

	if len(emailData.CC) > 0 {
		writeHeader(&b, registry.HeaderCC, strings.Join(emailData.CC, registry.AddressListSeparator))
	}
	if emailData.ReplyTo != "" {
		writeHeader(&b, registry.HeaderReplyTo, emailData.ReplyTo)
	}

	writeHeader(&b, registry.HeaderSubject, emailData.Subject)
	writeHeader(&b, registry.HeaderMIMEVersion, registry.MIMEVersion)

	if emailData.Text != "" {
		writeHeader(&b, registry.HeaderContentType, fmt.Sprintf(registry.MIMEMultipartAltFmt, registry.MultipartBoundary))
		b.WriteString(registry.HeaderBodySeparator)
		b.WriteString(fmt.Sprintf(registry.MultipartPartFmt, registry.MultipartBoundary, registry.MIMETextPlain, emailData.Text))
		b.WriteString(fmt.Sprintf(registry.MultipartPartFmt, registry.MultipartBoundary, registry.MIMETextHTML, emailData.HTML))
		b.WriteString(fmt.Sprintf(registry.MultipartTerminator, registry.MultipartBoundary))
	} else {
		writeHeader(&b, registry.HeaderContentType, registry.MIMETextHTML)
		b.WriteString(registry.HeaderBodySeparator)
		b.WriteString(emailData.HTML)
	}

	return []byte(b.String())
}

func writeHeader(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(registry.HeaderBodySeparator)
}
