package templates

import (
	"estate-service/pkg/mailer/registry"
	"strings"
)

type ContactAlertContext struct {
	Name        string
	Email       string
	Phone       string
	Service     string
	Message     string
	ContactID   string
	SubmittedAt string
}

// ContactAlertTemplate renders the notification sent to the office inbox
// whenever a new contact request arrives.
func ContactAlertTemplate() (*TypedTemplate[ContactAlertContext], error) {
	htmlTmpl := `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 20px; text-align: center;">
		<h1 style="color: white; margin: 0;">AMIZERO Real Estate</h1>
		<p style="color: white; margin: 5px 0;">New Contact Request</p>
	</div>
	<div style="padding: 20px; background: #f8f9fa;">
		<h2 style="color: #2c3e50;">Contact Details</h2>
		<p><strong>Name:</strong> {{.Name}}</p>
		<p><strong>Email:</strong> {{.Email}}</p>
		<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
		<p><strong>Service:</strong> {{.Service}}</p>
		<p><strong>Submitted:</strong> {{.SubmittedAt}}</p>

		<h3 style="color: #2c3e50;">Message</h3>
		<div style="background: white; padding: 15px; border-left: 4px solid #3498db; margin: 10px 0;">
			{{.Message}}
		</div>

		<p style="margin-top: 20px; color: #7f8c8d; font-size: 0.9em;">
			Contact ID: {{.ContactID}}
		</p>
	</div>
</div>
`

	textTmpl := `
New Contact Request - AMIZERO Real Estate

Name: {{.Name}}
Email: {{.Email}}
Phone: {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}
Service: {{.Service}}
Submitted: {{.SubmittedAt}}

Message:
{{.Message}}

Contact ID: {{.ContactID}}
`

	parser := func(context ContactAlertContext) (ContactAlertContext, error) {
		context.Name = strings.TrimSpace(context.Name)
		context.Email = strings.TrimSpace(context.Email)

		if context.Name == "" {
			return context, registry.ErrContactNameRequired
		}
		if context.Email == "" {
			return context, registry.ErrContactEmailRequired
		}
		if context.Service == "" {
			context.Service = defaultServiceLabel
		}

		return context, nil
	}

	return NewTemplate(registry.TemplateNameContactAlert, htmlTmpl, textTmpl, parser)
}

const defaultServiceLabel = "General Inquiry"
