package templates

import (
	"estate-service/pkg/mailer/registry"
	"strings"
)

type VisitAlertContext struct {
	Name          string
	Email         string
	Phone         string
	PropertyTitle string
	VisitDate     string
	VisitTime     string
	Message       string
}

// VisitAlertTemplate renders the notification sent to the office inbox
// when a visitor schedules a property viewing.
func VisitAlertTemplate() (*TypedTemplate[VisitAlertContext], error) {
	htmlTmpl := `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 20px; text-align: center;">
		<h1 style="color: white; margin: 0;">AMIZERO Real Estate</h1>
		<p style="color: white; margin: 5px 0;">New Visit Request</p>
	</div>
	<div style="padding: 20px; background: #f8f9fa;">
		<h2 style="color: #2c3e50;">Visit Details</h2>
		<p><strong>Property:</strong> {{.PropertyTitle}}</p>
		<p><strong>Date:</strong> {{.VisitDate}}</p>
		<p><strong>Time:</strong> {{if .VisitTime}}{{.VisitTime}}{{else}}Not specified{{end}}</p>

		<h2 style="color: #2c3e50;">Visitor</h2>
		<p><strong>Name:</strong> {{.Name}}</p>
		<p><strong>Email:</strong> {{.Email}}</p>
		<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
		{{if .Message}}
		<h3 style="color: #2c3e50;">Message</h3>
		<div style="background: white; padding: 15px; border-left: 4px solid #3498db; margin: 10px 0;">
			{{.Message}}
		</div>
		{{end}}
	</div>
</div>
`

	textTmpl := `
New Visit Request - AMIZERO Real Estate

Property: {{.PropertyTitle}}
Date: {{.VisitDate}}
Time: {{if .VisitTime}}{{.VisitTime}}{{else}}Not specified{{end}}

Name: {{.Name}}
Email: {{.Email}}
Phone: {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}

{{if .Message}}Message:
{{.Message}}{{end}}
`

	parser := func(context VisitAlertContext) (VisitAlertContext, error) {
		context.Name = strings.TrimSpace(context.Name)
		context.Email = strings.TrimSpace(context.Email)

		if context.Name == "" {
			return context, registry.ErrContactNameRequired
		}
		if context.Email == "" {
			return context, registry.ErrContactEmailRequired
		}
		if strings.TrimSpace(context.VisitDate) == "" {
			return context, registry.ErrVisitDateRequired
		}

		return context, nil
	}

	return NewTemplate(registry.TemplateNameVisitAlert, htmlTmpl, textTmpl, parser)
}
