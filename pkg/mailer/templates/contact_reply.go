package templates

import (
	"estate-service/pkg/mailer/registry"
	"strings"
)

type ContactReplyContext struct {
	Name    string
	Service string
	Message string
}

// ContactReplyTemplate renders the auto-reply the customer receives after
// submitting the contact form.
func ContactReplyTemplate() (*TypedTemplate[ContactReplyContext], error) {
	htmlTmpl := `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 20px; text-align: center;">
		<h1 style="color: white; margin: 0;">AMIZERO Real Estate</h1>
		<p style="color: white; margin: 5px 0;">Thank You for Your Interest</p>
	</div>
	<div style="padding: 20px;">
		<h2 style="color: #2c3e50;">Dear {{.Name}},</h2>
		<p>Thank you for contacting AMIZERO Real Estate Ltd. We have received your inquiry and will get back to you within 24 hours.</p>

		<h3 style="color: #2c3e50;">Your Message Summary:</h3>
		<div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 10px 0;">
			<p><strong>Service:</strong> {{.Service}}</p>
			<p><strong>Message:</strong> {{.Message}}</p>
		</div>

		<p>In the meantime, feel free to explore our services or contact us directly:</p>
		<ul>
			<li>Phone: +250 725 502 317</li>
			<li>Email: amizerorealestate@gmail.com</li>
		</ul>

		<p style="margin-top: 30px;">Best regards,<br><strong>AMIZERO Real Estate Team</strong></p>
	</div>
</div>
`

	textTmpl := `
Dear {{.Name}},

Thank you for contacting AMIZERO Real Estate Ltd. We have received your inquiry and will get back to you within 24 hours.

Your Message Summary:
Service: {{.Service}}
Message: {{.Message}}

Phone: +250 725 502 317
Email: amizerorealestate@gmail.com

Best regards,
AMIZERO Real Estate Team
`

	parser := func(context ContactReplyContext) (ContactReplyContext, error) {
		context.Name = strings.TrimSpace(context.Name)

		if context.Name == "" {
			return context, registry.ErrContactNameRequired
		}
		if context.Service == "" {
			context.Service = defaultServiceLabel
		}

		return context, nil
	}

	return NewTemplate(registry.TemplateNameContactReply, htmlTmpl, textTmpl, parser)
}
