package registry

const (
	ProviderSMTP = "smtp"
)

const (
	ProviderLabelNone       = "none"
	ProviderLabelFailover   = "failover"
	ProviderLabelValidation = "validation"
	ProviderLabelTemplate   = "template"
	UnknownProviderName     = "unknown"
)

const (
	HeaderFrom        = "From"
	HeaderTo          = "To"
	HeaderReplyTo     = "Reply-To"
	HeaderCC          = "Cc"
	HeaderSubject     = "Subject"
	HeaderMIMEVersion = "MIME-Version"
	HeaderContentType = "Content-Type"
)

const (
	MIMEVersion          = "1.0"
	MIMETextHTML         = "text/html; charset=\"UTF-8\""
	MIMETextPlain        = "text/plain; charset=\"UTF-8\""
	MIMEMultipartAltFmt  = "multipart/alternative; boundary=%q"
	MultipartBoundary    = "estate-mail-boundary"
	HeaderBodySeparator  = "\r\n"
	MultipartPartFmt     = "--%s\r\nContent-Type: %s\r\n\r\n%s\r\n"
	MultipartTerminator  = "--%s--\r\n"
	AddressListSeparator = ", "
)

const (
	TemplateNameContactAlert = "contact-alert"
	TemplateNameContactReply = "contact-reply"
	TemplateNameVisitAlert   = "visit-alert"
)

const (
	MessageSeparator       = "; "
	StrategySendFailedText = "send failed"
)

const (
	MsgSMTPSendFailedFmt   = "SMTP send failed: %v"
	MsgSMTPVerifyFailedFmt = "SMTP verify failed: %v"
	MsgProviderErrorFmt    = "%s: %s"
)
