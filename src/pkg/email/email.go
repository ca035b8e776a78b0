// Package email delivers a finished batch by email through one of three
// providers: mailgun, sendgrid or Amazon SES. Credentials are read from the
// usual provider environment variables.
package email

import (
	"context"
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

type Provider string

const (
	Mailgun  Provider = "mailgun"
	SendGrid Provider = "sendgrid"
	SES      Provider = "ses"
)

// Attachment is one generated document to ship along with the message.
type Attachment struct {
	Filename string
	Data     []byte
}

/*
SendMessage sends one message through the chosen provider. Attachments ride
along where the provider API supports them; the SES simple-content path
sends body only, so callers relying on attachments should pick mailgun or
sendgrid.
*/
func SendMessage(ctx context.Context, provider Provider, sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	if len(recipients) == 0 {
		err := fmt.Errorf("no recipients given")
		e = xerr.NewError(err, "send email", string(provider))
		return
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "Sending batch email via '%s' to '%d' recipient(s), '%d' attachment(s)",
		provider, len(recipients), len(attachments),
	)

	switch provider {
	case Mailgun:
		e = sendViaMailgun(ctx, sender, recipients, subject, textBody, htmlBody, attachments)
	case SendGrid:
		e = sendViaSendGrid(ctx, sender, recipients, subject, textBody, htmlBody, attachments)
	case SES:
		e = sendViaSES(ctx, sender, recipients, subject, textBody, htmlBody)
	default:
		err := fmt.Errorf("unknown email provider %q", provider)
		e = xerr.NewError(err, "send email", string(provider))
	}

	if e == nil {
		tl.Log(tl.Info1, palette.Green, "%s via '%s'", "Email sent", provider)
	}
	return
}
