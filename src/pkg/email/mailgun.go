package email

import (
	"context"
	"os"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/tuumbleweed/xerr"
)

const (
	EnvMailgunDomain = "MAILGUN_DOMAIN"
	EnvMailgunAPIKey = "MAILGUN_API_KEY"
)

func sendViaMailgun(ctx context.Context, sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) *xerr.Error {
	mg := mailgun.NewMailgun(os.Getenv(EnvMailgunDomain), os.Getenv(EnvMailgunAPIKey))

	message := mg.NewMessage(sender, subject, textBody, recipients...)
	message.SetHTML(htmlBody)
	for _, attachment := range attachments {
		message.AddBufferAttachment(attachment.Filename, attachment.Data)
	}

	_, _, err := mg.Send(ctx, message)
	if err != nil {
		return xerr.NewError(err, "send email via mailgun", subject)
	}
	return nil
}
