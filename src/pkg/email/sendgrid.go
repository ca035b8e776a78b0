package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/tuumbleweed/xerr"
)

const EnvSendGridAPIKey = "SENDGRID_API_KEY"

func sendViaSendGrid(ctx context.Context, sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) *xerr.Error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", sender))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(
		mail.NewContent("text/plain", textBody),
		mail.NewContent("text/html", htmlBody),
	)

	for _, attachment := range attachments {
		a := mail.NewAttachment()
		a.SetFilename(attachment.Filename)
		a.SetType("application/pdf")
		a.SetDisposition("attachment")
		a.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		message.AddAttachment(a)
	}

	client := sendgrid.NewSendClient(os.Getenv(EnvSendGridAPIKey))
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return xerr.NewError(err, "send email via sendgrid", subject)
	}
	if !sendOK(response) {
		err := fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
		return xerr.NewError(err, "send email via sendgrid", subject)
	}
	return nil
}

func sendOK(response *rest.Response) bool {
	return response != nil && response.StatusCode < 400
}
