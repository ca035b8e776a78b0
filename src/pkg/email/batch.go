package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// RequiredEnvVars lists the credentials a provider needs, for the env-var
// presence check in the entrypoints.
func RequiredEnvVars(provider Provider) []string {
	switch provider {
	case Mailgun:
		return []string{EnvMailgunDomain, EnvMailgunAPIKey}
	case SendGrid:
		return []string{EnvSendGridAPIKey}
	case SES:
		return []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION"}
	default:
		return nil
	}
}

/*
SendBatchOutcome mails the result of one generation batch: the generated
documents as attachments plus any diagnostics in the body. readFile fetches
a stored document by filename; a document that cannot be read back is
reported in the log and skipped, not fatal.
*/
func SendBatchOutcome(ctx context.Context, provider Provider, sender string, recipients []string, generated []string, diagnostics []string, readFile func(name string) ([]byte, *xerr.Error)) *xerr.Error {
	var attachments []Attachment
	for _, name := range generated {
		data, e := readFile(name)
		if e != nil {
			tl.Log(tl.Warning, palette.YellowBold, "Skipping attachment '%s': '%s'", name, e)
			continue
		}
		attachments = append(attachments, Attachment{Filename: name, Data: data})
	}

	subject := fmt.Sprintf("Generated documents (%d)", len(generated))
	return SendMessage(ctx, provider, sender, recipients, subject,
		textBody(generated, diagnostics), htmlBody(generated, diagnostics), attachments)
}

func textBody(generated []string, diagnostics []string) string {
	var b strings.Builder
	b.WriteString("Generated documents:\n")
	for _, name := range generated {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	if len(diagnostics) > 0 {
		b.WriteString("\nDiagnostics:\n")
		for _, message := range diagnostics {
			fmt.Fprintf(&b, "  - %s\n", message)
		}
	}
	return b.String()
}

func htmlBody(generated []string, diagnostics []string) string {
	var b strings.Builder
	b.WriteString("<p>Generated documents:</p><ul>")
	for _, name := range generated {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(name))
	}
	b.WriteString("</ul>")
	if len(diagnostics) > 0 {
		b.WriteString("<p>Diagnostics:</p><ul>")
		for _, message := range diagnostics {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(message))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}
