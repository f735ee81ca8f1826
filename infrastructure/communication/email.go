package communication

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type EmailInfo struct {
	From        string
	To          []string
	Cc          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

type RawEmailSender interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// Email sends notifications through SES to a fixed list of recipients.
type Email struct {
	client RawEmailSender
	from   string
	to     []string
}

func NewEmail(client RawEmailSender, from string, to []string) *Email {
	return &Email{client: client, from: from, to: to}
}

// ConnectEmail builds an SES client from the default AWS configuration.
func ConnectEmail(ctx context.Context, region, from string, to []string) (*Email, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if region != "" {
		cfg.Region = region
	}
	return NewEmail(ses.NewFromConfig(cfg), from, to), nil
}

func (e *Email) Send(ctx context.Context, info *EmailInfo) error {
	if info.From == "" {
		info.From = e.from
	}
	if len(info.To) == 0 {
		info.To = e.to
	}
	if len(info.To) == 0 {
		return fmt.Errorf("email %q has no recipients", info.Subject)
	}

	emailRaw, err := BuildEmailBuffer(info)
	if err != nil {
		return err
	}

	res, err := e.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(info.From),
		Destinations: append(append([]string{}, info.To...), info.Cc...),
		RawMessage: &types.RawMessage{
			Data: emailRaw.Bytes(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	fmt.Printf("[INFO] sent email %q (%s)\n", info.Subject, aws.ToString(res.MessageId))
	return nil
}

func (e *Email) NotifySubmission(ctx context.Context, s WeekSubmission) error {
	return e.Send(ctx, &EmailInfo{Subject: s.Subject(), Text: s.Text()})
}

func (e *Email) NotifyDecision(ctx context.Context, d WeekDecision) error {
	return e.Send(ctx, &EmailInfo{Subject: d.Subject(), Text: d.Text()})
}

func (e *Email) NotifyReminders(ctx context.Context, reminders []Reminder) error {
	lines := make([]string, len(reminders))
	for i, r := range reminders {
		lines[i] = r.Text()
	}
	return e.Send(ctx, &EmailInfo{
		Subject: "Incomplete timesheets",
		Text:    strings.Join(lines, "\n"),
	})
}

func BuildEmailBuffer(info *EmailInfo) (*bytes.Buffer, error) {
	var emailRaw bytes.Buffer
	writer := multipart.NewWriter(&emailRaw)
	boundary := writer.Boundary()

	headers := fmt.Sprintf("From: %s\r\n", info.From)
	if len(info.To) > 0 {
		headers += fmt.Sprintf("To: %s\r\n", strings.Join(info.To, ", "))
	}
	if len(info.Cc) > 0 {
		headers += fmt.Sprintf("Cc: %s\r\n", strings.Join(info.Cc, ", "))
	}
	headers += fmt.Sprintf("Subject: %s\r\n", info.Subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary)
	headers += "\r\n"
	emailRaw.WriteString(headers)

	// text/plain + text/html alternatives
	altBuf := &bytes.Buffer{}
	altWriter := multipart.NewWriter(altBuf)

	altHeaders := textproto.MIMEHeader{}
	altHeaders.Set("Content-Type", "multipart/alternative; boundary="+altWriter.Boundary())
	altPart, err := writer.CreatePart(altHeaders)
	if err != nil {
		return nil, err
	}

	bodies := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", info.Text},
		{"text/html; charset=UTF-8", info.HTML},
	}
	for _, body := range bodies {
		if body.content == "" {
			continue
		}
		part, err := altWriter.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {body.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, err
		}
		qp := quotedprintable.NewWriter(part)
		if _, err := qp.Write([]byte(body.content)); err != nil {
			return nil, err
		}
		qp.Close()
	}

	altWriter.Close()
	if _, err := altPart.Write(altBuf.Bytes()); err != nil {
		return nil, err
	}

	for _, att := range info.Attachments {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", fmt.Sprintf("%s; name=\"%s\"", att.ContentType, att.Filename))
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", att.Filename))
		h.Set("Content-Transfer-Encoding", "base64")

		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, err
		}
		b := make([]byte, base64.StdEncoding.EncodedLen(len(att.Content)))
		base64.StdEncoding.Encode(b, att.Content)

		// wrap lines at 76 chars
		for i := 0; i < len(b); i += 76 {
			end := min(i+76, len(b))
			part.Write(b[i:end])
			part.Write([]byte("\r\n"))
		}
	}

	writer.Close()

	return &emailRaw, nil
}
