package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const showDateLayout = "January 2, 2006"

// Subject returns the email subject line for a notification.
func Subject(n *EmailNotification) string {
	switch n.Type {
	case NotificationTypeBookingReceived:
		return fmt.Sprintf("New booking for \"%s\" - Action Required", n.ShowTitle)
	default:
		return fmt.Sprintf("Your booking for \"%s\" has been %s", n.ShowTitle, strings.ToLower(n.BookingStatus))
	}
}

// Body returns the plain-text paragraph explaining the notification.
func Body(n *EmailNotification) string {
	date := n.ShowStart.Format(showDateLayout)

	if n.Type == NotificationTypeBookingReceived {
		return fmt.Sprintf("A new booking request has been received for \"%s\" on %s. Please review and approve or reject this booking in your dashboard.", n.ShowTitle, date)
	}

	switch n.BookingStatus {
	case "APPROVED":
		return fmt.Sprintf("Great news! Your booking for \"%s\" on %s has been approved. We look forward to seeing you at the show!", n.ShowTitle, date)
	case "REJECTED":
		return fmt.Sprintf("We're sorry, but your booking for \"%s\" on %s has been rejected. Please try booking another show.", n.ShowTitle, date)
	case "PENDING":
		return fmt.Sprintf("Your booking for \"%s\" on %s has been received and is pending approval. We'll notify you when the promoter reviews your booking.", n.ShowTitle, date)
	default:
		return fmt.Sprintf("The status of your booking for \"%s\" on %s has been updated to %s.", n.ShowTitle, date, n.BookingStatus)
	}
}

const footer = "This is an automated message from Comedy Slots. Please do not reply to this email."

var htmlTemplate = template.Must(template.New("booking").Parse(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a1a1a; font-size: 24px; margin-bottom: 24px;">{{.Subject}}</h1>
  <p style="color: #4a4a4a; font-size: 16px; line-height: 1.5;">{{.Body}}</p>
  <div style="margin-top: 32px; padding-top: 32px; border-top: 1px solid #eaeaea;">
    <p style="color: #666666; font-size: 14px;">{{.Footer}}</p>
  </div>
</div>
`))

// Render produces the HTML and plain-text bodies for a notification.
func Render(n *EmailNotification) (htmlBody, textBody string, err error) {
	subject := n.Subject
	if subject == "" {
		subject = Subject(n)
	}
	body := Body(n)

	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, struct {
		Subject string
		Body    string
		Footer  string
	}{subject, body, footer})
	if err != nil {
		return "", "", fmt.Errorf("failed to render email: %w", err)
	}

	textBody = subject + "\n\n" + body + "\n\n" + footer + "\n"
	return buf.String(), textBody, nil
}
