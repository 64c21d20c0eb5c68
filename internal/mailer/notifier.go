package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"dental-tourism-server/internal/config"
	"dental-tourism-server/internal/models"
)

// sendEmailAPI is the slice of the SES client the notifier uses, kept as an
// interface so tests can substitute a fake.
type sendEmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Notifier sends lead notifications to the administrative mailbox. When email
// credentials are absent it degrades to logging the would-be message so lead
// capture never fails on unconfigured infrastructure.
type Notifier struct {
	client  sendEmailAPI
	from    string
	adminTo string
}

// NewNotifier builds the notifier. An unconfigured AWS environment yields a
// log-only notifier rather than an error.
func NewNotifier(cfg *config.Config) *Notifier {
	n := &Notifier{
		from:    cfg.Mailer.FromAddress,
		adminTo: cfg.Mailer.AdminAddress,
	}

	if !cfg.AWS.HasCredentials() {
		log.Println("Email credentials not configured, notifications will be logged only")
		return n
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")),
	)
	if err != nil {
		log.Printf("Failed to load AWS config for mailer, notifications will be logged only: %v", err)
		return n
	}

	n.client = ses.NewFromConfig(awsCfg)
	return n
}

// Send delivers a single plain-text email, with an HTML variant derived from
// it. Returns an error only when a configured provider rejects the send.
func (n *Notifier) Send(to, subject, textBody string) error {
	if n.client == nil {
		log.Printf("Email not configured. Would send to %s with subject %q:\n%s", to, subject, textBody)
		return fmt.Errorf("email credentials not configured")
	}

	htmlBody := strings.ReplaceAll(textBody, "\n", "<br>")

	_, err := n.client.SendEmail(context.Background(), &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(textBody)},
				Html: &types.Content{Data: aws.String(htmlBody)},
			},
		},
	})
	return err
}

// notify wraps Send with the absorb-and-log policy: notification failure is
// never surfaced to the request path.
func (n *Notifier) notify(subject, textBody string) bool {
	if err := n.Send(n.adminTo, subject, textBody); err != nil {
		log.Printf("Failed to send notification %q: %v\nOriginal message:\n%s", subject, err, textBody)
		return false
	}
	return true
}

// SendBookingNotification emails the admin mailbox about a new consultation
// lead. Returns whether the email actually went out.
func (n *Notifier) SendBookingNotification(req *models.ConsultationRequest) bool {
	var b strings.Builder
	b.WriteString("New Consultation Request\n\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	fmt.Fprintf(&b, "Preferred Contact: %s\n", req.PreferredContact)
	fmt.Fprintf(&b, "Service Interest: %s\n", req.ServiceInterest)
	if req.DateOfBirth != "" {
		fmt.Fprintf(&b, "Date of Birth: %s\n", req.DateOfBirth)
	}
	if req.PreferredDate != "" {
		fmt.Fprintf(&b, "Preferred Date: %s\n", req.PreferredDate)
	}
	if req.PreferredTime != "" {
		fmt.Fprintf(&b, "Preferred Time: %s\n", req.PreferredTime)
	}
	if req.Timezone != "" {
		fmt.Fprintf(&b, "Timezone: %s\n", req.Timezone)
	}
	if req.ConsultationType != "" {
		fmt.Fprintf(&b, "Consultation Type: %s\n", req.ConsultationType)
	}
	if req.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.Description)
	}
	if req.PhotoURL != "" {
		fmt.Fprintf(&b, "Photo: %s\n", req.PhotoURL)
	}

	return n.notify("New Consultation Request - "+req.Name, b.String())
}

// SendContactNotification emails the admin mailbox about a contact form message.
func (n *Notifier) SendContactNotification(sub *models.ContactSubmission) bool {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n", sub.Subject)
	fmt.Fprintf(&b, "Message: %s\n", sub.Message)

	return n.notify("New Contact Submission - "+sub.Subject, b.String())
}

// SendProviderNotification emails the admin mailbox about a clinic application.
func (n *Notifier) SendProviderNotification(app *models.ProviderApplication) bool {
	var b strings.Builder
	b.WriteString("New Provider Application\n\n")
	fmt.Fprintf(&b, "Clinic: %s\n", app.ClinicName)
	fmt.Fprintf(&b, "Contact: %s\n", app.ContactName)
	fmt.Fprintf(&b, "Email: %s\n", app.Email)
	fmt.Fprintf(&b, "Phone: %s\n", app.Phone)
	fmt.Fprintf(&b, "Location: %s, %s\n", app.City, app.State)
	fmt.Fprintf(&b, "Years in Business: %d\n", app.YearsInBusiness)
	if app.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", app.Description)
	}

	return n.notify("New Provider Application - "+app.ClinicName, b.String())
}
