package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/samedayramps/samedayramps-application/entity"
)

// Service sends the transactional emails fired by workflow transitions.
// Every method is best-effort: callers log failures and never let them roll
// back the transition that triggered them.
type Service interface {
	QuoteRequested(ctx context.Context, q *entity.Quote) error
	QuotePriced(ctx context.Context, q *entity.Quote) error
	AgreementSigned(ctx context.Context, r *entity.Rental) error
}

// Config carries the outbound-mail settings. An empty APIKey degrades every
// send to a logged no-op.
type Config struct {
	APIKey     string
	FromEmail  string // e.g. admin@samedayramps.com
	AdminEmail string // internal recipient for new-quote / signed notifications
	AppURL     string // base URL for deep links in admin emails
}

type sendgridNotifier struct {
	cfg    Config
	client *sendgrid.Client
}

// NewSendGridNotifier constructs the SendGrid-backed notifier.
func NewSendGridNotifier(cfg Config) Service {
	n := &sendgridNotifier{cfg: cfg}
	if cfg.APIKey != "" {
		n.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return n
}

// QuoteRequested notifies the internal admin recipient that a new quote came in.
func (n *sendgridNotifier) QuoteRequested(_ context.Context, q *entity.Quote) error {
	if n.client == nil {
		logrus.Info("email service not configured - skipping new quote notification")
		return nil
	}

	shortID := q.ID.String()
	if len(shortID) > 8 {
		shortID = shortID[len(shortID)-8:]
	}
	subject := fmt.Sprintf("New Quote Request #%s", shortID)
	body := fmt.Sprintf(`New quote request received:

Customer: %s
Email: %s
Phone: %s
Address: %s
%s
View in admin: %s/quotes/%s
`,
		q.Customer.FullName(), q.Customer.Email, q.Customer.Phone,
		q.InstallationAddress, optionalNotes(q.CustomerNotes), n.cfg.AppURL, q.ID)

	return n.send(n.cfg.AdminEmail, subject, body)
}

// QuotePriced sends the customer their quote once a price is provided.
func (n *sendgridNotifier) QuotePriced(_ context.Context, q *entity.Quote) error {
	if n.client == nil {
		logrus.Info("email service not configured - skipping quote email")
		return nil
	}

	body := fmt.Sprintf(`Hi %s,

Thank you for your interest in Same Day Ramps! We've prepared a custom quote for your wheelchair ramp rental.

Installation Address: %s
%s
PRICING:
%s%s%s
This quote is valid for 30 days. We can typically install your ramp within 24-48 hours of acceptance.

To accept this quote or if you have any questions, please reply to this email.

Best regards,
Same Day Ramps Team
`,
		q.Customer.FirstName,
		q.InstallationAddress,
		optionalFeet("Ramp Length", q.RampLength),
		optionalMoney("Installation Fee", q.InstallFee, ""),
		optionalMoney("Monthly Rental", q.MonthlyRate, "/month"),
		optionalMoney("Total Estimated Cost", q.TotalEstimatedCost, ""))

	return n.send(q.Customer.Email, "Your Wheelchair Ramp Quote from Same Day Ramps", body)
}

// AgreementSigned notifies the internal admin recipient that the customer
// signed the rental agreement.
func (n *sendgridNotifier) AgreementSigned(_ context.Context, r *entity.Rental) error {
	if n.client == nil {
		logrus.Info("email service not configured - skipping agreement signed notification")
		return nil
	}

	subject := fmt.Sprintf("Rental Agreement Signed - %s", r.Customer.FullName())
	body := fmt.Sprintf(`The rental agreement for %s has been signed.

Upfront Cost: $%s
Monthly Rate: $%s

View in admin: %s/rentals/%s
`,
		r.Customer.FullName(), r.UpfrontCost.StringFixed(2), r.MonthlyRate.StringFixed(2),
		n.cfg.AppURL, r.ID)

	return n.send(n.cfg.AdminEmail, subject, body)
}

func (n *sendgridNotifier) send(to, subject, plainText string) error {
	from := mail.NewEmail("Same Day Ramps", n.cfg.FromEmail)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainText, "")
	_, err := n.client.Send(msg)
	return err
}

func optionalNotes(notes *string) string {
	if notes == nil || *notes == "" {
		return ""
	}
	return fmt.Sprintf("Notes: %s\n", *notes)
}

func optionalMoney(label string, v *decimal.Decimal, suffix string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%s: $%s%s\n", label, v.StringFixed(2), suffix)
}

func optionalFeet(label string, v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s feet\n", label, v.StringFixed(0))
}
