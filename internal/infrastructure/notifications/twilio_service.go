package notifications

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/seabasket/seabasket-api/domain"
)

// TwilioSender sends SMS through Twilio
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioSender creates a new Twilio SMS sender
func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, fromNumber: fromNumber}
}

// SendSMS sends message to the given mobile number
func (t *TwilioSender) SendSMS(to, message string) error {
	// Without a configured sender number, log instead of sending.
	if t.fromNumber == "" {
		log.Printf("SMS_SKIPPED: to=%s message=%q", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// NotifierImpl implements domain.NotificationService by combining the
// SMTP mailer with the Twilio SMS sender.
type NotifierImpl struct {
	mailer *SMTPMailer
	sms    *TwilioSender
}

// NewNotifier creates the combined notification service
func NewNotifier(mailer *SMTPMailer, sms *TwilioSender) domain.NotificationService {
	return &NotifierImpl{mailer: mailer, sms: sms}
}

// SendEmail implements domain.NotificationService
func (n *NotifierImpl) SendEmail(to, subject, body string) error {
	return n.mailer.Send(to, subject, body)
}

// SendSMS implements domain.NotificationService
func (n *NotifierImpl) SendSMS(to, message string) error {
	return n.sms.SendSMS(to, message)
}
