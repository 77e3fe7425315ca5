package notifications

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/you/dmhub/domain"
)

var log = logrus.WithField("prefix", "twilio")

// TwilioServiceImpl implements domain.SMSService.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a new Twilio SMS service.
func NewTwilioService(accountSID, authToken, fromNumber string) domain.SMSService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// SendSMS implements domain.SMSService. When no sender number is
// configured the message is logged instead of sent, so local setups work
// without Twilio credentials.
func (t *TwilioServiceImpl) SendSMS(to, body string) error {
	if t.fromNumber == "" {
		log.WithField("to", to).Infof("[MOCK SMS] %s", body)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}
