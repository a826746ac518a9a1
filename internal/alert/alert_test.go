package alert

import (
	"errors"
	"net/http"
	"testing"

	"github.com/akosarev/fundmart/pkg/clients"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) *clients.MockHTTPClientI {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	return clients.NewMockHTTPClientI(ctrl)
}

func TestIntegrityAlert_Posts(t *testing.T) {
	client := NewMock(t)
	client.EXPECT().
		Post("http://alerts.local/hook", "application/json", gomock.Any()).
		Return(http.StatusOK, nil)

	a := NewWebhookAlerter("http://alerts.local/hook", client)
	a.IntegrityAlert(1, 5000, 4000)
}

func TestIntegrityAlert_NoWebhookConfigured(t *testing.T) {
	client := NewMock(t)
	// No Post expected.
	a := NewWebhookAlerter("", client)
	a.IntegrityAlert(1, 5000, 4000)
}

func TestIntegrityAlert_DeliveryFailureSwallowed(t *testing.T) {
	client := NewMock(t)
	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errors.New("connection refused"))

	a := NewWebhookAlerter("http://alerts.local/hook", client)
	a.IntegrityAlert(2, 100, 0)
}
