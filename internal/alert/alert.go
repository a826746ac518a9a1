// Package alert delivers data-integrity alerts to an operations webhook.
// Reconciliation reports balances that diverge from the ledger here; the
// divergence is never repaired automatically.
package alert

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type HTTPPoster interface {
	Post(url string, contentType string, body []byte) (int, error)
}

type Alerter interface {
	IntegrityAlert(campaignID int, stored, derived int64)
}

type WebhookAlerter struct {
	url    string
	client HTTPPoster
}

func NewWebhookAlerter(url string, client HTTPPoster) *WebhookAlerter {
	return &WebhookAlerter{
		url:    url,
		client: client,
	}
}

type integrityPayload struct {
	Event      string `json:"event"`
	CampaignID int    `json:"campaign_id"`
	Stored     int64  `json:"stored"`
	Derived    int64  `json:"derived"`
}

// IntegrityAlert posts the divergence to the webhook if one is configured and
// always logs it. Delivery failures are logged and swallowed: alerting must
// never break the reconciliation path.
func (a *WebhookAlerter) IntegrityAlert(campaignID int, stored, derived int64) {
	zap.L().Error("campaign balance diverges from ledger",
		zap.Int("campaignID", campaignID),
		zap.Int64("stored", stored),
		zap.Int64("derived", derived),
	)

	if a.url == "" {
		return
	}

	body, err := json.Marshal(integrityPayload{
		Event:      "balance_integrity",
		CampaignID: campaignID,
		Stored:     stored,
		Derived:    derived,
	})
	if err != nil {
		zap.L().Error("can't marshal integrity alert", zap.Error(err))
		return
	}

	status, err := a.client.Post(a.url, "application/json", body)
	if err != nil {
		zap.L().Error("can't deliver integrity alert", zap.Error(err))
		return
	}
	if status != http.StatusOK && status != http.StatusAccepted && status != http.StatusNoContent {
		zap.L().Error("integrity alert rejected", zap.Error(fmt.Errorf("unexpected status code %d", status)))
	}
}
