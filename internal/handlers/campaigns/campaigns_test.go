package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/dto"
	campaignservice "github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CampaignHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"title":"Clean Water","category":"health","goal":1000.00}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Clean Water", "health", int64(100000)).
					Return(&domain.Campaign{
						ID:        1,
						OwnerID:   1,
						Title:     "Clean Water",
						Category:  "health",
						Goal:      100000,
						Status:    domain.CampaignStatusPending,
						CreatedAt: timeNow,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"title":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing title",
			body:          `{"category":"health","goal":1000.00}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "title is required",
		},
		{
			name: "Invalid goal",
			body: `{"title":"Clean Water","goal":0}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Clean Water", "", int64(0)).
					Return(nil, campaignservice.ErrInvalidGoal)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"title":"Clean Water","goal":1000.00}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Clean Water", "", int64(100000)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/campaigns", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.CampaignResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 1, body.ID)
				assert.Equal(t, 1000.00, body.Goal)
				assert.Equal(t, domain.CampaignStatusPending, body.Status)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Campaign found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).
					Return(&domain.Campaign{ID: 1, Title: "Clean Water", Goal: 100000, Raised: 25000, Status: domain.CampaignStatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Campaign not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 99).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/campaigns/"+tt.id, nil)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approve campaign",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Review(gomock.Any(), 1, true).
					Return(&domain.Campaign{ID: 1, Status: domain.CampaignStatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject campaign",
			body: `{"decision":"rejected"}`,
			prepareMock: func() {
				service.EXPECT().Review(gomock.Any(), 1, false).
					Return(&domain.Campaign{ID: 1, Status: domain.CampaignStatusRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid decision",
			body:          `{"decision":"maybe"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "decision must be approved or rejected",
		},
		{
			name: "Campaign not found",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Review(gomock.Any(), 1, true).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already reviewed",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Review(gomock.Any(), 1, true).Return(nil, campaignservice.ErrNotReviewable)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/campaigns/1/review", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			r = withURLParam(r, "id", "1")
			w := httptest.NewRecorder()

			handler.Review(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestAddDonationHandler(t *testing.T) {
	handler, service := NewMock(t)
	donorID := 3

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Donation recorded",
			body: `{"ref":"pay-42","userId":3,"amount":50.00}`,
			prepareMock: func() {
				service.EXPECT().
					ApplyDonation(gomock.Any(), 1, &donorID, "pay-42", int64(5000)).
					Return(&domain.LedgerEntry{ID: 10, RefID: "pay-42"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Anonymous donation",
			body: `{"amount":50.00}`,
			prepareMock: func() {
				service.EXPECT().
					ApplyDonation(gomock.Any(), 1, (*int)(nil), "", int64(5000)).
					Return(&domain.LedgerEntry{ID: 11}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().
					ApplyDonation(gomock.Any(), 1, (*int)(nil), "", int64(0)).
					Return(nil, campaignservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Campaign not open",
			body: `{"amount":50.00}`,
			prepareMock: func() {
				service.EXPECT().
					ApplyDonation(gomock.Any(), 1, (*int)(nil), "", int64(5000)).
					Return(nil, campaignservice.ErrCampaignNotOpen)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Duplicate reference",
			body: `{"ref":"pay-42","amount":50.00}`,
			prepareMock: func() {
				service.EXPECT().
					ApplyDonation(gomock.Any(), 1, (*int)(nil), "pay-42", int64(5000)).
					Return(nil, campaignservice.ErrDuplicateRef)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Campaign not found",
			body: `{"amount":50.00}`,
			prepareMock: func() {
				service.EXPECT().
					ApplyDonation(gomock.Any(), 1, (*int)(nil), "", int64(5000)).
					Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/campaigns/1/donations", bytes.NewBufferString(tt.body))
			r = withURLParam(r, "id", "1")
			w := httptest.NewRecorder()

			handler.AddDonation(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReconcileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Consistent",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), 1).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"consistent":true`,
		},
		{
			name: "Inconsistent",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), 1).Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"consistent":false`,
		},
		{
			name: "Campaign not found",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), 1).Return(false, campaignservice.ErrCampaignNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/campaigns/1/reconcile", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			r = withURLParam(r, "id", "1")
			w := httptest.NewRecorder()

			handler.Reconcile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
