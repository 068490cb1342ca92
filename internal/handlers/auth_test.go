package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/review-catalog/internal/services"
)

func TestAuthEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockCodeRequester)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"user@example.com"}`,
			setupMocks: func(m *MockCodeRequester) {
				m.EXPECT().RequestCode(gomock.Any(), "user@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid email",
			body: `{"email":"nope"}`,
			setupMocks: func(m *MockCodeRequester) {
				m.EXPECT().RequestCode(gomock.Any(), "nope").Return(services.ErrInvalidEmail)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{`,
			setupMocks:     func(m *MockCodeRequester) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCodeRequester(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewAuthEmailHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/email", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestAuthTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockTokenExchanger)
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "success",
			body: `{"email":"user@example.com","confirmation_code":"abc"}`,
			setupMocks: func(m *MockTokenExchanger) {
				m.EXPECT().ExchangeCode(gomock.Any(), "user@example.com", "abc").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "jwt-token",
		},
		{
			name: "wrong code",
			body: `{"email":"user@example.com","confirmation_code":"bad"}`,
			setupMocks: func(m *MockTokenExchanger) {
				m.EXPECT().ExchangeCode(gomock.Any(), "user@example.com", "bad").Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "consumed code",
			body: `{"email":"user@example.com","confirmation_code":"abc"}`,
			setupMocks: func(m *MockTokenExchanger) {
				m.EXPECT().ExchangeCode(gomock.Any(), "user@example.com", "abc").Return("", services.ErrCodeInactive)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTokenExchanger(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewAuthTokenHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedToken != "" {
				var resp AuthTokenResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedToken, resp.Token)
			}
		})
	}
}
