package withdrawFunds

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/http-server/handlers/event/withdrawFunds/mocks"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/api/signed"
	"eventEscrow/internal/lib/logger/handlers/slogdiscard"
	"eventEscrow/internal/lib/signing"
	"fmt"
	"github.com/go-chi/chi/v5"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()

	_, key, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return key
}

func TestWithdrawFundsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	program := signing.Identity(newKey(t))
	authorityKey := newKey(t)
	authority := signing.Identity(authorityKey)
	event := signing.Identity(newKey(t))
	vault := signing.Identity(newKey(t))

	body := func(req WithdrawRequest, keys ...ed25519.PrivateKey) string {
		sigs, err := signed.Sign(program, string(escrow.OpWithdrawFunds), Fields(event, req), keys...)
		require.NoError(t, err)
		req.Signatures = sigs

		raw, err := json.Marshal(req)
		require.NoError(t, err)
		return string(raw)
	}

	byAuthority := mock.MatchedBy(func(s ledger.Signers) bool { return s.Has(authority) })

	testCases := []struct {
		name           string
		event          string
		requestBody    string
		mockSetup      func(m *mocks.FundsWithdrawer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Sweeps gain vault",
			event:       event.String(),
			requestBody: body(WithdrawRequest{Authority: authority, GainVault: &vault}, authorityKey),
			mockSetup: func(m *mocks.FundsWithdrawer) {
				m.On("WithdrawFunds", mock.Anything, byAuthority, escrow.WithdrawFundsInput{
					Event: event, Authority: authority, GainVault: vault,
				}).Return(escrow.Receipt{ID: "rcpt-1", Amount: 500}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid event address",
			event:          "0OIl",
			requestBody:    body(WithdrawRequest{Authority: authority}, authorityKey),
			mockSetup:      func(m *mocks.FundsWithdrawer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event address"}`,
		},
		{
			name:        "Missing signature",
			event:       event.String(),
			requestBody: body(WithdrawRequest{Authority: authority}),
			mockSetup: func(m *mocks.FundsWithdrawer) {
				m.On("WithdrawFunds", mock.Anything, mock.Anything, mock.Anything).
					Return(escrow.Receipt{}, fmt.Errorf("withdraw_funds: %w", escrow.ErrMissingSignature))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"required co-signer did not sign","code":"missing_signature"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockWithdrawer := mocks.NewFundsWithdrawer(t)
			tc.mockSetup(mockWithdrawer)

			router := chi.NewRouter()
			router.Post("/events/{address}/withdraw-funds", New(logger, program, mockWithdrawer))

			req, err := http.NewRequest(http.MethodPost, "/events/"+tc.event+"/withdraw-funds", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}
