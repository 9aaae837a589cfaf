package buyTickets

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/http-server/handlers/event/buyTickets/mocks"
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

func TestBuyTicketsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	program := signing.Identity(newKey(t))
	buyerKey := newKey(t)
	buyer := signing.Identity(buyerKey)
	event := signing.Identity(newKey(t))
	treasury := signing.Identity(newKey(t))
	mint := signing.Identity(newKey(t))

	body := func(req TicketsRequest, keys ...ed25519.PrivateKey) string {
		sigs, err := signed.Sign(program, string(escrow.OpBuyTickets), Fields(event, req), keys...)
		require.NoError(t, err)
		req.Signatures = sigs

		raw, err := json.Marshal(req)
		require.NoError(t, err)
		return string(raw)
	}

	byBuyer := mock.MatchedBy(func(s ledger.Signers) bool { return s.Has(buyer) })
	receipt := escrow.Receipt{ID: "rcpt-1", Operation: escrow.OpBuyTickets, Event: event, Actor: buyer, Amount: 300, Quantity: 3}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TicketSeller)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: body(TicketsRequest{Buyer: buyer, Quantity: 3}, buyerKey),
			mockSetup: func(m *mocks.TicketSeller) {
				m.On("BuyTickets", mock.Anything, byBuyer, escrow.BuyTicketsInput{
					Event: event, Buyer: buyer, Quantity: 3,
				}).Return(receipt, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp TicketsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, uint64(300), resp.Receipt.Amount)
				assert.Equal(t, uint64(3), resp.Receipt.Quantity)
				assert.Equal(t, event, resp.Receipt.Event)
			},
		},
		{
			name:        "Success with sub-accounts",
			requestBody: body(TicketsRequest{Buyer: buyer, Quantity: 1, TreasuryVault: &treasury, TicketMint: &mint}, buyerKey),
			mockSetup: func(m *mocks.TicketSeller) {
				m.On("BuyTickets", mock.Anything, byBuyer, escrow.BuyTicketsInput{
					Event: event, Buyer: buyer, Quantity: 1, TreasuryVault: treasury, TicketMint: mint,
				}).Return(receipt, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"buyer":`,
			mockSetup:      func(m *mocks.TicketSeller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing signatures",
			requestBody:    `{"buyer":"` + buyer.String() + `","quantity":1}`,
			mockSetup:      func(m *mocks.TicketSeller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Signatures is a required field","code":"invalid_request"}`,
		},
		{
			name: "Signature over a different quantity",
			requestBody: func() string {
				raw := body(TicketsRequest{Buyer: buyer, Quantity: 1}, buyerKey)
				return string(bytes.Replace([]byte(raw), []byte(`"quantity":1`), []byte(`"quantity":100`), 1))
			}(),
			mockSetup:      func(m *mocks.TicketSeller) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"signature verification failed","code":"bad_signature"}`,
		},
		{
			name:        "Inactive event",
			requestBody: body(TicketsRequest{Buyer: buyer, Quantity: 1}, buyerKey),
			mockSetup: func(m *mocks.TicketSeller) {
				m.On("BuyTickets", mock.Anything, byBuyer, mock.Anything).
					Return(escrow.Receipt{}, fmt.Errorf("buy_tickets: %w", escrow.ErrEventInactive))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"inactive event","code":"event_inactive"}`,
		},
		{
			name:        "Overflow",
			requestBody: body(TicketsRequest{Buyer: buyer, Quantity: 2}, buyerKey),
			mockSetup: func(m *mocks.TicketSeller) {
				m.On("BuyTickets", mock.Anything, byBuyer, mock.Anything).
					Return(escrow.Receipt{}, fmt.Errorf("buy_tickets: %w", escrow.ErrOverflow))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"arithmetic overflow","code":"arithmetic_overflow"}`,
		},
		{
			name:        "Substituted treasury",
			requestBody: body(TicketsRequest{Buyer: buyer, Quantity: 1, TreasuryVault: &mint}, buyerKey),
			mockSetup: func(m *mocks.TicketSeller) {
				m.On("BuyTickets", mock.Anything, byBuyer, mock.Anything).
					Return(escrow.Receipt{}, fmt.Errorf("buy_tickets: %w", escrow.ErrAddressMismatch))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"sub-account does not match its derived address","code":"address_mismatch"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSeller := mocks.NewTicketSeller(t)
			tc.mockSetup(mockSeller)

			router := chi.NewRouter()
			router.Post("/events/{address}/tickets", New(logger, program, mockSeller))

			req, err := http.NewRequest(http.MethodPost, "/events/"+event.String()+"/tickets", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
