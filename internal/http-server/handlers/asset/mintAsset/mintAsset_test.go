package mintAsset

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"eventEscrow/internal/http-server/handlers/asset/mintAsset/mocks"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
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

func TestMintAssetHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	_, programKey, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	_, issuerKey, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	program := signing.Identity(programKey)
	issuer := signing.Identity(issuerKey)
	asset := address.Address{42}
	owner := address.Address{43}
	holding := address.Address{44}

	body := func(req MintRequest) string {
		sigs, err := signed.Sign(program, Operation, Fields(asset, req), issuerKey)
		require.NoError(t, err)
		req.Signatures = sigs

		raw, err := json.Marshal(req)
		require.NoError(t, err)
		return string(raw)
	}

	byIssuer := mock.MatchedBy(func(s ledger.Signers) bool { return s.Has(issuer) })

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.AssetMinter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: body(MintRequest{Authority: issuer, Owner: owner, Amount: 1_000}),
			mockSetup: func(m *mocks.AssetMinter) {
				m.On("Mint", mock.Anything, byIssuer, asset, issuer, owner, uint64(1_000)).Return(holding, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"status":"OK","holding":%q}`, holding.String()),
		},
		{
			name:           "Zero amount",
			requestBody:    body(MintRequest{Authority: issuer, Owner: owner}),
			mockSetup:      func(m *mocks.AssetMinter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Amount must be greater than 0","code":"invalid_request"}`,
		},
		{
			name:        "Not the mint authority",
			requestBody: body(MintRequest{Authority: issuer, Owner: owner, Amount: 1}),
			mockSetup: func(m *mocks.AssetMinter) {
				m.On("Mint", mock.Anything, byIssuer, asset, issuer, owner, uint64(1)).
					Return(address.Zero, fmt.Errorf("assets.Mint: %w", ledger.ErrMintAuthority))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"required co-signer did not sign","code":"missing_signature"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockMinter := mocks.NewAssetMinter(t)
			tc.mockSetup(mockMinter)

			router := chi.NewRouter()
			router.Post("/assets/{address}/mint", New(logger, program, mockMinter))

			req, err := http.NewRequest(http.MethodPost, "/assets/"+asset.String()+"/mint", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
