package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddharthManjul/vailes-NFT/internal/api/middleware"
	"github.com/SiddharthManjul/vailes-NFT/internal/api/rest"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/logger"
	"github.com/SiddharthManjul/vailes-NFT/internal/mocks"
	"github.com/SiddharthManjul/vailes-NFT/internal/registry"
)

var (
	testCaller = domain.Address("0x457ee5f723C7606c12a7264b52e285906F91eEA6")
	testBase   = domain.Address("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0")
	testMinted = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
)

// newTestRouter wires the handler routes with a stub auth middleware that
// injects the given caller, standing in for JWT authentication.
func newTestRouter(t *testing.T, caller domain.Address) (*gin.Engine, *mocks.MockRegistry) {
	t.Helper()

	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMockRegistry(ctrl)
	handler := rest.NewHandler(mockRegistry)

	router := gin.New()
	authStub := func(c *gin.Context) {
		if caller != "" {
			c.Set(middleware.AUTH_SUBJECT_KEY, string(caller))
		}
		c.Next()
	}

	router.GET("/health", handler.HealthCheck)
	v1 := router.Group("/api/v1")
	v1.POST("/derivatives", authStub, handler.MintDerivative)
	v1.POST("/admin/derivatives", authStub, handler.AdminMintDerivative)
	v1.GET("/derivatives", handler.ListOwnedDerivatives)
	v1.GET("/derivatives/:id", handler.GetDerivative)
	v1.GET("/derivatives/:id/provenance", handler.GetProvenance)
	v1.GET("/derivatives/:id/uri", handler.GetTokenURI)
	v1.GET("/base/:contract/:token_number/derivative", handler.GetBaseDerivative)
	v1.GET("/stats", handler.GetStats)

	return router, mockRegistry
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mintedToken() *domain.DerivativeToken {
	return &domain.DerivativeToken{
		TokenID:  0,
		Owner:    testCaller.Normalized(),
		TokenURI: "https://x/1",
		Provenance: domain.Provenance{
			BaseContract:    testBase.Normalized(),
			BaseTokenNumber: "42",
			VialType:        "pixelify",
			CreatedAt:       testMinted,
		},
	}
}

func TestMintDerivative(t *testing.T) {
	mintBody := `{"base_contract":"` + string(testBase) + `","base_token_number":"42","vial_type":"pixelify","token_uri":"https://x/1"}`

	t.Run("successful mint returns the token", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, testCaller)

		mockRegistry.EXPECT().
			MintDerivative(gomock.Any(), testCaller, registry.MintRequest{
				BaseContract:    testBase,
				BaseTokenNumber: "42",
				VialType:        "pixelify",
				TokenURI:        "https://x/1",
			}).
			Return(mintedToken(), nil)

		w := doRequest(router, http.MethodPost, "/api/v1/derivatives", mintBody)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(0), resp["token_id"])
		assert.Equal(t, string(testCaller.Normalized()), resp["owner"])
		assert.Equal(t, "https://x/1", resp["token_uri"])

		provenance, ok := resp["provenance"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, string(testBase.Normalized()), provenance["base_contract"])
		assert.Equal(t, "42", provenance["base_token_number"])
		assert.Equal(t, "pixelify", provenance["vial_type"])
	})

	t.Run("duplicate claim maps to conflict", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, testCaller)

		mockRegistry.EXPECT().
			MintDerivative(gomock.Any(), testCaller, gomock.Any()).
			Return(nil, domain.ErrDuplicateDerivative)

		w := doRequest(router, http.MethodPost, "/api/v1/derivatives", mintBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "conflict")
	})

	t.Run("non-owner maps to forbidden", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, testCaller)

		mockRegistry.EXPECT().
			MintDerivative(gomock.Any(), testCaller, gomock.Any()).
			Return(nil, domain.ErrCallerNotBaseOwner)

		w := doRequest(router, http.MethodPost, "/api/v1/derivatives", mintBody)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})

	t.Run("missing base token maps to not found", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, testCaller)

		mockRegistry.EXPECT().
			MintDerivative(gomock.Any(), testCaller, gomock.Any()).
			Return(nil, domain.ErrBaseTokenNotFound)

		w := doRequest(router, http.MethodPost, "/api/v1/derivatives", mintBody)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed base contract rejected before the registry", func(t *testing.T) {
		router, _ := newTestRouter(t, testCaller)

		body := `{"base_contract":"nonsense","base_token_number":"42"}`
		w := doRequest(router, http.MethodPost, "/api/v1/derivatives", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid base contract address")
	})

	t.Run("missing caller rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, "")

		w := doRequest(router, http.MethodPost, "/api/v1/derivatives", mintBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminMintDerivative(t *testing.T) {
	recipient := domain.Address("0x99fc8AD516FBCC9bA3123D56e63A35d05AA9EFB8")
	adminBody := `{"to":"` + string(recipient) + `","base_contract":"` + string(testBase) + `","base_token_number":"42","vial_type":"pixelify","token_uri":"https://x/1"}`

	t.Run("admin mints to an arbitrary recipient", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, testCaller)

		token := mintedToken()
		token.Owner = recipient.Normalized()

		mockRegistry.EXPECT().
			AdminMintDerivative(gomock.Any(), testCaller, recipient, registry.MintRequest{
				BaseContract:    testBase,
				BaseTokenNumber: "42",
				VialType:        "pixelify",
				TokenURI:        "https://x/1",
			}).
			Return(token, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/admin/derivatives", adminBody)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), string(recipient.Normalized()))
	})

	t.Run("non-admin maps to forbidden", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, testCaller)

		mockRegistry.EXPECT().
			AdminMintDerivative(gomock.Any(), testCaller, recipient, gomock.Any()).
			Return(nil, domain.ErrNotAdministrator)

		w := doRequest(router, http.MethodPost, "/api/v1/admin/derivatives", adminBody)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing recipient rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, testCaller)

		body := `{"base_contract":"` + string(testBase) + `","base_token_number":"42"}`
		w := doRequest(router, http.MethodPost, "/api/v1/admin/derivatives", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "to is required")
	})
}

func TestGetDerivative(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetDerivative(gomock.Any(), uint64(0)).
			Return(mintedToken(), nil)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/0", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token_id":0`)
	})

	t.Run("unminted id maps to not found", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetDerivative(gomock.Any(), uint64(99)).
			Return(nil, domain.ErrTokenNotFound)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, "")

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProvenance(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetProvenance(gomock.Any(), uint64(0)).
			Return(&domain.Provenance{
				BaseContract:    testBase.Normalized(),
				BaseTokenNumber: "42",
				VialType:        "pixelify",
				CreatedAt:       testMinted,
			}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/0/provenance", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), string(testBase.Normalized()))
		assert.Contains(t, w.Body.String(), "pixelify")
	})

	t.Run("unminted id maps to not found", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetProvenance(gomock.Any(), uint64(7)).
			Return(nil, domain.ErrTokenNotFound)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/7/provenance", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetTokenURI(t *testing.T) {
	t.Run("returns the stored URI verbatim", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			TokenURI(gomock.Any(), uint64(3)).
			Return("ipfs://QmVial/3.json", nil)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/3/uri", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ipfs://QmVial/3.json")
	})

	t.Run("empty URI is a valid value", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			TokenURI(gomock.Any(), uint64(4)).
			Return("", nil)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives/4/uri", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token_uri":""`)
	})
}

func TestListOwnedDerivatives(t *testing.T) {
	t.Run("lists derivatives ascending by token id", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetOwnedDerivatives(gomock.Any(), testCaller).
			Return([]domain.DerivativeToken{*mintedToken()}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives?owner="+string(testCaller), "")

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["total"])
		assert.Equal(t, string(testCaller.Normalized()), resp["owner"])
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, "")

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed owner rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, "")

		w := doRequest(router, http.MethodGet, "/api/v1/derivatives?owner=nonsense", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetBaseDerivative(t *testing.T) {
	t.Run("claimed pair reports its derivative, including token id zero", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetDerivativeTokenID(gomock.Any(), domain.BaseTokenRef{
				Contract:    testBase,
				TokenNumber: "42",
			}).
			Return(uint64(0), true, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/base/"+string(testBase)+"/42/derivative", "")

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["claimed"])
		assert.Equal(t, float64(0), resp["token_id"])
	})

	t.Run("unclaimed pair omits the token id", func(t *testing.T) {
		router, mockRegistry := newTestRouter(t, "")

		mockRegistry.EXPECT().
			GetDerivativeTokenID(gomock.Any(), domain.BaseTokenRef{
				Contract:    testBase,
				TokenNumber: "7",
			}).
			Return(uint64(0), false, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/base/"+string(testBase)+"/7/derivative", "")

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["claimed"])
		assert.NotContains(t, w.Body.String(), "token_id")
	})

	t.Run("malformed contract rejected", func(t *testing.T) {
		router, _ := newTestRouter(t, "")

		w := doRequest(router, http.MethodGet, "/api/v1/base/nonsense/42/derivative", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetStats(t *testing.T) {
	router, mockRegistry := newTestRouter(t, "")

	mockRegistry.EXPECT().
		TotalMinted(gomock.Any()).
		Return(uint64(12), nil)

	w := doRequest(router, http.MethodGet, "/api/v1/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_minted":12`)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
