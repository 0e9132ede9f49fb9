package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SiddharthManjul/vailes-NFT/internal/api/middleware"
	"github.com/SiddharthManjul/vailes-NFT/internal/api/rest/dto"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/registry"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// MintDerivative mints a derivative to the authenticated caller
	// POST /api/v1/derivatives
	MintDerivative(c *gin.Context)

	// AdminMintDerivative mints a derivative to an arbitrary recipient
	// (requires the authenticated caller to be an administrator)
	// POST /api/v1/admin/derivatives
	AdminMintDerivative(c *gin.Context)

	// GetDerivative retrieves a minted derivative with its provenance
	// GET /api/v1/derivatives/:id
	GetDerivative(c *gin.Context)

	// GetProvenance retrieves the provenance record of a minted derivative
	// GET /api/v1/derivatives/:id/provenance
	GetProvenance(c *gin.Context)

	// GetTokenURI retrieves the metadata URI stored at mint time
	// GET /api/v1/derivatives/:id/uri
	GetTokenURI(c *gin.Context)

	// ListOwnedDerivatives retrieves the derivatives held by one owner
	// GET /api/v1/derivatives?owner=<address>
	ListOwnedDerivatives(c *gin.Context)

	// GetBaseDerivative reports whether a base token pair has been claimed
	// GET /api/v1/base/:contract/:token_number/derivative
	GetBaseDerivative(c *gin.Context)

	// GetStats reports registry-wide counters
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	registry registry.Registry
}

// NewHandler creates a new REST API handler over the derivative registry
func NewHandler(reg registry.Registry) Handler {
	return &handler{
		registry: reg,
	}
}

// MintDerivative mints a derivative to the authenticated caller
func (h *handler) MintDerivative(c *gin.Context) {
	caller, ok := middleware.CallerAddress(c)
	if !ok {
		respondBadRequest(c, "Caller address is required")
		return
	}

	var req dto.MintDerivativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondDomainError(c, err, "Failed to mint derivative")
		return
	}

	token, err := h.registry.MintDerivative(c.Request.Context(), caller, registry.MintRequest{
		BaseContract:    domain.Address(req.BaseContract),
		BaseTokenNumber: domain.TokenNumber(req.BaseTokenNumber),
		VialType:        req.VialType,
		TokenURI:        req.TokenURI,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to mint derivative")
		return
	}

	c.JSON(http.StatusCreated, dto.NewDerivativeDTO(*token))
}

// AdminMintDerivative mints a derivative to an arbitrary recipient
func (h *handler) AdminMintDerivative(c *gin.Context) {
	caller, ok := middleware.CallerAddress(c)
	if !ok {
		respondBadRequest(c, "Caller address is required")
		return
	}

	var req dto.AdminMintDerivativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondDomainError(c, err, "Failed to mint derivative")
		return
	}

	token, err := h.registry.AdminMintDerivative(c.Request.Context(), caller, domain.Address(req.To), registry.MintRequest{
		BaseContract:    domain.Address(req.BaseContract),
		BaseTokenNumber: domain.TokenNumber(req.BaseTokenNumber),
		VialType:        req.VialType,
		TokenURI:        req.TokenURI,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to mint derivative")
		return
	}

	c.JSON(http.StatusCreated, dto.NewDerivativeDTO(*token))
}

// GetDerivative retrieves a minted derivative with its provenance
func (h *handler) GetDerivative(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	token, err := h.registry.GetDerivative(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get derivative")
		return
	}

	c.JSON(http.StatusOK, dto.NewDerivativeDTO(*token))
}

// GetProvenance retrieves the provenance record of a minted derivative
func (h *handler) GetProvenance(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	provenance, err := h.registry.GetProvenance(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get provenance")
		return
	}

	c.JSON(http.StatusOK, dto.NewProvenanceDTO(*provenance))
}

// GetTokenURI retrieves the metadata URI stored at mint time
func (h *handler) GetTokenURI(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	uri, err := h.registry.TokenURI(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token URI")
		return
	}

	c.JSON(http.StatusOK, dto.TokenURIResponse{
		TokenID:  tokenID,
		TokenURI: uri,
	})
}

// ListOwnedDerivatives retrieves the derivatives held by one owner
func (h *handler) ListOwnedDerivatives(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "owner is required")
		return
	}
	if !domain.Address(owner).Valid() {
		respondValidationError(c, fmt.Sprintf("invalid owner address: %s", owner))
		return
	}

	tokens, err := h.registry.GetOwnedDerivatives(c.Request.Context(), domain.Address(owner))
	if err != nil {
		respondDomainError(c, err, "Failed to list derivatives")
		return
	}

	derivatives := make([]dto.DerivativeDTO, 0, len(tokens))
	for _, token := range tokens {
		derivatives = append(derivatives, dto.NewDerivativeDTO(token))
	}

	c.JSON(http.StatusOK, dto.OwnedDerivativesResponse{
		Owner:       string(domain.Address(owner).Normalized()),
		Derivatives: derivatives,
		Total:       len(derivatives),
	})
}

// GetBaseDerivative reports whether a base token pair has been claimed
func (h *handler) GetBaseDerivative(c *gin.Context) {
	contract := c.Param("contract")
	if !domain.Address(contract).Valid() {
		respondValidationError(c, fmt.Sprintf("invalid base contract address: %s", contract))
		return
	}

	tokenNumber := c.Param("token_number")
	if !domain.TokenNumber(tokenNumber).Valid() {
		respondValidationError(c, fmt.Sprintf("invalid base token number: %s", tokenNumber))
		return
	}

	base := domain.BaseTokenRef{
		Contract:    domain.Address(contract),
		TokenNumber: domain.TokenNumber(tokenNumber),
	}

	tokenID, claimed, err := h.registry.GetDerivativeTokenID(c.Request.Context(), base)
	if err != nil {
		respondDomainError(c, err, "Failed to look up base token")
		return
	}

	response := dto.BaseDerivativeResponse{
		BaseContract:    string(base.Contract.Normalized()),
		BaseTokenNumber: string(base.TokenNumber),
		Claimed:         claimed,
	}
	if claimed {
		response.TokenID = &tokenID
	}

	c.JSON(http.StatusOK, response)
}

// GetStats reports registry-wide counters
func (h *handler) GetStats(c *gin.Context) {
	total, err := h.registry.TotalMinted(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalMinted: total,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "vials-nft-api",
	})
}

// parseTokenID parses the :id path parameter. Token ids are decimal and start
// at zero.
func parseTokenID(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	tokenID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid token id: %s", raw))
		return 0, false
	}
	return tokenID, true
}
