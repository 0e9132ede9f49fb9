package dto

import (
	"fmt"
	"time"

	apierrors "github.com/SiddharthManjul/vailes-NFT/internal/api/shared/errors"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
)

// MintDerivativeRequest represents the request body for a self-service mint.
// VialType and TokenURI are stored verbatim; both may be empty.
type MintDerivativeRequest struct {
	BaseContract    string `json:"base_contract"`
	BaseTokenNumber string `json:"base_token_number"`
	VialType        string `json:"vial_type"`
	TokenURI        string `json:"token_uri"`
}

// Validate validates the request body
func (r *MintDerivativeRequest) Validate() error {
	if r.BaseContract == "" {
		return apierrors.NewValidationError("base_contract is required")
	}
	if !domain.Address(r.BaseContract).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid base contract address: %s", r.BaseContract))
	}
	if r.BaseTokenNumber == "" {
		return apierrors.NewValidationError("base_token_number is required")
	}
	if !domain.TokenNumber(r.BaseTokenNumber).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid base token number: %s", r.BaseTokenNumber))
	}
	return nil
}

// AdminMintDerivativeRequest represents the request body for an administrative
// mint to an arbitrary recipient
type AdminMintDerivativeRequest struct {
	To              string `json:"to"`
	BaseContract    string `json:"base_contract"`
	BaseTokenNumber string `json:"base_token_number"`
	VialType        string `json:"vial_type"`
	TokenURI        string `json:"token_uri"`
}

// Validate validates the request body
func (r *AdminMintDerivativeRequest) Validate() error {
	if r.To == "" {
		return apierrors.NewValidationError("to is required")
	}
	if !domain.Address(r.To).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid recipient address: %s", r.To))
	}
	mint := MintDerivativeRequest{
		BaseContract:    r.BaseContract,
		BaseTokenNumber: r.BaseTokenNumber,
		VialType:        r.VialType,
		TokenURI:        r.TokenURI,
	}
	return mint.Validate()
}

// ProvenanceDTO is the API view of a provenance record
type ProvenanceDTO struct {
	BaseContract    string    `json:"base_contract"`
	BaseTokenNumber string    `json:"base_token_number"`
	VialType        string    `json:"vial_type"`
	CreatedAt       time.Time `json:"created_at"`
}

// DerivativeDTO is the API view of a minted derivative token
type DerivativeDTO struct {
	TokenID    uint64        `json:"token_id"`
	Owner      string        `json:"owner"`
	TokenURI   string        `json:"token_uri"`
	Provenance ProvenanceDTO `json:"provenance"`
}

// OwnedDerivativesResponse lists the derivatives held by one owner
type OwnedDerivativesResponse struct {
	Owner       string          `json:"owner"`
	Derivatives []DerivativeDTO `json:"derivatives"`
	Total       int             `json:"total"`
}

// BaseDerivativeResponse reports whether a base token pair has been claimed
// and by which derivative. TokenID is present only when claimed, so a real
// token id 0 is distinguishable from "unclaimed".
type BaseDerivativeResponse struct {
	BaseContract    string  `json:"base_contract"`
	BaseTokenNumber string  `json:"base_token_number"`
	Claimed         bool    `json:"claimed"`
	TokenID         *uint64 `json:"token_id,omitempty"`
}

// TokenURIResponse returns the metadata URI stored at mint time
type TokenURIResponse struct {
	TokenID  uint64 `json:"token_id"`
	TokenURI string `json:"token_uri"`
}

// StatsResponse reports registry-wide counters
type StatsResponse struct {
	TotalMinted uint64 `json:"total_minted"`
}

// NewProvenanceDTO converts a domain provenance record to its API view
func NewProvenanceDTO(p domain.Provenance) ProvenanceDTO {
	return ProvenanceDTO{
		BaseContract:    string(p.BaseContract),
		BaseTokenNumber: string(p.BaseTokenNumber),
		VialType:        p.VialType,
		CreatedAt:       p.CreatedAt,
	}
}

// NewDerivativeDTO converts a domain derivative token to its API view
func NewDerivativeDTO(token domain.DerivativeToken) DerivativeDTO {
	return DerivativeDTO{
		TokenID:    token.TokenID,
		Owner:      string(token.Owner),
		TokenURI:   token.TokenURI,
		Provenance: NewProvenanceDTO(token.Provenance),
	}
}
