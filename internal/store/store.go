package store

import (
	"context"
	"time"

	"github.com/SiddharthManjul/vailes-NFT/internal/store/schema"
)

// CreateDerivativeMintInput holds everything written during a mint. All
// addresses are expected to be normalized before they reach the store.
type CreateDerivativeMintInput struct {
	Owner           string
	TokenURI        string
	BaseContract    string
	BaseTokenNumber string
	VialType        string
	Timestamp       time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateDerivativeMint allocates the next token id and writes the
	// derivative token, its provenance record, and the base claim in a
	// single transaction. Returns the assigned token id.
	CreateDerivativeMint(ctx context.Context, input CreateDerivativeMintInput) (uint64, error)
	// GetDerivativeByTokenID retrieves a derivative token with its provenance record
	GetDerivativeByTokenID(ctx context.Context, tokenID uint64) (*schema.DerivativeToken, error)
	// GetProvenanceByTokenID retrieves the provenance record for a derivative token
	GetProvenanceByTokenID(ctx context.Context, tokenID uint64) (*schema.ProvenanceRecord, error)
	// GetBaseClaim retrieves the uniqueness claim for a base token, if any
	GetBaseClaim(ctx context.Context, baseContract, baseTokenNumber string) (*schema.BaseClaim, error)
	// GetDerivativesByOwner retrieves all derivatives held by an owner, ascending by token id
	GetDerivativesByOwner(ctx context.Context, owner string) ([]schema.DerivativeToken, error)
	// CountDerivativesByOwner returns the number of derivatives held by an owner
	CountDerivativesByOwner(ctx context.Context, owner string) (uint64, error)
	// CountDerivatives returns the total number of minted derivatives
	CountDerivatives(ctx context.Context) (uint64, error)
	// GetNextTokenID returns the token id the next mint will be assigned
	GetNextTokenID(ctx context.Context) (uint64, error)
}
