package ledger

import (
	"context"

	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/store"
)

// Ledger exposes ERC-721-style read views over the registry's own tokens.
// Every method is a pure read; callers may retry freely.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Exists reports whether a derivative token has been minted
	Exists(ctx context.Context, tokenID uint64) (bool, error)
	// OwnerOf returns the owner of a derivative token.
	// Returns domain.ErrTokenNotFound for unminted ids.
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)
	// BalanceOf returns the number of derivatives held by an owner
	BalanceOf(ctx context.Context, owner string) (uint64, error)
	// TokenURI returns the metadata URI of a derivative token.
	// Returns domain.ErrTokenNotFound for unminted ids.
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
	// TotalMinted returns the total number of minted derivatives
	TotalMinted(ctx context.Context) (uint64, error)
}

type storeLedger struct {
	store store.Store
}

// NewLedger creates a ledger backed by the registry store
func NewLedger(s store.Store) Ledger {
	return &storeLedger{store: s}
}

func (l *storeLedger) Exists(ctx context.Context, tokenID uint64) (bool, error) {
	token, err := l.store.GetDerivativeByTokenID(ctx, tokenID)
	if err != nil {
		return false, err
	}
	return token != nil, nil
}

func (l *storeLedger) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	token, err := l.store.GetDerivativeByTokenID(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", domain.ErrTokenNotFound
	}
	return token.Owner, nil
}

func (l *storeLedger) BalanceOf(ctx context.Context, owner string) (uint64, error) {
	return l.store.CountDerivativesByOwner(ctx, owner)
}

func (l *storeLedger) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	token, err := l.store.GetDerivativeByTokenID(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", domain.ErrTokenNotFound
	}
	return token.TokenURI, nil
}

func (l *storeLedger) TotalMinted(ctx context.Context) (uint64, error) {
	return l.store.CountDerivatives(ctx)
}
