package registry

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/SiddharthManjul/vailes-NFT/internal/adapter"
	apierrors "github.com/SiddharthManjul/vailes-NFT/internal/api/shared/errors"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/ledger"
	"github.com/SiddharthManjul/vailes-NFT/internal/logger"
	"github.com/SiddharthManjul/vailes-NFT/internal/messaging"
	"github.com/SiddharthManjul/vailes-NFT/internal/providers/ethereum"
	"github.com/SiddharthManjul/vailes-NFT/internal/store"
)

// MintRequest carries the caller-supplied mint parameters. VialType may be
// empty; TokenURI is stored verbatim, including the empty string.
type MintRequest struct {
	BaseContract    domain.Address
	BaseTokenNumber domain.TokenNumber
	VialType        string
	TokenURI        string
}

// canonicalized returns the request with the base reference in canonical form,
// so aliased spellings of one base token ("042", "+42") map to the same claim
// key and the same contract calldata
func (req MintRequest) canonicalized() MintRequest {
	req.BaseContract = req.BaseContract.Normalized()
	req.BaseTokenNumber = req.BaseTokenNumber.Normalized()
	return req
}

// Registry is the derivative registry: mint operations gated by authorization,
// plus provenance and reverse-lookup queries
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// MintDerivative mints a derivative to the caller. The caller must
	// currently own the referenced base token on the external contract.
	MintDerivative(ctx context.Context, caller domain.Address, req MintRequest) (*domain.DerivativeToken, error)
	// AdminMintDerivative mints a derivative to an arbitrary recipient. The
	// caller must hold the administrative capability; base-token ownership is
	// not checked.
	AdminMintDerivative(ctx context.Context, caller, to domain.Address, req MintRequest) (*domain.DerivativeToken, error)
	// GetProvenance returns the provenance record for a minted derivative.
	// Fails with domain.ErrTokenNotFound for unminted ids.
	GetProvenance(ctx context.Context, tokenID uint64) (*domain.Provenance, error)
	// HasDerivative reports whether a base token pair has been claimed.
	// Never fails for well-formed pairs; unclaimed pairs return false.
	HasDerivative(ctx context.Context, base domain.BaseTokenRef) (bool, error)
	// GetDerivativeTokenID returns the derivative token id that claimed a base
	// token pair. The boolean reports whether the pair is claimed at all,
	// disambiguating a real token id 0 from "unclaimed".
	GetDerivativeTokenID(ctx context.Context, base domain.BaseTokenRef) (uint64, bool, error)
	// GetOwnedDerivatives returns the derivatives currently held by an owner,
	// ascending by token id, each with its provenance record
	GetOwnedDerivatives(ctx context.Context, owner domain.Address) ([]domain.DerivativeToken, error)
	// GetDerivative returns the combined ledger and provenance view of a
	// minted derivative. Fails with domain.ErrTokenNotFound for unminted ids.
	GetDerivative(ctx context.Context, tokenID uint64) (*domain.DerivativeToken, error)
	// TokenURI returns the metadata URI stored at mint time, verbatim.
	// Fails with domain.ErrTokenNotFound for unminted ids.
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
	// TotalMinted returns the number of successful mints since registry creation
	TotalMinted(ctx context.Context) (uint64, error)
}

type registry struct {
	store         store.Store
	ledger        ledger.Ledger
	baseContracts ethereum.BaseContractClient
	admins        AdminRegistry
	publisher     messaging.Publisher
	clock         adapter.Clock

	// mintMu serializes mints within this process. The store additionally
	// locks the counter row, which serializes mints across processes.
	mintMu sync.Mutex
}

// NewRegistry creates the derivative registry with its injected collaborators
func NewRegistry(
	s store.Store,
	l ledger.Ledger,
	baseContracts ethereum.BaseContractClient,
	admins AdminRegistry,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Registry {
	return &registry{
		store:         s,
		ledger:        l,
		baseContracts: baseContracts,
		admins:        admins,
		publisher:     publisher,
		clock:         clock,
	}
}

// MintDerivative mints a derivative to the caller after verifying base-token ownership
func (r *registry) MintDerivative(ctx context.Context, caller domain.Address, req MintRequest) (*domain.DerivativeToken, error) {
	if err := validateMint(caller, req); err != nil {
		return nil, err
	}
	req = req.canonicalized()

	owner, err := r.baseContracts.OwnerOf(ctx, string(req.BaseContract), string(req.BaseTokenNumber))
	if err != nil {
		// domain.ErrBaseTokenNotFound propagates verbatim
		return nil, err
	}
	if !caller.Equal(domain.Address(owner)) {
		return nil, domain.ErrCallerNotBaseOwner
	}

	return r.mint(ctx, caller, req)
}

// AdminMintDerivative mints a derivative to an arbitrary recipient without an ownership check
func (r *registry) AdminMintDerivative(ctx context.Context, caller, to domain.Address, req MintRequest) (*domain.DerivativeToken, error) {
	if !r.admins.IsAdmin(caller) {
		return nil, domain.ErrNotAdministrator
	}
	if err := validateMint(to, req); err != nil {
		return nil, err
	}

	return r.mint(ctx, to, req.canonicalized())
}

// mint is the shared tail of both entry points: allocate the id, persist
// everything atomically, then publish the two events in order
func (r *registry) mint(ctx context.Context, to domain.Address, req MintRequest) (*domain.DerivativeToken, error) {
	r.mintMu.Lock()
	defer r.mintMu.Unlock()

	now := r.clock.Now().UTC()

	tokenID, err := r.store.CreateDerivativeMint(ctx, store.CreateDerivativeMintInput{
		Owner:           string(to.Normalized()),
		TokenURI:        req.TokenURI,
		BaseContract:    string(req.BaseContract.Normalized()),
		BaseTokenNumber: string(req.BaseTokenNumber),
		VialType:        req.VialType,
		Timestamp:       now,
	})
	if err != nil {
		return nil, err
	}

	token := &domain.DerivativeToken{
		TokenID:  tokenID,
		Owner:    to.Normalized(),
		TokenURI: req.TokenURI,
		Provenance: domain.Provenance{
			BaseContract:    req.BaseContract.Normalized(),
			BaseTokenNumber: req.BaseTokenNumber,
			VialType:        req.VialType,
			CreatedAt:       now,
		},
	}

	// Events are best-effort after commit. A publish failure must not undo a
	// committed mint; consumers reconcile from the store.
	if err := r.publisher.PublishMinted(ctx, &domain.VialsNFTMintedEvent{
		To:              token.Owner,
		TokenID:         tokenID,
		BaseContract:    token.Provenance.BaseContract,
		BaseTokenNumber: req.BaseTokenNumber,
		VialType:        req.VialType,
		TokenURI:        req.TokenURI,
		Timestamp:       now,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish minted event",
			zap.Uint64("tokenID", tokenID), zap.Error(err))
	}

	if err := r.publisher.PublishDerivativeCreated(ctx, &domain.DerivativeCreatedEvent{
		BaseContract:      token.Provenance.BaseContract,
		BaseTokenNumber:   req.BaseTokenNumber,
		DerivativeTokenID: tokenID,
		VialType:          req.VialType,
		Timestamp:         now,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish derivative created event",
			zap.Uint64("tokenID", tokenID), zap.Error(err))
	}

	return token, nil
}

// validateMint rejects malformed recipients and base token references before
// any external call. Failures carry the validation error shape so direct
// callers map them the same way the DTO layer does.
func validateMint(to domain.Address, req MintRequest) error {
	var details []string
	if !to.Valid() {
		details = append(details, fmt.Sprintf("invalid recipient address: %s", to))
	}
	if !req.BaseContract.Valid() {
		details = append(details, fmt.Sprintf("invalid base contract address: %s", req.BaseContract))
	}
	if !req.BaseTokenNumber.Valid() {
		details = append(details, fmt.Sprintf("invalid base token number: %s", req.BaseTokenNumber))
	}
	if len(details) > 0 {
		return apierrors.NewValidationError(details...)
	}
	return nil
}

// GetProvenance returns the provenance record for a minted derivative
func (r *registry) GetProvenance(ctx context.Context, tokenID uint64) (*domain.Provenance, error) {
	exists, err := r.ledger.Exists(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTokenNotFound
	}

	record, err := r.store.GetProvenanceByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrTokenNotFound
	}

	return &domain.Provenance{
		BaseContract:    domain.Address(record.BaseContract),
		BaseTokenNumber: domain.TokenNumber(record.BaseTokenNumber),
		VialType:        record.VialType,
		CreatedAt:       record.CreatedAt,
	}, nil
}

// HasDerivative reports whether a base token pair has been claimed
func (r *registry) HasDerivative(ctx context.Context, base domain.BaseTokenRef) (bool, error) {
	claim, err := r.store.GetBaseClaim(ctx, string(base.Contract.Normalized()), string(base.TokenNumber.Normalized()))
	if err != nil {
		return false, err
	}
	return claim != nil, nil
}

// GetDerivativeTokenID returns the derivative token id that claimed a base token pair
func (r *registry) GetDerivativeTokenID(ctx context.Context, base domain.BaseTokenRef) (uint64, bool, error) {
	claim, err := r.store.GetBaseClaim(ctx, string(base.Contract.Normalized()), string(base.TokenNumber.Normalized()))
	if err != nil {
		return 0, false, err
	}
	if claim == nil {
		return 0, false, nil
	}
	return claim.DerivativeTokenID, true, nil
}

// GetOwnedDerivatives returns the derivatives currently held by an owner
func (r *registry) GetOwnedDerivatives(ctx context.Context, owner domain.Address) ([]domain.DerivativeToken, error) {
	rows, err := r.store.GetDerivativesByOwner(ctx, string(owner.Normalized()))
	if err != nil {
		return nil, err
	}

	tokens := make([]domain.DerivativeToken, 0, len(rows))
	for _, row := range rows {
		token := domain.DerivativeToken{
			TokenID:  row.TokenID,
			Owner:    domain.Address(row.Owner),
			TokenURI: row.TokenURI,
		}
		if row.Provenance != nil {
			token.Provenance = domain.Provenance{
				BaseContract:    domain.Address(row.Provenance.BaseContract),
				BaseTokenNumber: domain.TokenNumber(row.Provenance.BaseTokenNumber),
				VialType:        row.Provenance.VialType,
				CreatedAt:       row.Provenance.CreatedAt,
			}
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// GetDerivative returns the combined ledger and provenance view of a minted derivative
func (r *registry) GetDerivative(ctx context.Context, tokenID uint64) (*domain.DerivativeToken, error) {
	row, err := r.store.GetDerivativeByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrTokenNotFound
	}

	token := &domain.DerivativeToken{
		TokenID:  row.TokenID,
		Owner:    domain.Address(row.Owner),
		TokenURI: row.TokenURI,
	}
	if row.Provenance != nil {
		token.Provenance = domain.Provenance{
			BaseContract:    domain.Address(row.Provenance.BaseContract),
			BaseTokenNumber: domain.TokenNumber(row.Provenance.BaseTokenNumber),
			VialType:        row.Provenance.VialType,
			CreatedAt:       row.Provenance.CreatedAt,
		}
	}

	return token, nil
}

// TokenURI returns the metadata URI stored at mint time
func (r *registry) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	return r.ledger.TokenURI(ctx, tokenID)
}

// TotalMinted returns the number of successful mints since registry creation
func (r *registry) TotalMinted(ctx context.Context) (uint64, error) {
	return r.ledger.TotalMinted(ctx)
}
