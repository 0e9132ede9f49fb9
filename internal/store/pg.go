package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/store/schema"
)

// tokenCounterKey is the key_value_store row holding the next token id.
// Mints lock this row FOR UPDATE, which serializes concurrent mints and makes
// the duplicate pre-check inside the transaction race-free.
const tokenCounterKey = "derivative_token_counter"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the registry tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.DerivativeToken{},
		&schema.ProvenanceRecord{},
		&schema.BaseClaim{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateDerivativeMint allocates the next token id and writes the derivative
// token, provenance record, and base claim in a single transaction
func (s *pgStore) CreateDerivativeMint(ctx context.Context, input CreateDerivativeMintInput) (uint64, error) {
	var tokenID uint64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the counter row. This serializes mints, so the duplicate
		// check below cannot race with another mint of the same base token.
		counter, err := lockTokenCounter(tx)
		if err != nil {
			return err
		}

		tokenID, err = strconv.ParseUint(counter.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse token counter: %w", err)
		}

		// 2. Reject if the base token is already claimed
		var existing schema.BaseClaim
		err = tx.Where("base_contract = ? AND base_token_number = ?", input.BaseContract, input.BaseTokenNumber).
			First(&existing).Error
		if err == nil {
			return domain.ErrDuplicateDerivative
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check base claim: %w", err)
		}

		// 3. Create the derivative token
		token := schema.DerivativeToken{
			TokenID:   tokenID,
			Owner:     input.Owner,
			TokenURI:  input.TokenURI,
			CreatedAt: input.Timestamp,
		}
		if err := tx.Create(&token).Error; err != nil {
			return fmt.Errorf("failed to create derivative token: %w", err)
		}

		// 4. Create the provenance record with the same timestamp
		provenance := schema.ProvenanceRecord{
			TokenID:         tokenID,
			BaseContract:    input.BaseContract,
			BaseTokenNumber: input.BaseTokenNumber,
			VialType:        input.VialType,
			CreatedAt:       input.Timestamp,
		}
		if err := tx.Create(&provenance).Error; err != nil {
			return fmt.Errorf("failed to create provenance record: %w", err)
		}

		// 5. Take the base claim. The composite unique index backstops the
		// pre-check above; a conflict here still means a duplicate.
		claim := schema.BaseClaim{
			BaseContract:      input.BaseContract,
			BaseTokenNumber:   input.BaseTokenNumber,
			DerivativeTokenID: tokenID,
			CreatedAt:         input.Timestamp,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "base_contract"}, {Name: "base_token_number"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&claim).Error; err != nil {
			return fmt.Errorf("failed to create base claim: %w", err)
		}
		if claim.ID == 0 {
			return domain.ErrDuplicateDerivative
		}

		// 6. Advance the counter
		counter.Value = strconv.FormatUint(tokenID+1, 10)
		if err := tx.Save(counter).Error; err != nil {
			return fmt.Errorf("failed to advance token counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return tokenID, nil
}

// lockTokenCounter fetches the counter row FOR UPDATE, creating it at "0" on
// first use
func lockTokenCounter(tx *gorm.DB) (*schema.KeyValueStore, error) {
	var counter schema.KeyValueStore
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", tokenCounterKey).
		First(&counter).Error
	if err == nil {
		return &counter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to lock token counter: %w", err)
	}

	// First mint ever: seed the counter, then lock it. ON CONFLICT DO NOTHING
	// covers the case where another transaction seeded it first.
	seed := schema.KeyValueStore{Key: tokenCounterKey, Value: "0"}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return nil, fmt.Errorf("failed to seed token counter: %w", err)
	}

	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", tokenCounterKey).
		First(&counter).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock token counter: %w", err)
	}

	return &counter, nil
}

// GetDerivativeByTokenID retrieves a derivative token with its provenance record
func (s *pgStore) GetDerivativeByTokenID(ctx context.Context, tokenID uint64) (*schema.DerivativeToken, error) {
	var token schema.DerivativeToken
	err := s.db.WithContext(ctx).
		Preload("Provenance").
		Where("token_id = ?", tokenID).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get derivative token: %w", err)
	}
	return &token, nil
}

// GetProvenanceByTokenID retrieves the provenance record for a derivative token
func (s *pgStore) GetProvenanceByTokenID(ctx context.Context, tokenID uint64) (*schema.ProvenanceRecord, error) {
	var record schema.ProvenanceRecord
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get provenance record: %w", err)
	}
	return &record, nil
}

// GetBaseClaim retrieves the uniqueness claim for a base token, if any
func (s *pgStore) GetBaseClaim(ctx context.Context, baseContract, baseTokenNumber string) (*schema.BaseClaim, error) {
	var claim schema.BaseClaim
	err := s.db.WithContext(ctx).
		Where("base_contract = ? AND base_token_number = ?", baseContract, baseTokenNumber).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get base claim: %w", err)
	}
	return &claim, nil
}

// GetDerivativesByOwner retrieves all derivatives held by an owner, ascending by token id
func (s *pgStore) GetDerivativesByOwner(ctx context.Context, owner string) ([]schema.DerivativeToken, error) {
	var tokens []schema.DerivativeToken
	err := s.db.WithContext(ctx).
		Preload("Provenance").
		Where("owner = ?", owner).
		Order("token_id ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get derivatives by owner: %w", err)
	}
	return tokens, nil
}

// CountDerivativesByOwner returns the number of derivatives held by an owner
func (s *pgStore) CountDerivativesByOwner(ctx context.Context, owner string) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.DerivativeToken{}).
		Where("owner = ?", owner).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count derivatives by owner: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

// CountDerivatives returns the total number of minted derivatives
func (s *pgStore) CountDerivatives(ctx context.Context) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.DerivativeToken{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count derivatives: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

// GetNextTokenID returns the token id the next mint will be assigned
func (s *pgStore) GetNextTokenID(ctx context.Context) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", tokenCounterKey).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get token counter: %w", err)
	}

	next, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse token counter: %w", err)
	}

	return next, nil
}
