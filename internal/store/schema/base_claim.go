package schema

import (
	"time"
)

// BaseClaim represents the base_claims table - the uniqueness claim that
// enforces at most one derivative per (base_contract, base_token_number)
// pair via a composite unique index.
type BaseClaim struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BaseContract is the normalized address of the external base contract
	BaseContract string `gorm:"column:base_contract;not null;type:text;uniqueIndex:idx_base_claims_contract_number,priority:1"`
	// BaseTokenNumber is the base token ID within the contract
	BaseTokenNumber string `gorm:"column:base_token_number;not null;type:text;uniqueIndex:idx_base_claims_contract_number,priority:2"`
	// DerivativeTokenID is the derivative minted against this base token
	DerivativeTokenID uint64 `gorm:"column:derivative_token_id;not null;uniqueIndex"`
	// CreatedAt is the timestamp the claim was taken
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the BaseClaim model
func (BaseClaim) TableName() string {
	return "base_claims"
}
