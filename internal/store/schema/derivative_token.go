package schema

import (
	"time"
)

// DerivativeToken represents the derivative_tokens table - one row per minted
// derivative. TokenID is assigned from the registry counter, not by the
// database, so the column is a plain primary key without auto-increment.
type DerivativeToken struct {
	// TokenID is the registry-assigned token identifier, starting at 0
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// Owner is the normalized address the derivative was minted to
	Owner string `gorm:"column:owner;not null;type:text;index:idx_derivative_tokens_owner"`
	// TokenURI is the metadata URI recorded at mint time
	TokenURI string `gorm:"column:token_uri;not null;type:text"`
	// CreatedAt is the mint timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Provenance *ProvenanceRecord `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the DerivativeToken model
func (DerivativeToken) TableName() string {
	return "derivative_tokens"
}
