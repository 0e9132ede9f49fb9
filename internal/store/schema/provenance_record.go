package schema

import (
	"time"
)

// ProvenanceRecord represents the provenance_records table - the immutable
// lineage record written once at mint time and never updated afterwards.
type ProvenanceRecord struct {
	// TokenID is the derivative token this record belongs to
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// BaseContract is the normalized address of the external base contract
	BaseContract string `gorm:"column:base_contract;not null;type:text"`
	// BaseTokenNumber is the base token ID within the contract (string to support very large numbers)
	BaseTokenNumber string `gorm:"column:base_token_number;not null;type:text"`
	// VialType is the caller-supplied derivative category label
	VialType string `gorm:"column:vial_type;not null;type:text"`
	// CreatedAt is the mint timestamp, identical to the derivative row's
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the ProvenanceRecord model
func (ProvenanceRecord) TableName() string {
	return "provenance_records"
}
