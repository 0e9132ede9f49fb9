package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Address represents an Ethereum account or contract address in hex format
type Address string

// Valid checks if the address is a well-formed hex address
func (a Address) Valid() bool {
	return common.IsHexAddress(string(a))
}

// Normalized returns the address in EIP-55 checksum form so that addresses
// supplied with different casing compare equal
func (a Address) Normalized() Address {
	return Address(common.HexToAddress(string(a)).Hex())
}

// Equal compares two addresses ignoring hex casing
func (a Address) Equal(other Address) bool {
	return a.Normalized() == other.Normalized()
}

// TokenNumber represents a token id on an external contract as a decimal
// string, so uint256 values round-trip without loss
type TokenNumber string

// Valid checks if the token number parses as a non-negative integer that fits
// in a uint256, the width of ERC-721 token ids
func (n TokenNumber) Valid() bool {
	v, ok := new(big.Int).SetString(string(n), 10)
	return ok && v.Sign() >= 0 && v.BitLen() <= 256
}

// Normalized returns the canonical decimal form so that spellings like a
// leading zero or an explicit plus sign compare equal
func (n TokenNumber) Normalized() TokenNumber {
	v, ok := new(big.Int).SetString(string(n), 10)
	if !ok {
		return n
	}
	return TokenNumber(v.String())
}

// BaseTokenRef identifies a base token on an external contract
type BaseTokenRef struct {
	Contract    Address     `json:"contract"`
	TokenNumber TokenNumber `json:"token_number"`
}

// Valid checks both components of the reference
func (r BaseTokenRef) Valid() bool {
	return r.Contract.Valid() && r.TokenNumber.Valid()
}

// Provenance records the origin of a derivative token. It is written exactly
// once at mint time and never updated or deleted.
type Provenance struct {
	// BaseContract is the address of the external contract the base token lives on
	BaseContract Address `json:"base_contract"`
	// BaseTokenNumber is the base token id within that contract
	BaseTokenNumber TokenNumber `json:"base_token_number"`
	// VialType is the free-form transformation label, may be empty
	VialType string `json:"vial_type"`
	// CreatedAt is the wall-clock time the derivative was minted
	CreatedAt time.Time `json:"created_at"`
}

// VialsNFTMintedEvent is published on every successful mint, carrying the full
// mint context for external observers
type VialsNFTMintedEvent struct {
	To              Address     `json:"to"`
	TokenID         uint64      `json:"token_id"`
	BaseContract    Address     `json:"base_contract"`
	BaseTokenNumber TokenNumber `json:"base_token_number"`
	VialType        string      `json:"vial_type"`
	TokenURI        string      `json:"token_uri"`
	Timestamp       time.Time   `json:"timestamp"`
}

// DerivativeCreatedEvent is published on every successful mint, after
// VialsNFTMintedEvent, keyed by the claimed base token pair
type DerivativeCreatedEvent struct {
	BaseContract      Address     `json:"base_contract"`
	BaseTokenNumber   TokenNumber `json:"base_token_number"`
	DerivativeTokenID uint64      `json:"derivative_token_id"`
	VialType          string      `json:"vial_type"`
	Timestamp         time.Time   `json:"timestamp"`
}

// DerivativeToken is the combined view of a minted derivative: ledger state
// plus its provenance record
type DerivativeToken struct {
	TokenID    uint64     `json:"token_id"`
	Owner      Address    `json:"owner"`
	TokenURI   string     `json:"token_uri"`
	Provenance Provenance `json:"provenance"`
}
