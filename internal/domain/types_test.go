package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
)

func TestAddress_Valid(t *testing.T) {
	tests := []struct {
		name     string
		address  domain.Address
		expected bool
	}{
		{
			name:     "valid checksummed address",
			address:  "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
			expected: true,
		},
		{
			name:     "valid lowercase address",
			address:  "0x742d35cc6634c0532925a3b844bc9e7595f0beb0",
			expected: true,
		},
		{
			name:     "missing 0x prefix",
			address:  "742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
			expected: true, // go-ethereum accepts addresses without the prefix
		},
		{
			name:     "too short",
			address:  "0x742d35",
			expected: false,
		},
		{
			name:     "empty",
			address:  "",
			expected: false,
		},
		{
			name:     "non-hex characters",
			address:  "0xZZZd35Cc6634C0532925a3b844Bc9e7595f0bEb0",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.address.Valid())
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	a := domain.Address("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0")
	b := domain.Address("0x742d35cc6634c0532925a3b844bc9e7595f0beb0")
	c := domain.Address("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
}

func TestTokenNumber_Valid(t *testing.T) {
	tests := []struct {
		name     string
		number   domain.TokenNumber
		expected bool
	}{
		{name: "zero", number: "0", expected: true},
		{name: "small", number: "42", expected: true},
		{
			name:     "uint256 max",
			number:   "115792089237316195423570985008687907853269984665640564039457584007913129639935",
			expected: true,
		},
		{
			name:     "wider than uint256",
			number:   "115792089237316195423570985008687907853269984665640564039457584007913129639936",
			expected: false,
		},
		{name: "leading zero", number: "042", expected: true},
		{name: "explicit plus sign", number: "+42", expected: true},
		{name: "negative", number: "-1", expected: false},
		{name: "empty", number: "", expected: false},
		{name: "hex", number: "0x2a", expected: false},
		{name: "not a number", number: "forty-two", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.number.Valid())
		})
	}
}

func TestTokenNumber_Normalized(t *testing.T) {
	tests := []struct {
		name     string
		number   domain.TokenNumber
		expected domain.TokenNumber
	}{
		{name: "canonical form is unchanged", number: "42", expected: "42"},
		{name: "leading zero collapses", number: "042", expected: "42"},
		{name: "explicit plus sign collapses", number: "+42", expected: "42"},
		{name: "zero spellings collapse", number: "000", expected: "0"},
		{
			name:     "uint256 max is unchanged",
			number:   "115792089237316195423570985008687907853269984665640564039457584007913129639935",
			expected: "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		},
		{name: "unparseable input is returned as is", number: "forty-two", expected: "forty-two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.number.Normalized())
		})
	}
}

func TestBaseTokenRef_Valid(t *testing.T) {
	valid := domain.BaseTokenRef{
		Contract:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
		TokenNumber: "42",
	}
	assert.True(t, valid.Valid())

	assert.False(t, domain.BaseTokenRef{Contract: "0x123", TokenNumber: "42"}.Valid())
	assert.False(t, domain.BaseTokenRef{Contract: valid.Contract, TokenNumber: "abc"}.Valid())
}
