package registry

import (
	"fmt"
	"strings"

	"github.com/SiddharthManjul/vailes-NFT/internal/adapter"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
)

// AdminRegistry defines the interface for the administrator capability check
//
//go:generate mockgen -source=admins.go -destination=../mocks/admin_registry.go -package=mocks -mock_names=AdminRegistry=MockAdminRegistry
type AdminRegistry interface {
	// IsAdmin checks if an address holds the registry's administrative capability
	IsAdmin(address domain.Address) bool
}

// AdminsData represents the structure of the admins.json file
type AdminsData struct {
	Admins []string `json:"admins"`
}

// adminRegistry is the internal implementation of AdminRegistry
type adminRegistry struct {
	// Fast lookup map: lowercased address -> true
	admins map[string]bool
}

// NoAdmins returns an allowlist that grants the administrative capability to
// no one. Used when no admins file is configured.
func NoAdmins() AdminRegistry {
	return &adminRegistry{admins: make(map[string]bool)}
}

// LoadAdmins loads the administrator allowlist from a JSON file
func LoadAdmins(filePath string, fs adapter.FileSystem, jsonAdapter adapter.JSON) (AdminRegistry, error) {
	data, err := fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read admins file: %w", err)
	}

	var adminsData AdminsData
	if err := jsonAdapter.Unmarshal(data, &adminsData); err != nil {
		return nil, fmt.Errorf("failed to parse admins JSON: %w", err)
	}

	ar := &adminRegistry{
		admins: make(map[string]bool),
	}
	for _, addr := range adminsData.Admins {
		if !domain.Address(addr).Valid() {
			return nil, fmt.Errorf("invalid administrator address: %s", addr)
		}
		ar.admins[strings.ToLower(addr)] = true
	}

	return ar, nil
}

// IsAdmin checks if an address holds the registry's administrative capability
func (a *adminRegistry) IsAdmin(address domain.Address) bool {
	if a == nil {
		return false
	}
	return a.admins[strings.ToLower(string(address))]
}
