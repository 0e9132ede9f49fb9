package messaging

import (
	"context"

	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
)

// Publisher defines the interface for publishing mint events to the message broker.
// A successful mint emits PublishMinted first, then PublishDerivativeCreated.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishMinted publishes the token creation event for a mint
	PublishMinted(ctx context.Context, event *domain.VialsNFTMintedEvent) error
	// PublishDerivativeCreated publishes the provenance event for a mint
	PublishDerivativeCreated(ctx context.Context, event *domain.DerivativeCreatedEvent) error
	// Close closes the connection
	Close()
}
