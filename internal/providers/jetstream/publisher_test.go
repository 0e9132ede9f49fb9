package jetstream_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/logger"
	"github.com/SiddharthManjul/vailes-NFT/internal/mocks"
	"github.com/SiddharthManjul/vailes-NFT/internal/providers/jetstream"
)

func TestPublishMintEvents(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	mockNC := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mockNC, mockJS, nil)

	pub, err := jetstream.NewPublisher(jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "VIALS_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "vials-test",
	}, mockNatsJS, mockJSON)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("minted event goes to the minted subject", func(t *testing.T) {
		event := &domain.VialsNFTMintedEvent{
			To:              "0x457ee5f723C7606c12a7264b52e285906F91eEA6",
			TokenID:         0,
			BaseContract:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
			BaseTokenNumber: "42",
			VialType:        "pixelify",
			TokenURI:        "https://x/1",
		}

		payload, err := json.Marshal(event)
		require.NoError(t, err)

		mockJSON.EXPECT().Marshal(event).Return(payload, nil)
		mockJS.EXPECT().
			Publish(ctx, jetstream.SubjectMinted, payload).
			Return(nil, nil)

		assert.NoError(t, pub.PublishMinted(ctx, event))
	})

	t.Run("derivative created event goes to its own subject", func(t *testing.T) {
		event := &domain.DerivativeCreatedEvent{
			BaseContract:      "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
			BaseTokenNumber:   "42",
			DerivativeTokenID: 0,
			VialType:          "pixelify",
		}

		payload, err := json.Marshal(event)
		require.NoError(t, err)

		mockJSON.EXPECT().Marshal(event).Return(payload, nil)
		mockJS.EXPECT().
			Publish(ctx, jetstream.SubjectDerivativeCreated, payload).
			Return(nil, nil)

		assert.NoError(t, pub.PublishDerivativeCreated(ctx, event))
	})

	t.Run("marshal failure surfaces without publishing", func(t *testing.T) {
		event := &domain.VialsNFTMintedEvent{TokenID: 1}

		mockJSON.EXPECT().Marshal(event).Return(nil, assert.AnError)

		err := pub.PublishMinted(ctx, event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal event")
	})

	t.Run("publish failure surfaces", func(t *testing.T) {
		event := &domain.DerivativeCreatedEvent{DerivativeTokenID: 1}

		mockJSON.EXPECT().Marshal(event).Return([]byte(`{}`), nil)
		mockJS.EXPECT().
			Publish(ctx, jetstream.SubjectDerivativeCreated, []byte(`{}`)).
			Return(nil, assert.AnError)

		err := pub.PublishDerivativeCreated(ctx, event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish event")
	})

	t.Run("close closes the underlying connection", func(t *testing.T) {
		mockNC.EXPECT().Close()
		pub.Close()
	})
}
