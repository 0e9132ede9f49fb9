package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestMint creates a test mint input for the given base token
func buildTestMint(owner, baseContract, baseTokenNumber string) CreateDerivativeMintInput {
	return CreateDerivativeMintInput{
		Owner:           owner,
		TokenURI:        fmt.Sprintf("ipfs://vials/%s/%s", baseContract, baseTokenNumber),
		BaseContract:    baseContract,
		BaseTokenNumber: baseTokenNumber,
		VialType:        "pixelify",
		Timestamp:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

// =============================================================================
// Test: CreateDerivativeMint
// =============================================================================

func testCreateDerivativeMint(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("successful mint creates derivative, provenance record, and base claim", func(t *testing.T) {
		input := buildTestMint(
			"0x1111111111111111111111111111111111111111",
			"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			"1",
		)

		tokenID, err := store.CreateDerivativeMint(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), tokenID)

		// Verify derivative was created with provenance attached
		token, err := store.GetDerivativeByTokenID(ctx, tokenID)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, input.Owner, token.Owner)
		assert.Equal(t, input.TokenURI, token.TokenURI)
		require.NotNil(t, token.Provenance)
		assert.Equal(t, input.BaseContract, token.Provenance.BaseContract)
		assert.Equal(t, input.BaseTokenNumber, token.Provenance.BaseTokenNumber)
		assert.Equal(t, input.VialType, token.Provenance.VialType)

		// Verify provenance timestamp matches the derivative row
		provenance, err := store.GetProvenanceByTokenID(ctx, tokenID)
		require.NoError(t, err)
		require.NotNil(t, provenance)
		assert.Equal(t, token.CreatedAt, provenance.CreatedAt)

		// Verify base claim points back at the derivative
		claim, err := store.GetBaseClaim(ctx, input.BaseContract, input.BaseTokenNumber)
		require.NoError(t, err)
		require.NotNil(t, claim)
		assert.Equal(t, tokenID, claim.DerivativeTokenID)
	})

	t.Run("token ids are assigned sequentially from zero", func(t *testing.T) {
		owner := "0x2222222222222222222222222222222222222222"
		contract := "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

		next, err := store.GetNextTokenID(ctx)
		require.NoError(t, err)

		for i := uint64(0); i < 3; i++ {
			tokenID, err := store.CreateDerivativeMint(ctx, buildTestMint(owner, contract, fmt.Sprintf("%d", 100+i)))
			require.NoError(t, err)
			assert.Equal(t, next+i, tokenID)
		}

		after, err := store.GetNextTokenID(ctx)
		require.NoError(t, err)
		assert.Equal(t, next+3, after)
	})

	t.Run("duplicate base token is rejected and writes nothing", func(t *testing.T) {
		input := buildTestMint(
			"0x3333333333333333333333333333333333333333",
			"0xcccccccccccccccccccccccccccccccccccccccc",
			"7",
		)

		firstID, err := store.CreateDerivativeMint(ctx, input)
		require.NoError(t, err)

		before, err := store.GetNextTokenID(ctx)
		require.NoError(t, err)

		// Second mint for the same base token fails even for a different owner
		input.Owner = "0x4444444444444444444444444444444444444444"
		_, err = store.CreateDerivativeMint(ctx, input)
		require.ErrorIs(t, err, domain.ErrDuplicateDerivative)

		// Counter did not advance and the claim still points at the first mint
		after, err := store.GetNextTokenID(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		claim, err := store.GetBaseClaim(ctx, input.BaseContract, input.BaseTokenNumber)
		require.NoError(t, err)
		require.NotNil(t, claim)
		assert.Equal(t, firstID, claim.DerivativeTokenID)

		total, err := store.CountDerivatives(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, total)
	})

	t.Run("same contract with different token numbers are independent", func(t *testing.T) {
		owner := "0x5555555555555555555555555555555555555555"
		contract := "0xdddddddddddddddddddddddddddddddddddddddd"

		id1, err := store.CreateDerivativeMint(ctx, buildTestMint(owner, contract, "1"))
		require.NoError(t, err)

		id2, err := store.CreateDerivativeMint(ctx, buildTestMint(owner, contract, "2"))
		require.NoError(t, err)

		assert.NotEqual(t, id1, id2)
	})

	t.Run("different contracts with the same token number are independent", func(t *testing.T) {
		owner := "0x6666666666666666666666666666666666666666"

		_, err := store.CreateDerivativeMint(ctx,
			buildTestMint(owner, "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", "42"))
		require.NoError(t, err)

		_, err = store.CreateDerivativeMint(ctx,
			buildTestMint(owner, "0xffffffffffffffffffffffffffffffffffffffff", "42"))
		require.NoError(t, err)
	})
}

// =============================================================================
// Test: Reads
// =============================================================================

func testReads(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("next token id is zero before any mint", func(t *testing.T) {
		next, err := store.GetNextTokenID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), next)
	})

	t.Run("missing token id returns nil", func(t *testing.T) {
		token, err := store.GetDerivativeByTokenID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, token)

		provenance, err := store.GetProvenanceByTokenID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, provenance)
	})

	t.Run("unclaimed base token returns nil claim", func(t *testing.T) {
		claim, err := store.GetBaseClaim(ctx, "0x9999999999999999999999999999999999999999", "1")
		require.NoError(t, err)
		assert.Nil(t, claim)
	})

	t.Run("derivatives by owner are returned ascending by token id", func(t *testing.T) {
		owner := "0x7777777777777777777777777777777777777777"
		contract := "0x8888888888888888888888888888888888888888"

		var minted []uint64
		for i := 0; i < 3; i++ {
			tokenID, err := store.CreateDerivativeMint(ctx, buildTestMint(owner, contract, fmt.Sprintf("%d", i)))
			require.NoError(t, err)
			minted = append(minted, tokenID)
		}

		tokens, err := store.GetDerivativesByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		for i, token := range tokens {
			assert.Equal(t, minted[i], token.TokenID)
			assert.Equal(t, owner, token.Owner)
			require.NotNil(t, token.Provenance)
		}

		count, err := store.CountDerivativesByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
	})

	t.Run("owner with no derivatives returns empty result", func(t *testing.T) {
		tokens, err := store.GetDerivativesByOwner(ctx, "0x0000000000000000000000000000000000000001")
		require.NoError(t, err)
		assert.Empty(t, tokens)

		count, err := store.CountDerivativesByOwner(ctx, "0x0000000000000000000000000000000000000001")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), count)
	})
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("CreateDerivativeMint", func(t *testing.T) {
		testCreateDerivativeMint(t, initDB(t))
	})

	t.Run("Reads", func(t *testing.T) {
		testReads(t, initDB(t))
	})
}
