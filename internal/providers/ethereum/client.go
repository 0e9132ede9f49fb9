package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/SiddharthManjul/vailes-NFT/internal/adapter"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
)

// BaseContractClient reads external ERC-721 contracts that base tokens live on.
// The registry only ever needs ownership lookups, never writes.
type BaseContractClient interface {
	// OwnerOf fetches the current owner of a base token. Returns
	// domain.ErrBaseTokenNotFound if the token does not exist on the contract.
	OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error)

	// Close closes the connection
	Close()
}

type baseContractClient struct {
	client adapter.EthClient
}

func NewClient(client adapter.EthClient) BaseContractClient {
	return &baseContractClient{client: client}
}

// OwnerOf fetches the current owner of a base token
func (c *baseContractClient) OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error) {
	// ERC721 ownerOf function signature: ownerOf(uint256) returns (address)
	ownerOfABI, err := abi.JSON(strings.NewReader(`[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`))
	if err != nil {
		return "", fmt.Errorf("failed to parse ABI: %w", err)
	}

	// Values wider than uint256 would silently wrap in ABI packing
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok || tokenID.Sign() < 0 || tokenID.BitLen() > 256 {
		return "", fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	data, err := ownerOfABI.Pack("ownerOf", tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		// ERC-721 ownerOf reverts for nonexistent tokens
		if isExecutionReverted(err) {
			return "", domain.ErrBaseTokenNotFound
		}
		return "", fmt.Errorf("failed to call contract: %w", err)
	}

	var owner common.Address
	if err := ownerOfABI.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	// Some contracts return the zero address instead of reverting
	if owner == (common.Address{}) {
		return "", domain.ErrBaseTokenNotFound
	}

	return owner.Hex(), nil
}

// isExecutionReverted checks if the error is a contract revert
func isExecutionReverted(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "execution reverted") ||
		strings.Contains(errStr, "revert") ||
		strings.Contains(errStr, "invalid opcode")
}

// Close closes the connection
func (c *baseContractClient) Close() {
	c.client.Close()
}
