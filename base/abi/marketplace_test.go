package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func TestToTransferLog(t *testing.T) {
	req := require.New(t)

	to := common.HexToAddress("0xabc")
	l := &types.Log{
		Topics: []common.Hash{
			TransferEventTopic,
			common.Hash{},
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(42)),
		},
	}

	transfer, err := ToTransferLog(l)
	req.NoError(err)
	req.Equal(common.Address{}, transfer.From)
	req.Equal(to, transfer.To)
	req.Equal(int64(42), transfer.TokenId.Int64())
}

func TestToTransferLogWrongEvent(t *testing.T) {
	req := require.New(t)

	_, err := ToTransferLog(&types.Log{
		Topics: []common.Hash{common.HexToHash("0x1"), {}, {}, {}},
	})
	req.Error(err)

	// erc20-style transfer carries only three topics
	_, err = ToTransferLog(&types.Log{
		Topics: []common.Hash{TransferEventTopic, {}, {}},
	})
	req.Error(err)
}

func TestMarketplaceABIMethods(t *testing.T) {
	req := require.New(t)

	for _, method := range []string{"getListPrice", "getAllNFTs", "tokenURI", "createToken"} {
		_, ok := MarketplaceABI.Methods[method]
		req.True(ok, method)
	}
	req.True(MarketplaceABI.Methods["createToken"].IsPayable())
}
