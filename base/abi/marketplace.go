package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"event","anonymous":false,"name":"TokenListedSuccess","inputs":[{"type":"uint256","name":"tokenId","indexed":true},{"type":"address","name":"owner"},{"type":"address","name":"seller"},{"type":"uint256","name":"price"},{"type":"bool","name":"currentlyListed"}]},{"type":"function","name":"getListPrice","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"getAllNFTs","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"tuple[]","components":[{"type":"uint256","name":"tokenId"},{"type":"address","name":"owner"},{"type":"address","name":"seller"},{"type":"uint256","name":"price"},{"type":"bool","name":"currentlyListed"}]}]},{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},{"type":"function","name":"createToken","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"string","name":"tokenURI"},{"type":"uint256","name":"price"}],"outputs":[{"type":"uint256"}]}]`

// TransferEventTopic is keccak256("Transfer(address,address,uint256)")
var TransferEventTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// ListedToken is one element of getAllNFTs' return tuple
type ListedToken struct {
	TokenId         *big.Int       `abi:"tokenId"`
	Owner           common.Address `abi:"owner"`
	Seller          common.Address `abi:"seller"`
	Price           *big.Int       `abi:"price"`
	CurrentlyListed bool           `abi:"currentlyListed"`
}

type TransferLog struct {
	From    common.Address // indexed
	To      common.Address // indexed
	TokenId *big.Int       // indexed
}

func ToTransferLog(log *types.Log) (*TransferLog, error) {
	if len(log.Topics) != 4 || log.Topics[0] != TransferEventTopic {
		return nil, xerrors.Errorf("not a transfer log")
	}
	return &TransferLog{
		From:    common.BytesToAddress(log.Topics[1].Bytes()),
		To:      common.BytesToAddress(log.Topics[2].Bytes()),
		TokenId: new(big.Int).SetBytes(log.Topics[3].Bytes()),
	}, nil
}
