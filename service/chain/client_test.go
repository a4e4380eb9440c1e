package chain

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	baseabi "github.com/nftmart/goclient/base/abi"
	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/service/chain/mocks"
	walletMocks "github.com/nftmart/goclient/service/wallet/mocks"
)

const testChainId = domain.ChainId(31337)

func newTestClient(eth EthClient) *clientImpl {
	return &clientImpl{
		clients:      map[domain.ChainId]EthClient{testChainId: eth},
		pollInterval: time.Millisecond,
	}
}

func TestCall(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	fee := big.NewInt(100)
	packed, err := baseabi.MarketplaceABI.Methods["getListPrice"].Outputs.Pack(fee)
	req.NoError(err)

	eth := &mocks.EthClient{}
	eth.On("CallContract", mock.Anything, mock.Anything, (*big.Int)(nil)).Return(packed, nil).Once()

	addr := common.HexToAddress("0x1")
	unpacked, err := newTestClient(eth).Call(c, testChainId, addr, nil, baseabi.MarketplaceABI, "getListPrice")
	req.NoError(err)
	req.Equal(fee, unpacked[0].(*big.Int))
	eth.AssertExpectations(t)
}

func TestCallUnsupportedChain(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	eth := &mocks.EthClient{}
	_, err := newTestClient(eth).Call(c, domain.ChainId(1), common.Address{}, nil, baseabi.MarketplaceABI, "getListPrice")
	req.ErrorIs(err, ErrUnsupportedChain)
}

func TestTransact(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	from := common.HexToAddress("0xabc")
	to := common.HexToAddress("0xdef")
	value := big.NewInt(100)

	session := &walletMocks.Session{}
	session.On("ActiveAccount").Return(from, nil).Once()
	session.On("SignTx", mock.Anything, big.NewInt(int64(testChainId))).
		Return(func(tx *types.Transaction, _ *big.Int) *types.Transaction { return tx }, nil).Once()

	eth := &mocks.EthClient{}
	eth.On("PendingNonceAt", mock.Anything, from).Return(uint64(7), nil).Once()
	eth.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(2), nil).Once()
	eth.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(21000), nil).Once()
	eth.On("SendTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	tx, err := newTestClient(eth).Transact(c, testChainId, session, to, value, baseabi.MarketplaceABI, "createToken", "ipfs://QmMeta", big.NewInt(1))
	req.NoError(err)
	req.Equal(uint64(7), tx.Nonce())
	req.Equal(value, tx.Value())
	req.Equal(&to, tx.To())
	eth.AssertExpectations(t)
	session.AssertExpectations(t)
}

func TestTransactSendFailure(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	session := &walletMocks.Session{}
	session.On("ActiveAccount").Return(common.HexToAddress("0xabc"), nil).Once()
	session.On("SignTx", mock.Anything, mock.Anything).
		Return(func(tx *types.Transaction, _ *big.Int) *types.Transaction { return tx }, nil).Once()

	eth := &mocks.EthClient{}
	eth.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil).Once()
	eth.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil).Once()
	eth.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(21000), nil).Once()
	eth.On("SendTransaction", mock.Anything, mock.Anything).Return(errors.New("nonce too low")).Once()

	_, err := newTestClient(eth).Transact(c, testChainId, session, common.Address{}, nil, baseabi.MarketplaceABI, "getListPrice")
	req.Error(err)
}

func TestWaitMined(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
	receipt := &types.Receipt{
		TxHash:      tx.Hash(),
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
	}

	eth := &mocks.EthClient{}
	// not mined yet on the first poll
	eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(nil, ethereum.NotFound).Once()
	eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(receipt, nil).Once()

	got, err := newTestClient(eth).WaitMined(c, testChainId, tx)
	req.NoError(err)
	req.Equal(receipt, got)
	eth.AssertExpectations(t)
}

func TestWaitMinedReverted(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
	receipt := &types.Receipt{
		TxHash:      tx.Hash(),
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(10),
	}

	eth := &mocks.EthClient{}
	eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(receipt, nil).Once()

	got, err := newTestClient(eth).WaitMined(c, testChainId, tx)
	req.ErrorIs(err, domain.ErrChainReverted)
	req.Equal(receipt, got)
}

func TestWaitMinedCancelled(t *testing.T) {
	req := require.New(t)

	c, cancel := bCtx.WithCancel(bCtx.Background())
	cancel()

	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)

	eth := &mocks.EthClient{}
	eth.On("TransactionReceipt", mock.Anything, tx.Hash()).Return(nil, ethereum.NotFound)

	_, err := newTestClient(eth).WaitMined(c, testChainId, tx)
	req.Error(err)
}
