package chain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/nftmart/goclient/base/backoff"
	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/log"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/service/wallet"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

const defaultReceiptPollInterval = 2 * time.Second

// EthClient is the slice of go-ethereum/ethclient this package consumes,
// split out so tests can stand in for a node.
type EthClient interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// ReceiptPollInterval is how often WaitMined asks for a receipt.
	// Zero means the default.
	ReceiptPollInterval time.Duration
}

type Client interface {
	// Call performs a read-only contract call
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact builds, signs and sends a state-changing transaction.
	// It does not wait for the transaction to be mined.
	Transact(c bCtx.Ctx, chainId domain.ChainId, session wallet.Session, addr common.Address, value *big.Int, abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitMined blocks until the transaction is mined or ctx ends. A
	// reverted transaction returns the receipt together with
	// domain.ErrChainReverted carrying the revert reason when the node
	// exposes one. Once sent a transaction can not be cancelled, only
	// awaited or abandoned.
	WaitMined(c bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error)
}

type clientImpl struct {
	clients      map[domain.ChainId]EthClient
	pollInterval time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[domain.ChainId]EthClient)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the app start
			continue
		}
		clients[chainId] = client
	}
	interval := cfg.ReceiptPollInterval
	if interval == 0 {
		interval = defaultReceiptPollInterval
	}
	return &clientImpl{
		clients:      clients,
		pollInterval: interval,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId domain.ChainId, session wallet.Session, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	from, err := session.ActiveAccount()
	if err != nil {
		ctx.WithField("err", err).Error("session.ActiveAccount failed")
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From:     from,
		To:       &addr,
		Value:    value,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return nil, err
	}

	tx := types.NewTransaction(nonce, addr, value, gas, gasPrice, data)
	signed, err := session.SignTx(tx, big.NewInt(int64(chainId)))
	if err != nil {
		ctx.WithField("err", err).Error("session.SignTx failed")
		return nil, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"txHash": signed.Hash().Hex(),
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, err
	}
	return signed, nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	poll := backoff.NewConstant(c.pollInterval)
	for {
		receipt, err := client.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			if receipt.Status == types.ReceiptStatusFailed {
				reason := c.revertReason(ctx, client, chainId, tx, receipt.BlockNumber)
				if reason == "" {
					return receipt, domain.ErrChainReverted
				}
				return receipt, xerrors.Errorf("%s: %w", reason, domain.ErrChainReverted)
			}
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"txHash": tx.Hash().Hex(),
				"err":    err,
			}).Warn("client.TransactionReceipt failed")
		}
		if err := poll.Backoff(ctx); err != nil {
			return nil, err
		}
	}
}

// revertReason replays the transaction as a call at its mined block and
// decodes the revert payload. Best effort: an empty string means the node
// gave no reason.
func (c *clientImpl) revertReason(ctx bCtx.Ctx, client EthClient, chainId domain.ChainId, tx *types.Transaction, blk *big.Int) string {
	signer := types.LatestSignerForChainID(big.NewInt(int64(chainId)))
	from, err := types.Sender(signer, tx)
	if err != nil {
		return ""
	}
	msg := ethereum.CallMsg{
		From:     from,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		return err.Error()
	}
	reason, err := abi.UnpackRevert(res)
	if err != nil {
		return ""
	}
	return reason
}
