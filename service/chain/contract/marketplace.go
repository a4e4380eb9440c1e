package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/nftmart/goclient/base/abi"
	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/listing"
	"github.com/nftmart/goclient/service/chain"
	"github.com/nftmart/goclient/service/wallet"
)

// Marketplace wraps the deployed marketplace contract. Reads are
// side-effect free; CreateToken mutates global listing state and charges the
// caller the listing fee plus gas.
type Marketplace interface {
	GetListPrice(ctx bCtx.Ctx) (*big.Int, error)
	GetAllListings(ctx bCtx.Ctx) ([]*listing.ChainListing, error)
	TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error)
	CreateToken(ctx bCtx.Ctx, session wallet.Session, metadataURI string, price *big.Int, fee *big.Int) (*types.Transaction, error)
	WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error)
}

type marketplaceImpl struct {
	chainService chain.Client
	chainId      domain.ChainId
	address      common.Address
	abi          ethabi.ABI
}

// NewMarketplace binds the wrapper to the address and ABI of the deploy
// artifact.
func NewMarketplace(chainService chain.Client, chainId domain.ChainId, binding *domain.ContractBinding) Marketplace {
	return &marketplaceImpl{
		chainService: chainService,
		chainId:      chainId,
		address:      common.HexToAddress(string(binding.Address)),
		abi:          binding.Abi,
	}
}

func (m *marketplaceImpl) GetListPrice(ctx bCtx.Ctx) (*big.Int, error) {
	method := "getListPrice"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, method)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (m *marketplaceImpl) GetAllListings(ctx bCtx.Ctx) ([]*listing.ChainListing, error) {
	method := "getAllNFTs"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, method)
	if err != nil {
		return nil, err
	}
	tokens := *ethabi.ConvertType(unpacked[0], new([]baseabi.ListedToken)).(*[]baseabi.ListedToken)
	listings := make([]*listing.ChainListing, len(tokens))
	for i, t := range tokens {
		listings[i] = &listing.ChainListing{
			TokenId:         t.TokenId,
			Owner:           domain.Address(t.Owner.Hex()).ToLower(),
			Seller:          domain.Address(t.Seller.Hex()).ToLower(),
			Price:           t.Price,
			CurrentlyListed: t.CurrentlyListed,
		}
	}
	return listings, nil
}

func (m *marketplaceImpl) TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error) {
	method := "tokenURI"
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (m *marketplaceImpl) CreateToken(ctx bCtx.Ctx, session wallet.Session, metadataURI string, price *big.Int, fee *big.Int) (*types.Transaction, error) {
	method := "createToken"
	return m.chainService.Transact(ctx, m.chainId, session, m.address, fee, m.abi, method, metadataURI, price)
}

func (m *marketplaceImpl) WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error) {
	return m.chainService.WaitMined(ctx, m.chainId, tx)
}
