package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	baseabi "github.com/nftmart/goclient/base/abi"
	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/unit"
	"github.com/nftmart/goclient/domain"
	fileMocks "github.com/nftmart/goclient/domain/file/mocks"
	"github.com/nftmart/goclient/domain/listing"
	"github.com/nftmart/goclient/domain/metadata"
	metadataMocks "github.com/nftmart/goclient/domain/metadata/mocks"
	contractMocks "github.com/nftmart/goclient/service/chain/contract/mocks"
	walletMocks "github.com/nftmart/goclient/service/wallet/mocks"
)

func validForm() *listing.Form {
	return &listing.Form{
		Name:        "My NFT",
		Description: "a fine piece",
		Price:       "0.03",
		Image:       "data:image/png;base64,AAAA",
	}
}

func mintReceipt(txHash common.Hash, blk int64, tokenId int64, to common.Address) *types.Receipt {
	return &types.Receipt{
		TxHash:      txHash,
		BlockNumber: big.NewInt(blk),
		Status:      types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{
				Topics: []common.Hash{
					baseabi.TransferEventTopic,
					common.Hash{}, // mint: from the zero address
					common.BytesToHash(to.Bytes()),
					common.BigToHash(big.NewInt(tokenId)),
				},
			},
		},
	}
}

type submitFixture struct {
	file        *fileMocks.Usecase
	metadata    *metadataMocks.UseCase
	marketplace *contractMocks.Marketplace
	session     *walletMocks.Session
	uc          listing.UseCase
}

func newSubmitFixture() *submitFixture {
	f := &submitFixture{
		file:        &fileMocks.Usecase{},
		metadata:    &metadataMocks.UseCase{},
		marketplace: &contractMocks.Marketplace{},
		session:     &walletMocks.Session{},
	}
	f.uc = NewListingUseCase(&ListingUseCaseCfg{
		File:        f.file,
		Metadata:    f.metadata,
		Marketplace: f.marketplace,
		Session:     f.session,
		Converter:   unit.NewConverter(unit.EtherDecimals),
	})
	return f
}

func TestSubmit(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	form := validForm()
	doc := &metadata.Document{Name: form.Name, Description: form.Description, Price: form.Price, Image: "ipfs://QmImage"}
	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
	priceWei, _ := new(big.Int).SetString("30000000000000000", 10)
	fee := big.NewInt(100)

	var order []string
	track := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}

	f.file.On("Upload", mock.Anything, form.Image, mock.Anything).
		Run(track("uploadMedia")).Return("ipfs://QmImage", nil).Once()
	f.metadata.On("Build", form.Name, form.Description, form.Price, "ipfs://QmImage").
		Return(doc, nil).Once()
	f.metadata.On("Upload", mock.Anything, doc).
		Run(track("uploadMetadata")).Return("ipfs://QmMeta", nil).Once()
	f.marketplace.On("GetListPrice", mock.Anything).
		Run(track("getListPrice")).Return(fee, nil).Once()
	f.marketplace.On("CreateToken", mock.Anything, f.session, "ipfs://QmMeta", priceWei, fee).
		Run(track("createToken")).Return(tx, nil).Once()
	f.marketplace.On("WaitMined", mock.Anything, tx).
		Run(track("waitMined")).
		Return(mintReceipt(tx.Hash(), 7, 42, common.HexToAddress("0xabc")), nil).Once()

	var phases []listing.Phase
	receipt, err := f.uc.Submit(c, form, listing.WithPhaseListener(func(p listing.Phase) {
		phases = append(phases, p)
	}))
	req.NoError(err)
	req.Equal(domain.TxHash(tx.Hash().Hex()), receipt.TxHash)
	req.Equal(domain.BlockNumber(7), receipt.BlockNumber)
	req.Equal("ipfs://QmMeta", receipt.MetadataURI)
	req.Equal(int64(42), receipt.TokenId.Int64())

	// media is pinned before metadata, the fee is read before sending, and
	// the send happens before the confirmation wait
	req.Equal([]string{"uploadMedia", "uploadMetadata", "getListPrice", "createToken", "waitMined"}, order)
	req.Equal([]listing.Phase{
		listing.PhaseUploadingMedia,
		listing.PhaseUploadingMetadata,
		listing.PhaseSubmitting,
		listing.PhasePending,
		listing.PhaseConfirmed,
	}, phases)
	f.file.AssertExpectations(t)
	f.metadata.AssertExpectations(t)
	f.marketplace.AssertExpectations(t)
}

func TestSubmitIncompleteForm(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	form := validForm()
	form.Name = ""

	_, err := f.uc.Submit(c, form)
	req.ErrorIs(err, domain.ErrValidation)

	// an incomplete form must not reach storage or the chain
	f.file.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	f.metadata.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	f.marketplace.AssertNotCalled(t, "GetListPrice", mock.Anything)
	f.marketplace.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPriceTooPrecise(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	form := validForm()
	form.Price = "0.0000000000000000001" // 19 fractional digits

	_, err := f.uc.Submit(c, form)
	req.ErrorIs(err, domain.ErrPrecision)
	f.file.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitMalformedPrice(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	form := validForm()
	form.Price = "three ether"

	_, err := f.uc.Submit(c, form)
	req.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func TestSubmitMediaUploadFails(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	f.file.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("", domain.ErrUpload).Once()

	_, err := f.uc.Submit(c, validForm())
	req.ErrorIs(err, domain.ErrUpload)
	f.metadata.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	f.marketplace.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitSendFails(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	form := validForm()
	doc := &metadata.Document{Name: form.Name, Description: form.Description, Price: form.Price, Image: "ipfs://QmImage"}

	f.file.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("ipfs://QmImage", nil).Once()
	f.metadata.On("Build", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(doc, nil).Once()
	f.metadata.On("Upload", mock.Anything, doc).Return("ipfs://QmMeta", nil).Once()
	f.marketplace.On("GetListPrice", mock.Anything).Return(big.NewInt(100), nil).Once()
	f.marketplace.On("CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("insufficient funds")).Once()

	_, err := f.uc.Submit(c, form)
	req.ErrorIs(err, domain.ErrSubmit)
	f.marketplace.AssertNotCalled(t, "WaitMined", mock.Anything, mock.Anything)
}

func TestSubmitReverted(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	f := newSubmitFixture()

	form := validForm()
	doc := &metadata.Document{Name: form.Name, Description: form.Description, Price: form.Price, Image: "ipfs://QmImage"}
	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)

	f.file.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("ipfs://QmImage", nil).Once()
	f.metadata.On("Build", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(doc, nil).Once()
	f.metadata.On("Upload", mock.Anything, doc).Return("ipfs://QmMeta", nil).Once()
	f.marketplace.On("GetListPrice", mock.Anything).Return(big.NewInt(100), nil).Once()
	f.marketplace.On("CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(tx, nil).Once()
	f.marketplace.On("WaitMined", mock.Anything, tx).Return(nil, domain.ErrChainReverted).Once()

	var phases []listing.Phase
	_, err := f.uc.Submit(c, form, listing.WithPhaseListener(func(p listing.Phase) {
		phases = append(phases, p)
	}))
	req.ErrorIs(err, domain.ErrChainReverted)
	req.Equal(listing.PhaseRejected, phases[len(phases)-1])
}
