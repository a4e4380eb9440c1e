package usecase

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/nftmart/goclient/base/abi"
	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/log"
	"github.com/nftmart/goclient/base/unit"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/file"
	"github.com/nftmart/goclient/domain/listing"
	"github.com/nftmart/goclient/domain/metadata"
	"github.com/nftmart/goclient/service/chain/contract"
	"github.com/nftmart/goclient/service/pinata"
	"github.com/nftmart/goclient/service/wallet"
)

type ListingUseCaseCfg struct {
	File        file.Usecase
	Metadata    metadata.UseCase
	Marketplace contract.Marketplace
	Session     wallet.Session
	Converter   *unit.Converter
}

type listingUseCase struct {
	file        file.Usecase
	metadata    metadata.UseCase
	marketplace contract.Marketplace
	session     wallet.Session
	converter   *unit.Converter
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.UseCase {
	return &listingUseCase{
		file:        cfg.File,
		metadata:    cfg.Metadata,
		marketplace: cfg.Marketplace,
		session:     cfg.Session,
		converter:   cfg.Converter,
	}
}

// Submit runs validate, pin media, pin metadata, read fee, normalize price,
// send createToken, wait mined. Steps run strictly in that order and the
// first failure aborts the workflow; nothing is retried and nothing already
// pinned is unpinned.
func (u *listingUseCase) Submit(c bCtx.Ctx, form *listing.Form, opts ...listing.SubmitOption) (*listing.Receipt, error) {
	o := listing.GetSubmitOptions(opts...)

	if err := form.Validate(); err != nil {
		c.WithField("err", err).Warn("form.Validate failed")
		return nil, err
	}

	priceWei, err := u.converter.ToBaseUnits(form.Price)
	if err != nil {
		c.WithFields(log.Fields{
			"price": form.Price,
			"err":   err,
		}).Warn("converter.ToBaseUnits failed")
		return nil, err
	}

	o.Notify(listing.PhaseUploadingMedia)
	imageURI, err := u.file.Upload(c, form.Image, pinata.PinOptions{
		Metadata: &pinata.PinataMetadata{Name: form.Name},
	})
	if err != nil {
		c.WithField("err", err).Error("file.Upload failed")
		return nil, err
	}

	doc, err := u.metadata.Build(form.Name, form.Description, form.Price, imageURI)
	if err != nil {
		c.WithField("err", err).Error("metadata.Build failed")
		return nil, err
	}

	o.Notify(listing.PhaseUploadingMetadata)
	metadataURI, err := u.metadata.Upload(c, doc)
	if err != nil {
		c.WithField("err", err).Error("metadata.Upload failed")
		return nil, err
	}

	fee, err := u.marketplace.GetListPrice(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetListPrice failed")
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrSubmit)
	}

	o.Notify(listing.PhaseSubmitting)
	tx, err := u.marketplace.CreateToken(c, u.session, metadataURI, priceWei, fee)
	if err != nil {
		c.WithField("err", err).Error("marketplace.CreateToken failed")
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrSubmit)
	}

	o.Notify(listing.PhasePending)
	receipt, err := u.marketplace.WaitMined(c, tx)
	if err != nil {
		c.WithFields(log.Fields{
			"txHash": tx.Hash().Hex(),
			"err":    err,
		}).Error("marketplace.WaitMined failed")
		o.Notify(listing.PhaseRejected)
		return nil, err
	}
	o.Notify(listing.PhaseConfirmed)

	res := &listing.Receipt{
		TxHash:      domain.TxHash(receipt.TxHash.Hex()),
		BlockNumber: domain.BlockNumber(receipt.BlockNumber.Uint64()),
		MetadataURI: metadataURI,
	}
	for _, l := range receipt.Logs {
		// the mint is the transfer out of the zero address
		if transfer, err := baseabi.ToTransferLog(l); err == nil && transfer.From == (common.Address{}) {
			res.TokenId = transfer.TokenId
			break
		}
	}
	return res, nil
}
