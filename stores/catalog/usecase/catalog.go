package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/log"
	"github.com/nftmart/goclient/base/unit"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/catalog"
	"github.com/nftmart/goclient/domain/listing"
	"github.com/nftmart/goclient/domain/metadata"
	"github.com/nftmart/goclient/service/chain/contract"
)

const defaultResolveConcurrency = 10

type CatalogUseCaseCfg struct {
	Marketplace contract.Marketplace
	Metadata    metadata.UseCase
	Converter   *unit.Converter
	// ResolveConcurrency bounds parallel metadata resolution. Zero means
	// the default.
	ResolveConcurrency int
}

type catalogUseCase struct {
	marketplace contract.Marketplace
	metadata    metadata.UseCase
	converter   *unit.Converter
	concurrency int
}

func NewCatalogUseCase(cfg *CatalogUseCaseCfg) catalog.UseCase {
	concurrency := cfg.ResolveConcurrency
	if concurrency <= 0 {
		concurrency = defaultResolveConcurrency
	}
	return &catalogUseCase{
		marketplace: cfg.Marketplace,
		metadata:    cfg.Metadata,
		converter:   cfg.Converter,
		concurrency: concurrency,
	}
}

// FetchAll reads the chain state once and resolves each listing's document
// in parallel. Records keep the contract's order; a listing whose document
// cannot be fetched stays in place marked unresolved.
func (u *catalogUseCase) FetchAll(c bCtx.Ctx) ([]*catalog.Record, error) {
	listings, err := u.marketplace.GetAllListings(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetAllListings failed")
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrFetch)
	}
	if len(listings) == 0 {
		return []*catalog.Record{}, nil
	}

	records := make([]*catalog.Record, len(listings))
	b := goroutines.NewBatch(u.concurrency, goroutines.WithBatchSize(len(listings)))
	defer b.Close()
	for i := 0; i < len(listings); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			records[idx] = u.resolve(c, listings[idx])
			return nil, nil
		})
	}
	b.QueueComplete()
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("resolve listing error result")
		}
	}
	return records, nil
}

func (u *catalogUseCase) FetchOwned(c bCtx.Ctx, owner domain.Address) ([]*catalog.Record, error) {
	records, err := u.FetchAll(c)
	if err != nil {
		return nil, err
	}
	owned := []*catalog.Record{}
	for _, rec := range records {
		if rec.Owner.Equals(owner) || rec.Seller.Equals(owner) {
			owned = append(owned, rec)
		}
	}
	return owned, nil
}

func (u *catalogUseCase) resolve(c bCtx.Ctx, l *listing.ChainListing) *catalog.Record {
	rec := &catalog.Record{
		TokenId:         domain.TokenId(l.TokenId.String()),
		Owner:           l.Owner,
		Seller:          l.Seller,
		Price:           u.converter.FromBaseUnits(l.Price),
		CurrentlyListed: l.CurrentlyListed,
		State:           catalog.RecordStateResolved,
	}

	uri, err := u.marketplace.TokenURI(c, l.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": rec.TokenId,
			"err":     err,
		}).Warn("marketplace.TokenURI failed")
		rec.State = catalog.RecordStateUnresolved
		rec.ResolveError = err.Error()
		return rec
	}

	doc, err := u.metadata.GetFromURI(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": rec.TokenId,
			"uri":     uri,
			"err":     err,
		}).Warn("metadata.GetFromURI failed")
		rec.State = catalog.RecordStateUnresolved
		rec.ResolveError = err.Error()
		return rec
	}

	rec.Name = doc.Name
	rec.Description = doc.Description
	rec.Image = doc.Image
	return rec
}
