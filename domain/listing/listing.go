package listing

import (
	"math/big"
	"strings"

	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/domain"
)

// ChainListing mirrors one element of the contract's getAllNFTs return
// value. TokenId is assigned by the contract and never reused; Owner and
// Price mutate on transfer or resale.
type ChainListing struct {
	TokenId         *big.Int
	Owner           domain.Address
	Seller          domain.Address
	Price           *big.Int
	CurrentlyListed bool
}

// Form carries the user input of one listing-creation interaction. Image is
// the pending media as a data-uri payload. The form is discarded once the
// submission reaches a terminal state.
type Form struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Image       string `json:"image" validate:"required"`
}

// Validate reports whether the form is complete enough to start a
// submission. It performs no I/O and issues no network calls.
func (f *Form) Validate() error {
	if f == nil {
		return domain.ErrValidation
	}
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Description) == "" ||
		strings.TrimSpace(f.Price) == "" ||
		len(f.Image) == 0 {
		return domain.ErrValidation
	}
	return nil
}

// Phase is the observable progress of a submission between sending it and
// reaching a terminal state.
type Phase string

const (
	PhaseUploadingMedia    Phase = "uploading_media"
	PhaseUploadingMetadata Phase = "uploading_metadata"
	PhaseSubmitting        Phase = "submitting"
	PhasePending           Phase = "pending"
	PhaseConfirmed         Phase = "confirmed"
	PhaseRejected          Phase = "rejected"
)

// Receipt reports a confirmed listing submission.
type Receipt struct {
	TxHash      domain.TxHash      `json:"txHash"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	// TokenId is parsed from the mint event when present in the receipt logs
	TokenId *big.Int `json:"tokenId,omitempty"`
	// MetadataURI is the locator the new listing points at
	MetadataURI string `json:"metadataUri"`
}

type SubmitOptions struct {
	phaseListener func(Phase)
}

type SubmitOption func(*SubmitOptions)

// WithPhaseListener registers a callback observing submission phases, so a
// caller can show progress while the confirmation wait suspends.
func WithPhaseListener(f func(Phase)) SubmitOption {
	return func(o *SubmitOptions) {
		o.phaseListener = f
	}
}

// GetSubmitOptions folds options into a struct; the zero value notifies
// nobody.
func GetSubmitOptions(opts ...SubmitOption) SubmitOptions {
	res := SubmitOptions{}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

// Notify invokes the phase listener when one is registered.
func (o *SubmitOptions) Notify(p Phase) {
	if o.phaseListener != nil {
		o.phaseListener(p)
	}
}

type UseCase interface {
	// Submit runs the full listing workflow: validate, pin media, pin
	// metadata, read the listing fee, normalize the price and send the
	// createToken transaction, then wait for finality. Fail-fast, never
	// retries internally.
	Submit(c ctx.Ctx, form *Form, opts ...SubmitOption) (*Receipt, error)
}
