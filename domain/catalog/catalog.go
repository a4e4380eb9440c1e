package catalog

import (
	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/domain"
)

// RecordState marks whether a record's off-chain half resolved. Records
// whose metadata could not be fetched stay in the sequence with an explicit
// marker instead of being dropped.
type RecordState string

const (
	RecordStateResolved   RecordState = "resolved"
	RecordStateUnresolved RecordState = "unresolved"
)

// Record merges one on-chain listing with its resolved metadata document.
// Recomputed on every fetch, never persisted. TokenId, Owner, Seller and
// Price always equal the chain state at fetch time.
type Record struct {
	TokenId         domain.TokenId `json:"tokenId"`
	Owner           domain.Address `json:"owner"`
	Seller          domain.Address `json:"seller"`
	Price           string         `json:"price"`
	CurrentlyListed bool           `json:"currentlyListed"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`

	State        RecordState `json:"state"`
	ResolveError string      `json:"resolveError,omitempty"`
}

type UseCase interface {
	// FetchAll reads every listing from the contract and resolves each
	// one's metadata concurrently, preserving the contract's order. A
	// single unreachable document marks its record unresolved; only the
	// initial contract read can fail the whole fetch.
	FetchAll(c ctx.Ctx) ([]*Record, error)
	// FetchOwned narrows FetchAll to records the address owns or sells
	FetchOwned(c ctx.Ctx, owner domain.Address) ([]*Record, error)
}
