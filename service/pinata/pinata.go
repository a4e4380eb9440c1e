package pinata

import (
	"errors"
	"io"

	"github.com/nftmart/goclient/base/ctx"
)

var (
	ErrRequestFailed = errors.New("request failed")
)

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata"`
	Options       *PinataOptions  `json:"pinataOptions"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

// Service pins content to IPFS through pinata. Two pins of byte-identical
// content may or may not return the same hash; callers can only rely on a
// hash always resolving to the same bytes.
type Service interface {
	Pin(c ctx.Ctx, file io.Reader, extension string, opts ...Options) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}
