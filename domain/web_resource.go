package domain

import (
	"github.com/nftmart/goclient/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}
