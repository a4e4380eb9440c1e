package file

import (
	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/service/pinata"
)

type Usecase interface {
	// Upload pins a data-uri encoded image and returns its ipfs:// locator
	Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (uri string, err error)
	// UploadJson pins an arbitrary document and returns its ipfs:// locator
	UploadJson(c ctx.Ctx, doc interface{}, pinOption pinata.PinOptions) (uri string, err error)
}
