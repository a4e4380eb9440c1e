package metadata

import (
	"github.com/nftmart/goclient/base/ctx"
)

// Document is the off-chain metadata pinned for a listing. Once pinned it is
// immutable: content addressing makes any change a new locator.
type Document struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price is a display-time copy of the listing price in decimal form
	Price string `json:"price"`
	Image string `json:"image"`
}

type UseCase interface {
	// Build assembles a document from form fields. Pure construction, no
	// I/O. Media must already be uploaded: an empty image locator is a
	// validation error, as is any empty text field.
	Build(name, description, price, imageURI string) (*Document, error)
	// Upload pins the document and returns its locator
	Upload(c ctx.Ctx, doc *Document) (string, error)
	// GetFromURI resolves a metadata locator back to its document
	GetFromURI(c ctx.Ctx, uri string) (*Document, error)
}
