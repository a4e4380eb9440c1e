package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/delivery"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/listing"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, listing listing.UseCase) {
	h := &handler{
		listing,
	}

	g := e.Group("listings")

	g.POST("", h.Submit)
}

func (h *handler) Submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := listing.Form{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrValidation)
	}

	receipt, err := h.listing.Submit(ctx, &p)
	if err != nil {
		return delivery.MakeJsonResp(c, submitErrStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

// submitErrStatus keeps caller mistakes distinguishable from chain or
// storage failures.
func submitErrStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrPrecision):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUpload),
		errors.Is(err, domain.ErrSubmit),
		errors.Is(err, domain.ErrChainReverted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
