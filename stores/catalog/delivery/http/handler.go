package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftmart/goclient/base/ctx"
	"github.com/nftmart/goclient/base/delivery"
	"github.com/nftmart/goclient/domain"
	"github.com/nftmart/goclient/domain/catalog"
	"github.com/nftmart/goclient/middleware"
)

type handler struct {
	catalog catalog.UseCase
}

func New(e *echo.Echo, catalog catalog.UseCase) {
	h := &handler{
		catalog,
	}

	g := e.Group("catalog")

	g.GET("", h.FetchAll)

	g.GET("/owner/:address", h.FetchOwned, middleware.IsValidAddress("address"))
}

func (h *handler) FetchAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	records, err := h.catalog.FetchAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, records)
}

func (h *handler) FetchOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	records, err := h.catalog.FetchOwned(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, records)
}
