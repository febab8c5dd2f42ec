package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/delivery"
	"github.com/demarket/goapi/domain"
)

type handler struct {
	item domain.ItemUseCase
}

// New registers the item catalog endpoints.
func New(e *echo.Echo, item domain.ItemUseCase) {
	h := &handler{item: item}

	g := e.Group("/items")
	g.POST("/list", h.listItem)
	g.GET("", h.getItems)
}

func (h *handler) listItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		TokenAddress string `json:"tokenAddress" validate:"required,eth_addr"`
		Name         string `json:"name" validate:"required"`
		Price        string `json:"price" validate:"required"`
		Quantity     string `json:"quantity" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to list item", err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to list item", err)
	}

	res, err := h.item.ListItem(ctx, domain.Address(p.TokenAddress), p.Name, p.Price, p.Quantity)
	if err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to list item", err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	items, err := h.item.GetItems(ctx)
	if err != nil {
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, "Failed to fetch items", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}
