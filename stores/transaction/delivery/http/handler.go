package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/delivery"
	"github.com/demarket/goapi/domain"
)

type handler struct {
	transaction domain.TransactionUseCase
}

// New registers the transaction endpoints.
func New(e *echo.Echo, transaction domain.TransactionUseCase) {
	h := &handler{transaction: transaction}

	g := e.Group("/transactions")
	g.POST("/purchase", h.purchaseItem)
	g.POST("/withdraw", h.withdrawFunds)
	g.POST("/sell", h.processSellOrder)
	g.POST("/authorize", h.authorizeItem)
	g.GET("/nonce/:address", h.authorizationNonce)
}

func (h *handler) purchaseItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId   int64  `json:"itemId" validate:"required,gt=0"`
		Quantity string `json:"quantity" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to purchase item", err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to purchase item", err)
	}

	txHash, err := h.transaction.PurchaseItem(ctx, p.ItemId, p.Quantity)
	if err != nil {
		return delivery.MakeErrorResp(c, purchaseStatus(err), "Failed to purchase item", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"transactionHash": txHash.String(),
	})
}

// purchaseStatus keeps input and business-rule rejections on 400 and
// reserves 500 for chain failures.
func purchaseStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInsufficientSellerBalance),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) withdrawFunds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.transaction.WithdrawFunds(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, &domain.WithdrawResult{
			Success: false,
			Error:   err.Error(),
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) processSellOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := domain.SellOrder{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to process sell order", err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to process sell order", err)
	}

	res, err := h.transaction.ProcessSellOrder(ctx, &p)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidSellerSignature) {
			status = http.StatusBadRequest
		}
		return delivery.MakeErrorResp(c, status, "Failed to process sell order", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) authorizeItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId    int64  `json:"itemId" validate:"required,gt=0"`
		Quantity  string `json:"quantity" validate:"required"`
		Signature string `json:"signature" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to authorize item", err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to authorize item", err)
	}

	txHash, err := h.transaction.AuthorizeItem(ctx, p.ItemId, p.Quantity, p.Signature)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidQuantity) || errors.Is(err, domain.ErrBadParamInput) {
			status = http.StatusBadRequest
		}
		return delivery.MakeErrorResp(c, status, "Failed to authorize item", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"transactionHash": txHash.String(),
	})
}

func (h *handler) authorizationNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address string `param:"address" validate:"required,eth_addr"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to fetch nonce", err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "Failed to fetch nonce", err)
	}

	nonce, err := h.transaction.AuthorizationNonce(ctx, domain.Address(p.Address))
	if err != nil {
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, "Failed to fetch nonce", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"address": p.Address,
		"nonce":   nonce,
	})
}
