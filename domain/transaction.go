package domain

import (
	bCtx "github.com/demarket/goapi/base/ctx"
)

// SellOrder is an off-chain, seller-signed authorization for a direct
// token transfer. Amount and price are integers in base units. The wire
// field buyerAddress maps to the signed field `buyer` (see eip712.go).
// The signed payload intentionally carries no nonce or expiry; replay
// protection is left to the transfer-authorization path on chain.
type SellOrder struct {
	Seller          Address `json:"seller" validate:"required,eth_addr"`
	Token           Address `json:"token" validate:"required,eth_addr"`
	BuyerAddress    Address `json:"buyerAddress" validate:"required,eth_addr"`
	SellerSignature string  `json:"sellerSignature" validate:"required"`
	Amount          string  `json:"amount" validate:"required,number"`
	Price           string  `json:"price" validate:"required,number"`
}

// SellOrderResult confirms an executed sell order.
type SellOrderResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	Seller          string `json:"seller"`
	Buyer           string `json:"buyer"`
	Token           string `json:"token"`
	Amount          string `json:"amount"`
}

// WithdrawResult reports the outcome of a withdraw attempt. A zero
// accrued balance yields Success=false with Error set and no
// transaction submitted.
type WithdrawResult struct {
	Success         bool   `json:"success"`
	TxHash          string `json:"txHash,omitempty"`
	AmountWithdrawn string `json:"amountWithdrawn,omitempty"`
	Error           string `json:"error,omitempty"`
}

type TransactionUseCase interface {
	PurchaseItem(ctx bCtx.Ctx, itemId int64, quantity string) (TxHash, error)
	WithdrawFunds(ctx bCtx.Ctx) (*WithdrawResult, error)
	ProcessSellOrder(ctx bCtx.Ctx, order *SellOrder) (*SellOrderResult, error)
	AuthorizeItem(ctx bCtx.Ctx, itemId int64, quantity, signature string) (TxHash, error)
	AuthorizationNonce(ctx bCtx.Ctx, seller Address) (string, error)
}
