package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/demarket/goapi/base/ctx"
)

// MarketplaceContract is the statically defined capability surface of
// the deployed DeMarket contract. Write operations submit a transaction
// and block until it is mined, returning the receipt.
type MarketplaceContract interface {
	Address() Address

	ListItem(ctx bCtx.Ctx, token Address, name string, price, quantity *big.Int) (*types.Receipt, error)
	ItemCount(ctx bCtx.Ctx) (*big.Int, error)
	Item(ctx bCtx.Ctx, id *big.Int) (*Listing, error)

	PurchaseItem(ctx bCtx.Ctx, id, quantity, value *big.Int) (*types.Receipt, error)
	EstimatePurchaseGas(ctx bCtx.Ctx, id, quantity, value *big.Int) (uint64, error)

	PendingBalance(ctx bCtx.Ctx, seller Address) (*big.Int, error)
	WithdrawFunds(ctx bCtx.Ctx) (*types.Receipt, error)

	AuthorizeItem(ctx bCtx.Ctx, id, quantity *big.Int, signature []byte) (*types.Receipt, error)
	Nonce(ctx bCtx.Ctx, seller Address) (*big.Int, error)
	TransferTokens(ctx bCtx.Ctx, token, from, to Address, amount *big.Int) (*types.Receipt, error)
}

// Erc20Contract is a typed handle to an arbitrary ERC-20 token bound to
// the service signer.
type Erc20Contract interface {
	Decimals(ctx bCtx.Ctx) (uint8, error)
	BalanceOf(ctx bCtx.Ctx, owner Address) (*big.Int, error)
	Allowance(ctx bCtx.Ctx, owner, spender Address) (*big.Int, error)
	Approve(ctx bCtx.Ctx, spender Address, amount *big.Int) (*types.Receipt, error)
	Transfer(ctx bCtx.Ctx, recipient Address, amount *big.Int) (*types.Receipt, error)
}

// Erc20Factory builds Erc20Contract handles for arbitrary token
// addresses.
type Erc20Factory interface {
	Erc20(token Address) Erc20Contract
}

// NodeClient exposes the signer identity and the node-level reads the
// orchestration needs (native balances, gas pricing, liveness).
type NodeClient interface {
	Sender() Address
	ChainId() *big.Int
	BalanceAt(ctx bCtx.Ctx, addr Address) (*big.Int, error)
	SuggestGasPrice(ctx bCtx.Ctx) (*big.Int, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
}
