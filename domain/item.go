package domain

import (
	"math/big"

	bCtx "github.com/demarket/goapi/base/ctx"
)

// Listing is the raw on-chain record of an item offered for sale.
// Price and quantity are fixed-point integers in base units.
type Listing struct {
	Seller   Address
	Token    Address
	Name     string
	Price    *big.Int
	Quantity *big.Int
}

// HasSeller reports whether the listing slot is populated. The contract
// returns a zeroed struct for unknown ids instead of reverting.
func (l *Listing) HasSeller() bool {
	return l != nil && !l.Seller.IsEmpty()
}

// Item is the display form of a listing, with price and quantity
// converted to decimal strings.
type Item struct {
	Id       int64  `json:"id"`
	Seller   string `json:"seller"`
	Token    string `json:"token"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// ListItemResult reports a confirmed listing, decoded from the
// ItemListed event of the listing transaction's receipt.
type ListItemResult struct {
	TransactionHash string `json:"transactionHash"`
	ItemId          string `json:"itemId"`
	Seller          string `json:"seller"`
	Token           string `json:"token"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	Quantity        string `json:"quantity"`
}

type ItemUseCase interface {
	ListItem(ctx bCtx.Ctx, token Address, name, price, quantity string) (*ListItemResult, error)
	GetItems(ctx bCtx.Ctx) ([]*Item, error)
}
