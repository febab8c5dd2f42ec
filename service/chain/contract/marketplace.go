package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/demarket/goapi/base/abi"
	bCtx "github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/domain"
	"github.com/demarket/goapi/service/chain"
)

// Marketplace is a typed handle to the deployed DeMarket contract.
type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewMarketplace(chainService chain.Client, address domain.Address) *Marketplace {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.DeMarketABI,
		address:      common.HexToAddress(address.ToLowerStr()),
	}
}

func (m *Marketplace) Address() domain.Address {
	return domain.Address(m.address.Hex())
}

func (m *Marketplace) ListItem(ctx bCtx.Ctx, token domain.Address, name string, price, quantity *big.Int) (*types.Receipt, error) {
	method := "listItem"
	return m.chainService.Transact(ctx, m.address, nil, m.abi, method, common.HexToAddress(token.ToLowerStr()), name, price, quantity)
}

func (m *Marketplace) ItemCount(ctx bCtx.Ctx) (*big.Int, error) {
	method := "itemCount"
	unpacked, err := m.chainService.Call(ctx, m.address, m.abi, method)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (m *Marketplace) Item(ctx bCtx.Ctx, id *big.Int) (*domain.Listing, error) {
	method := "items"
	unpacked, err := m.chainService.Call(ctx, m.address, m.abi, method, id)
	if err != nil {
		return nil, err
	}
	return &domain.Listing{
		Seller:   domain.Address(unpacked[0].(common.Address).Hex()),
		Token:    domain.Address(unpacked[1].(common.Address).Hex()),
		Name:     unpacked[2].(string),
		Price:    unpacked[3].(*big.Int),
		Quantity: unpacked[4].(*big.Int),
	}, nil
}

func (m *Marketplace) PurchaseItem(ctx bCtx.Ctx, id, quantity, value *big.Int) (*types.Receipt, error) {
	method := "purchaseItem"
	return m.chainService.Transact(ctx, m.address, value, m.abi, method, id, quantity)
}

func (m *Marketplace) EstimatePurchaseGas(ctx bCtx.Ctx, id, quantity, value *big.Int) (uint64, error) {
	method := "purchaseItem"
	return m.chainService.EstimateGas(ctx, m.address, value, m.abi, method, id, quantity)
}

func (m *Marketplace) PendingBalance(ctx bCtx.Ctx, seller domain.Address) (*big.Int, error) {
	method := "balances"
	unpacked, err := m.chainService.Call(ctx, m.address, m.abi, method, common.HexToAddress(seller.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (m *Marketplace) WithdrawFunds(ctx bCtx.Ctx) (*types.Receipt, error) {
	method := "withdrawFunds"
	return m.chainService.Transact(ctx, m.address, nil, m.abi, method)
}

func (m *Marketplace) AuthorizeItem(ctx bCtx.Ctx, id, quantity *big.Int, signature []byte) (*types.Receipt, error) {
	method := "authorizeItem"
	return m.chainService.Transact(ctx, m.address, nil, m.abi, method, id, quantity, signature)
}

func (m *Marketplace) Nonce(ctx bCtx.Ctx, seller domain.Address) (*big.Int, error) {
	method := "nonces"
	unpacked, err := m.chainService.Call(ctx, m.address, m.abi, method, common.HexToAddress(seller.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (m *Marketplace) TransferTokens(ctx bCtx.Ctx, token, from, to domain.Address, amount *big.Int) (*types.Receipt, error) {
	method := "transferTokens"
	return m.chainService.Transact(ctx, m.address, nil, m.abi, method,
		common.HexToAddress(token.ToLowerStr()),
		common.HexToAddress(from.ToLowerStr()),
		common.HexToAddress(to.ToLowerStr()),
		amount)
}
