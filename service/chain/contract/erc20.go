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

// Erc20 is a typed handle to an ERC-20 token contract.
type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewErc20(chainService chain.Client, address domain.Address) *Erc20 {
	return &Erc20{
		chainService: chainService,
		abi:          baseabi.ERC20TokenABI,
		address:      common.HexToAddress(address.ToLowerStr()),
	}
}

func (e *Erc20) Decimals(ctx bCtx.Ctx) (uint8, error) {
	method := "decimals"
	unpacked, err := e.chainService.Call(ctx, e.address, e.abi, method)
	if err != nil {
		return 0, err
	}
	return unpacked[0].(uint8), nil
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, e.address, e.abi, method, common.HexToAddress(owner.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, owner, spender domain.Address) (*big.Int, error) {
	method := "allowance"
	unpacked, err := e.chainService.Call(ctx, e.address, e.abi, method,
		common.HexToAddress(owner.ToLowerStr()),
		common.HexToAddress(spender.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Approve(ctx bCtx.Ctx, spender domain.Address, amount *big.Int) (*types.Receipt, error) {
	method := "approve"
	return e.chainService.Transact(ctx, e.address, nil, e.abi, method, common.HexToAddress(spender.ToLowerStr()), amount)
}

func (e *Erc20) Transfer(ctx bCtx.Ctx, recipient domain.Address, amount *big.Int) (*types.Receipt, error) {
	method := "transfer"
	return e.chainService.Transact(ctx, e.address, nil, e.abi, method, common.HexToAddress(recipient.ToLowerStr()), amount)
}

// Erc20Factory builds token handles over a shared chain client.
type Erc20Factory struct {
	chainService chain.Client
}

func NewErc20Factory(chainService chain.Client) *Erc20Factory {
	return &Erc20Factory{chainService: chainService}
}

func (f *Erc20Factory) Erc20(token domain.Address) domain.Erc20Contract {
	return NewErc20(f.chainService, token)
}
