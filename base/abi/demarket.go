package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/demarket/goapi/domain"
)

var DeMarketABI abi.ABI

var deMarketABI = `[{"type":"event","anonymous":false,"name":"ItemListed","inputs":[{"type":"uint256","name":"itemId","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"address","name":"token"},{"type":"string","name":"name"},{"type":"uint256","name":"price"},{"type":"uint256","name":"quantity"}]},{"type":"event","anonymous":false,"name":"ItemPurchased","inputs":[{"type":"uint256","name":"itemId","indexed":true},{"type":"address","name":"buyer","indexed":true},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"totalPrice"}]},{"type":"event","anonymous":false,"name":"FundsWithdrawn","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"amount"}]},{"type":"function","name":"listItem","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"token"},{"type":"string","name":"name"},{"type":"uint256","name":"price"},{"type":"uint256","name":"quantity"}],"outputs":[]},{"type":"function","name":"itemCount","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"items","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"itemId"}],"outputs":[{"type":"address","name":"seller"},{"type":"address","name":"token"},{"type":"string","name":"name"},{"type":"uint256","name":"price"},{"type":"uint256","name":"quantity"}]},{"type":"function","name":"purchaseItem","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"itemId"},{"type":"uint256","name":"quantity"}],"outputs":[]},{"type":"function","name":"balances","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"seller"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"withdrawFunds","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[],"outputs":[]},{"type":"function","name":"authorizeItem","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"itemId"},{"type":"uint256","name":"quantity"},{"type":"bytes","name":"signature"}],"outputs":[]},{"type":"function","name":"nonces","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"seller"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"transferTokens","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"token"},{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"amount"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(deMarketABI))
	if err != nil {
		panic("Failed to parse demarket abi")
	}
	DeMarketABI = _abi
}

type ItemListedLog struct {
	ItemId   *big.Int       // indexed
	Seller   common.Address // indexed
	Token    common.Address
	Name     string
	Price    *big.Int
	Quantity *big.Int
}

type FundsWithdrawnLog struct {
	Seller common.Address // indexed
	Amount *big.Int
}

func ToItemListedLog(log *types.Log) (*ItemListedLog, error) {
	if len(log.Topics) < 3 || log.Topics[0] != DeMarketABI.Events["ItemListed"].ID {
		return nil, domain.ErrUnexpectedEvent
	}
	var itemListed ItemListedLog
	if err := DeMarketABI.UnpackIntoInterface(&itemListed, "ItemListed", log.Data); err != nil {
		return nil, err
	}
	itemListed.ItemId = new(big.Int).SetBytes(log.Topics[1].Bytes())
	itemListed.Seller = common.BytesToAddress(log.Topics[2].Bytes())
	return &itemListed, nil
}

func ToFundsWithdrawnLog(log *types.Log) (*FundsWithdrawnLog, error) {
	if len(log.Topics) < 2 || log.Topics[0] != DeMarketABI.Events["FundsWithdrawn"].ID {
		return nil, domain.ErrUnexpectedEvent
	}
	var fundsWithdrawn FundsWithdrawnLog
	if err := DeMarketABI.UnpackIntoInterface(&fundsWithdrawn, "FundsWithdrawn", log.Data); err != nil {
		return nil, err
	}
	fundsWithdrawn.Seller = common.BytesToAddress(log.Topics[1].Bytes())
	return &fundsWithdrawn, nil
}
