package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/demarket/goapi/base/abi"
	"github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/log"
	"github.com/demarket/goapi/base/units"
	"github.com/demarket/goapi/domain"
)

type impl struct {
	marketplace domain.MarketplaceContract
}

func New(marketplace domain.MarketplaceContract) domain.ItemUseCase {
	return &impl{marketplace: marketplace}
}

func (im *impl) ListItem(c ctx.Ctx, token domain.Address, name, price, quantity string) (*domain.ListItemResult, error) {
	priceWei, err := units.ParseEther(price)
	if err != nil {
		return nil, err
	}
	quantityWei, err := units.ParseEther(quantity)
	if err != nil {
		return nil, err
	}

	receipt, err := im.marketplace.ListItem(c, token, name, priceWei, quantityWei)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
			"name":  name,
		}).Error("marketplace.ListItem failed")
		return nil, err
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return nil, domain.ErrTxNotMined
	}

	// the receipt interleaves token transfer logs with ours, entries
	// that fail to decode are skipped
	var listed *abi.ItemListedLog
	for _, l := range receipt.Logs {
		if ev, err := abi.ToItemListedLog(l); err == nil {
			listed = ev
			break
		}
	}
	if listed == nil {
		return nil, domain.ErrEventNotFound
	}

	return &domain.ListItemResult{
		TransactionHash: receipt.TxHash.Hex(),
		ItemId:          listed.ItemId.String(),
		Seller:          listed.Seller.Hex(),
		Token:           listed.Token.Hex(),
		Name:            listed.Name,
		Price:           units.FormatEther(listed.Price),
		Quantity:        units.FormatEther(listed.Quantity),
	}, nil
}

func (im *impl) GetItems(c ctx.Ctx) ([]*domain.Item, error) {
	count, err := im.marketplace.ItemCount(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.ItemCount failed")
		return nil, err
	}

	// item ids are 1-based and never reused, a full scan keeps the
	// response ordered without any off-chain state
	items := make([]*domain.Item, 0, count.Int64())
	for id := int64(1); id <= count.Int64(); id++ {
		listing, err := im.marketplace.Item(c, big.NewInt(id))
		if err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("marketplace.Item failed")
			return nil, err
		}
		items = append(items, &domain.Item{
			Id:       id,
			Seller:   string(listing.Seller),
			Token:    string(listing.Token),
			Name:     listing.Name,
			Price:    units.FormatEther(listing.Price),
			Quantity: units.FormatEther(listing.Quantity),
		})
	}
	return items, nil
}
