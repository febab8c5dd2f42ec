package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/demarket/goapi/base/abi"
	bCtx "github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/units"
	"github.com/demarket/goapi/domain"
	"github.com/demarket/goapi/domain/mocks"
)

type itemSuite struct {
	suite.Suite

	marketplace *mocks.MarketplaceContract
	im          domain.ItemUseCase
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(itemSuite))
}

func (s *itemSuite) SetupTest() {
	s.marketplace = &mocks.MarketplaceContract{}
	s.im = New(s.marketplace)
}

func (s *itemSuite) newItemListedLog(itemId int64, seller, token common.Address, name string, price, quantity *big.Int) *types.Log {
	ev := abi.DeMarketABI.Events["ItemListed"]
	data, err := ev.Inputs.NonIndexed().Pack(token, name, price, quantity)
	s.Require().NoError(err)
	return &types.Log{
		Topics: []common.Hash{
			ev.ID,
			common.BigToHash(big.NewInt(itemId)),
			common.BytesToHash(seller.Bytes()),
		},
		Data: data,
	}
}

func (s *itemSuite) TestListItem() {
	ctx := bCtx.Background()
	seller := common.HexToAddress("0x1111111111111111111111111111111111111111")
	token := domain.Address("0x2222222222222222222222222222222222222222")
	price, _ := units.ParseEther("1.0")
	quantity, _ := units.ParseEther("10")

	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		TxHash: common.HexToHash("0xdead"),
		Logs: []*types.Log{
			// unrelated transfer log is skipped
			{Topics: []common.Hash{common.HexToHash("0xbeef")}},
			s.newItemListedLog(1, seller, common.HexToAddress(token.ToLowerStr()), "widget", price, quantity),
		},
	}
	s.marketplace.On("ListItem", ctx, token, "widget", price, quantity).Return(receipt, nil).Once()

	res, err := s.im.ListItem(ctx, token, "widget", "1.0", "10")
	s.Require().NoError(err)
	s.Equal(receipt.TxHash.Hex(), res.TransactionHash)
	s.Equal("1", res.ItemId)
	s.Equal(seller.Hex(), res.Seller)
	s.Equal("widget", res.Name)
	s.Equal("1.0", res.Price)
	s.Equal("10.0", res.Quantity)
	s.marketplace.AssertExpectations(s.T())
}

func (s *itemSuite) TestListItemInvalidPrice() {
	ctx := bCtx.Background()

	_, err := s.im.ListItem(ctx, "0x2222222222222222222222222222222222222222", "widget", "abc", "10")
	s.Require().ErrorIs(err, domain.ErrInvalidNumberFormat)
	s.marketplace.AssertNotCalled(s.T(), "ListItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *itemSuite) TestListItemRevertedReceipt() {
	ctx := bCtx.Background()
	receipt := &types.Receipt{Status: types.ReceiptStatusFailed}
	s.marketplace.On("ListItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(receipt, nil).Once()

	_, err := s.im.ListItem(ctx, "0x2222222222222222222222222222222222222222", "widget", "1.0", "10")
	s.Require().ErrorIs(err, domain.ErrTxNotMined)
}

func (s *itemSuite) TestListItemMissingEvent() {
	ctx := bCtx.Background()
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs:   []*types.Log{{Topics: []common.Hash{common.HexToHash("0xbeef")}}},
	}
	s.marketplace.On("ListItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(receipt, nil).Once()

	_, err := s.im.ListItem(ctx, "0x2222222222222222222222222222222222222222", "widget", "1.0", "10")
	s.Require().ErrorIs(err, domain.ErrEventNotFound)
}

func (s *itemSuite) TestGetItems() {
	ctx := bCtx.Background()
	price, _ := units.ParseEther("1.5")
	quantity, _ := units.ParseEther("3")

	s.marketplace.On("ItemCount", ctx).Return(big.NewInt(2), nil).Once()
	for id := int64(1); id <= 2; id++ {
		s.marketplace.On("Item", ctx, big.NewInt(id)).Return(&domain.Listing{
			Seller:   "0x1111111111111111111111111111111111111111",
			Token:    "0x2222222222222222222222222222222222222222",
			Name:     "widget",
			Price:    price,
			Quantity: quantity,
		}, nil).Once()
	}

	items, err := s.im.GetItems(ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(int64(1), items[0].Id)
	s.Equal(int64(2), items[1].Id)
	s.Equal("1.5", items[0].Price)
	s.Equal("3.0", items[0].Quantity)
	s.marketplace.AssertExpectations(s.T())
}

func (s *itemSuite) TestGetItemsEmpty() {
	ctx := bCtx.Background()
	s.marketplace.On("ItemCount", ctx).Return(big.NewInt(0), nil).Once()

	items, err := s.im.GetItems(ctx)
	s.Require().NoError(err)
	s.Empty(items)
}
