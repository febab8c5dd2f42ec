package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/demarket/goapi/base/abi"
	bCtx "github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/units"
	"github.com/demarket/goapi/domain"
	"github.com/demarket/goapi/domain/mocks"
)

const (
	marketAddress = domain.Address("0x9999999999999999999999999999999999999999")
	sellerAddress = domain.Address("0x1111111111111111111111111111111111111111")
	tokenAddress  = domain.Address("0x2222222222222222222222222222222222222222")
	buyerAddress  = domain.Address("0x3333333333333333333333333333333333333333")
)

type transactionSuite struct {
	suite.Suite

	marketplace *mocks.MarketplaceContract
	erc20       *mocks.Erc20Factory
	token       *mocks.Erc20Contract
	node        *mocks.NodeClient
	im          domain.TransactionUseCase
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(transactionSuite))
}

func (s *transactionSuite) SetupTest() {
	s.marketplace = &mocks.MarketplaceContract{}
	s.erc20 = &mocks.Erc20Factory{}
	s.token = &mocks.Erc20Contract{}
	s.node = &mocks.NodeClient{}
	s.im = New(s.marketplace, s.erc20, s.node)
}

func (s *transactionSuite) listing(price, quantity *big.Int) *domain.Listing {
	return &domain.Listing{
		Seller:   sellerAddress,
		Token:    tokenAddress,
		Name:     "widget",
		Price:    price,
		Quantity: quantity,
	}
}

func (s *transactionSuite) successfulReceipt(logs ...*types.Log) *types.Receipt {
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		TxHash: common.HexToHash("0xdead"),
		Logs:   logs,
	}
}

func (s *transactionSuite) TestPurchaseItemInvalidQuantity() {
	ctx := bCtx.Background()

	for _, quantity := range []string{"abc", "-1", "0", ""} {
		_, err := s.im.PurchaseItem(ctx, 1, quantity)
		s.Require().ErrorIs(err, domain.ErrInvalidQuantity, quantity)
	}
	s.marketplace.AssertNotCalled(s.T(), "Item", mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestPurchaseItemNotFound() {
	ctx := bCtx.Background()
	s.marketplace.On("Item", ctx, big.NewInt(42)).Return(&domain.Listing{}, nil).Once()

	_, err := s.im.PurchaseItem(ctx, 42, "1")
	s.Require().ErrorIs(err, domain.ErrItemNotFound)
}

func (s *transactionSuite) TestPurchaseItemSellerShort() {
	ctx := bCtx.Background()
	price, _ := units.ParseEther("1")
	available, _ := units.ParseEther("100")
	sellerBalance, _ := units.ParseEther("5")

	s.marketplace.On("Item", ctx, big.NewInt(1)).Return(s.listing(price, available), nil).Once()
	s.erc20.On("Erc20", tokenAddress).Return(s.token).Once()
	s.token.On("Decimals", ctx).Return(uint8(18), nil).Once()
	s.token.On("BalanceOf", ctx, sellerAddress).Return(sellerBalance, nil).Once()

	_, err := s.im.PurchaseItem(ctx, 1, "10")
	s.Require().ErrorIs(err, domain.ErrInsufficientSellerBalance)
	s.token.AssertNotCalled(s.T(), "Approve", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "PurchaseItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestPurchaseItemSkipsApproveWhenAllowanceCovers() {
	ctx := bCtx.Background()
	price, _ := units.ParseEther("1")
	available, _ := units.ParseEther("100")
	quantityBase, _ := units.ParseUnits("10", 18)

	s.marketplace.On("Item", ctx, big.NewInt(1)).Return(s.listing(price, available), nil).Once()
	s.erc20.On("Erc20", tokenAddress).Return(s.token).Once()
	s.token.On("Decimals", ctx).Return(uint8(18), nil).Once()
	s.token.On("BalanceOf", ctx, sellerAddress).Return(available, nil).Once()
	s.node.On("Sender").Return(buyerAddress)
	s.marketplace.On("Address").Return(marketAddress)
	s.token.On("Allowance", ctx, buyerAddress, marketAddress).Return(quantityBase, nil).Once()
	s.marketplace.On("EstimatePurchaseGas", ctx, big.NewInt(1), quantityBase, mock.Anything).Return(uint64(21000), nil).Once()
	s.node.On("SuggestGasPrice", ctx).Return(big.NewInt(1), nil).Once()
	buyerFunds, _ := units.ParseEther("1000")
	s.node.On("BalanceAt", ctx, buyerAddress).Return(buyerFunds, nil).Once()
	s.marketplace.On("PurchaseItem", ctx, big.NewInt(1), quantityBase, mock.Anything).Return(s.successfulReceipt(), nil).Once()

	txHash, err := s.im.PurchaseItem(ctx, 1, "10")
	s.Require().NoError(err)
	s.Equal(common.HexToHash("0xdead").Hex(), txHash.String())
	s.token.AssertNotCalled(s.T(), "Approve", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertExpectations(s.T())
}

func (s *transactionSuite) TestPurchaseItemApprovesWhenAllowanceShort() {
	ctx := bCtx.Background()
	price, _ := units.ParseEther("1")
	available, _ := units.ParseEther("100")
	quantityBase, _ := units.ParseUnits("10", 18)

	s.marketplace.On("Item", ctx, big.NewInt(1)).Return(s.listing(price, available), nil).Once()
	s.erc20.On("Erc20", tokenAddress).Return(s.token).Once()
	s.token.On("Decimals", ctx).Return(uint8(18), nil).Once()
	s.token.On("BalanceOf", ctx, sellerAddress).Return(available, nil).Once()
	s.node.On("Sender").Return(buyerAddress)
	s.marketplace.On("Address").Return(marketAddress)
	s.token.On("Allowance", ctx, buyerAddress, marketAddress).Return(big.NewInt(0), nil).Once()
	s.token.On("Approve", ctx, marketAddress, quantityBase).Return(s.successfulReceipt(), nil).Once()
	s.marketplace.On("EstimatePurchaseGas", ctx, big.NewInt(1), quantityBase, mock.Anything).Return(uint64(21000), nil).Once()
	s.node.On("SuggestGasPrice", ctx).Return(big.NewInt(1), nil).Once()
	buyerFunds, _ := units.ParseEther("1000")
	s.node.On("BalanceAt", ctx, buyerAddress).Return(buyerFunds, nil).Once()
	s.marketplace.On("PurchaseItem", ctx, big.NewInt(1), quantityBase, mock.Anything).Return(s.successfulReceipt(), nil).Once()

	_, err := s.im.PurchaseItem(ctx, 1, "10")
	s.Require().NoError(err)
	s.token.AssertExpectations(s.T())
}

func (s *transactionSuite) TestPurchaseItemBuyerShortOnFunds() {
	ctx := bCtx.Background()
	price, _ := units.ParseEther("1")
	available, _ := units.ParseEther("100")
	quantityBase, _ := units.ParseUnits("10", 18)

	s.marketplace.On("Item", ctx, big.NewInt(1)).Return(s.listing(price, available), nil).Once()
	s.erc20.On("Erc20", tokenAddress).Return(s.token).Once()
	s.token.On("Decimals", ctx).Return(uint8(18), nil).Once()
	s.token.On("BalanceOf", ctx, sellerAddress).Return(available, nil).Once()
	s.node.On("Sender").Return(buyerAddress)
	s.marketplace.On("Address").Return(marketAddress)
	s.token.On("Allowance", ctx, buyerAddress, marketAddress).Return(quantityBase, nil).Once()
	s.marketplace.On("EstimatePurchaseGas", ctx, big.NewInt(1), quantityBase, mock.Anything).Return(uint64(21000), nil).Once()
	s.node.On("SuggestGasPrice", ctx).Return(big.NewInt(1), nil).Once()
	// value alone is 10 ether, the buyer holds 1
	buyerFunds, _ := units.ParseEther("1")
	s.node.On("BalanceAt", ctx, buyerAddress).Return(buyerFunds, nil).Once()

	_, err := s.im.PurchaseItem(ctx, 1, "10")
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	s.marketplace.AssertNotCalled(s.T(), "PurchaseItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestWithdrawFundsZeroBalance() {
	ctx := bCtx.Background()
	s.node.On("Sender").Return(sellerAddress)
	s.marketplace.On("PendingBalance", ctx, sellerAddress).Return(big.NewInt(0), nil).Once()

	res, err := s.im.WithdrawFunds(ctx)
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal("No funds available to withdraw", res.Error)
	s.Empty(res.TxHash)
	s.marketplace.AssertNotCalled(s.T(), "WithdrawFunds", mock.Anything)
}

func (s *transactionSuite) TestWithdrawFunds() {
	ctx := bCtx.Background()
	amount, _ := units.ParseEther("2.5")

	ev := abi.DeMarketABI.Events["FundsWithdrawn"]
	data, err := ev.Inputs.NonIndexed().Pack(amount)
	s.Require().NoError(err)
	withdrawnLog := &types.Log{
		Topics: []common.Hash{
			ev.ID,
			common.BytesToHash(common.HexToAddress(sellerAddress.ToLowerStr()).Bytes()),
		},
		Data: data,
	}

	s.node.On("Sender").Return(sellerAddress)
	s.marketplace.On("PendingBalance", ctx, sellerAddress).Return(amount, nil).Once()
	s.marketplace.On("WithdrawFunds", ctx).Return(s.successfulReceipt(withdrawnLog), nil).Once()

	res, err := s.im.WithdrawFunds(ctx)
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(common.HexToHash("0xdead").Hex(), res.TxHash)
	s.Equal("2.5", res.AmountWithdrawn)
	s.Empty(res.Error)
}

func (s *transactionSuite) signedOrder(amount, price string) (*domain.SellOrder, domain.Address) {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	seller := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())

	order := &domain.SellOrder{
		Seller:       seller,
		Token:        tokenAddress,
		BuyerAddress: buyerAddress,
		Amount:       amount,
		Price:        price,
	}
	digest, err := order.Digest(big.NewInt(31337), marketAddress)
	s.Require().NoError(err)
	sig, err := crypto.Sign(digest, key)
	s.Require().NoError(err)
	sig[crypto.RecoveryIDOffset] += 27
	order.SellerSignature = hexutil.Encode(sig)
	return order, seller
}

func (s *transactionSuite) TestProcessSellOrder() {
	ctx := bCtx.Background()
	order, seller := s.signedOrder("1000", "500")

	s.node.On("ChainId").Return(big.NewInt(31337))
	s.marketplace.On("Address").Return(marketAddress)
	s.erc20.On("Erc20", tokenAddress).Return(s.token).Once()
	s.token.On("BalanceOf", ctx, seller).Return(big.NewInt(1000), nil).Once()
	s.marketplace.On("TransferTokens", ctx, tokenAddress, seller, buyerAddress, big.NewInt(1000)).Return(s.successfulReceipt(), nil).Once()

	res, err := s.im.ProcessSellOrder(ctx, order)
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(common.HexToHash("0xdead").Hex(), res.TransactionHash)
	s.Equal(string(seller), res.Seller)
	s.Equal("1000", res.Amount)
	s.marketplace.AssertExpectations(s.T())
}

func (s *transactionSuite) TestProcessSellOrderBadSignature() {
	ctx := bCtx.Background()
	order, _ := s.signedOrder("1000", "500")
	// claim a different seller than the one who signed
	order.Seller = sellerAddress

	s.node.On("ChainId").Return(big.NewInt(31337))
	s.marketplace.On("Address").Return(marketAddress)

	_, err := s.im.ProcessSellOrder(ctx, order)
	s.Require().ErrorIs(err, domain.ErrInvalidSellerSignature)
	s.token.AssertNotCalled(s.T(), "BalanceOf", mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "TransferTokens", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestProcessSellOrderSellerShort() {
	ctx := bCtx.Background()
	order, seller := s.signedOrder("1000", "500")

	s.node.On("ChainId").Return(big.NewInt(31337))
	s.marketplace.On("Address").Return(marketAddress)
	s.erc20.On("Erc20", tokenAddress).Return(s.token).Once()
	s.token.On("BalanceOf", ctx, seller).Return(big.NewInt(10), nil).Once()

	_, err := s.im.ProcessSellOrder(ctx, order)
	s.Require().ErrorIs(err, domain.ErrOrderProcessingFailed)
	s.Require().ErrorContains(err, domain.ErrInsufficientSellerBalance.Error())
	s.marketplace.AssertNotCalled(s.T(), "TransferTokens", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestProcessSellOrderNonIntegerAmount() {
	ctx := bCtx.Background()
	order, _ := s.signedOrder("1000", "500")
	order.Amount = "1.5"

	_, err := s.im.ProcessSellOrder(ctx, order)
	s.Require().ErrorIs(err, domain.ErrOrderProcessingFailed)
	s.marketplace.AssertNotCalled(s.T(), "TransferTokens", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestAuthorizeItem() {
	ctx := bCtx.Background()
	sig := common.FromHex("0x010203")

	s.marketplace.On("AuthorizeItem", ctx, big.NewInt(7), big.NewInt(3), sig).Return(s.successfulReceipt(), nil).Once()

	txHash, err := s.im.AuthorizeItem(ctx, 7, "3", "0x010203")
	s.Require().NoError(err)
	s.Equal(common.HexToHash("0xdead").Hex(), txHash.String())
}

func (s *transactionSuite) TestAuthorizeItemInvalidQuantity() {
	ctx := bCtx.Background()

	_, err := s.im.AuthorizeItem(ctx, 7, "0", "0x010203")
	s.Require().ErrorIs(err, domain.ErrInvalidQuantity)
	s.marketplace.AssertNotCalled(s.T(), "AuthorizeItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *transactionSuite) TestAuthorizationNonce() {
	ctx := bCtx.Background()
	s.marketplace.On("Nonce", ctx, sellerAddress).Return(big.NewInt(5), nil).Once()

	nonce, err := s.im.AuthorizationNonce(ctx, sellerAddress)
	s.Require().NoError(err)
	s.Equal("5", nonce)
}
