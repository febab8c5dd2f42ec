package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/demarket/goapi/base/abi"
	"github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/base/ethereum"
	"github.com/demarket/goapi/base/log"
	"github.com/demarket/goapi/base/units"
	"github.com/demarket/goapi/domain"
)

type impl struct {
	marketplace domain.MarketplaceContract
	erc20       domain.Erc20Factory
	node        domain.NodeClient
}

func New(
	marketplace domain.MarketplaceContract,
	erc20 domain.Erc20Factory,
	node domain.NodeClient,
) domain.TransactionUseCase {
	return &impl{
		marketplace: marketplace,
		erc20:       erc20,
		node:        node,
	}
}

// PurchaseItem orchestrates a relayed purchase. Chain state is re-read
// on every call, the chain's own execution ordering is the only
// serialization point between the checks and the final write.
func (im *impl) PurchaseItem(c ctx.Ctx, itemId int64, quantity string) (domain.TxHash, error) {
	qty, err := decimal.NewFromString(quantity)
	if err != nil || !qty.IsPositive() {
		return "", domain.ErrInvalidQuantity
	}

	listing, err := im.marketplace.Item(c, big.NewInt(itemId))
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("marketplace.Item failed")
		return "", err
	}
	if !listing.HasSeller() {
		return "", domain.ErrItemNotFound
	}

	token := im.erc20.Erc20(listing.Token)
	decimals, err := token.Decimals(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": listing.Token,
		}).Error("erc20.Decimals failed")
		return "", err
	}
	quantityBase, err := units.ParseUnits(quantity, int32(decimals))
	if err != nil {
		return "", domain.ErrInvalidQuantity
	}

	sellerBalance, err := token.BalanceOf(c, listing.Seller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": listing.Seller,
		}).Error("erc20.BalanceOf failed")
		return "", err
	}
	if sellerBalance.Cmp(quantityBase) < 0 {
		return "", domain.ErrInsufficientSellerBalance
	}

	allowance, err := token.Allowance(c, im.node.Sender(), im.marketplace.Address())
	if err != nil {
		c.WithField("err", err).Error("erc20.Allowance failed")
		return "", err
	}
	if allowance.Cmp(quantityBase) < 0 {
		receipt, err := token.Approve(c, im.marketplace.Address(), quantityBase)
		if err != nil {
			c.WithField("err", err).Error("erc20.Approve failed")
			return "", xerrors.Errorf("%w: %v", domain.ErrApprovalFailed, err)
		}
		if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
			return "", xerrors.Errorf("%w: %v", domain.ErrApprovalFailed, domain.ErrTxNotMined)
		}
	}

	// price is per whole unit, so the value carried by the purchase is
	// price times the marketplace-unit quantity, not the base-unit one
	value := decimal.NewFromBigInt(listing.Price, 0).Mul(qty).BigInt()

	gas, err := im.marketplace.EstimatePurchaseGas(c, big.NewInt(itemId), quantityBase, value)
	if err != nil {
		c.WithField("err", err).Error("marketplace.EstimatePurchaseGas failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrPurchaseFailed, err)
	}
	gasPrice, err := im.node.SuggestGasPrice(c)
	if err != nil {
		c.WithField("err", err).Error("node.SuggestGasPrice failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrPurchaseFailed, err)
	}
	buyerBalance, err := im.node.BalanceAt(c, im.node.Sender())
	if err != nil {
		c.WithField("err", err).Error("node.BalanceAt failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrPurchaseFailed, err)
	}
	gasCost := new(big.Int).Mul(new(big.Int).SetUint64(gas), gasPrice)
	required := new(big.Int).Add(value, gasCost)
	if buyerBalance.Cmp(required) < 0 {
		return "", domain.ErrInsufficientFunds
	}

	receipt, err := im.marketplace.PurchaseItem(c, big.NewInt(itemId), quantityBase, value)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("marketplace.PurchaseItem failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrPurchaseFailed, err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return "", xerrors.Errorf("%w: %v", domain.ErrPurchaseFailed, domain.ErrTxNotMined)
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

// WithdrawFunds pulls the relayer's accrued marketplace balance. A zero
// balance short-circuits without submitting anything.
func (im *impl) WithdrawFunds(c ctx.Ctx) (*domain.WithdrawResult, error) {
	balance, err := im.marketplace.PendingBalance(c, im.node.Sender())
	if err != nil {
		c.WithField("err", err).Error("marketplace.PendingBalance failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrWithdrawFailed, err)
	}
	if balance.Sign() == 0 {
		return &domain.WithdrawResult{
			Success: false,
			Error:   domain.ErrNoFundsToWithdraw.Error(),
		}, nil
	}

	receipt, err := im.marketplace.WithdrawFunds(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.WithdrawFunds failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrWithdrawFailed, err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return nil, xerrors.Errorf("%w: %v", domain.ErrWithdrawFailed, domain.ErrTxNotMined)
	}

	res := &domain.WithdrawResult{
		Success: true,
		TxHash:  receipt.TxHash.Hex(),
	}
	for _, l := range receipt.Logs {
		if ev, err := abi.ToFundsWithdrawnLog(l); err == nil {
			res.AmountWithdrawn = units.FormatEther(ev.Amount)
			break
		}
	}
	return res, nil
}

// ProcessSellOrder verifies a seller-signed EIP-712 order and relays the
// authorized token transfer. Signature verification comes first, nothing
// is read or moved on a mismatch.
func (im *impl) ProcessSellOrder(c ctx.Ctx, order *domain.SellOrder) (*domain.SellOrderResult, error) {
	parsed, err := domain.ToBigInt([]string{order.Amount, order.Price})
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrOrderProcessingFailed, err)
	}
	amount := parsed[0]

	digest, err := order.Digest(im.node.ChainId(), im.marketplace.Address())
	if err != nil {
		c.WithField("err", err).Error("order.Digest failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrOrderProcessingFailed, err)
	}
	valid, err := ethereum.ValidateHashSignature(digest, order.SellerSignature, order.Seller.ToLowerStr())
	if err != nil || !valid {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": order.Seller,
		}).Warn("sell order signature mismatch")
		return nil, domain.ErrInvalidSellerSignature
	}

	balance, err := im.erc20.Erc20(order.Token).BalanceOf(c, order.Seller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": order.Seller,
		}).Error("erc20.BalanceOf failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrOrderProcessingFailed, err)
	}
	if balance.Cmp(amount) < 0 {
		return nil, xerrors.Errorf("%w: %v", domain.ErrOrderProcessingFailed, domain.ErrInsufficientSellerBalance)
	}

	receipt, err := im.marketplace.TransferTokens(c, order.Token, order.Seller, order.BuyerAddress, amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": order.Seller,
			"buyer":  order.BuyerAddress,
		}).Error("marketplace.TransferTokens failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrOrderProcessingFailed, err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return nil, xerrors.Errorf("%w: %v", domain.ErrOrderProcessingFailed, domain.ErrTxNotMined)
	}

	return &domain.SellOrderResult{
		Success:         true,
		TransactionHash: receipt.TxHash.Hex(),
		Seller:          string(order.Seller),
		Buyer:           string(order.BuyerAddress),
		Token:           string(order.Token),
		Amount:          order.Amount,
	}, nil
}

// AuthorizeItem relays a seller-signed item authorization through the
// contract's nonce-guarded entry point.
func (im *impl) AuthorizeItem(c ctx.Ctx, itemId int64, quantity, signature string) (domain.TxHash, error) {
	qty, ok := new(big.Int).SetString(quantity, 10)
	if !ok || qty.Sign() <= 0 {
		return "", domain.ErrInvalidQuantity
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	receipt, err := im.marketplace.AuthorizeItem(c, big.NewInt(itemId), qty, sig)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("marketplace.AuthorizeItem failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrAuthorizationFailed, err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return "", xerrors.Errorf("%w: %v", domain.ErrAuthorizationFailed, domain.ErrTxNotMined)
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (im *impl) AuthorizationNonce(c ctx.Ctx, seller domain.Address) (string, error) {
	nonce, err := im.marketplace.Nonce(c, seller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("marketplace.Nonce failed")
		return "", err
	}
	return nonce.String(), nil
}
