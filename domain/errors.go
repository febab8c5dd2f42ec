package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// marketplace lifecycle
	ErrInvalidQuantity           = errors.New("Invalid quantity provided")
	ErrItemNotFound              = errors.New("Item not found or missing seller data")
	ErrInsufficientSellerBalance = errors.New("Seller does not have enough tokens")
	ErrInsufficientFunds         = errors.New("Insufficient funds to cover price and gas")
	ErrApprovalFailed            = errors.New("Approval failed")
	ErrPurchaseFailed            = errors.New("Purchase failed")
	ErrWithdrawFailed            = errors.New("Withdraw failed")
	ErrNoFundsToWithdraw         = errors.New("No funds available to withdraw")
	ErrAuthorizationFailed       = errors.New("Authorization failed")

	// transaction lifecycle
	ErrTxNotMined      = errors.New("Transaction was not mined correctly")
	ErrEventNotFound   = errors.New("ItemListed event not found")
	ErrUnexpectedEvent = errors.New("unexpected event")

	// sell order
	ErrInvalidSellerSignature = errors.New("Invalid seller signature")
	ErrOrderProcessingFailed  = errors.New("Order processing failed")
)
