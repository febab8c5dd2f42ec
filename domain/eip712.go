package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	SellOrderPrimaryType = "SellOrder"
	Eip712DomainName     = "EIP712Domain"
)

// GetDomainSeparator reconstructs the EIP-712 domain the wallet signed
// against: fixed name/version, bound to the deployed marketplace.
func GetDomainSeparator(chainId *big.Int, verifyingContract Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              "DeMarket",
		Version:           "1",
		ChainId:           (*math.HexOrDecimal256)(chainId),
		VerifyingContract: verifyingContract.ToLowerStr(),
	}
}

var SellOrderTypes = apitypes.Types{
	"SellOrder": {
		{Name: "seller", Type: "address"},
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint256"},
		{Name: "price", Type: "uint256"},
		{Name: "buyer", Type: "address"},
	},
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

// ToMessage maps the wire payload onto the signed schema. The HTTP
// field buyerAddress becomes the signed field `buyer`.
func (o *SellOrder) ToMessage() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"seller": o.Seller.ToLowerStr(),
		"token":  o.Token.ToLowerStr(),
		"amount": o.Amount,
		"price":  o.Price,
		"buyer":  o.BuyerAddress.ToLowerStr(),
	}
}

// Digest computes the EIP-712 signing hash for the order.
func (o *SellOrder) Digest(chainId *big.Int, verifyingContract Address) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types:       SellOrderTypes,
		PrimaryType: SellOrderPrimaryType,
		Domain:      GetDomainSeparator(chainId, verifyingContract),
		Message:     o.ToMessage(),
	}

	domainSeparator, err := typedData.HashStruct(Eip712DomainName, typedData.Domain.Map())
	if err != nil {
		return nil, err
	}
	dataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, err
	}
	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(dataHash)))
	return crypto.Keccak256(rawData), nil
}
