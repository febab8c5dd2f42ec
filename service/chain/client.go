package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/demarket/goapi/base/ctx"
	bEthereum "github.com/demarket/goapi/base/ethereum"
	"github.com/demarket/goapi/base/log"
	"github.com/demarket/goapi/domain"
)

var (
	ErrMissingRpcUrl          = errors.New("missing rpc url")
	ErrMissingPrivateKey      = errors.New("missing relayer private key")
	ErrInvalidContractAddress = errors.New("invalid contract address")
)

type ClientCfg struct {
	RpcUrl          string
	PrivateKey      string
	ContractAddress string
	ActiveEnv       string
	// MaxConcurrentCalls caps in-flight rpc requests, 0 picks the default
	MaxConcurrentCalls int
}

const defaultMaxConcurrentCalls = 32

// Client wraps a single-chain json-rpc connection and the relayer key.
// All contract writes are signed with that key and block until mined.
type Client interface {
	Sender() domain.Address
	ChainId() *big.Int
	BalanceAt(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error)
	SuggestGasPrice(ctx bCtx.Ctx) (*big.Int, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)

	Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(ctx bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error)
	EstimateGas(ctx bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (uint64, error)
}

type clientImpl struct {
	client     *bEthereum.ThrottledClient
	privateKey *ecdsa.PrivateKey
	sender     common.Address
	chainId    *big.Int
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	if cfg.RpcUrl == "" {
		return nil, ErrMissingRpcUrl
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, ErrInvalidContractAddress
	}

	rawClient, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	maxCalls := cfg.MaxConcurrentCalls
	if maxCalls <= 0 {
		maxCalls = defaultMaxConcurrentCalls
	}
	client := bEthereum.NewTrottledClient(rawClient, maxCalls)

	var privateKey *ecdsa.PrivateKey
	if cfg.PrivateKey != "" {
		privateKey, err = crypto.HexToECDSA(cfg.PrivateKey)
		if err != nil {
			ctx.WithField("err", err).Error("invalid private key")
			return nil, err
		}
	} else if cfg.ActiveEnv == "local" {
		// ephemeral key so a bare local setup can still boot, the
		// derived account owns nothing and every write will revert
		privateKey, err = crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		ctx.WithField("sender", crypto.PubkeyToAddress(privateKey.PublicKey).Hex()).
			Warn("no private key configured, using ephemeral key")
	} else {
		return nil, ErrMissingPrivateKey
	}

	chainId, err := client.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to fetch chain id")
		return nil, err
	}

	return &clientImpl{
		client:     client,
		privateKey: privateKey,
		sender:     crypto.PubkeyToAddress(privateKey.PublicKey),
		chainId:    chainId,
	}, nil
}

func (c *clientImpl) Sender() domain.Address {
	return domain.Address(c.sender.Hex())
}

func (c *clientImpl) ChainId() *big.Int {
	return new(big.Int).Set(c.chainId)
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(addr.ToLowerStr()), nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"addr": addr,
		}).Error("client.BalanceAt failed")
		return nil, err
	}
	return balance, nil
}

func (c *clientImpl) SuggestGasPrice(ctx bCtx.Ctx) (*big.Int, error) {
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	return gasPrice, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	blk, err := c.client.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return 0, err
	}
	return blk, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) EstimateGas(ctx bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (uint64, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return 0, err
	}
	msg := ethereum.CallMsg{
		From:  c.sender,
		To:    &addr,
		Value: value,
		Data:  data,
	}
	gas, err := c.client.EstimateGas(ctx, msg)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return 0, err
	}
	return gas, nil
}

// Transact packs and signs a state-changing call, broadcasts it and
// waits for it to be mined. Callers are responsible for inspecting the
// receipt status.
func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	nonce, err := c.client.PendingNonceAt(ctx, c.sender)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.sender,
		To:    &addr,
		Value: value,
		Data:  data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return nil, err
	}

	tx := types.NewTransaction(nonce, addr, value, gas, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainId), c.privateKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}
	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"txHash": signedTx.Hash().Hex(),
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, err
	}

	receipt, err := bind.WaitMined(ctx, c.client, signedTx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"txHash": signedTx.Hash().Hex(),
			"err":    err,
		}).Error("bind.WaitMined failed")
		return nil, err
	}
	return receipt, nil
}
