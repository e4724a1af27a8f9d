package bridge

import (
	"errors"
	"math/big"
	"strings"
	"sync"

	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/common/hexutil"
	"github.com/3dpass/bridge-core/rpc/client"
)

var (
	errTransport = errors.New("connection refused")
	errRejected  = &client.RPCError{Code: 3, Message: "execution reverted"}
)

// scriptedCaller answers contract calls from a fixed table keyed by
// contract address and method selector. Unscripted calls are answered
// with a contract-level rejection, like an EVM node rejecting an
// unknown method.
type scriptedCaller struct {
	mu        sync.Mutex
	responses map[string]scriptedResponse
	calls     map[string]int
}

type scriptedResponse struct {
	data string
	err  error
}

func newScriptedCaller() *scriptedCaller {
	return &scriptedCaller{
		responses: make(map[string]scriptedResponse),
		calls:     make(map[string]int),
	}
}

func callKey(contract string, selector []byte) string {
	return strings.ToLower(contract) + "/" + common.ToHex(selector)
}

func (c *scriptedCaller) answer(contract string, selector []byte, data string) {
	c.responses[callKey(contract, selector)] = scriptedResponse{data: data}
}

func (c *scriptedCaller) answerString(contract string, selector []byte, value string) {
	c.answer(contract, selector, encodeString(value))
}

func (c *scriptedCaller) answerAddress(contract string, selector []byte, addr string) {
	c.answer(contract, selector, encodeAddress(addr))
}

func (c *scriptedCaller) answerHash(contract string, selector []byte, h common.Hash) {
	c.answer(contract, selector, h.Hex())
}

func (c *scriptedCaller) answerUint(contract string, selector []byte, v uint64) {
	c.answer(contract, selector, encodeUint(v))
}

func (c *scriptedCaller) answerAddressSlice(contract string, selector []byte, addrs ...string) {
	c.answer(contract, selector, encodeAddressSlice(addrs))
}

func (c *scriptedCaller) reject(contract string, selector []byte) {
	c.responses[callKey(contract, selector)] = scriptedResponse{err: errRejected}
}

func (c *scriptedCaller) fail(contract string, selector []byte) {
	c.responses[callKey(contract, selector)] = scriptedResponse{err: errTransport}
}

func (c *scriptedCaller) callCount(contract string, selector []byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[callKey(contract, selector)]
}

func (c *scriptedCaller) CallContract(networkKey, contract string, data hexutil.Bytes, blockTag string) (string, error) {
	key := callKey(contract, []byte(data[:4]))
	c.mu.Lock()
	c.calls[key]++
	c.mu.Unlock()
	resp, exist := c.responses[key]
	if !exist {
		return "", errRejected
	}
	return resp.data, resp.err
}

func encodeString(value string) string {
	word := common.LeftPadBytes(big.NewInt(32).Bytes(), 32)
	length := common.LeftPadBytes(big.NewInt(int64(len(value))).Bytes(), 32)
	padded := common.RightPadBytes([]byte(value), (len(value)+31)/32*32)
	return common.ToHex(append(append(word, length...), padded...))
}

func encodeAddress(addr string) string {
	return common.ToHex(common.HexToAddress(addr).Hash().Bytes())
}

func encodeUint(v uint64) string {
	return common.ToHex(common.LeftPadBytes(new(big.Int).SetUint64(v).Bytes(), 32))
}

func encodeAddressSlice(addrs []string) string {
	data := common.LeftPadBytes(big.NewInt(32).Bytes(), 32)
	data = append(data, common.LeftPadBytes(big.NewInt(int64(len(addrs))).Bytes(), 32)...)
	for _, addr := range addrs {
		data = append(data, common.HexToAddress(addr).Hash().Bytes()...)
	}
	return common.ToHex(data)
}
