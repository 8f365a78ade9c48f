package reit

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Fixed ABI of the OlympusREIT share contract. The contract is an external,
// pre-deployed artifact; this table is the complete surface the gateway uses.
const contractABIJSON = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"sharePrice","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"maxSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"propertyAddress","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"withdrawableRentOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"checkSolvency","stateMutability":"view","inputs":[],"outputs":[{"name":"isSolvent","type":"bool"},{"name":"deficitOrSurplus","type":"int256"}]},
	{"type":"function","name":"buyShares","stateMutability":"payable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"sellShares","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"claimRent","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"distributeRent","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"injectLiquidity","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"adjustSharePrice","stateMutability":"nonpayable","inputs":[{"name":"newPrice","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"emergencyWithdraw","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]}
]`

var contractABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(contractABIJSON))
	if err != nil {
		panic("reit: bad contract ABI: " + err.Error())
	}
	return parsed
}()

// Contract binds the fixed ABI to a deployed address.
type Contract struct {
	Address common.Address
	abi     abi.ABI
}

func NewContract(addr common.Address) *Contract {
	return &Contract{Address: addr, abi: contractABI}
}

// Pack encodes selector + arguments for a call to the named function.
func (c *Contract) Pack(method string, args ...any) ([]byte, error) {
	return c.abi.Pack(method, args...)
}

// Unpack decodes the raw return data of the named view function.
func (c *Contract) Unpack(method string, data []byte) ([]any, error) {
	return c.abi.Unpack(method, data)
}
