package domain

import (
	"bytes"
	"encoding/json"
	"os"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractBinding is the deploy-time artifact describing where the
// marketplace contract lives and how to call it. The deploy script writes it
// as {"address": "0x...", "abi": [...]}.
type ContractBinding struct {
	Address Address    `json:"address"`
	Abi     ethabi.ABI `json:"-"`

	RawAbi json.RawMessage `json:"abi"`
}

// LoadContractBinding reads the deploy artifact and parses its ABI.
func LoadContractBinding(path string) (*ContractBinding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContractBinding(raw)
}

// ParseContractBinding parses an in-memory deploy artifact.
func ParseContractBinding(raw []byte) (*ContractBinding, error) {
	b := &ContractBinding{}
	if err := json.Unmarshal(raw, b); err != nil {
		return nil, err
	}
	parsed, err := ethabi.JSON(bytes.NewReader(b.RawAbi))
	if err != nil {
		return nil, err
	}
	b.Abi = parsed
	return b, nil
}
