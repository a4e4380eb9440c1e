package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseContractBinding(t *testing.T) {
	req := require.New(t)

	raw := []byte(`{
		"address": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"abi": [
			{"type":"function","name":"getListPrice","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
			{"type":"function","name":"createToken","stateMutability":"payable","inputs":[{"type":"string","name":"tokenURI"},{"type":"uint256","name":"price"}],"outputs":[{"type":"uint256"}]}
		]
	}`)

	b, err := ParseContractBinding(raw)
	req.NoError(err)
	req.Equal(Address("0x5FbDB2315678afecb367f032d93F642f64180aa3"), b.Address)
	_, ok := b.Abi.Methods["getListPrice"]
	req.True(ok)
	_, ok = b.Abi.Methods["createToken"]
	req.True(ok)
}

func TestParseContractBindingBadAbi(t *testing.T) {
	req := require.New(t)

	_, err := ParseContractBinding([]byte(`{"address":"0x1","abi":{"not":"an abi"}}`))
	req.Error(err)
}

func TestParseContractBindingBadJson(t *testing.T) {
	req := require.New(t)

	_, err := ParseContractBinding([]byte(`{`))
	req.Error(err)
}
