package domain

import (
	"strings"
)

type ChainId int32

type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type BlockNumber uint64

type TxHash string

func (h TxHash) String() string {
	return string(h)
}
