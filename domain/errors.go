package domain

import "errors"

var (
	// ErrValidation will throw if user input is incomplete or malformed
	ErrValidation = errors.New("incomplete or invalid input")
	// ErrUpload will throw if pinning content to off-chain storage fails
	ErrUpload = errors.New("content upload failed")
	// ErrConnection will throw if no wallet account is available
	ErrConnection = errors.New("wallet unavailable")
	// ErrSubmit will throw if the signed transaction is refused by the node
	ErrSubmit = errors.New("transaction submission failed")
	// ErrChainReverted will throw if a mined transaction reverted on-chain
	ErrChainReverted = errors.New("transaction reverted")
	// ErrPrecision will throw if a price has more fractional digits than the chain scale
	ErrPrecision = errors.New("price precision exceeds chain scale")
	// ErrFetch will throw if the marketplace contract can not be read at all
	ErrFetch = errors.New("marketplace unreachable")

	ErrNotFound            = errors.New("requested item is not found")
	ErrBadParamInput       = errors.New("given param is not valid")
	ErrUnsupportedSchema   = errors.New("unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("invalid address")
)
