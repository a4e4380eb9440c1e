package unit

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/nftmart/goclient/domain"
)

// EtherDecimals is the fixed-point scale of the chain's native unit.
const EtherDecimals = 18

// Converter translates between human decimal price strings and the
// contract's fixed-point integer representation at a fixed scale. It never
// rounds: input carrying more fractional digits than the scale is rejected.
type Converter struct {
	decimals int32
}

func NewConverter(decimals int32) *Converter {
	return &Converter{decimals: decimals}
}

// ToBaseUnits parses a decimal string into scaled integer units.
// Returns domain.ErrInvalidNumberFormat for unparseable input and
// domain.ErrPrecision when the value is not exactly representable at the
// converter's scale.
func (c *Converter) ToBaseUnits(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	shifted := d.Shift(c.decimals)
	if !shifted.IsInteger() {
		return nil, domain.ErrPrecision
	}
	return shifted.BigInt(), nil
}

// FromBaseUnits formats scaled integer units back into a decimal string.
// Inverse of ToBaseUnits for any value exactly representable at the scale.
func (c *Converter) FromBaseUnits(v *big.Int) string {
	return decimal.NewFromBigInt(v, -c.decimals).String()
}
