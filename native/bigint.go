package native

import (
	"fmt"
	"math/big"
)

// EncodeBig splits x into a big-endian magnitude and a sign. Zero encodes
// as an empty magnitude with sign 0.
func EncodeBig(x *big.Int) ([]byte, int) {
	sign := x.Sign()
	if sign == 0 {
		return []byte{}, 0
	}
	return x.Bytes(), sign
}

// DecodeBig rebuilds the integer from its magnitude and sign. The sign is
// applied after the magnitude has been reconstructed.
func DecodeBig(mag []byte, sign int) (*big.Int, error) {
	switch sign {
	case 0:
		for _, b := range mag {
			if b != 0 {
				return nil, fmt.Errorf("%w: sign 0 with non-zero magnitude", ErrBadBigInt)
			}
		}
		return new(big.Int), nil
	case 1, -1:
	default:
		return nil, fmt.Errorf("%w: sign %d", ErrBadBigInt, sign)
	}
	x := new(big.Int).SetBytes(mag)
	if x.Sign() == 0 {
		return nil, fmt.Errorf("%w: sign %d with zero magnitude", ErrBadBigInt, sign)
	}
	if sign < 0 {
		x.Neg(x)
	}
	return x, nil
}

func NewBigInt(x *big.Int) BigInt {
	mag, sign := EncodeBig(x)
	return BigInt{Mag: mag, Sign: sign}
}

// Big returns the value of b.
func (b BigInt) Big() (*big.Int, error) {
	return DecodeBig(b.Mag, b.Sign)
}

// Integer returns the smallest native integer node holding x: an Int when
// x fits in 32 bits, a BigInt otherwise.
func Integer(x *big.Int) Node {
	if x.IsInt64() {
		v := x.Int64()
		if int64(int32(v)) == v {
			return Int(v)
		}
	}
	return NewBigInt(x)
}
