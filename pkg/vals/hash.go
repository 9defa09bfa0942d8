package vals

import (
	"math"

	"src.strided.sh/pkg/errs"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the value hash of the receiver. Two Equal values must have
	// the same hash. Types whose values must not be used as keys return a
	// non-nil error.
	Hash() (uint32, error)
}

// Hash returns the 32-bit value hash of a value. It is implemented for nil,
// bool, string, all integer types, float64, the List type, and types
// satisfying the Hasher interface. Integers that are Equal across types hash
// the same. For other values, it returns 0 (which is OK in terms of
// correctness).
func Hash(v any) (uint32, error) {
	if i, ok := toBig(v); ok {
		if i.IsInt64() {
			return hashUint64(uint64(i.Int64())), nil
		}
		h := djbCombine(djbInit, uint32(i.Sign()))
		for _, word := range i.Bits() {
			h = djbCombine(h, hashUint64(uint64(word)))
		}
		return h, nil
	}
	switch v := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case float64:
		return hashUint64(math.Float64bits(v)), nil
	case string:
		return hashString(v), nil
	case Hasher:
		return v.Hash()
	}
	return 0, nil
}

// Hash implements Hasher. A list is unhashable if any of its elements is.
func (l List) Hash() (uint32, error) {
	h := djbInit
	for _, e := range l.elems {
		eh, err := Hash(e)
		if err != nil {
			return 0, err
		}
		h = djbCombine(h, eh)
	}
	return h, nil
}

// Unhashable returns the error a Hasher should return when its values must not
// be hashed.
func Unhashable(v any) error { return errs.Unhashable{Kind: Kind(v)} }

const djbInit uint32 = 5381

func djbCombine(acc, h uint32) uint32 { return mul33(acc) + h }

func mul33(u uint32) uint32 { return u<<5 + u }

func hashUint64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func hashString(s string) uint32 {
	h := djbInit
	for i := 0; i < len(s); i++ {
		h = djbCombine(h, uint32(s[i]))
	}
	return h
}
