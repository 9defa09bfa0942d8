package vals

import (
	"math"
	"math/big"
	"reflect"
	"strconv"

	"src.strided.sh/pkg/errs"
)

// IndexConverter wraps the AsIndex method.
type IndexConverter interface {
	// AsIndex converts the receiver to a machine integer suitable for use as
	// an index.
	AsIndex() (int, error)
}

// ToIndex converts a value to a machine integer. It is implemented for all the
// builtin Go integer types and types defined on them, *big.Int, and types
// satisfying the IndexConverter interface. Other values, including floats, bools and numeric strings, are
// rejected with errs.BadIndex. Integers that don't fit in an int are rejected
// with errs.OutOfRange.
func ToIndex(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, indexOutOfRange(strconv.FormatInt(v, 10))
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, indexOutOfRange(strconv.FormatUint(uint64(v), 10))
		}
		return int(v), nil
	case uint:
		return fromUint64(uint64(v))
	case uint64:
		return fromUint64(v)
	case uintptr:
		return fromUint64(uint64(v))
	case *big.Int:
		if !v.IsInt64() {
			return 0, indexOutOfRange(v.String())
		}
		return ToIndex(v.Int64())
	case IndexConverter:
		return v.AsIndex()
	}
	// Defined types like "type myInt int".
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ToIndex(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint64(rv.Uint())
	}
	return 0, errs.BadIndex{Kind: Kind(v)}
}

func fromUint64(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, indexOutOfRange(strconv.FormatUint(u, 10))
	}
	return int(u), nil
}

func indexOutOfRange(actual string) error {
	return errs.OutOfRange{
		What:     "index",
		ValidLow: strconv.Itoa(math.MinInt), ValidHigh: strconv.Itoa(math.MaxInt),
		Actual: actual}
}

// Converts any Go integer value or *big.Int to a *big.Int. The second return
// value reports whether v is an integer at all.
func toBig(v any) (*big.Int, bool) {
	switch v := v.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return big.NewInt(int64(v)), true
	case uint16:
		return big.NewInt(int64(v)), true
	case uint32:
		return big.NewInt(int64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case uintptr:
		return new(big.Int).SetUint64(uint64(v)), true
	case *big.Int:
		return v, true
	}
	return nil, false
}
