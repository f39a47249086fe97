package value

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnsupportedType is returned when decoded data contains a type that has no Value variant.
var ErrUnsupportedType = errors.New("unsupported value type")

// Of converts decoded Go data into a Value.
//
// Maps keyed by something other than string have their keys converted with fmt.Sprint.
// Every integer width becomes Int; unsigned integers that overflow int64 become Float.
// Scalars implementing encoding.TextMarshaler (timestamps, TOML local dates) become String.
// The result never shares maps or slices with the input.
func Of(data any) (Value, error) {
	switch typed := data.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Clone(typed), nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case int:
		return Int(typed), nil
	case int8:
		return Int(typed), nil
	case int16:
		return Int(typed), nil
	case int32:
		return Int(typed), nil
	case int64:
		return Int(typed), nil
	case uint:
		return ofUnsigned(uint64(typed)), nil
	case uint8:
		return Int(typed), nil
	case uint16:
		return Int(typed), nil
	case uint32:
		return Int(typed), nil
	case uint64:
		return ofUnsigned(typed), nil
	case float32:
		return Float(typed), nil
	case float64:
		return Float(typed), nil
	case json.Number:
		return ofNumber(typed)
	case []any:
		return ofSlice(typed)
	case map[string]any:
		return ofStringMap(typed)
	case map[any]any:
		return ofAnyMap(typed)
	case encoding.TextMarshaler:
		text, err := typed.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("marshal %T as text: %w", data, err)
		}

		return String(text), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}
}

// MapOf converts a decoded document into a Map. A nil document yields an empty Map.
func MapOf(data map[string]any) (Map, error) {
	if data == nil {
		return Map{}, nil
	}

	return ofStringMap(data)
}

func ofUnsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(u)
	}

	return Int(u)
}

func ofNumber(number json.Number) (Value, error) {
	if i, err := strconv.ParseInt(number.String(), 10, 64); err == nil {
		return Int(i), nil
	}

	f, err := number.Float64()
	if err != nil {
		return nil, fmt.Errorf("parse number %q: %w", number.String(), err)
	}

	return Float(f), nil
}

func ofSlice(items []any) (List, error) {
	out := make(List, len(items))

	for i, item := range items {
		converted, err := Of(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}

		out[i] = converted
	}

	return out, nil
}

func ofStringMap(data map[string]any) (Map, error) {
	out := make(Map, len(data))

	for key, item := range data {
		converted, err := Of(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		out[key] = converted
	}

	return out, nil
}

func ofAnyMap(data map[any]any) (Map, error) {
	out := make(Map, len(data))

	for key, item := range data {
		name := fmt.Sprint(key)

		converted, err := Of(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		out[name] = converted
	}

	return out, nil
}
