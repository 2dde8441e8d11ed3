package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The checkout boundary receives loosely typed JSON. Empty and nil
// values default to zero; values that claim to be numbers but are
// not degrade the whole computation (never panic, never guess).

// ComputeStrategyRaw coerces untyped subtotal / order count values
// before delegating to ComputeStrategy.
func (e *Engine) ComputeStrategyRaw(subtotal, orderCount any, cart []CartLine) Result {
	sub, err := coerceFloat(subtotal)
	if err != nil {
		return Result{Error: fmt.Sprintf("invalid subtotal: %v", err)}
	}

	count, err := coerceInt(orderCount)
	if err != nil {
		return Result{Error: fmt.Sprintf("invalid order count: %v", err)}
	}

	return e.ComputeStrategy(sub, count, cart)
}

func coerceFloat(v any) (float64, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case json.Number:
		return value.Float64()
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, nil
		}
		return strconv.ParseFloat(trimmed, 64)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}

func coerceInt(v any) (int, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, nil
		}
		return strconv.Atoi(trimmed)
	default:
		return 0, fmt.Errorf("unsupported integer type %T", v)
	}
}
