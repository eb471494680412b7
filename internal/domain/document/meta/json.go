package meta

import (
	"encoding/json"
	"fmt"
	"time"
)

// MarshalJSON renders the value as its natural JSON type.
// Time values serialize as RFC3339 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindTime:
		return json.Marshal(v.ts.UTC().Format(time.RFC3339))
	case KindStringList:
		return json.Marshal(v.list)
	}
	return []byte("null"), nil
}

// UnmarshalJSON maps JSON scalars and string arrays onto the variant.
// Strings always decode as KindString; time values are constructed
// explicitly by callers, never inferred from string shape.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode metadata value: %w", err)
	}
	switch t := raw.(type) {
	case string:
		*v = String(t)
	case float64:
		*v = Number(t)
	case bool:
		*v = Bool(t)
	case []any:
		list := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("metadata list values must be strings, got %T", e)
			}
			list = append(list, s)
		}
		*v = StringList(list)
	case nil:
		*v = Value{}
	default:
		return fmt.Errorf("unsupported metadata value type %T", t)
	}
	return nil
}
