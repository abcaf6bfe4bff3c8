package field

import (
	"fmt"
	"net/url"
)

// Request exposes submitted field values by request attribute.
type Request interface {
	Input(key string) (interface{}, bool)
}

// Input is a Request backed by decoded request data.
type Input map[string]interface{}

// Input returns the value submitted for key.
func (in Input) Input(key string) (interface{}, bool) {
	v, ok := in[key]
	return v, ok
}

// asMapping converts a submitted value into locale/value pairs. The bool is
// false when the value is not a mapping.
func asMapping(v interface{}) (map[string]string, bool) {
	switch m := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case Value:
		return asMapping(map[string]string(m))
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, val := range m {
			out[k] = stringify(val)
		}
		return out, true
	case url.Values:
		out := make(map[string]string, len(m))
		for k := range m {
			out[k] = m.Get(k)
		}
		return out, true
	default:
		return nil, false
	}
}

func stringify(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
