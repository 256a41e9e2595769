// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
)

// Keys the homework_statuses API must return.
const (
	KeyHomeworks   = "homeworks"
	KeyCurrentDate = "current_date"
)

var ErrResponseNotObject = fmt.Errorf("API response is not a JSON object")
var ErrMissingKey = fmt.Errorf("missing key in API response")
var ErrWrongType = fmt.Errorf("unexpected value type in API response")

// Response is a validated answer of the homework_statuses endpoint.
// Homeworks are kept undecoded; only the first one is ever parsed.
type Response struct {
	Homeworks   []any
	CurrentDate int64
}

// CheckResponse validates a decoded JSON body. Numbers are expected as
// json.Number (decoder with UseNumber) but float64 is accepted as well.
func CheckResponse(body any) (*Response, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, ErrResponseNotObject
	}

	rawHomeworks, ok := obj[KeyHomeworks]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, KeyHomeworks)
	}
	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, want array", ErrWrongType, KeyHomeworks, rawHomeworks)
	}

	rawDate, ok := obj[KeyCurrentDate]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, KeyCurrentDate)
	}
	currentDate, ok := asInt64(rawDate)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %v, want integer", ErrWrongType, KeyCurrentDate, rawDate)
	}

	return &Response{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

// Latest returns the most recent submission, if any.
func (r *Response) Latest() (any, bool) {
	if len(r.Homeworks) == 0 {
		return nil, false
	}
	return r.Homeworks[0], true
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		i := int64(n)
		return i, float64(i) == n
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
