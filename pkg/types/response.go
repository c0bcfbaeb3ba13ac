package types

import "encoding/json"

// Response is the uniform envelope every tracklog API payload travels in.
// Success is the discriminant: exactly one of Data/Error is meaningful per
// instance, and serialization only ever emits the field matching the
// discriminant. Envelopes are values; once built they are never mutated.
type Response[T any] struct {
	Success   bool
	Data      T
	Error     string
	Timestamp Timestamp
}

// SuccessResponse wraps data in a success envelope stamped with the current
// instant. The payload is stored as-is, so reference payloads keep their
// identity instead of being copied. Construction never fails, nil payloads
// included.
func SuccessResponse[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data, Timestamp: Now()}
}

// ErrorResponse wraps message in an error envelope stamped with the current
// instant. An empty message is accepted and produces a valid envelope.
// TODO: reject empty messages once every service sends a real one.
func ErrorResponse[T any](message string) Response[T] {
	return Response[T]{Success: false, Error: message, Timestamp: Now()}
}

// IsSuccessResponse reports whether r is the success variant. Only the
// discriminant is inspected, so hand-assembled envelopes behave the same as
// constructor output.
func IsSuccessResponse[T any](r Response[T]) bool {
	return r.Success
}

// IsErrorResponse reports whether r is the error variant. For any well-formed
// envelope exactly one of IsSuccessResponse and IsErrorResponse is true.
func IsErrorResponse[T any](r Response[T]) bool {
	return !r.Success
}

type successBody[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Timestamp Timestamp `json:"timestamp"`
}

type errorBody struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp Timestamp `json:"timestamp"`
}

// MarshalJSON emits only the variant selected by the discriminant: a success
// envelope never carries an error key and an error envelope never carries a
// data key, not even as null. The error key stays present when the message is
// empty.
func (r Response[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(successBody[T]{Success: true, Data: r.Data, Timestamp: r.Timestamp})
	}
	return json.Marshal(errorBody{Success: false, Error: r.Error, Timestamp: r.Timestamp})
}

// UnmarshalJSON restores the variant matching the discriminant and leaves the
// other field at its zero value.
func (r *Response[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success   bool            `json:"success"`
		Data      json.RawMessage `json:"data"`
		Error     string          `json:"error"`
		Timestamp Timestamp       `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Response[T]{Success: raw.Success, Timestamp: raw.Timestamp}
	if !raw.Success {
		r.Error = raw.Error
		return nil
	}
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, &r.Data); err != nil {
			return err
		}
	}
	return nil
}
