// Package result defines the response envelopes shared by every endpoint.
//
// A Result always carries success, code, message and timestamp. Data is only
// serialized when it holds a non-zero value, so an absent payload never shows
// up as "data": null.
package result

import "time"

const (
	CodeSuccess = 200
	CodeFailure = 500

	MessageSuccess = "success"
	MessageFailure = "failure"
)

// Result is the uniform envelope returned by every endpoint.
type Result[T any] struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data,omitzero"`
	Timestamp int64  `json:"timestamp"`
}

func newResult[T any](success bool, code int, message string, data T) Result[T] {
	return Result[T]{
		Success:   success,
		Code:      code,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Success wraps data with the default success code and message.
func Success[T any](data T) Result[T] {
	return newResult(true, CodeSuccess, MessageSuccess, data)
}

// SuccessMessage wraps data with a custom success message.
func SuccessMessage[T any](message string, data T) Result[T] {
	return newResult(true, CodeSuccess, message, data)
}

// Message is a successful envelope without payload.
func Message(message string) Result[any] {
	return newResult[any](true, CodeSuccess, message, nil)
}

// Error is a failed envelope without payload.
func Error(code int, message string) Result[any] {
	if code == 0 {
		code = CodeFailure
	}
	if message == "" {
		message = MessageFailure
	}
	return newResult[any](false, code, message, nil)
}

// ErrorWithData is a failed envelope that still carries a payload, e.g.
// per-field validation details.
func ErrorWithData[T any](code int, message string, data T) Result[T] {
	return newResult(false, code, message, data)
}

// Of maps a boolean outcome onto the default success or failure envelope.
func Of(ok bool, message string) Result[any] {
	if ok {
		if message == "" {
			message = MessageSuccess
		}
		return Message(message)
	}
	return Error(CodeFailure, message)
}
