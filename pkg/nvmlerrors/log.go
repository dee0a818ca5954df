package nvmlerrors

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = &Error{}

// MarshalLogObject emits the error as a structured zap object: the kind name,
// the payload fields meaningful for that kind, and the underlying cause when
// one exists.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", e.Kind.String())
	switch e.Kind {
	case KindStringTooLong:
		enc.AddInt("max_len", e.MaxLen)
		enc.AddInt("actual_len", e.ActualLen)
	case KindInsufficientSize:
		enc.AddInt("required_size", e.RequiredSize)
	case KindUnexpectedVariant:
		enc.AddUint64("value", e.Value)
	}
	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}
	return nil
}

// ZapField wraps err as a structured zap field named "error". Errors produced
// by this package are logged as objects; anything else falls back to
// zap.Error.
func ZapField(err error) zap.Field {
	if e, ok := err.(*Error); ok {
		return zap.Object("error", e)
	}
	return zap.Error(err)
}
