// Package apperr carries the error kinds the certificate pipeline reports to callers.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnknown             Kind = ""
	KindInvalidArgument     Kind = "invalid_argument"
	KindNotFound            Kind = "not_found"
	KindAssetUnavailable    Kind = "asset_unavailable"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func AssetUnavailable(err error, format string, args ...any) error {
	return &Error{Kind: KindAssetUnavailable, Msg: fmt.Sprintf(format, args...), Err: err}
}

func UpstreamUnavailable(err error, format string, args ...any) error {
	return &Error{Kind: KindUpstreamUnavailable, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the outermost *Error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
