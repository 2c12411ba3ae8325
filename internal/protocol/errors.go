package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTag     = errors.New("unknown message tag")
	ErrStringTooLong  = errors.New("string exceeds maximum length")
	ErrInvalidUTF8    = errors.New("string is not valid utf-8")
	ErrInvalidFlag    = errors.New("invalid success flag")
	ErrUnknownMessage = errors.New("unknown message type")
)

// ProtocolError reports bytes that cannot be a valid message. The stream is
// no longer trustworthy after one.
type ProtocolError struct {
	Tag Tag
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: tag %d (%s): %v", uint8(e.Tag), e.Tag, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// ConnectionError reports a failed read, write, accept or dial.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err ends the peer connection.
func IsFatal(err error) bool {
	var pErr *ProtocolError
	var cErr *ConnectionError
	return errors.As(err, &pErr) || errors.As(err, &cErr)
}
