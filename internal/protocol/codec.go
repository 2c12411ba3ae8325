package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/bloops-games/sketchy/internal/bytespool"
)

// MaxStringLen bounds every length-prefixed string on the wire.
const MaxStringLen = 64 << 10

const maxPayloadSize = 16

// Encode returns the wire form of m.
func Encode(m Message) ([]byte, error) {
	buf := bytespool.Get()
	defer bytespool.Put(buf)

	if err := encode(buf, m); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Write encodes m and writes it to w with a single Write call so that
// message-oriented transports see one message per frame.
func Write(w io.Writer, m Message) error {
	buf := bytespool.Get()
	defer bytespool.Put(buf)

	if err := encode(buf, m); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &ConnectionError{Op: "write", Err: err}
	}

	return nil
}

func encode(buf *bytes.Buffer, m Message) error {
	if m == nil {
		return fmt.Errorf("encode: %w", ErrUnknownMessage)
	}

	buf.WriteByte(byte(m.Tag()))

	switch msg := m.(type) {
	case Draw:
		putUint32(buf, msg.X, msg.Y)
	case SetTimeRemaining:
		putUint32(buf, msg.Seconds)
	case SetWordSkeleton:
		return putString(buf, msg.Tag(), msg.Skeleton)
	case Guess:
		return putString(buf, msg.Tag(), msg.Word)
	case GuessResult:
		if !msg.Success {
			buf.WriteByte(0)
			putUint32(buf, 0)
			return nil
		}
		buf.WriteByte(1)
		return putString(buf, msg.Tag(), msg.Word)
	case GameOver:
		return putString(buf, msg.Tag(), msg.Word)
	case SwapRoles:
	case Erase:
		putUint32(buf, msg.X, msg.Y)
	case DrawLine:
		putUint32(buf, msg.X1, msg.Y1, msg.X2, msg.Y2)
	case EraseLine:
		putUint32(buf, msg.X1, msg.Y1, msg.X2, msg.Y2)
	default:
		return fmt.Errorf("encode %T: %w", m, ErrUnknownMessage)
	}

	return nil
}

func putUint32(buf *bytes.Buffer, values ...uint32) {
	var b [4]byte
	for _, v := range values {
		binary.BigEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}
}

func putString(buf *bytes.Buffer, tag Tag, s string) error {
	if len(s) > MaxStringLen {
		return &ProtocolError{Tag: tag, Err: ErrStringTooLong}
	}

	putUint32(buf, uint32(len(s)))
	buf.WriteString(s)
	return nil
}

// Decode blocks until one complete message has been read from r. Read
// failures are returned as *ConnectionError, malformed input as
// *ProtocolError.
func Decode(r io.Reader) (Message, error) {
	var head [1 + maxPayloadSize]byte
	if err := readFull(r, head[:1]); err != nil {
		return nil, err
	}

	tag := Tag(head[0])
	if !tag.Valid() {
		return nil, &ProtocolError{Tag: tag, Err: ErrUnknownTag}
	}

	p := head[1 : 1+payloadSize[tag]]
	if len(p) > 0 {
		if err := readFull(r, p); err != nil {
			return nil, err
		}
	}

	switch tag {
	case TagDraw:
		return Draw{X: u32(p, 0), Y: u32(p, 1)}, nil
	case TagSetTimeRemaining:
		return SetTimeRemaining{Seconds: u32(p, 0)}, nil
	case TagSetWordSkeleton:
		s, err := readString(r, tag, u32(p, 0))
		if err != nil {
			return nil, err
		}
		return SetWordSkeleton{Skeleton: s}, nil
	case TagGuess:
		s, err := readString(r, tag, u32(p, 0))
		if err != nil {
			return nil, err
		}
		return Guess{Word: s}, nil
	case TagGuessResult:
		switch p[0] {
		case 0:
			return GuessResult{}, nil
		case 1:
			s, err := readString(r, tag, u32(p[1:], 0))
			if err != nil {
				return nil, err
			}
			return GuessResult{Success: true, Word: s}, nil
		default:
			return nil, &ProtocolError{Tag: tag, Err: ErrInvalidFlag}
		}
	case TagGameOver:
		s, err := readString(r, tag, u32(p, 0))
		if err != nil {
			return nil, err
		}
		return GameOver{Word: s}, nil
	case TagSwapRoles:
		return SwapRoles{}, nil
	case TagErase:
		return Erase{X: u32(p, 0), Y: u32(p, 1)}, nil
	case TagDrawLine:
		return DrawLine{X1: u32(p, 0), Y1: u32(p, 1), X2: u32(p, 2), Y2: u32(p, 3)}, nil
	case TagEraseLine:
		return EraseLine{X1: u32(p, 0), Y1: u32(p, 1), X2: u32(p, 2), Y2: u32(p, 3)}, nil
	}

	return nil, &ProtocolError{Tag: tag, Err: ErrUnknownTag}
}

// u32 returns the i-th big-endian uint32 of p.
func u32(p []byte, i int) uint32 {
	return binary.BigEndian.Uint32(p[i*4 : i*4+4])
}

func readString(r io.Reader, tag Tag, n uint32) (string, error) {
	if n > MaxStringLen {
		return "", &ProtocolError{Tag: tag, Err: ErrStringTooLong}
	}

	if n == 0 {
		return "", nil
	}

	b := make([]byte, n)
	if err := readFull(r, b); err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", &ProtocolError{Tag: tag, Err: ErrInvalidUTF8}
	}

	return string(b), nil
}

func readFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return &ConnectionError{Op: "read", Err: err}
	}

	return nil
}
