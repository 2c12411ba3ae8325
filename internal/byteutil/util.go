package byteutil

import "encoding/binary"

// EncodeUint64 returns the big-endian form of v, usable as an ordered bbolt key.
func EncodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// DecodeUint64 is the inverse of EncodeUint64. Short input decodes to 0.
func DecodeUint64(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}

	return binary.BigEndian.Uint64(b)
}
