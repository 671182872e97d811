package mqtt

import "encoding/binary"

// remainingLengthEncodedSize returns the number of bytes encodeRemainingLength
// will use for value, per the size table in the MQTT v3.1.1 spec: 1 byte up to
// 127, 2 up to 16383, 3 up to 2097151, 4 up to 268435455.
func remainingLengthEncodedSize(value uint32) int {
	switch {
	case value < 128:
		return 1
	case value < 16384:
		return 2
	case value < 2097152:
		return 3
	default:
		return 4
	}
}

// encodeRemainingLength writes value into b as a 1-4 byte MQTT variable length
// integer: 7 bits per byte, continuation bit (0x80) set on every byte but the
// last. b must have at least remainingLengthEncodedSize(value) bytes.
// Panics if value exceeds maxRemainingLengthValue. Values from a Size*
// function never do; SerializePublishHeader and Header.Encode pass a
// caller-supplied Remaining Length through to this function unchecked.
func encodeRemainingLength(value uint32, b []byte) (n int) {
	if value > maxRemainingLengthValue {
		panic("mqtt: remaining length exceeds protocol maximum")
	}
	for {
		encoded := byte(value % 128)
		value /= 128
		if value > 0 {
			encoded |= 0x80
		}
		b[n] = encoded
		n++
		if value == 0 {
			return n
		}
	}
}

// decodeRemainingLength decodes a Remaining Length varint from the start of b.
// Returns the decoded value, the number of bytes consumed, and StatusBadResponse
// if b runs out before a terminating byte is found, if more than 4 bytes would
// be needed, or if the encoding is non-minimal (a value that could have been
// encoded in fewer bytes must be rejected, matching getRemainingLength's
// anti-smuggling check in mqtt_lightweight.c).
func decodeRemainingLength(b []byte) (value uint32, n int, status Status) {
	var multiplier uint32 = 1
	for n = 0; n < maxRemainingLengthSize; n++ {
		if n >= len(b) {
			return 0, n, StatusBadResponse
		}
		encodedByte := b[n]
		value += uint32(encodedByte&0x7f) * multiplier
		if encodedByte&0x80 == 0 {
			n++
			if remainingLengthEncodedSize(value) != n {
				return 0, n, StatusBadResponse
			}
			return value, n, StatusSuccess
		}
		multiplier *= 128
	}
	return 0, n, StatusBadResponse
}

// encodeString writes a length-prefixed MQTT UTF-8 string: a 2-byte
// big-endian length followed by the raw bytes of s. No UTF-8 validation is
// performed on encode, matching spec.md's scope. Returns the number of bytes
// written; b must be at least len(s)+2 bytes.
func encodeString(s []byte, b []byte) int {
	binary.BigEndian.PutUint16(b, uint16(len(s)))
	copy(b[2:], s)
	return 2 + len(s)
}

// decodeString reads a length-prefixed MQTT UTF-8 string from the start of b,
// returning a slice that aliases b's backing array (zero-copy) and the number
// of bytes consumed. Returns StatusBadResponse if b is shorter than the
// declared length plus its 2-byte prefix.
func decodeString(b []byte) (s []byte, n int, status Status) {
	if len(b) < 2 {
		return nil, 0, StatusBadResponse
	}
	length := int(binary.BigEndian.Uint16(b))
	if len(b) < 2+length {
		return nil, 0, StatusBadResponse
	}
	return b[2 : 2+length], 2 + length, StatusSuccess
}

func encodeUint16(v uint16, b []byte) int {
	binary.BigEndian.PutUint16(b, v)
	return 2
}

func decodeUint16(b []byte) (uint16, Status) {
	if len(b) < 2 {
		return 0, StatusBadResponse
	}
	return binary.BigEndian.Uint16(b), StatusSuccess
}
