package mqtt

import (
	"bytes"
	"io"
)

// Encode writes the fixed header (type/flags byte plus Remaining Length
// varint) to w.
func (hdr Header) Encode(w io.Writer) (int, error) {
	var buf [1 + maxRemainingLengthSize]byte
	n := hdr.Put(buf[:])
	return writeFull(w, buf[:n])
}

// WriteConnect sizes, serializes and writes a complete CONNECT packet to w.
func WriteConnect(w io.Writer, vc *VariablesConnect) (int, error) {
	remaining, total, status := SizeConnect(vc)
	if status != StatusSuccess {
		return 0, status
	}
	buf := make([]byte, total)
	if status := SerializeConnect(vc, remaining, buf); status != StatusSuccess {
		return 0, status
	}
	return writeFull(w, buf)
}

// WritePublish sizes, serializes and writes a complete PUBLISH packet
// (header and payload) to w.
func WritePublish(w io.Writer, vp *VariablesPublish, flags PacketFlags, id uint16) (int, error) {
	remaining, total, status := SizePublish(vp, flags.QoS())
	if status != StatusSuccess {
		return 0, status
	}
	buf := make([]byte, total)
	if status := SerializePublish(vp, flags, id, remaining, buf); status != StatusSuccess {
		return 0, status
	}
	return writeFull(w, buf)
}

// WriteSubscribe sizes, serializes and writes a complete SUBSCRIBE packet to w.
func WriteSubscribe(w io.Writer, vs *VariablesSubscribe, id uint16) (int, error) {
	remaining, total, status := SizeSubscribe(vs)
	if status != StatusSuccess {
		return 0, status
	}
	buf := make([]byte, total)
	if status := SerializeSubscribe(vs, id, remaining, buf); status != StatusSuccess {
		return 0, status
	}
	return writeFull(w, buf)
}

// WriteUnsubscribe sizes, serializes and writes a complete UNSUBSCRIBE packet to w.
func WriteUnsubscribe(w io.Writer, vu *VariablesUnsubscribe, id uint16) (int, error) {
	remaining, total, status := SizeUnsubscribe(vu)
	if status != StatusSuccess {
		return 0, status
	}
	buf := make([]byte, total)
	if status := SerializeUnsubscribe(vu, id, remaining, buf); status != StatusSuccess {
		return 0, status
	}
	return writeFull(w, buf)
}

// WriteAck serializes and writes one of PUBACK/PUBREC/PUBREL/PUBCOMP to w.
func WriteAck(w io.Writer, packetType PacketType, id uint16) (int, error) {
	var buf [4]byte
	if status := SerializeAck(buf[:], packetType, id); status != StatusSuccess {
		return 0, status
	}
	return writeFull(w, buf[:])
}

// WriteSimple writes one of the fixed, payload-less 2-byte packets:
// PINGREQ or DISCONNECT.
func WriteSimple(w io.Writer, packetType PacketType) (int, error) {
	var buf [2]byte
	var status Status
	switch packetType {
	case PacketPingreq:
		status = SerializePingreq(buf[:])
	case PacketDisconnect:
		status = SerializeDisconnect(buf[:])
	default:
		return 0, StatusBadParameter
	}
	if status != StatusSuccess {
		return 0, status
	}
	return writeFull(w, buf[:])
}

// writeFull writes all of src to dst, retrying a short write through
// io.CopyBuffer as the teacher's writeFull helper does.
func writeFull(dst io.Writer, src []byte) (int, error) {
	n, err := dst.Write(src)
	if err == nil && n != len(src) {
		var scratch [256]byte
		i, err := io.CopyBuffer(dst, bytes.NewReader(src[n:]), scratch[:])
		return n + int(i), err
	}
	return n, err
}
