package mqtt

// DeserializeConnack parses the variable header of a CONNACK packet out of
// pkt.Data. Requires pkt.RemainingLength == 2 (MQTT_PACKET_CONNACK_REMAINING_LENGTH),
// the reserved top 7 bits of the first byte clear, and a return code in 0-5.
// A non-zero return code yields StatusServerRefused; a session-present flag
// combined with a non-zero return code is itself a protocol violation and
// yields StatusBadResponse, mirroring deserializeConnack in mqtt_lightweight.c.
func DeserializeConnack(pkt PacketInfo) (VariablesConnack, Status) {
	if pkt.RemainingLength != 2 || len(pkt.Data) != 2 {
		return VariablesConnack{}, StatusBadResponse
	}
	ackFlags := pkt.Data[0]
	if ackFlags|0x01 != 0x01 {
		return VariablesConnack{}, StatusBadResponse
	}
	returnCode := ConnectReturnCode(pkt.Data[1])
	if returnCode >= minInvalidReturnCode {
		return VariablesConnack{}, StatusBadResponse
	}
	vc := VariablesConnack{AckFlags: ackFlags, ReturnCode: returnCode}
	if vc.SessionPresent() && returnCode != ReturnCodeConnAccepted {
		return VariablesConnack{}, StatusBadResponse
	}
	if returnCode != ReturnCodeConnAccepted {
		return vc, StatusServerRefused
	}
	return vc, StatusSuccess
}

// DeserializePublish parses the flags, packet identifier (if any) and
// variable header of a PUBLISH packet out of pkt. flags is read from
// pkt.Flags, the type/flags nibble the framer captured; its QoS bits must not
// both be set (value 3), matching processPublishFlags's "Bad QoS: 3" check.
// TopicName and Payload in the returned VariablesPublish alias pkt.Data and
// are only valid for as long as the caller keeps that buffer alive.
func DeserializePublish(pkt PacketInfo) (flags PacketFlags, id uint16, vp VariablesPublish, status Status) {
	flags = pkt.Flags
	if flags&0b0110 == 0b0110 {
		return flags, 0, VariablesPublish{}, StatusBadResponse
	}
	qos := flags.QoS()
	minLen := uint32(3)
	if qos != QoS0 {
		minLen = 5
	}
	if pkt.RemainingLength < minLen || uint32(len(pkt.Data)) != pkt.RemainingLength {
		return flags, 0, VariablesPublish{}, StatusBadResponse
	}
	topic, n, status := decodeString(pkt.Data)
	if status != StatusSuccess {
		return flags, 0, VariablesPublish{}, StatusBadResponse
	}
	rest := pkt.Data[n:]
	if qos != QoS0 {
		if len(rest) < 2 {
			return flags, 0, VariablesPublish{}, StatusBadResponse
		}
		id, status = decodeUint16(rest)
		if status != StatusSuccess || id == 0 {
			return flags, 0, VariablesPublish{}, StatusBadResponse
		}
		rest = rest[2:]
	}
	vp = VariablesPublish{TopicName: topic, Payload: rest}
	return flags, id, vp, StatusSuccess
}

// DeserializeSuback parses the variable header and return-code payload of a
// SUBACK packet out of pkt. Requires RemainingLength >= 3. Each payload byte
// must be one of 0x00, 0x01, 0x02 or 0x80 (subscribe failure); the first
// byte outside that set stops parsing and yields StatusBadResponse, matching
// readSubackStatus in mqtt_lightweight.c.
func DeserializeSuback(pkt PacketInfo) (VariablesSuback, Status) {
	if pkt.RemainingLength < 3 || uint32(len(pkt.Data)) != pkt.RemainingLength {
		return VariablesSuback{}, StatusBadResponse
	}
	id, status := decodeUint16(pkt.Data)
	if status != StatusSuccess || id == 0 {
		return VariablesSuback{}, StatusBadResponse
	}
	codes := pkt.Data[2:]
	vs := VariablesSuback{PacketIdentifier: id, ReturnCodes: make([]QoSLevel, 0, len(codes))}
	refused := false
	for _, b := range codes {
		qos := QoSLevel(b)
		if !qos.IsValid() && qos != QoSSubfail {
			return VariablesSuback{}, StatusBadResponse
		}
		if qos == QoSSubfail {
			refused = true
		}
		vs.ReturnCodes = append(vs.ReturnCodes, qos)
	}
	if refused {
		return vs, StatusServerRefused
	}
	return vs, StatusSuccess
}

// DeserializeAck parses the packet identifier out of a 4-byte acknowledgement
// packet: PUBACK, PUBREC, PUBREL, PUBCOMP or UNSUBACK. Requires
// RemainingLength == 2 and a non-zero packet identifier.
func DeserializeAck(pkt PacketInfo) (id uint16, status Status) {
	switch pkt.Type {
	case PacketPuback, PacketPubrec, PacketPubrel, PacketPubcomp, PacketUnsuback:
		// Every type accepted above carries a packet identifier and nothing
		// else in its variable header; cross-check that against
		// containsPacketIdentifier rather than letting this switch drift out
		// of sync with it.
		if !pkt.Type.containsPacketIdentifier() {
			panic("mqtt: ack packet type accepted by DeserializeAck but containsPacketIdentifier disagrees")
		}
	default:
		return 0, StatusBadParameter
	}
	if pkt.RemainingLength != 2 || len(pkt.Data) != 2 {
		return 0, StatusBadResponse
	}
	id, status = decodeUint16(pkt.Data)
	if status != StatusSuccess || id == 0 {
		return 0, StatusBadResponse
	}
	return id, StatusSuccess
}

// DeserializePingresp validates an (empty) PINGRESP packet.
func DeserializePingresp(pkt PacketInfo) Status {
	if pkt.RemainingLength != 0 || len(pkt.Data) != 0 {
		return StatusBadResponse
	}
	return StatusSuccess
}
