package mqtt

// validateBuffer returns StatusNoMemory if buf cannot hold a packet of the
// given total size.
func validateBuffer(buf []byte, total uint32) Status {
	if uint32(len(buf)) < total {
		return StatusNoMemory
	}
	return StatusSuccess
}

// SerializeConnect writes a complete CONNECT packet into buf. remaining must
// be the value returned by a prior call to SizeConnect(vc); callers that skip
// sizing and pass a stale or fabricated value get undefined output, per
// spec.md's error-handling contract.
func SerializeConnect(vc *VariablesConnect, remaining uint32, buf []byte) Status {
	if vc == nil || len(vc.ClientID) == 0 {
		return StatusBadParameter
	}
	total, status := packetSize(remaining, maxConnectPacketSize)
	if status != StatusSuccess {
		return status
	}
	if status := validateBuffer(buf, total); status != StatusSuccess {
		return status
	}
	hdr := newHeader(PacketConnect, 0, remaining)
	n := hdr.Put(buf)

	n += copy(buf[n:], "\x00\x04MQTT\x04")
	buf[n] = vc.Flags()
	n++
	n += encodeUint16(vc.KeepAlive, buf[n:])

	n += encodeString(vc.ClientID, buf[n:])
	if vc.WillFlag() {
		n += encodeString(vc.WillTopic, buf[n:])
		n += encodeString(vc.WillMessage, buf[n:])
	}
	if len(vc.Username) != 0 {
		n += encodeString(vc.Username, buf[n:])
		if len(vc.Password) != 0 {
			n += encodeString(vc.Password, buf[n:])
		}
	}
	return StatusSuccess
}

// serializePublishCommon writes the PUBLISH fixed header and variable header
// (topic name, and packet identifier when qos != QoS0) into buf, returning
// the number of bytes written. Shared by SerializePublish and
// SerializePublishHeader, mirroring serializePublishCommon's role in
// mqtt_lightweight.c.
func serializePublishCommon(vp *VariablesPublish, flags PacketFlags, id uint16, remaining uint32, buf []byte) (int, Status) {
	qos := flags.QoS()
	if qos == QoS0 && flags.Dup() {
		return 0, StatusBadParameter
	}
	if qos != QoS0 && id == 0 {
		return 0, StatusBadParameter
	}
	hdr := newHeader(PacketPublish, flags, remaining)
	n := hdr.Put(buf)
	n += encodeString(vp.TopicName, buf[n:])
	if qos != QoS0 {
		n += encodeUint16(id, buf[n:])
	}
	return n, StatusSuccess
}

// SerializePublish writes a complete PUBLISH packet, header and payload, into
// buf. remaining must come from a prior SizePublish(vp, flags.QoS()) call.
func SerializePublish(vp *VariablesPublish, flags PacketFlags, id uint16, remaining uint32, buf []byte) Status {
	if vp == nil || len(vp.TopicName) == 0 {
		return StatusBadParameter
	}
	total, status := packetSize(remaining, 0)
	if status != StatusSuccess {
		return status
	}
	if status := validateBuffer(buf, total); status != StatusSuccess {
		return status
	}
	n, status := serializePublishCommon(vp, flags, id, remaining, buf)
	if status != StatusSuccess {
		return status
	}
	copy(buf[n:], vp.Payload)
	return StatusSuccess
}

// SerializePublishHeader writes only the PUBLISH fixed header and variable
// header into buf, omitting the payload, and returns the number of header
// bytes written. This lets a caller stream a large payload directly to a
// transport without copying it into the same buffer as the header, mirroring
// MQTT_SerializePublishHeader's serializePayload=false path in
// mqtt_lightweight.c.
func SerializePublishHeader(vp *VariablesPublish, flags PacketFlags, id uint16, remaining uint32, buf []byte) (headerLen int, status Status) {
	if vp == nil || len(vp.TopicName) == 0 {
		return 0, StatusBadParameter
	}
	qos := flags.QoS()
	variableHeaderLen := 2 + len(vp.TopicName)
	if qos != QoS0 {
		variableHeaderLen += 2
	}
	headerTotal := 1 + remainingLengthEncodedSize(remaining) + variableHeaderLen
	if len(buf) < headerTotal {
		return 0, StatusNoMemory
	}
	return serializePublishCommon(vp, flags, id, remaining, buf)
}

// SerializeSubscribe writes a complete SUBSCRIBE packet into buf. remaining
// must come from a prior SizeSubscribe(vs) call. id must be non-zero.
func SerializeSubscribe(vs *VariablesSubscribe, id uint16, remaining uint32, buf []byte) Status {
	if vs == nil || len(vs.TopicFilters) == 0 || id == 0 {
		return StatusBadParameter
	}
	total, status := packetSize(remaining, 0)
	if status != StatusSuccess {
		return status
	}
	if status := validateBuffer(buf, total); status != StatusSuccess {
		return status
	}
	hdr := newHeader(PacketSubscribe, flagsPubrelSubUnsub, remaining)
	n := hdr.Put(buf)
	n += encodeUint16(id, buf[n:])
	for _, f := range vs.TopicFilters {
		n += encodeString(f.TopicFilter, buf[n:])
		buf[n] = byte(f.QoS & 0b11)
		n++
	}
	return StatusSuccess
}

// SerializeUnsubscribe writes a complete UNSUBSCRIBE packet into buf.
// remaining must come from a prior SizeUnsubscribe(vu) call. id must be
// non-zero.
func SerializeUnsubscribe(vu *VariablesUnsubscribe, id uint16, remaining uint32, buf []byte) Status {
	if vu == nil || len(vu.Topics) == 0 || id == 0 {
		return StatusBadParameter
	}
	total, status := packetSize(remaining, 0)
	if status != StatusSuccess {
		return status
	}
	if status := validateBuffer(buf, total); status != StatusSuccess {
		return status
	}
	hdr := newHeader(PacketUnsubscribe, flagsPubrelSubUnsub, remaining)
	n := hdr.Put(buf)
	n += encodeUint16(id, buf[n:])
	for _, topic := range vu.Topics {
		n += encodeString(topic, buf[n:])
	}
	return StatusSuccess
}

// SerializeAck writes a 4-byte acknowledgement packet (PUBACK, PUBREC,
// PUBREL or PUBCOMP) into buf. Returns StatusBadParameter for any other
// packet type, or if id is zero; UNSUBACK is never client-serialized, only
// server-serialized, matching MQTT_SerializeAck's scope in
// mqtt_lightweight.c.
func SerializeAck(buf []byte, packetType PacketType, id uint16) Status {
	if id == 0 {
		return StatusBadParameter
	}
	if len(buf) < 4 {
		return StatusNoMemory
	}
	var flags PacketFlags
	switch packetType {
	case PacketPuback, PacketPubrec, PacketPubcomp:
	case PacketPubrel:
		flags = flagsPubrelSubUnsub
	default:
		return StatusBadParameter
	}
	hdr := newHeader(packetType, flags, 2)
	n := hdr.Put(buf)
	encodeUint16(id, buf[n:])
	return StatusSuccess
}

// SerializeDisconnect writes the constant 2-byte DISCONNECT packet into buf.
func SerializeDisconnect(buf []byte) Status {
	if len(buf) < 2 {
		return StatusNoMemory
	}
	newHeader(PacketDisconnect, 0, 0).Put(buf)
	return StatusSuccess
}

// SerializePingreq writes the constant 2-byte PINGREQ packet into buf.
func SerializePingreq(buf []byte) Status {
	if len(buf) < 2 {
		return StatusNoMemory
	}
	newHeader(PacketPingreq, 0, 0).Put(buf)
	return StatusSuccess
}
