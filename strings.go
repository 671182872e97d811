package mqtt

// String-typed convenience constructors. These call bytesFromString, whose
// implementation is chosen by build tag: the default build heap-allocates a
// copy (safe.go), while a build tagged "unsafe" or "tinygo" aliases the
// string's backing array directly without a copy (unsafe.go) for callers on
// a tight memory budget who can guarantee the string outlives the packet.

// SetClientID sets vc.ClientID from a Go string.
func (vc *VariablesConnect) SetClientID(id string) { vc.ClientID = bytesFromString(id) }

// SetWill sets the Will topic and message from Go strings and marks the Will flag.
func (vc *VariablesConnect) SetWill(topic, message string, qos QoSLevel, retain bool) {
	vc.WillFlagSet = true
	vc.WillTopic = bytesFromString(topic)
	vc.WillMessage = bytesFromString(message)
	vc.WillQoS = qos
	vc.WillRetain = retain
}

// SetCredentials sets the username and password from Go strings.
func (vc *VariablesConnect) SetCredentials(username, password string) {
	vc.Username = bytesFromString(username)
	vc.Password = bytesFromString(password)
}

// NewPublish builds a VariablesPublish from a Go string topic and a byte payload.
func NewPublish(topic string, payload []byte) *VariablesPublish {
	return &VariablesPublish{TopicName: bytesFromString(topic), Payload: payload}
}

// NewSubscribeRequest builds a SubscribeRequest from a Go string topic filter.
func NewSubscribeRequest(topicFilter string, qos QoSLevel) SubscribeRequest {
	return SubscribeRequest{TopicFilter: bytesFromString(topicFilter), QoS: qos}
}

// NewUnsubscribeTopics builds the Topics payload of a VariablesUnsubscribe from Go strings.
func NewUnsubscribeTopics(topics ...string) [][]byte {
	out := make([][]byte, len(topics))
	for i, t := range topics {
		out[i] = bytesFromString(t)
	}
	return out
}
