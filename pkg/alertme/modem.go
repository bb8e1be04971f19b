package alertme

import "context"

// Message is an outbound application-layer unit: addressing plus payload,
// independent of its destination (§3).
type Message struct {
	Profile      uint16
	Cluster      uint16
	SrcEndpoint  uint8
	DestEndpoint uint8
	Data         []byte
}

// Clone returns a frame with its own backing array, so a caller that
// mutates Data cannot affect anyone else holding the same Message.
func (m Message) Clone() Message {
	data := make([]byte, len(m.Data))
	copy(data, m.Data)
	m.Data = data
	return m
}

// Frame is an inbound record as reported by the modem collaborator (§6).
// Only frames with ID "rx_explicit" receive protocol handling.
type Frame struct {
	ID              string
	Profile         uint16
	Cluster         uint16
	SourceAddrLong  AddrLong
	SourceAddrShort AddrShort
	RFData          []byte
}

// IsExplicitRX reports whether f should be handed to the dispatcher.
func (f Frame) IsExplicitRX() bool {
	return f.ID == "rx_explicit"
}

// Modem is the external collaborator contract (§6): a serial/radio
// transport the engine neither owns nor implements. The engine only ever
// sends fully-formed Messages and consumes Frames from Frames().
type Modem interface {
	// Send transmits msg to the given destination, returning the modem's
	// own result verbatim (ErrModem wraps non-nil errors at the call site).
	Send(ctx context.Context, msg Message, destLong AddrLong, destShort AddrShort) error

	// Frames returns a channel of inbound frames, closed when the modem is
	// done (link closed, context canceled).
	Frames() <-chan Frame
}
