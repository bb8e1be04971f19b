package serialmodem

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/alertme/hub/pkg/alertme"
	"github.com/rs/zerolog"
)

// Modem implements alertme.Modem over a real serial-attached XBee-style
// radio: it owns the serial port, the API frame delimiting/checksum, and
// translates between alertme.Message/Frame and wire bytes. This is the
// concrete transport the core engine's §6 "Modem collaborator" contract
// describes in the abstract.
type Modem struct {
	port *Port
	log  zerolog.Logger

	writeMu  sync.Mutex
	frameID  atomic.Uint32
	recvChan chan alertme.Frame

	stopChan chan struct{}
	stopped  atomic.Bool
}

// Open opens portPath and starts the read-loop goroutine.
func Open(portPath string, log zerolog.Logger) (*Modem, error) {
	port, err := OpenSerial(portPath)
	if err != nil {
		return nil, err
	}
	m := &Modem{
		port:     port,
		log:      log,
		recvChan: make(chan alertme.Frame, 16),
		stopChan: make(chan struct{}),
	}
	go m.readLoop()
	return m, nil
}

// Close stops the read loop and closes the underlying serial port.
func (m *Modem) Close() error {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
	return m.port.Close()
}

// Send implements alertme.Modem.
func (m *Modem) Send(ctx context.Context, msg alertme.Message, destLong alertme.AddrLong, destShort alertme.AddrShort) error {
	id := byte(m.frameID.Add(1) & 0xff)
	if id == 0 {
		id = 1
	}
	frame := encodeExplicitTX(id, msg, destLong, destShort)

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	_, err := m.port.Write(frame)
	return err
}

// Frames implements alertme.Modem.
func (m *Modem) Frames() <-chan alertme.Frame {
	return m.recvChan
}

func (m *Modem) readLoop() {
	defer close(m.recvChan)
	for {
		select {
		case <-m.stopChan:
			return
		default:
		}

		body, err := m.readFrameBody()
		if err != nil {
			if m.stopped.Load() || err == io.EOF {
				return
			}
			m.log.Error().Err(err).Msg("serial read error")
			continue
		}
		if len(body) == 0 {
			continue
		}

		switch body[0] {
		case frameExplicitRX:
			f, err := decodeExplicitRX(body)
			if err != nil {
				m.log.Error().Err(err).Msg("malformed explicit RX frame")
				continue
			}
			select {
			case m.recvChan <- f:
			case <-m.stopChan:
				return
			}
		case frameTransmitStatus:
			m.log.Debug().Msg("transmit status received")
		case frameModemStatus:
			m.log.Info().Uint8("status", body[1]).Msg("modem status")
		default:
			m.log.Debug().Uint8("type", body[0]).Msg("unhandled frame type")
		}
	}
}

// readFrameBody reads one delimited API frame and returns its body
// (type+payload, checksum verified and stripped), per the XBee API framing
// rule: 0x7E, 2-byte length, <length> bytes of frame data, 1 checksum byte.
func (m *Modem) readFrameBody() ([]byte, error) {
	for {
		b, err := m.port.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == frameDelimiter {
			break
		}
	}

	lenHi, err := m.port.ReadByte()
	if err != nil {
		return nil, err
	}
	lenLo, err := m.port.ReadByte()
	if err != nil {
		return nil, err
	}
	n := int(lenHi)<<8 | int(lenLo)

	buf := make([]byte, n+1)
	for i := range buf {
		b, err := m.port.ReadByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}

	if !verifyChecksum(buf) {
		return nil, fmt.Errorf("%w", errBadChecksum)
	}
	return buf[:n], nil
}
