// Package serialmodem implements the alertme.Modem contract over a real
// XBee API-mode radio attached to a serial link. It owns everything the
// core engine (pkg/alertme) explicitly treats as an external collaborator:
// the serial port, API frame delimiting, and addressing translation.
package serialmodem

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// Port wraps a serial connection to the radio dongle.
type Port struct {
	port serial.Port
	mu   sync.Mutex
}

// OpenSerial opens portPath at 115200 baud, 8N1 — the XBee API-mode default.
func OpenSerial(portPath string) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portPath, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portPath, err)
	}

	if err := port.SetRTS(true); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set RTS: %w", err)
	}

	log.Info().Str("port", portPath).Msg("serial port opened")

	return &Port{port: port}, nil
}

// Write sends raw bytes to the serial port.
func (p *Port) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.port.Write(data)
}

// ReadByte reads a single byte, blocking until one is available.
func (p *Port) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(p.port, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Close closes the serial port.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.port.Close()
}
