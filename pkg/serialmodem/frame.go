package serialmodem

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/alertme/hub/pkg/alertme"
)

// XBee API frame type bytes (frame IDs), adapted from
// samuel-go-xbee/xbee/xbee.go's frame constants.
const (
	frameDelimiter            = 0x7E
	frameExplicitAddressingTX = 0x11 // outbound explicit-addressing command
	frameExplicitRX           = 0x91 // inbound explicit-addressing RX indicator
	frameTransmitStatus       = 0x8B
	frameModemStatus          = 0x8A
)

var errBadChecksum = errors.New("serialmodem: bad frame checksum")
var errShortFrame = errors.New("serialmodem: frame too short to contain explicit addressing fields")

// encodeExplicitTX builds a complete API-mode frame (delimiter, length,
// frame data, checksum) for an explicit-addressing transmit request
// carrying msg to (destLong, destShort).
func encodeExplicitTX(frameID byte, msg alertme.Message, destLong alertme.AddrLong, destShort alertme.AddrShort) []byte {
	body := make([]byte, 0, 20+len(msg.Data))
	body = append(body, frameExplicitAddressingTX, frameID)
	body = append(body, destLong[:]...)
	body = append(body, destShort[:]...)
	body = append(body, msg.SrcEndpoint, msg.DestEndpoint)
	clusterBuf := make([]byte, 2)
	binary.BigEndian.PutUint16(clusterBuf, msg.Cluster)
	body = append(body, clusterBuf...)
	profileBuf := make([]byte, 2)
	binary.BigEndian.PutUint16(profileBuf, msg.Profile)
	body = append(body, profileBuf...)
	body = append(body, 0x00, 0x00) // broadcast radius, options
	body = append(body, msg.Data...)

	out := make([]byte, 0, 4+len(body)+1)
	out = append(out, frameDelimiter, byte(len(body)>>8), byte(len(body)&0xff))
	out = append(out, body...)

	var checksum byte
	for _, b := range body {
		checksum += b
	}
	out = append(out, 0xFF-checksum)
	return out
}

// decodeExplicitRX parses the frame body (already delimiter/length/checksum
// stripped, as produced by readFrameBody) of an explicit RX indicator into
// an alertme.Frame.
func decodeExplicitRX(body []byte) (alertme.Frame, error) {
	// type(1) srcLong(8) srcShort(2) srcEndpoint(1) destEndpoint(1)
	// cluster(2) profile(2) options(1) data(...)
	if len(body) < 18 {
		return alertme.Frame{}, fmt.Errorf("%w: got %d bytes", errShortFrame, len(body))
	}
	var srcLong alertme.AddrLong
	copy(srcLong[:], body[1:9])
	var srcShort alertme.AddrShort
	copy(srcShort[:], body[9:11])
	cluster := binary.BigEndian.Uint16(body[13:15])
	profile := binary.BigEndian.Uint16(body[15:17])

	return alertme.Frame{
		ID:              "rx_explicit",
		Profile:         profile,
		Cluster:         cluster,
		SourceAddrLong:  srcLong,
		SourceAddrShort: srcShort,
		RFData:          body[18:],
	}, nil
}

// verifyChecksum reports whether body (frame data + trailing checksum byte)
// sums to 0xFF, per the XBee API frame checksum rule.
func verifyChecksum(bodyAndChecksum []byte) bool {
	var sum byte
	for _, b := range bodyAndChecksum {
		sum += b
	}
	return sum == 0xFF
}
