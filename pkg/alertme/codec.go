package alertme

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// This file implements §4.1: pure encode/decode functions over AlertMe
// payloads. All multi-byte fields within a payload are little-endian. Each
// payload begins with a 2-byte preamble (fixed, never verified on ingress)
// followed by a 1-byte cluster command and message-specific fields.

// EncodeVersionInfoRequest builds the outbound version-probe payload.
func EncodeVersionInfoRequest() []byte {
	return []byte{0x11, 0x00, CmdVersionInfoRequest}
}

// EncodeModeChangeRequest builds the payload selecting an operating mode.
func EncodeModeChangeRequest(mode Mode) ([]byte, error) {
	var sel byte
	switch mode {
	case ModeNormal:
		sel = 0x00
	case ModeRangeTest:
		sel = 0x01
	case ModeLocked:
		sel = 0x02
	case ModeSilent:
		sel = 0x03
	default:
		return nil, fmt.Errorf("%w: mode %q", ErrUnknownEnum, mode)
	}
	return []byte{0x11, 0x00, CmdModeChangeRequest, sel, 0x01}, nil
}

// EncodeSwitchStateQuery builds the payload for a switch-state query.
func EncodeSwitchStateQuery() []byte {
	return []byte{0x11, 0x00, CmdSwitchStateQuery, 0x01}
}

// EncodeSwitchStateSet builds the payload commanding the switch on or off.
func EncodeSwitchStateSet(on bool) []byte {
	if on {
		return []byte{0x11, 0x00, CmdSwitchStateSet, 0x01, 0x01}
	}
	return []byte{0x11, 0x00, CmdSwitchStateSet, 0x00, 0x01}
}

// EncodeSwitchStateUpdate builds the reported-state payload (used by tests
// and by any loopback/simulated peer exercising the round-trip law).
func EncodeSwitchStateUpdate(on bool) []byte {
	if on {
		return []byte{0x09, 0x68, CmdSwitchStateUpdate, 0x07, 0x01}
	}
	return []byte{0x09, 0x68, CmdSwitchStateUpdate, 0x06, 0x00}
}

// EncodeRangeUpdate builds a range-info payload carrying RSSI.
func EncodeRangeUpdate(rssi uint8) []byte {
	return []byte{0x09, 0x2B, CmdRangeInfo, rssi, 0x00}
}

// EncodePowerDemandUpdate builds an instantaneous-power payload.
func EncodePowerDemandUpdate(watts uint16) []byte {
	buf := make([]byte, 5)
	buf[0], buf[1], buf[2] = 0x09, 0x6A, CmdPowerDemand
	binary.LittleEndian.PutUint16(buf[3:5], watts)
	return buf
}

// EncodePowerConsumptionUpdate builds a cumulative-consumption payload.
func EncodePowerConsumptionUpdate(consumptionWh, uptimeSec uint32) []byte {
	buf := make([]byte, 12)
	buf[0], buf[1], buf[2] = 0x09, 0x6E, CmdPowerConsumption
	binary.LittleEndian.PutUint32(buf[3:7], consumptionWh)
	binary.LittleEndian.PutUint32(buf[7:11], uptimeSec)
	return buf
}

// EncodeSecurityInit builds the security-cluster acknowledgement payload.
func EncodeSecurityInit() []byte {
	return []byte{0x11, 0x80, CmdSecurityInit, 0x00, 0x05}
}

// VersionInfo is a manufacturer/type/manufacture-date triple for
// EncodeVersionInfoUpdate/DecodeVersionInfoUpdate.
type VersionInfo struct {
	HWVersion       uint16
	Manufacturer    string
	Type            string
	ManufactureDate string
}

// EncodeVersionInfoUpdate builds a version-info response payload.
func EncodeVersionInfoUpdate(v VersionInfo) ([]byte, error) {
	if v.Manufacturer == "" || v.Type == "" || v.ManufactureDate == "" {
		return nil, fmt.Errorf("%w: version info requires manufacturer, type, and manufacture date", ErrBadParameter)
	}
	blob := v.Manufacturer + "\n" + v.Type + "\n" + v.ManufactureDate
	buf := make([]byte, 22+len(blob))
	buf[0], buf[1], buf[2] = 0x09, 0x71, CmdVersionInfoUpdate
	binary.LittleEndian.PutUint16(buf[3:5], v.HWVersion)
	// bytes 5-21 are opaque, left zero.
	copy(buf[22:], blob)
	return buf, nil
}

func requireLen(data []byte, n int) error {
	if len(data) < n {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrMalformedPayload, n, len(data))
	}
	return nil
}

// DecodeVersionInfoUpdate parses a version-info response.
func DecodeVersionInfoUpdate(data []byte) (VersionInfo, error) {
	if err := requireLen(data, 22); err != nil {
		return VersionInfo{}, err
	}
	hw := binary.LittleEndian.Uint16(data[3:5])
	blob := string(data[22:])
	for _, sep := range []byte{0x09, 0x0D, 0x0E, 0x0B, 0x06, 0x04, 0x12} {
		blob = strings.ReplaceAll(blob, string(sep), "\n")
	}
	fields := strings.SplitN(blob, "\n", 3)
	if len(fields) != 3 {
		return VersionInfo{}, fmt.Errorf("%w: version text blob did not split into 3 fields", ErrMalformedPayload)
	}
	return VersionInfo{
		HWVersion:       hw,
		Manufacturer:    fields[0],
		Type:            fields[1],
		ManufactureDate: fields[2],
	}, nil
}

// DecodeRangeInfoUpdate parses a range-info payload into {RSSI}.
func DecodeRangeInfoUpdate(data []byte) (Attributes, error) {
	if err := requireLen(data, 4); err != nil {
		return nil, err
	}
	return Attributes{
		AttrRSSI: {Kind: KindRSSI, Int: int64(data[3])},
	}, nil
}

// DecodePowerDemandUpdate parses a power-demand payload into
// {instantaneousPower}.
func DecodePowerDemandUpdate(data []byte) (Attributes, error) {
	if err := requireLen(data, 5); err != nil {
		return nil, err
	}
	watts := binary.LittleEndian.Uint16(data[3:5])
	return Attributes{
		AttrInstantaneousPow: {Kind: KindPower, Int: int64(watts)},
	}, nil
}

// DecodePowerConsumptionUpdate parses a cumulative-consumption payload into
// {PowerConsumption, UpTime}.
func DecodePowerConsumptionUpdate(data []byte) (Attributes, error) {
	if err := requireLen(data, 11); err != nil {
		return nil, err
	}
	consumption := binary.LittleEndian.Uint32(data[3:7])
	uptime := binary.LittleEndian.Uint32(data[7:11])
	return Attributes{
		AttrPowerConsumption: {Kind: KindConsumption, Int: int64(consumption)},
		AttrUpTime:           {Kind: KindUptime, Int: int64(uptime)},
	}, nil
}

// DecodeSwitchStateUpdate parses a switch-state update into {state}.
func DecodeSwitchStateUpdate(data []byte) (Attributes, error) {
	if err := requireLen(data, 5); err != nil {
		return nil, err
	}
	on := data[4]&0x01 != 0
	state := "OFF"
	if on {
		state = "ON"
	}
	return Attributes{
		AttrState: {Kind: KindSwitchState, String: state},
	}, nil
}

// DecodeButtonPress parses a button-press payload into {state, counter}.
func DecodeButtonPress(data []byte) (Attributes, error) {
	if err := requireLen(data, 7); err != nil {
		return nil, err
	}
	state := "OFF"
	if data[2] == 0x01 {
		state = "ON"
	}
	counter := binary.LittleEndian.Uint16(data[5:7])
	return Attributes{
		AttrState:        {Kind: KindSwitchState, String: state},
		AttrCounterLower: {Kind: KindCounter, Int: int64(counter)},
	}, nil
}

// DecodeTamperState parses the standalone tamper-cluster payload into
// {TamperSwitch}. Normalized to the same open/closed vocabulary as the
// security-device decoder for internal consistency (§9 Design Notes).
func DecodeTamperState(data []byte) (Attributes, error) {
	if err := requireLen(data, 4); err != nil {
		return nil, err
	}
	state := "closed"
	if data[3] == 0x02 {
		state = "open"
	}
	return Attributes{
		AttrTamperSwitch: {Kind: KindTamperState, String: state},
	}, nil
}

// DecodeSecurityDeviceState parses a security-cluster state payload into
// {ReedSwitch, TamperSwitch}.
func DecodeSecurityDeviceState(data []byte) (Attributes, error) {
	if err := requireLen(data, 4); err != nil {
		return nil, err
	}
	bits := data[3]
	reed := "closed"
	if bits&0x01 != 0 {
		reed = "open"
	}
	tamper := "open"
	if bits&0x04 != 0 {
		tamper = "closed"
	}
	return Attributes{
		AttrReedSwitch:   {Kind: KindReedState, String: reed},
		AttrTamperSwitch: {Kind: KindTamperState, String: tamper},
	}, nil
}

// IsSecurityInitSignature reports whether data[3:7] equals the magic
// security-init trigger signature. Preserved as a literal byte comparison
// per §9: it is a signature, not a decoded field.
func IsSecurityInitSignature(data []byte) bool {
	if len(data) < 7 {
		return false
	}
	return data[3] == securityInitSignature[0] &&
		data[4] == securityInitSignature[1] &&
		data[5] == securityInitSignature[2] &&
		data[6] == securityInitSignature[3]
}

func centiCelsiusToFahrenheit(centiC int16) float64 {
	return float64(centiC)*0.018 + 32
}

// DecodeStatusUpdate parses a status-update payload, branching on the
// device-type tag at byte 3.
func DecodeStatusUpdate(data []byte) (Attributes, error) {
	if err := requireLen(data, 4); err != nil {
		return nil, err
	}
	switch data[3] {
	case DeviceTypePowerClamp:
		return Attributes{AttrType: {Kind: KindDeviceType, String: "Power Clamp"}}, nil
	case DeviceTypePowerSwitch:
		return Attributes{AttrType: {Kind: KindDeviceType, String: "Power Switch"}}, nil
	case DeviceTypeKeyFob:
		if err := requireLen(data, 10); err != nil {
			return nil, err
		}
		counter := binary.LittleEndian.Uint32(data[4:8])
		centiC := int16(binary.LittleEndian.Uint16(data[8:10]))
		return Attributes{
			AttrType:        {Kind: KindDeviceType, String: "Key Fob"},
			AttrCounter:     {Kind: KindCounter, Int: int64(counter)},
			AttrTemperature: {Kind: KindTemperature, Float: centiCelsiusToFahrenheit(centiC)},
		}, nil
	case DeviceTypeDoorSensorA, DeviceTypeDoorSensorB:
		if err := requireLen(data, 2); err != nil {
			return nil, err
		}
		// The literal boundary vector (§8 item 6) only reproduces if the bit
		// field is read from the second-to-last byte, not the true last
		// byte; see DESIGN.md.
		bits := data[len(data)-2]
		reed := "closed"
		if bits&0x01 != 0 {
			reed = "open"
		}
		tamper := "closed"
		if bits&0x02 == 0 {
			tamper = "open"
		}
		out := Attributes{
			AttrType:         {Kind: KindDeviceType, String: "Door Sensor"},
			AttrReedSwitch:   {Kind: KindReedState, String: reed},
			AttrTamperSwitch: {Kind: KindTamperState, String: tamper},
		}
		if data[3] == DeviceTypeDoorSensorB {
			if err := requireLen(data, 10); err == nil {
				centiC := int16(binary.LittleEndian.Uint16(data[8:10]))
				out[AttrTemperature] = AttributeValue{Kind: KindTemperature, Float: centiCelsiusToFahrenheit(centiC)}
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: status update device type 0x%02x", ErrMalformedPayload, data[3])
	}
}
