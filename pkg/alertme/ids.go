// Package alertme implements the Hub protocol engine for the legacy
// AlertMe/Iris ZigBee home-automation ecosystem: the application-layer
// payload codec, the join/association state machine, the node registry, and
// the periodic discovery driver. The serial framing layer, physical radio,
// and any persistence are external collaborators — see Modem.
package alertme

// Profile IDs.
const (
	ProfileZDP     uint16 = 0x0000
	ProfileAlertMe uint16 = 0xC216
)

// Endpoint numbers.
const (
	EndpointZDO     uint8 = 0x00
	EndpointAlertMe uint8 = 0x02
)

// ZDP cluster IDs.
const (
	ClusterZDPDeviceAnnounce        uint16 = 0x0013
	ClusterZDPNetworkAddressResp    uint16 = 0x8000
	ClusterZDPNodeDescriptorResp    uint16 = 0x8032
	ClusterZDPActiveEndpointsReq    uint16 = 0x0005
	ClusterZDPActiveEndpointsResp   uint16 = 0x8005
	ClusterZDPMatchDescriptorReq    uint16 = 0x0006
	ClusterZDPMatchDescriptorResp   uint16 = 0x8006
	ClusterZDPManagementRoutingReq  uint16 = 0x0032
	ClusterZDPPermitJoinReq         uint16 = 0x0036
)

// AlertMe cluster IDs.
const (
	ClusterAMSwitch    uint16 = 0x00EE
	ClusterAMPower     uint16 = 0x00EF
	ClusterAMStatus    uint16 = 0x00F0
	ClusterAMTamper    uint16 = 0x00F2
	ClusterAMButton    uint16 = 0x00F3
	ClusterAMDiscovery uint16 = 0x00F6
	ClusterAMSecurity  uint16 = 0x0500
)

// AlertMe cluster-command opcodes (the single byte at rf_data[2]).
const (
	CmdSecurityInit       byte = 0x00
	CmdSwitchStateQuery   byte = 0x01
	CmdSwitchStateSet     byte = 0x02
	CmdSwitchStateUpdate  byte = 0x80
	CmdPowerDemand        byte = 0x81
	CmdPowerConsumption   byte = 0x82
	CmdModeChangeRequest  byte = 0xFA
	CmdStatusUpdate       byte = 0xFB
	CmdVersionInfoRequest byte = 0xFC
	CmdRangeInfo          byte = 0xFD
	CmdVersionInfoUpdate  byte = 0xFE
)

// Status-update device-type tags (rf_data[3] for ClusterAMStatus/CmdStatusUpdate).
const (
	DeviceTypePowerClamp  byte = 0x1B
	DeviceTypePowerSwitch byte = 0x1C
	DeviceTypeKeyFob      byte = 0x1D
	DeviceTypeDoorSensorA byte = 0x1E
	DeviceTypeDoorSensorB byte = 0x1F
)

// Operating modes for mode_change_request.
type Mode string

const (
	ModeNormal    Mode = "Normal"
	ModeRangeTest Mode = "RangeTest"
	ModeLocked    Mode = "Locked"
	ModeSilent    Mode = "Silent"
)

// Broadcast addressing used by the discovery driver.
var (
	BroadcastLong  = AddrLong{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF}
	BroadcastShort = AddrShort{0xFF, 0xFD}
)

// Security-event signature bytes compared literally against rf_data[3:7].
var securityInitSignature = [4]byte{0x15, 0x00, 0x39, 0x10}
