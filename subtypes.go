package dptx

// Common use domain.
var (
	DptGeneralStatus = MustSubtype("21.001", "General Status",
		"OutOfService", "Fault", "Overridden", "InAlarm", "AlarmUnAck")
	DptDeviceControl = MustSubtype("21.002", "Device Control",
		"UserStopped", "OwnIndAddress", "VerifyMode")
)

// HVAC domain.
var (
	DptForcingSignal = MustSubtype("21.100", "Forcing Signal",
		"ForceRequest", "Protection", "Oversupply", "Overrun", "DhwNorm", "DhwLegio", "RoomHConf", "RoomHMax")
	DptForcingSignalCool = MustSubtype("21.101", "Forcing Signal Cool",
		"ForceRequest")
	DptRoomHeatingControllerStatus = MustSubtype("21.102", "Room Heating Controller Status",
		"Fault", "EcoMode", "FlowTempLimit", "ReturnTempLimit", "MorningBoost", "StartOptimization", "StopOptimization", "SummerMode")
	DptSolarDhwControllerStatus = MustSubtype("21.103", "Solar Dhw Controller Status",
		"Fault", "DhwLoadActive", "SolarLoadSufficient")
	DptFuelTypeSet = MustSubtype("21.104", "Fuel Type Set",
		"Oil", "Gas", "SolidState")
	DptRoomCoolingControllerStatus = MustSubtype("21.105", "Room Cooling Controller Status",
		"Fault")
	DptVentilationControllerStatus = MustSubtype("21.106", "Ventilation Controller Status",
		"Fault", "FanActive", "Heat", "Cool")
)

// Lighting domain.
var (
	DptLightingActuatorErrorInfo = MustSubtype("21.601", "Lighting Actuator Error Info",
		"LoadDetectionError", "Undervoltage", "Overcurrent", "Underload", "DefectiveLoad", "LampFailure", "Overheat")
)

// System domain.
var (
	DptRfCommModeInfo = MustSubtype("21.1000", "Rf Comm Mode Info",
		"Asynchronous", "BiBatMaster", "BiBatSlave")
	DptRfFilterModes = MustSubtype("21.1001", "Rf Filter Modes",
		"DoA", "KnxSn", "DoAAndKnxSn")
	DptChannelActivation8 = MustSubtype("21.1010", "Channel Activation 8",
		"Channel1", "Channel2", "Channel3", "Channel4", "Channel5", "Channel6", "Channel7", "Channel8")
)

func init() {
	for _, st := range []*Subtype{
		DptGeneralStatus,
		DptDeviceControl,
		DptForcingSignal,
		DptForcingSignalCool,
		DptRoomHeatingControllerStatus,
		DptSolarDhwControllerStatus,
		DptFuelTypeSet,
		DptRoomCoolingControllerStatus,
		DptVentilationControllerStatus,
		DptLightingActuatorErrorInfo,
		DptRfCommModeInfo,
		DptRfFilterModes,
		DptChannelActivation8,
	} {
		Register(st)
	}
}

// GeneralStatus is a typed element of DptGeneralStatus.
type GeneralStatus uint8

const (
	OutOfService GeneralStatus = iota
	Fault
	Overridden
	InAlarm
	AlarmUnAck
)

// Value returns the bit value of the element.
func (g GeneralStatus) Value() int { return 1 << g }

func (g GeneralStatus) String() string {
	name, ok := DptGeneralStatus.FlagName(g.Value())
	if !ok {
		return "GeneralStatus(?)"
	}
	return name
}

// DeviceControl is a typed element of DptDeviceControl.
type DeviceControl uint8

const (
	UserStopped DeviceControl = iota
	OwnIndAddress
	VerifyMode
)

// Value returns the bit value of the element.
func (d DeviceControl) Value() int { return 1 << d }

func (d DeviceControl) String() string {
	name, ok := DptDeviceControl.FlagName(d.Value())
	if !ok {
		return "DeviceControl(?)"
	}
	return name
}
