package mav

// FlightMode is the decoded PX4 flight mode reported in heartbeats.
type FlightMode int

const (
	FlightModeUnknown FlightMode = iota
	FlightModeManual
	FlightModeAltitudeControl
	FlightModePositionControl
	FlightModeAcro
	FlightModeOffboard
	FlightModeStabilized
	FlightModeReady
	FlightModeTakeoff
	FlightModeHold
	FlightModeMission
	FlightModeReturnToLaunch
	FlightModeLand
	FlightModeFollowMe
)

func (m FlightMode) String() string {
	switch m {
	case FlightModeManual:
		return "Manual"
	case FlightModeAltitudeControl:
		return "AltitudeControl"
	case FlightModePositionControl:
		return "PositionControl"
	case FlightModeAcro:
		return "Acro"
	case FlightModeOffboard:
		return "Offboard"
	case FlightModeStabilized:
		return "Stabilized"
	case FlightModeReady:
		return "Ready"
	case FlightModeTakeoff:
		return "Takeoff"
	case FlightModeHold:
		return "Hold"
	case FlightModeMission:
		return "Mission"
	case FlightModeReturnToLaunch:
		return "ReturnToLaunch"
	case FlightModeLand:
		return "Land"
	case FlightModeFollowMe:
		return "FollowMe"
	}
	return "Unknown"
}

// PX4 packs its mode into the heartbeat custom mode word:
// byte 2 is the main mode, byte 3 the auto sub mode.
const (
	px4MainManual     = 1
	px4MainAltctl     = 2
	px4MainPosctl     = 3
	px4MainAuto       = 4
	px4MainAcro       = 5
	px4MainOffboard   = 6
	px4MainStabilized = 7

	px4AutoReady        = 1
	px4AutoTakeoff      = 2
	px4AutoLoiter       = 3
	px4AutoMission      = 4
	px4AutoRTL          = 5
	px4AutoLand         = 6
	px4AutoFollowTarget = 8
)

func flightModeFromCustomMode(custom uint32) FlightMode {
	mainMode := (custom >> 16) & 0xff
	subMode := (custom >> 24) & 0xff

	switch mainMode {
	case px4MainManual:
		return FlightModeManual
	case px4MainAltctl:
		return FlightModeAltitudeControl
	case px4MainPosctl:
		return FlightModePositionControl
	case px4MainAcro:
		return FlightModeAcro
	case px4MainOffboard:
		return FlightModeOffboard
	case px4MainStabilized:
		return FlightModeStabilized
	case px4MainAuto:
		switch subMode {
		case px4AutoReady:
			return FlightModeReady
		case px4AutoTakeoff:
			return FlightModeTakeoff
		case px4AutoLoiter:
			return FlightModeHold
		case px4AutoMission:
			return FlightModeMission
		case px4AutoRTL:
			return FlightModeReturnToLaunch
		case px4AutoLand:
			return FlightModeLand
		case px4AutoFollowTarget:
			return FlightModeFollowMe
		}
	}
	return FlightModeUnknown
}

// customModeFor returns the PX4 custom mode word for the modes the demo
// commands, or 0 for modes that cannot be commanded directly.
func customModeFor(m FlightMode) uint32 {
	switch m {
	case FlightModeFollowMe:
		return px4MainAuto<<16 | px4AutoFollowTarget<<24
	case FlightModeHold:
		return px4MainAuto<<16 | px4AutoLoiter<<24
	case FlightModeReturnToLaunch:
		return px4MainAuto<<16 | px4AutoRTL<<24
	case FlightModeLand:
		return px4MainAuto<<16 | px4AutoLand<<24
	}
	return 0
}
