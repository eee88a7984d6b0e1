package mav

import (
	"sync"
	"sync/atomic"

	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"
)

// Position is the vehicle's last known global position.
type Position struct {
	LatitudeDeg       float64
	LongitudeDeg      float64
	AbsoluteAltitudeM float32
	RelativeAltitudeM float32
}

const healthySensors = common.MAV_SYS_STATUS_SENSOR_3D_GYRO |
	common.MAV_SYS_STATUS_SENSOR_3D_ACCEL |
	common.MAV_SYS_STATUS_SENSOR_3D_MAG |
	common.MAV_SYS_STATUS_SENSOR_GPS

type telemetryState struct {
	pos         atomic.Pointer[Position]
	hasPosition atomic.Bool
	armed       atomic.Bool
	sensorsOK   atomic.Bool
	landed      atomic.Int32 // common.MAV_LANDED_STATE
	mode        atomic.Int32 // FlightMode

	cbMux  sync.RWMutex
	modeCB func(FlightMode)
}

func newTelemetryState() *telemetryState {
	st := &telemetryState{}
	st.pos.Store(&Position{})
	return st
}

func (st *telemetryState) handleHeartbeat(msg *common.MessageHeartbeat) {
	st.armed.Store(msg.BaseMode&common.MAV_MODE_FLAG_SAFETY_ARMED != 0)

	mode := flightModeFromCustomMode(msg.CustomMode)
	st.mode.Store(int32(mode))

	st.cbMux.RLock()
	cb := st.modeCB
	st.cbMux.RUnlock()
	if cb != nil {
		cb(mode)
	}
}

func (st *telemetryState) handleSysStatus(msg *common.MessageSysStatus) {
	st.sensorsOK.Store(msg.OnboardControlSensorsHealth&healthySensors == healthySensors)
}

func (st *telemetryState) handleGlobalPosition(msg *common.MessageGlobalPositionInt) {
	st.pos.Store(&Position{
		LatitudeDeg:       float64(msg.Lat) / 1e7,
		LongitudeDeg:      float64(msg.Lon) / 1e7,
		AbsoluteAltitudeM: float32(msg.Alt) / 1000,
		RelativeAltitudeM: float32(msg.RelativeAlt) / 1000,
	})
	st.hasPosition.Store(true)
}

func (st *telemetryState) handleExtendedSysState(msg *common.MessageExtendedSysState) {
	st.landed.Store(int32(msg.LandedState))
}

// Telemetry is a read view over the system's cached vehicle state.
type Telemetry struct {
	sys *System
}

func NewTelemetry(sys *System) *Telemetry {
	return &Telemetry{sys: sys}
}

// HealthAllOK reports whether gyro, accelerometer, magnetometer and GPS are
// healthy and a global position has been received.
func (t *Telemetry) HealthAllOK() bool {
	return t.sys.tele.sensorsOK.Load() && t.sys.tele.hasPosition.Load()
}

func (t *Telemetry) Armed() bool {
	return t.sys.tele.armed.Load()
}

func (t *Telemetry) InAir() bool {
	switch common.MAV_LANDED_STATE(t.sys.tele.landed.Load()) {
	case common.MAV_LANDED_STATE_IN_AIR,
		common.MAV_LANDED_STATE_TAKEOFF,
		common.MAV_LANDED_STATE_LANDING:
		return true
	}
	return false
}

func (t *Telemetry) Position() Position {
	return *(t.sys.tele.pos.Load())
}

func (t *Telemetry) FlightMode() FlightMode {
	return FlightMode(t.sys.tele.mode.Load())
}

// SubscribeFlightMode registers cb to be invoked on every autopilot
// heartbeat with the decoded flight mode. A nil cb unsubscribes.
func (t *Telemetry) SubscribeFlightMode(cb func(FlightMode)) {
	t.sys.tele.cbMux.Lock()
	t.sys.tele.modeCB = cb
	t.sys.tele.cbMux.Unlock()
}
