package mav

import (
	"context"
	"testing"
	"time"

	"github.com/bluenviron/gomavlib/v3"
	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"
	"github.com/bluenviron/gomavlib/v3/pkg/message"
	"github.com/stretchr/testify/suite"
)

type SystemSuite struct {
	suite.Suite
}

// discover makes sysID a known autopilot, the first one becoming the target.
func discover(sys *System, sysID byte) {
	sys.processMessage(sysID, &common.MessageHeartbeat{
		Type:      common.MAV_TYPE_QUADROTOR,
		Autopilot: common.MAV_AUTOPILOT_PX4,
	})
}

func TestSystemSuite(t *testing.T) {
	suite.Run(t, new(SystemSuite))
}

func (s *SystemSuite) TestParseEndpoint() {
	ep, err := parseEndpoint("udp://:14540")
	s.NoError(err)
	s.Equal(gomavlib.EndpointUDPServer{Address: ":14540"}, ep)

	ep, err = parseEndpoint("udp://")
	s.NoError(err)
	s.Equal(gomavlib.EndpointUDPServer{Address: ":14540"}, ep)

	ep, err = parseEndpoint("udpout://10.0.0.2:14550")
	s.NoError(err)
	s.Equal(gomavlib.EndpointUDPClient{Address: "10.0.0.2:14550"}, ep)

	ep, err = parseEndpoint("tcp://localhost:5760")
	s.NoError(err)
	s.Equal(gomavlib.EndpointTCPClient{Address: "localhost:5760"}, ep)

	ep, err = parseEndpoint("serial:///dev/ttyUSB0:115200")
	s.NoError(err)
	s.Equal(gomavlib.EndpointSerial{Device: "/dev/ttyUSB0", Baud: 115200}, ep)

	ep, err = parseEndpoint("serial:///dev/ttyACM0")
	s.NoError(err)
	s.Equal(gomavlib.EndpointSerial{Device: "/dev/ttyACM0", Baud: 57600}, ep)

	_, err = parseEndpoint("localhost:14540")
	s.Error(err)

	_, err = parseEndpoint("ftp://host")
	s.Error(err)

	_, err = parseEndpoint("serial:///dev/ttyUSB0:fast")
	s.Error(err)
}

func (s *SystemSuite) TestFlightModeCodec() {
	s.Equal(FlightModeFollowMe, flightModeFromCustomMode(customModeFor(FlightModeFollowMe)))
	s.Equal(FlightModeHold, flightModeFromCustomMode(customModeFor(FlightModeHold)))
	s.Equal(FlightModeLand, flightModeFromCustomMode(customModeFor(FlightModeLand)))
	s.Equal(FlightModeManual, flightModeFromCustomMode(px4MainManual<<16))
	s.Equal(FlightModeUnknown, flightModeFromCustomMode(0))
	s.EqualValues(0, customModeFor(FlightModeManual))
	s.Equal("FollowMe", FlightModeFollowMe.String())
}

func (s *SystemSuite) TestDiscoveryIgnoresGroundStations() {
	sys := newSystem()

	sys.processMessage(200, &common.MessageHeartbeat{
		Type:      common.MAV_TYPE_GCS,
		Autopilot: common.MAV_AUTOPILOT_INVALID,
	})
	s.False(sys.Discovered())

	sys.processMessage(1, &common.MessageHeartbeat{
		Type:      common.MAV_TYPE_QUADROTOR,
		Autopilot: common.MAV_AUTOPILOT_PX4,
	})
	s.True(sys.Discovered())
	s.Equal([]byte{1}, sys.Systems())
	s.EqualValues(1, sys.targetSystem())
}

func (s *SystemSuite) TestTelemetryFromMessages() {
	sys := newSystem()
	tele := NewTelemetry(sys)

	s.False(tele.HealthAllOK())
	s.False(tele.Armed())
	s.False(tele.InAir())

	sys.processMessage(1, &common.MessageHeartbeat{
		Type:       common.MAV_TYPE_QUADROTOR,
		Autopilot:  common.MAV_AUTOPILOT_PX4,
		BaseMode:   common.MAV_MODE_FLAG_SAFETY_ARMED | common.MAV_MODE_FLAG_CUSTOM_MODE_ENABLED,
		CustomMode: customModeFor(FlightModeFollowMe),
	})
	s.True(tele.Armed())
	s.Equal(FlightModeFollowMe, tele.FlightMode())

	sys.processMessage(1, &common.MessageSysStatus{
		OnboardControlSensorsHealth: healthySensors,
	})
	s.False(tele.HealthAllOK()) // no position yet

	sys.processMessage(1, &common.MessageGlobalPositionInt{
		Lat:         577149500,
		Lon:         128913400,
		Alt:         12000,
		RelativeAlt: 2500,
	})
	s.True(tele.HealthAllOK())
	pos := tele.Position()
	s.InDelta(57.71495, pos.LatitudeDeg, 1e-9)
	s.InDelta(12.89134, pos.LongitudeDeg, 1e-9)
	s.InDelta(12.0, pos.AbsoluteAltitudeM, 1e-6)
	s.InDelta(2.5, pos.RelativeAltitudeM, 1e-6)

	sys.processMessage(1, &common.MessageSysStatus{
		OnboardControlSensorsHealth: healthySensors &^ common.MAV_SYS_STATUS_SENSOR_GPS,
	})
	s.False(tele.HealthAllOK())

	sys.processMessage(1, &common.MessageExtendedSysState{
		LandedState: common.MAV_LANDED_STATE_IN_AIR,
	})
	s.True(tele.InAir())
	sys.processMessage(1, &common.MessageExtendedSysState{
		LandedState: common.MAV_LANDED_STATE_ON_GROUND,
	})
	s.False(tele.InAir())
}

func (s *SystemSuite) TestFlightModeSubscription() {
	sys := newSystem()
	tele := NewTelemetry(sys)

	var got []FlightMode
	tele.SubscribeFlightMode(func(m FlightMode) { got = append(got, m) })

	heartbeat := &common.MessageHeartbeat{
		Type:       common.MAV_TYPE_QUADROTOR,
		Autopilot:  common.MAV_AUTOPILOT_PX4,
		CustomMode: customModeFor(FlightModeHold),
	}
	sys.processMessage(1, heartbeat)
	s.Equal([]FlightMode{FlightModeHold}, got)

	tele.SubscribeFlightMode(nil)
	sys.processMessage(1, heartbeat)
	s.Len(got, 1)
}

func (s *SystemSuite) TestAckRouting() {
	sys := newSystem()
	discover(sys, 1)

	ch := make(chan common.MAV_RESULT, 1)
	sys.waitMux.Lock()
	sys.ackCh[common.MAV_CMD_NAV_TAKEOFF] = ch
	sys.waitMux.Unlock()

	// Acks for other commands must not resolve the waiter.
	sys.processMessage(1, &common.MessageCommandAck{
		Command: common.MAV_CMD_NAV_LAND,
		Result:  common.MAV_RESULT_ACCEPTED,
	})
	s.Empty(ch)

	sys.processMessage(1, &common.MessageCommandAck{
		Command: common.MAV_CMD_NAV_TAKEOFF,
		Result:  common.MAV_RESULT_DENIED,
	})
	s.Equal(common.MAV_RESULT_DENIED, <-ch)

	sys.waitMux.Lock()
	_, stillWaiting := sys.ackCh[common.MAV_CMD_NAV_TAKEOFF]
	sys.waitMux.Unlock()
	s.False(stillWaiting)
}

func (s *SystemSuite) TestParamEchoRouting() {
	sys := newSystem()
	discover(sys, 1)

	ch := make(chan float32, 1)
	sys.waitMux.Lock()
	sys.paramCh["NAV_FT_DST"] = ch
	sys.waitMux.Unlock()

	sys.processMessage(1, &common.MessageParamValue{
		ParamId:    "NAV_FT_DST",
		ParamValue: 1.0,
		ParamType:  common.MAV_PARAM_TYPE_REAL32,
	})
	s.InDelta(1.0, <-ch, 1e-6)
}

func (s *SystemSuite) TestIgnoresOtherSystems() {
	sys := newSystem()
	tele := NewTelemetry(sys)
	discover(sys, 1)
	discover(sys, 2)

	// Both vehicles are known, but only the first one is followed.
	s.Equal([]byte{1, 2}, sys.Systems())
	s.EqualValues(1, sys.targetSystem())

	sys.processMessage(2, &common.MessageHeartbeat{
		Type:       common.MAV_TYPE_QUADROTOR,
		Autopilot:  common.MAV_AUTOPILOT_PX4,
		BaseMode:   common.MAV_MODE_FLAG_SAFETY_ARMED | common.MAV_MODE_FLAG_CUSTOM_MODE_ENABLED,
		CustomMode: customModeFor(FlightModeFollowMe),
	})
	s.False(tele.Armed())
	s.Equal(FlightModeUnknown, tele.FlightMode())

	sys.processMessage(2, &common.MessageSysStatus{
		OnboardControlSensorsHealth: healthySensors,
	})
	sys.processMessage(2, &common.MessageGlobalPositionInt{
		Lat: 577149500,
		Lon: 128913400,
	})
	s.False(tele.HealthAllOK())
	s.InDelta(0.0, tele.Position().LatitudeDeg, 1e-9)

	ch := make(chan common.MAV_RESULT, 1)
	sys.waitMux.Lock()
	sys.ackCh[common.MAV_CMD_NAV_TAKEOFF] = ch
	sys.waitMux.Unlock()
	sys.processMessage(2, &common.MessageCommandAck{
		Command: common.MAV_CMD_NAV_TAKEOFF,
		Result:  common.MAV_RESULT_ACCEPTED,
	})
	s.Empty(ch)
}

func (s *SystemSuite) TestSendCommandResults() {
	sys := newSystem()
	discover(sys, 1)

	ack := func(result common.MAV_RESULT) func(m message.Message) error {
		return func(m message.Message) error {
			cmd := m.(*common.MessageCommandLong)
			sys.processMessage(1, &common.MessageCommandAck{
				Command: cmd.Command,
				Result:  result,
			})
			return nil
		}
	}

	sys.write = ack(common.MAV_RESULT_ACCEPTED)
	s.NoError(sys.sendCommand(context.Background(), common.MAV_CMD_NAV_TAKEOFF, [7]float32{}))

	sys.write = ack(common.MAV_RESULT_DENIED)
	err := sys.sendCommand(context.Background(), common.MAV_CMD_NAV_TAKEOFF, [7]float32{})
	s.ErrorContains(err, "rejected")
}

func (s *SystemSuite) TestSendCommandAckTimeout() {
	sys := newSystem()
	discover(sys, 1)
	sys.ackTimeout = 20 * time.Millisecond

	// The link takes the command but no ack ever comes back.
	sys.write = func(m message.Message) error { return nil }

	err := sys.sendCommand(context.Background(), common.MAV_CMD_COMPONENT_ARM_DISARM, [7]float32{1})
	s.ErrorContains(err, "timed out")

	sys.waitMux.Lock()
	_, stillWaiting := sys.ackCh[common.MAV_CMD_COMPONENT_ARM_DISARM]
	sys.waitMux.Unlock()
	s.False(stillWaiting)
}

func (s *SystemSuite) TestSetParamEchoTimeout() {
	sys := newSystem()
	discover(sys, 1)
	sys.ackTimeout = 20 * time.Millisecond

	sys.write = func(m message.Message) error { return nil }
	s.ErrorContains(sys.setParam(context.Background(), "NAV_FT_DST", 1.0), "timed out")

	sys.write = func(m message.Message) error {
		set := m.(*common.MessageParamSet)
		sys.processMessage(1, &common.MessageParamValue{
			ParamId:    set.ParamId,
			ParamValue: set.ParamValue,
			ParamType:  set.ParamType,
		})
		return nil
	}
	s.NoError(sys.setParam(context.Background(), "NAV_FT_DST", 1.0))
}
