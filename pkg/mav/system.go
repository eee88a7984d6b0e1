// Package mav is a thin client layer over a MAVLink telemetry/control link.
// It only encodes commands and caches telemetry; every flight state machine
// stays on the autopilot.
package mav

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bluenviron/gomavlib/v3"
	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"
	"github.com/bluenviron/gomavlib/v3/pkg/message"
	"github.com/sirupsen/logrus"
)

const (
	localSystemID      = 245
	autopilotComponent = 1
	defaultAckTimeout  = 3 * time.Second
)

// System owns the MAVLink node, tracks discovered vehicles and routes
// incoming messages to the telemetry cache and to command/param waiters.
type System struct {
	node  *gomavlib.Node
	done  chan struct{}
	write func(m message.Message) error

	ackTimeout time.Duration

	mux       sync.RWMutex
	systems   map[byte]struct{}
	targetSys byte

	tele *telemetryState

	waitMux sync.Mutex
	ackCh   map[common.MAV_CMD]chan common.MAV_RESULT
	paramCh map[string]chan float32
}

func newSystem() *System {
	return &System{
		done:       make(chan struct{}),
		ackTimeout: defaultAckTimeout,
		systems:    make(map[byte]struct{}),
		tele:       newTelemetryState(),
		ackCh:      make(map[common.MAV_CMD]chan common.MAV_RESULT),
		paramCh:    make(map[string]chan float32),
	}
}

// Connect opens the link described by connURL and starts the event loop.
//
// Supported URL forms:
//
//	udp://[bind_host][:bind_port]  (listen, default :14540)
//	udpout://host:port
//	tcp://host:port
//	serial://path[:baudrate]
func Connect(connURL string) (*System, error) {
	endpoint, err := parseEndpoint(connURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing connection URL: %w", err)
	}

	node, err := gomavlib.NewNode(gomavlib.NodeConf{
		Endpoints:   []gomavlib.EndpointConf{endpoint},
		Dialect:     common.Dialect,
		OutVersion:  gomavlib.V2,
		OutSystemID: localSystemID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating mavlink node: %w", err)
	}

	s := newSystem()
	s.node = node
	s.write = node.WriteMessageAll
	go s.run()
	return s, nil
}

func parseEndpoint(connURL string) (gomavlib.EndpointConf, error) {
	scheme, rest, found := strings.Cut(connURL, "://")
	if !found {
		return nil, fmt.Errorf("connection URL %q has no scheme", connURL)
	}
	switch scheme {
	case "udp":
		if rest == "" {
			rest = ":14540"
		}
		return gomavlib.EndpointUDPServer{Address: rest}, nil
	case "udpout":
		return gomavlib.EndpointUDPClient{Address: rest}, nil
	case "tcp":
		return gomavlib.EndpointTCPClient{Address: rest}, nil
	case "serial":
		device, baud := rest, 57600
		if i := strings.LastIndex(rest, ":"); i > 0 {
			parsed, err := strconv.Atoi(rest[i+1:])
			if err != nil {
				return nil, fmt.Errorf("error parsing baudrate in %q: %w", connURL, err)
			}
			device, baud = rest[:i], parsed
		}
		return gomavlib.EndpointSerial{Device: device, Baud: baud}, nil
	}
	return nil, fmt.Errorf("unsupported connection URL scheme %q", scheme)
}

// Close tears down the link and waits for the event loop to drain.
func (s *System) Close() {
	if s.node == nil {
		return
	}
	s.node.Close()
	<-s.done
}

// Discovered reports whether at least one autopilot has been heard from.
func (s *System) Discovered() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.systems) > 0
}

// Systems returns the IDs of all autopilots heard from so far.
func (s *System) Systems() []byte {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ids := make([]byte, 0, len(s.systems))
	for id := range s.systems {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *System) targetSystem() byte {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.targetSys
}

func (s *System) run() {
	for evt := range s.node.Events() {
		frm, ok := evt.(*gomavlib.EventFrame)
		if !ok {
			continue
		}
		s.processMessage(frm.SystemID(), frm.Message())
	}
	close(s.done)
}

func (s *System) processMessage(sysID byte, m message.Message) {
	if hb, ok := m.(*common.MessageHeartbeat); ok {
		s.processHeartbeat(sysID, hb)
		return
	}

	// Only the followed system may drive telemetry and waiters.
	if target := s.targetSystem(); target == 0 || sysID != target {
		return
	}

	switch msg := m.(type) {
	case *common.MessageSysStatus:
		s.tele.handleSysStatus(msg)
	case *common.MessageGlobalPositionInt:
		s.tele.handleGlobalPosition(msg)
	case *common.MessageExtendedSysState:
		s.tele.handleExtendedSysState(msg)
	case *common.MessageCommandAck:
		s.waitMux.Lock()
		ch, waiting := s.ackCh[msg.Command]
		if waiting {
			delete(s.ackCh, msg.Command)
		}
		s.waitMux.Unlock()
		if waiting {
			ch <- msg.Result
		}
	case *common.MessageParamValue:
		s.waitMux.Lock()
		ch, waiting := s.paramCh[msg.ParamId]
		if waiting {
			delete(s.paramCh, msg.ParamId)
		}
		s.waitMux.Unlock()
		if waiting {
			ch <- msg.ParamValue
		}
	}
}

func (s *System) processHeartbeat(sysID byte, msg *common.MessageHeartbeat) {
	if msg.Type == common.MAV_TYPE_GCS || msg.Autopilot == common.MAV_AUTOPILOT_INVALID {
		return
	}
	s.mux.Lock()
	if _, known := s.systems[sysID]; !known {
		s.systems[sysID] = struct{}{}
		if s.targetSys == 0 {
			s.targetSys = sysID
		}
		logrus.Warnf("discovered system with ID: %d", sysID)
	}
	isTarget := s.targetSys == sysID
	s.mux.Unlock()

	if isTarget {
		s.tele.handleHeartbeat(msg)
	}
}

func (s *System) sendMessage(m message.Message) error {
	if s.write == nil {
		return fmt.Errorf("system is not connected")
	}
	if err := s.write(m); err != nil {
		return fmt.Errorf("error writing message: %w", err)
	}
	return nil
}

// sendCommand sends a COMMAND_LONG once and waits for its ack. There is no
// retransmit; a missing ack is an error after the ack timeout.
func (s *System) sendCommand(ctx context.Context, cmd common.MAV_CMD, params [7]float32) error {
	ch := make(chan common.MAV_RESULT, 1)
	s.waitMux.Lock()
	s.ackCh[cmd] = ch
	s.waitMux.Unlock()

	err := s.sendMessage(&common.MessageCommandLong{
		TargetSystem:    s.targetSystem(),
		TargetComponent: autopilotComponent,
		Command:         cmd,
		Param1:          params[0],
		Param2:          params[1],
		Param3:          params[2],
		Param4:          params[3],
		Param5:          params[4],
		Param6:          params[5],
		Param7:          params[6],
	})
	if err != nil {
		s.dropAckWaiter(cmd)
		return fmt.Errorf("error sending command %v: %w", cmd, err)
	}

	timeout := time.NewTimer(s.ackTimeout)
	defer timeout.Stop()
	select {
	case result := <-ch:
		if result != common.MAV_RESULT_ACCEPTED {
			return fmt.Errorf("command %v rejected: %v", cmd, result)
		}
		return nil
	case <-timeout.C:
		s.dropAckWaiter(cmd)
		return fmt.Errorf("timed out waiting for ack of command %v", cmd)
	case <-ctx.Done():
		s.dropAckWaiter(cmd)
		return ctx.Err()
	}
}

func (s *System) dropAckWaiter(cmd common.MAV_CMD) {
	s.waitMux.Lock()
	delete(s.ackCh, cmd)
	s.waitMux.Unlock()
}

// setParam writes an autopilot parameter and waits for the PARAM_VALUE echo.
func (s *System) setParam(ctx context.Context, name string, value float32) error {
	ch := make(chan float32, 1)
	s.waitMux.Lock()
	s.paramCh[name] = ch
	s.waitMux.Unlock()

	dropWaiter := func() {
		s.waitMux.Lock()
		delete(s.paramCh, name)
		s.waitMux.Unlock()
	}

	err := s.sendMessage(&common.MessageParamSet{
		TargetSystem:    s.targetSystem(),
		TargetComponent: autopilotComponent,
		ParamId:         name,
		ParamValue:      value,
		ParamType:       common.MAV_PARAM_TYPE_REAL32,
	})
	if err != nil {
		dropWaiter()
		return fmt.Errorf("error sending param %s: %w", name, err)
	}

	timeout := time.NewTimer(s.ackTimeout)
	defer timeout.Stop()
	select {
	case <-ch:
		return nil
	case <-timeout.C:
		dropWaiter()
		return fmt.Errorf("timed out waiting for echo of param %s", name)
	case <-ctx.Done():
		dropWaiter()
		return ctx.Err()
	}
}

func (s *System) setMode(ctx context.Context, mode FlightMode) error {
	custom := customModeFor(mode)
	if custom == 0 {
		return fmt.Errorf("flight mode %v cannot be commanded", mode)
	}
	return s.sendCommand(ctx, common.MAV_CMD_DO_SET_MODE, [7]float32{
		float32(common.MAV_MODE_FLAG_CUSTOM_MODE_ENABLED),
		float32((custom >> 16) & 0xff),
		float32((custom >> 24) & 0xff),
	})
}
