// Package follow runs the follow-me demo mission: launch the vehicle, feed
// it target positions from the location provider, land when done.
package follow

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eknabevcc/rise-sdvp/pkg/geo"
	"github.com/eknabevcc/rise-sdvp/pkg/gsclient"
	"github.com/eknabevcc/rise-sdvp/pkg/locprovider"
	"github.com/eknabevcc/rise-sdvp/pkg/mav"
	"github.com/eknabevcc/rise-sdvp/pkg/mavinter"
	"github.com/eknabevcc/rise-sdvp/pkg/track"
)

const (
	// MaxFollowDistanceMeters is the sanity threshold: target updates
	// implying a larger per-axis offset from the vehicle are skipped.
	MaxFollowDistanceMeters = 5.0

	defaultFollowDuration = 60 * time.Second
	minTakeoffAltitudeM   = 2.4
)

const (
	abortNone int32 = iota
	abortExternal
	abortCommand
)

// LocationSource delivers target position updates.
type LocationSource interface {
	Subscribe(h locprovider.Handler)
	IsRunning() bool
}

type Config struct {
	// FollowDuration bounds the follow window (default 60s).
	FollowDuration time.Duration
	// MaxDistanceM overrides MaxFollowDistanceMeters when positive.
	MaxDistanceM float64
	// Follow is pushed to the vehicle before follow mode starts.
	Follow mav.FollowConfig
}

type Mission struct {
	conn      mavinter.Connection
	action    mavinter.Action
	telemetry mavinter.Telemetry
	followMe  mavinter.FollowMe
	source    LocationSource
	gs        *gsclient.Client // may be nil
	recorder  *track.Recorder  // may be nil

	duration     time.Duration
	maxDistanceM float64
	pollInterval time.Duration
	followCfg    mav.FollowConfig

	abort atomic.Int32
}

func New(
	conn mavinter.Connection,
	action mavinter.Action,
	telemetry mavinter.Telemetry,
	followMe mavinter.FollowMe,
	source LocationSource,
	gs *gsclient.Client,
	recorder *track.Recorder,
	cfg Config,
) *Mission {
	m := &Mission{
		conn:         conn,
		action:       action,
		telemetry:    telemetry,
		followMe:     followMe,
		source:       source,
		gs:           gs,
		recorder:     recorder,
		duration:     cfg.FollowDuration,
		maxDistanceM: cfg.MaxDistanceM,
		pollInterval: time.Second,
		followCfg:    cfg.Follow,
	}
	if m.duration <= 0 {
		m.duration = defaultFollowDuration
	}
	if m.maxDistanceM <= 0 {
		m.maxDistanceM = MaxFollowDistanceMeters
	}
	return m
}

func (m *Mission) Run(ctx context.Context) {
	logrus.Warnf("started follow mission")
	if err := m.fly(ctx); err != nil && ctx.Err() == nil {
		logrus.Error(fmt.Errorf("follow mission failed: %w", err))
	}
	logrus.Warnf("stopped follow mission")
}

func (m *Mission) fly(ctx context.Context) error {
	for !m.conn.Discovered() {
		m.log("waiting to discover system")
		if err := sleep(ctx, m.pollInterval); err != nil {
			return err
		}
	}
	if n := len(m.conn.Systems()); n > 1 {
		return fmt.Errorf("discovered %d systems, expected exactly one", n)
	}

	for !m.telemetry.HealthAllOK() {
		m.log("waiting for system to be ready")
		if err := sleep(ctx, m.pollInterval); err != nil {
			return err
		}
	}
	m.log("system is ready")

	if !m.telemetry.Armed() {
		if err := m.action.Arm(ctx); err != nil {
			return fmt.Errorf("arming failed: %w", err)
		}
	}
	m.log("armed")

	if !m.telemetry.InAir() {
		if err := m.action.Takeoff(ctx); err != nil {
			return fmt.Errorf("takeoff failed: %w", err)
		}
		for m.telemetry.Position().RelativeAltitudeM < minTakeoffAltitudeM {
			if err := sleep(ctx, m.pollInterval); err != nil {
				return err
			}
		}
	}
	m.log("in air")

	if err := m.followMe.SetConfig(ctx, m.followCfg); err != nil {
		return fmt.Errorf("follow configuration failed: %w", err)
	}
	if err := m.followMe.Start(ctx); err != nil {
		return fmt.Errorf("failed to start follow mode: %w", err)
	}
	m.log("following")
	m.status("following")

	m.telemetry.SubscribeFlightMode(m.onFlightMode)
	m.source.Subscribe(m.onLocation)

	m.followWindow(ctx)

	m.source.Subscribe(nil)
	m.telemetry.SubscribeFlightMode(nil)

	if m.abort.Load() == abortExternal {
		// Someone else is flying the vehicle now, leave it alone.
		m.status("aborted")
		return nil
	}

	if err := m.followMe.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop follow mode: %w", err)
	}

	if err := m.action.Land(ctx); err != nil {
		return fmt.Errorf("landing failed: %w", err)
	}
	for m.telemetry.InAir() {
		m.log("waiting until landed")
		if err := sleep(ctx, m.pollInterval); err != nil {
			return err
		}
	}
	m.log("landed")
	m.status("landed")
	return nil
}

// followWindow blocks until the follow duration elapses, the location
// source stops, the flight mode is changed externally, or the ground
// station commands an end.
func (m *Mission) followWindow(ctx context.Context) {
	windowCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if m.gs != nil {
		go m.watchCommands(windowCtx)
	}

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(m.duration)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-ticker.C:
			if m.abort.Load() != abortNone {
				return
			}
			if !m.source.IsRunning() {
				logrus.Warnf("location provider stopped")
				return
			}
			pos := m.telemetry.Position()
			if m.recorder != nil {
				m.recorder.Add(track.Point{
					Time:   time.Now().UTC(),
					Source: track.SourceDrone,
					Lat:    pos.LatitudeDeg,
					Lon:    pos.LongitudeDeg,
					AltM:   float64(pos.RelativeAltitudeM),
				})
			}
			if m.gs != nil {
				m.gs.TrySendMessage(gsclient.Message{
					Type:    gsclient.MTPos,
					Content: []byte(fmt.Sprintf("%.7f,%.7f,%.2f", pos.LatitudeDeg, pos.LongitudeDeg, pos.RelativeAltitudeM)),
				})
			}
		}
	}
}

func (m *Mission) watchCommands(ctx context.Context) {
	for {
		msg := m.gs.ReceiveMessage(ctx)
		if ctx.Err() != nil {
			return
		}
		if msg.Type != gsclient.MTCmd {
			continue
		}
		switch string(msg.Content) {
		case "land", "abort":
			logrus.Warnf("received %s command from ground station", msg.Content)
			m.abort.Store(abortCommand)
			return
		}
	}
}

func (m *Mission) onFlightMode(mode mav.FlightMode) {
	if mode != mav.FlightModeFollowMe {
		logrus.Warnf("flight mode was changed externally to %v", mode)
		m.abort.Store(abortExternal)
		return
	}
	if last, ok := m.followMe.LastLocation(); ok {
		logrus.Infof("[FlightMode: %v] following target at: %.7f, %.7f", mode, last.LatitudeDeg, last.LongitudeDeg)
	}
}

func (m *Mission) onLocation(lat, lon float64) {
	if m.abort.Load() != abortNone {
		return
	}
	pos := m.telemetry.Position()
	if !geo.WithinBox(pos.LatitudeDeg, pos.LongitudeDeg, lat, lon, m.maxDistanceM) {
		logrus.Warnf("skipped position %.7f, %.7f", lat, lon)
		return
	}
	err := m.followMe.SetTargetLocation(mav.TargetLocation{
		LatitudeDeg:  lat,
		LongitudeDeg: lon,
	})
	if err != nil {
		logrus.Error(fmt.Errorf("error setting target location: %w", err))
		return
	}
	if m.recorder != nil {
		m.recorder.Add(track.Point{
			Time:   time.Now().UTC(),
			Source: track.SourceTarget,
			Lat:    lat,
			Lon:    lon,
		})
	}
}

func (m *Mission) log(info string) {
	logrus.Warnf("%s", info)
	if m.gs != nil {
		m.gs.TrySendMessage(gsclient.Message{
			Type:    gsclient.MTLog,
			Content: []byte(info),
		})
	}
}

func (m *Mission) status(state string) {
	if m.gs != nil {
		m.gs.TrySendMessage(gsclient.Message{
			Type:    gsclient.MTStatus,
			Content: []byte(state),
		})
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
