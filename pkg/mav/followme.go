package mav

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"
)

// FollowDirection is the side of the target the vehicle keeps while
// following.
type FollowDirection int

const (
	DirectionNone FollowDirection = iota
	DirectionBehind
	DirectionFront
	DirectionFrontRight
	DirectionFrontLeft
)

// paramValue maps the direction to the autopilot's NAV_FT_FS encoding.
func (d FollowDirection) paramValue() float32 {
	switch d {
	case DirectionFrontRight:
		return 0
	case DirectionFront:
		return 2
	case DirectionFrontLeft:
		return 3
	}
	return 1 // behind
}

// FollowConfig mirrors the autopilot's follow-target parameters.
type FollowConfig struct {
	MinHeightM      float32
	FollowDistanceM float32
	Direction       FollowDirection
	Responsiveness  float32 // 0..1, target position filtering
}

// TargetLocation is a position streamed to the vehicle while following.
type TargetLocation struct {
	LatitudeDeg       float64
	LongitudeDeg      float64
	AbsoluteAltitudeM float32
}

// FollowMe drives the autopilot's follow-target mode: it pushes the follow
// parameters, switches the mode, and streams target locations.
type FollowMe struct {
	sys *System

	mux     sync.RWMutex
	last    TargetLocation
	hasLast bool
}

func NewFollowMe(sys *System) *FollowMe {
	return &FollowMe{sys: sys}
}

// SetConfig writes the follow parameters and waits for each echo. The
// direction must be set explicitly; DirectionNone is an error, not a
// default.
func (f *FollowMe) SetConfig(ctx context.Context, cfg FollowConfig) error {
	if cfg.Direction == DirectionNone {
		return fmt.Errorf("follow direction is not set")
	}
	params := []struct {
		name  string
		value float32
	}{
		{"NAV_MIN_FT_HT", cfg.MinHeightM},
		{"NAV_FT_DST", cfg.FollowDistanceM},
		{"NAV_FT_FS", cfg.Direction.paramValue()},
		{"NAV_FT_RS", cfg.Responsiveness},
	}
	for _, p := range params {
		if err := f.sys.setParam(ctx, p.name, p.value); err != nil {
			return fmt.Errorf("error setting %s: %w", p.name, err)
		}
	}
	return nil
}

func (f *FollowMe) Start(ctx context.Context) error {
	return f.sys.setMode(ctx, FlightModeFollowMe)
}

// Stop leaves follow mode by switching the vehicle to hold.
func (f *FollowMe) Stop(ctx context.Context) error {
	return f.sys.setMode(ctx, FlightModeHold)
}

// SetTargetLocation streams one target position to the vehicle.
func (f *FollowMe) SetTargetLocation(loc TargetLocation) error {
	err := f.sys.sendMessage(&common.MessageFollowTarget{
		Timestamp:       uint64(time.Now().UnixMilli()),
		EstCapabilities: 1, // position only
		Lat:             int32(loc.LatitudeDeg * 1e7),
		Lon:             int32(loc.LongitudeDeg * 1e7),
		Alt:             loc.AbsoluteAltitudeM,
	})
	if err != nil {
		return fmt.Errorf("error sending follow target: %w", err)
	}

	f.mux.Lock()
	f.last = loc
	f.hasLast = true
	f.mux.Unlock()
	return nil
}

// LastLocation returns the most recently streamed target, if any.
func (f *FollowMe) LastLocation() (TargetLocation, bool) {
	f.mux.RLock()
	defer f.mux.RUnlock()
	return f.last, f.hasLast
}
