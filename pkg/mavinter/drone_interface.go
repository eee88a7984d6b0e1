package mavinter

import (
	"context"

	"github.com/eknabevcc/rise-sdvp/pkg/mav"
)

//go:generate mockgen -source=drone_interface.go -destination=mocks/drone_interface.go -package=mocks

// Connection reports what has been discovered on the link.
type Connection interface {
	Discovered() bool
	Systems() []byte
}

type Action interface {
	Arm(ctx context.Context) error
	Takeoff(ctx context.Context) error
	Land(ctx context.Context) error
}

type Telemetry interface {
	HealthAllOK() bool
	Armed() bool
	InAir() bool
	Position() mav.Position
	FlightMode() mav.FlightMode
	SubscribeFlightMode(cb func(mav.FlightMode))
}

type FollowMe interface {
	SetConfig(ctx context.Context, cfg mav.FollowConfig) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	SetTargetLocation(loc mav.TargetLocation) error
	LastLocation() (mav.TargetLocation, bool)
}
