package mav

import (
	"context"

	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"
)

// Action issues basic flight commands. Each command is sent once and waits
// for the autopilot's ack.
type Action struct {
	sys *System
}

func NewAction(sys *System) *Action {
	return &Action{sys: sys}
}

func (a *Action) Arm(ctx context.Context) error {
	return a.sys.sendCommand(ctx, common.MAV_CMD_COMPONENT_ARM_DISARM, [7]float32{1})
}

// Takeoff climbs to the autopilot's configured takeoff altitude.
func (a *Action) Takeoff(ctx context.Context) error {
	return a.sys.sendCommand(ctx, common.MAV_CMD_NAV_TAKEOFF, [7]float32{})
}

func (a *Action) Land(ctx context.Context) error {
	return a.sys.sendCommand(ctx, common.MAV_CMD_NAV_LAND, [7]float32{})
}
