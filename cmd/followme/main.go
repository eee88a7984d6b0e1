// Command followme is a follow-me flight demo. It connects to a single
// autopilot, arms and launches it, switches it to follow mode and streams
// target positions received over UDP from an external location source until
// the follow window ends, then lands.
//
// Usage:
//
//	followme -url udp://:14540 -provider-port 65191 -vehicle-id 0 -duration 60s
//
// Connection URL formats:
//
//	For UDP (listen) : udp://[bind_host][:bind_port]
//	For UDP (dial)   : udpout://host:port
//	For TCP          : tcp://host:port
//	For Serial       : serial:///path/to/serial/dev[:baudrate]
//
// For example, to connect to the simulator use URL: udp://:14540
package main

import (
	"context"
	"flag"
	"os"
	"syscall"
	"time"

	"github.com/einherij/enterprise"
	"github.com/einherij/enterprise/utils"
	"github.com/sirupsen/logrus"

	"github.com/eknabevcc/rise-sdvp/pkg/follow"
	"github.com/eknabevcc/rise-sdvp/pkg/gsclient"
	"github.com/eknabevcc/rise-sdvp/pkg/locprovider"
	"github.com/eknabevcc/rise-sdvp/pkg/mav"
	"github.com/eknabevcc/rise-sdvp/pkg/track"
)

func main() {
	connURL := flag.String("url", "udp://:14540", "connection URL (udp://, udpout://, tcp://, serial://)")
	providerHost := flag.String("provider-host", "localhost", "location provider bind host")
	providerPort := flag.Int("provider-port", 65191, "location provider bind port")
	vehicleID := flag.Int("vehicle-id", 0, "ID of the vehicle to follow")
	duration := flag.Duration("duration", 60*time.Second, "how long to follow before landing")
	trackPath := flag.String("track", "", "path to save the flight track CSV, empty to disable")
	flag.Parse()

	handlerHostURL := os.Getenv("HANDLER_HOST_URL")

	app := enterprise.NewApplication()

	sys := utils.Must(mav.Connect(*connURL))
	app.RegisterOnShutdown(func() {
		sys.Close()
		logrus.Warnf("mavlink link closed")
	})

	var gs *gsclient.Client
	if handlerHostURL != "" {
		gs = gsclient.New(handlerHostURL)
		app.RegisterRunner(gs)
	}

	provider := locprovider.New(*providerHost, *providerPort, *vehicleID)
	app.RegisterRunner(provider)

	var recorder *track.Recorder
	if *trackPath != "" {
		recorder = track.NewRecorder()
		app.RegisterOnShutdown(func() {
			if err := track.SaveTrack(*trackPath, recorder); err != nil {
				logrus.Error(err)
			}
		})
	}

	mission := follow.New(
		sys,
		mav.NewAction(sys),
		mav.NewTelemetry(sys),
		mav.NewFollowMe(sys),
		provider,
		gs,
		recorder,
		follow.Config{
			FollowDuration: *duration,
			Follow: mav.FollowConfig{
				MinHeightM:      8.0,
				FollowDistanceM: 1.0,
				Direction:       mav.DirectionFront,
			},
		},
	)
	app.RegisterRunner(runnerFunc(func(ctx context.Context) {
		mission.Run(ctx)
		// The demo is over once the mission returns; ask the application
		// to shut down so the track gets saved and the link closed.
		if proc, err := os.FindProcess(os.Getpid()); err == nil {
			_ = proc.Signal(syscall.SIGTERM)
		}
	}))

	app.Run()
}

// TODO: add runnerFunc to enterprise
type runnerFunc func(ctx context.Context)

func (r runnerFunc) Run(ctx context.Context) {
	r(ctx)
}
