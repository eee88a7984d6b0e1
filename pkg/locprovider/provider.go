// Package locprovider receives target position reports over UDP and hands
// them to a subscriber. One datagram carries one ASCII report of the form
// "<vehicleID>:<lat>:<lon>" in decimal degrees.
package locprovider

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Handler receives every accepted position report.
type Handler func(lat, lon float64)

// Report is a single parsed position datagram.
type Report struct {
	VehicleID int
	Lat       float64
	Lon       float64
}

// ParseReport parses one datagram payload.
func ParseReport(data []byte) (Report, error) {
	fields := strings.Split(strings.TrimSpace(string(data)), ":")
	if len(fields) != 3 {
		return Report{}, fmt.Errorf("report %q has %d fields, want 3", data, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Report{}, fmt.Errorf("error parsing vehicle ID: %w", err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Report{}, fmt.Errorf("error parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Report{}, fmt.Errorf("error parsing longitude: %w", err)
	}
	return Report{VehicleID: id, Lat: lat, Lon: lon}, nil
}

// Provider listens for position datagrams of a single vehicle.
type Provider struct {
	addr      string
	vehicleID int

	mux       sync.RWMutex
	handler   Handler
	localAddr net.Addr

	running atomic.Bool
}

// New creates a provider that will listen on host:port and only accept
// reports for the given vehicle ID.
func New(host string, port int, vehicleID int) *Provider {
	return &Provider{
		addr:      net.JoinHostPort(host, strconv.Itoa(port)),
		vehicleID: vehicleID,
	}
}

// Subscribe registers the handler invoked for every accepted report.
// A nil handler stops updates without stopping the receiver.
func (p *Provider) Subscribe(h Handler) {
	p.mux.Lock()
	p.handler = h
	p.mux.Unlock()
}

// IsRunning reports whether the receiver is listening.
func (p *Provider) IsRunning() bool {
	return p.running.Load()
}

// Addr returns the bound address, or nil before the receiver is up.
func (p *Provider) Addr() net.Addr {
	p.mux.RLock()
	defer p.mux.RUnlock()
	return p.localAddr
}

func (p *Provider) Run(ctx context.Context) {
	conn, err := net.ListenPacket("udp", p.addr)
	if err != nil {
		logrus.Error(fmt.Errorf("error listening on %s: %w", p.addr, err))
		return
	}
	logrus.Warnf("started location provider on %s", conn.LocalAddr())

	p.mux.Lock()
	p.localAddr = conn.LocalAddr()
	p.mux.Unlock()
	p.running.Store(true)
	defer p.running.Store(false)

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	buf := make([]byte, 512)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() == nil {
				logrus.Error(fmt.Errorf("error reading position report: %w", err))
			}
			logrus.Warnf("stopped location provider")
			return
		}

		report, err := ParseReport(buf[:n])
		if err != nil {
			logrus.Warnf("skipped malformed position report: %v", err)
			continue
		}
		if report.VehicleID != p.vehicleID {
			continue
		}

		p.mux.RLock()
		handler := p.handler
		p.mux.RUnlock()
		if handler != nil {
			handler(report.Lat, report.Lon)
		}
	}
}
