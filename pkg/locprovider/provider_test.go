package locprovider

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ProviderSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) TestParseReport() {
	report, err := ParseReport([]byte("0:57.71495:12.89134"))
	s.NoError(err)
	s.Equal(0, report.VehicleID)
	s.InDelta(57.71495, report.Lat, 1e-9)
	s.InDelta(12.89134, report.Lon, 1e-9)

	report, err = ParseReport([]byte("3:-33.8688:151.2093\n"))
	s.NoError(err)
	s.Equal(3, report.VehicleID)
	s.InDelta(-33.8688, report.Lat, 1e-9)
	s.InDelta(151.2093, report.Lon, 1e-9)

	_, err = ParseReport([]byte("57.71495:12.89134"))
	s.Error(err)
	_, err = ParseReport([]byte("x:57.7:12.8"))
	s.Error(err)
	_, err = ParseReport([]byte("0:north:12.8"))
	s.Error(err)
	_, err = ParseReport([]byte("0:57.7:east"))
	s.Error(err)
	_, err = ParseReport([]byte(""))
	s.Error(err)
}

func (s *ProviderSuite) TestReceive() {
	provider := New("127.0.0.1", 0, 2)

	type update struct{ lat, lon float64 }
	updates := make(chan update, 8)
	provider.Subscribe(func(lat, lon float64) {
		updates <- update{lat: lat, lon: lon}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		provider.Run(ctx)
		close(done)
	}()

	s.Eventually(func() bool { return provider.Addr() != nil }, time.Second, 10*time.Millisecond)
	s.True(provider.IsRunning())

	conn, err := net.Dial("udp", provider.Addr().String())
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	// Reports for other vehicles and garbage must be dropped, the rest
	// delivered in order.
	_, err = conn.Write([]byte("1:10.0:20.0"))
	s.NoError(err)
	_, err = conn.Write([]byte("not a report"))
	s.NoError(err)
	_, err = conn.Write([]byte("2:57.71495:12.89134"))
	s.NoError(err)

	select {
	case got := <-updates:
		s.InDelta(57.71495, got.lat, 1e-9)
		s.InDelta(12.89134, got.lon, 1e-9)
	case <-time.After(2 * time.Second):
		s.Fail("no update received")
	}
	s.Empty(updates)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("provider did not stop")
	}
	s.False(provider.IsRunning())
}

func (s *ProviderSuite) TestNilHandler() {
	provider := New("127.0.0.1", 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go provider.Run(ctx)

	s.Eventually(func() bool { return provider.Addr() != nil }, time.Second, 10*time.Millisecond)

	conn, err := net.Dial("udp", provider.Addr().String())
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	// No subscriber registered: the report is dropped, not crashed on.
	_, err = conn.Write([]byte("0:57.7:12.8"))
	s.NoError(err)
	time.Sleep(50 * time.Millisecond)
	s.True(provider.IsRunning())
}
