// Package track records the positions seen during a follow flight, both
// where the drone was and where it was told to go.
package track

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	SourceDrone  = "drone"
	SourceTarget = "target"
)

type Point struct {
	Time   time.Time
	Source string
	Lat    float64
	Lon    float64
	AltM   float64
}

type Recorder struct {
	mux    sync.RWMutex
	points []Point
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Add(p Point) {
	r.mux.Lock()
	r.points = append(r.points, p)
	r.mux.Unlock()
}

func (r *Recorder) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.points)
}

func (r *Recorder) Points() []Point {
	r.mux.RLock()
	defer r.mux.RUnlock()
	points := make([]Point, len(r.points))
	copy(points, r.points)
	return points
}

func LoadTrack(path string) (*Recorder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() { _ = f.Close() }()
	r, err := ReadTrack(f)
	if err != nil {
		return nil, fmt.Errorf("error reading track: %w", err)
	}
	return r, nil
}

func ReadTrack(src io.Reader) (*Recorder, error) {
	var atof = func(a string) float64 {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			logrus.Warnf("error converting string to float: %q", a)
		}
		return f
	}
	var r = NewRecorder()
	br := bufio.NewReader(src)
	for {
		line, _, err := br.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading line: %w", err)
		}
		if len(line) == 0 || string(line) == header {
			continue
		}
		fields := strings.Split(string(line), ",")
		if len(fields) != 5 {
			logrus.Warnf("broken track line: %q", line)
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			logrus.Warnf("error parsing time: %q", fields[0])
			continue
		}
		r.Add(Point{
			Time:   t,
			Source: fields[1],
			Lat:    atof(fields[2]),
			Lon:    atof(fields[3]),
			AltM:   atof(fields[4]),
		})
	}
	return r, nil
}

func SaveTrack(path string, r *Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	err = WriteTrack(f, r)
	if err != nil {
		return fmt.Errorf("error writing track: %w", err)
	}
	return nil
}

const header = "time,source,lat,lon,alt"

func WriteTrack(dest io.Writer, r *Recorder) error {
	r.mux.RLock()
	defer r.mux.RUnlock()

	if _, err := dest.Write([]byte(header + "\n")); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for _, p := range r.points {
		line := fmt.Sprintf("%s,%s,%.7f,%.7f,%.2f\n",
			p.Time.Format(time.RFC3339Nano), p.Source, p.Lat, p.Lon, p.AltM)
		if _, err := dest.Write([]byte(line)); err != nil {
			return fmt.Errorf("error writing point: %w", err)
		}
	}
	return nil
}
