// Package ephemfile provides an ephemeris.Client that replays positions
// recorded in a YAML file. It lets the CLI and tests run without the remote
// ephemeris service.
package ephemfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"skychart/pkg/ephemeris"
	"skychart/pkg/serrors"

	"gopkg.in/yaml.v3"
)

// File is the YAML document layout.
type File struct {
	Snapshots []Snapshot `yaml:"snapshots"`
}

// Snapshot holds every recorded body for one instant and frame.
type Snapshot struct {
	At        time.Time       `yaml:"at"`
	Frame     ephemeris.Frame `yaml:"frame"`
	Positions []Position      `yaml:"positions"`
	Failures  []Failure       `yaml:"failures"`
}

// Position is a recorded body position.
type Position struct {
	Body           int     `yaml:"body"`
	Name           string  `yaml:"name"`
	Longitude      float64 `yaml:"longitude"`
	Latitude       float64 `yaml:"latitude"`
	Distance       float64 `yaml:"distance"`
	LongitudeSpeed float64 `yaml:"longitudeSpeed"`
	LatitudeSpeed  float64 `yaml:"latitudeSpeed"`
	DistanceSpeed  float64 `yaml:"distanceSpeed"`
}

// Failure is a recorded upstream failure for a body.
type Failure struct {
	Body    int    `yaml:"body"`
	Message string `yaml:"message"`
}

// Provider serves positions from a parsed File.
type Provider struct {
	file File
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Provider, error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not open ephemeris file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f)
}

// Parse decodes a YAML document from r.
func Parse(r io.Reader) (*Provider, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode ephemeris file: %w", err)
	}
	for i, s := range file.Snapshots {
		if s.Frame == "" {
			file.Snapshots[i].Frame = ephemeris.Geocentric
		}
	}

	return &Provider{file: file}, nil
}

// Positions looks up the snapshot recorded for q.At and q.Frame.
func (p *Provider) Positions(ctx context.Context, q ephemeris.Query) (ephemeris.Batch, ephemeris.RateLimitStatus, error) {
	if err := ctx.Err(); err != nil {
		return ephemeris.Batch{}, ephemeris.RateLimitStatus{}, fmt.Errorf("could not read positions: %w", err)
	}

	frame := q.Frame
	if frame == "" {
		frame = ephemeris.Geocentric
	}

	var snap *Snapshot
	for i := range p.file.Snapshots {
		s := &p.file.Snapshots[i]
		if s.At.Equal(q.At) && s.Frame == frame {
			snap = s

			break
		}
	}
	if snap == nil {
		return ephemeris.Batch{}, ephemeris.RateLimitStatus{}, ephemeris.NewError(ephemeris.RequestBody,
			serrors.With(serrors.ErrNotFound, "no recorded positions at %s (%s)", q.At.UTC().Format(time.RFC3339), frame))
	}

	positions := make(map[ephemeris.Body]Position, len(snap.Positions))
	for _, pos := range snap.Positions {
		positions[ephemeris.Body(pos.Body)] = pos
	}
	failures := make(map[ephemeris.Body]string, len(snap.Failures))
	for _, f := range snap.Failures {
		failures[ephemeris.Body(f.Body)] = f.Message
	}

	var batch ephemeris.Batch
	for _, body := range q.Bodies {
		if msg, failed := failures[body]; failed {
			batch.Failures = append(batch.Failures, ephemeris.Failure{
				Body: body,
				Err:  ephemeris.NewError(body, serrors.With(serrors.ErrUnavailable, "%s", msg)),
			})

			continue
		}
		pos, ok := positions[body]
		if !ok {
			batch.Failures = append(batch.Failures, ephemeris.Failure{
				Body: body,
				Err:  ephemeris.NewError(body, serrors.With(serrors.ErrNotFound, "not recorded")),
			})

			continue
		}
		name := pos.Name
		if name == "" {
			name = body.String()
		}
		batch.Positions = append(batch.Positions, ephemeris.Position{
			Body:           body,
			Name:           name,
			Longitude:      pos.Longitude,
			Latitude:       pos.Latitude,
			Distance:       pos.Distance,
			LongitudeSpeed: pos.LongitudeSpeed,
			LatitudeSpeed:  pos.LatitudeSpeed,
			DistanceSpeed:  pos.DistanceSpeed,
		})
	}

	return batch, ephemeris.RateLimitStatus{}, nil
}

// Close is a no-op.
func (p *Provider) Close() error { return nil }

var _ ephemeris.Client = (*Provider)(nil)
