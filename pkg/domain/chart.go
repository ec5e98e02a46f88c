package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChartID uniquely identifies a chart request.
type ChartID uuid.UUID

// String returns the canonical UUID text.
func (c ChartID) String() string { return uuid.UUID(c).String() }

// ChartStatus is the lifecycle state of a chart.
type ChartStatus string

const (
	// ChartStatusPending means positions have not been fetched yet.
	ChartStatusPending ChartStatus = "PENDING"
	// ChartStatusCompleted means Result holds the classified placements.
	ChartStatusCompleted ChartStatus = "COMPLETED"
	// ChartStatusFailed means every attempt failed; see LastError.
	ChartStatusFailed ChartStatus = "FAILED"
)

// Valid reports whether s is a known status.
func (s ChartStatus) Valid() bool {
	switch s {
	case ChartStatusPending, ChartStatusCompleted, ChartStatusFailed:
		return true
	default:
		return false
	}
}

// Placement is one body's position together with its zodiac classification.
type Placement struct {
	Body           int     `json:"body"`
	Name           string  `json:"name"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Distance       float64 `json:"distance"`
	LongitudeSpeed float64 `json:"longitudeSpeed"`

	Sign             string  `json:"sign"`
	SignIndex        int     `json:"signIndex"`
	SignAbbreviation string  `json:"signAbbreviation"`
	Emoji            string  `json:"emoji"`
	Element          string  `json:"element"`
	Quality          string  `json:"quality"`
	DegreeWithinSign float64 `json:"degreeWithinSign"`
	House            string  `json:"house"`
	Retrograde       bool    `json:"retrograde"`
}

// SkippedBody records a body that could not be placed and why.
type SkippedBody struct {
	Body   int    `json:"body"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ChartResult is the outcome of computing a chart. Bodies that failed upstream
// or could not be classified are listed in Skipped instead of Placements.
type ChartResult struct {
	Placements []Placement   `json:"placements,omitempty"`
	Skipped    []SkippedBody `json:"skipped,omitempty"`
}

// Chart is a request to place the bodies at an instant, and its current state.
type Chart struct {
	ID     ChartID `json:"id"`
	UserID UserID  `json:"userId"`

	// Key is the canonical instant/frame pair shared by identical requests.
	Key string `json:"key"`
	// At is the instant the positions are computed for, in UTC.
	At time.Time `json:"at"`
	// Frame is the coordinate frame name, e.g. "geocentric".
	Frame string `json:"frame"`

	Status ChartStatus `json:"status"`
	Result ChartResult `json:"result"`

	// Attempts counts how many times computation was tried.
	Attempts uint `json:"attempts"`
	// LastError is the most recent computation error, if any.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
