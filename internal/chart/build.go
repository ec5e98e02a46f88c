package chart

import (
	"errors"

	"skychart/pkg/domain"
	"skychart/pkg/ephemeris"
	"skychart/pkg/zodiac"
)

// Place classifies one position.
func Place(p ephemeris.Position) (domain.Placement, error) {
	c, err := zodiac.Classify(p.Longitude, p.LongitudeSpeed)
	if err != nil {
		return domain.Placement{}, err
	}

	name := p.Name
	if name == "" {
		name = p.Body.String()
	}

	return domain.Placement{
		Body:             int(p.Body),
		Name:             name,
		Longitude:        c.Longitude,
		Latitude:         p.Latitude,
		Distance:         p.Distance,
		LongitudeSpeed:   p.LongitudeSpeed,
		Sign:             c.Sign.String(),
		SignIndex:        c.Sign.Index(),
		SignAbbreviation: c.Sign.Abbreviation(),
		Emoji:            c.Emoji(),
		Element:          string(c.Element()),
		Quality:          string(c.Quality()),
		DegreeWithinSign: c.DegreeWithinSign,
		House:            c.House.Label(),
		Retrograde:       c.Retrograde,
	}, nil
}

// Build classifies every position of batch in order. Upstream failures and
// positions that cannot be classified are reported in Skipped; neither aborts
// the chart.
func Build(batch ephemeris.Batch) domain.ChartResult {
	var res domain.ChartResult
	for _, p := range batch.Positions {
		placement, err := Place(p)
		if err != nil {
			res.Skipped = append(res.Skipped, skipped(p.Body, err))

			continue
		}

		res.Placements = append(res.Placements, placement)
	}

	for _, f := range batch.Failures {
		res.Skipped = append(res.Skipped, skipped(f.Body, f.Err))
	}

	return res
}

func skipped(body ephemeris.Body, err error) domain.SkippedBody {
	reason := "unknown error"
	if err != nil {
		reason = unwrapEphemeris(err).Error()
	}

	return domain.SkippedBody{Body: int(body), Name: body.String(), Reason: reason}
}

// unwrapEphemeris drops the "ephemeris: body:" prefix, which the skipped
// entry already carries as Name.
func unwrapEphemeris(err error) error {
	var e *ephemeris.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err
	}

	return err
}
