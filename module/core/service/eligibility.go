package service

import (
	"math"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

// Eligibility is the outcome of checking one candidate against the
// anchor. DistanceKm and ElapsedMinutes are populated whenever the
// candidate had all required fields, eligible or not, so the
// dispatcher can reuse them in the alert payload.
type Eligibility struct {
	Eligible       bool
	DistanceKm     float64
	ElapsedMinutes float64
}

// EligibilityFilter decides whether a candidate observer is close
// enough in space and time to the anchor to receive an alert.
type EligibilityFilter struct {
	maxDistanceKm  float64
	maxTimeMinutes float64
}

func NewEligibilityFilter(maxDistanceKm, maxTimeMinutes float64) *EligibilityFilter {
	return &EligibilityFilter{
		maxDistanceKm:  maxDistanceKm,
		maxTimeMinutes: maxTimeMinutes,
	}
}

// Check evaluates one candidate. Candidates missing email, position or
// report time are never eligible. Both bounds are strict: a candidate
// sitting exactly on the distance or time limit is rejected. The
// caller must pass an anchor with position and report time present.
func (f *EligibilityFilter) Check(anchor, candidate *domain.Observer) Eligibility {
	if candidate.Email == nil || !candidate.HasPosition() {
		return Eligibility{}
	}

	dist := Distance(*anchor.Lat, *anchor.Lon, *candidate.Lat, *candidate.Lon)
	elapsed := roundMinutes(math.Abs(candidate.ReportedAt.Sub(*anchor.ReportedAt).Minutes()))

	return Eligibility{
		Eligible:       dist < f.maxDistanceKm && elapsed < f.maxTimeMinutes,
		DistanceKm:     dist,
		ElapsedMinutes: elapsed,
	}
}

// roundMinutes rounds to two decimal places; the rounded value is what
// gets compared against the time limit and reported in the alert.
func roundMinutes(m float64) float64 {
	return math.Round(m*100) / 100
}
