// Package lunar derives the textual moon phase for a calendar date.
// The phase is geocentric; the observer coordinates are carried for the
// record (they come from configuration together with the rest of the
// journal's fixed location data).
package lunar

import (
	"errors"
	"math"
	"time"
)

const (
	// Mean length of the synodic month in days.
	synodicMonth = 29.530588853
	// Julian day of the new moon of 2000-01-06 18:14 UTC.
	newMoonEpoch = 2451550.1
)

var phaseNames = []string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

var ErrInvalidDate = errors.New("lunar: invalid date")

// MoonInfo computes lunar metadata for a fixed observer.
type MoonInfo struct {
	Latitude  float64
	Longitude float64
}

func NewMoonInfo(latitude, longitude float64) *MoonInfo {
	return &MoonInfo{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// julianDay returns the Julian day at 00:00 UTC of the given date.
func julianDay(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) - 0.5
}

// Age returns the moon age in days (0 <= age < synodic month) at the
// start of the given date.
func (mi *MoonInfo) Age(date time.Time) (float64, error) {
	if date.IsZero() {
		return 0, ErrInvalidDate
	}
	age := math.Mod(julianDay(date)-newMoonEpoch, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}
	return age, nil
}

// PhaseName returns the human-readable phase label for the given date,
// e.g. "Waxing Crescent". The result is deterministic for a date.
func (mi *MoonInfo) PhaseName(date time.Time) (string, error) {
	age, err := mi.Age(date)
	if err != nil {
		return "", err
	}
	idx := int(math.Floor(age/synodicMonth*8+0.5)) % 8
	return phaseNames[idx], nil
}
