// Package timeutil combines the separately persisted calendar-date and
// time-of-day columns into instants. Work and break rows never carry a single
// combined timestamp, so every duration computation goes through here.
package timeutil

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04:05"
)

// CombineDateTime builds a local instant from a "2006-01-02" date and a
// "15:04:05" time-of-day.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+"T"+TimeOfDayLayout, date+"T"+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", date, timeOfDay, err)
	}
	return t, nil
}

// MinutesBetween returns the minute span between two time-of-day values on the
// same date. Sessions never cross midnight; the ledger closes them on the day
// they started.
func MinutesBetween(date, startTimeOfDay, endTimeOfDay string) (float64, error) {
	start, err := CombineDateTime(date, startTimeOfDay)
	if err != nil {
		return 0, err
	}
	end, err := CombineDateTime(date, endTimeOfDay)
	if err != nil {
		return 0, err
	}
	return end.Sub(start).Minutes(), nil
}

// DateRange returns every date in the inclusive [startDate, endDate] range.
func DateRange(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", startDate, err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date %q: %w", endDate, err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}
