package timezone

import "time"

func mustLoadLocation(zone string) *time.Location {
	location, err := time.LoadLocation(zone)
	if err != nil {
		panic(err)
	}
	return location
}

// Kréta reports wall-clock times without an offset, they are always Budapest local time.
var budapestLocation = mustLoadLocation("Europe/Budapest")

func InBudapest(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), budapestLocation)
}
