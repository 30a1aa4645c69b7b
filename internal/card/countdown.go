package card

import (
	"fmt"
	"strings"
	"time"
)

// Countdown is the remaining whole-unit time until an event. All
// components are zero once the event time has passed; there is no
// negative or elapsed mode.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Until computes the countdown from now to target, floored at zero.
func Until(target, now time.Time) Countdown {
	d := target.Sub(now)
	if d <= 0 {
		return Countdown{}
	}
	secs := int(d / time.Second)
	return Countdown{
		Days:    secs / 86400,
		Hours:   (secs / 3600) % 24,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}

// EventTime combines the free-form date and time field strings into an
// instant in loc. The fields are stored as entered; a date that does
// not parse yields an error and the countdown stays at zero.
func EventTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("card: empty event date")
	}
	if timeStr == "" {
		timeStr = "00:00"
	}
	combined := dateStr + " " + timeStr
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05", "2006/01/02 15:04"} {
		if ts, err := time.ParseInLocation(layout, combined, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("card: unparseable event time %q", combined)
}
