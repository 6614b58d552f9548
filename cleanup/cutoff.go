package cleanup

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidDateFormatMessage is shown to the user if the date cannot be parsed
const InvalidDateFormatMessage = "Error: Invalid date format. Please use YYYY-MM-DD."

// Cutoff is midnight of the user-supplied date. Directories created before it are stale.
type Cutoff struct {
	// Date as given by the user
	Date string
	Time time.Time
}

// Unix returns the cutoff in seconds since epoch
func (c Cutoff) Unix() int64 {
	return c.Time.Unix()
}

// ParseCutoff parses a strict YYYY-MM-DD date as midnight in the given location.
// Nothing else than four year digits, two month digits and two day digits of a valid calendar date is accepted.
func ParseCutoff(date string, location *time.Location) (Cutoff, error) {
	if location == nil {
		location = time.Local
	}

	t, err := time.ParseInLocation(DateLayout, date, location)

	if err != nil {
		return Cutoff{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	return Cutoff{Date: date, Time: t}, nil
}

// FormatTimestamp renders seconds since epoch as YYYY-MM-DD HH:MM:SS in the given location
func FormatTimestamp(timestamp int64, location *time.Location) string {
	if location == nil {
		location = time.Local
	}

	return time.Unix(timestamp, 0).In(location).Format(TimestampLayout)
}
