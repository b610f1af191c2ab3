package hostval

import (
	"time"

	hostjson "github.com/wippyai/hostjson"
)

// Date is a calendar date with no time-of-day.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (Date) Type() *hostjson.Type { return hostjson.TypeDate }

func (d Date) DateParts() hostjson.DateParts {
	return hostjson.DateParts{Year: d.Year, Month: d.Month, Day: d.Day}
}

// Time is a wall-clock time with no date. Zoned marks times the host
// created with timezone information attached; the encoder rejects those.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	Zoned       bool
}

func (Time) Type() *hostjson.Type { return hostjson.TypeTime }

func (t Time) TimeParts() hostjson.TimeParts {
	return hostjson.TimeParts{
		Hour:        t.Hour,
		Minute:      t.Minute,
		Second:      t.Second,
		Microsecond: t.Microsecond,
	}
}

func (t Time) HasZone() bool { return t.Zoned }

// DateTime is a point in time with an explicit zone classification. The
// zone kind is fixed by the constructor rather than inferred from the
// time.Location, since Go does not distinguish a FixedZone from a loaded
// rules-based zone after construction.
type DateTime struct {
	t    time.Time
	zone hostjson.Zone
}

// DateTimeUTC wraps t as a UTC date-time (renders with a Z suffix).
func DateTimeUTC(t time.Time) DateTime {
	return DateTime{t: t.UTC(), zone: hostjson.ZoneUTC}
}

// DateTimeNaive wraps t as a zone-less date-time (renders with no suffix).
// The wall-clock fields are taken as-is.
func DateTimeNaive(t time.Time) DateTime {
	return DateTime{t: t, zone: hostjson.ZoneNaive}
}

// DateTimeOffset wraps t as a fixed-offset date-time; the offset is read
// from t's zone (renders with a ±HH:MM suffix).
func DateTimeOffset(t time.Time) DateTime {
	return DateTime{t: t, zone: hostjson.ZoneFixed}
}

// DateTimeNamed wraps t as carrying a rules-based named zone, which the
// encoder cannot reduce to a canonical suffix and rejects.
func DateTimeNamed(t time.Time) DateTime {
	return DateTime{t: t, zone: hostjson.ZoneUnsupported}
}

func (DateTime) Type() *hostjson.Type { return hostjson.TypeDateTime }

func (d DateTime) DateParts() hostjson.DateParts {
	year, month, day := d.t.Date()
	return hostjson.DateParts{Year: year, Month: int(month), Day: day}
}

func (d DateTime) TimeParts() hostjson.TimeParts {
	return hostjson.TimeParts{
		Hour:        d.t.Hour(),
		Minute:      d.t.Minute(),
		Second:      d.t.Second(),
		Microsecond: d.t.Nanosecond() / 1000,
	}
}

func (d DateTime) Zone() (hostjson.Zone, int) {
	_, offset := d.t.Zone()
	return d.zone, offset
}
