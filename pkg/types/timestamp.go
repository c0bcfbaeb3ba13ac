package types

import "time"

// TimestampLayout is the wire format for envelope timestamps: fixed width,
// UTC, millisecond precision, trailing Z. Lexicographic order on encoded
// values matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is an instant encoded as text in TimestampLayout. The named type
// keeps envelope timestamps from mixing with arbitrary strings; construction
// does not validate the format, the serialization boundary does.
type Timestamp string

// Now returns the current UTC instant as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UTC().Format(TimestampLayout))
}

// Time parses the timestamp back into a time.Time.
func (t Timestamp) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, string(t))
}

// String implements fmt.Stringer.
func (t Timestamp) String() string {
	return string(t)
}
