// Package timeutil keeps time handling consistent across the module. All
// times are represented in UTC and persisted timestamps are Unix seconds.
package timeutil

import "time"

func TimestampNow() int {
	return Timestamp(Now())
}

func Timestamp(t time.Time) int {
	return int(t.Unix())
}

func Now() time.Time {
	return time.Now().UTC()
}
