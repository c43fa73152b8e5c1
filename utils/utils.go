package utils

import (
	"time"
)

// Get current time in millis
func GetCurrentTimeMillis() int64 {
	return TimeToMillis(time.Now())
}

// Return time as millis
func TimeToMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func UnixMillisToTimeUTC(timestamp int64) time.Time {
	seconds := timestamp / 1000
	millis := timestamp % 1000
	return time.Unix(seconds, millis*int64(time.Millisecond)).UTC()
}

func MinInt(a, b int) int {
	if a <= b {
		return a
	}
	return b
}

func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
