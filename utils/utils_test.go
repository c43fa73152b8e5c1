package utils

import (
	"testing"
	"time"
)

func TestMillisRoundTrip(t *testing.T) {

	now := time.Now()
	millis := TimeToMillis(now)
	restored := UnixMillisToTimeUTC(millis)

	if TimeToMillis(restored) != millis {
		t.Fatal("Millis round trip failed:", millis, "vs", TimeToMillis(restored))
	}
}

func TestMinMax(t *testing.T) {

	if MinInt(3, 5) != 3 || MinInt(5, 3) != 3 {
		t.Fatal("MinInt is broken")
	}

	if MinInt64(-1, 1) != -1 || MaxInt64(-1, 1) != 1 {
		t.Fatal("MinInt64/MaxInt64 are broken")
	}
}
