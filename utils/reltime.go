package utils

import (
	"strconv"
	"sync"
)

// RelativeFormatter renders event timestamps as the number of
// milliseconds elapsed since a fixed start instant (usually process
// start). The last rendered string is cached keyed by the raw timestamp,
// so bursts of events sharing one timestamp format only once.
type RelativeFormatter struct {
	mutex         sync.Mutex
	startMillis   int64
	lastTimestamp int64
	cached        string
}

func NewRelativeFormatter() *RelativeFormatter {
	return NewRelativeFormatterAt(GetCurrentTimeMillis())
}

func NewRelativeFormatterAt(startMillis int64) *RelativeFormatter {
	return &RelativeFormatter{startMillis: startMillis}
}

// Format returns timestampMillis - start as a decimal string, recomputing
// only when the timestamp differs from the previous call
func (f *RelativeFormatter) Format(timestampMillis int64) string {

	defer f.mutex.Unlock()
	f.mutex.Lock()

	if timestampMillis != f.lastTimestamp || f.cached == "" {
		f.lastTimestamp = timestampMillis
		f.cached = strconv.FormatInt(timestampMillis-f.startMillis, 10)
	}

	return f.cached
}
