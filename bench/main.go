package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/d3ce1t/uuidgen-server/utils"
	"github.com/d3ce1t/uuidgen-server/uuidgen"

	"github.com/aybabtme/uniplot/histogram"
)

type executionStats struct {
	min        time.Duration
	max        time.Duration
	avg        time.Duration
	cdur       time.Duration
	ops        int
	numSamples int
	numTimes   int
}

func (s executionStats) String() string {
	return fmt.Sprintf("min: %13v | max: %13v | avg: %13v | avg.ops: %8v | samples: %7v | total: %7v",
		s.min, s.max, s.avg, s.ops, s.numSamples, s.numTimes)
}

// bench -n 1000000 -c 4

func showError(errStr string) {
	fmt.Printf("\n\tError: %v\n\n", errStr)
	fmt.Printf("\t%v --help for usage information\n\n", os.Args[0])
}

func main() {

	// Init flags

	var numTimes int
	var numThreads int
	var batchSize int

	flag.IntVar(&numTimes, "n", 100000, "Number of UUIDs to generate")
	flag.IntVar(&numThreads, "c", 1, "Number of concurrent workers")
	flag.IntVar(&batchSize, "b", 1000, "UUIDs generated per sample")

	flag.Parse()

	if numTimes < 1 {
		showError("Number of UUIDs must be positive")
		return
	}

	if numThreads < 1 {
		showError("Number of workers must be positive")
		return
	}

	if batchSize < 1 || batchSize > numTimes {
		showError("Batch size must be between 1 and the number of UUIDs")
		return
	}

	registry := uuidgen.NewSequenceRegistry()

	generator, err := uuidgen.NewGenerator(registry, uuidgen.Config{})
	if err != nil {
		showError(err.Error())
		return
	}

	fmt.Printf("Node: %v | Clock sequence: %v\n\n", generator.Node(), generator.Sequence())

	executeBench(generator, numTimes, numThreads, batchSize)
}

func executeBench(generator *uuidgen.Generator, numTimes int, numWorkers int, batchSize int) {

	var wg sync.WaitGroup
	totalWork := numTimes / batchSize

	statsSlice := make([]executionStats, numWorkers)
	samplesSlice := make([][]float64, numWorkers)

	// Distribute work between workers

	startTime := time.Now()

	for i := 0; i < numWorkers; i++ {

		wg.Add(1)

		availableThreads := numWorkers - i
		workSize := int(math.Trunc(float64(totalWork) / float64(availableThreads)))
		if totalWork%availableThreads > 0 {
			workSize++
		}

		go func(workerId int, workSize int) {
			stats, samples := executeBenchInWorker(generator, workSize, batchSize)
			statsSlice[workerId] = stats
			samplesSlice[workerId] = samples
			// Print individual stats
			fmt.Printf("Worker: %3v | %v\n", workerId, stats)
			wg.Done()
		}(i, workSize)

		// Decrease remaining work
		totalWork -= workSize
	}

	wg.Wait()

	duration := time.Now().Sub(startTime)

	// Print global stats
	globalStats := computeGlobalStats(statsSlice, duration)
	fmt.Printf("Global: %v | %v\n\n", "---", globalStats)

	// Print batch latency histogram (milliseconds)
	allSamples := make([]float64, 0, numTimes/batchSize)
	for _, samples := range samplesSlice {
		allSamples = append(allSamples, samples...)
	}

	hist := histogram.Hist(10, allSamples)

	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		showError(err.Error())
	}
}

// Each sample is the time it takes to generate batchSize identifiers
func executeBenchInWorker(generator *uuidgen.Generator, numBatches int, batchSize int) (executionStats, []float64) {

	var min int64 = math.MaxInt64
	var max int64
	var sumDur time.Duration

	samples := make([]float64, 0, numBatches)

	for i := 0; i < numBatches; i++ {

		start := time.Now()

		for j := 0; j < batchSize; j++ {
			generator.NewUUID()
		}

		duration := time.Now().Sub(start)

		sumDur += duration
		durInt64 := int64(duration)
		min = utils.MinInt64(min, durInt64)
		max = utils.MaxInt64(max, durInt64)
		samples = append(samples, duration.Seconds()*1000)
	}

	numSamples := len(samples)
	opsPerSecond := float64(numSamples*batchSize) / sumDur.Seconds()
	avg := int64(float64(sumDur) / float64(numSamples))

	stats := executionStats{
		min:        time.Duration(min),
		max:        time.Duration(max),
		avg:        time.Duration(avg),
		cdur:       sumDur,
		ops:        int(opsPerSecond),
		numSamples: numSamples,
		numTimes:   numSamples * batchSize,
	}

	return stats, samples
}

func computeGlobalStats(statsSlice []executionStats, globalDuration time.Duration) executionStats {

	var min int64 = math.MaxInt64
	var max int64
	var cdur int64
	var numSamples int
	var numTimes int

	for _, stats := range statsSlice {
		min = utils.MinInt64(min, int64(stats.min))
		max = utils.MaxInt64(max, int64(stats.max))
		cdur += int64(stats.cdur)
		numSamples += stats.numSamples
		numTimes += stats.numTimes
	}

	opsPerSecond := float64(numTimes) / globalDuration.Seconds()
	avg := int64(float64(cdur) / float64(numSamples))

	return executionStats{
		min:        time.Duration(min),
		max:        time.Duration(max),
		avg:        time.Duration(avg),
		cdur:       time.Duration(cdur),
		ops:        int(opsPerSecond),
		numSamples: numSamples,
		numTimes:   numTimes,
	}
}
