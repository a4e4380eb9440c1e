package metrics

import (
	"github.com/nftmart/goclient/base/log"
)

// LogClient is a statsd stand-in that writes bumps to the debug log. Used
// when no datadog agent is configured.
type LogClient struct{}

// Gauge measures the value of a particular thing at a particular time
func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric gauge")
	return nil
}

// Count tracks how many times something happened per second
func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric count")
	return nil
}

// Histogram tracks the statistical distribution of a set of values
func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric histogram")
	return nil
}

// TimeInMilliseconds is a special case of histograms for timers
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "time_ms": value, "tags": tags}).Debug("metric time")
	return nil
}
