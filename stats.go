// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"sync"
)

// Stats holds counters for collection codec activity. Counting is off by
// default; enable it with SetStats. Useful mostly in tests and when
// auditing lenient decodes for silent data loss.
type Stats struct {
	Decoded        int
	Encoded        int
	DecodeFailures int
	NullGeometries int
}

var stats struct {
	sync.Mutex
	enabled bool
	Stats
}

// SetStats enables or disables stats collection. Disabling clears the
// counters.
func SetStats(enabled bool) {
	stats.Lock()
	stats.enabled = enabled
	if !enabled {
		stats.Stats = Stats{}
	}
	stats.Unlock()
}

// GetStats returns a snapshot of the current counters.
func GetStats() Stats {
	stats.Lock()
	defer stats.Unlock()
	return stats.Stats
}

// ResetStats zeroes the counters. It assumes that if you reset stats you
// want to use them, so collection is enabled.
func ResetStats() {
	logger.Debugf("resetting stats")
	stats.Lock()
	stats.enabled = true
	stats.Stats = Stats{}
	stats.Unlock()
}

func statsDecoded(delta int) {
	stats.Lock()
	if stats.enabled {
		stats.Decoded += delta
	}
	stats.Unlock()
}

func statsEncoded(delta int) {
	stats.Lock()
	if stats.enabled {
		stats.Encoded += delta
	}
	stats.Unlock()
}

func statsDecodeFailures(delta int) {
	stats.Lock()
	if stats.enabled {
		stats.DecodeFailures += delta
	}
	stats.Unlock()
}

func statsNullGeometries(delta int) {
	stats.Lock()
	if stats.enabled {
		stats.NullGeometries += delta
	}
	stats.Unlock()
}
