package logging

import "strings"

// ProgressSampler thins extraction progress logs to one record per bucket
// of percent, restarting whenever the item being written changes.
type ProgressSampler struct {
	bucketSize float64
	lastItem   string
	lastBucket int
}

// NewProgressSampler constructs a sampler that emits when the percent crosses
// bucket boundaries (default 10%) or when the item changes.
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 10
	}
	return &ProgressSampler{bucketSize: bucketSize, lastBucket: -1}
}

// ShouldLog reports whether progress on item should be logged. A negative
// percent means unknown and only an item change emits.
func (s *ProgressSampler) ShouldLog(percent float64, item string) bool {
	if s == nil {
		return true
	}
	item = strings.TrimSpace(item)
	emit := false
	if item != "" && item != s.lastItem {
		s.lastItem = item
		s.lastBucket = -1
		emit = true
	}
	if percent >= 0 {
		bucket := int(percent / s.bucketSize)
		if percent >= 100 {
			bucket = int(100 / s.bucketSize)
		}
		if bucket > s.lastBucket {
			s.lastBucket = bucket
			emit = true
		}
	}
	return emit
}

// Reset clears the sampler state.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastItem = ""
	s.lastBucket = -1
}
