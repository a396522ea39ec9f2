/*
Copyright The Fileops Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package speedometer estimates the transfer rate and the remaining time of a
// transmission from a sliding window of progress samples.
package speedometer

import (
	"math"
	"time"
)

const (
	// DefaultMaxSamples is the window capacity used when none is given.
	DefaultMaxSamples = 20

	// sampleInterval is the minimal time between two recorded samples.
	sampleInterval = time.Second
)

// Clock returns the current time.
type Clock func() time.Time

type sample struct {
	time  time.Time
	bytes int64
}

// Speedometer is a moving-window rate estimator fed with the cumulative number
// of bytes transferred.
// A Speedometer belongs to a single transfer and is not safe for concurrent
// use.
type Speedometer struct {
	samples    []sample
	next       int
	size       int
	totalBytes int64
	now        Clock
}

// New creates a speedometer retaining at most maxSamples samples.
// A non-positive maxSamples selects DefaultMaxSamples and a nil clock selects
// time.Now.
func New(maxSamples int, clock Clock) *Speedometer {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	if clock == nil {
		clock = time.Now
	}
	return &Speedometer{
		samples: make([]sample, maxSamples),
		now:     clock,
	}
}

// SetTotalBytes sets the size of the transfer.
func (s *Speedometer) SetTotalBytes(total int64) {
	s.totalBytes = total
}

// TotalBytes returns the size of the transfer.
func (s *Speedometer) TotalBytes() int64 {
	return s.totalBytes
}

// MaxSamples returns the capacity of the window.
func (s *Speedometer) MaxSamples() int {
	return len(s.samples)
}

// SampleCount returns the number of retained samples.
func (s *Speedometer) SampleCount() int {
	return s.size
}

// Update records the cumulative number of bytes transferred so far.
// Updates arriving less than a second after the last recorded sample are
// dropped. Once the window is full, the oldest sample is evicted.
func (s *Speedometer) Update(bytes int64) {
	now := s.now()
	if s.size > 0 && now.Sub(s.at(s.size-1).time) < sampleInterval {
		return
	}
	s.samples[s.next] = sample{
		time:  now,
		bytes: bytes,
	}
	s.next = (s.next + 1) % len(s.samples)
	if s.size != len(s.samples) {
		s.size++
	}
}

// Speed returns the rate of the window in bytes per second, or NaN with less
// than two samples.
func (s *Speedometer) Speed() float64 {
	if s.size < 2 {
		return math.NaN()
	}
	_, _, slope := s.fit()
	return slope
}

// RemainingTime returns the estimated number of seconds left before
// TotalBytes are transferred.
// The result is NaN with less than two samples and +Inf when the window shows
// no progress. Time elapsed since the last sample is deducted, so the value
// keeps decreasing between updates and may become negative.
func (s *Speedometer) RemainingTime() float64 {
	if s.size < 2 {
		return math.NaN()
	}
	meanX, meanY, slope := s.fit()
	if slope == 0 {
		return math.Inf(1)
	}
	// seconds since the oldest sample at which the fitted line reaches the total
	target := meanX + (float64(s.totalBytes)-meanY)/slope
	return target - s.now().Sub(s.at(0).time).Seconds()
}

// fit computes the least-squares line of bytes over the seconds elapsed since
// the oldest sample. It returns the mean point and the slope in bytes per
// second. The caller must ensure at least two samples are retained.
func (s *Speedometer) fit() (meanX, meanY, slope float64) {
	origin := s.at(0).time
	n := float64(s.size)
	for i := 0; i < s.size; i++ {
		p := s.at(i)
		meanX += p.time.Sub(origin).Seconds()
		meanY += float64(p.bytes)
	}
	meanX /= n
	meanY /= n

	var sxy, sxx float64
	for i := 0; i < s.size; i++ {
		p := s.at(i)
		dx := p.time.Sub(origin).Seconds() - meanX
		dy := float64(p.bytes) - meanY
		sxy += dx * dy
		sxx += dx * dx
	}
	return meanX, meanY, sxy / sxx
}

// at returns the i-th retained sample, oldest first.
func (s *Speedometer) at(i int) sample {
	begin := (s.next - s.size + len(s.samples)) % len(s.samples)
	return s.samples[(begin+i)%len(s.samples)]
}
