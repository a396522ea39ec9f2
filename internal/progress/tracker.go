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

package progress

import "io"

// Tracker receives the number of bytes transmitted so far.
type Tracker interface {
	// Update reports the current offset of the transmission.
	Update(offset int64) error
}

// TrackerFunc is an adapter to allow the use of ordinary functions as Trackers.
// If f is a function with the appropriate signature, TrackerFunc(f) is a
// [Tracker] that calls f.
type TrackerFunc func(offset int64) error

// Update reports the current offset of the transmission.
func (f TrackerFunc) Update(offset int64) error {
	return f(offset)
}

// TrackReader bind a reader with a tracker.
func TrackReader(t Tracker, r io.Reader) io.Reader {
	rt := readTracker{
		base:    r,
		tracker: t,
	}
	if _, ok := r.(io.WriterTo); ok {
		return &readTrackerWriteTo{rt}
	}
	return &rt
}

// readTracker tracks the transmission based on the read operation.
type readTracker struct {
	base    io.Reader
	tracker Tracker
	offset  int64
}

// Read reads from the base reader and reports the new offset.
// A tracker error takes precedence over the read error.
func (rt *readTracker) Read(p []byte) (int, error) {
	n, err := rt.base.Read(p)
	rt.offset += int64(n)
	if n > 0 {
		if updateErr := rt.tracker.Update(rt.offset); updateErr != nil {
			err = updateErr
		}
	}
	return n, err
}

// readTrackerWriteTo is readTracker with WriteTo support.
type readTrackerWriteTo struct {
	readTracker
}

// WriteTo writes to the base writer and reports the new offset on each write.
func (rt *readTrackerWriteTo) WriteTo(w io.Writer) (int64, error) {
	wt := &writeTracker{
		base:    w,
		tracker: rt.tracker,
		offset:  rt.offset,
	}
	n, err := rt.base.(io.WriterTo).WriteTo(wt)
	rt.offset = wt.offset
	return n, err
}

// writeTracker tracks the transmission based on the write operation.
type writeTracker struct {
	base    io.Writer
	tracker Tracker
	offset  int64
}

// Write writes to the base writer and reports the new offset.
func (wt *writeTracker) Write(p []byte) (int, error) {
	n, err := wt.base.Write(p)
	wt.offset += int64(n)
	if n > 0 {
		if updateErr := wt.tracker.Update(wt.offset); updateErr != nil {
			err = updateErr
		}
	}
	return n, err
}
