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

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestTrackerFunc_Update(t *testing.T) {
	var got int64
	var wantErr error
	tracker := TrackerFunc(func(offset int64) error {
		got = offset
		return wantErr
	})

	if err := tracker.Update(42); err != nil {
		t.Errorf("TrackerFunc.Update() error = %v, want nil", err)
	}
	if got != 42 {
		t.Errorf("TrackerFunc offset = %v, want 42", got)
	}

	wantErr = errors.New("fail to track")
	if err := tracker.Update(43); err != wantErr {
		t.Errorf("TrackerFunc.Update() error = %v, want %v", err, wantErr)
	}
}

func TestTrackReader(t *testing.T) {
	const bufSize = 6
	content := []byte("hello world")

	t.Run("track io.Reader", func(t *testing.T) {
		var offsets []int64
		tracker := TrackerFunc(func(offset int64) error {
			offsets = append(offsets, offset)
			return nil
		})
		var reader io.Reader = bytes.NewReader(content)
		reader = io.LimitReader(reader, int64(len(content))) // remove the io.WriterTo interface
		gotReader := TrackReader(tracker, reader)
		if _, ok := gotReader.(*readTracker); !ok {
			t.Fatalf("TrackReader() = %v, want *readTracker", gotReader)
		}

		got, err := io.ReadAll(io.MultiReader(gotReader))
		if err != nil {
			t.Fatalf("io.ReadAll() error = %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Fatalf("io.ReadAll() = %q, want %q", got, content)
		}
		if len(offsets) == 0 || offsets[len(offsets)-1] != int64(len(content)) {
			t.Errorf("TrackReader() offsets = %v, want last offset %d", offsets, len(content))
		}

		// offsets are cumulative
		for i := 1; i < len(offsets); i++ {
			if offsets[i] <= offsets[i-1] {
				t.Errorf("TrackReader() offsets = %v, want increasing", offsets)
			}
		}
	})

	t.Run("track io.Reader + io.WriterTo", func(t *testing.T) {
		var last int64
		tracker := TrackerFunc(func(offset int64) error {
			last = offset
			return nil
		})
		gotReader := TrackReader(tracker, bytes.NewReader(content))
		if _, ok := gotReader.(*readTrackerWriteTo); !ok {
			t.Fatalf("TrackReader() = %v, want *readTrackerWriteTo", gotReader)
		}

		buf := make([]byte, bufSize)
		n, err := gotReader.Read(buf)
		if err != nil {
			t.Fatalf("TrackReader() error = %v, want nil", err)
		}
		if n != bufSize || last != bufSize {
			t.Fatalf("TrackReader() n = %v, offset = %v, want %v", n, last, bufSize)
		}

		writeBuf := bytes.NewBuffer(nil)
		wn, err := gotReader.(io.WriterTo).WriteTo(writeBuf)
		if err != nil {
			t.Fatalf("TrackReader() error = %v, want nil", err)
		}
		if want := int64(len(content) - bufSize); wn != want {
			t.Fatalf("TrackReader() n = %v, want %v", wn, want)
		}
		if want := content[bufSize:]; !bytes.Equal(writeBuf.Bytes(), want) {
			t.Fatalf("TrackReader() buf = %v, want %v", writeBuf.Bytes(), want)
		}
		if want := int64(len(content)); last != want {
			t.Errorf("TrackReader() offset = %v, want %v", last, want)
		}
	})

	t.Run("empty io.Reader", func(t *testing.T) {
		tracker := TrackerFunc(func(offset int64) error {
			t.Errorf("TrackerFunc should not be called for empty read")
			return nil
		})
		gotReader := TrackReader(tracker, bytes.NewReader(nil))

		buf := make([]byte, bufSize)
		n, err := gotReader.Read(buf)
		if err != io.EOF {
			t.Fatalf("TrackReader() error = %v, want %v", err, io.EOF)
		}
		if n != 0 {
			t.Fatalf("TrackReader() n = %v, want 0", n)
		}
	})

	t.Run("tracker failure", func(t *testing.T) {
		wantErr := errors.New("fail to track")
		tracker := TrackerFunc(func(offset int64) error {
			return wantErr
		})
		gotReader := TrackReader(tracker, bytes.NewReader(content))

		buf := make([]byte, bufSize)
		n, err := gotReader.Read(buf)
		if err != wantErr {
			t.Fatalf("TrackReader() error = %v, want %v", err, wantErr)
		}
		if n != bufSize {
			t.Fatalf("TrackReader() n = %v, want %v", n, bufSize)
		}

		_, err = gotReader.(io.WriterTo).WriteTo(bytes.NewBuffer(nil))
		if err != wantErr {
			t.Fatalf("TrackReader() error = %v, want %v", err, wantErr)
		}
	})
}
