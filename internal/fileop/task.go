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

package fileop

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"fileops.dev/fileops/internal/progress"
	"fileops.dev/fileops/internal/speedometer"
)

// defaultArchiveName is the name of an archive of several sources.
const defaultArchiveName = "Archive.zip"

// task is a single run of a request.
type task struct {
	m      *Manager
	id     string
	req    Request
	logger logrus.FieldLogger
	meter  *speedometer.Speedometer

	status     Status
	lastReport time.Time
	sources    []source
	entries    []string
}

func newTask(m *Manager, id string, req Request) *task {
	t := &task{
		m:      m,
		id:     id,
		req:    req,
		logger: m.opts.Logger.WithFields(logrus.Fields{"task": id, "operation": req.Operation}),
		meter:  speedometer.New(m.opts.MaxSamples, m.opts.Clock),
		status: Status{
			OperationType:     req.Operation,
			NumRemainingItems: len(req.Sources),
			RemainingTime:     math.NaN(),
			Speed:             math.NaN(),
		},
	}
	if req.Operation == OperationDelete {
		for _, p := range req.Sources {
			t.entries = append(t.entries, filepath.Base(filepath.Clean(p)))
		}
	} else {
		t.status.TargetDirEntryName = filepath.Base(filepath.Clean(req.Destination))
	}
	if len(req.Sources) > 0 {
		t.status.ProcessingEntryName = filepath.Base(filepath.Clean(req.Sources[0]))
	}
	return t
}

// run executes the task and reports its outcome. Only failures are returned.
func (t *task) run(ctx context.Context) error {
	if ctx.Err() != nil {
		t.canceled()
		return nil
	}
	sources, err := scan(ctx, t.req.Sources)
	if err == nil && t.req.Operation != OperationDelete {
		err = t.checkTargets(sources)
	}
	if err != nil {
		return t.finish(ctx, err)
	}
	t.sources = sources
	for _, s := range sources {
		t.status.TotalBytes += s.size
	}
	t.meter.SetTotalBytes(t.status.TotalBytes)
	t.begin()

	switch t.req.Operation {
	case OperationCopy:
		err = t.copy(ctx)
	case OperationMove:
		err = t.move(ctx)
	case OperationZip:
		err = t.archive(ctx)
	case OperationDelete:
		err = t.remove(ctx)
	}
	return t.finish(ctx, err)
}

// checkTargets fails if the destination is not a directory or if a target
// already exists. Overwriting is refused when the target is one of the
// sources or lies below one of them.
func (t *task) checkTargets(sources []source) error {
	dst := t.req.Destination
	info, err := os.Stat(dst)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "open", Path: dst, Err: syscall.ENOTDIR}
	}

	var names []string
	if t.req.Operation == OperationZip {
		names = []string{t.archiveName(sources)}
	} else {
		for _, s := range sources {
			names = append(names, s.name)
		}
	}
	for _, name := range names {
		target := filepath.Join(dst, name)
		info, err := os.Lstat(target)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		overlaps, err := overlapsSource(target, sources)
		if err != nil {
			return err
		}
		if !t.m.opts.Overwrite || overlaps {
			return &Error{
				Code:        ErrorTargetExists,
				Name:        name,
				IsDirectory: info.IsDir(),
			}
		}
	}
	return nil
}

// overlapsSource reports whether target, with links followed, is an entry
// of one of the sources.
func overlapsSource(target string, sources []source) (bool, error) {
	info, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		// dangling link
		return false, nil
	}
	if err != nil {
		return false, err
	}
	for _, s := range sources {
		for _, n := range s.nodes {
			if n.info != nil && os.SameFile(info, n.info) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (t *task) archiveName(sources []source) string {
	switch {
	case t.req.ArchiveName != "":
		return t.req.ArchiveName
	case len(sources) == 1:
		return sources[0].name + ".zip"
	default:
		return defaultArchiveName
	}
}

func (t *task) copy(ctx context.Context) error {
	for i, s := range t.sources {
		t.enter(i)
		for _, n := range s.nodes {
			if err := t.copyNode(ctx, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *task) move(ctx context.Context) error {
	for i, s := range t.sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.enter(i)
		err := os.Rename(s.path, filepath.Join(t.req.Destination, s.name))
		if err == nil {
			t.advance(t.status.ProcessedBytes + s.size)
			continue
		}
		if !t.copyOnRenameError(err) {
			return err
		}
		t.logger.WithError(err).Debugf("cannot rename %s, copying", s.path)
		for _, n := range s.nodes {
			if err := t.copyNode(ctx, n); err != nil {
				return err
			}
		}
		if err := os.RemoveAll(s.path); err != nil {
			return err
		}
	}
	return nil
}

// copyOnRenameError reports whether a failed rename falls back to copying
// and removing the source. Across devices it always does; onto an existing
// directory only when overwriting, merging like a copy.
func (t *task) copyOnRenameError(err error) bool {
	switch {
	case errors.Is(err, syscall.EXDEV):
		return true
	case errors.Is(err, syscall.ENOTEMPTY), errors.Is(err, syscall.EEXIST):
		return t.m.opts.Overwrite
	default:
		return false
	}
}

func (t *task) remove(ctx context.Context) error {
	for i, s := range t.sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.enter(i)
		if err := os.RemoveAll(s.path); err != nil {
			return err
		}
		t.advance(t.status.ProcessedBytes + s.size)
	}
	return nil
}

func (t *task) archive(ctx context.Context) (err error) {
	target := filepath.Join(t.req.Destination, t.archiveName(t.sources))
	f, err := os.OpenFile(target, t.createFlag(), 0o644)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)
	defer func() {
		if closeErr := zw.Close(); err == nil {
			err = closeErr
		}
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(target)
		}
	}()

	for i, s := range t.sources {
		t.enter(i)
		for _, n := range s.nodes {
			if err := t.archiveNode(ctx, zw, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *task) archiveNode(ctx context.Context, zw *zip.Writer, n node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Lstat(n.path)
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(n.rel)
	switch {
	case info.IsDir():
		hdr.Name += "/"
		_, err = zw.CreateHeader(hdr)
		return err
	case !info.Mode().IsRegular():
		t.logger.Debugf("skipping %s: not a regular file", n.path)
		return nil
	}
	hdr.Method = zip.Deflate
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	src, err := os.Open(n.path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(w, t.track(ctx, src))
	return err
}

func (t *task) copyNode(ctx context.Context, n node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(t.req.Destination, n.rel)
	switch {
	case n.mode.IsDir():
		return os.MkdirAll(target, n.mode.Perm()|0o700)
	case n.mode&fs.ModeSymlink != 0:
		link, err := os.Readlink(n.path)
		if err != nil {
			return err
		}
		if t.m.opts.Overwrite {
			_ = os.Remove(target)
		}
		return os.Symlink(link, target)
	case n.mode.IsRegular():
		return t.copyFile(ctx, n, target)
	default:
		t.logger.Debugf("skipping %s: not a regular file", n.path)
		return nil
	}
}

func (t *task) copyFile(ctx context.Context, n node, target string) (err error) {
	src, err := os.Open(n.path)
	if err != nil {
		return err
	}
	defer src.Close()
	if t.m.opts.Overwrite {
		if info, err := os.Stat(target); err == nil && n.info != nil && os.SameFile(info, n.info) {
			return &Error{Code: ErrorTargetExists, Name: filepath.Base(target)}
		}
	}
	dst, err := os.OpenFile(target, t.createFlag(), n.mode.Perm())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(target)
		}
	}()

	var r io.Reader = src
	var digester digest.Digester
	if t.m.opts.Verify {
		digester = digest.Canonical.Digester()
		r = io.TeeReader(r, digester.Hash())
	}
	if _, err := io.Copy(dst, t.track(ctx, r)); err != nil {
		return err
	}
	if digester != nil {
		return verifyFile(target, digester.Digest())
	}
	return nil
}

func (t *task) createFlag() int {
	if t.m.opts.Overwrite {
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	return os.O_WRONLY | os.O_CREATE | os.O_EXCL
}

// verifyFile checks the content of path against want.
func verifyFile(path string, want digest.Digest) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	got, err := want.Algorithm().FromReader(f)
	if err != nil {
		return err
	}
	if got != want {
		return &Error{
			Code: ErrorDigestMismatch,
			Name: filepath.Base(path),
			Err:  errors.Errorf("digest mismatch: got %s, want %s", got, want),
		}
	}
	return nil
}

// track reports the bytes read from r as processed bytes of the task.
func (t *task) track(ctx context.Context, r io.Reader) io.Reader {
	base := t.status.ProcessedBytes
	return progress.TrackReader(progress.TrackerFunc(func(offset int64) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.advance(base + offset)
		return nil
	}), r)
}

// enter marks the i-th source as the one being processed.
func (t *task) enter(i int) {
	t.status.NumRemainingItems = len(t.sources) - i
	t.status.ProcessingEntryName = t.sources[i].name
	if i > 0 {
		t.report(true)
	}
}

// advance sets the number of processed bytes.
func (t *task) advance(processed int64) {
	t.status.ProcessedBytes = processed
	t.meter.Update(processed)
	t.report(false)
}

// report dispatches a progress event, at most once per progress interval
// unless forced.
func (t *task) report(force bool) {
	now := t.m.opts.Clock()
	if !force && now.Sub(t.lastReport) < t.m.opts.ProgressInterval {
		return
	}
	t.lastReport = now
	t.status.RemainingTime = t.meter.RemainingTime()
	t.status.Speed = t.meter.Speed()
	t.emit(EventProgress, nil)
}

func (t *task) begin() {
	t.meter.Update(0)
	t.lastReport = t.m.opts.Clock()
	t.logger.WithField("bytes", t.status.TotalBytes).Info("task started")
	t.emit(EventBegin, nil)
}

// finish reports the outcome of the task.
func (t *task) finish(ctx context.Context, err error) error {
	switch {
	case err == nil:
		t.status.ProcessedBytes = t.status.TotalBytes
		t.status.NumRemainingItems = 0
		t.status.RemainingTime = 0
		t.logger.Info("task completed")
		t.emit(EventSuccess, nil)
		return nil
	case ctx.Err() != nil:
		t.canceled()
		return nil
	default:
		opErr := toError(err)
		t.logger.WithError(err).Warn("task failed")
		t.emit(EventError, opErr)
		return errors.Wrapf(err, "%s task %s", t.req.Operation, t.id)
	}
}

func (t *task) canceled() {
	t.logger.Info("task canceled")
	t.emit(EventCanceled, nil)
}

func (t *task) emit(reason EventType, err *Error) {
	t.m.emit(Event{
		TaskID:  t.id,
		Reason:  reason,
		Status:  t.status,
		Error:   err,
		Entries: t.entries,
	})
}
