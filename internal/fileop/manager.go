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
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"fileops.dev/fileops/internal/speedometer"
)

const (
	// DefaultConcurrency is the default number of tasks running at once.
	DefaultConcurrency = 3

	// DefaultProgressInterval is the default minimal time between two
	// progress events of a task.
	DefaultProgressInterval = 200 * time.Millisecond
)

var (
	errNoSource      = errors.New("no source given")
	errNoDestination = errors.New("no destination directory given")
)

// Options configures a Manager.
type Options struct {
	// Concurrency limits the number of tasks running at once.
	Concurrency int

	// MaxSamples is the window size of the speedometer of each task.
	MaxSamples int

	// ProgressInterval is the minimal time between two progress events of a
	// task. Entry boundaries are always reported.
	ProgressInterval time.Duration

	// Overwrite replaces existing targets instead of failing with
	// ErrorTargetExists.
	Overwrite bool

	// Verify compares the digest of every copied file with its source.
	Verify bool

	Clock  speedometer.Clock
	Logger logrus.FieldLogger
}

// Request describes a file operation.
type Request struct {
	Operation OperationType
	Sources   []string

	// Destination is the target directory. It is ignored by OperationDelete.
	Destination string

	// ArchiveName overrides the name of the archive written by OperationZip.
	ArchiveName string
}

func (r Request) validate() error {
	switch r.Operation {
	case OperationCopy, OperationMove, OperationZip, OperationDelete:
	default:
		return errors.Errorf("unsupported operation %q", r.Operation)
	}
	if len(r.Sources) == 0 {
		return errNoSource
	}
	if r.Operation != OperationDelete && r.Destination == "" {
		return errNoDestination
	}
	return nil
}

// Manager runs file operations and dispatches their events to listeners.
type Manager struct {
	opts  Options
	group errgroup.Group

	lock      sync.Mutex
	listeners []Listener
	cancels   map[string]context.CancelFunc

	// emitLock serializes listener calls across tasks.
	emitLock sync.Mutex
}

// NewManager creates a manager. Zero options select the defaults.
func NewManager(opts Options) *Manager {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = speedometer.DefaultMaxSamples
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	m := &Manager{
		opts:    opts,
		cancels: make(map[string]context.CancelFunc),
	}
	m.group.SetLimit(opts.Concurrency)
	return m
}

// AddListener registers a listener for the events of all tasks.
// Listeners are called one at a time, in the order events are dispatched.
func (m *Manager) AddListener(l Listener) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.listeners = append(m.listeners, l)
}

// Start runs the request as a new task and returns its id.
// Start blocks while the maximum number of tasks are running.
func (m *Manager) Start(ctx context.Context, req Request) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(ctx)
	m.lock.Lock()
	m.cancels[id] = cancel
	m.lock.Unlock()

	t := newTask(m, id, req)
	m.group.Go(func() error {
		defer m.release(id)
		return t.run(ctx)
	})
	return id, nil
}

// RequestTaskCancel cancels the task with the given id. It returns false if
// the task is unknown or already finished.
func (m *Manager) RequestTaskCancel(id string) bool {
	m.lock.Lock()
	cancel, ok := m.cancels[id]
	m.lock.Unlock()
	if ok {
		m.opts.Logger.WithField("task", id).Info("cancel requested")
		cancel()
	}
	return ok
}

// Wait waits for all started tasks and returns the first task failure.
// Canceled tasks are not failures.
func (m *Manager) Wait() error {
	return m.group.Wait()
}

func (m *Manager) release(id string) {
	m.lock.Lock()
	cancel := m.cancels[id]
	delete(m.cancels, id)
	m.lock.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (m *Manager) emit(e Event) {
	m.lock.Lock()
	listeners := slices.Clone(m.listeners)
	m.lock.Unlock()

	m.emitLock.Lock()
	defer m.emitLock.Unlock()
	for _, l := range listeners {
		l(e)
	}
}
