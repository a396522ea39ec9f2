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

package tty

import (
	"errors"
	"os"
	"sync"
	"time"

	"fileops.dev/fileops/cmd/fileops/internal/display/console"
	"fileops.dev/fileops/internal/progress"
)

const bufFlushDuration = 200 * time.Millisecond

var errManagerStopped = errors.New("progress output manager has already been stopped")

// Manager renders progress items as two rows each, refreshing them
// periodically.
type Manager struct {
	console      *console.Console
	lock         sync.Mutex
	status       []*status
	index        map[string]*status
	renderDone   chan struct{}
	renderClosed chan struct{}
}

// NewManager initializes a new progress manager rendering to f.
func NewManager(f *os.File) (*Manager, error) {
	c, err := console.New(f)
	if err != nil {
		return nil, err
	}
	m := newManager(c)
	m.start()
	return m, nil
}

func newManager(c *console.Console) *Manager {
	return &Manager{
		console:      c,
		index:        make(map[string]*status),
		renderDone:   make(chan struct{}),
		renderClosed: make(chan struct{}),
	}
}

func (m *Manager) start() {
	m.console.Save()
	renderTicker := time.NewTicker(bufFlushDuration)
	go func() {
		defer m.console.Restore()
		defer renderTicker.Stop()
		for {
			select {
			case <-m.renderDone:
				m.render()
				close(m.renderClosed)
				return
			case <-renderTicker.C:
				m.render()
			}
		}
	}()
}

// OnItem records the latest state of an item. Unknown items get two new rows.
func (m *Manager) OnItem(item *progress.Item) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.closed() {
		return
	}
	s, ok := m.index[item.ID]
	if !ok {
		s = &status{}
		m.index[item.ID] = s
		m.status = append(m.status, s)
		m.console.NewRow()
		m.console.NewRow()
	}
	s.update(item)
}

func (m *Manager) render() {
	m.lock.Lock()
	defer m.lock.Unlock()
	width, height := m.console.Size()
	rows := len(m.status) * 2
	offset := 0
	if rows > height {
		// skip statuses that cannot be rendered
		offset = rows - height
		offset += offset % 2
	}

	for ; offset < rows; offset += 2 {
		line, detail := m.status[offset/2].String(width)
		m.console.OutputTo(uint(rows-offset), line)
		m.console.OutputTo(uint(rows-offset-1), detail)
	}
}

// Close renders the final state of every item and stops rendering.
func (m *Manager) Close() error {
	if m.closed() {
		return errManagerStopped
	}
	close(m.renderDone)
	<-m.renderClosed
	return nil
}

func (m *Manager) closed() bool {
	select {
	case <-m.renderClosed:
		return true
	default:
		return false
	}
}
