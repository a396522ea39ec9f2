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

// Package progress keeps track of the progress items of file operations.
package progress

import "sync"

// Center stores the latest progress items and fans updates out to observers.
type Center interface {
	// UpdateItem stores a copy of the item and notifies observers.
	UpdateItem(item *Item)

	// GetItemByID returns a copy of the item with the given id.
	GetItemByID(id string) (*Item, bool)
}

// Observer is notified of every item update.
type Observer func(item *Item)

// MemoryCenter is an in-memory Center, safe for concurrent use.
type MemoryCenter struct {
	lock      sync.RWMutex
	items     map[string]*Item
	order     []string
	observers []Observer
}

// NewCenter creates an empty progress center.
func NewCenter() *MemoryCenter {
	return &MemoryCenter{
		items: make(map[string]*Item),
	}
}

// Subscribe registers an observer. Observers are called synchronously in
// registration order with a copy of the updated item.
func (c *MemoryCenter) Subscribe(o Observer) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.observers = append(c.observers, o)
}

// UpdateItem stores a copy of the item and notifies observers.
func (c *MemoryCenter) UpdateItem(item *Item) {
	c.lock.Lock()
	if _, ok := c.items[item.ID]; !ok {
		c.order = append(c.order, item.ID)
	}
	c.items[item.ID] = item.Clone()
	observers := c.observers
	c.lock.Unlock()

	for _, o := range observers {
		o(item.Clone())
	}
}

// GetItemByID returns a copy of the item with the given id.
func (c *MemoryCenter) GetItemByID(id string) (*Item, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// Items returns copies of all items in insertion order.
func (c *MemoryCenter) Items() []*Item {
	c.lock.RLock()
	defer c.lock.RUnlock()
	items := make([]*Item, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.items[id].Clone())
	}
	return items
}
