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
	"math"
	"sync"
	"testing"
)

func TestItem_ProgressRateInPercent(t *testing.T) {
	tests := []struct {
		name  string
		state State
		value int64
		max   int64
		want  int
	}{
		{name: "not started", state: StateProgressing, value: 0, max: 200, want: 0},
		{name: "half way", state: StateProgressing, value: 100, max: 200, want: 50},
		{name: "rounded down", state: StateProgressing, value: 199, max: 200, want: 99},
		{name: "completed", state: StateCompleted, value: 200, max: 200, want: 100},
		{name: "completed empty", state: StateCompleted, value: 0, max: 0, want: 100},
		{name: "unknown size", state: StateProgressing, value: 10, max: 0, want: 0},
		{name: "canceled", state: StateCanceled, value: 100, max: 200, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewItem("id", TypeCopy)
			item.State = tt.state
			item.ProgressValue = tt.value
			item.ProgressMax = tt.max
			if got := item.ProgressRateInPercent(); got != tt.want {
				t.Errorf("Item.ProgressRateInPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItem_Cancelable(t *testing.T) {
	item := NewItem("id", TypeCopy)
	if item.Cancelable() {
		t.Errorf("Item.Cancelable() = true without callback")
	}
	item.CancelCallback = func() {}
	if !item.Cancelable() {
		t.Errorf("Item.Cancelable() = false, want true")
	}
	item.Single = false
	if item.Cancelable() {
		t.Errorf("Item.Cancelable() = true for grouped item")
	}
	item.Single = true
	item.State = StateCompleted
	if item.Cancelable() {
		t.Errorf("Item.Cancelable() = true for completed item")
	}
}

func TestNewItem(t *testing.T) {
	item := NewItem("TASK_ID", TypeDelete)
	if item.State != StateProgressing || !item.Single || item.Type != TypeDelete || item.ID != "TASK_ID" {
		t.Errorf("NewItem() = %+v", item)
	}
	if !math.IsNaN(item.RemainingTime) || !math.IsNaN(item.Speed) {
		t.Errorf("NewItem() remaining = %v, speed = %v, want NaN", item.RemainingTime, item.Speed)
	}
}

func TestMemoryCenter(t *testing.T) {
	c := NewCenter()
	var notified []*Item
	c.Subscribe(func(item *Item) {
		notified = append(notified, item)
	})

	if _, ok := c.GetItemByID("a"); ok {
		t.Fatalf("MemoryCenter.GetItemByID() found item in empty center")
	}

	a := NewItem("a", TypeCopy)
	a.Message = "first"
	c.UpdateItem(a)
	b := NewItem("b", TypeDelete)
	c.UpdateItem(b)

	// stored items are copies
	a.Message = "mutated"
	got, ok := c.GetItemByID("a")
	if !ok {
		t.Fatalf("MemoryCenter.GetItemByID() item not found")
	}
	if got.Message != "first" {
		t.Errorf("MemoryCenter.GetItemByID() message = %q, want %q", got.Message, "first")
	}

	got.State = StateCompleted
	c.UpdateItem(got)
	items := c.Items()
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("MemoryCenter.Items() = %v, want [a b]", items)
	}
	if items[0].State != StateCompleted {
		t.Errorf("MemoryCenter.Items()[0].State = %v, want %v", items[0].State, StateCompleted)
	}
	if len(notified) != 3 {
		t.Errorf("observer called %d times, want 3", len(notified))
	}
}

func TestMemoryCenter_concurrent(t *testing.T) {
	c := NewCenter()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				item := NewItem("shared", TypeCopy)
				item.ProgressValue = int64(j)
				c.UpdateItem(item)
				_, _ = c.GetItemByID("shared")
			}
		}()
	}
	wg.Wait()
	if got := len(c.Items()); got != 1 {
		t.Errorf("len(MemoryCenter.Items()) = %d, want 1", got)
	}
}
