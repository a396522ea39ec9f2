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

import "math"

// State represents the state of a progress item.
type State string

// Registered states.
const (
	StateProgressing State = "progressing"
	StateCompleted   State = "completed"
	StateError       State = "error"
	StateCanceled    State = "canceled"
)

// Done returns true if no further progress is expected.
func (s State) Done() bool {
	return s == StateCompleted || s == StateError || s == StateCanceled
}

// Type represents the kind of operation an item reports on.
type Type string

// Registered types.
const (
	TypeCopy     Type = "copy"
	TypeMove     Type = "move"
	TypeZip      Type = "zip"
	TypeDelete   Type = "delete"
	TypeTransfer Type = "transfer"
)

// Item is the progress of a single file operation as shown to the user.
type Item struct {
	// ID identifies the item, usually the id of the task reporting on it.
	ID string

	State   State
	Message string
	Type    Type

	// Single is true if the item is not part of a grouped report.
	Single bool

	// ItemCount is the number of entries left to process.
	ItemCount int

	SourceMessage      string
	DestinationMessage string

	ProgressMax   int64
	ProgressValue int64

	// RemainingTime is the estimated number of seconds left. It is NaN when
	// unknown and +Inf when no progress is being made.
	RemainingTime float64

	// Speed is the transfer rate in bytes per second, NaN when unknown.
	Speed float64

	// CancelCallback requests the cancellation of the underlying operation.
	CancelCallback func()
}

// NewItem creates a progressing single item.
func NewItem(id string, typ Type) *Item {
	return &Item{
		ID:            id,
		State:         StateProgressing,
		Type:          typ,
		Single:        true,
		RemainingTime: math.NaN(),
		Speed:         math.NaN(),
	}
}

// ProgressRateInPercent returns the completion of the item in percent.
func (i *Item) ProgressRateInPercent() int {
	if i.State == StateCompleted {
		return 100
	}
	if i.State == StateCanceled || i.ProgressMax <= 0 {
		return 0
	}
	return int(100 * i.ProgressValue / i.ProgressMax)
}

// Cancelable returns true if the item can still be canceled.
func (i *Item) Cancelable() bool {
	return i.State == StateProgressing && i.CancelCallback != nil && i.Single
}

// Clone returns a shallow copy of the item.
func (i *Item) Clone() *Item {
	clone := *i
	return &clone
}
