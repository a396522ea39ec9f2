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

// Package fileop runs file operations on the local file system and reports
// their progress as events.
package fileop

import "fmt"

// OperationType is the kind of a file operation.
type OperationType string

// Registered operation types.
const (
	OperationCopy   OperationType = "COPY"
	OperationMove   OperationType = "MOVE"
	OperationZip    OperationType = "ZIP"
	OperationDelete OperationType = "DELETE"
)

// EventType is the reason an event is dispatched.
type EventType int

// Registered event types.
const (
	EventBegin EventType = iota
	EventProgress
	EventSuccess
	EventError
	EventCanceled
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventBegin:
		return "BEGIN"
	case EventProgress:
		return "PROGRESS"
	case EventSuccess:
		return "SUCCESS"
	case EventError:
		return "ERROR"
	case EventCanceled:
		return "CANCELED"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Status is a snapshot of a running task.
type Status struct {
	OperationType OperationType

	// NumRemainingItems is the number of top-level entries not yet processed.
	NumRemainingItems int

	// ProcessingEntryName is the base name of the entry being processed.
	ProcessingEntryName string

	// TargetDirEntryName is the base name of the destination directory.
	TargetDirEntryName string

	TotalBytes     int64
	ProcessedBytes int64

	// RemainingTime is the estimated number of seconds left, NaN if unknown
	// and +Inf if the transfer is stalled.
	RemainingTime float64

	// Speed is the transfer rate in bytes per second, NaN if unknown.
	Speed float64
}

// Event reports a change of a task.
type Event struct {
	TaskID string
	Reason EventType
	Status Status

	// Error is set for EventError.
	Error *Error

	// Entries lists the base names of the entries being deleted.
	Entries []string
}

// Listener receives the events of every task of a manager.
type Listener func(Event)
