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

// Package handler maps file operation events onto progress items.
package handler

import (
	"github.com/sirupsen/logrus"

	"fileops.dev/fileops/internal/fileop"
	"fileops.dev/fileops/internal/message"
	"fileops.dev/fileops/internal/progress"
)

// Manager runs file operations.
type Manager interface {
	AddListener(l fileop.Listener)
	RequestTaskCancel(id string) bool
}

// Handler keeps one progress item per task of a manager up to date.
type Handler struct {
	manager Manager
	center  progress.Center
	catalog *message.Catalog
	logger  logrus.FieldLogger
}

// New creates a handler and subscribes it to the events of m.
func New(m Manager, center progress.Center, catalog *message.Catalog, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	h := &Handler{
		manager: m,
		center:  center,
		catalog: catalog,
		logger:  logger,
	}
	m.AddListener(h.onEvent)
	return h
}

func (h *Handler) onEvent(e fileop.Event) {
	if e.Status.OperationType == fileop.OperationDelete {
		h.onDeleteEvent(e)
		return
	}
	h.onCopyEvent(e)
}

func (h *Handler) onCopyEvent(e fileop.Event) {
	var item *progress.Item
	switch e.Reason {
	case fileop.EventBegin:
		item = h.newItem(e, itemType(e.Status.OperationType))
		item.Message = h.progressMessage(e.Status)
	case fileop.EventProgress:
		var ok bool
		if item, ok = h.lookup(e); !ok {
			return
		}
		item.Message = h.progressMessage(e.Status)
		h.updateStatus(item, e)
	case fileop.EventSuccess, fileop.EventCanceled, fileop.EventError:
		item = h.finalItem(e, itemType(e.Status.OperationType))
		if e.Reason == fileop.EventError {
			item.Message = h.errorMessage(e.Status.OperationType, e.Error)
		}
	default:
		h.logger.Warnf("unknown event %v for task %s", e.Reason, e.TaskID)
		return
	}
	h.center.UpdateItem(item)
}

func (h *Handler) onDeleteEvent(e fileop.Event) {
	var item *progress.Item
	switch e.Reason {
	case fileop.EventBegin:
		item = h.newItem(e, progress.TypeDelete)
		item.Message = h.deleteMessage(e.Entries)
	case fileop.EventProgress:
		var ok bool
		if item, ok = h.lookup(e); !ok {
			return
		}
		item.Message = h.deleteMessage(e.Entries)
		h.updateStatus(item, e)
	case fileop.EventSuccess, fileop.EventCanceled, fileop.EventError:
		item = h.finalItem(e, progress.TypeDelete)
		if e.Reason == fileop.EventError {
			item.Message = h.catalog.Format(message.DeleteError)
		}
	default:
		h.logger.Warnf("unknown event %v for task %s", e.Reason, e.TaskID)
		return
	}
	h.center.UpdateItem(item)
}

func (h *Handler) newItem(e fileop.Event, typ progress.Type) *progress.Item {
	item := progress.NewItem(e.TaskID, typ)
	id := e.TaskID
	item.CancelCallback = func() {
		h.manager.RequestTaskCancel(id)
	}
	h.updateStatus(item, e)
	return item
}

// lookup returns the item of a running task.
func (h *Handler) lookup(e fileop.Event) (*progress.Item, bool) {
	item, ok := h.center.GetItemByID(e.TaskID)
	if !ok {
		h.logger.WithField("task", e.TaskID).Errorf("cannot find progressing item for %v event", e.Reason)
	}
	return item, ok
}

// finalItem returns the item of a finished task. An item is created for a
// task failing before it began.
func (h *Handler) finalItem(e fileop.Event, typ progress.Type) *progress.Item {
	item, ok := h.center.GetItemByID(e.TaskID)
	if !ok {
		item = progress.NewItem(e.TaskID, typ)
		item.ProgressMax = 1
	}
	item.Message = ""
	item.CancelCallback = nil
	switch e.Reason {
	case fileop.EventSuccess:
		item.State = progress.StateCompleted
		item.ProgressValue = item.ProgressMax
		item.RemainingTime = 0
	case fileop.EventCanceled:
		item.State = progress.StateCanceled
	case fileop.EventError:
		item.State = progress.StateError
	}
	return item
}

func (h *Handler) updateStatus(item *progress.Item, e fileop.Event) {
	s := e.Status
	item.ItemCount = s.NumRemainingItems
	item.SourceMessage = s.ProcessingEntryName
	item.DestinationMessage = s.TargetDirEntryName
	item.ProgressMax = s.TotalBytes
	item.ProgressValue = s.ProcessedBytes
	item.RemainingTime = s.RemainingTime
	item.Speed = s.Speed
}

func (h *Handler) progressMessage(s fileop.Status) string {
	keys := keysFor(s.OperationType)
	if s.NumRemainingItems == 1 {
		return h.catalog.Format(keys.fileName, s.ProcessingEntryName)
	}
	return h.catalog.Format(keys.itemsRemaining, s.NumRemainingItems)
}

func (h *Handler) errorMessage(op fileop.OperationType, err *fileop.Error) string {
	keys := keysFor(op)
	if err == nil {
		return h.catalog.Format(keys.unexpectedError, fileop.ErrorUnexpected)
	}
	switch err.Code {
	case fileop.ErrorTargetExists:
		name := err.Name
		if err.IsDirectory {
			name += "/"
		}
		return h.catalog.Format(keys.targetExists, name)
	case fileop.ErrorFilesystem:
		return h.catalog.Format(keys.filesystemError, h.catalog.FileError(err.Name))
	default:
		return h.catalog.Format(keys.unexpectedError, string(err.Code))
	}
}

func (h *Handler) deleteMessage(entries []string) string {
	if len(entries) == 1 {
		return h.catalog.Format(message.DeleteFileName, entries[0])
	}
	return h.catalog.Format(message.DeleteItemsRemaining, len(entries))
}

// messageKeys are the message keys of an operation type.
type messageKeys struct {
	fileName        string
	itemsRemaining  string
	targetExists    string
	filesystemError string
	unexpectedError string
}

func keysFor(op fileop.OperationType) messageKeys {
	switch op {
	case fileop.OperationCopy:
		return messageKeys{message.CopyFileName, message.CopyItemsRemaining, message.CopyTargetExists, message.CopyFilesystemError, message.CopyUnexpectedError}
	case fileop.OperationMove:
		return messageKeys{message.MoveFileName, message.MoveItemsRemaining, message.MoveTargetExists, message.MoveFilesystemError, message.MoveUnexpectedError}
	case fileop.OperationZip:
		return messageKeys{message.ZipFileName, message.ZipItemsRemaining, message.ZipTargetExists, message.ZipFilesystemError, message.ZipUnexpectedError}
	default:
		return messageKeys{message.TransferFileName, message.TransferItemsRemain, message.TransferTargetExists, message.TransferFSError, message.TransferUnexpected}
	}
}

func itemType(op fileop.OperationType) progress.Type {
	switch op {
	case fileop.OperationCopy:
		return progress.TypeCopy
	case fileop.OperationMove:
		return progress.TypeMove
	case fileop.OperationZip:
		return progress.TypeZip
	default:
		return progress.TypeTransfer
	}
}
