// Package todo defines the task list domain model: two ordered sequences of
// tasks, pending and done, addressed by position.
package todo

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when an index does not address a pending task.
var ErrInvalidIndex = errors.New("invalid index")

// Common status labels. Status is free-form; these are only the values the
// tracker itself produces.
const (
	StatusPending = "PENDING"
	StatusDone    = "DONE"
)

// Task is a single to-do entry. It has no identity beyond its position.
type Task struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// List holds pending and done tasks in insertion and completion order.
type List struct {
	Pending []Task `json:"pending"`
	Done    []Task `json:"done"`
}

// Entry is a task paired with its current 0-based index in its sequence.
type Entry struct {
	Index int
	Task
}

// Listing is the display form of a List.
type Listing struct {
	Pending []Entry
	Done    []Entry
}

// New returns an empty list.
func New() *List {
	return &List{
		Pending: []Task{},
		Done:    []Task{},
	}
}

// Insert appends a task to the pending sequence. The status is stored as
// given; it is not forced to StatusPending.
func (l *List) Insert(title, status string) Entry {
	l.Pending = append(l.Pending, Task{Title: title, Status: status})
	return Entry{Index: len(l.Pending) - 1, Task: l.Pending[len(l.Pending)-1]}
}

// Complete moves the pending task at index to the end of the done sequence
// and overwrites its status with StatusDone.
func (l *List) Complete(index int) (Task, error) {
	task, err := l.remove(index)
	if err != nil {
		return Task{}, err
	}

	task.Status = StatusDone
	l.Done = append(l.Done, task)
	return task, nil
}

// Delete removes the pending task at index. Done tasks cannot be deleted.
func (l *List) Delete(index int) (Task, error) {
	return l.remove(index)
}

// List enumerates both sequences with their positional indices.
func (l *List) List() Listing {
	return Listing{
		Pending: enumerate(l.Pending),
		Done:    enumerate(l.Done),
	}
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	return &List{
		Pending: append(make([]Task, 0, len(l.Pending)), l.Pending...),
		Done:    append(make([]Task, 0, len(l.Done)), l.Done...),
	}
}

func (l *List) remove(index int) (Task, error) {
	if index < 0 || index >= len(l.Pending) {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	task := l.Pending[index]
	l.Pending = append(l.Pending[:index], l.Pending[index+1:]...)
	return task, nil
}

func enumerate(tasks []Task) []Entry {
	entries := make([]Entry, len(tasks))
	for i, t := range tasks {
		entries[i] = Entry{Index: i, Task: t}
	}
	return entries
}
