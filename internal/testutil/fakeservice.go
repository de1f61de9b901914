// Package testutil provides testing fakes.
package testutil

import (
	"context"
	"sync"

	"godspeed/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing.
type FakeService struct {
	mu        sync.RWMutex
	lists     map[string]string
	labels    map[string]string
	submitted []service.TaskRequest

	// Error injection for testing
	FetchListsErr  error
	FetchLabelsErr error
	SubmitTaskErr  error

	// Call counters, for asserting the batched-refresh protocol.
	FetchListsCalls  int
	FetchLabelsCalls int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		lists:  make(map[string]string),
		labels: make(map[string]string),
	}
}

// SetList registers a remote list. The name is stored as given; the
// backend contract is lowercased keys, so tests pass lowercase names.
func (f *FakeService) SetList(name, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[name] = id
}

// SetLabel registers a remote label.
func (f *FakeService) SetLabel(name, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labels[name] = id
}

// Submitted returns a copy of every task submitted so far.
func (f *FakeService) Submitted() []service.TaskRequest {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.TaskRequest, len(f.submitted))
	copy(out, f.submitted)
	return out
}

// FetchLists implements service.Service.
func (f *FakeService) FetchLists(ctx context.Context) (map[string]string, error) {
	f.mu.Lock()
	f.FetchListsCalls++
	f.mu.Unlock()
	if f.FetchListsErr != nil {
		return nil, f.FetchListsErr
	}
	return f.snapshot(f.lists), nil
}

// FetchLabels implements service.Service.
func (f *FakeService) FetchLabels(ctx context.Context) (map[string]string, error) {
	f.mu.Lock()
	f.FetchLabelsCalls++
	f.mu.Unlock()
	if f.FetchLabelsErr != nil {
		return nil, f.FetchLabelsErr
	}
	return f.snapshot(f.labels), nil
}

// SubmitTask implements service.Service.
func (f *FakeService) SubmitTask(ctx context.Context, task service.TaskRequest) error {
	if f.SubmitTaskErr != nil {
		return f.SubmitTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, task)
	return nil
}

func (f *FakeService) snapshot(m map[string]string) map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FakeNotifier records every message instead of displaying it.
type FakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

// Notify implements notify.Notifier.
func (n *FakeNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

// Messages returns a copy of the recorded messages.
func (n *FakeNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}
