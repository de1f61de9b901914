// Package service defines the backend-agnostic interface to the
// remote task system.
package service

import "context"

// Service is the remote collaborator. The pipeline depends only on
// this interface; the HTTP backend and the test fake implement it.
type Service interface {
	// FetchLists returns all lists as lowercased name -> id.
	FetchLists(ctx context.Context) (map[string]string, error)

	// FetchLabels returns all labels as lowercased name -> id.
	FetchLabels(ctx context.Context) (map[string]string, error)

	// SubmitTask creates the task remotely. A non-success response
	// status is an error, as is any transport failure.
	SubmitTask(ctx context.Context, task TaskRequest) error
}
