// Package queue persists task inputs that failed submission so the
// next invocation can retry them.
package queue

import (
	"bytes"
	"os"
	"strings"
)

// Separator terminates each entry in the queue file.
const Separator = "---\n"

// Queue is a durable, append-only log of raw task strings backed by a
// single file. Entries are stored verbatim, each followed by a
// literal "---" line.
//
// The file is read and rewritten wholesale on every operation and
// there is no locking: invocations are assumed serialized. Two racing
// processes can lose each other's updates.
type Queue struct {
	path string
}

// New creates a queue backed by the file at path. The file need not
// exist; a missing file is an empty queue.
func New(path string) *Queue {
	return &Queue{path: path}
}

// Enqueue appends the raw input. It never deduplicates against
// existing entries and enforces no size bound; identical failed
// inputs queue up multiple times.
func (q *Queue) Enqueue(task string) error {
	content, _ := os.ReadFile(q.path)

	var buf bytes.Buffer
	buf.Write(content)
	buf.WriteString(task)
	buf.WriteString("\n")
	buf.WriteString(Separator)
	return os.WriteFile(q.path, buf.Bytes(), 0600)
}

// Drain returns every non-empty trimmed entry in file order. A
// missing or unreadable file is an empty queue.
func (q *Queue) Drain() []string {
	content, err := os.ReadFile(q.path)
	if err != nil {
		return nil
	}

	var tasks []string
	for _, part := range strings.Split(string(content), Separator) {
		if task := strings.TrimSpace(part); task != "" {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Remove deletes every entry whose trimmed text equals task and
// rewrites the file. Duplicate identical entries go together; an
// entry stays queued until its task is resubmitted successfully.
func (q *Queue) Remove(task string) error {
	content, _ := os.ReadFile(q.path)

	var remaining []string
	for _, part := range strings.Split(string(content), Separator) {
		if t := strings.TrimSpace(part); t != "" && t != task {
			remaining = append(remaining, t)
		}
	}

	if len(remaining) == 0 {
		return os.WriteFile(q.path, nil, 0600)
	}
	rewritten := strings.Join(remaining, "\n"+Separator) + "\n" + Separator
	return os.WriteFile(q.path, []byte(rewritten), 0600)
}
