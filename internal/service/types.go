package service

// TaskRequest is the fully resolved task sent to the remote API.
// References that failed to resolve are left at their zero value and
// omitted from the wire format.
type TaskRequest struct {
	Title           string   `json:"title"`
	ListID          string   `json:"list_id,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	LabelIDs        []string `json:"label_ids,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}
