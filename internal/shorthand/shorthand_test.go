package shorthand_test

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"godspeed/internal/shorthand"
)

func intPtr(n int) *int { return &n }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  shorthand.Draft
	}{
		{
			name:  "full shorthand",
			input: "Buy milk @errands :15 .shopping n: get 2%",
			want: shorthand.Draft{
				Title:           "Buy milk",
				ListName:        "errands",
				LabelNames:      []string{"shopping"},
				DurationMinutes: intPtr(15),
				Notes:           "get 2%",
			},
		},
		{
			name:  "invalid duration falls back into title",
			input: "Fix bug :abc @work",
			want: shorthand.Draft{
				Title:    "Fix bug :abc",
				ListName: "work",
			},
		},
		{
			name:  "plain title",
			input: "Water the plants",
			want:  shorthand.Draft{Title: "Water the plants"},
		},
		{
			name:  "last list marker wins",
			input: "Call mom @home @family",
			want: shorthand.Draft{
				Title:    "Call mom",
				ListName: "family",
			},
		},
		{
			name:  "duplicate labels preserved in order",
			input: "Tidy desk .chores .office .chores",
			want: shorthand.Draft{
				Title:      "Tidy desk",
				LabelNames: []string{"chores", "office", "chores"},
			},
		},
		{
			name:  "bare markers dropped silently",
			input: "Review PR . @",
			want:  shorthand.Draft{Title: "Review PR"},
		},
		{
			name:  "notes separator absent means empty notes",
			input: "Ship release :90",
			want: shorthand.Draft{
				Title:           "Ship release",
				DurationMinutes: intPtr(90),
			},
		},
		{
			name:  "markers after notes separator stay in notes",
			input: "Plan trip n: check @flights and .hotels",
			want: shorthand.Draft{
				Title: "Plan trip",
				Notes: "check @flights and .hotels",
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  shorthand.Draft{},
		},
		{
			name:  "zero duration is a valid duration",
			input: "Quick note :0",
			want: shorthand.Draft{
				Title:           "Quick note",
				DurationMinutes: intPtr(0),
			},
		},
		{
			name:  "whitespace collapses in title",
			input: "  Buy   milk  ",
			want:  shorthand.Draft{Title: "Buy milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shorthand.Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// The title must never retain a token that was successfully
// classified as a label, list, or valid duration marker.
func TestParseTitleContainsNoClassifiedMarkers(t *testing.T) {
	inputs := []string{
		"Buy milk @errands :15 .shopping n: get 2%",
		"a @b .c :1",
		"@only",
		".label :30",
	}
	for _, input := range inputs {
		d := shorthand.Parse(input)
		for _, word := range strings.Fields(d.Title) {
			if strings.HasPrefix(word, "@") || strings.HasPrefix(word, ".") {
				t.Errorf("Parse(%q).Title = %q retains marker token %q", input, d.Title, word)
			}
			if strings.HasPrefix(word, ":") {
				if _, err := strconv.Atoi(word[1:]); err == nil {
					t.Errorf("Parse(%q).Title = %q retains valid duration token %q", input, d.Title, word)
				}
			}
		}
	}
}

func TestCountListMarkers(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Buy milk @errands", 1},
		{"Call mom @home @family", 2},
		{"no markers here", 0},
		{"@ bare marker still counts", 1},
		{"note part counts too n: see @work", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := shorthand.CountListMarkers(tt.input); got != tt.want {
			t.Errorf("CountListMarkers(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
