package todo

import (
	"errors"
	"testing"
)

func TestFilterMatch(t *testing.T) {
	done := Task{ID: "a", Text: "done", Completed: true}
	open := Task{ID: "b", Text: "open"}
	l := NewList([]Task{done, open}, nil)

	tests := []struct {
		filter Filter
		want   []Task
	}{
		{FilterAll, []Task{done, open}},
		{FilterCompleted, []Task{done}},
		{FilterIncomplete, []Task{open}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := l.Filter(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%s): got %d tasks, want %d", tt.filter, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%s)[%d]: got %+v, want %+v", tt.filter, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterDoesNotMutateList(t *testing.T) {
	l := NewList([]Task{{ID: "a", Completed: true}, {ID: "b"}}, nil)
	_ = l.Filter(FilterIncomplete)
	if l.Len() != 2 {
		t.Errorf("Len after Filter: got %d, want 2", l.Len())
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"All", FilterAll, false},
		{"completed", FilterCompleted, false},
		{"DONE", FilterCompleted, false},
		{"Incomplete", FilterIncomplete, false},
		{"todo", FilterIncomplete, false},
		{"archived", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFilter) {
				t.Errorf("ParseFilter(%q) error: got %v, want ErrInvalidFilter", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterNext(t *testing.T) {
	if got := FilterAll.Next(); got != FilterCompleted {
		t.Errorf("All.Next: got %s", got)
	}
	if got := FilterCompleted.Next(); got != FilterIncomplete {
		t.Errorf("Completed.Next: got %s", got)
	}
	if got := FilterIncomplete.Next(); got != FilterAll {
		t.Errorf("Incomplete.Next: got %s", got)
	}
}

func TestCountLabel(t *testing.T) {
	if got := CountLabel(1); got != "1 tasks" {
		t.Errorf("CountLabel(1): got %q, want %q", got, "1 tasks")
	}
}
