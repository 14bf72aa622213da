package todo

import (
	"strings"
	"testing"
)

func TestMarshalTasksEmpty(t *testing.T) {
	got, err := MarshalTasks(nil)
	if err != nil {
		t.Fatalf("MarshalTasks failed: %v", err)
	}
	if got != "[]" {
		t.Errorf("MarshalTasks(nil): got %q, want []", got)
	}
}

func TestMarshalTasksFieldNames(t *testing.T) {
	got, err := MarshalTasks([]Task{{ID: "a", Text: "Buy milk"}})
	if err != nil {
		t.Fatalf("MarshalTasks failed: %v", err)
	}
	want := `[{"id":"a","text":"Buy milk","completed":false,"due":""}]`
	if got != want {
		t.Errorf("MarshalTasks: got %s, want %s", got, want)
	}
}

func TestUnmarshalTasksAssignsMissingIDs(t *testing.T) {
	// Data written before tasks carried ids.
	data := `[{"text":"A","completed":true,"due":""},{"text":"A","completed":true,"due":""}]`

	tasks, err := UnmarshalTasks(data, seqIDs())
	if err != nil {
		t.Fatalf("UnmarshalTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len: got %d, want 2", len(tasks))
	}
	if tasks[0].ID != "t1" || tasks[1].ID != "t2" {
		t.Errorf("IDs: got %q, %q", tasks[0].ID, tasks[1].ID)
	}
	if tasks[0].Text != "A" || !tasks[0].Completed {
		t.Errorf("task[0]: got %+v", tasks[0])
	}
}

func TestUnmarshalTasksReassignsDuplicateIDs(t *testing.T) {
	data := `[{"id":"x","text":"A","completed":false,"due":""},{"id":"x","text":"B","completed":false,"due":""}]`

	tasks, err := UnmarshalTasks(data, seqIDs())
	if err != nil {
		t.Fatalf("UnmarshalTasks failed: %v", err)
	}
	if tasks[0].ID != "x" {
		t.Errorf("first id: got %q, want x", tasks[0].ID)
	}
	if tasks[1].ID == "x" {
		t.Error("duplicate id was kept")
	}
}

func TestUnmarshalTasksMalformed(t *testing.T) {
	for _, data := range []string{"", "{", `{"text":"A"}`, "not json"} {
		if _, err := UnmarshalTasks(data, nil); err == nil {
			t.Errorf("UnmarshalTasks(%q): expected error", data)
		}
	}
}

func TestUnmarshalTasksNull(t *testing.T) {
	tasks, err := UnmarshalTasks("null", nil)
	if err != nil {
		t.Fatalf("UnmarshalTasks failed: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("got %#v, want empty slice", tasks)
	}
}

func TestTasksRoundTrip(t *testing.T) {
	original := []Task{
		{ID: "a", Text: "A", Completed: true, Due: "2024-01-02"},
		{ID: "b", Text: "B \"quoted\"", Completed: false, Due: ""},
	}
	data, err := MarshalTasks(original)
	if err != nil {
		t.Fatalf("MarshalTasks failed: %v", err)
	}
	loaded, err := UnmarshalTasks(data, nil)
	if err != nil {
		t.Fatalf("UnmarshalTasks failed: %v", err)
	}
	for i := range original {
		if loaded[i] != original[i] {
			t.Errorf("task %d: got %+v, want %+v", i, loaded[i], original[i])
		}
	}
}

func TestDarkFlag(t *testing.T) {
	if MarshalDark(true) != "true" || MarshalDark(false) != "false" {
		t.Error("MarshalDark produced unexpected strings")
	}
	if !UnmarshalDark("true") || UnmarshalDark("false") || UnmarshalDark("") || UnmarshalDark("TRUE") {
		t.Error("UnmarshalDark: only \"true\" is dark")
	}
}

func TestValidateTasks(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantValid bool
		wantPath  string
	}{
		{
			name:      "valid",
			data:      `[{"id":"a","text":"A","completed":false,"due":"2024-03-01"}]`,
			wantValid: true,
		},
		{
			name:      "valid without ids",
			data:      `[{"text":"A","completed":true,"due":""}]`,
			wantValid: true,
		},
		{
			name:      "empty array",
			data:      `[]`,
			wantValid: true,
		},
		{
			name:      "not an array",
			data:      `{"tasks":[]}`,
			wantValid: false,
		},
		{
			name:      "missing text",
			data:      `[{"completed":false}]`,
			wantValid: false,
			wantPath:  "[0]",
		},
		{
			name:      "completed wrong type",
			data:      `[{"text":"A","completed":"yes"}]`,
			wantValid: false,
			wantPath:  "[0].completed",
		},
		{
			name:      "bad due date",
			data:      `[{"text":"A","completed":false,"due":"next week"}]`,
			wantValid: false,
			wantPath:  "[0].due",
		},
		{
			name:      "invalid json",
			data:      `[{"text":`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTasks(tt.data)
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid: got %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if tt.wantValid {
				if result.Err() != nil {
					t.Errorf("Err: got %v, want nil", result.Err())
				}
				return
			}
			if result.Err() == nil {
				t.Fatal("Err: got nil for invalid data")
			}
			if tt.wantPath == "" {
				return
			}
			found := false
			for _, err := range result.Errors {
				if strings.HasPrefix(err.Error(), tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at %s: %v", tt.wantPath, result.Errors)
			}
		})
	}
}

func TestSchemaJSONIsCopy(t *testing.T) {
	a := SchemaJSON()
	a[0] = 'x'
	if SchemaJSON()[0] == 'x' {
		t.Error("SchemaJSON returned shared backing array")
	}
}

func TestInstancePath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"/0", "[0]"},
		{"/2/due", "[2].due"},
		{"#/0/text", "[0].text"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			if got := instancePath(tt.ptr); got != tt.want {
				t.Errorf("instancePath(%q) = %q, want %q", tt.ptr, got, tt.want)
			}
		})
	}
}
