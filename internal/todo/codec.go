package todo

import (
	"encoding/json"
	"fmt"
)

// MarshalTasks encodes tasks as the stored JSON array.
func MarshalTasks(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}

// UnmarshalTasks decodes a stored JSON array. Tasks without an id, or whose
// id repeats an earlier one, are given a fresh id from newID.
func UnmarshalTasks(data string, newID IDFunc) ([]Task, error) {
	if newID == nil {
		newID = NewID
	}
	var tasks []Task
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}

	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		if tasks[i].ID == "" || seen[tasks[i].ID] {
			tasks[i].ID = newID()
		}
		seen[tasks[i].ID] = true
	}
	return tasks, nil
}

// MarshalDark encodes the theme flag as "true" or "false".
func MarshalDark(dark bool) string {
	if dark {
		return "true"
	}
	return "false"
}

// UnmarshalDark decodes the theme flag. Anything other than "true" is light.
func UnmarshalDark(s string) bool {
	return s == "true"
}
