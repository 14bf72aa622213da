package todo

import (
	"fmt"
	"testing"
)

func largeList(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{
			ID:        fmt.Sprintf("t%04d", i),
			Text:      fmt.Sprintf("Task %d", i),
			Completed: i%3 == 0,
		}
		if i%5 == 0 {
			tasks[i].Due = "2024-06-01"
		}
	}
	return tasks
}

// BenchmarkUnmarshalTasks benchmarks decoding a stored list of 100 tasks.
func BenchmarkUnmarshalTasks(b *testing.B) {
	data, err := MarshalTasks(largeList(100))
	if err != nil {
		b.Fatalf("MarshalTasks failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := UnmarshalTasks(data, nil); err != nil {
			b.Fatalf("UnmarshalTasks failed: %v", err)
		}
	}
}

// BenchmarkFilter benchmarks recomputing the visible list.
func BenchmarkFilter(b *testing.B) {
	l := NewList(largeList(1000), nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Filter(FilterIncomplete)
	}
}

// BenchmarkValidateTasks benchmarks schema validation of 100 stored tasks.
func BenchmarkValidateTasks(b *testing.B) {
	data, err := MarshalTasks(largeList(100))
	if err != nil {
		b.Fatalf("MarshalTasks failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if result := ValidateTasks(data); !result.Valid {
			b.Fatalf("ValidateTasks: %v", result.Errors)
		}
	}
}
