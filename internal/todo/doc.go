// Package todo holds the task list state: tasks, filters, and the edit slot.
//
// Tasks are stored under the "tasks" key as a JSON array:
//
//	[
//	  {
//	    "id": "5b0f5a8e-7c4e-4f0e-9a53-0b8f3f1f9d21",
//	    "text": "Buy milk",
//	    "completed": false,
//	    "due": "2024-01-31"
//	  }
//	]
//
// # Identity
//
// Every task carries an opaque id assigned when it is created. All list
// operations address tasks by id; two tasks with identical text, completion
// and due date are still distinct. Stored tasks without an id are given one
// when decoded.
//
// # Filters
//
//   - "All": every task
//   - "Completed": tasks with completed == true
//   - "Incomplete": tasks with completed == false
//
// # Due Dates
//
// A due date is either empty or an ISO calendar date (YYYY-MM-DD).
//
// # Validation
//
// Stored data can be checked against the embedded JSON Schema
// (draft 2020-12) with ValidateTasks. Decoding never panics on malformed
// input; callers decide how to fall back.
package todo
