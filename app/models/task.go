package models

import "github.com/google/uuid"

// Status of a task. The declared order (ToDo, InProgress, Done) is also the
// display order used when listing tasks.
type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

func (s Status) Valid() bool {
	return s == StatusToDo || s == StatusInProgress || s == StatusDone
}

// Rank returns the position of the status in display order. Unknown values
// sort last.
func (s Status) Rank() int {
	switch s {
	case StatusToDo:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	default:
		return 3
	}
}

// Task is assigned to exactly one user. Only Status changes after creation;
// every other field is fixed. AssigneeID references a User but does not own
// it.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssigneeID  uuid.UUID `json:"assigneeId"`
	Status      Status    `json:"status"`
}
