package models

import "time"

// Allowed task statuses. Status is a flat value: any allowed status may
// move to any other, there is no transition graph.
const (
	StatusPending    = "pending"
	StatusNonPending = "non-pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var AllowedStatuses = []string{
	StatusPending,
	StatusNonPending,
	StatusInProgress,
	StatusCompleted,
}

func IsAllowedStatus(status string) bool {
	for _, s := range AllowedStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
