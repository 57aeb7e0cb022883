package views

import (
	"time"

	"task-manager-api/models"
)

// DueSoonWindow is how far ahead a due date counts as "due soon".
const DueSoonWindow = 3 * 24 * time.Hour

// Board groups a task collection into the columns the client renders.
// A task appears in exactly one status column and may additionally
// appear under DueSoon.
type Board struct {
	Pending    []models.Task `json:"pending"`
	InProgress []models.Task `json:"in_progress"`
	Completed  []models.Task `json:"completed"`
	NonPending []models.Task `json:"non_pending"`
	DueSoon    []models.Task `json:"due_soon"`
}

// BuildBoard derives the column view from tasks. It is stateless and
// recomputed on every call; the input order is preserved within columns.
func BuildBoard(tasks []models.Task, now time.Time) Board {
	board := Board{
		Pending:    []models.Task{},
		InProgress: []models.Task{},
		Completed:  []models.Task{},
		NonPending: []models.Task{},
		DueSoon:    []models.Task{},
	}
	deadline := now.Add(DueSoonWindow)

	for _, task := range tasks {
		switch task.Status {
		case models.StatusPending:
			board.Pending = append(board.Pending, task)
		case models.StatusInProgress:
			board.InProgress = append(board.InProgress, task)
		case models.StatusCompleted:
			board.Completed = append(board.Completed, task)
		case models.StatusNonPending:
			board.NonPending = append(board.NonPending, task)
		}

		if task.Status == models.StatusCompleted || task.DueDate == nil {
			continue
		}
		due, ok := parseDueDate(*task.DueDate)
		if ok && !due.After(deadline) {
			board.DueSoon = append(board.DueSoon, task)
		}
	}
	return board
}

func parseDueDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
