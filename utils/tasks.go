package utils

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"task-manager-api/models"
)

// GetTasks retrieves tasks matching the optional status filter, ordered
// per the sortBy/order tokens. An empty result is not an error.
func GetTasks(status, sortBy, order string) ([]models.Task, error) {
	query, args := BuildListQuery(status, sortBy, order)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// AddTask validates the input and inserts a new task. Validation runs
// before any store access.
func AddTask(title, description, status string, dueDate *string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if status == "" {
		return nil, models.NewValidationError("Status is a required field.")
	}
	if !models.IsAllowedStatus(status) {
		return nil, models.NewValidationError(fmt.Sprintf(
			"Invalid status. Must be one of: %s", strings.Join(models.AllowedStatuses, ", ")))
	}

	now := time.Now()
	query := `
    INSERT INTO tasks (title, description, status, due_date, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?)
    `
	result, err := db.Exec(query, title, description, status, dueDate, now, now)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Task{
		ID:          int(id),
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateTask rewrites all mutable fields of an existing task and
// refreshes updated_at. There are no partial-patch semantics.
func UpdateTask(id int, title, description, status string, dueDate *string) (*models.Task, error) {
	query := `
    UPDATE tasks
    SET title = ?, description = ?, status = ?, due_date = ?, updated_at = ?
    WHERE id = ?
    `
	result, err := db.Exec(query, title, description, status, dueDate, time.Now(), id)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, models.ErrTaskNotFound
	}

	return GetTask(id)
}

// DeleteTask permanently removes a task. There is no tombstone; a second
// delete of the same id reports not found.
func DeleteTask(id int) error {
	result, err := db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTaskNotFound
	}
	return nil
}

// GetTask retrieves a single task by ID.
func GetTask(id int) (*models.Task, error) {
	row := db.QueryRow(`
    SELECT id, title, description, status, due_date, created_at, updated_at
    FROM tasks
    WHERE id = ?
    `, id)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var task models.Task
	var dueDate sql.NullString
	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Status,
		&dueDate, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.String
	}
	return &task, nil
}
