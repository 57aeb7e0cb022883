package utils

// Columns a list request may sort on. Anything else falls back to
// created_at so unknown field names never reach the query text.
var allowedSortBy = map[string]bool{
	"title":      true,
	"due_date":   true,
	"status":     true,
	"created_at": true,
}

// BuildListQuery assembles the read query for a list request. The status
// filter is always bound as a parameter; sortBy and order only ever
// contribute vetted tokens to the query text.
func BuildListQuery(status, sortBy, order string) (string, []any) {
	query := `
    SELECT id, title, description, status, due_date, created_at, updated_at
    FROM tasks
    `
	var args []any

	if status != "" {
		query += "WHERE status = ?\n    "
		args = append(args, status)
	}

	if !allowedSortBy[sortBy] {
		sortBy = "created_at"
	}
	sortExpr := sortBy
	if sortBy == "title" {
		sortExpr = "LOWER(title)"
	}

	// Only the exact token "asc" sorts ascending; everything else,
	// including absence, is descending.
	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}

	query += "ORDER BY " + sortExpr + " " + direction

	return query, args
}
