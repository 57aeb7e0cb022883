package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_StatusFilter(t *testing.T) {
	query, args := BuildListQuery("pending", "", "")
	assert.Contains(t, query, "WHERE status = ?")
	assert.Equal(t, []any{"pending"}, args)

	query, args = BuildListQuery("", "", "")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuery_SortByAllowList(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		wantExpr string
	}{
		{"due date", "due_date", "ORDER BY due_date"},
		{"status", "status", "ORDER BY status"},
		{"created at", "created_at", "ORDER BY created_at"},
		{"title is case-insensitive", "title", "ORDER BY LOWER(title)"},
		{"empty falls back", "", "ORDER BY created_at"},
		{"unknown falls back", "priority", "ORDER BY created_at"},
		{"injection attempt falls back", "created_at; DROP TABLE tasks;--", "ORDER BY created_at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := BuildListQuery("", tt.sortBy, "")
			assert.Contains(t, query, tt.wantExpr)
		})
	}

	// the raw value must never reach the query text
	query, args := BuildListQuery("", "priority", "")
	assert.NotContains(t, query, "priority")
	assert.Empty(t, args)
}

func TestBuildListQuery_OrderToken(t *testing.T) {
	tests := []struct {
		order string
		want  string
	}{
		{"asc", "ASC"},
		{"ASC", "DESC"},
		{"Asc", "DESC"},
		{"desc", "DESC"},
		{"", "DESC"},
		{"ascending", "DESC"},
	}
	for _, tt := range tests {
		query, _ := BuildListQuery("", "created_at", tt.order)
		assert.Contains(t, query, "ORDER BY created_at "+tt.want, "order=%q", tt.order)
	}
}
