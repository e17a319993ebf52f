package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_NoConditions(t *testing.T) {
	args := []interface{}{}
	query := buildListQuery("SELECT * FROM jobs", nil, &args, "created_at DESC", 0, 10)

	assert.Equal(t, "SELECT * FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestBuildListQuery_WithConditions(t *testing.T) {
	args := []interface{}{"active", "Bangalore"}
	conditions := []string{"status = $1", "location ILIKE $2"}

	query := buildListQuery("SELECT * FROM jobs", conditions, &args, "created_at DESC", 20, 10)

	assert.Equal(t, "SELECT * FROM jobs WHERE status = $1 AND location ILIKE $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4", query)
	assert.Equal(t, []interface{}{"active", "Bangalore", 10, 20}, args)
}
