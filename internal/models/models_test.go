package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatus_IsValid(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, ApplicationStatus("approved").IsValid())
	assert.False(t, ApplicationStatus("").IsValid())
	assert.False(t, ApplicationStatus("PENDING").IsValid())
}

func TestApplicationStatus_Scan(t *testing.T) {
	var s ApplicationStatus
	require.NoError(t, s.Scan("shortlisted"))
	assert.Equal(t, ApplicationStatusShortlisted, s)

	require.NoError(t, s.Scan([]byte("rejected")))
	assert.Equal(t, ApplicationStatusRejected, s)

	assert.Error(t, s.Scan("bogus"))
	assert.Error(t, s.Scan(42))
}

func TestRole_Scan(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan("recruiter"))
	assert.Equal(t, RoleRecruiter, r)

	assert.Error(t, r.Scan("superuser"))
}

func TestJobStatus_Scan(t *testing.T) {
	var js JobStatus
	require.NoError(t, js.Scan("draft"))
	assert.Equal(t, JobStatusDraft, js)

	assert.Error(t, js.Scan("archived"))
}
