package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Replace must drop event_roles before the window tables: the role cascade
// clears registrations and their attendance rows, and attendance rows
// reference attendance_windows. The reverse order aborts the transaction
// for any event with recorded attendance.
func TestReplaceCleanupTables_RolesDropFirst(t *testing.T) {
	idx := make(map[string]int, len(replaceCleanupTables))
	for i, table := range replaceCleanupTables {
		idx[table] = i
	}

	require.Contains(t, idx, "event_roles")
	require.Contains(t, idx, "registration_windows")
	require.Contains(t, idx, "attendance_windows")

	assert.Less(t, idx["event_roles"], idx["registration_windows"])
	assert.Less(t, idx["event_roles"], idx["attendance_windows"])
}
