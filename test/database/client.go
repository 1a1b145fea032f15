// Package database provides a ready-wrapped database client for tests that
// exercise code against the pkg/database.Client type.
package database

import (
	"testing"

	"github.com/recruitflow/recruitflow/pkg/database"
	"github.com/recruitflow/recruitflow/test/util"
)

// NewTestClient creates a test database client backed by an isolated schema.
// Cleanup (schema drop and connection close) is handled by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
