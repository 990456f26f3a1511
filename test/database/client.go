// Package database wraps the shared test harness in the application's
// database.Client type.
package database

import (
	"testing"

	"github.com/quantmuse/eventcore/pkg/database"
	"github.com/quantmuse/eventcore/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
