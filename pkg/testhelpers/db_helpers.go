package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// CreateTestAsset inserts a minimal valid asset row with a unique tag and
// returns its ID.
func CreateTestAsset(t *testing.T, db *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	name := fmt.Sprintf("test-asset-%d", suffix)
	tag := fmt.Sprintf("TEST-%d", suffix)

	var id int64
	err := db.QueryRow(ctx, "INSERT INTO assets (name, type, tag, cost) VALUES ($1, 'laptop', $2, '100.00') RETURNING id", name, tag).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestUser inserts a minimal valid user row and returns its ID.
func CreateTestUser(t *testing.T, db *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()
	username := fmt.Sprintf("test-user-%d", nextSuffix())

	var id int64
	err := db.QueryRow(ctx, "INSERT INTO users (username, password_hash) VALUES ($1, 'hash') RETURNING id", username).Scan(&id)
	require.NoError(t, err)
	return id
}
