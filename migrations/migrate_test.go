// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first query fails
	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigratePostgres(db), ErrNilDB)
	assert.ErrorIs(t, MigrateSQLite(db), ErrNilDB)
}

func TestMigrateSQLite_InMemory(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, MigrateSQLite(db))
	// second run is a no-op
	require.NoError(t, MigrateSQLite(db))

	_, err = db.Exec(`INSERT INTO local_session (id, user_id, login, token) VALUES (1, 7, 'alice', 't')`)
	require.NoError(t, err)

	var login string
	require.NoError(t, db.QueryRow(`SELECT login FROM local_session WHERE id = 1`).Scan(&login))
	assert.Equal(t, "alice", login)
}

func TestEmbeddedMigrations_HaveUpAndDown(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, f := range files {
			body, err := fs.ReadFile(embedMigrations, f)
			require.NoError(t, err)
			assert.True(t, strings.Contains(string(body), "-- +goose Up"), f)
			assert.True(t, strings.Contains(string(body), "-- +goose Down"), f)
		}
	}
}
