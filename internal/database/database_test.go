package database

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(m *testing.M) {
	teardown, db, err := GetTestDB()
	if err != nil {
		log.Printf("could not start postgres container, skipping database tests: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown postgres container: %v", err)
		}
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *DBinstanceStruct {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres container not available")
	}
	return testDB
}

func TestGetDsn(t *testing.T) {
	_, err := (&DBConfig{Host: "localhost"}).getDsn()
	assert.ErrorIs(t, err, ErrIncompleteConfig)

	_, err = (&DBConfig{UseConstr: true}).getDsn()
	assert.ErrorIs(t, err, ErrIncompleteConfig)

	dsn, err := (&DBConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "d"}).getDsn()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", dsn)
}

func TestHealth(t *testing.T) {
	db := requireDB(t)
	stats := db.Health(context.Background())

	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestMigrate(t *testing.T) {
	db := requireDB(t)

	require.NoError(t, db.Migrate())
	assert.True(t, db.Migrator().HasTable(&model.StorageItem{}))
}

func TestProviderHealthyWithoutDocker(t *testing.T) {
	var err error
	assert.NotPanics(t, func() {
		err = providerHealthy(context.Background())
	})
	if err != nil {
		assert.ErrorIs(t, err, ErrDockerUnavailable)
		assert.Nil(t, testDB)
	}
}
