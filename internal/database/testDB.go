package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/docker/go-connections/nat"
	// Register lib/pq for the readiness probe
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testDBOnce     sync.Once
	testDBInstance *DBinstanceStruct
	testTeardown   func(context.Context, ...testcontainers.TerminateOption) error
	testDBErr      error
)

// ErrDockerUnavailable is returned by GetTestDB when no healthy container provider is reachable
var ErrDockerUnavailable = errors.New("docker is not available")

// GetTestDB starts a PostgreSQL test container once per process and returns a teardown function,
// the DB instance, and any error encountered during setup. Without Docker it returns
// ErrDockerUnavailable instead of starting anything.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {
	testDBOnce.Do(func() {
		testTeardown, testDBInstance, testDBErr = startTestDB()
	})
	return testTeardown, testDBInstance, testDBErr
}

func startTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	ctx := context.Background()

	if err := providerHealthy(ctx); err != nil {
		return nil, nil, err
	}

	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort.Port(), dbUser, dbPwd, dbName)

	if err := ping(ctx, dsn); err != nil {
		return dbContainer.Terminate, nil, err
	}

	db, err := NewDBInstance(&DBConfig{
		UseConstr: true,
		Constr:    dsn,
		DBName:    dbName,
	})
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	return dbContainer.Terminate, db, nil
}

// providerHealthy checks the container provider before any container call.
// testcontainers panics when no Docker socket can be found.
func providerHealthy(ctx context.Context) error {
	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDockerUnavailable, err)
	}
	defer provider.Close()
	if err := provider.Health(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDockerUnavailable, err)
	}
	return nil
}

func ping(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
