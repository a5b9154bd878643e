// Package database implement connection to database service and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	// Register pgx as database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aps-backend/internal/model"
)

// ErrIncompleteConfig is returned when neither a connection string nor every host field is set
var ErrIncompleteConfig = errors.New("database configuration is incomplete")

// ErrNotConnected is returned by Raw before a connection is open
var ErrNotConnected = errors.New("database is not connected")

// Connection pool limits
const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

// DBinstanceStruct wraps the GORM handle of the storage database
type DBinstanceStruct struct {
	*gorm.DB
	Config *DBConfig
}

// DBConfig holds the configuration parameters for connecting to a database.
type DBConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	DBName    string
	Constr    string
	UseConstr bool
}

func (d *DBConfig) getDsn() (string, error) {
	if d.UseConstr {
		if d.Constr == "" {
			return "", fmt.Errorf("%w: DB_CONNECTION_STR is empty", ErrIncompleteConfig)
		}
		return d.Constr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.DBName == "" {
		return "", ErrIncompleteConfig
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.DBName), nil
}

// NewDBInstance opens the database, sizes its pool and migrates the storage table
func NewDBInstance(config *DBConfig) (*DBinstanceStruct, error) {
	dsn, err := config.getDsn()
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if gin.IsDebugging() {
		gdb = gdb.Debug()
	}

	d := &DBinstanceStruct{DB: gdb, Config: config}

	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	raw.SetMaxOpenConns(maxOpenConns)
	raw.SetMaxIdleConns(maxIdleConns)
	raw.SetConnMaxLifetime(connMaxLifetime)

	if err := d.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Printf("Connected to database %s", config.DBName)
	return d, nil
}

// Raw returns the underlying *sql.DB
func (d *DBinstanceStruct) Raw() (*sql.DB, error) {
	if d == nil || d.DB == nil {
		return nil, ErrNotConnected
	}
	return d.DB.DB()
}

// Migrate creates or updates every table in model.MigrateAble
func (d *DBinstanceStruct) Migrate() error {
	return d.AutoMigrate(model.MigrateAble...)
}

// Health pings the database within one second and reports pool statistics
func (d *DBinstanceStruct) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	down := func(err error) map[string]string {
		log.Printf("db down: %v", err)
		return map[string]string{"status": "down", "error": fmt.Sprintf("db down: %v", err)}
	}

	raw, err := d.Raw()
	if err != nil {
		return down(err)
	}
	if err := raw.PingContext(ctx); err != nil {
		return down(err)
	}

	st := raw.Stats()
	stats := map[string]string{
		"status":           "up",
		"message":          "It's healthy",
		"open_connections": strconv.Itoa(st.OpenConnections),
		"in_use":           strconv.Itoa(st.InUse),
		"idle":             strconv.Itoa(st.Idle),
		"wait_count":       strconv.FormatInt(st.WaitCount, 10),
		"wait_duration":    st.WaitDuration.String(),
	}
	if st.OpenConnections >= maxOpenConns && st.WaitCount > 0 {
		stats["message"] = "The storage pool is saturated."
	}
	return stats
}

// Close closes the database connection.
func (d *DBinstanceStruct) Close() error {
	raw, err := d.Raw()
	if err != nil {
		return err
	}
	log.Printf("Disconnected from database: %s", d.Config.DBName)
	return raw.Close()
}
