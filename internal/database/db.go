package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// openAttempts bounds how often Open retries a failing connection before
// giving up.  The delay before each retry starts at retryBaseDelay and
// doubles, mirroring the backoff the service has always used against a slow
// managed database waking up.
const (
	openAttempts   = 3
	retryBaseDelay = time.Second
)

// DSN builds a MySQL connection string from the individual settings.
func DSN(user, pass, host, port, name string) string {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)
}

// Open connects to MySQL and verifies the connection, retrying transient
// failures with exponential backoff.  After the final attempt the last error
// propagates to the caller.
func Open(dsn string) (*sql.DB, error) {
	return open(dsn, openAttempts, retryBaseDelay, time.Sleep)
}

// open is the retry loop behind Open; the sleep function is injectable so
// tests can observe the backoff schedule without waiting on it.
func open(dsn string, attempts int, delay time.Duration, sleep func(time.Duration)) (*sql.DB, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			sleep(delay)
			delay *= 2
		}
		db, err := tryOpen(dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("open database after %d attempts: %w", attempts, lastErr)
}

// tryOpen performs a single open+ping cycle and configures the pool on
// success.
func tryOpen(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
