// pkg/db/mysql.go
// Helper koneksi MySQL (menggunakan database/sql) + retry ping

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type Options struct {
	MaxOpen   int
	MaxIdle   int
	Retries   int
	RetryWait time.Duration
}

// Open membuka pool lalu ping berulang agar tahan saat container DB baru up.
func Open(ctx context.Context, dsn string, opt Options) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty mysql dsn")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if opt.MaxOpen > 0 {
		db.SetMaxOpenConns(opt.MaxOpen)
	}
	if opt.MaxIdle > 0 {
		db.SetMaxIdleConns(opt.MaxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	retries := max(opt.Retries, 1)
	wait := opt.RetryWait
	if wait <= 0 {
		wait = 3 * time.Second
	}

	var pingErr error
	for i := 0; i < retries; i++ {
		if pingErr = db.PingContext(ctx); pingErr == nil {
			return db, nil
		}
		if i == retries-1 {
			break
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	db.Close()
	return nil, fmt.Errorf("mysql not ready after %d tries: %w", retries, pingErr)
}
