// Package sqlite fornece o cliente do banco embarcado usado como
// armazenamento padrão de entidades. Dispensa qualquer serviço externo:
// um único arquivo no disco local.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Client struct {
	db   *sql.DB
	path string
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

func NewClient(config *SQLiteConfig) (*Client, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// WAL mantém leituras concorrentes durante as escritas do cache
	dsn := "file:" + config.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Um único writer evita SQLITE_BUSY nas substituições em lote
	db.SetMaxOpenConns(1)

	client := &Client{db: db, path: config.Path}

	// Teste de conexão inicial
	if err := client.Ping(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return client, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("sqlite handle is nil")
	}
	return c.db.PingContext(ctx)
}

func (c *Client) Close() {
	if c.db != nil {
		c.db.Close()
	}
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Path() string {
	return c.path
}

func (c *Client) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := c.db.ExecContext(ctx, query, args...)
	return err
}

func (c *Client) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, query, args...)
}

func (c *Client) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

// WithTransaction executa fn em uma transação com rollback automático
func (c *Client) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			// Não mascarar o erro original
			fmt.Printf("Warning: failed to rollback transaction: %v\n", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
