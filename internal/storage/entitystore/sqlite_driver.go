package entitystore

import (
	"context"
	"database/sql"
	"fmt"

	"medsms-core/internal/infrastructure/database/sqlite"
)

// SQLiteDriver guarda cada coleção em uma tabela id/data do banco embarcado
type SQLiteDriver struct {
	client *sqlite.Client
}

func NewSQLiteDriver(client *sqlite.Client) *SQLiteDriver {
	return &SQLiteDriver{client: client}
}

func (d *SQLiteDriver) Init(ctx context.Context) error {
	for _, col := range All {
		ddl := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, data TEXT NOT NULL)",
			col.TableName(),
		)
		if err := d.client.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", col.TableName(), err)
		}
	}
	return nil
}

func (d *SQLiteDriver) GetAll(ctx context.Context, col Collection) ([]Row, error) {
	query := fmt.Sprintf("SELECT id, data FROM %s ORDER BY id", col.TableName())

	rows, err := d.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var r Row
		var data string
		if err := rows.Scan(&r.ID, &data); err != nil {
			return nil, err
		}
		r.Data = []byte(data)
		result = append(result, r)
	}
	return result, rows.Err()
}

func (d *SQLiteDriver) Put(ctx context.Context, col Collection, row Row) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data",
		col.TableName(),
	)
	return d.client.Exec(ctx, query, row.ID, string(row.Data))
}

func (d *SQLiteDriver) Delete(ctx context.Context, col Collection, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", col.TableName())
	return d.client.Exec(ctx, query, id)
}

func (d *SQLiteDriver) BulkPut(ctx context.Context, col Collection, rows []Row) error {
	return d.client.WithTransaction(ctx, func(tx *sql.Tx) error {
		return insertRowsSQLite(ctx, tx, col, rows)
	})
}

func (d *SQLiteDriver) ReplaceAll(ctx context.Context, col Collection, rows []Row) error {
	return d.client.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", col.TableName())); err != nil {
			return err
		}
		return insertRowsSQLite(ctx, tx, col, rows)
	})
}

func (d *SQLiteDriver) Clear(ctx context.Context, col Collection) error {
	return d.client.Exec(ctx, fmt.Sprintf("DELETE FROM %s", col.TableName()))
}

func (d *SQLiteDriver) Count(ctx context.Context, col Collection) (int, error) {
	var count int
	err := d.client.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", col.TableName())).Scan(&count)
	return count, err
}

func (d *SQLiteDriver) Close() error {
	d.client.Close()
	return nil
}

func insertRowsSQLite(ctx context.Context, tx *sql.Tx, col Collection, rows []Row) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data",
		col.TableName(),
	)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.ID, string(row.Data)); err != nil {
			return err
		}
	}
	return nil
}
