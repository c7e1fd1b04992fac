package entitystore

import (
	"context"
	"fmt"

	"medsms-core/internal/infrastructure/database/postgres"
)

// PostgresDriver guarda cada coleção em uma tabela id/jsonb, para
// implantações compartilhadas entre várias estações
type PostgresDriver struct {
	client *postgres.Client
	txm    *postgres.TransactionManager
}

func NewPostgresDriver(client *postgres.Client) *PostgresDriver {
	return &PostgresDriver{
		client: client,
		txm:    postgres.NewTransactionManager(client),
	}
}

func (d *PostgresDriver) Init(ctx context.Context) error {
	for _, col := range All {
		ddl := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, data JSONB NOT NULL)",
			col.TableName(),
		)
		if err := d.client.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", col.TableName(), err)
		}
	}
	return nil
}

func (d *PostgresDriver) GetAll(ctx context.Context, col Collection) ([]Row, error) {
	query := fmt.Sprintf("SELECT id, data FROM %s ORDER BY id", col.TableName())

	rows, err := d.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Data); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (d *PostgresDriver) Put(ctx context.Context, col Collection, row Row) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, data) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data",
		col.TableName(),
	)
	return d.client.Exec(ctx, query, row.ID, row.Data)
}

func (d *PostgresDriver) Delete(ctx context.Context, col Collection, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", col.TableName())
	return d.client.Exec(ctx, query, id)
}

func (d *PostgresDriver) BulkPut(ctx context.Context, col Collection, rows []Row) error {
	return d.txm.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		return insertRowsPostgres(ctx, tx, col, rows)
	})
}

func (d *PostgresDriver) ReplaceAll(ctx context.Context, col Collection, rows []Row) error {
	return d.txm.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		if err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", col.TableName())); err != nil {
			return err
		}
		return insertRowsPostgres(ctx, tx, col, rows)
	})
}

func (d *PostgresDriver) Clear(ctx context.Context, col Collection) error {
	return d.client.Exec(ctx, fmt.Sprintf("DELETE FROM %s", col.TableName()))
}

func (d *PostgresDriver) Count(ctx context.Context, col Collection) (int, error) {
	var count int
	err := d.client.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", col.TableName())).Scan(&count)
	return count, err
}

func (d *PostgresDriver) Close() error {
	d.client.Close()
	return nil
}

func insertRowsPostgres(ctx context.Context, tx *postgres.Transaction, col Collection, rows []Row) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, data) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data",
		col.TableName(),
	)

	for _, row := range rows {
		if err := tx.Exec(ctx, query, row.ID, row.Data); err != nil {
			return err
		}
	}
	return nil
}
