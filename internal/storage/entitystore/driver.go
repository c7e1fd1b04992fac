package entitystore

import "context"

// Row é o registro bruto de uma coleção: identificador + documento JSON.
// Os drivers não interpretam o documento; a tipagem acontece no Store.
type Row struct {
	ID   string
	Data []byte
}

// Driver abstrai o banco por trás do armazenamento de entidades.
// Implementações: sqlite (embarcado, padrão) e postgres.
type Driver interface {
	// Init cria as tabelas das coleções se ainda não existirem
	Init(ctx context.Context) error

	GetAll(ctx context.Context, col Collection) ([]Row, error)
	Put(ctx context.Context, col Collection, row Row) error
	Delete(ctx context.Context, col Collection, id string) error
	BulkPut(ctx context.Context, col Collection, rows []Row) error

	// ReplaceAll limpa a coleção e insere rows em uma única transação
	ReplaceAll(ctx context.Context, col Collection, rows []Row) error

	Clear(ctx context.Context, col Collection) error
	Count(ctx context.Context, col Collection) (int, error)

	Close() error
}
