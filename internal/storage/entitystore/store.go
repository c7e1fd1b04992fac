// Package entitystore implementa o armazenamento de entidades: coleções
// nomeadas de registros JSON identificados por string, persistidas em um
// banco local embarcado (ou PostgreSQL, quando configurado).
package entitystore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"medsms-core/internal/domain"
	"medsms-core/internal/shared/apperrors"
)

// Store é a fachada tipada sobre o driver: serializa entidades de domínio
// para documentos JSON e vice-versa
type Store struct {
	driver Driver
}

func NewStore(driver Driver) *Store {
	return &Store{driver: driver}
}

func (s *Store) Driver() Driver { return s.driver }

// Init cria o esquema das coleções
func (s *Store) Init(ctx context.Context) error {
	if err := s.driver.Init(ctx); err != nil {
		return apperrors.NewStorage("init", err)
	}
	return nil
}

// GetAll carrega a coleção inteira em dest, que deve ser um ponteiro
// para slice do tipo de entidade correspondente
func (s *Store) GetAll(ctx context.Context, col Collection, dest interface{}) error {
	rows, err := s.driver.GetAll(ctx, col)
	if err != nil {
		return apperrors.NewStorage(fmt.Sprintf("getAll %s", col), err)
	}

	// Montar um array JSON a partir dos documentos e decodificar de uma vez
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(row.Data)
	}
	buf.WriteByte(']')

	if err := json.Unmarshal(buf.Bytes(), dest); err != nil {
		return apperrors.NewStorage(fmt.Sprintf("decode %s", col), err)
	}
	return nil
}

// Put insere ou substitui um registro pela sua chave
func (s *Store) Put(ctx context.Context, col Collection, record domain.Identifiable) error {
	row, err := encodeRow(record)
	if err != nil {
		return apperrors.NewStorage(fmt.Sprintf("encode %s", col), err)
	}
	if err := s.driver.Put(ctx, col, row); err != nil {
		return apperrors.NewStorage(fmt.Sprintf("put %s", col), err)
	}
	return nil
}

// Delete remove um registro pela chave; remover chave ausente não é erro
func (s *Store) Delete(ctx context.Context, col Collection, id string) error {
	if err := s.driver.Delete(ctx, col, id); err != nil {
		return apperrors.NewStorage(fmt.Sprintf("delete %s", col), err)
	}
	return nil
}

// BulkPut insere ou substitui todos os elementos de records, que deve ser
// um slice de entidades identificáveis
func (s *Store) BulkPut(ctx context.Context, col Collection, records interface{}) error {
	rows, err := encodeRows(records)
	if err != nil {
		return apperrors.NewStorage(fmt.Sprintf("encode %s", col), err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.driver.BulkPut(ctx, col, rows); err != nil {
		return apperrors.NewStorage(fmt.Sprintf("bulkPut %s", col), err)
	}
	return nil
}

// ReplaceAll substitui o conteúdo inteiro da coleção por records,
// atomicamente
func (s *Store) ReplaceAll(ctx context.Context, col Collection, records interface{}) error {
	rows, err := encodeRows(records)
	if err != nil {
		return apperrors.NewStorage(fmt.Sprintf("encode %s", col), err)
	}
	if err := s.driver.ReplaceAll(ctx, col, rows); err != nil {
		return apperrors.NewStorage(fmt.Sprintf("replaceAll %s", col), err)
	}
	return nil
}

// Clear esvazia a coleção
func (s *Store) Clear(ctx context.Context, col Collection) error {
	if err := s.driver.Clear(ctx, col); err != nil {
		return apperrors.NewStorage(fmt.Sprintf("clear %s", col), err)
	}
	return nil
}

// Count retorna o número de registros da coleção
func (s *Store) Count(ctx context.Context, col Collection) (int, error) {
	count, err := s.driver.Count(ctx, col)
	if err != nil {
		return 0, apperrors.NewStorage(fmt.Sprintf("count %s", col), err)
	}
	return count, nil
}

// Close libera o banco subjacente
func (s *Store) Close() error {
	return s.driver.Close()
}

func encodeRow(record domain.Identifiable) (Row, error) {
	id := record.EntityID()
	if id == "" {
		return Row{}, fmt.Errorf("record has empty id")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return Row{}, err
	}
	return Row{ID: id, Data: data}, nil
}

func encodeRows(records interface{}) ([]Row, error) {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("expected slice, got %T", records)
	}

	rows := make([]Row, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		record, ok := v.Index(i).Interface().(domain.Identifiable)
		if !ok {
			return nil, fmt.Errorf("element %d does not expose an id", i)
		}
		row, err := encodeRow(record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
