package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/seeds"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

// Colunas que carregam listas separadas por ";" nos arquivos tabulares
var listFields = map[entitystore.Collection][]string{
	entitystore.Patients:  {"participatingCampaignIds", "conditions"},
	entitystore.Campaigns: {"procedureIds"},
}

var intFields = map[entitystore.Collection][]string{
	entitystore.Procedures: {"duration"},
}

// Colunas inteiras opcionais: célula vazia vira campo ausente, não zero
var optionalIntFields = map[entitystore.Collection][]string{
	entitystore.Procedures: {"slotsAvailable"},
}

var floatFields = map[entitystore.Collection][]string{
	entitystore.PriceTableEntries: {"value"},
}

// DataManagerService cobre backup, restauração e importação tabular.
// Nenhuma operação aqui é parcial: a importação completa substitui as
// doze coleções e a importação tabular aborta inteira no primeiro erro
// de formato.
type DataManagerService struct {
	store   *entitystore.Store
	cache   *datacache.Cache
	seeding seeds.SeedingService
}

func NewDataManagerService(store *entitystore.Store, cache *datacache.Cache, seeding seeds.SeedingService) *DataManagerService {
	return &DataManagerService{store: store, cache: cache, seeding: seeding}
}

// Export monta o documento de backup completo direto do store
func (s *DataManagerService) Export(ctx context.Context) (domain.FullDatabase, error) {
	var db domain.FullDatabase

	loaders := []struct {
		col  entitystore.Collection
		dest interface{}
	}{
		{entitystore.Patients, &db.Patients},
		{entitystore.Appointments, &db.Appointments},
		{entitystore.Doctors, &db.Doctors},
		{entitystore.Locations, &db.Locations},
		{entitystore.Procedures, &db.Procedures},
		{entitystore.ProcedureTypes, &db.ProcedureTypes},
		{entitystore.Campaigns, &db.Campaigns},
		{entitystore.Municipalities, &db.Municipalities},
		{entitystore.PriceTables, &db.PriceTables},
		{entitystore.PriceTableEntries, &db.PriceTableEntries},
		{entitystore.Occurrences, &db.Occurrences},
		{entitystore.ChatHistory, &db.ChatHistory},
	}
	for _, l := range loaders {
		if err := s.store.GetAll(ctx, l.col, l.dest); err != nil {
			return domain.FullDatabase{}, err
		}
	}
	return db, nil
}

// ImportFull substitui as doze coleções pelo conteúdo do backup.
// Coleções ausentes no documento ficam vazias.
func (s *DataManagerService) ImportFull(ctx context.Context, db domain.FullDatabase) error {
	writers := []struct {
		col     entitystore.Collection
		records interface{}
	}{
		{entitystore.Patients, db.Patients},
		{entitystore.Appointments, db.Appointments},
		{entitystore.Doctors, db.Doctors},
		{entitystore.Locations, db.Locations},
		{entitystore.Procedures, db.Procedures},
		{entitystore.ProcedureTypes, db.ProcedureTypes},
		{entitystore.Campaigns, db.Campaigns},
		{entitystore.Municipalities, db.Municipalities},
		{entitystore.PriceTables, db.PriceTables},
		{entitystore.PriceTableEntries, db.PriceTableEntries},
		{entitystore.Occurrences, db.Occurrences},
		{entitystore.ChatHistory, db.ChatHistory},
	}
	for _, w := range writers {
		if err := s.store.ReplaceAll(ctx, w.col, w.records); err != nil {
			return err
		}
	}
	return s.cache.Load(ctx)
}

// ImportCollection faz o upsert em bloco de um arquivo CSV em uma única
// coleção. Registros com id existente são atualizados; qualquer erro de
// formato aborta a importação inteira.
func (s *DataManagerService) ImportCollection(ctx context.Context, colName string, data []byte) (int, error) {
	col := entitystore.Collection(colName)
	if !col.Valid() {
		return 0, apperrors.NewValidation(fmt.Sprintf("Coleção desconhecida: %s", colName))
	}

	rows, err := parseCSV(col, data)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, apperrors.NewImportFormat(string(col), fmt.Errorf("o arquivo não contém registros"))
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return 0, apperrors.NewImportFormat(string(col), err)
	}
	records, err := decodeRecords(col, payload)
	if err != nil {
		return 0, apperrors.NewImportFormat(string(col), err)
	}

	if err := s.store.BulkPut(ctx, col, records); err != nil {
		return 0, err
	}
	if err := s.cache.Reload(ctx, col); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Reset limpa tudo, reaplica a carga de demonstração e recarrega o cache
func (s *DataManagerService) Reset(ctx context.Context) error {
	for _, col := range entitystore.All {
		if err := s.store.Clear(ctx, col); err != nil {
			return err
		}
	}
	if err := s.seeding.SeedAll(ctx); err != nil {
		return err
	}
	return s.cache.Load(ctx)
}

// parseCSV lê o arquivo (primeira linha é o cabeçalho) e aplica as
// coerções de tipo da coleção.
func parseCSV(col entitystore.Collection, data []byte) ([]map[string]interface{}, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewImportFormat(string(col), err)
	}
	if len(lines) < 2 {
		return nil, apperrors.NewImportFormat(string(col), fmt.Errorf("o arquivo não contém registros"))
	}

	header := lines[0]
	rows := make([]map[string]interface{}, 0, len(lines)-1)
	for n, line := range lines[1:] {
		if len(line) != len(header) {
			return nil, apperrors.NewImportFormat(string(col),
				fmt.Errorf("linha %d: esperadas %d colunas, recebidas %d", n+2, len(header), len(line)))
		}

		row := make(map[string]interface{}, len(header))
		for i, name := range header {
			value, err := coerceCell(col, name, line[i])
			if err != nil {
				return nil, apperrors.NewImportFormat(string(col),
					fmt.Errorf("linha %d, coluna %q: %w", n+2, name, err))
			}
			if value != nil {
				row[name] = value
			}
		}

		id, _ := row["id"].(string)
		if strings.TrimSpace(id) == "" {
			return nil, apperrors.NewImportFormat(string(col),
				fmt.Errorf("linha %d: a coluna 'id' é obrigatória", n+2))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// coerceCell converte a célula textual para o tipo esperado pela coluna.
// Valor nil significa campo ausente (células vazias de colunas opcionais).
func coerceCell(col entitystore.Collection, field, raw string) (interface{}, error) {
	for _, f := range listFields[col] {
		if f == field {
			parts := strings.Split(raw, ";")
			list := make([]string, 0, len(parts))
			for _, p := range parts {
				if trimmed := strings.TrimSpace(p); trimmed != "" {
					list = append(list, trimmed)
				}
			}
			return list, nil
		}
	}
	for _, f := range intFields[col] {
		if f == field {
			if raw == "" {
				return 0, nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("valor inteiro inválido: %q", raw)
			}
			return n, nil
		}
	}
	for _, f := range optionalIntFields[col] {
		if f == field {
			if raw == "" {
				return nil, nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("valor inteiro inválido: %q", raw)
			}
			return n, nil
		}
	}
	for _, f := range floatFields[col] {
		if f == field {
			if raw == "" {
				return 0.0, nil
			}
			n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("valor numérico inválido: %q", raw)
			}
			return n, nil
		}
	}

	// Colunas estruturadas (endereços, contatos) podem vir como JSON
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var parsed interface{}
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed, nil
		}
	}
	return raw, nil
}

// decodeRecords converte as linhas coercidas no slice tipado da coleção
func decodeRecords(col entitystore.Collection, payload []byte) (interface{}, error) {
	switch col {
	case entitystore.Patients:
		return decodeSlice[domain.Patient](payload)
	case entitystore.Appointments:
		return decodeSlice[domain.Appointment](payload)
	case entitystore.Doctors:
		return decodeSlice[domain.Doctor](payload)
	case entitystore.Locations:
		return decodeSlice[domain.Location](payload)
	case entitystore.Procedures:
		return decodeSlice[domain.Procedure](payload)
	case entitystore.ProcedureTypes:
		return decodeSlice[domain.ProcedureType](payload)
	case entitystore.Campaigns:
		return decodeSlice[domain.HealthCampaign](payload)
	case entitystore.Municipalities:
		return decodeSlice[domain.Municipality](payload)
	case entitystore.PriceTables:
		return decodeSlice[domain.PriceTable](payload)
	case entitystore.PriceTableEntries:
		return decodeSlice[domain.PriceTableEntry](payload)
	case entitystore.Occurrences:
		return decodeSlice[domain.Occurrence](payload)
	case entitystore.ChatHistory:
		return decodeSlice[domain.ChatMessage](payload)
	}
	return nil, fmt.Errorf("coleção desconhecida: %s", col)
}

func decodeSlice[T any](payload []byte) ([]T, error) {
	var v []T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, err
	}
	return v, nil
}
