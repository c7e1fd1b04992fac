package services

import (
	"context"
	"strings"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/billing/dto"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/shared/utils"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

// BillingService gerencia as tabelas de preços e suas entradas. As
// entradas de uma tabela são sempre substituídas em bloco: o id
// determinístico pte-<tabela>-<procedimento> garante no máximo uma
// entrada por par.
type BillingService struct {
	store *entitystore.Store
	cache *datacache.Cache
}

func NewBillingService(store *entitystore.Store, cache *datacache.Cache) *BillingService {
	return &BillingService{store: store, cache: cache}
}

func (s *BillingService) ListTables() []domain.PriceTable {
	return s.cache.Snapshot().PriceTables
}

func (s *BillingService) ListEntries() []domain.PriceTableEntry {
	return s.cache.Snapshot().PriceTableEntries
}

// ListTableEntries retorna só as entradas da tabela indicada
func (s *BillingService) ListTableEntries(tableID string) ([]domain.PriceTableEntry, error) {
	if _, err := s.getTable(tableID); err != nil {
		return nil, err
	}
	var entries []domain.PriceTableEntry
	for _, e := range s.cache.Snapshot().PriceTableEntries {
		if e.PriceTableID == tableID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *BillingService) SaveTable(ctx context.Context, table domain.PriceTable) (domain.PriceTable, error) {
	if strings.TrimSpace(table.Name) == "" {
		return domain.PriceTable{}, apperrors.NewValidation("O nome da tabela é obrigatório.")
	}
	if table.ID == "" {
		table.ID = utils.GenerateID(entitystore.PriceTables.IDPrefix())
	}
	if err := s.store.Put(ctx, entitystore.PriceTables, table); err != nil {
		return domain.PriceTable{}, err
	}
	if err := s.cache.Reload(ctx, entitystore.PriceTables); err != nil {
		return domain.PriceTable{}, err
	}
	return table, nil
}

// DeleteTable remove a tabela e poda as entradas que apontavam para ela;
// entradas órfãs nunca ficam para trás.
func (s *BillingService) DeleteTable(ctx context.Context, id string) error {
	if _, err := s.getTable(id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, entitystore.PriceTables, id); err != nil {
		return err
	}

	kept := make([]domain.PriceTableEntry, 0)
	for _, e := range s.cache.Snapshot().PriceTableEntries {
		if e.PriceTableID != id {
			kept = append(kept, e)
		}
	}
	if err := s.store.ReplaceAll(ctx, entitystore.PriceTableEntries, kept); err != nil {
		return err
	}
	return s.cache.Reload(ctx, entitystore.PriceTables, entitystore.PriceTableEntries)
}

// UpdateEntries substitui todas as entradas da tabela pelo conjunto
// recebido. Linhas vazias são descartadas; as entradas das demais
// tabelas não são tocadas.
func (s *BillingService) UpdateEntries(ctx context.Context, tableID string, req dto.UpdateEntriesRequest) ([]domain.PriceTableEntry, error) {
	if _, err := s.getTable(tableID); err != nil {
		return nil, err
	}

	fresh := make([]domain.PriceTableEntry, 0, len(req.Entries))
	for _, input := range req.Entries {
		if input.Empty() {
			continue
		}
		if input.ProcedureID == "" {
			return nil, apperrors.NewValidation("Toda entrada de preço precisa referenciar um procedimento.")
		}
		if input.Value < 0 {
			return nil, apperrors.NewValidation("O valor de uma entrada de preço não pode ser negativo.")
		}
		fresh = append(fresh, domain.PriceTableEntry{
			ID:           utils.GeneratePriceEntryID(tableID, input.ProcedureID),
			PriceTableID: tableID,
			ProcedureID:  input.ProcedureID,
			Code:         input.Code,
			Value:        input.Value,
		})
	}

	all := make([]domain.PriceTableEntry, 0)
	for _, e := range s.cache.Snapshot().PriceTableEntries {
		if e.PriceTableID != tableID {
			all = append(all, e)
		}
	}
	all = append(all, fresh...)

	if err := s.store.ReplaceAll(ctx, entitystore.PriceTableEntries, all); err != nil {
		return nil, err
	}
	if err := s.cache.Reload(ctx, entitystore.PriceTableEntries); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *BillingService) getTable(id string) (domain.PriceTable, error) {
	for _, t := range s.cache.Snapshot().PriceTables {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.PriceTable{}, apperrors.NewNotFound("tabela de preços", id)
}
