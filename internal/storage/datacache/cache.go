// Package datacache mantém o espelho em memória do armazenamento de
// entidades. Toda leitura da aplicação sai daqui; toda escrita vai ao
// store e depois recarrega as coleções afetadas.
package datacache

import (
	"context"
	"fmt"
	"sync"

	"medsms-core/internal/domain"
	"medsms-core/internal/storage/entitystore"
)

// Snapshot é uma visão imutável das coleções. Os slices são trocados
// por inteiro a cada recarga; o conteúdo nunca é mutado no lugar.
type Snapshot struct {
	Patients          []domain.Patient
	Procedures        []domain.Procedure
	Appointments      []domain.Appointment
	Doctors           []domain.Doctor
	Municipalities    []domain.Municipality
	Campaigns         []domain.HealthCampaign
	PriceTables       []domain.PriceTable
	PriceTableEntries []domain.PriceTableEntry
	ProcedureTypes    []domain.ProcedureType
	Locations         []domain.Location
	Occurrences       []domain.Occurrence
	ChatHistory       []domain.ChatMessage
}

type Cache struct {
	store *entitystore.Store

	mu    sync.RWMutex
	data  Snapshot
	ready bool
}

func NewCache(store *entitystore.Store) *Cache {
	return &Cache{store: store}
}

// Load carrega todas as coleções e marca o cache como pronto
func (c *Cache) Load(ctx context.Context) error {
	if err := c.Reload(ctx, entitystore.All...); err != nil {
		return err
	}

	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	return nil
}

// Reload recarrega apenas as coleções indicadas; as demais ficam como
// estão. É o caminho pós-escrita dos serviços.
func (c *Cache) Reload(ctx context.Context, cols ...entitystore.Collection) error {
	fresh := Snapshot{}
	loaded := map[entitystore.Collection]bool{}

	for _, col := range cols {
		if loaded[col] {
			continue
		}
		loaded[col] = true

		var err error
		switch col {
		case entitystore.Patients:
			err = c.store.GetAll(ctx, col, &fresh.Patients)
		case entitystore.Procedures:
			err = c.store.GetAll(ctx, col, &fresh.Procedures)
		case entitystore.Appointments:
			err = c.store.GetAll(ctx, col, &fresh.Appointments)
		case entitystore.Doctors:
			err = c.store.GetAll(ctx, col, &fresh.Doctors)
		case entitystore.Municipalities:
			err = c.store.GetAll(ctx, col, &fresh.Municipalities)
		case entitystore.Campaigns:
			err = c.store.GetAll(ctx, col, &fresh.Campaigns)
		case entitystore.PriceTables:
			err = c.store.GetAll(ctx, col, &fresh.PriceTables)
		case entitystore.PriceTableEntries:
			err = c.store.GetAll(ctx, col, &fresh.PriceTableEntries)
		case entitystore.ProcedureTypes:
			err = c.store.GetAll(ctx, col, &fresh.ProcedureTypes)
		case entitystore.Locations:
			err = c.store.GetAll(ctx, col, &fresh.Locations)
		case entitystore.Occurrences:
			err = c.store.GetAll(ctx, col, &fresh.Occurrences)
		case entitystore.ChatHistory:
			err = c.store.GetAll(ctx, col, &fresh.ChatHistory)
		default:
			err = fmt.Errorf("coleção desconhecida: %s", col)
		}
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, col := range cols {
		switch col {
		case entitystore.Patients:
			c.data.Patients = fresh.Patients
		case entitystore.Procedures:
			c.data.Procedures = fresh.Procedures
		case entitystore.Appointments:
			c.data.Appointments = fresh.Appointments
		case entitystore.Doctors:
			c.data.Doctors = fresh.Doctors
		case entitystore.Municipalities:
			c.data.Municipalities = fresh.Municipalities
		case entitystore.Campaigns:
			c.data.Campaigns = fresh.Campaigns
		case entitystore.PriceTables:
			c.data.PriceTables = fresh.PriceTables
		case entitystore.PriceTableEntries:
			c.data.PriceTableEntries = fresh.PriceTableEntries
		case entitystore.ProcedureTypes:
			c.data.ProcedureTypes = fresh.ProcedureTypes
		case entitystore.Locations:
			c.data.Locations = fresh.Locations
		case entitystore.Occurrences:
			c.data.Occurrences = fresh.Occurrences
		case entitystore.ChatHistory:
			c.data.ChatHistory = fresh.ChatHistory
		}
	}
	return nil
}

// Snapshot retorna a visão corrente das coleções
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// Ready indica se a carga inicial já terminou
func (c *Cache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}
