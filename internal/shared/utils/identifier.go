package utils

import (
	"fmt"
	"time"
)

// GenerateID produz um identificador único no formato <prefixo><unix-millis>.
// O prefixo identifica a coleção de origem (ex: "p" para pacientes,
// "app" para agendamentos).
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli())
}

// GeneratePriceEntryID produz o identificador determinístico de uma entrada
// de tabela de preços, derivado da tabela e do procedimento.
func GeneratePriceEntryID(tableID, procedureID string) string {
	return fmt.Sprintf("pte-%s-%s", tableID, procedureID)
}
