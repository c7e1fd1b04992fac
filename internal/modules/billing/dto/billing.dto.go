package dto

// PriceEntryInput é uma linha da grade de preços de uma tabela. Linhas
// sem código e sem valor positivo são consideradas vazias e descartadas.
type PriceEntryInput struct {
	ProcedureID string  `json:"procedureId"`
	Code        string  `json:"code"`
	Value       float64 `json:"value"`
}

func (e PriceEntryInput) Empty() bool {
	return e.Code == "" && e.Value <= 0
}

// UpdateEntriesRequest substitui o conjunto completo de entradas de uma
// tabela de preços.
type UpdateEntriesRequest struct {
	Entries []PriceEntryInput `json:"entries"`
}
