package entitystore

// Collection identifica uma coleção de entidades do armazenamento
type Collection string

const (
	Patients          Collection = "patients"
	Procedures        Collection = "procedures"
	Appointments      Collection = "appointments"
	Doctors           Collection = "doctors"
	Municipalities    Collection = "municipalities"
	Campaigns         Collection = "campaigns"
	PriceTables       Collection = "priceTables"
	PriceTableEntries Collection = "priceTableEntries"
	ProcedureTypes    Collection = "procedureTypes"
	Locations         Collection = "locations"
	Occurrences       Collection = "occurrences"
	ChatHistory       Collection = "chatHistory"
)

// All lista as coleções na ordem canônica usada por exportação,
// importação completa e reset
var All = []Collection{
	Patients,
	Procedures,
	Appointments,
	Doctors,
	Municipalities,
	Campaigns,
	PriceTables,
	PriceTableEntries,
	ProcedureTypes,
	Locations,
	Occurrences,
	ChatHistory,
}

var tableNames = map[Collection]string{
	Patients:          "patients",
	Procedures:        "procedures",
	Appointments:      "appointments",
	Doctors:           "doctors",
	Municipalities:    "municipalities",
	Campaigns:         "campaigns",
	PriceTables:       "price_tables",
	PriceTableEntries: "price_table_entries",
	ProcedureTypes:    "procedure_types",
	Locations:         "locations",
	Occurrences:       "occurrences",
	ChatHistory:       "chat_history",
}

// Prefixos com convenção histórica própria; as demais coleções usam
// os quatro primeiros caracteres do nome
var idPrefixOverrides = map[Collection]string{
	Patients:     "p",
	Appointments: "app",
}

// Valid indica se o nome corresponde a uma coleção conhecida
func (c Collection) Valid() bool {
	_, ok := tableNames[c]
	return ok
}

// TableName retorna o nome da tabela SQL da coleção
func (c Collection) TableName() string {
	return tableNames[c]
}

// IDPrefix retorna o prefixo de identificadores gerados para a coleção
func (c Collection) IDPrefix() string {
	if p, ok := idPrefixOverrides[c]; ok {
		return p
	}
	if len(c) >= 4 {
		return string(c[:4])
	}
	return string(c)
}
