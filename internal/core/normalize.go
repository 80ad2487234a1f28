package core

import "strings"

// Field names one logical column resolved through an ordered synonym list.
// The two export layouts and the costs sheet disagree on header spellings, so
// every lookup goes through this indirection instead of exact column names.
type Field int

const (
	FieldAccountConsolidated Field = iota
	FieldAccountDetect
	FieldAccountLegacy
	FieldAccountCost
	FieldOrigin
	FieldDeactivationConsolidated
	FieldDeactivationLegacy
	FieldStatus
	FieldDeviceName
	FieldIMEIConsolidated
	FieldIMEILegacy
	FieldDeviceTypeConsolidated
	FieldDeviceTypeLegacy
	FieldUnitCost
	FieldBillingType
	FieldNotes
	FieldCommercialName
)

// fieldSynonyms maps each logical field to its accepted header spellings, in
// priority order. Entries must already be in NormalizeHeader form. New
// synonyms are additive; do not reorder existing ones.
var fieldSynonyms = map[Field][]string{
	FieldAccountConsolidated:      {"CLIENTE_CUENTA", "CLIENTE_CUENT", "CLIENTE"},
	FieldAccountDetect:            {"CLIENTE_CUENTA", "CLIENTE_CUENT"},
	FieldAccountLegacy:            {"CUENTA", "CLIENTE", "ACCOUNT", "CUSTOMER"},
	FieldAccountCost:              {"CUENTA", "CLIENTE", "ACCOUNT"},
	FieldOrigin:                   {"ORIGEN"},
	FieldDeactivationConsolidated: {"FECHA_DE_DESACTIVACION", "FECHA_DE_DE", "FECHA DE DESACTIVACION", "DESACTIVACION"},
	FieldDeactivationLegacy:       {"DESACTIVACIÓN", "DESACTIVACION", "FECHA DE BAJA", "BAJA", "DESACTIVADO"},
	FieldStatus:                   {"STATUS", "ESTADO", "ESTATUS"},
	FieldDeviceName:               {"NOMBRE", "NAME", "UNIT", "UNIDAD"},
	FieldIMEIConsolidated:         {"IMEI"},
	FieldIMEILegacy:               {"IMEI", "ID", "SERIAL"},
	FieldDeviceTypeConsolidated:   {"TIPO_DE_DISPOSITIVO", "DEVICE_TYPE", "MODELO"},
	FieldDeviceTypeLegacy:         {"TIPO", "MODELO"},
	FieldUnitCost:                 {"COSTO", "COSTO UNITARIO", "PRECIO", "IMPORTE", "MONTO", "VALOR", "COSTOS"},
	FieldBillingType:              {"TIPO", "PERIODICIDAD", "FRECUENCIA", "PLAN"},
	FieldNotes:                    {"OBSERVACIONES", "NOTAS", "COMENTARIOS", "OBS"},
	FieldCommercialName:           {"NOMBRE COMERCIAL", "RAZON SOCIAL", "NOMBRE", "CLIENTE"},
}

// NormalizeHeader folds a header cell for case/whitespace-insensitive lookup.
func NormalizeHeader(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

// NormalizeAccountKey folds a raw account identifier into its aggregation
// key. Identifiers differing only by case or padding land on the same record.
func NormalizeAccountKey(raw string) string {
	key := NormalizeHeader(raw)
	if key == "" {
		return "DESCONOCIDO"
	}
	return key
}

// RowIndex is a single sheet row re-keyed by normalized header.
type RowIndex map[string]any

// NewRowIndex builds the normalized view of one row. When two raw headers
// fold to the same key the later one wins.
func NewRowIndex(row map[string]any) RowIndex {
	idx := make(RowIndex, len(row))
	for key, value := range row {
		idx[NormalizeHeader(key)] = value
	}
	return idx
}

// Lookup resolves a logical field against the row, returning the value of
// the first synonym present.
func (r RowIndex) Lookup(f Field) (any, bool) {
	for _, key := range fieldSynonyms[f] {
		if v, ok := r[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupString resolves a field as a trimmed string, substituting def when
// the field is absent or blank.
func (r RowIndex) LookupString(f Field, def string) string {
	v, ok := r.Lookup(f)
	if !ok {
		return def
	}
	s := strings.TrimSpace(cellString(v))
	if s == "" {
		return def
	}
	return s
}
