// Package models holds the data types produced by the extraction pipeline.
package models

import "fmt"

// NotFound is stored in a field whose pattern did not match.
const NotFound = "Not found"

// FieldName identifies one of the extracted statement fields. The string
// value is also the CSV column header.
type FieldName string

const (
	FieldCardholderName  FieldName = "Cardholder Name"
	FieldLast4Digits     FieldName = "Last 4 Digits"
	FieldStatementPeriod FieldName = "Statement Period"
	FieldPaymentDueDate  FieldName = "Payment Due Date"
	FieldTotalAmountDue  FieldName = "Total Amount Due"
)

// RecordNumberColumn is the header of the trailing sequence column.
const RecordNumberColumn = "Record #"

// Fields lists the extracted fields in output column order.
var Fields = []FieldName{
	FieldCardholderName,
	FieldLast4Digits,
	FieldStatementPeriod,
	FieldPaymentDueDate,
	FieldTotalAmountDue,
}

// ParseFieldName accepts either the column header ("Payment Due Date") or
// its snake_case key ("payment_due_date").
func ParseFieldName(s string) (FieldName, error) {
	for _, f := range Fields {
		if s == string(f) || s == f.Key() {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Key returns the snake_case identifier used in pattern files and JSON.
func (f FieldName) Key() string {
	switch f {
	case FieldCardholderName:
		return "cardholder_name"
	case FieldLast4Digits:
		return "last_4_digits"
	case FieldStatementPeriod:
		return "statement_period"
	case FieldPaymentDueDate:
		return "payment_due_date"
	case FieldTotalAmountDue:
		return "total_amount_due"
	}
	return ""
}

// CardRecord is one cardholder's fields. Struct field order is the CSV
// column order.
type CardRecord struct {
	CardholderName  string `csv:"Cardholder Name" json:"cardholder_name"`
	Last4Digits     string `csv:"Last 4 Digits" json:"last_4_digits"`
	StatementPeriod string `csv:"Statement Period" json:"statement_period"`
	PaymentDueDate  string `csv:"Payment Due Date" json:"payment_due_date"`
	TotalAmountDue  string `csv:"Total Amount Due" json:"total_amount_due"`
	RecordNumber    int    `csv:"Record #" json:"record_number"`
}

// NewCardRecord returns a record with every field set to NotFound.
func NewCardRecord() CardRecord {
	return CardRecord{
		CardholderName:  NotFound,
		Last4Digits:     NotFound,
		StatementPeriod: NotFound,
		PaymentDueDate:  NotFound,
		TotalAmountDue:  NotFound,
	}
}

// Set stores value in the named field.
func (r *CardRecord) Set(field FieldName, value string) {
	switch field {
	case FieldCardholderName:
		r.CardholderName = value
	case FieldLast4Digits:
		r.Last4Digits = value
	case FieldStatementPeriod:
		r.StatementPeriod = value
	case FieldPaymentDueDate:
		r.PaymentDueDate = value
	case FieldTotalAmountDue:
		r.TotalAmountDue = value
	}
}

// Get returns the named field's value.
func (r CardRecord) Get(field FieldName) string {
	switch field {
	case FieldCardholderName:
		return r.CardholderName
	case FieldLast4Digits:
		return r.Last4Digits
	case FieldStatementPeriod:
		return r.StatementPeriod
	case FieldPaymentDueDate:
		return r.PaymentDueDate
	case FieldTotalAmountDue:
		return r.TotalAmountDue
	}
	return ""
}

// Complete reports whether every field was matched.
func (r CardRecord) Complete() bool {
	for _, f := range Fields {
		if r.Get(f) == NotFound {
			return false
		}
	}
	return true
}

// Row returns the record as strings in column order, Record # last.
func (r CardRecord) Row() []string {
	row := make([]string, 0, len(Fields)+1)
	for _, f := range Fields {
		row = append(row, r.Get(f))
	}
	return append(row, fmt.Sprintf("%d", r.RecordNumber))
}

// Header returns the column headers matching Row.
func Header() []string {
	h := make([]string, 0, len(Fields)+1)
	for _, f := range Fields {
		h = append(h, string(f))
	}
	return append(h, RecordNumberColumn)
}
