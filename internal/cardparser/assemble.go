package cardparser

import (
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parsererror"
)

// BlockParser turns one block into a record.
type BlockParser interface {
	ParseBlock(block string) models.CardRecord
}

// Assemble parses blocks in order and numbers the records from 1. With no
// blocks it returns *parsererror.EmptyResultError instead of an empty table.
func Assemble(blocks []string, bp BlockParser) ([]models.CardRecord, error) {
	records := make([]models.CardRecord, 0, len(blocks))
	for i, block := range blocks {
		record := bp.ParseBlock(block)
		record.RecordNumber = i + 1
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, &parsererror.EmptyResultError{}
	}
	return records, nil
}
