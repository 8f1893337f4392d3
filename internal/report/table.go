package report

import (
	"io"

	"fjacquet/ccstmt-csv/internal/models"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders records as an aligned text table with the CSV header.
func WriteTable(w io.Writer, records []models.CardRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(models.Header())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, r := range records {
		table.Append(r.Row())
	}
	table.Render()
}
