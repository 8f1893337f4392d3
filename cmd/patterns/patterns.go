// Package patterns lists the active field pattern table
package patterns

import (
	"io"
	"strconv"

	"fjacquet/ccstmt-csv/cmd/root"
	"fjacquet/ccstmt-csv/internal/cardparser"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// Cmd represents the patterns command
var Cmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the field patterns in use",
	Long: `List the field patterns in use, built-in ones first, followed by those
loaded from parser.patterns_file. For each field the first matching pattern
wins.`,
	Run: func(cmd *cobra.Command, args []string) {
		appContainer := root.GetContainer()
		if appContainer == nil {
			root.Log.Fatal("Container not initialized")
		}
		Write(cmd.OutOrStdout(), appContainer.GetParser().Fields())
	},
}

// Write renders the matcher table of fields.
func Write(w io.Writer, fields *cardparser.FieldParser) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Pattern", "Group", "Source"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, m := range fields.Matchers() {
		table.Append([]string{string(m.Field), m.String(), strconv.Itoa(m.Group), m.Source})
	}
	table.Render()
}
