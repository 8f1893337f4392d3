package logging

// Field names shared by all log statements.
const (
	FieldFile       = "file_path"
	FieldBank       = "bank"
	FieldEngine     = "engine"
	FieldPattern    = "pattern"
	FieldCount      = "count"
	FieldBlocks     = "blocks"
	FieldRecord     = "record"
	FieldDelimiter  = "delimiter"
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldAddress    = "address"
)
