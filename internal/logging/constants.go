package logging

// Standardized field names for structured logging. Commands and the file-facing parser
// use these keys so log output can be filtered per file or per statement.
const (
	FieldFile       = "file_path"
	FieldParser     = "parser"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldFormat     = "format"
	FieldStatement  = "statement_id"
	FieldEntries    = "entries"
	FieldBalances   = "balances"
	FieldBalance    = "balance_code"
	FieldWorkers    = "workers"
	FieldMissing    = "missing_paths"
)
