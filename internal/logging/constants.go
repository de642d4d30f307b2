package logging

// Standardized field names for structured logging.
const (
	FieldFile          = "file_path"
	FieldUsername      = "username"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldCount         = "count"
	FieldDropped       = "dropped"
	FieldLine          = "line"
	FieldFormat        = "format"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
