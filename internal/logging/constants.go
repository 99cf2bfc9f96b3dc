package logging

// Standardized field names for structured logging.
const (
	FieldMessage       = "message"
	FieldStage         = "stage"
	FieldType          = "type"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldConfidence    = "confidence"
	FieldScore         = "score"
	FieldRule          = "rule"
	FieldEntryID       = "entry_id"
	FieldTransactionID = "transaction_id"
	FieldCount         = "count"
	FieldFailed        = "failed"
	FieldWorkers       = "workers"
	FieldFilePath      = "file_path"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldDelimiter     = "delimiter"
	FieldBalance       = "balance"
	FieldTotalIncome   = "total_income"
	FieldTotalExpense  = "total_expense"
)
