package constants

// ResultStatus classifies how a single file's row was produced.
type ResultStatus string

// Stable values (used in logs and run stats, never written to the report).
const (
	ResultRecognized ResultStatus = "RECOGNIZED" // filename echoed, both fields present
	ResultPartial    ResultStatus = "PARTIAL"    // at least one field, shape off
	ResultUnparsable ResultStatus = "UNPARSABLE" // no comma-separated fields
	ResultCallError  ResultStatus = "CALL_ERROR" // vision call failed
	ResultSkipped    ResultStatus = "SKIPPED"    // validation or encoding failed
)
