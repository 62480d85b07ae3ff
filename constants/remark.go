package constants

// Remarks written to the report's last column.
const (
	RemarkValid             = "valid"
	RemarkRecognized        = "recognized"
	RemarkUnsupportedFormat = "unsupported format"
	RemarkImageTooLarge     = "image too large"
	RemarkCorruptFile       = "corrupt file"
	RemarkEncodingFailed    = "encoding failed"
	RemarkIncompleteFormat  = "incomplete format"
	RemarkUnparsable        = "unparsable"
)

// CallErrorPrefix marks a vision-call failure returned through the normal reply channel.
const CallErrorPrefix = "call error"

// Truncation limits (in runes) for text embedded in remarks and logs.
const (
	ShortErrRunes  = 20
	CallErrRunes   = 30
	RawRemarkRunes = 50
	RawLogRunes    = 100
)

// Field values the model is instructed to use besides plain numerals.
const (
	ValueAmbiguous = "模糊"
	ValueZero      = "0"
	ValueNoData    = "无数据"
	ValueNotFound  = "未找到"
)
