package pipeline

import (
	"strings"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/llm"
)

// Parsed is the structured reading of one model reply.
type Parsed struct {
	Today  string
	Total  string
	Remark string
	Status constants.ResultStatus
}

// ParseResult splits a reply of the form "<filename>,<today>,<total>".
// It only checks shape; the field values are passed through as the model wrote them.
func ParseResult(raw, filename string) Parsed {
	if llm.IsCallError(raw) {
		return Parsed{Remark: raw, Status: constants.ResultCallError}
	}

	parts := strings.SplitN(raw, ",", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) == 3 && echoesFilename(parts[0], filename):
		return Parsed{
			Today:  parts[1],
			Total:  parts[2],
			Remark: constants.RemarkRecognized,
			Status: constants.ResultRecognized,
		}
	case len(parts) >= 2:
		p := Parsed{
			Today:  parts[1],
			Remark: constants.RemarkIncompleteFormat + ": " + common.Truncate(raw, constants.RawRemarkRunes),
			Status: constants.ResultPartial,
		}
		if len(parts) > 2 {
			p.Total = parts[2]
		}
		return p
	default:
		return Parsed{
			Remark: constants.RemarkUnparsable + ": " + common.Truncate(raw, constants.RawRemarkRunes),
			Status: constants.ResultUnparsable,
		}
	}
}

// echoesFilename accepts the model's first field when it contains the filename or is
// a piece of it (models often drop the extension or add a path). An empty field never matches.
func echoesFilename(field, filename string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(field, filename) || strings.Contains(filename, field)
}
