package entity

import "github.com/joseph-ayodele/rider-orders/constants"

// ExtractionResult is the report row for one input file. Created once, never mutated.
type ExtractionResult struct {
	Filename string                 `json:"filename"`
	Today    string                 `json:"today"` // today's completed orders
	Total    string                 `json:"total"` // total completed orders
	Remark   string                 `json:"remark"`
	Status   constants.ResultStatus `json:"status"`
}

// Row returns the four report columns in order.
func (r ExtractionResult) Row() []string {
	return []string{r.Filename, r.Today, r.Total, r.Remark}
}
