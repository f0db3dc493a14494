package errors

import "fmt"

// IssueCode classifies a row-level or entity-level import problem.
type IssueCode string

const (
	IssueInvalidDate           IssueCode = "InvalidDate"
	IssueInvalidNumeric        IssueCode = "InvalidNumeric"
	IssueMissingValue          IssueCode = "MissingValue"
	IssuePeriodOverlapConflict IssueCode = "PeriodOverlapConflict"
	IssueDuplicateMetricKey    IssueCode = "DuplicateMetricKey"
	IssueUnresolvedPeriod      IssueCode = "UnresolvedPeriod"
	IssueUnresolvedCoach       IssueCode = "UnresolvedCoach"
	IssueStoreRejected         IssueCode = "StoreRejected"
)

// ImportIssue is a diagnostic collected during an import. It is never returned
// past the reconciliation boundary as a hard failure; it is reported instead.
type ImportIssue struct {
	Code    IssueCode `json:"code" yaml:"code"`
	Entity  string    `json:"entity" yaml:"entity"`
	Sheet   string    `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	Row     int       `json:"row,omitempty" yaml:"row,omitempty"`
	Message string    `json:"message" yaml:"message"`
}

func (e *ImportIssue) Error() string {
	if e.Sheet != "" && e.Row > 0 {
		return fmt.Sprintf("%s (%s row %d): %s", e.Code, e.Sheet, e.Row, e.Message)
	}
	if e.Sheet != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Sheet, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches issues by code.
func (e *ImportIssue) Is(target error) bool {
	t, ok := target.(*ImportIssue)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Issue sentinels, compared by code
var (
	ErrInvalidDate           = &ImportIssue{Code: IssueInvalidDate}
	ErrInvalidNumeric        = &ImportIssue{Code: IssueInvalidNumeric}
	ErrMissingValue          = &ImportIssue{Code: IssueMissingValue}
	ErrPeriodOverlapConflict = &ImportIssue{Code: IssuePeriodOverlapConflict}
	ErrDuplicateMetricRow    = &ImportIssue{Code: IssueDuplicateMetricKey}
	ErrUnresolvedPeriod      = &ImportIssue{Code: IssueUnresolvedPeriod}
	ErrUnresolvedCoach       = &ImportIssue{Code: IssueUnresolvedCoach}
	ErrStoreRejected         = &ImportIssue{Code: IssueStoreRejected}
)

// NewImportIssue creates an ImportIssue for a sheet row
func NewImportIssue(code IssueCode, entity, sheet string, row int, format string, args ...interface{}) *ImportIssue {
	return &ImportIssue{
		Code:    code,
		Entity:  entity,
		Sheet:   sheet,
		Row:     row,
		Message: fmt.Sprintf(format, args...),
	}
}
