// Package importer validates and normalizes pasted JSON payloads into
// transactions. Validation is all-or-nothing: the first failing record
// rejects the entire batch and nothing is committed.
package importer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/tally/internal/category"
	"github.com/Veraticus/tally/internal/model"
)

// ErrorCode identifies the first validation failure of an import batch.
type ErrorCode string

// Import validation error codes.
const (
	MalformedJSON ErrorCode = "malformed_json"
	NotAnArray    ErrorCode = "not_an_array"
	MissingField  ErrorCode = "missing_field"
	InvalidField  ErrorCode = "invalid_field"
	InvalidDate   ErrorCode = "invalid_date"
)

// Error is the structured validation error surfaced to the user. Record is
// 1-based; it is zero for payload-level failures.
type Error struct {
	cause  error
	Code   ErrorCode
	Field  string
	Record int
}

func (e *Error) Error() string {
	switch e.Code {
	case MalformedJSON:
		return "import payload is not valid JSON"
	case NotAnArray:
		return "import payload must be a JSON array"
	case MissingField:
		return fmt.Sprintf("record %d: missing %s", e.Record, e.Field)
	case InvalidField:
		return fmt.Sprintf("record %d: invalid %s", e.Record, e.Field)
	case InvalidDate:
		return fmt.Sprintf("record %d: createdAt is not a recognized date", e.Record)
	default:
		return fmt.Sprintf("record %d: invalid import payload", e.Record)
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

var (
	eightDigits = regexp.MustCompile(`^\d{8}$`)
	isoPrefix   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// dateTimeLayouts are tried in order for YYYY-MM-DD-prefixed values. All are
// interpreted in local time; dates carry no zone in this ledger.
var dateTimeLayouts = []string{
	model.DateTimeLayout,
	model.DateLayout,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseBatch validates raw import text and returns one transaction per
// element, or the first structured error. All produced transactions share the
// batch timestamp for id uniqueness and are typed as expenses. ParseBatch is
// pure: nothing is added anywhere until the caller commits the result.
func ParseBatch(raw string, registry *category.Registry, batch time.Time) ([]model.Transaction, error) {
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &Error{Code: MalformedJSON, cause: err}
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, &Error{Code: NotAnArray}
	}

	transactions := make([]model.Transaction, 0, len(items))
	for i, item := range items {
		record := i + 1 // reported 1-based

		fields, _ := item.(map[string]any)

		name, ok := fields["name"].(string)
		if !ok || name == "" {
			return nil, &Error{Code: MissingField, Record: record, Field: "name"}
		}
		price, ok := fields["price"].(float64)
		if !ok || price <= 0 {
			return nil, &Error{Code: InvalidField, Record: record, Field: "price"}
		}
		categoryName, ok := fields["category"].(string)
		if !ok || categoryName == "" {
			return nil, &Error{Code: MissingField, Record: record, Field: "category"}
		}
		createdAt, ok := fields["createdAt"].(string)
		if !ok || createdAt == "" {
			return nil, &Error{Code: MissingField, Record: record, Field: "createdAt"}
		}

		when, ok := parseImportDate(createdAt)
		if !ok {
			return nil, &Error{Code: InvalidDate, Record: record}
		}

		// Unknown categories degrade to "other"; the resolved id is stored,
		// never the raw input text.
		resolved := registry.Resolve(categoryName)

		transactions = append(transactions, model.Transaction{
			ID:          model.BatchID(batch, i),
			Description: strings.TrimSpace(name),
			Amount:      price,
			CategoryID:  resolved.ID,
			Date:        when.Format(model.DateLayout),
			CreatedAt:   when.Format(model.DateTimeLayout),
			Type:        model.TypeExpense,
		})
	}

	return transactions, nil
}

// parseImportDate accepts the two supported encodings: eight contiguous
// digits YYYYMMDD (local midnight of that day, out-of-range components
// normalizing forward) or a string beginning with YYYY-MM-DD parsed under
// standard layouts.
func parseImportDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)

	if eightDigits.MatchString(trimmed) {
		year, _ := strconv.Atoi(trimmed[:4])
		month, _ := strconv.Atoi(trimmed[4:6])
		day, _ := strconv.Atoi(trimmed[6:8])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	if isoPrefix.MatchString(trimmed) {
		for _, layout := range dateTimeLayouts {
			if parsed, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
				return parsed, true
			}
		}
	}

	return time.Time{}, false
}
