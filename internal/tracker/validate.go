package tracker

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kharchpani-dev/kharchpani/internal/dateutil"
)

// Input holds the raw form values for an add or edit, before the core
// ever sees a candidate record.
type Input struct {
	Date        string
	Description string
	Amount      string
}

// ValidationError describes one rejected form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidateInput checks an Input and returns every problem found.
func ValidateInput(in Input) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, ValidationError{Field: "description", Reason: "must not be blank"})
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil {
		errs = append(errs, ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", in.Amount)})
	} else if amount.IsNegative() {
		errs = append(errs, ValidationError{Field: "amount", Reason: "must not be negative"})
	}

	if _, ok := dateutil.ParseDate(in.Date); !ok {
		errs = append(errs, ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a yyyy-MM-dd date", in.Date)})
	}

	return errs
}

// joinValidation collapses validation errors into one error, or nil.
func joinValidation(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
