package assets

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field-level problem found in an input, so
// callers can surface all of them at once instead of just the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func ValidateInput(in AssetInput) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(in.Type) == "" {
		errs = append(errs, FieldError{Field: "type", Message: "type is required"})
	}
	if strings.TrimSpace(in.Tag) == "" {
		errs = append(errs, FieldError{Field: "tag", Message: "tag is required"})
	}
	errs = append(errs, validateCost(in.Cost)...)
	errs = append(errs, validateDate(in.AcquisitionDate)...)
	return errs
}

// ValidatePatch applies the same field rules as ValidateInput, but only to
// fields the patch actually carries. An empty patch is allowed.
func ValidatePatch(p AssetPatch) ValidationErrors {
	var errs ValidationErrors
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Type != nil && strings.TrimSpace(*p.Type) == "" {
		errs = append(errs, FieldError{Field: "type", Message: "type cannot be empty"})
	}
	if p.Tag != nil && strings.TrimSpace(*p.Tag) == "" {
		errs = append(errs, FieldError{Field: "tag", Message: "tag cannot be empty"})
	}
	if p.Cost != nil {
		errs = append(errs, validateCost(*p.Cost)...)
	}
	if p.AcquisitionDate != nil {
		errs = append(errs, validateDate(*p.AcquisitionDate)...)
	}
	return errs
}

func validateCost(cost string) ValidationErrors {
	if strings.TrimSpace(cost) == "" {
		return ValidationErrors{{Field: "cost", Message: "cost is required"}}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(cost))
	if err != nil {
		return ValidationErrors{{Field: "cost", Message: "cost must be a decimal number"}}
	}
	if d.IsNegative() {
		return ValidationErrors{{Field: "cost", Message: "cost cannot be negative"}}
	}
	return nil
}

func validateDate(date string) ValidationErrors {
	if strings.TrimSpace(date) == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(date)); err != nil {
		return ValidationErrors{{Field: "acquisition_date", Message: "acquisition_date must be a date in YYYY-MM-DD form"}}
	}
	return nil
}

// normalizeCost renders a validated cost as fixed-point text with exactly
// two decimal places, e.g. "300" -> "300.00".
func normalizeCost(cost string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(cost))
	if err != nil {
		return cost
	}
	return d.StringFixed(2)
}
