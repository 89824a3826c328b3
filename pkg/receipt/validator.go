package receipt

import (
	"Finora-Backend/domain"
	"math"
	"regexp"
	"time"
)

const (
	gstTolerance      = 0.02
	lineItemTolerance = 0.10
	warnConfidence    = 0.7
	reviewConfidence  = 0.8
	staleReceiptDays  = 365
	abnDigits         = 11
)

var nonDigits = regexp.MustCompile(`\D`)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateExtractedData checks one extraction attempt for completeness and
// numeric consistency. All rules are evaluated independently; warnings never
// affect validity. Pure function, safe to call repeatedly.
func ValidateExtractedData(data domain.ExtractedReceiptData) domain.ValidationResult {
	result := domain.ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	now := time.Now()

	if data.TotalAmount == nil {
		result.Errors = append(result.Errors, "total amount is missing")
	}

	if data.Date == nil {
		result.Errors = append(result.Errors, "date is missing")
	} else if data.Date.After(now) {
		result.Errors = append(result.Errors, "date is in the future")
	}

	if data.MerchantName == "" {
		result.Warnings = append(result.Warnings, "merchant name is missing")
	}

	if data.BusinessNumber == "" {
		result.Warnings = append(result.Warnings, "business number (ABN) is missing")
	} else if len(nonDigits.ReplaceAllString(data.BusinessNumber, "")) != abnDigits {
		result.Warnings = append(result.Warnings, "business number is not a valid 11-digit ABN")
	}

	if data.TaxAmount != nil && data.TotalAmount != nil {
		// Australian GST-inclusive convention: tax is 1/11th of the total.
		expected := round2(*data.TotalAmount / 11)
		if math.Abs(*data.TaxAmount-expected) > gstTolerance {
			result.Warnings = append(result.Warnings, "tax amount does not match 1/11th of the GST-inclusive total")
		}
	}

	if data.Date != nil && now.Sub(*data.Date) > staleReceiptDays*24*time.Hour {
		result.Warnings = append(result.Warnings, "receipt date is older than one year")
	}

	if data.Confidence < warnConfidence {
		result.Warnings = append(result.Warnings, "extraction confidence is low")
		result.Suggestions = append(result.Suggestions, "re-upload a clearer image of the receipt")
	}

	if len(data.LineItems) > 0 && data.TotalAmount != nil {
		var sum float64
		for _, item := range data.LineItems {
			sum += item.LineTotal
		}
		if math.Abs(sum-*data.TotalAmount) > lineItemTolerance {
			result.Warnings = append(result.Warnings, "line item totals do not add up to the receipt total")
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// RequiresReview applies the acceptance policy, which is stricter than the
// validator's warning threshold: 0.7 warns, 0.8 blocks auto-acceptance.
func RequiresReview(data domain.ExtractedReceiptData, result domain.ValidationResult) bool {
	if !result.IsValid {
		return true
	}
	if data.Confidence < reviewConfidence {
		return true
	}
	if data.TotalAmount == nil || data.Date == nil {
		return true
	}
	return false
}
