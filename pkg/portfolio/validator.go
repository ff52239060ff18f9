package portfolio

import "github.com/aretw0/roboadvisor/pkg/lex"

// Slot names of the recommendPortfolio intent.
const (
	SlotFirstName        = "firstName"
	SlotAge              = "age"
	SlotInvestmentAmount = "investmentAmount"
	SlotRiskLevel        = "riskLevel"
)

const (
	MaxAge           = 65
	MinInvestment    = 5000
	msgInvalidAge    = "This is not a valid age, please provide a different age."
	msgRetirementAge = "Sorry, you are already at retirement age! I cannot recommend a portfolio."
	msgMinInvestment = "Your investment amount must be greater than or equal to $5000, please provide a different investment amount."
)

// ValidationResult is the outcome of validating the investor slots.
type ValidationResult struct {
	IsValid      bool
	ViolatedSlot string
	Message      *lex.Message
}

func valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

func invalid(slot, content string) ValidationResult {
	return ValidationResult{ViolatedSlot: slot, Message: lex.PlainText(content)}
}

// ValidateInvestor checks the age and investment amount slots. A nil slot
// is not validated. The first violation wins.
func ValidateInvestor(age, investmentAmount *string) ValidationResult {
	if age != nil {
		n := ParseNumber(*age)
		if n.Less(0) {
			return invalid(SlotAge, msgInvalidAge)
		}
		if n.Greater(MaxAge) {
			return invalid(SlotAge, msgRetirementAge)
		}
	}

	if investmentAmount != nil {
		if ParseNumber(*investmentAmount).AtMost(MinInvestment - 1) {
			return invalid(SlotInvestmentAmount, msgMinInvestment)
		}
	}

	return valid()
}
