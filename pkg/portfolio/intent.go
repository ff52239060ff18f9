package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/roboadvisor/pkg/lex"
)

// IntentName is the intent served by RecommendPortfolio.
const IntentName = "recommendPortfolio"

// ErrMissingRiskLevel is returned at fulfillment when the riskLevel slot is empty.
var ErrMissingRiskLevel = errors.New("risk level slot is empty")

// RecommendPortfolio is the code hook of the recommendPortfolio intent.
//
// During the dialog stage it validates the investor slots and either asks
// for the first invalid one again or delegates back to the platform. Any
// other invocation source is treated as fulfillment and closes the
// conversation with a recommendation for the chosen risk level.
func RecommendPortfolio(ctx context.Context, ev *lex.Event) (*lex.Response, error) {
	slots := ev.Slots()
	session := ev.SessionAttributes

	if ev.InvocationSource == lex.SourceDialogCodeHook {
		result := ValidateInvestor(slots.Value(SlotAge), slots.Value(SlotInvestmentAmount))
		if !result.IsValid {
			reprompt := slots.Clone()
			reprompt.Clear(result.ViolatedSlot)
			return lex.ElicitSlot(session, ev.IntentName(), reprompt, result.ViolatedSlot, result.Message), nil
		}
		return lex.Delegate(session, slots), nil
	}

	riskLevel, ok := slots.Get(SlotRiskLevel)
	if !ok {
		return nil, ErrMissingRiskLevel
	}
	allocation, err := Allocation(riskLevel)
	if err != nil {
		return nil, err
	}

	return lex.Close(session, lex.FulfillmentFulfilled, lex.PlainText(Recommendation(riskLevel, allocation))), nil
}

// Recommendation formats the closing message for a risk level as the user typed it.
func Recommendation(riskLevel, allocation string) string {
	return fmt.Sprintf("For a %s-risk portfolio, invest in %s", riskLevel, allocation)
}
