package roboadvisor_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/pkg/lex"
)

func ExampleBot_Handle() {
	bot := roboadvisor.New()

	resp, err := bot.Handle(context.Background(), &lex.Event{
		InvocationSource: lex.SourceFulfillmentCodeHook,
		CurrentIntent: &lex.CurrentIntent{
			Name:  "recommendPortfolio",
			Slots: lex.Slots{"riskLevel": lex.String("medium")},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(resp.DialogAction.Message.Content)
	// Output: For a medium-risk portfolio, invest in 40% bonds (AGG), 60% equities (SPY)
}

func ExampleBot_Handle_elicitSlot() {
	bot := roboadvisor.New()

	resp, _ := bot.Handle(context.Background(), &lex.Event{
		InvocationSource: lex.SourceDialogCodeHook,
		CurrentIntent: &lex.CurrentIntent{
			Name:  "recommendPortfolio",
			Slots: lex.Slots{"age": lex.String("70"), "investmentAmount": nil},
		},
	})

	out, _ := json.Marshal(resp.DialogAction)
	fmt.Println(string(out))
	// Output: {"type":"ElicitSlot","intentName":"recommendPortfolio","slots":{"age":null,"investmentAmount":null},"slotToElicit":"age","message":{"contentType":"PlainText","content":"Sorry, you are already at retirement age! I cannot recommend a portfolio."}}
}
