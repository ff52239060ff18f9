/*
Package roboadvisor is the code hook of a portfolio recommendation bot.

The bot platform drives the conversation and calls the hook twice per
intent: once per turn to validate what the user said so far
(DialogCodeHook), and once at the end to produce the answer
(FulfillmentCodeHook). The hook is a pure request to response function: it
never stores state between calls.

# Responses

  - ElicitSlot: a slot value was rejected; ask for it again with an explanation.
  - Delegate: everything collected so far is acceptable; let the platform continue.
  - Close: the conversation is over; report the recommended allocation.

# Usage

The same Bot serves every transport (Lambda, HTTP webhook, MCP, CLI):

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/roboadvisor"
		"github.com/aretw0/roboadvisor/pkg/lex"
	)

	func main() {
		bot := roboadvisor.New()

		resp, err := bot.Handle(context.Background(), &lex.Event{
			InvocationSource: lex.SourceFulfillmentCodeHook,
			CurrentIntent: &lex.CurrentIntent{
				Name:  "recommendPortfolio",
				Slots: lex.Slots{"riskLevel": lex.String("low")},
			},
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println(resp.DialogAction.Message.Content)
	}
*/
package roboadvisor
