package lex

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ActionType selects the dialog-control variant of a Response.
type ActionType string

const (
	// ActionElicitSlot re-prompts the user for a single slot.
	ActionElicitSlot ActionType = "ElicitSlot"
	// ActionDelegate hands control back to the platform to pick the next step.
	ActionDelegate ActionType = "Delegate"
	// ActionClose ends the conversation with a final message.
	ActionClose ActionType = "Close"
)

// FulfillmentState reports the outcome of a Close action.
type FulfillmentState string

const (
	FulfillmentFulfilled FulfillmentState = "Fulfilled"
	FulfillmentFailed    FulfillmentState = "Failed"
)

// ContentPlainText is the only content type this hook produces.
const ContentPlainText = "PlainText"

// ErrInvalidResponse is returned by Response.Validate when a response mixes variants.
var ErrInvalidResponse = errors.New("invalid dialog response")

// Message is a prompt or statement shown to the user.
type Message struct {
	ContentType string `json:"contentType" mapstructure:"contentType" yaml:"contentType"`
	Content     string `json:"content" mapstructure:"content" yaml:"content"`
}

// PlainText builds a PlainText message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentPlainText, Content: content}
}

// DialogAction is the tagged variant returned to the platform.
// Only the fields belonging to Type are serialised.
type DialogAction struct {
	Type             ActionType       `json:"type"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	Message          *Message         `json:"message,omitempty"`
}

type elicitSlotJSON struct {
	Type         ActionType `json:"type"`
	IntentName   string     `json:"intentName"`
	Slots        Slots      `json:"slots"`
	SlotToElicit string     `json:"slotToElicit"`
	Message      *Message   `json:"message,omitempty"`
}

type delegateJSON struct {
	Type  ActionType `json:"type"`
	Slots Slots      `json:"slots"`
}

type closeJSON struct {
	Type             ActionType       `json:"type"`
	FulfillmentState FulfillmentState `json:"fulfillmentState"`
	Message          *Message         `json:"message,omitempty"`
}

// MarshalJSON emits only the fields of the selected variant.
func (a DialogAction) MarshalJSON() ([]byte, error) {
	switch a.Type {
	case ActionElicitSlot:
		return json.Marshal(elicitSlotJSON{
			Type:         a.Type,
			IntentName:   a.IntentName,
			Slots:        nonNilSlots(a.Slots),
			SlotToElicit: a.SlotToElicit,
			Message:      a.Message,
		})
	case ActionDelegate:
		return json.Marshal(delegateJSON{Type: a.Type, Slots: nonNilSlots(a.Slots)})
	case ActionClose:
		return json.Marshal(closeJSON{
			Type:             a.Type,
			FulfillmentState: a.FulfillmentState,
			Message:          a.Message,
		})
	default:
		return nil, fmt.Errorf("%w: unknown action type %q", ErrInvalidResponse, a.Type)
	}
}

// Response is the value handed back to the platform.
type Response struct {
	SessionAttributes SessionAttributes `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// ElicitSlot asks the platform to re-prompt for slotToElicit with message.
func ElicitSlot(session SessionAttributes, intentName string, slots Slots, slotToElicit string, message *Message) *Response {
	return &Response{
		SessionAttributes: nonNilSession(session),
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        nonNilSlots(slots),
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate lets the platform choose the next course of action.
func Delegate(session SessionAttributes, slots Slots) *Response {
	return &Response{
		SessionAttributes: nonNilSession(session),
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: nonNilSlots(slots),
		},
	}
}

// Close ends the conversation.
func Close(session SessionAttributes, state FulfillmentState, message *Message) *Response {
	return &Response{
		SessionAttributes: nonNilSession(session),
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: state,
			Message:          message,
		},
	}
}

// Validate reports whether r is exactly one well-formed variant.
func (r *Response) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil response", ErrInvalidResponse)
	}
	a := r.DialogAction
	switch a.Type {
	case ActionElicitSlot:
		if a.SlotToElicit == "" {
			return fmt.Errorf("%w: ElicitSlot without slotToElicit", ErrInvalidResponse)
		}
		if a.FulfillmentState != "" {
			return fmt.Errorf("%w: ElicitSlot with fulfillmentState", ErrInvalidResponse)
		}
	case ActionDelegate:
		if a.FulfillmentState != "" || a.SlotToElicit != "" || a.IntentName != "" || a.Message != nil {
			return fmt.Errorf("%w: Delegate carries fields of another action", ErrInvalidResponse)
		}
	case ActionClose:
		switch a.FulfillmentState {
		case FulfillmentFulfilled, FulfillmentFailed:
		default:
			return fmt.Errorf("%w: Close with fulfillmentState %q", ErrInvalidResponse, a.FulfillmentState)
		}
		if a.Slots != nil || a.SlotToElicit != "" || a.IntentName != "" {
			return fmt.Errorf("%w: Close carries fields of another action", ErrInvalidResponse)
		}
	default:
		return fmt.Errorf("%w: unknown action type %q", ErrInvalidResponse, a.Type)
	}
	return nil
}

func nonNilSlots(s Slots) Slots {
	if s == nil {
		return Slots{}
	}
	return s
}

func nonNilSession(a SessionAttributes) SessionAttributes {
	if a == nil {
		return SessionAttributes{}
	}
	return a
}
