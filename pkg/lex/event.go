package lex

// InvocationSource tells the code hook which stage the platform is in.
type InvocationSource string

const (
	// SourceDialogCodeHook asks the hook to validate the slots collected so far.
	SourceDialogCodeHook InvocationSource = "DialogCodeHook"
	// SourceFulfillmentCodeHook asks the hook to commit to a final answer.
	SourceFulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// SessionAttributes are application-defined key/value pairs carried across turns.
type SessionAttributes map[string]string

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (a SessionAttributes) Clone() SessionAttributes {
	out := make(SessionAttributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Bot identifies the bot that produced the event.
type Bot struct {
	Name    string `json:"name" mapstructure:"name" yaml:"name"`
	Alias   string `json:"alias" mapstructure:"alias" yaml:"alias"`
	Version string `json:"version" mapstructure:"version" yaml:"version"`
}

// SlotDetail holds the resolutions the platform considered for a slot.
type SlotDetail struct {
	Resolutions   []map[string]string `json:"resolutions,omitempty" mapstructure:"resolutions" yaml:"resolutions,omitempty"`
	OriginalValue string              `json:"originalValue,omitempty" mapstructure:"originalValue" yaml:"originalValue,omitempty"`
}

// CurrentIntent is the intent the user is currently engaged with.
type CurrentIntent struct {
	Name               string                `json:"name" mapstructure:"name" yaml:"name"`
	Slots              Slots                 `json:"slots" mapstructure:"slots" yaml:"slots"`
	SlotDetails        map[string]SlotDetail `json:"slotDetails,omitempty" mapstructure:"slotDetails" yaml:"slotDetails,omitempty"`
	ConfirmationStatus string                `json:"confirmationStatus,omitempty" mapstructure:"confirmationStatus" yaml:"confirmationStatus,omitempty"`
}

// Event is a single code hook invocation.
// It is created per request and owned entirely by the caller.
type Event struct {
	MessageVersion    string            `json:"messageVersion,omitempty" mapstructure:"messageVersion" yaml:"messageVersion,omitempty"`
	InvocationSource  InvocationSource  `json:"invocationSource" mapstructure:"invocationSource" yaml:"invocationSource"`
	UserID            string            `json:"userId,omitempty" mapstructure:"userId" yaml:"userId,omitempty"`
	InputTranscript   string            `json:"inputTranscript,omitempty" mapstructure:"inputTranscript" yaml:"inputTranscript,omitempty"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty" mapstructure:"outputDialogMode" yaml:"outputDialogMode,omitempty"`
	Bot               *Bot              `json:"bot,omitempty" mapstructure:"bot" yaml:"bot,omitempty"`
	CurrentIntent     *CurrentIntent    `json:"currentIntent" mapstructure:"currentIntent" yaml:"currentIntent"`
	SessionAttributes SessionAttributes `json:"sessionAttributes" mapstructure:"sessionAttributes" yaml:"sessionAttributes"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty" mapstructure:"requestAttributes" yaml:"requestAttributes,omitempty"`
}

// IntentName returns the current intent name, or "" if the event carries none.
func (e *Event) IntentName() string {
	if e == nil || e.CurrentIntent == nil {
		return ""
	}
	return e.CurrentIntent.Name
}

// Slots returns the slots of the current intent. It never returns nil.
func (e *Event) Slots() Slots {
	if e == nil || e.CurrentIntent == nil || e.CurrentIntent.Slots == nil {
		return Slots{}
	}
	return e.CurrentIntent.Slots
}
