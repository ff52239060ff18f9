package lex

// Slots maps a slot name to its value. A nil value means the slot has not
// been filled (or was cleared for re-elicitation).
type Slots map[string]*string

// Get returns the value of the named slot and whether it is filled.
func (s Slots) Get(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Value returns the raw pointer for the named slot (nil when absent or empty).
func (s Slots) Value(name string) *string {
	return s[name]
}

// Set fills the named slot.
func (s Slots) Set(name, value string) {
	s[name] = &value
}

// Clear marks the named slot as unfilled. The key is kept so it is
// serialised as null.
func (s Slots) Clear(name string) {
	s[name] = nil
}

// Clone returns a copy that can be modified without touching s.
// Values are copied so the clone shares no pointers with the original.
func (s Slots) Clone() Slots {
	out := make(Slots, len(s))
	for k, v := range s {
		if v == nil {
			out[k] = nil
			continue
		}
		val := *v
		out[k] = &val
	}
	return out
}

// String returns a pointer to value, handy for building Slots literals.
func String(value string) *string {
	return &value
}
