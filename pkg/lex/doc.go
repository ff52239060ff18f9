/*
Package lex contains the wire contract between the bot platform and the dialog code hook.

It models the inbound intent event and the three dialog-control responses the
platform accepts. The types are plain data with JSON tags matching the
platform's field names, so they can be decoded straight from a Lambda payload
or an HTTP request body.

# Key Types

  - Event: The intent invocation (current intent, slots, invocation source, session attributes).
  - Slots: Slot name to nullable value. A nil value is serialised as JSON null.
  - Response: Exactly one DialogAction (ElicitSlot, Delegate or Close) plus session attributes.
*/
package lex
