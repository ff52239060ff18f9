/*
Package dialog routes code hook events to intent handlers.

A Dispatcher holds one Handler per intent name. Dispatch looks up the
handler for the event's current intent, runs it and reports the exchange
through optional lifecycle hooks, which is where logging and metrics attach.
*/
package dialog
