/*
Package observability exposes dialog hook activity as Prometheus metrics.

Metrics plugs into the dispatcher through dialog.Hooks, so every adapter
(Lambda, HTTP, MCP, CLI) is measured the same way.
*/
package observability
