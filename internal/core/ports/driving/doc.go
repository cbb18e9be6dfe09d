// Package driving holds the interfaces the terminal dashboard, the
// one-shot commands and the MCP server call into. The scheduling,
// settings and dashboard services in internal/core/services satisfy them.
package driving
