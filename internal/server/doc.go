// Package server implements the MCP (Model Context Protocol) server for the
// image editor.
//
// This package provides a JSON-RPC 2.0 server that drives one editor session
// through the MCP protocol. A client loads an image, places selection points
// by clicking in a virtual display panel, applies filters, steps through the
// undo/redo history and saves the result as JPEG.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image lifecycle:
//   - editor_load: Load an image file, resetting history and selection
//   - editor_save: Write the edited image as JPEG
//
// Display and selection:
//   - editor_resize: Set the display panel size
//   - editor_click: Add or remove selection points
//   - editor_render: Render the panel with markers as PNG
//
// Filters and history:
//   - editor_list_filters: Filter names in display order
//   - editor_apply_filter: Apply a filter to the selection or whole image
//   - editor_undo, editor_redo: Step through the history
//   - editor_clear_filters: Return to the image as loaded
//
// Inspection:
//   - editor_status: Session state and enabled controls
//   - editor_sample_color: Color of one image pixel
//   - editor_instructions: Usage help
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: The notice to show the user, e.g. "Please load an image first."
//   - data: The underlying Go error string
//
// # Usage
//
//	srv := server.New(editor.New(), server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
