package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// noArgs is the schema of tools that take no arguments.
func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image lifecycle
		{
			Name:        "editor_load",
			Description: "Load an image file into the editor. Alpha is discarded. Resets the selection and the undo/redo history.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, TIFF or WebP)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "editor_save",
			Description: "Save the edited image as JPEG. '.jpg' is appended unless the name already ends in .jpg or .jpeg. Returns the path written.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination file path",
					},
				},
				"required": []string{"path"},
			},
		},

		// Display and selection
		{
			Name:        "editor_resize",
			Description: "Set the display panel size. The image is scaled to fit and centered. Use 0x0 to show the image at 1:1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Panel width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Panel height in pixels",
					},
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "editor_click",
			Description: "Click in the display panel. Primary clicks on the image add corner points; four points select the bounding rectangle. A primary click on a complete selection clears it. A secondary click removes the last point.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Panel X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Panel Y coordinate",
					},
					"button": map[string]interface{}{
						"type":        "string",
						"description": "Mouse button",
						"enum":        []string{"primary", "secondary", "left", "right"},
						"default":     "primary",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "editor_render",
			Description: "Render the display panel as base64-encoded PNG: the letterboxed image with point markers, or the selection rectangle once four points are placed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the coordinates next to each point",
						"default":     false,
					},
				},
			},
		},

		// Filters and history
		{
			Name:        "editor_list_filters",
			Description: "List the available filter names in display order.",
			InputSchema: noArgs(),
		},
		{
			Name:        "editor_apply_filter",
			Description: "Apply a filter to the selected rectangle, or to the whole image when no complete selection exists. Clears the selection. Can be undone.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Filter name as listed by editor_list_filters (e.g., 'Grayscale', 'Negative')",
					},
				},
				"required": []string{"filter"},
			},
		},
		{
			Name:        "editor_undo",
			Description: "Undo the last applied filter.",
			InputSchema: noArgs(),
		},
		{
			Name:        "editor_redo",
			Description: "Redo the last undone filter.",
			InputSchema: noArgs(),
		},
		{
			Name:        "editor_clear_filters",
			Description: "Discard all edits and return to the image as loaded. Clears history and selection.",
			InputSchema: noArgs(),
		},

		// Inspection
		{
			Name:        "editor_status",
			Description: "Report the session state: image size, panel layout, selection points, history depths and which controls are enabled.",
			InputSchema: noArgs(),
		},
		{
			Name:        "editor_sample_color",
			Description: "Get the current color of an image pixel in hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Image X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Image Y coordinate (0-based)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "editor_instructions",
			Description: "Show how to use the editor.",
			InputSchema: noArgs(),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
