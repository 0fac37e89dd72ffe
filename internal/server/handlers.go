package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/ironsheep/image-editor-mcp/internal/selection"
)

var (
	errUnknownTool = errors.New("unknown tool")
	errInvalidArgs = errors.New("invalid arguments")
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_load", "editor_apply_filter").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// The message is the notice a user should see; data carries the Go error.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Info("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, toolNotice(err), err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image lifecycle
	case "editor_load":
		return s.handleLoad(args)
	case "editor_save":
		return s.handleSave(args)

	// Display and selection
	case "editor_resize":
		return s.handleResize(args)
	case "editor_click":
		return s.handleClick(args)
	case "editor_render":
		return s.handleRender(args)

	// Filters and history
	case "editor_list_filters":
		return map[string]interface{}{"filters": s.session.Filters()}, nil
	case "editor_apply_filter":
		return s.handleApplyFilter(args)
	case "editor_undo":
		return s.historyStatus(s.session.Undo()), nil
	case "editor_redo":
		return s.historyStatus(s.session.Redo()), nil
	case "editor_clear_filters":
		return s.historyStatus(s.session.ClearFilters()), nil

	// Inspection
	case "editor_status":
		return s.session.Status(), nil
	case "editor_sample_color":
		return s.handleSampleColor(args)
	case "editor_instructions":
		return map[string]interface{}{"text": s.session.Instructions()}, nil

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
}

// toolNotice picks the user-facing message for a tool error.
func toolNotice(err error) string {
	switch {
	case errors.Is(err, errUnknownTool):
		return "Unknown tool"
	case errors.Is(err, errInvalidArgs):
		return "Invalid arguments"
	default:
		return editor.Notice(err)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// === Image Lifecycle Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

type loadResult struct {
	Image  *imaging.ImageInfo `json:"image"`
	Status editor.Status      `json:"status"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	info, err := s.session.LoadFile(a.Path)
	if err != nil {
		return nil, err
	}
	return &loadResult{Image: info, Status: s.session.Status()}, nil
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	out, err := s.session.Save(a.Path)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": out}, nil
}

// === Display and Selection Handlers ===

type resizeArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleResize(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("%w: panel size %dx%d must not be negative", errInvalidArgs, a.Width, a.Height)
	}
	s.session.Resize(a.Width, a.Height)
	return s.session.Status(), nil
}

type clickArgs struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button string `json:"button"`
}

type clickResult struct {
	Transition string          `json:"transition"`
	Selection  string          `json:"selection"`
	Points     []image.Point   `json:"points"`
	Controls   editor.Controls `json:"controls"`
}

func (s *Server) handleClick(args json.RawMessage) (interface{}, error) {
	var a clickArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	button, err := selection.ParseButton(a.Button)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}

	tr := s.session.Click(image.Pt(a.X, a.Y), button)
	snap := s.session.Selection()
	return &clickResult{
		Transition: tr.String(),
		Selection:  snap.State.String(),
		Points:     snap.Points,
		Controls:   s.session.Controls(),
	}, nil
}

type renderArgs struct {
	Labels bool `json:"labels"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	style := s.style
	style.Labels = style.Labels || a.Labels
	return s.session.Render(style)
}

// === Filter and History Handlers ===

type applyFilterArgs struct {
	Filter string `json:"filter"`
}

type applyFilterResult struct {
	Filter  string        `json:"filter"`
	Applied bool          `json:"applied"`
	Status  editor.Status `json:"status"`
}

func (s *Server) handleApplyFilter(args json.RawMessage) (interface{}, error) {
	var a applyFilterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.ApplyFilter(a.Filter); err != nil {
		return nil, err
	}
	return &applyFilterResult{
		Filter:  a.Filter,
		Applied: s.session.HasFilter(a.Filter),
		Status:  s.session.Status(),
	}, nil
}

type historyResult struct {
	Changed bool          `json:"changed"`
	Status  editor.Status `json:"status"`
}

func (s *Server) historyStatus(changed bool) *historyResult {
	return &historyResult{Changed: changed, Status: s.session.Status()}
}

// === Inspection Handlers ===

type sampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.session.SampleColor(a.X, a.Y)
}
