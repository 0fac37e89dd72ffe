package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"editor_load",
		"editor_save",
		"editor_resize",
		"editor_click",
		"editor_render",
		"editor_list_filters",
		"editor_apply_filter",
		"editor_undo",
		"editor_redo",
		"editor_clear_filters",
		"editor_status",
		"editor_sample_color",
		"editor_instructions",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"]; !ok {
				t.Error("InputSchema missing 'properties' field")
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	required := map[string][]string{
		"editor_load":         {"path"},
		"editor_save":         {"path"},
		"editor_resize":       {"width", "height"},
		"editor_click":        {"x", "y"},
		"editor_apply_filter": {"filter"},
		"editor_sample_color": {"x", "y"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for name, want := range required {
		t.Run(name, func(t *testing.T) {
			got, ok := toolMap[name].InputSchema["required"].([]string)
			if !ok {
				t.Fatalf("required: got %T", toolMap[name].InputSchema["required"])
			}
			if len(got) != len(want) {
				t.Fatalf("required: got %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("required[%d]: got %s, want %s", i, got[i], want[i])
				}
			}
		})
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(nil)
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 3, Method: "tools/list"})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded struct {
		Result struct {
			Tools []Tool `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(decoded.Result.Tools) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools, want %d", len(decoded.Result.Tools), len(GetToolDefinitions()))
	}
}
