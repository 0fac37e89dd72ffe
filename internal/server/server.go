package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/logging"
	"github.com/ironsheep/image-editor-mcp/internal/render"
)

// ServerName is reported in the initialize handshake.
const ServerName = "image-editor-mcp"

// Server handles MCP protocol communication for one editor session.
type Server struct {
	session *editor.Session
	style   render.Style
	log     *slog.Logger
	version string

	in  io.Reader
	out io.Writer
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = logging.OrDiscard(l) }
}

// WithStyle sets the style used by editor_render.
func WithStyle(style render.Style) Option {
	return func(s *Server) { s.style = style }
}

// WithVersion sets the version reported to clients.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithIO replaces stdin/stdout, mainly for tests.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Server) { s.in, s.out = in, out }
}

// New creates a server driving session. A nil session gets a default one.
func New(session *editor.Session, opts ...Option) *Server {
	if session == nil {
		session = editor.New()
	}
	s := &Server{
		session: session,
		style:   render.DefaultStyle(),
		log:     logging.Discard(),
		version: "dev",
		in:      os.Stdin,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads requests line by line until the input closes. Requests are
// handled one at a time, so the session never sees concurrent calls.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(s.out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("failed to parse request", "error", err)
			if err := encoder.Encode(s.errorResponse(nil, -32700, "Parse error", err.Error())); err != nil {
				s.log.Error("failed to encode response", "error", err)
			}
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.log.Error("failed to encode response", "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.log.Debug("request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return s.errorResponse(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    ServerName,
				"version": s.version,
			},
		},
	}
}
