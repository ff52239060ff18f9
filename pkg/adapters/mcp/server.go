package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/pkg/lex"
	"github.com/aretw0/roboadvisor/pkg/portfolio"
)

const riskLevelsURI = "roboadvisor://risk-levels"

// Bot defines what the MCP server needs from the code hook.
type Bot interface {
	Handle(ctx context.Context, ev *lex.Event) (*lex.Response, error)
}

// RiskLevel is one catalog entry as exposed to agents.
type RiskLevel struct {
	Level      string `json:"level"`
	Allocation string `json:"allocation"`
}

// Server wraps the Bot and exposes it as an MCP Server.
type Server struct {
	bot          Bot
	maxValueSize int
	mcpServer    *server.MCPServer
}

// NewServer creates a new MCP Server instance. maxValueSize bounds slot
// values (zero uses lex.MaxValueSize).
func NewServer(bot Bot, maxValueSize int) *Server {
	s := &Server{
		bot:          bot,
		maxValueSize: maxValueSize,
		mcpServer:    server.NewMCPServer("roboadvisor-mcp", roboadvisor.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until
// ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: dialog_hook
	dialogTool := mcp.NewTool("dialog_hook",
		mcp.WithDescription("Run the bot's dialog code hook for one turn and return the dialog action (ElicitSlot, Delegate or Close)."),
		mcp.WithString("intent_name", mcp.Required(), mcp.Description("Current intent name, e.g. recommendPortfolio")),
		mcp.WithString("invocation_source", mcp.Required(), mcp.Description("DialogCodeHook to validate slots, FulfillmentCodeHook to get the recommendation")),
		mcp.WithString("slots", mcp.Description(`JSON object of slot values, e.g. {"age":"30","investmentAmount":"5000","riskLevel":"low"}`)),
		mcp.WithString("session_attributes", mcp.Description("JSON object of session attributes (optional)")),
		mcp.WithOutputSchema[lex.Response](),
	)
	s.mcpServer.AddTool(dialogTool, mcp.NewStructuredToolHandler(s.handleDialogHook))
}

func (s *Server) registerResources() {
	// EXPOSE: roboadvisor://risk-levels
	s.mcpServer.AddResource(mcp.NewResource(riskLevelsURI, "Risk Level Catalog",
		mcp.WithMIMEType("application/json"),
	), s.handleRiskLevels)
}

func (s *Server) handleDialogHook(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (lex.Response, error) {
	intentName, _ := args["intent_name"].(string)
	source, _ := args["invocation_source"].(string)

	currentIntent := map[string]any{"name": intentName}
	if slotsStr, ok := args["slots"].(string); ok && slotsStr != "" {
		var slots map[string]any
		if err := json.Unmarshal([]byte(slotsStr), &slots); err != nil {
			return lex.Response{}, fmt.Errorf("invalid slots: %w", err)
		}
		currentIntent["slots"] = slots
	}

	raw := map[string]any{
		"invocationSource": source,
		"currentIntent":    currentIntent,
	}
	if attrStr, ok := args["session_attributes"].(string); ok && attrStr != "" {
		var attrs map[string]any
		if err := json.Unmarshal([]byte(attrStr), &attrs); err != nil {
			return lex.Response{}, fmt.Errorf("invalid session_attributes: %w", err)
		}
		raw["sessionAttributes"] = attrs
	}

	ev, err := lex.DecodeEvent(raw)
	if err != nil {
		return lex.Response{}, err
	}
	if err := lex.SanitizeEvent(ev, s.maxValueSize); err != nil {
		slog.Warn("MCP dialog_hook: Input rejected", "error", err)
		return lex.Response{}, fmt.Errorf("input rejected: %w", err)
	}

	resp, err := s.bot.Handle(ctx, ev)
	if err != nil {
		return lex.Response{}, err
	}
	return *resp, nil
}

func (s *Server) handleRiskLevels(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	levels := make([]RiskLevel, 0, len(portfolio.Levels()))
	for _, level := range portfolio.Levels() {
		alloc, err := portfolio.Allocation(level)
		if err != nil {
			return nil, err
		}
		levels = append(levels, RiskLevel{Level: level, Allocation: alloc})
	}
	jsonBytes, err := json.Marshal(levels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode risk levels: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      riskLevelsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
