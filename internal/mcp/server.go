package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/bc-go/internal/errors"
	"github.com/wagiedev/bc-go/internal/eval"
)

const (
	// ServerName is the MCP implementation name.
	ServerName = "bc"

	// EvalToolName evaluates a single expression.
	EvalToolName = "bc_eval"

	// EvalBatchToolName evaluates several expressions.
	EvalBatchToolName = "bc_eval_batch"

	// maxTimeoutSeconds caps the timeout a client may request.
	maxTimeoutSeconds = 300
)

// EvalInput is the bc_eval argument object.
type EvalInput struct {
	Expression     string `json:"expression"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// EvalBatchInput is the bc_eval_batch argument object.
type EvalBatchInput struct {
	Expressions    []string `json:"expressions"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
}

// handler holds shared dependencies for the tool handlers.
type handler struct {
	evaluator *eval.Evaluator
}

// NewServer creates an MCP server with the calculator tools registered.
func NewServer(evaluator *eval.Evaluator, version string) *mcp.Server {
	h := &handler{evaluator: evaluator}

	s := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, &mcp.ServerOptions{
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	})

	annotations := &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}

	evalTool := NewTool(EvalToolName,
		`Evaluate an arbitrary-precision arithmetic expression with bc -l.

Returns the exact result as a single line; long numbers are not wrapped.
Division yields 20 fractional digits. Statements that print nothing (such as
assignments) return an error result.`,
		evalSchema(),
	)
	evalTool.Annotations = annotations
	s.AddTool(evalTool, h.evalHandler)

	batchTool := NewTool(EvalBatchToolName,
		"Evaluate several independent bc expressions concurrently. Returns one line per expression, in order.",
		evalBatchSchema(),
	)
	batchTool.Annotations = annotations
	s.AddTool(batchTool, h.evalBatchHandler)

	return s
}

func (h *handler) evalHandler(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in EvalInput
	if err := ParseArguments(req, &in); err != nil {
		return ErrorResult(err.Error()), nil
	}

	if strings.TrimSpace(in.Expression) == "" {
		return ErrorResult("expression is required"), nil
	}

	evaluator, err := h.evaluatorFor(in.TimeoutSeconds)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	result, err := evaluator.Eval(ctx, in.Expression)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return ErrorResult(describe(err)), nil
	}

	return TextResult(result), nil
}

func (h *handler) evalBatchHandler(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in EvalBatchInput
	if err := ParseArguments(req, &in); err != nil {
		return ErrorResult(err.Error()), nil
	}

	if len(in.Expressions) == 0 {
		return ErrorResult("expressions is required"), nil
	}

	evaluator, err := h.evaluatorFor(in.TimeoutSeconds)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	results, err := evaluator.EvalAll(ctx, in.Expressions)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	failed := 0

	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}

		if r.Err != nil {
			failed++

			fmt.Fprintf(&b, "%s: error: %s", r.Statement, describe(r.Err))

			continue
		}

		fmt.Fprintf(&b, "%s = %s", r.Statement, r.Value)
	}

	result := TextResult(b.String())
	result.IsError = failed == len(results)

	return result, nil
}

// evaluatorFor returns the evaluator to use for a requested timeout.
func (h *handler) evaluatorFor(timeoutSeconds int) (*eval.Evaluator, error) {
	switch {
	case timeoutSeconds < 0 || timeoutSeconds > maxTimeoutSeconds:
		return nil, fmt.Errorf("timeout_seconds must be between 0 and %d", maxTimeoutSeconds)
	case timeoutSeconds == 0:
		return h.evaluator, nil
	default:
		return h.evaluator.WithTimeout(time.Duration(timeoutSeconds) * time.Second), nil
	}
}

// describe renders a calculator error for a tool result.
func describe(err error) string {
	if toolErr, ok := stderrors.AsType[*errors.ToolError](err); ok {
		return toolErr.Message
	}

	if stderrors.Is(err, errors.ErrNoResult) {
		return "expression produced no output"
	}

	return err.Error()
}

func evalSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"expression": {
				Type:        "string",
				Description: "bc expression, e.g. 2^100 or s(1)",
			},
			"timeout_seconds": timeoutSchema(),
		},
		Required: []string{"expression"},
	}
}

func evalBatchSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"expressions": {
				Type:        "array",
				Description: "bc expressions, each evaluated in its own process",
				Items:       &jsonschema.Schema{Type: "string"},
			},
			"timeout_seconds": timeoutSchema(),
		},
		Required: []string{"expressions"},
	}
}

func timeoutSchema() *jsonschema.Schema {
	lo, hi := 0.0, float64(maxTimeoutSeconds)

	return &jsonschema.Schema{
		Type:        "integer",
		Description: "optional per-call timeout; 0 uses the server default",
		Minimum:     &lo,
		Maximum:     &hi,
	}
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// NewTool creates an mcp.Tool with the given parameters.
func NewTool(name, description string, inputSchema *jsonschema.Schema) *mcp.Tool {
	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}
}

// ParseArguments unmarshals CallToolRequest arguments into v.
func ParseArguments(req *mcp.CallToolRequest, v any) error {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}

	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	return nil
}
