package bc

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/bc-go/internal/eval"
	internalmcp "github.com/wagiedev/bc-go/internal/mcp"
)

// Version is the library version reported by the MCP server.
const Version = "0.1.0"

// MCP tool names.
const (
	MCPEvalToolName      = internalmcp.EvalToolName
	MCPEvalBatchToolName = internalmcp.EvalBatchToolName
)

// NewMCPServer creates a Model Context Protocol server exposing the
// calculator as the bc_eval and bc_eval_batch tools. Options apply to every
// call the server makes.
//
//	server := bc.NewMCPServer(bc.WithTimeout(10 * time.Second))
//	err := server.Run(ctx, &mcp.StdioTransport{})
func NewMCPServer(opts ...Option) *mcp.Server {
	return internalmcp.NewServer(eval.New(applyOptions(opts)), Version)
}
