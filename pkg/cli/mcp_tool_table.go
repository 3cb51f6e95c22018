package cli

import (
	"fmt"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/stringutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var mcpToolTableLog = logger.New("cli:mcp_tool_table")

// defaultToolDescriptionLength is the description width of mcp-server --list-tools.
const defaultToolDescriptionLength = 60

// MCPToolTableOptions configures how the MCP tool table is rendered
type MCPToolTableOptions struct {
	// TruncateLength is the maximum length for tool descriptions before truncation
	// A value of 0 means no truncation
	TruncateLength int
	// ShowVerboseHint controls whether to show the "Run with --verbose" hint
	ShowVerboseHint bool
}

// renderMCPToolTable renders the served tools as a table followed by a summary line.
func renderMCPToolTable(tools []*mcp.Tool, opts MCPToolTableOptions) string {
	mcpToolTableLog.Printf("Rendering MCP tool table: tool_count=%d, truncate=%d", len(tools), opts.TruncateLength)

	if len(tools) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(tools))
	truncated := false
	for _, tool := range tools {
		description := stringutil.Truncate(tool.Description, opts.TruncateLength)
		if description != tool.Description {
			truncated = true
		}
		rows = append(rows, []string{tool.Name, description})
	}

	var b strings.Builder
	b.WriteString(console.RenderTable(console.TableConfig{
		Title:   "MCP tools",
		Headers: []string{"Tool Name", "Description"},
		Rows:    rows,
	}))
	b.WriteString(console.FormatInfoMessage(fmt.Sprintf("%d tools served by cellgraph mcp-server", len(tools))))
	b.WriteString("\n")
	if opts.ShowVerboseHint && truncated {
		b.WriteString(console.FormatVerboseMessage("Run with --verbose for full descriptions"))
		b.WriteString("\n")
	}
	return b.String()
}
