package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/dataset"
	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpLog = logger.New("cli:mcp_server")

// TokenizeArgs are the arguments of the tokenize tool.
type TokenizeArgs struct {
	Formula string `json:"formula" jsonschema:"the formula to tokenize, e.g. =A1+2*B2"`
}

// TokenizeOutput is the result of the tokenize tool.
type TokenizeOutput struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// FindDependenciesArgs are the arguments of the find_dependencies tool.
type FindDependenciesArgs struct {
	Formula string `json:"formula" jsonschema:"the formula whose cell references are listed"`
}

// FindDependenciesOutput is the result of the find_dependencies tool.
type FindDependenciesOutput struct {
	Dependencies []string `json:"dependencies"`
}

// CheckCircularArgs are the arguments of the check_circular tool.
type CheckCircularArgs struct {
	Formula string            `json:"formula,omitempty" jsonschema:"formula to check; ignored when cell is set"`
	Cell    string            `json:"cell,omitempty" jsonschema:"cell of the dataset to check"`
	Cells   map[string]string `json:"cells,omitempty" jsonschema:"inline dataset mapping cell ids to formulas"`
	Dataset string            `json:"dataset,omitempty" jsonschema:"path of a dataset file, used when cells is empty"`
}

// CheckCircularOutput is the result of the check_circular tool.
type CheckCircularOutput struct {
	Circular bool     `json:"circular"`
	Chain    []string `json:"chain"`
}

// NewMCPServerCommand creates the mcp-server command.
func NewMCPServerCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve formula analysis tools over MCP on stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the tools:

  tokenize           - split a formula into symbols
  find_dependencies  - list the cells a formula references
  check_circular     - check a formula or cell for circular references

The server runs until stdin is closed. With --list-tools the tools are printed
instead of served.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listTools, _ := cmd.Flags().GetBool("list-tools")
			if listTools {
				verbose := isVerbose(cmd)
				truncate := defaultToolDescriptionLength
				if verbose {
					truncate = 0
				}
				fmt.Fprint(cmd.OutOrStdout(), renderMCPToolTable(mcpTools(), MCPToolTableOptions{
					TruncateLength:  truncate,
					ShowVerboseHint: !verbose,
				}))
				return nil
			}
			return RunMCPServer(cmd.Context(), version)
		},
	}

	cmd.Flags().Bool("list-tools", false, "Print the served tools and exit")

	return cmd
}

// RunMCPServer serves the tools on stdio until the client disconnects or ctx ends.
func RunMCPServer(ctx context.Context, version string) error {
	mcpLog.Printf("Starting MCP server version %s", version)
	server := NewMCPServer(version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// mcpTools lists the tool definitions served by NewMCPServer.
func mcpTools() []*mcp.Tool {
	return []*mcp.Tool{tokenizeToolDef(), findDependenciesToolDef(), checkCircularToolDef()}
}

func tokenizeToolDef() *mcp.Tool {
	return &mcp.Tool{
		Name:        "tokenize",
		Description: "Split a spreadsheet formula into numbers, cell references, operators and parentheses",
	}
}

func findDependenciesToolDef() *mcp.Tool {
	return &mcp.Tool{
		Name:        "find_dependencies",
		Description: "List the distinct cells a spreadsheet formula references",
	}
}

func checkCircularToolDef() *mcp.Tool {
	return &mcp.Tool{
		Name:        "check_circular",
		Description: "Check whether a formula or a cell leads back to itself through the cells it references",
	}
}

// NewMCPServer returns a server with the formula analysis tools registered.
func NewMCPServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "cellgraph", Version: version}, &mcp.ServerOptions{
		Logger: logger.NewSlogLoggerWithHandler(mcpLog),
	})

	mcp.AddTool(server, tokenizeToolDef(), tokenizeTool)
	mcp.AddTool(server, findDependenciesToolDef(), findDependenciesTool)
	mcp.AddTool(server, checkCircularToolDef(), checkCircularTool)

	return server
}

func tokenizeTool(ctx context.Context, req *mcp.CallToolRequest, args TokenizeArgs) (*mcp.CallToolResult, TokenizeOutput, error) {
	mcpLog.Printf("tokenize: %q", args.Formula)
	symbols, err := formula.Tokenize(args.Formula)
	if err != nil {
		return nil, TokenizeOutput{}, err
	}

	texts := formula.Texts(symbols)
	return textResult(strings.Join(texts, " ")), TokenizeOutput{Symbols: symbolInfos(symbols)}, nil
}

func findDependenciesTool(ctx context.Context, req *mcp.CallToolRequest, args FindDependenciesArgs) (*mcp.CallToolResult, FindDependenciesOutput, error) {
	mcpLog.Printf("find_dependencies: %q", args.Formula)
	deps, err := depgraph.FindDependencies(args.Formula)
	if err != nil {
		return nil, FindDependenciesOutput{}, err
	}

	text := "no cell references"
	if len(deps) > 0 {
		text = strings.Join(deps, ", ")
	}
	return textResult(text), FindDependenciesOutput{Dependencies: deps}, nil
}

func checkCircularTool(ctx context.Context, req *mcp.CallToolRequest, args CheckCircularArgs) (*mcp.CallToolResult, CheckCircularOutput, error) {
	mcpLog.Printf("check_circular: formula=%q cell=%q inline=%d dataset=%q", args.Formula, args.Cell, len(args.Cells), args.Dataset)

	var ds depgraph.Dataset
	switch {
	case len(args.Cells) > 0:
		ds = depgraph.Dataset(args.Cells)
	case args.Dataset != "":
		loaded, err := dataset.Load(args.Dataset)
		if err != nil {
			return nil, CheckCircularOutput{}, err
		}
		ds = loaded
	default:
		return nil, CheckCircularOutput{}, errors.New("either cells or dataset is required")
	}
	if args.Formula == "" && args.Cell == "" {
		return nil, CheckCircularOutput{}, errors.New("either formula or cell is required")
	}

	var chain []string
	var err error
	target := args.Cell
	if args.Cell != "" {
		chain, err = depgraph.FindCircularReference(args.Cell, ds)
	} else {
		target = args.Formula
		chain, err = depgraph.FindCircularDependency(args.Formula, ds)
	}
	if err != nil {
		return nil, CheckCircularOutput{}, err
	}

	if chain == nil {
		return textResult(target + " has no circular references"), CheckCircularOutput{Chain: []string{}}, nil
	}
	return textResult("circular reference: " + strings.Join(chain, " -> ")), CheckCircularOutput{Circular: true, Chain: chain}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}
