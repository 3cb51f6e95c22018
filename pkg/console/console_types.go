package console

// ErrorPosition represents a position in a source file or formula
type ErrorPosition struct {
	File   string
	Line   int
	Column int
}

// CompilerError represents a structured error with position information
type CompilerError struct {
	Position ErrorPosition
	Type     string // "error", "warning", "info"
	Message  string
	Context  []string // Source lines ending at Position.Line
	Hint     string   // Optional hint for fixing the error
}

// TableConfig represents configuration for table rendering
type TableConfig struct {
	Headers   []string
	Rows      [][]string
	Title     string
	ShowTotal bool
	TotalRow  []string
}

// TreeNode represents a node in a hierarchical tree structure
type TreeNode struct {
	Value    string
	Children []TreeNode
}
