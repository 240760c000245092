// Package lox declares the syntax trees of the Lox interpreter: expressions,
// statements and type expressions. Each builder is a literal table; the
// registry maps the command-line ids to them.
package lox

import (
	"github.com/teranos/astgen/registry"
	"github.com/teranos/astgen/schema"
)

const (
	// Namespace of every generated tree
	Namespace = "parsing"

	// Lexing is the package providing lexing.Token
	Lexing = "github.com/teranos/lox/lexing"
)

// Family ids
const (
	ExprID     = "expr"
	StmtID     = "stmt"
	TypeExprID = "type_expr"
)

// BuildExpr declares the expression tree
func BuildExpr() (*schema.Family, error) {
	return schema.NewBuilder(Namespace, "Expr").
		Import(Lexing).
		Node("Assign",
			schema.Required("Name", "lexing.Token"),
			schema.Required("Value", "Expr"),
		).
		Node("Base",
			schema.Required("Keyword", "lexing.Token"),
			schema.Required("Name", "lexing.Token"),
		).
		Node("Binary",
			schema.Required("Left", "Expr"),
			schema.Required("Operator", "lexing.Token"),
			schema.Required("Right", "Expr"),
		).
		Node("Call",
			schema.Required("Callee", "Expr"),
			schema.Required("Paren", "lexing.Token"),
			schema.Required("PositionalArguments", "[]Expr"),
			schema.Defaulted("NamedArguments", "map[string]Expr", "nil"),
		).
		Node("Comma",
			schema.Required("Values", "[]Expr"),
		).
		Node("Conditional",
			schema.Required("Condition", "Expr"),
			schema.Required("Then", "Expr"),
			schema.Required("Else", "Expr"),
		).
		Node("Get",
			schema.Required("Object", "Expr"),
			schema.Required("Name", "lexing.Token"),
		).
		Node("Grouping",
			schema.Required("Expr", "Expr"),
		).
		Node("Lambda",
			schema.Required("Keyword", "lexing.Token"),
			schema.Required("Parameters", "[]lexing.Token"),
			schema.Required("Body", "Expr"),
		).
		Node("Literal",
			schema.Required("Value", "any"),
		).
		Node("Logic",
			schema.Required("Left", "Expr"),
			schema.Required("Operator", "lexing.Token"),
			schema.Required("Right", "Expr"),
		).
		Node("Set",
			schema.Required("Object", "Expr"),
			schema.Required("Name", "lexing.Token"),
			schema.Required("Value", "Expr"),
		).
		Node("This",
			schema.Required("Keyword", "lexing.Token"),
		).
		Node("Unary",
			schema.Required("Operator", "lexing.Token"),
			schema.Required("Right", "Expr"),
		).
		Node("Variable",
			schema.Required("Name", "lexing.Token"),
		).
		Build()
}

// BuildStmt declares the statement tree. Break and Continue take an optional
// condition ("break if x;").
func BuildStmt() (*schema.Family, error) {
	return schema.NewBuilder(Namespace, "Stmt").
		Import(Lexing).
		Node("Block",
			schema.Required("Statements", "[]Stmt"),
		).
		Node("Break",
			schema.Required("Keyword", "lexing.Token"),
			schema.Defaulted("Condition", "Expr", "nil"),
		).
		Node("Class",
			schema.Required("Name", "lexing.Token"),
			schema.Required("Methods", "[]*Function"),
		).
		Node("Continue",
			schema.Required("Keyword", "lexing.Token"),
			schema.Defaulted("Condition", "Expr", "nil"),
		).
		Node("Expression",
			schema.Required("Expr", "Expr"),
		).
		Node("Function",
			schema.Required("Name", "lexing.Token"),
			schema.Required("Params", "[]lexing.Token"),
			schema.Required("Body", "[]Stmt"),
		).
		Node("If",
			schema.Required("Condition", "Expr"),
			schema.Required("Then", "Stmt"),
			schema.Defaulted("Else", "Stmt", "nil"),
		).
		Node("Print",
			schema.Required("Expr", "Expr"),
		).
		Node("Return",
			schema.Required("Keyword", "lexing.Token"),
			schema.Defaulted("Value", "Expr", "nil"),
		).
		Node("Var",
			schema.Required("Name", "lexing.Token"),
			schema.Defaulted("Initializer", "Expr", "nil"),
		).
		Node("While",
			schema.Required("Condition", "Expr"),
			schema.Required("Body", "Stmt"),
		).
		Build()
}

// BuildTypeExpr declares the type-annotation tree
func BuildTypeExpr() (*schema.Family, error) {
	return schema.NewBuilder(Namespace, "TypeExpr").
		Import(Lexing).
		Node("Generic",
			schema.Required("Name", "lexing.Token"),
			schema.Required("PosArgs", "[]TypeExpr"),
		).
		Build()
}

// NewRegistry returns the registry of every Lox tree. Destinations are
// relative to the generation root.
func NewRegistry() *registry.Registry {
	return registry.MustNew(
		registry.Entry{ID: ExprID, Build: BuildExpr, Destination: "parsing/expr.go"},
		registry.Entry{ID: StmtID, Build: BuildStmt, Destination: "parsing/stmt.go"},
		registry.Entry{ID: TypeExprID, Build: BuildTypeExpr, Destination: "parsing/type_expr.go"},
	)
}
