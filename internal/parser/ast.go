package parser

import "fmt"

// NodeType represents the type of AST node
type NodeType string

// Java AST node types
const (
	// Program and structure
	NodeProgram            NodeType = "Program"
	NodePackageDeclaration NodeType = "PackageDeclaration"
	NodeImportDeclaration  NodeType = "ImportDeclaration"

	// Type declarations
	NodeClassDeclaration      NodeType = "ClassDeclaration"
	NodeInterfaceDeclaration  NodeType = "InterfaceDeclaration"
	NodeEnumDeclaration       NodeType = "EnumDeclaration"
	NodeRecordDeclaration     NodeType = "RecordDeclaration"
	NodeAnnotationDeclaration NodeType = "AnnotationDeclaration"

	// Members
	NodeMethodDeclaration      NodeType = "MethodDeclaration"
	NodeConstructorDeclaration NodeType = "ConstructorDeclaration"
	NodeFieldDeclaration       NodeType = "FieldDeclaration"
	NodeFormalParameter        NodeType = "FormalParameter"
	NodeVariableDeclarator     NodeType = "VariableDeclarator"
	NodeLocalVariable          NodeType = "LocalVariableDeclaration"

	// Statements
	NodeBlock               NodeType = "Block"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileStatement      NodeType = "WhileStatement"
	NodeDoStatement         NodeType = "DoStatement"
	NodeForStatement        NodeType = "ForStatement"
	NodeEnhancedForStatement NodeType = "EnhancedForStatement"
	NodeSwitchStatement     NodeType = "SwitchStatement"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeThrowStatement      NodeType = "ThrowStatement"
	NodeTryStatement        NodeType = "TryStatement"
	NodeCatchClause         NodeType = "CatchClause"
	NodeFinallyClause       NodeType = "FinallyClause"
	NodeExpressionStatement NodeType = "ExpressionStatement"

	// Expressions
	NodeMethodInvocation        NodeType = "MethodInvocation"
	NodeFieldAccess             NodeType = "FieldAccess"
	NodeArrayAccess             NodeType = "ArrayAccess"
	NodeObjectCreation          NodeType = "ObjectCreationExpression"
	NodeBinaryExpression        NodeType = "BinaryExpression"
	NodeUnaryExpression         NodeType = "UnaryExpression"
	NodeUpdateExpression        NodeType = "UpdateExpression"
	NodeAssignmentExpression    NodeType = "AssignmentExpression"
	NodeTernaryExpression       NodeType = "TernaryExpression"
	NodeCastExpression          NodeType = "CastExpression"
	NodeInstanceofExpression    NodeType = "InstanceofExpression"
	NodeLambdaExpression        NodeType = "LambdaExpression"
	NodeMethodReference         NodeType = "MethodReference"
	NodeParenthesizedExpression NodeType = "ParenthesizedExpression"

	// Leaves
	NodeIdentifier NodeType = "Identifier"
	NodeTypeName   NodeType = "TypeName"
	NodeLiteral    NodeType = "Literal"
	NodeAnnotation NodeType = "Annotation"
	NodeThis       NodeType = "This"
)

// Location represents the position of a node in the source code
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String returns a string representation of the location
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Node represents an AST node
type Node struct {
	Type     NodeType
	Children []*Node
	Location Location
	Parent   *Node

	// Name holds declaration and identifier names. For field accesses and
	// method invocations it is the member name, which is deliberately not an
	// identifier child: only the receiver chain counts as expression usage.
	Name string

	// Raw is the exact source text (kept for import declarations)
	Raw string

	// Import fields
	Qualified string // fully qualified import path
	Static    bool   // static import
	Wildcard  bool   // on-demand (.*) import

	// Declaration fields
	Params []*Node // formal parameters
	Throws []*Node // declared thrown exception types
	Body   []*Node // block/body statements

	// Parameter and catch fields
	ParamType  *Node   // declared type of a formal parameter
	CatchTypes []*Node // declared types of a catch parameter

	// Control flow fields
	Condition   *Node
	Consequence *Node
	Alternative *Node
	Init        *Node
	Update      *Node
	Handlers    []*Node // catch clauses of a try statement
	Finalizer   *Node

	// Expression fields
	Left      *Node
	Right     *Node
	Operator  string
	Object    *Node   // receiver of an invocation/field access
	Arguments []*Node // call/creation arguments
	Value     *Node   // declarator initializer, cast operand, unary operand
}

// NewNode creates a new AST node
func NewNode(nodeType NodeType) *Node {
	return &Node{
		Type: nodeType,
	}
}

// AddChild adds a child node
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Walk traverses the AST depth-first and calls the visitor function for each
// node. If the visitor returns false, traversal of that branch is stopped.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}

	if !visitor(n) {
		return
	}

	for _, child := range n.Children {
		child.Walk(visitor)
	}
	for _, param := range n.Params {
		param.Walk(visitor)
	}
	for _, thrown := range n.Throws {
		thrown.Walk(visitor)
	}
	for _, stmt := range n.Body {
		stmt.Walk(visitor)
	}
	for _, ct := range n.CatchTypes {
		ct.Walk(visitor)
	}
	for _, handler := range n.Handlers {
		handler.Walk(visitor)
	}
	for _, arg := range n.Arguments {
		arg.Walk(visitor)
	}

	n.ParamType.Walk(visitor)
	n.Condition.Walk(visitor)
	n.Consequence.Walk(visitor)
	n.Alternative.Walk(visitor)
	n.Init.Walk(visitor)
	n.Update.Walk(visitor)
	n.Finalizer.Walk(visitor)
	n.Left.Walk(visitor)
	n.Right.Walk(visitor)
	n.Object.Walk(visitor)
	n.Value.Walk(visitor)
}

// String returns a string representation of the node
func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%s) at %s", n.Type, n.Name, n.Location)
	}
	return fmt.Sprintf("%s at %s", n.Type, n.Location)
}

// Imports returns the import declarations of a program node in source order
func (n *Node) Imports() []*Node {
	var imports []*Node
	n.Walk(func(node *Node) bool {
		if node.Type == NodeImportDeclaration {
			imports = append(imports, node)
		}
		// Imports only appear at the top level of the compilation unit
		return node.Type == NodeProgram || node.Type == NodeImportDeclaration
	})
	return imports
}

// IsTypeDeclaration returns true if the node declares a Java type
func (n *Node) IsTypeDeclaration() bool {
	switch n.Type {
	case NodeClassDeclaration, NodeInterfaceDeclaration, NodeEnumDeclaration,
		NodeRecordDeclaration, NodeAnnotationDeclaration:
		return true
	}
	return false
}
