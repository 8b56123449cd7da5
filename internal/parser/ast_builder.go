package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ASTBuilder builds our internal AST from the tree-sitter CST
type ASTBuilder struct {
	filename string
	source   []byte
}

// NewASTBuilder creates a new AST builder
func NewASTBuilder(filename string, source []byte) *ASTBuilder {
	return &ASTBuilder{
		filename: filename,
		source:   source,
	}
}

// Build builds the AST from a tree-sitter node
func (b *ASTBuilder) Build(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}
	return b.buildNode(tsNode)
}

// buildNode converts a tree-sitter node to our internal AST node.
//
// Identifier handling is the part that matters: an Identifier node is only
// produced for identifiers in expression position. Declared names (classes,
// methods, variables, parameters, annotation names, member names after a dot)
// are stored as plain strings on their owning node so that the used-name
// collection of the unused-import check never sees them.
func (b *ASTBuilder) buildNode(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}

	switch tsNode.Type() {
	case "program":
		return b.buildProgram(tsNode)
	case "package_declaration":
		return b.buildPackageDeclaration(tsNode)
	case "import_declaration":
		return b.buildImportDeclaration(tsNode)
	case "class_declaration":
		return b.buildTypeDeclaration(tsNode, NodeClassDeclaration)
	case "interface_declaration":
		return b.buildTypeDeclaration(tsNode, NodeInterfaceDeclaration)
	case "enum_declaration":
		return b.buildTypeDeclaration(tsNode, NodeEnumDeclaration)
	case "record_declaration":
		return b.buildTypeDeclaration(tsNode, NodeRecordDeclaration)
	case "annotation_type_declaration":
		return b.buildTypeDeclaration(tsNode, NodeAnnotationDeclaration)
	case "method_declaration":
		return b.buildCallableDeclaration(tsNode, NodeMethodDeclaration)
	case "constructor_declaration":
		return b.buildCallableDeclaration(tsNode, NodeConstructorDeclaration)
	case "field_declaration":
		return b.buildVariableDeclaration(tsNode, NodeFieldDeclaration)
	case "local_variable_declaration":
		return b.buildVariableDeclaration(tsNode, NodeLocalVariable)
	case "variable_declarator":
		return b.buildVariableDeclarator(tsNode)
	case "formal_parameter", "spread_parameter":
		return b.buildFormalParameter(tsNode)
	case "block", "constructor_body":
		return b.buildBlock(tsNode)
	case "if_statement":
		return b.buildIfStatement(tsNode)
	case "while_statement", "do_statement":
		return b.buildWhileStatement(tsNode)
	case "for_statement":
		return b.buildForStatement(tsNode)
	case "enhanced_for_statement":
		return b.buildEnhancedForStatement(tsNode)
	case "return_statement", "throw_statement":
		return b.buildUnaryStatement(tsNode)
	case "try_statement", "try_with_resources_statement":
		return b.buildTryStatement(tsNode)
	case "catch_clause":
		return b.buildCatchClause(tsNode)
	case "finally_clause":
		return b.buildFinallyClause(tsNode)
	case "expression_statement":
		return b.buildExpressionStatement(tsNode)
	case "method_invocation":
		return b.buildMethodInvocation(tsNode)
	case "field_access":
		return b.buildFieldAccess(tsNode)
	case "array_access":
		return b.buildArrayAccess(tsNode)
	case "object_creation_expression":
		return b.buildObjectCreation(tsNode)
	case "binary_expression", "assignment_expression":
		return b.buildBinaryExpression(tsNode)
	case "unary_expression", "update_expression":
		return b.buildUnaryExpression(tsNode)
	case "ternary_expression":
		return b.buildTernaryExpression(tsNode)
	case "cast_expression":
		return b.buildCastExpression(tsNode)
	case "instanceof_expression":
		return b.buildInstanceofExpression(tsNode)
	case "lambda_expression":
		return b.buildLambdaExpression(tsNode)
	case "method_reference":
		return b.buildMethodReference(tsNode)
	case "parenthesized_expression":
		return b.buildParenthesizedExpression(tsNode)
	case "identifier":
		return b.buildIdentifier(tsNode)
	case "type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"integral_type", "floating_point_type", "boolean_type", "void_type":
		return b.typeName(tsNode)
	case "this", "super":
		return b.leaf(tsNode, NodeThis)
	case "string_literal", "character_literal", "decimal_integer_literal",
		"hex_integer_literal", "octal_integer_literal", "binary_integer_literal",
		"decimal_floating_point_literal", "hex_floating_point_literal",
		"true", "false", "null_literal":
		return b.leaf(tsNode, NodeLiteral)
	case "annotation", "marker_annotation":
		return b.buildAnnotation(tsNode)
	default:
		return b.buildGenericNode(tsNode)
	}
}

func (b *ASTBuilder) buildProgram(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeProgram, tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

func (b *ASTBuilder) buildPackageDeclaration(tsNode *sitter.Node) *Node {
	node := b.newNode(NodePackageDeclaration, tsNode)
	// The package name is a declaration, not a usage; keep only its text.
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		child := tsNode.NamedChild(i)
		if child.Type() == "identifier" || child.Type() == "scoped_identifier" {
			node.Qualified = b.content(child)
		}
	}
	return node
}

func (b *ASTBuilder) buildImportDeclaration(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeImportDeclaration, tsNode)
	node.Raw = strings.TrimSpace(b.content(tsNode))

	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		switch child.Type() {
		case "static":
			node.Static = true
		case "asterisk":
			node.Wildcard = true
		case "identifier", "scoped_identifier":
			node.Qualified = b.content(child)
		}
	}

	node.Name = lastSegment(node.Qualified)
	return node
}

func (b *ASTBuilder) buildTypeDeclaration(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := b.newNode(nodeType, tsNode)
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	if mods := b.namedChildOfType(tsNode, "modifiers"); mods != nil {
		node.AddChild(b.buildGenericNode(mods))
	}
	if body := tsNode.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			member := b.buildNode(body.NamedChild(i))
			if member != nil {
				member.Parent = node
				node.Body = append(node.Body, member)
			}
		}
	}
	return node
}

func (b *ASTBuilder) buildCallableDeclaration(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := b.newNode(nodeType, tsNode)
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	if mods := b.namedChildOfType(tsNode, "modifiers"); mods != nil {
		node.AddChild(b.buildGenericNode(mods))
	}

	if params := tsNode.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			child := params.NamedChild(i)
			if child.Type() == "formal_parameter" || child.Type() == "spread_parameter" {
				param := b.buildFormalParameter(child)
				param.Parent = node
				node.Params = append(node.Params, param)
			}
		}
	}

	if throws := b.namedChildOfType(tsNode, "throws"); throws != nil {
		for i := 0; i < int(throws.NamedChildCount()); i++ {
			thrown := b.typeName(throws.NamedChild(i))
			if thrown != nil {
				thrown.Parent = node
				node.Throws = append(node.Throws, thrown)
			}
		}
	}

	if body := tsNode.ChildByFieldName("body"); body != nil {
		block := b.buildNode(body)
		if block != nil {
			node.Body = block.Body
			for _, stmt := range node.Body {
				stmt.Parent = node
			}
		}
	}
	return node
}

func (b *ASTBuilder) buildFormalParameter(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeFormalParameter, tsNode)
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	if typ := tsNode.ChildByFieldName("type"); typ != nil {
		node.ParamType = b.typeName(typ)
		if node.ParamType != nil {
			node.ParamType.Parent = node
		}
	} else {
		// Spread parameters carry the type as an unnamed field
		for i := 0; i < int(tsNode.NamedChildCount()); i++ {
			child := tsNode.NamedChild(i)
			if isTypeKind(child.Type()) {
				node.ParamType = b.typeName(child)
				node.ParamType.Parent = node
				break
			}
		}
	}
	return node
}

func (b *ASTBuilder) buildVariableDeclaration(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := b.newNode(nodeType, tsNode)
	// The declared type is not tracked as a usage; only declarator
	// initializers can reference imported names.
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		child := tsNode.NamedChild(i)
		switch child.Type() {
		case "variable_declarator":
			node.AddChild(b.buildVariableDeclarator(child))
		case "modifiers":
			node.AddChild(b.buildGenericNode(child))
		}
	}
	return node
}

func (b *ASTBuilder) buildVariableDeclarator(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeVariableDeclarator, tsNode)
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	if value := tsNode.ChildByFieldName("value"); value != nil {
		node.Value = b.buildNode(value)
		if node.Value != nil {
			node.Value.Parent = node
		}
	}
	return node
}

func (b *ASTBuilder) buildBlock(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeBlock, tsNode)
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		stmt := b.buildNode(tsNode.NamedChild(i))
		if stmt != nil {
			stmt.Parent = node
			node.Body = append(node.Body, stmt)
		}
	}
	return node
}

func (b *ASTBuilder) buildIfStatement(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeIfStatement, tsNode)
	node.Condition = b.buildField(node, tsNode, "condition")
	node.Consequence = b.buildField(node, tsNode, "consequence")
	node.Alternative = b.buildField(node, tsNode, "alternative")
	return node
}

func (b *ASTBuilder) buildWhileStatement(tsNode *sitter.Node) *Node {
	nodeType := NodeWhileStatement
	if tsNode.Type() == "do_statement" {
		nodeType = NodeDoStatement
	}
	node := b.newNode(nodeType, tsNode)
	node.Condition = b.buildField(node, tsNode, "condition")
	if body := b.buildField(node, tsNode, "body"); body != nil {
		node.Body = []*Node{body}
	}
	return node
}

func (b *ASTBuilder) buildForStatement(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeForStatement, tsNode)
	node.Init = b.buildField(node, tsNode, "init")
	node.Condition = b.buildField(node, tsNode, "condition")
	node.Update = b.buildField(node, tsNode, "update")
	if body := b.buildField(node, tsNode, "body"); body != nil {
		node.Body = []*Node{body}
	}
	return node
}

func (b *ASTBuilder) buildEnhancedForStatement(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeEnhancedForStatement, tsNode)
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	node.Value = b.buildField(node, tsNode, "value")
	if body := b.buildField(node, tsNode, "body"); body != nil {
		node.Body = []*Node{body}
	}
	return node
}

func (b *ASTBuilder) buildUnaryStatement(tsNode *sitter.Node) *Node {
	nodeType := NodeReturnStatement
	if tsNode.Type() == "throw_statement" {
		nodeType = NodeThrowStatement
	}
	node := b.newNode(nodeType, tsNode)
	if tsNode.NamedChildCount() > 0 {
		node.Value = b.buildNode(tsNode.NamedChild(0))
		if node.Value != nil {
			node.Value.Parent = node
		}
	}
	return node
}

func (b *ASTBuilder) buildTryStatement(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeTryStatement, tsNode)
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		child := tsNode.NamedChild(i)
		switch child.Type() {
		case "block":
			block := b.buildNode(child)
			block.Parent = node
			node.Body = append(node.Body, block)
		case "catch_clause":
			handler := b.buildCatchClause(child)
			handler.Parent = node
			node.Handlers = append(node.Handlers, handler)
		case "finally_clause":
			node.Finalizer = b.buildFinallyClause(child)
			node.Finalizer.Parent = node
		case "resource_specification":
			node.Init = b.buildGenericNode(child)
			node.Init.Parent = node
		}
	}
	return node
}

func (b *ASTBuilder) buildCatchClause(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeCatchClause, tsNode)
	if param := b.namedChildOfType(tsNode, "catch_formal_parameter"); param != nil {
		if name := param.ChildByFieldName("name"); name != nil {
			node.Name = b.content(name)
		}
		if catchType := b.namedChildOfType(param, "catch_type"); catchType != nil {
			for i := 0; i < int(catchType.NamedChildCount()); i++ {
				ct := b.typeName(catchType.NamedChild(i))
				if ct != nil {
					ct.Parent = node
					node.CatchTypes = append(node.CatchTypes, ct)
				}
			}
		}
	}
	if body := tsNode.ChildByFieldName("body"); body != nil {
		block := b.buildNode(body)
		block.Parent = node
		node.Body = append(node.Body, block)
	}
	return node
}

func (b *ASTBuilder) buildFinallyClause(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeFinallyClause, tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

func (b *ASTBuilder) buildExpressionStatement(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeExpressionStatement, tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

func (b *ASTBuilder) buildMethodInvocation(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeMethodInvocation, tsNode)
	// The invoked name is not an identifier usage, only the receiver chain is.
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	node.Object = b.buildField(node, tsNode, "object")
	b.addArguments(node, tsNode.ChildByFieldName("arguments"))
	return node
}

func (b *ASTBuilder) buildFieldAccess(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeFieldAccess, tsNode)
	if field := tsNode.ChildByFieldName("field"); field != nil {
		node.Name = b.content(field)
	}
	node.Object = b.buildField(node, tsNode, "object")
	return node
}

func (b *ASTBuilder) buildArrayAccess(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeArrayAccess, tsNode)
	node.Object = b.buildField(node, tsNode, "array")
	node.Value = b.buildField(node, tsNode, "index")
	return node
}

func (b *ASTBuilder) buildObjectCreation(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeObjectCreation, tsNode)
	// The constructed type is a type position, not an identifier usage
	if typ := tsNode.ChildByFieldName("type"); typ != nil {
		created := b.typeName(typ)
		if created != nil {
			node.Name = created.Name
			node.AddChild(created)
		}
	}
	b.addArguments(node, tsNode.ChildByFieldName("arguments"))
	return node
}

func (b *ASTBuilder) buildBinaryExpression(tsNode *sitter.Node) *Node {
	nodeType := NodeBinaryExpression
	if tsNode.Type() == "assignment_expression" {
		nodeType = NodeAssignmentExpression
	}
	node := b.newNode(nodeType, tsNode)
	node.Left = b.buildField(node, tsNode, "left")
	node.Right = b.buildField(node, tsNode, "right")
	if op := tsNode.ChildByFieldName("operator"); op != nil {
		node.Operator = b.content(op)
	}
	return node
}

func (b *ASTBuilder) buildUnaryExpression(tsNode *sitter.Node) *Node {
	nodeType := NodeUnaryExpression
	if tsNode.Type() == "update_expression" {
		nodeType = NodeUpdateExpression
	}
	node := b.newNode(nodeType, tsNode)
	if operand := tsNode.ChildByFieldName("operand"); operand != nil {
		node.Value = b.buildNode(operand)
		if node.Value != nil {
			node.Value.Parent = node
		}
	} else {
		b.addNamedChildren(node, tsNode)
	}
	if op := tsNode.ChildByFieldName("operator"); op != nil {
		node.Operator = b.content(op)
	}
	return node
}

func (b *ASTBuilder) buildTernaryExpression(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeTernaryExpression, tsNode)
	node.Condition = b.buildField(node, tsNode, "condition")
	node.Consequence = b.buildField(node, tsNode, "consequence")
	node.Alternative = b.buildField(node, tsNode, "alternative")
	return node
}

func (b *ASTBuilder) buildCastExpression(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeCastExpression, tsNode)
	// Cast target type is a type position, not an identifier usage
	node.Value = b.buildField(node, tsNode, "value")
	return node
}

func (b *ASTBuilder) buildInstanceofExpression(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeInstanceofExpression, tsNode)
	node.Left = b.buildField(node, tsNode, "left")
	return node
}

func (b *ASTBuilder) buildLambdaExpression(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeLambdaExpression, tsNode)
	if params := tsNode.ChildByFieldName("parameters"); params != nil {
		switch params.Type() {
		case "identifier":
			param := b.newNode(NodeFormalParameter, params)
			param.Name = b.content(params)
			param.Parent = node
			node.Params = append(node.Params, param)
		case "formal_parameters", "inferred_parameters":
			for i := 0; i < int(params.NamedChildCount()); i++ {
				child := params.NamedChild(i)
				var param *Node
				if child.Type() == "identifier" {
					param = b.newNode(NodeFormalParameter, child)
					param.Name = b.content(child)
				} else {
					param = b.buildFormalParameter(child)
				}
				param.Parent = node
				node.Params = append(node.Params, param)
			}
		}
	}
	if body := b.buildField(node, tsNode, "body"); body != nil {
		node.Body = []*Node{body}
	}
	return node
}

func (b *ASTBuilder) buildMethodReference(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeMethodReference, tsNode)
	if tsNode.NamedChildCount() > 0 {
		node.Object = b.buildNode(tsNode.NamedChild(0))
		if node.Object != nil {
			node.Object.Parent = node
		}
	}
	return node
}

func (b *ASTBuilder) buildParenthesizedExpression(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeParenthesizedExpression, tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

func (b *ASTBuilder) buildIdentifier(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeIdentifier, tsNode)
	node.Name = b.content(tsNode)
	return node
}

func (b *ASTBuilder) buildAnnotation(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeAnnotation, tsNode)
	if name := tsNode.ChildByFieldName("name"); name != nil {
		node.Name = b.content(name)
	}
	// Annotation argument values are expressions; pair keys are not
	if args := tsNode.ChildByFieldName("arguments"); args != nil {
		for i := 0; i < int(args.NamedChildCount()); i++ {
			child := args.NamedChild(i)
			if child.Type() == "element_value_pair" {
				if value := child.ChildByFieldName("value"); value != nil {
					arg := b.buildNode(value)
					if arg != nil {
						arg.Parent = node
						node.Arguments = append(node.Arguments, arg)
					}
				}
				continue
			}
			arg := b.buildNode(child)
			if arg != nil {
				arg.Parent = node
				node.Arguments = append(node.Arguments, arg)
			}
		}
	}
	return node
}

// buildGenericNode handles node kinds without a dedicated builder by keeping
// the raw kind and converting named children
func (b *ASTBuilder) buildGenericNode(tsNode *sitter.Node) *Node {
	node := b.newNode(NodeType(tsNode.Type()), tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

// typeName reduces a type position to its base type identifier. Generic type
// arguments and array dimensions are stripped and do not count as usage.
func (b *ASTBuilder) typeName(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}
	switch tsNode.Type() {
	case "generic_type":
		for i := 0; i < int(tsNode.NamedChildCount()); i++ {
			child := tsNode.NamedChild(i)
			if child.Type() == "type_identifier" || child.Type() == "scoped_type_identifier" {
				return b.typeName(child)
			}
		}
	case "array_type":
		if element := tsNode.ChildByFieldName("element"); element != nil {
			return b.typeName(element)
		}
	}

	node := b.newNode(NodeTypeName, tsNode)
	switch tsNode.Type() {
	case "scoped_type_identifier", "scoped_identifier":
		node.Qualified = b.content(tsNode)
		node.Name = lastSegment(node.Qualified)
	default:
		node.Name = b.content(tsNode)
	}
	return node
}

func (b *ASTBuilder) leaf(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := b.newNode(nodeType, tsNode)
	node.Raw = b.content(tsNode)
	return node
}

func (b *ASTBuilder) newNode(nodeType NodeType, tsNode *sitter.Node) *Node {
	node := NewNode(nodeType)
	node.Location = Location{
		File:      b.filename,
		StartLine: int(tsNode.StartPoint().Row) + 1,
		StartCol:  int(tsNode.StartPoint().Column),
		EndLine:   int(tsNode.EndPoint().Row) + 1,
		EndCol:    int(tsNode.EndPoint().Column),
	}
	return node
}

func (b *ASTBuilder) buildField(parent *Node, tsNode *sitter.Node, field string) *Node {
	child := tsNode.ChildByFieldName(field)
	if child == nil {
		return nil
	}
	built := b.buildNode(child)
	if built != nil {
		built.Parent = parent
	}
	return built
}

func (b *ASTBuilder) addNamedChildren(node *Node, tsNode *sitter.Node) {
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		node.AddChild(b.buildNode(tsNode.NamedChild(i)))
	}
}

func (b *ASTBuilder) addArguments(node *Node, args *sitter.Node) {
	if args == nil {
		return
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := b.buildNode(args.NamedChild(i))
		if arg != nil {
			arg.Parent = node
			node.Arguments = append(node.Arguments, arg)
		}
	}
}

func (b *ASTBuilder) namedChildOfType(tsNode *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		child := tsNode.NamedChild(i)
		if child.Type() == kind {
			return child
		}
	}
	return nil
}

func (b *ASTBuilder) content(tsNode *sitter.Node) string {
	return tsNode.Content(b.source)
}

func isTypeKind(kind string) bool {
	switch kind {
	case "type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"integral_type", "floating_point_type", "boolean_type", "void_type":
		return true
	}
	return false
}

func lastSegment(qualified string) string {
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		return qualified[idx+1:]
	}
	return qualified
}
