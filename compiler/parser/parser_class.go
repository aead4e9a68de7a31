package parser

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/lexer"
)

// parseClass parses a class declaration
//
//	class Player < CharacterBody2D {
//	  body items...
//	}
//
// Class-level annotations (@tool, @discard_handle) are parsed by the
// caller and passed in.
func (p *Parser) parseClass(annotations []*AnnotationNode) *ClassNode {
	classToken, ok := p.consume(lexer.TOKEN_CLASS, "Expected 'class' keyword")
	if !ok {
		return nil
	}

	name, ok := p.consumeName("Expected class name")
	if !ok {
		p.synchronize()
		return nil
	}

	class := &ClassNode{
		Name:        name,
		Annotations: annotations,
		Location:    TokenToLocation(classToken),
	}

	// Parent class is mandatory: every class descends from a host
	// built-in or another declared class.
	if _, ok := p.consume(lexer.TOKEN_LESS, "Expected '<' and parent class after class name"); !ok {
		p.synchronize()
		return nil
	}
	parent, ok := p.consumeName("Expected parent class name after '<'")
	if !ok {
		p.synchronize()
		return nil
	}
	class.Parent = parent

	if _, ok := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after class header"); !ok {
		p.synchronize()
		return nil
	}

	// Parse class body in declaration order
	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		p.parseBodyItem(class)
	}

	if _, ok := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after class body"); !ok {
		return class // Return partial AST
	}

	return class
}

// parseBodyItem parses one item of a class body: a standalone
// declaration (@group, @subgroup, @signal, @override), or an
// annotated property or method
func (p *Parser) parseBodyItem(class *ClassNode) {
	var pending []*AnnotationNode

	for p.check(lexer.TOKEN_AT) {
		ann := p.parseAnnotation()
		if ann == nil {
			p.skipToBodyBoundary()
			return
		}

		switch ann.Name {
		case "group":
			if node := p.groupFromAnnotation(ann); node != nil {
				class.Body = append(class.Body, node)
			}
			return
		case "subgroup":
			if node := p.subgroupFromAnnotation(ann); node != nil {
				class.Body = append(class.Body, node)
			}
			return
		case "signal":
			if node := p.parseLegacySignal(ann); node != nil {
				class.Body = append(class.Body, node)
			}
			return
		case "override":
			if node := p.parseOverride(ann); node != nil {
				class.Body = append(class.Body, node)
			}
			return
		default:
			pending = append(pending, ann)
		}
	}

	switch {
	case p.check(lexer.TOKEN_FUNC):
		if method := p.parseMethod(pending); method != nil {
			class.Body = append(class.Body, method)
		}

	case p.check(lexer.TOKEN_IDENTIFIER):
		if prop := p.parseProperty(pending); prop != nil {
			class.Body = append(class.Body, prop)
		}

	default:
		p.addError(ParseError{
			Message:  fmt.Sprintf("Unexpected token in class body: %q", p.peek().Lexeme),
			Location: TokenToLocation(p.peek()),
		})
		p.skipToBodyBoundary()
	}
}

// groupFromAnnotation validates @group("Name")
func (p *Parser) groupFromAnnotation(ann *AnnotationNode) *GroupNode {
	name, ok := ann.Positional(0)
	nameStr, isString := name.(string)
	if !ok || !isString || nameStr == "" {
		p.addError(ParseError{
			Message:  "@group requires a group name string",
			Location: ann.Location,
		})
		return nil
	}
	return &GroupNode{Name: nameStr, Location: ann.Location}
}

// subgroupFromAnnotation validates @subgroup("Name", prefix: "p_")
func (p *Parser) subgroupFromAnnotation(ann *AnnotationNode) *SubgroupNode {
	name, ok := ann.Positional(0)
	nameStr, isString := name.(string)
	if !ok || !isString || nameStr == "" {
		p.addError(ParseError{
			Message:  "@subgroup requires a subgroup name string",
			Location: ann.Location,
		})
		return nil
	}

	node := &SubgroupNode{Name: nameStr, Location: ann.Location}
	if prefix, ok := ann.Arg("prefix"); ok {
		prefixStr, isString := prefix.(string)
		if !isString {
			p.addError(ParseError{
				Message:  "@subgroup prefix must be a string",
				Location: ann.Location,
			})
			return nil
		}
		node.Prefix = prefixStr
	}
	return node
}

// parseLegacySignal parses the freestanding signal form:
//
//	@signal healthChanged(old: int, new: int)
func (p *Parser) parseLegacySignal(ann *AnnotationNode) *SignalNode {
	name, ok := p.consumeName("Expected signal name after @signal")
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}

	if _, ok := p.consume(lexer.TOKEN_LPAREN, "Expected '(' after signal name"); !ok {
		p.skipToBodyBoundary()
		return nil
	}
	params, ok := p.parseParams()
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}

	return &SignalNode{Name: name, Params: params, Location: ann.Location}
}

// parseOverride parses @override hook_name
func (p *Parser) parseOverride(ann *AnnotationNode) *OverrideNode {
	hook, ok := p.consumeName("Expected hook name after @override")
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}
	return &OverrideNode{Hook: hook, Location: ann.Location}
}

// parseProperty parses name: type with optional trailing ?
func (p *Parser) parseProperty(annotations []*AnnotationNode) *PropertyNode {
	nameToken := p.peek()
	name, ok := p.consumeName("Expected property name")
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}

	if _, ok := p.consume(lexer.TOKEN_COLON, "Expected ':' after property name"); !ok {
		p.skipToBodyBoundary()
		return nil
	}

	propType, ok := p.parseType()
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}

	return &PropertyNode{
		Name:        name,
		Type:        propType,
		Annotations: annotations,
		Location:    TokenToLocation(nameToken),
	}
}

// parseMethod parses func name(params) [-> type]
func (p *Parser) parseMethod(annotations []*AnnotationNode) *MethodNode {
	funcToken, ok := p.consume(lexer.TOKEN_FUNC, "Expected 'func' keyword")
	if !ok {
		return nil
	}

	name, ok := p.consumeName("Expected method name after 'func'")
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}

	if _, ok := p.consume(lexer.TOKEN_LPAREN, "Expected '(' after method name"); !ok {
		p.skipToBodyBoundary()
		return nil
	}
	params, ok := p.parseParams()
	if !ok {
		p.skipToBodyBoundary()
		return nil
	}

	method := &MethodNode{
		Name:        name,
		Params:      params,
		Annotations: annotations,
		Location:    TokenToLocation(funcToken),
	}

	if p.match(lexer.TOKEN_ARROW) {
		returnType, ok := p.parseType()
		if !ok {
			p.skipToBodyBoundary()
			return nil
		}
		method.ReturnType = &returnType
	}

	return method
}

// skipToBodyBoundary skips tokens until the next body item or the
// end of the class body
func (p *Parser) skipToBodyBoundary() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_AT, lexer.TOKEN_FUNC, lexer.TOKEN_RBRACE:
			return
		}
		p.advance()
	}
}
