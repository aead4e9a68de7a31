package parser

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/lexer"
)

// parseEnum parses a top-level enum declaration
//
//	enum Element: int {
//	  Fire
//	  Water = 3
//	}
//
// Enum-level annotations (@picker) are parsed by the caller.
func (p *Parser) parseEnum(annotations []*AnnotationNode) *EnumNode {
	enumToken, ok := p.consume(lexer.TOKEN_ENUM, "Expected 'enum' keyword")
	if !ok {
		return nil
	}

	name, ok := p.consumeName("Expected enum name")
	if !ok {
		p.synchronize()
		return nil
	}

	enum := &EnumNode{
		Name:        name,
		Annotations: annotations,
		Location:    TokenToLocation(enumToken),
	}

	// The underlying representation is declared explicitly. Whether
	// it is integer-backed is checked by the descriptor builder, not
	// the parser.
	if _, ok := p.consume(lexer.TOKEN_COLON, "Expected ':' and underlying type after enum name"); !ok {
		p.synchronize()
		return nil
	}
	backingToken := p.advance()
	switch backingToken.Type {
	case lexer.TOKEN_INT, lexer.TOKEN_FLOAT, lexer.TOKEN_STRING, lexer.TOKEN_BOOL, lexer.TOKEN_IDENTIFIER:
		enum.Backing = backingToken.Lexeme
	default:
		p.addError(ParseError{
			Message:  fmt.Sprintf("Expected underlying type after ':', got %q", backingToken.Lexeme),
			Location: TokenToLocation(backingToken),
		})
		p.synchronize()
		return nil
	}

	if _, ok := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after enum header"); !ok {
		p.synchronize()
		return nil
	}

	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		caseNode := p.parseEnumCase()
		if caseNode == nil {
			p.synchronize()
			return enum
		}
		enum.Cases = append(enum.Cases, caseNode)

		// Optional comma between cases
		p.match(lexer.TOKEN_COMMA)
	}

	if _, ok := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after enum cases"); !ok {
		return enum // Return partial AST
	}

	return enum
}

// parseEnumCase parses one case: Name [= [-]value]
func (p *Parser) parseEnumCase() *EnumCaseNode {
	nameToken := p.peek()
	name, ok := p.consumeName("Expected enum case name")
	if !ok {
		return nil
	}

	caseNode := &EnumCaseNode{Name: name, Location: TokenToLocation(nameToken)}

	if p.match(lexer.TOKEN_EQUAL) {
		negative := p.match(lexer.TOKEN_MINUS)

		valueToken, ok := p.consume(lexer.TOKEN_INT_LITERAL, "Expected integer value after '='")
		if !ok {
			return nil
		}

		value := valueToken.Literal.(int64)
		if negative {
			value = -value
		}
		caseNode.HasValue = true
		caseNode.Value = value
	}

	return caseNode
}
