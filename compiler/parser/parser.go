package parser

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/lexer"
)

// Parser transforms token streams into an Abstract Syntax Tree
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []ParseError
}

// New creates a new Parser from a token stream
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		errors: []ParseError{},
	}
}

// Parse parses the token stream and returns the AST and any errors
func (p *Parser) Parse() (*Program, []ParseError) {
	program := p.parseProgram()
	return program, p.errors
}

// parseProgram parses the top-level program: class and enum
// declarations, each optionally preceded by annotations
func (p *Parser) parseProgram() *Program {
	program := &Program{Location: TokenToLocation(p.peek())}

	for !p.isAtEnd() {
		annotations := p.parseAnnotations()

		switch {
		case p.check(lexer.TOKEN_CLASS):
			if class := p.parseClass(annotations); class != nil {
				program.Classes = append(program.Classes, class)
			}
		case p.check(lexer.TOKEN_ENUM):
			if enum := p.parseEnum(annotations); enum != nil {
				program.Enums = append(program.Enums, enum)
			}
		default:
			p.addError(ParseError{
				Message:  fmt.Sprintf("Unexpected token: %s. Expected 'class' or 'enum' declaration.", p.peek().Lexeme),
				Location: TokenToLocation(p.peek()),
			})
			p.synchronize()
		}
	}

	return program
}

// parseAnnotations parses zero or more consecutive @annotations
func (p *Parser) parseAnnotations() []*AnnotationNode {
	var annotations []*AnnotationNode
	for p.check(lexer.TOKEN_AT) {
		ann := p.parseAnnotation()
		if ann == nil {
			break
		}
		annotations = append(annotations, ann)
	}
	return annotations
}

// parseAnnotation parses a single @name or @name(args) annotation.
// Keywords are accepted as annotation names so @signal and @node work.
func (p *Parser) parseAnnotation() *AnnotationNode {
	atToken, ok := p.consume(lexer.TOKEN_AT, "Expected '@'")
	if !ok {
		return nil
	}

	nameToken := p.advance()
	switch nameToken.Type {
	case lexer.TOKEN_IDENTIFIER, lexer.TOKEN_SIGNAL, lexer.TOKEN_NODE, lexer.TOKEN_OVERRIDE:
		// Acceptable annotation names
	default:
		p.addError(ParseError{
			Message:  fmt.Sprintf("Expected annotation name after '@', got %q", nameToken.Lexeme),
			Location: TokenToLocation(nameToken),
		})
		return nil
	}

	ann := &AnnotationNode{
		Name:     nameToken.Lexeme,
		Location: TokenToLocation(atToken),
	}

	if p.match(lexer.TOKEN_LPAREN) {
		for !p.check(lexer.TOKEN_RPAREN) && !p.isAtEnd() {
			arg, ok := p.parseAnnotationArg()
			if !ok {
				return nil
			}
			ann.Args = append(ann.Args, arg)

			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
		if _, ok := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after annotation arguments"); !ok {
			return nil
		}
	}

	return ann
}

// parseAnnotationArg parses one annotation argument:
// a positional value, a flag identifier, or name: value
func (p *Parser) parseAnnotationArg() (AnnotationArg, bool) {
	tok := p.advance()

	switch tok.Type {
	case lexer.TOKEN_STRING_LITERAL:
		return AnnotationArg{Value: tok.Literal.(string)}, true

	case lexer.TOKEN_INT_LITERAL:
		return AnnotationArg{Value: tok.Literal.(int64)}, true

	case lexer.TOKEN_IDENTIFIER:
		// name: value, or a bare identifier (flag / symbolic value)
		if p.match(lexer.TOKEN_COLON) {
			value, ok := p.parseAnnotationValue()
			if !ok {
				return AnnotationArg{}, false
			}
			return AnnotationArg{Name: tok.Lexeme, Value: value}, true
		}
		return AnnotationArg{Value: tok.Lexeme}, true

	default:
		p.addError(ParseError{
			Message:  fmt.Sprintf("Unexpected annotation argument: %q", tok.Lexeme),
			Location: TokenToLocation(tok),
		})
		return AnnotationArg{}, false
	}
}

// parseAnnotationValue parses the value side of name: value
func (p *Parser) parseAnnotationValue() (interface{}, bool) {
	tok := p.advance()
	switch tok.Type {
	case lexer.TOKEN_STRING_LITERAL:
		return tok.Literal.(string), true
	case lexer.TOKEN_INT_LITERAL:
		return tok.Literal.(int64), true
	case lexer.TOKEN_IDENTIFIER:
		return tok.Lexeme, true
	default:
		p.addError(ParseError{
			Message:  fmt.Sprintf("Unexpected annotation value: %q", tok.Lexeme),
			Location: TokenToLocation(tok),
		})
		return nil, false
	}
}

// parseType parses a declared type with optional trailing ?
func (p *Parser) parseType() (TypeNode, bool) {
	tok := p.advance()
	node := TypeNode{Location: TokenToLocation(tok)}

	switch tok.Type {
	case lexer.TOKEN_BOOL:
		node.Kind = TypeBool
	case lexer.TOKEN_INT:
		node.Kind = TypeInt
	case lexer.TOKEN_FLOAT:
		node.Kind = TypeFloat
	case lexer.TOKEN_STRING:
		node.Kind = TypeString
	case lexer.TOKEN_VECTOR2:
		node.Kind = TypeVector2
	case lexer.TOKEN_VECTOR3:
		node.Kind = TypeVector3
	case lexer.TOKEN_COLOR:
		node.Kind = TypeColor
	case lexer.TOKEN_ARRAY:
		node.Kind = TypeArray
	case lexer.TOKEN_DICT:
		node.Kind = TypeDict
	case lexer.TOKEN_OBJECT:
		node.Kind = TypeObject

	case lexer.TOKEN_IDENTIFIER:
		// Reference to a declared or host class
		node.Kind = TypeObject
		node.ClassName = tok.Lexeme

	case lexer.TOKEN_SIGNAL:
		// Typed signal carrier: signal(args...)
		node.Kind = TypeSignal
		if _, ok := p.consume(lexer.TOKEN_LPAREN, "Expected '(' after 'signal'"); !ok {
			return node, false
		}
		params, ok := p.parseParams()
		if !ok {
			return node, false
		}
		node.SignalParams = params

	case lexer.TOKEN_NODE:
		// Scene reference: node<Target>
		node.Kind = TypeNodeRef
		if _, ok := p.consume(lexer.TOKEN_LESS, "Expected '<' after 'node'"); !ok {
			return node, false
		}
		target, ok := p.consumeName("Expected node target class inside node<>")
		if !ok {
			return node, false
		}
		node.ClassName = target
		if _, ok := p.consume(lexer.TOKEN_GREATER, "Expected '>' after node target class"); !ok {
			return node, false
		}

	default:
		p.addError(ParseError{
			Message:  fmt.Sprintf("Expected type, got %q", tok.Lexeme),
			Location: TokenToLocation(tok),
		})
		return node, false
	}

	if p.match(lexer.TOKEN_QUESTION) {
		node.Optional = true
	}

	return node, true
}

// parseParams parses a parenthesized parameter list up to and
// including the closing ')'. The opening '(' must already be consumed.
func (p *Parser) parseParams() ([]ParamNode, bool) {
	var params []ParamNode

	for !p.check(lexer.TOKEN_RPAREN) && !p.isAtEnd() {
		nameToken := p.peek()
		name, ok := p.consumeName("Expected parameter name")
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.TOKEN_COLON, "Expected ':' after parameter name"); !ok {
			return nil, false
		}
		paramType, ok := p.parseType()
		if !ok {
			return nil, false
		}

		params = append(params, ParamNode{
			Name:     name,
			Type:     paramType,
			Location: TokenToLocation(nameToken),
		})

		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}

	if _, ok := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

// Helper methods for token manipulation

// isAtEnd checks if we're at the end of the token stream
func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Type == lexer.TOKEN_EOF
}

// peek returns the current token without consuming it
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // Return EOF
	}
	return p.tokens[p.current]
}

// previous returns the previous token
func (p *Parser) previous() lexer.Token {
	if p.current > 0 {
		return p.tokens[p.current-1]
	}
	return p.tokens[0]
}

// advance consumes and returns the current token
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check checks if the current token is of the given type
func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// match checks if the current token matches any of the given types
// If it matches, consumes the token and returns true
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

// consume consumes a token of the expected type or reports an error
func (p *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, bool) {
	if p.check(tokenType) {
		return p.advance(), true
	}

	p.addError(ParseError{
		Message:  fmt.Sprintf("%s, got %q", message, p.peek().Lexeme),
		Location: TokenToLocation(p.peek()),
	})
	return p.peek(), false
}

// consumeName consumes an identifier, also accepting keywords that
// are legal names in declaration position
func (p *Parser) consumeName(message string) (string, bool) {
	if p.check(lexer.TOKEN_IDENTIFIER) {
		return p.advance().Lexeme, true
	}

	p.addError(ParseError{
		Message:  fmt.Sprintf("%s, got %q", message, p.peek().Lexeme),
		Location: TokenToLocation(p.peek()),
	})
	return "", false
}

// addError adds a parse error
func (p *Parser) addError(err ParseError) {
	p.errors = append(p.errors, err)
}

// synchronize skips tokens until the next likely declaration
// boundary. At least one token is always consumed so a stuck parse
// cannot loop.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_CLASS, lexer.TOKEN_ENUM, lexer.TOKEN_AT:
			return
		}
		p.advance()
	}
}
