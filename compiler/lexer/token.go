package lexer

import (
	"fmt"
	"strings"
)

// TokenType represents the type of token in a Tether declaration file
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR
	TOKEN_COMMENT
	TOKEN_NEWLINE

	// Keywords - Declarations
	TOKEN_CLASS
	TOKEN_FUNC
	TOKEN_ENUM
	TOKEN_SIGNAL
	TOKEN_NODE
	TOKEN_OVERRIDE

	// Type keywords - marshaling capability set
	TOKEN_BOOL
	TOKEN_INT
	TOKEN_FLOAT
	TOKEN_STRING
	TOKEN_VECTOR2
	TOKEN_VECTOR3
	TOKEN_COLOR
	TOKEN_OBJECT
	TOKEN_ARRAY
	TOKEN_DICT

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_INT_LITERAL
	TOKEN_STRING_LITERAL

	// Operators and delimiters
	TOKEN_AT       // @
	TOKEN_COLON    // :
	TOKEN_COMMA    // ,
	TOKEN_QUESTION // ?
	TOKEN_EQUAL    // =
	TOKEN_MINUS    // -
	TOKEN_LESS     // <
	TOKEN_GREATER  // >
	TOKEN_ARROW    // ->
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
)

// Token represents a single lexical token
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // For literals (numbers, strings)
	Line    int
	Column  int
	File    string // Source file path
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ERROR:
		return "ERROR"
	case TOKEN_COMMENT:
		return "COMMENT"
	case TOKEN_NEWLINE:
		return "NEWLINE"
	case TOKEN_CLASS:
		return "CLASS"
	case TOKEN_FUNC:
		return "FUNC"
	case TOKEN_ENUM:
		return "ENUM"
	case TOKEN_SIGNAL:
		return "SIGNAL"
	case TOKEN_NODE:
		return "NODE"
	case TOKEN_OVERRIDE:
		return "OVERRIDE"
	case TOKEN_BOOL:
		return "BOOL"
	case TOKEN_INT:
		return "INT"
	case TOKEN_FLOAT:
		return "FLOAT"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_VECTOR2:
		return "VECTOR2"
	case TOKEN_VECTOR3:
		return "VECTOR3"
	case TOKEN_COLOR:
		return "COLOR"
	case TOKEN_OBJECT:
		return "OBJECT"
	case TOKEN_ARRAY:
		return "ARRAY"
	case TOKEN_DICT:
		return "DICT"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_INT_LITERAL:
		return "INT_LITERAL"
	case TOKEN_STRING_LITERAL:
		return "STRING_LITERAL"
	case TOKEN_AT:
		return "AT"
	case TOKEN_COLON:
		return "COLON"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_QUESTION:
		return "QUESTION"
	case TOKEN_EQUAL:
		return "EQUAL"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_LESS:
		return "LESS"
	case TOKEN_GREATER:
		return "GREATER"
	case TOKEN_ARROW:
		return "ARROW"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s(%v) [%d:%d]", t.Type, t.Literal, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) [%d:%d]", t.Type, t.Lexeme, t.Line, t.Column)
}

// LexError represents a lexical analysis error
type LexError struct {
	Message string
	Line    int
	Column  int
	File    string
}

// Error implements the error interface
func (e LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

// ErrorCode returns a unique error code for this error type
func (e LexError) ErrorCode() string {
	switch {
	case strings.HasPrefix(e.Message, "Unterminated string"):
		return "E001"
	case strings.HasPrefix(e.Message, "Invalid integer"):
		return "E003"
	default:
		return "E002"
	}
}
