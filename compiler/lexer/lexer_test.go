package lexer

import (
	"testing"
)

// TestKeywords tests tokenization of all keywords
func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"class", TOKEN_CLASS},
		{"func", TOKEN_FUNC},
		{"enum", TOKEN_ENUM},
		{"signal", TOKEN_SIGNAL},
		{"node", TOKEN_NODE},
		{"override", TOKEN_OVERRIDE},
		{"bool", TOKEN_BOOL},
		{"int", TOKEN_INT},
		{"float", TOKEN_FLOAT},
		{"string", TOKEN_STRING},
		{"vector2", TOKEN_VECTOR2},
		{"vector3", TOKEN_VECTOR3},
		{"color", TOKEN_COLOR},
		{"object", TOKEN_OBJECT},
		{"array", TOKEN_ARRAY},
		{"dict", TOKEN_DICT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := New(tt.input, "test.tet")
			tokens, errors := lexer.ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if len(tokens) != 2 { // keyword + EOF
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}

			if tokens[0].Type != tt.expected {
				t.Errorf("Expected token type %v, got %v", tt.expected, tokens[0].Type)
			}
		})
	}
}

// TestOperators tests tokenization of operators and delimiters
func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"@", TOKEN_AT},
		{":", TOKEN_COLON},
		{",", TOKEN_COMMA},
		{"?", TOKEN_QUESTION},
		{"=", TOKEN_EQUAL},
		{"-", TOKEN_MINUS},
		{"<", TOKEN_LESS},
		{">", TOKEN_GREATER},
		{"->", TOKEN_ARROW},
		{"{", TOKEN_LBRACE},
		{"}", TOKEN_RBRACE},
		{"(", TOKEN_LPAREN},
		{")", TOKEN_RPAREN},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := New(tt.input, "test.tet")
			tokens, errors := lexer.ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if tokens[0].Type != tt.expected {
				t.Errorf("Expected token type %v, got %v", tt.expected, tokens[0].Type)
			}
		})
	}
}

// TestIdentifiers tests that non-keywords scan as identifiers
func TestIdentifiers(t *testing.T) {
	lexer := New("maxHealth melee_damage CharacterBody2D", "test.tet")
	tokens, errors := lexer.ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}

	expected := []string{"maxHealth", "melee_damage", "CharacterBody2D"}
	if len(tokens) != len(expected)+1 {
		t.Fatalf("Expected %d tokens, got %d", len(expected)+1, len(tokens))
	}

	for i, lexeme := range expected {
		if tokens[i].Type != TOKEN_IDENTIFIER {
			t.Errorf("Token %d: expected IDENTIFIER, got %v", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != lexeme {
			t.Errorf("Token %d: expected lexeme %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}

// TestIntegerLiterals tests integer scanning including underscores
func TestIntegerLiterals(t *testing.T) {
	lexer := New("42 1_000", "test.tet")
	tokens, errors := lexer.ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}

	if tokens[0].Literal.(int64) != 42 {
		t.Errorf("Expected 42, got %v", tokens[0].Literal)
	}
	if tokens[1].Literal.(int64) != 1000 {
		t.Errorf("Expected 1000, got %v", tokens[1].Literal)
	}
}

// TestStringLiterals tests string scanning with escapes
func TestStringLiterals(t *testing.T) {
	lexer := New(`"UI/HealthBar" "a\nb" "q\"q"`, "test.tet")
	tokens, errors := lexer.ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}

	expected := []string{"UI/HealthBar", "a\nb", `q"q`}
	for i, want := range expected {
		if tokens[i].Type != TOKEN_STRING_LITERAL {
			t.Errorf("Token %d: expected STRING_LITERAL, got %v", i, tokens[i].Type)
		}
		if tokens[i].Literal.(string) != want {
			t.Errorf("Token %d: expected %q, got %q", i, want, tokens[i].Literal)
		}
	}
}

// TestUnterminatedString tests the unterminated string error
func TestUnterminatedString(t *testing.T) {
	lexer := New(`"no closing quote`, "test.tet")
	_, errors := lexer.ScanTokens()

	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errors))
	}
}

// TestComments tests that comments are skipped by default
func TestComments(t *testing.T) {
	lexer := New("class # a comment\nPlayer", "test.tet")
	tokens, errors := lexer.ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}

	if len(tokens) != 3 { // class, Player, EOF
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Type != TOKEN_CLASS || tokens[1].Type != TOKEN_IDENTIFIER {
		t.Errorf("Unexpected token types: %v %v", tokens[0].Type, tokens[1].Type)
	}
}

// TestClassDeclaration tests a realistic declaration snippet
func TestClassDeclaration(t *testing.T) {
	source := `class Player < CharacterBody2D {
  @export maxHealth: float
  died: signal()
}`
	lexer := New(source, "player.tet")
	tokens, errors := lexer.ScanTokens()

	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}

	expected := []TokenType{
		TOKEN_CLASS, TOKEN_IDENTIFIER, TOKEN_LESS, TOKEN_IDENTIFIER, TOKEN_LBRACE,
		TOKEN_AT, TOKEN_IDENTIFIER, TOKEN_IDENTIFIER, TOKEN_COLON, TOKEN_FLOAT,
		TOKEN_IDENTIFIER, TOKEN_COLON, TOKEN_SIGNAL, TOKEN_LPAREN, TOKEN_RPAREN,
		TOKEN_RBRACE, TOKEN_EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("Token %d: expected %v, got %v (%q)", i, want, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

// TestLineAndColumnTracking tests position information
func TestLineAndColumnTracking(t *testing.T) {
	lexer := New("class\n  enum", "test.tet")
	tokens, _ := lexer.ScanTokens()

	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("Expected 1:1, got %d:%d", tokens[0].Line, tokens[0].Column)
	}
	if tokens[1].Line != 2 || tokens[1].Column != 3 {
		t.Errorf("Expected 2:3, got %d:%d", tokens[1].Line, tokens[1].Column)
	}
}

// TestUnexpectedCharacter tests the error path for stray characters
func TestUnexpectedCharacter(t *testing.T) {
	lexer := New("class $", "test.tet")
	_, errors := lexer.ScanTokens()

	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errors))
	}
}
