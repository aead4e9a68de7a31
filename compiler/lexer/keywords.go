package lexer

// keywords maps keyword strings to their token types for O(1) lookup
var keywords = map[string]TokenType{
	// Declarations
	"class":    TOKEN_CLASS,
	"func":     TOKEN_FUNC,
	"enum":     TOKEN_ENUM,
	"signal":   TOKEN_SIGNAL,
	"node":     TOKEN_NODE,
	"override": TOKEN_OVERRIDE,

	// Type keywords - marshaling capability set
	"bool":    TOKEN_BOOL,
	"int":     TOKEN_INT,
	"float":   TOKEN_FLOAT,
	"string":  TOKEN_STRING,
	"vector2": TOKEN_VECTOR2,
	"vector3": TOKEN_VECTOR3,
	"color":   TOKEN_COLOR,
	"object":  TOKEN_OBJECT,
	"array":   TOKEN_ARRAY,
	"dict":    TOKEN_DICT,
}

// lookupKeyword checks if an identifier is a keyword
// Returns the token type and true if it's a keyword, TOKEN_IDENTIFIER and false otherwise
func lookupKeyword(identifier string) (TokenType, bool) {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType, true
	}
	return TOKEN_IDENTIFIER, false
}
