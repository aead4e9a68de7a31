package errors

// Error code constants organized by phase
// E001-E099: Lexer errors
// E100-E199: Parser errors
// E200-E299: Descriptor errors
// E300-E399: Initialization plan errors
// E400-E499: Codegen errors

const (
	// Lexer errors (E001-E099)
	ErrUnterminatedString = "E001"
	ErrInvalidCharacter   = "E002"
	ErrInvalidNumber      = "E003"

	// Parser errors (E100-E199)
	ErrUnexpectedToken    = "E100"
	ErrExpectedIdentifier = "E101"
	ErrExpectedType       = "E102"
	ErrInvalidAnnotation  = "E103"
	ErrInvalidSignal      = "E104"
	ErrInvalidEnumValue   = "E105"

	// Descriptor errors (E200-E299)
	ErrUnsupportedExportType = "E200"
	ErrDuplicateMember       = "E201"
	ErrDuplicateSignal       = "E202"
	ErrConflictingSignal     = "E203"
	ErrDuplicateSignalArg    = "E204"
	ErrUnknownHint           = "E205"
	ErrUnknownUsageFlag      = "E206"
	ErrNonIntegerEnum        = "E207"
	ErrDuplicateEnumValue    = "E208"
	ErrUnknownOverrideHook   = "E209"
	ErrEmptyEnum             = "E210"
	ErrUnexportedDeclaration = "E211"

	// Initialization plan errors (E300-E399)
	ErrClassInMultipleLevels = "E300"
	ErrUnknownPlanClass      = "E301"
	ErrParentAfterChild      = "E302"
	ErrUnknownLevel          = "E303"
	ErrDuplicateClass        = "E304"
	ErrUnknownParentClass    = "E305"

	// Codegen errors (E400-E499)
	ErrCodegenFailure = "E400"
)
