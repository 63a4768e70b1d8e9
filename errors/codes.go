package errors

// ErrorCode identifies the kind of an AppError
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_VALIDATION
	ErrorCode_NOT_FOUND
	ErrorCode_STORAGE
	ErrorCode_UPSTREAM
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:   "INTERNAL",
	ErrorCode_VALIDATION: "VALIDATION",
	ErrorCode_NOT_FOUND:  "NOT_FOUND",
	ErrorCode_STORAGE:    "STORAGE",
	ErrorCode_UPSTREAM:   "UPSTREAM",
}

// String returns the name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
