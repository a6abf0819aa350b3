package response

// ErrCode is a typed error code enum for consistent user-facing diagnostics.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrUsage          ErrCode = "USAGE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Storage ───────────────────────────────────────────────────────
	ErrFileNotFound ErrCode = "FILE_NOT_FOUND"
	ErrIO           ErrCode = "IO_ERROR"

	// ─── Commands ──────────────────────────────────────────────────────
	ErrUnknownCommand ErrCode = "UNKNOWN_COMMAND"

	// ─── Internal ──────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Invalid input. Please check the values you entered."
	case ErrInvalidPayload:
		return "The file does not contain a valid student list."
	case ErrUsage:
		return "Wrong number of arguments."
	case ErrNotFound:
		return "Student does not exist."
	case ErrFileNotFound:
		return "File not found."
	case ErrIO:
		return "Could not access the file."
	case ErrUnknownCommand:
		return `Unknown command. Type "help" for a list of commands.`
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}
