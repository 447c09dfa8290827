package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrUnknownLabel   ErrCode = "UNKNOWN_LABEL"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Correlation ───────────────────────────────────────────────────
	ErrIncomplete ErrCode = "INCOMPLETE_CORRELATIONS"
	ErrAssembly   ErrCode = "ASSEMBLY_FAILED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrUnknownLabel:
		return "The label is not offered for this class."
	case ErrNotFound:
		return "Resource not found."
	case ErrIncomplete:
		return "Some classes have fewer correlations than labels."
	case ErrAssembly:
		return "The NS document has no week block to fill."
	case ErrInternal:
		return "Internal server error."
	default:
		return "Unexpected error."
	}
}
