package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrRequired indicates a field was left empty at submit time.
	ErrRequired = constError("value is required")

	// ErrNegative indicates a field parsed to a negative number.
	ErrNegative = constError("value must be non-negative")

	// ErrUnknownCategory indicates a category identifier that is not one of the seven.
	ErrUnknownCategory = constError("unknown category")
)

// FieldErrorMessage is the inline message shown next to every failing field.
const FieldErrorMessage = "This field is required and must be non-negative"
