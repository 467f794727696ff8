package dirsyn

/*
errors.go implements the typed error taxonomy consumed by the decoder,
encoder, schema, DN and entry layers. It follows the teacher's plain
sentinel-error idiom (err.go's mkerr/errorTxt) rather than reaching for
a wrapping-error package: every CodecError carries a Category/Code pair
so callers can discriminate by kind without a third-party errors
library, the same way the teacher discriminates by comparing against
package-level error vars.
*/

/*
CodecError is the common shape behind every typed error this package
returns: a broad Category (DecoderError, EncoderError, SchemaError,
DnError, AccessError) and a specific Code within that category.
*/
type CodecError struct {
	Category string
	Code     string
	Detail   string
}

/*
Error returns the string representation of the receiver instance.
*/
func (e *CodecError) Error() string {
	s := e.Category + "::" + e.Code
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

/*
Is reports whether target is a [*CodecError] sharing the receiver's
Category and Code, allowing callers to test kind via [errors.Is]-style
comparison (erris, in this package's alias of [errors.Is]) without
exposing every individual sentinel as its own package-level var.
*/
func (e *CodecError) Is(target error) bool {
	o, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Category == o.Category && e.Code == o.Code
}

func newCodecError(category, code, detail string) error {
	return &CodecError{Category: category, Code: code, Detail: detail}
}

// DecoderError codes.
const (
	DecoderErrTruncatedTag            = "TruncatedTag"
	DecoderErrTruncatedLength         = "TruncatedLength"
	DecoderErrLengthOverflow          = "LengthOverflow"
	DecoderErrChildOverrunsParent     = "ChildOverrunsParent"
	DecoderErrTrailingBytesInStructure = "TrailingBytesInStructure"
	DecoderErrUnknownOperationTag     = "UnknownOperationTag"
	DecoderErrInvalidInteger          = "InvalidInteger"
	DecoderErrInvalidOid              = "InvalidOid"
	DecoderErrInvalidBoolean          = "InvalidBoolean"
	DecoderErrLimitExceeded           = "LimitExceeded"
	DecoderErrGrammarMismatch         = "GrammarMismatch"
	DecoderErrUnexpectedEndOfInput    = "UnexpectedEndOfInput"
	DecoderErrPoisoned                = "Poisoned"
	decoderErrorCategory       string = "DecoderError"
)

func decoderErr(code, detail string) error {
	return newCodecError(decoderErrorCategory, code, detail)
}

// EncoderError codes.
const (
	EncoderErrUnsupportedVariant           = "UnsupportedVariant"
	EncoderErrNumericOverflow               = "NumericOverflow"
	encoderErrorCategory            string = "EncoderError"
)

func encoderErr(code, detail string) error {
	return newCodecError(encoderErrorCategory, code, detail)
}

// SchemaError codes.
const (
	SchemaErrNoNormalizer                 = "NoNormalizer"
	SchemaErrInvalidSyntax                = "InvalidSyntax"
	SchemaErrAlreadyBound                 = "AlreadyBound"
	SchemaErrHumanReadableMismatch        = "HumanReadableMismatch"
	SchemaErrNoSuchAttributeType          = "NoSuchAttributeType"
	SchemaErrNoSuchMatchingRule           = "NoSuchMatchingRule"
	SchemaErrInvalidIncrement             = "InvalidIncrement"
	schemaErrorCategory            string = "SchemaError"
)

func schemaErr(code, detail string) error {
	return newCodecError(schemaErrorCategory, code, detail)
}

// DnError codes.
const (
	DnErrEmptyComponent            = "EmptyComponent"
	DnErrBadEscape                 = "BadEscape"
	DnErrBadHex                    = "BadHex"
	DnErrBadChar                   = "BadChar"
	DnErrMissingEqual              = "MissingEqual"
	DnErrUnbalancedQuotes          = "UnbalancedQuotes"
	dnErrorCategory         string = "DnError"
)

func dnErr(code, detail string) error {
	return newCodecError(dnErrorCategory, code, detail)
}

// AccessError codes.
const (
	AccessErrImmutable            = "Immutable"
	accessErrorCategory    string = "AccessError"
)

func accessErr(code, detail string) error {
	return newCodecError(accessErrorCategory, code, detail)
}

/*
resultCodeForError maps a core error, per spec §7's LDAP protocol
boundary rule, to the [ResultCode] a server-facing caller should report
for it: decode failures map to protocolError, schema failures to
invalidAttributeSyntax, DN failures to invalidDNSyntax, everything
else to other.
*/
func resultCodeForError(err error) ResultCode {
	ce, ok := err.(*CodecError)
	if !ok {
		return ResultOther
	}

	switch ce.Category {
	case decoderErrorCategory:
		return ResultProtocolError
	case schemaErrorCategory:
		return ResultInvalidAttributeSyntax
	case dnErrorCategory:
		return ResultInvalidDNSyntax
	default:
		return ResultOther
	}
}
