package fix

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// FieldCodec is implemented by every generated field type, scalar or
// enumerated. Tag is a compile-time constant per field definition;
// Encode/Decode move the typed value to and from the wire payload
// between '=' and the terminating SOH (§4.4.1).
type FieldCodec interface {
	// Tag returns the fixed tag number this field type encodes under.
	Tag() int

	// Encode returns the UTF-8 bytes "T=<value>" followed by a single
	// SOH octet.
	Encode() []byte

	// Decode interprets payload — the bytes after '=' and before the
	// next SOH, with neither present in payload — as this field's typed
	// value. It returns ErrInvalidData or ErrInvalidString on failure.
	Decode(payload []byte) error
}

// EncodeText is the shared tail of every generated scalar/enum field's
// Encode method: "tag=text<SOH>". Generated code calls this directly
// once it has rendered its typed value to its own wire text.
func EncodeText(tag int, text string) []byte {
	out := make([]byte, 0, len(text)+8)
	out = strconv.AppendInt(out, int64(tag), 10)
	out = append(out, '=')
	out = append(out, text...)
	out = append(out, SOH)
	return out
}

// EncodeScalar formats a scalar field value as "tag=<text>\x01" using
// fmt's default verb. Generated field types do not call it: they render
// their value with FormatInt/FormatFloat/FormatUint8/EncodeBool (or
// decimal.Decimal's String) and call EncodeText directly.
func EncodeScalar(tag int, value interface{}) []byte {
	return EncodeText(tag, fmt.Sprint(value))
}

// FormatInt renders a signed integer field value in the plain base-10
// form the wire expects, avoiding fmt's handling of other verbs.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders a double-precision real in fixed notation (never
// scientific), using the shortest representation that round-trips,
// matching the literal textual form FIX counterparties expect for
// Float/UtcTimestamp. Price/Amount/Quantity/PriceOffset/Percentage
// fields are decimal.Decimal and render through its String method.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatUint8 renders a DayOfMonth-shaped field value in base-10 form.
func FormatUint8(v uint8) string {
	return strconv.FormatUint(uint64(v), 10)
}

// EnumDecodeError reports that payload does not match any known wire
// value of an enumerated field.
func EnumDecodeError(tag int, payload []byte) error {
	return fmt.Errorf("%w: tag %d: unknown enum value %q", ErrInvalidData, tag, payload)
}

// WrapInvalidData wraps a lower-level parse error (e.g. from
// decimal.NewFromString) as ErrInvalidData.
func WrapInvalidData(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidData, err)
}

// DecodeInt parses payload as a base-10 signed integer for Int/Seqnum/
// Length/NumInGroup-typed fields.
func DecodeInt(payload []byte) (int64, error) {
	v, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return v, nil
}

// DecodeFloat parses payload as a double-precision real for Float/
// UtcTimestamp-typed fields.
func DecodeFloat(payload []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(payload), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return v, nil
}

// DecodeBool parses payload as a FIX Boolean: "Y" or "N".
func DecodeBool(payload []byte) (bool, error) {
	switch string(payload) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: boolean must be Y or N, got %q", ErrInvalidData, payload)
	}
}

// EncodeBool renders a FIX Boolean as "Y"/"N".
func EncodeBool(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

// DecodeChar parses payload as a FIX Char: exactly one byte.
func DecodeChar(payload []byte) (byte, error) {
	if len(payload) != 1 {
		return 0, fmt.Errorf("%w: char must be exactly one byte, got %q", ErrInvalidData, payload)
	}
	return payload[0], nil
}

// DecodeUint8 parses payload as a base-10 unsigned byte, for
// DayOfMonth-typed fields.
func DecodeUint8(payload []byte) (uint8, error) {
	v, err := strconv.ParseUint(string(payload), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return uint8(v), nil
}

// DecodeString validates payload as UTF-8 text and returns it as a
// string, for String/Data/Currency/Exchange/Country/MultipleValueString/
// and date/time-as-text wire types.
func DecodeString(payload []byte) (string, error) {
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("%w: payload is not valid UTF-8", ErrInvalidString)
	}
	return string(payload), nil
}
