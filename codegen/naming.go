package codegen

import (
	"strings"
	"unicode"
)

// goKeywords is the set of identifiers the Go grammar reserves; a field
// or record member whose natural name collides with one of these is
// sanitized (§4.3.1).
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// SanitizeIdent escapes a candidate Go identifier that collides with a
// reserved word by appending a trailing underscore — Go's own
// convention (there is no raw-identifier escape as in some languages) —
// so the emitted field still encodes under its original dictionary tag.
func SanitizeIdent(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}

// tokenize splits a dictionary identifier into alphabetic and numeric
// runs, dropping any other separator (underscore, space, hyphen). This
// is the cross-cutting utility UpperCamel, and through it
// EnumVariantName, builds on.
func tokenize(s string) []string {
	var tokens []string
	var cur []rune
	var curIsDigit bool

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = nil
		}
	}

	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			if i > 0 && !curIsDigit && len(cur) > 0 {
				flush()
			}
			curIsDigit = true
			cur = append(cur, r)
		case unicode.IsLetter(r):
			if i > 0 && curIsDigit && len(cur) > 0 {
				flush()
			}
			curIsDigit = false
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// UpperCamel converts a dictionary name (already UpperCamelCase field
// names, or a looser enum description) into canonical UpperCamelCase:
// each letter-run is title-cased, each digit-run is kept verbatim, and
// non-alphanumeric separators are dropped.
func UpperCamel(s string) string {
	var b strings.Builder
	for _, tok := range tokenize(s) {
		if isAllDigits(tok) {
			b.WriteString(tok)
			continue
		}
		b.WriteString(strings.ToUpper(tok[:1]))
		if len(tok) > 1 {
			b.WriteString(strings.ToLower(tok[1:]))
		}
	}
	return b.String()
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// EnumVariantName derives the Go identifier for one enum value's
// description (§4.3.1): UpperCamelCase of the description, prefixed with
// "Value" when the result does not begin with an ASCII letter (e.g.
// "2FACTOR" → "Value2Factor").
func EnumVariantName(description string) string {
	camel := UpperCamel(description)
	if camel == "" || !isASCIILetter(rune(camel[0])) {
		return "Value" + camel
	}
	return camel
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// MessageTypeName returns the generated record name for a message
// definition (§4.3.2): "Message" + the dictionary's message name.
func MessageTypeName(msgName string) string {
	return "Message" + msgName
}

// GroupTypeName returns the generated tagged-union name for a repeating
// group nested inside record parentName (§4.3.3): "<parent><group>".
func GroupTypeName(parentName, groupName string) string {
	return parentName + groupName
}
