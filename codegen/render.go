package codegen

import (
	"fmt"
	"strings"
)

// renderRecordEncode builds the body of a record's Encode() []byte
// method: every member's wire encoding, concatenated in declaration
// order (§4.3.2, §4.4.2). A repeating-group member encodes its count
// field followed by every entry's own encoding, in slice order.
func renderRecordEncode(members []MemberData) string {
	var b strings.Builder
	b.WriteString("var out []byte\n")
	for _, m := range members {
		switch {
		case m.IsGroup:
			fmt.Fprintf(&b, `	if len(f.%s) > 0 {
		out = append(out, fix.EncodeText(%d, fix.FormatInt(int64(len(f.%s))))...)
		for _, entry := range f.%s {
			out = append(out, entry.Encode()...)
		}
	}
`, m.GoName, m.Tag, m.GoName, m.GoName)

		case m.Required:
			fmt.Fprintf(&b, "	out = append(out, f.%s.Encode()...)\n", m.GoName)

		default:
			fmt.Fprintf(&b, `	if f.%s != nil {
		out = append(out, f.%s.Encode()...)
	}
`, m.GoName, m.GoName)
		}
	}
	b.WriteString("	return out\n")
	return b.String()
}

// renderRecordDecode builds the body of a record's Decode(tags
// fix.TagMap) error method: each declared member is pulled out of tags
// by its own tag (§4.3.4, §4.4.2).
//
// A group member's entries cannot be reconstructed from tags — a
// repeated tag has already collapsed to its last occurrence by the
// time Split built the map (§9's open question; see DESIGN.md). Decode
// only confirms a required group's count field is present and leaves
// the slice at its zero value; Encode is where group support is
// complete.
func renderRecordDecode(members []MemberData) string {
	var b strings.Builder
	b.WriteString("var errs fix.FixParseError\n")
	for _, m := range members {
		switch {
		case m.IsGroup:
			if m.Required {
				fmt.Fprintf(&b, `	if _, ok := tags[%d]; !ok {
		errs.Add(&fix.FieldError{Tag: %d, Kind: fix.ErrInvalidData})
	}
`, m.Tag, m.Tag)
			}

		case m.IsComponent:
			cond := tagsPresenceExpr(m.StartTags)
			if m.Required {
				fmt.Fprintf(&b, `	f.%s = new(%s)
	if err := f.%s.Decode(tags); err != nil {
		errs.Add(&fix.FieldError{Kind: fix.ErrInvalidData, Cause: err})
	}
`, m.GoName, m.TypeName, m.GoName)
			} else if cond != "" {
				fmt.Fprintf(&b, `	if %s {
		f.%s = new(%s)
		if err := f.%s.Decode(tags); err != nil {
			errs.Add(&fix.FieldError{Kind: fix.ErrInvalidData, Cause: err})
		}
	}
`, cond, m.GoName, m.TypeName, m.GoName)
			}

		case m.Required:
			fmt.Fprintf(&b, `	if payload, ok := tags[%d]; ok {
		f.%s = %s{}
		if err := f.%s.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: %d, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	} else {
		errs.Add(&fix.FieldError{Tag: %d, Kind: fix.ErrInvalidData})
	}
`, m.Tag, m.GoName, m.TypeName, m.GoName, m.Tag, m.Tag)

		default:
			fmt.Fprintf(&b, `	if payload, ok := tags[%d]; ok {
		f.%s = new(%s)
		if err := f.%s.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: %d, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	}
`, m.Tag, m.GoName, m.TypeName, m.GoName, m.Tag)
		}
	}
	b.WriteString("	return errs.OrNil()\n")
	return b.String()
}

func tagsPresenceExpr(tags []int) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = fmt.Sprintf("fix.TagPresent(tags, %d)", t)
	}
	return strings.Join(parts, " || ")
}
