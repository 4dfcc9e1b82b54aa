package codegen

import (
	"fmt"
	"sort"

	"github.com/arthurlm/fixgen/dictionary"
)

// FieldData is the template-facing view of one field definition
// (§4.3.1).
type FieldData struct {
	GoName       string
	Tag          int
	IsEnum       bool
	SemanticKind string // bool, char, int, decimal, float, string, daynum
	GoType       string // the field's underlying Go value type
	Variants     []EnumVariantData

	// EncodeBody and DecodeBody are the already-rendered bodies of the
	// field's Encode/Decode methods for a non-enum field. Precomputing
	// these here keeps the template itself free of a kind-dispatch
	// conditional chain.
	EncodeBody string
	DecodeBody string
}

// EnumVariantData is one <value> entry of an enumerated field.
type EnumVariantData struct {
	GoName string
	Wire   string
}

// MemberData is one member of a record (header/trailer/component/
// message) or one variant of a repeating-group entry (§4.3.2, §4.3.3).
type MemberData struct {
	GoName      string // Go struct field name
	TypeName    string // Go type of this member
	Required    bool
	IsGroup     bool
	IsComponent bool

	// Tag is this member's own wire tag for a plain field, or the
	// NumInGroup field's tag for a group. Unused for components, which
	// have no tag of their own.
	Tag int

	// StartTags is the set of tags whose presence on the wire signals
	// this member is present, used only for optional components: a
	// component is itself transparent, so presence is decided by
	// whichever tag its own first member would start with.
	StartTags []int
}

// RecordData is one header, trailer, component, or message record
// (§4.3.2).
type RecordData struct {
	Name        string
	Members     []MemberData
	IsMessage   bool
	MessageDest string // "Admin" or "App", only set when IsMessage
	MessageType string // wire msgtype, only set when IsMessage
	EncodeBody  string
	DecodeBody  string
}

// GroupData is one repeating-group tagged union (§4.3.3): a slice type
// over an entry struct, plus the entry's own Encode body. There is no
// entry Decode: see MessageCodec's doc comment.
type GroupData struct {
	Name       string
	Variants   []MemberData
	EncodeBody string // entry's Encode() []byte body
}

// FileData is everything the field and message templates need for one
// dictionary.
type FileData struct {
	Package      string
	Stem         string
	Version      dictionary.Version
	Fields       []FieldData
	Header       *RecordData
	Trailer      *RecordData
	Components   []RecordData
	Messages     []RecordData
	Groups       []GroupData
	NeedsDecimal bool
}

// BuildFileData walks a resolved dictionary.Spec and produces the
// template data for both generated files plus the JSON dump stem.
func BuildFileData(spec *dictionary.Spec, pkg, stem string) (*FileData, error) {
	fd := &FileData{Package: pkg, Stem: stem, Version: spec.Version}

	tags := make([]int, 0, len(spec.Fields))
	for tag := range spec.Fields {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	for _, tag := range tags {
		field := spec.Fields[tag]
		data, err := buildFieldData(field)
		if err != nil {
			return nil, err
		}
		if data.SemanticKind == "decimal" {
			fd.NeedsDecimal = true
		}
		fd.Fields = append(fd.Fields, data)
	}

	var groups []GroupData

	headerRefs := excludeEnvelopeOwnedRefs(spec.Header, spec, envelopeHeaderTags)
	if len(headerRefs) > 0 {
		members, err := buildMembers("MessageHeader", headerRefs, spec, &groups)
		if err != nil {
			return nil, err
		}
		fd.Header = &RecordData{
			Name:       "MessageHeader",
			Members:    members,
			EncodeBody: renderRecordEncode(members),
			DecodeBody: renderRecordDecode(members),
		}
	}

	trailerRefs := excludeEnvelopeOwnedRefs(spec.Trailer, spec, envelopeTrailerTags)
	if len(spec.Trailer) > 0 {
		members, err := buildMembers("MessageTrailer", trailerRefs, spec, &groups)
		if err != nil {
			return nil, err
		}
		fd.Trailer = &RecordData{
			Name:       "MessageTrailer",
			Members:    members,
			EncodeBody: renderRecordEncode(members),
			DecodeBody: renderRecordDecode(members),
		}
	}

	compNames := make([]string, 0, len(spec.Components))
	for name := range spec.Components {
		compNames = append(compNames, name)
	}
	sort.Strings(compNames)
	for _, name := range compNames {
		comp := spec.Components[name]
		goName := SanitizeIdent(name)
		members, err := buildMembers(goName, comp.Refs, spec, &groups)
		if err != nil {
			return nil, err
		}
		fd.Components = append(fd.Components, RecordData{
			Name:       goName,
			Members:    members,
			EncodeBody: renderRecordEncode(members),
			DecodeBody: renderRecordDecode(members),
		})
	}

	for _, msg := range spec.Messages {
		goName := MessageTypeName(msg.Name)
		members, err := buildMembers(goName, msg.Refs, spec, &groups)
		if err != nil {
			return nil, err
		}
		fd.Messages = append(fd.Messages, RecordData{
			Name:        goName,
			Members:     members,
			IsMessage:   true,
			MessageDest: msg.Category.String(),
			MessageType: msg.MsgType,
			EncodeBody:  renderRecordEncode(members),
			DecodeBody:  renderRecordDecode(members),
		})
	}

	fd.Groups = groups
	return fd, nil
}

func buildFieldData(field *dictionary.FieldDef) (FieldData, error) {
	data := FieldData{
		GoName:       SanitizeIdent(field.Name),
		Tag:          field.Tag,
		IsEnum:       field.HasEnum(),
		SemanticKind: field.Type.SemanticKind(),
		GoType:       goTypeForKind(field.Type.SemanticKind()),
	}

	if !data.IsEnum {
		data.EncodeBody, data.DecodeBody = fieldCodeBodies(data.Tag, data.SemanticKind)
		return data, nil
	}

	seen := make(map[string]bool, len(field.Values))
	for _, v := range field.Values {
		name := EnumVariantName(v.Description)
		if seen[name] {
			return data, fmt.Errorf("field %q: two enum values derive the same variant name %q", field.Name, name)
		}
		seen[name] = true
		data.Variants = append(data.Variants, EnumVariantData{GoName: name, Wire: v.Wire})
	}
	return data, nil
}

// fieldCodeBodies renders the Encode/Decode method bodies for a
// non-enum scalar field of the given semantic kind (§4.3.1).
func fieldCodeBodies(tag int, kind string) (encode, decode string) {
	switch kind {
	case "bool":
		return fmt.Sprintf("return fix.EncodeText(%d, fix.EncodeBool(f.Value))", tag),
			`v, err := fix.DecodeBool(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil`

	case "char":
		return fmt.Sprintf("return fix.EncodeText(%d, string(rune(f.Value)))", tag),
			`v, err := fix.DecodeChar(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil`

	case "int":
		return fmt.Sprintf("return fix.EncodeText(%d, fix.FormatInt(f.Value))", tag),
			`v, err := fix.DecodeInt(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil`

	case "decimal":
		return fmt.Sprintf("return fix.EncodeText(%d, f.Value.String())", tag),
			`v, err := decimal.NewFromString(string(payload))
	if err != nil {
		return fix.WrapInvalidData(err)
	}
	f.Value = v
	return nil`

	case "float":
		return fmt.Sprintf("return fix.EncodeText(%d, fix.FormatFloat(f.Value))", tag),
			`v, err := fix.DecodeFloat(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil`

	case "daynum":
		return fmt.Sprintf("return fix.EncodeText(%d, fix.FormatUint8(f.Value))", tag),
			`v, err := fix.DecodeUint8(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil`

	default: // string
		return fmt.Sprintf("return fix.EncodeText(%d, f.Value)", tag),
			`v, err := fix.DecodeString(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil`
	}
}

func goTypeForKind(kind string) string {
	switch kind {
	case "bool":
		return "bool"
	case "char":
		return "byte"
	case "int":
		return "int64"
	case "decimal":
		return "decimal.Decimal"
	case "float":
		return "float64"
	case "daynum":
		return "uint8"
	default:
		return "string"
	}
}

// buildMembers walks an ordered reference container belonging to the
// record named parentGoName, registering any nested repeating-group
// union it finds into *groups (§4.3.2, §4.3.3). Each resulting
// MemberData carries enough to render that member's slice of the
// parent's Encode/Decode bodies: its own tag (field, or a group's
// count field) or, for a component, the tag set that signals its
// presence.
func buildMembers(parentGoName string, refs []dictionary.Reference, spec *dictionary.Spec, groups *[]GroupData) ([]MemberData, error) {
	members := make([]MemberData, 0, len(refs))
	for _, ref := range refs {
		switch ref.Kind {
		case dictionary.RefField:
			field, ok := spec.FieldByName(ref.Name)
			if !ok {
				return nil, fmt.Errorf("internal error: unresolved field reference %q", ref.Name)
			}
			members = append(members, MemberData{
				GoName:   SanitizeIdent(field.Name),
				TypeName: SanitizeIdent(field.Name),
				Required: ref.Required,
				Tag:      field.Tag,
			})

		case dictionary.RefComponent:
			comp, ok := spec.ComponentByName(ref.Name)
			if !ok {
				return nil, fmt.Errorf("internal error: unresolved component reference %q", ref.Name)
			}
			startTags := refStartTags(comp.Refs, spec)
			members = append(members, MemberData{
				GoName:      SanitizeIdent(ref.Name),
				TypeName:    SanitizeIdent(ref.Name),
				Required:    ref.Required,
				IsComponent: true,
				StartTags:   startTags,
			})

		case dictionary.RefGroup:
			countField, ok := spec.FieldByName(ref.Name)
			if !ok {
				return nil, fmt.Errorf("internal error: unresolved group count field %q", ref.Name)
			}
			groupTypeName := GroupTypeName(parentGoName, SanitizeIdent(ref.Name))
			variants, err := buildMembers(groupTypeName, ref.Members, spec, groups)
			if err != nil {
				return nil, err
			}
			*groups = append(*groups, GroupData{
				Name:       groupTypeName,
				Variants:   variants,
				EncodeBody: renderRecordEncode(variants),
			})

			members = append(members, MemberData{
				GoName:   SanitizeIdent(ref.Name),
				TypeName: groupTypeName,
				Required: ref.Required,
				IsGroup:  true,
				Tag:      countField.Tag,
			})
		}
	}
	return members, nil
}

// envelopeHeaderTags and envelopeTrailerTags name the standard header/
// trailer fields the Envelope builder owns (§4.4.4): BeginString and
// BodyLength are framing the envelope computes itself, and CheckSum is
// the envelope's own trailing field. A dictionary conventionally lists
// all three as ordinary header/trailer fields; codegen drops them from
// the generated MessageHeader/MessageTrailer record so they are never
// encoded twice.
var (
	envelopeHeaderTags  = map[int]bool{8: true, 9: true}
	envelopeTrailerTags = map[int]bool{10: true}
)

// excludeEnvelopeOwnedRefs drops any field reference in refs whose tag
// appears in owned.
func excludeEnvelopeOwnedRefs(refs []dictionary.Reference, spec *dictionary.Spec, owned map[int]bool) []dictionary.Reference {
	out := make([]dictionary.Reference, 0, len(refs))
	for _, ref := range refs {
		if ref.Kind == dictionary.RefField {
			if f, ok := spec.FieldByName(ref.Name); ok && owned[f.Tag] {
				continue
			}
		}
		out = append(out, ref)
	}
	return out
}

// refStartTags returns the tag set that signals the first entry of
// refs is present on the wire: a field or group's own tag, or (for a
// component, which has none of its own) the start tags of whichever
// reference leads its own member list. Dictionaries define components
// as a fixed, ordered member list, so the component's leading member
// is always the first thing that would appear for it on the wire.
func refStartTags(refs []dictionary.Reference, spec *dictionary.Spec) []int {
	if len(refs) == 0 {
		return nil
	}
	first := refs[0]
	switch first.Kind {
	case dictionary.RefField, dictionary.RefGroup:
		if f, ok := spec.FieldByName(first.Name); ok {
			return []int{f.Tag}
		}
		return nil
	case dictionary.RefComponent:
		if c, ok := spec.ComponentByName(first.Name); ok {
			return refStartTags(c.Refs, spec)
		}
		return nil
	default:
		return nil
	}
}
