package codegen

import "text/template"

// fieldsTemplateSrc renders <stem>_fields.go: one type per dictionary
// field, each implementing fix.FieldCodec (§4.3.1).
const fieldsTemplateSrc = `// Code generated by fixgen from {{.Stem}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/arthurlm/fixgen/fix"
{{if .NeedsDecimal}}	"github.com/shopspring/decimal"
{{end}})
{{range $field := .Fields}}
{{if .IsEnum}}
// {{.GoName}} is FIX tag {{.Tag}}, a closed set of wire values.
type {{.GoName}} string

const (
{{range .Variants}}	{{$field.GoName}}{{.GoName}} {{$field.GoName}} = "{{.Wire}}"
{{end}})

// Tag returns {{.Tag}}.
func ({{.GoName}}) Tag() int { return {{.Tag}} }

// Encode renders f's wire value.
func (f {{.GoName}}) Encode() []byte {
	return fix.EncodeText({{.Tag}}, string(f))
}

// Decode accepts payload only if it matches one of this field's known
// wire values.
func (f *{{.GoName}}) Decode(payload []byte) error {
	switch {{.GoName}}(payload) {
{{range .Variants}}	case {{$field.GoName}}{{.GoName}}:
{{end}}		*f = {{.GoName}}(payload)
		return nil
	default:
		return fix.EnumDecodeError({{.Tag}}, payload)
	}
}
{{else}}
// {{.GoName}} is FIX tag {{.Tag}}.
type {{.GoName}} struct {
	Value {{.GoType}}
}

// Tag returns {{.Tag}}.
func ({{.GoName}}) Tag() int { return {{.Tag}} }

// Encode renders f's wire value.
func (f {{.GoName}}) Encode() []byte {
	{{.EncodeBody}}
}

// Decode parses payload into f.
func (f *{{.GoName}}) Decode(payload []byte) error {
	{{.DecodeBody}}
}
{{end}}
{{end}}
`

// memberFieldSrc renders one struct field per member of a record or
// group entry, ranging over a []MemberData; shared by recordTemplateSrc
// and groupTemplateSrc below.
const memberFieldSrc = `{{range .}}{{if .IsGroup}}	{{.GoName}} {{.TypeName}}
{{else if .IsComponent}}	{{.GoName}} *{{.TypeName}}
{{else if .Required}}	{{.GoName}} {{.TypeName}}
{{else}}	{{.GoName}} *{{.TypeName}}
{{end}}{{end}}`

// recordTemplateSrc renders one record struct (header, trailer,
// component, or message) and its MessageCodec methods (§4.3.2).
const recordTemplateSrc = `
// {{.Name}} is a generated record.
type {{.Name}} struct {
{{with .Members}}` + memberFieldSrc + `{{end}}}

// Encode renders every present member in declaration order.
func (f *{{.Name}}) Encode() []byte {
	{{.EncodeBody}}
}

// Decode reads every member this record knows about out of tags.
func (f *{{.Name}}) Decode(tags fix.TagMap) error {
	{{.DecodeBody}}
}
{{if .IsMessage}}
// MsgType returns the wire value of tag 35 for this message.
func ({{.Name}}) MsgType() string { return "{{.MessageType}}" }

// Dest reports whether this message is session-administrative or
// application-level.
func ({{.Name}}) Dest() fix.MessageDest { return fix.Dest{{.MessageDest}} }
{{end}}
`

// groupTemplateSrc renders one repeating-group tagged union: an entry
// struct plus a slice type over it (§4.3.3).
const groupTemplateSrc = `
// {{.Name}}Entry is one repetition of the {{.Name}} repeating group.
type {{.Name}}Entry struct {
{{with .Variants}}` + memberFieldSrc + `{{end}}}

// Encode renders every present member of this entry in declaration
// order. There is no matching Decode: a repeating group's entries
// cannot be recovered from a TagMap once Split has collapsed their
// repeated tags to one occurrence each (§9; see DESIGN.md).
func (f *{{.Name}}Entry) Encode() []byte {
	{{.EncodeBody}}
}

// {{.Name}} is the repeating-group union itself: zero or more entries.
type {{.Name}} []{{.Name}}Entry
`

var (
	fieldsTemplate = template.Must(template.New("fields").Parse(fieldsTemplateSrc))
	recordTemplate = template.Must(template.New("record").Parse(recordTemplateSrc))
	groupTemplate  = template.Must(template.New("group").Parse(groupTemplateSrc))
)
