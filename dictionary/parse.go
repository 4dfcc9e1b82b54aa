package dictionary

import (
	"fmt"
	"io"
	"os"

	"github.com/speedata/cxpath"
)

// Parse opens the dictionary XML file at path and parses it into a
// resolved Spec (§4.1).
func Parse(path string) (*Spec, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(path, "cannot open dictionary file: %w", err)
	}
	defer func() { _ = r.Close() }()

	return ParseReader(r, path)
}

// ParseReader parses a dictionary XML document from r. sourceName is
// carried into every error for diagnostics (a cxpath context has no
// notion of the underlying file path).
func ParseReader(r io.Reader, sourceName string) (*Spec, error) {
	ctx, err := cxpath.NewFromReader(r)
	if err != nil {
		return nil, xmlErrorf(sourceName, "cannot read dictionary xml: %w", err)
	}

	root := ctx.Root()
	if name := root.Eval("name()").String(); name != "fix" {
		return nil, xmlErrorf(sourceName, "root element is %q, want <fix>", name)
	}

	spec := &Spec{
		Version: Version{
			Major:       root.Eval("@major").Int(),
			Minor:       root.Eval("@minor").Int(),
			ServicePack: root.Eval("@servicepack").Int(),
		},
		FIXType:    root.Eval("@type").String(),
		Components: make(map[string]*Component),
		Fields:     make(map[int]*FieldDef),
	}

	for section := range root.Each("*") {
		name := section.Eval("name()").String()
		switch name {
		case "header":
			refs, err := parseRefs(section, sourceName)
			if err != nil {
				return nil, err
			}
			spec.Header = refs

		case "trailer":
			refs, err := parseRefs(section, sourceName)
			if err != nil {
				return nil, err
			}
			spec.Trailer = refs

		case "components":
			if err := parseComponents(section, spec, sourceName); err != nil {
				return nil, err
			}

		case "messages":
			if err := parseMessages(section, spec, sourceName); err != nil {
				return nil, err
			}

		case "fields":
			if err := parseFields(section, spec, sourceName); err != nil {
				return nil, err
			}

		default:
			return nil, schemaErrorf(sourceName, "unexpected top-level element <%s>", name)
		}
	}

	if spec.Messages == nil {
		return nil, schemaErrorf(sourceName, "dictionary has no <messages> section")
	}
	if len(spec.Fields) == 0 {
		return nil, schemaErrorf(sourceName, "dictionary has no <fields> section")
	}

	if err := resolve(spec, sourceName); err != nil {
		return nil, err
	}

	return spec, nil
}

func parseComponents(section *cxpath.Context, spec *Spec, sourceName string) error {
	for comp := range section.Each("component") {
		name := comp.Eval("@name").String()
		if name == "" {
			return schemaErrorf(sourceName, "<component> is missing required attribute \"name\"")
		}
		if _, dup := spec.Components[name]; dup {
			return schemaErrorf(sourceName, "duplicate component name %q", name)
		}

		refs, err := parseRefs(comp, sourceName)
		if err != nil {
			return err
		}
		spec.Components[name] = &Component{Name: name, Refs: refs}
	}
	return nil
}

func parseMessages(section *cxpath.Context, spec *Spec, sourceName string) error {
	seen := make(map[string]bool)
	for msg := range section.Each("message") {
		name := msg.Eval("@name").String()
		if name == "" {
			return schemaErrorf(sourceName, "<message> is missing required attribute \"name\"")
		}
		if seen[name] {
			return schemaErrorf(sourceName, "duplicate message name %q", name)
		}
		seen[name] = true

		msgType := msg.Eval("@msgtype").String()
		if msgType == "" {
			return schemaErrorf(sourceName, "message %q is missing required attribute \"msgtype\"", name)
		}

		cat, err := parseCategory(msg.Eval("@msgcat").String(), name, sourceName)
		if err != nil {
			return err
		}

		refs, err := parseRefs(msg, sourceName)
		if err != nil {
			return err
		}

		spec.Messages = append(spec.Messages, &MessageDef{
			Name:     name,
			MsgType:  msgType,
			Category: cat,
			Refs:     refs,
		})
	}
	return nil
}

func parseCategory(raw, msgName, sourceName string) (Category, error) {
	switch raw {
	case "admin":
		return Admin, nil
	case "app", "":
		return App, nil
	default:
		return 0, schemaErrorf(sourceName, "message %q has unknown msgcat %q", msgName, raw)
	}
}

func parseFields(section *cxpath.Context, spec *Spec, sourceName string) error {
	for field := range section.Each("field") {
		name := field.Eval("@name").String()
		if name == "" {
			return schemaErrorf(sourceName, "<field> is missing required attribute \"name\"")
		}

		tag := field.Eval("@number").Int()
		if tag <= 0 {
			return schemaErrorf(sourceName, "field %q has invalid tag number %d", name, tag)
		}

		rawType := field.Eval("@type").String()
		wt, err := ParseWireType(rawType)
		if err != nil {
			return schemaErrorf(sourceName, "field %q: %w", name, err)
		}

		if _, dup := spec.Fields[tag]; dup {
			return schemaErrorf(sourceName, "duplicate field tag %d (field %q)", tag, name)
		}
		if spec.fieldsByName == nil {
			spec.fieldsByName = make(map[string]*FieldDef)
		}
		if _, dup := spec.fieldsByName[name]; dup {
			return schemaErrorf(sourceName, "duplicate field name %q", name)
		}

		var values []EnumValue
		for v := range field.Each("value") {
			values = append(values, EnumValue{
				Wire:        v.Eval("@enum").String(),
				Description: v.Eval("@description").String(),
			})
		}

		if len(values) > 0 && !enumerableWireTypes[wt] {
			return schemaErrorf(sourceName, "field %q has enum values but wire type %s is not enumerable", name, wt)
		}

		fd := &FieldDef{Name: name, Tag: tag, Type: wt, Values: values}
		spec.Fields[tag] = fd
		spec.fieldsByName[name] = fd
	}
	return nil
}

// parseRefs walks the heterogeneous children of an ordered reference
// container, preserving document order (§3.1, §4.1): each child is a
// <field>, <component>, or <group> element.
func parseRefs(ctx *cxpath.Context, sourceName string) ([]Reference, error) {
	var refs []Reference
	for child := range ctx.Each("*") {
		name := child.Eval("name()").String()

		refName := child.Eval("@name").String()
		if refName == "" {
			return nil, schemaErrorf(sourceName, "<%s> is missing required attribute \"name\"", name)
		}
		required := child.Eval("@required").String() == "Y"

		switch name {
		case "field":
			refs = append(refs, Reference{Kind: RefField, Name: refName, Required: required})

		case "component":
			refs = append(refs, Reference{Kind: RefComponent, Name: refName, Required: required})

		case "group":
			members, err := parseRefs(child, sourceName)
			if err != nil {
				return nil, err
			}
			refs = append(refs, Reference{Kind: RefGroup, Name: refName, Required: required, Members: members})

		default:
			return nil, schemaErrorf(sourceName, "unexpected element <%s> inside reference container", name)
		}
	}
	return refs, nil
}

// resolve validates the cross-reference invariants of §3.2: every
// reference must name a symbol defined in this dictionary, and no
// top-level container may use the same field/component name twice.
func resolve(spec *Spec, sourceName string) error {
	check := func(context string, refs []Reference) error {
		return checkRefs(spec, context, refs, sourceName)
	}

	if err := check("header", spec.Header); err != nil {
		return err
	}
	if err := check("trailer", spec.Trailer); err != nil {
		return err
	}
	for name, comp := range spec.Components {
		if err := check(fmt.Sprintf("component %q", name), comp.Refs); err != nil {
			return err
		}
	}
	for _, msg := range spec.Messages {
		if err := check(fmt.Sprintf("message %q", msg.Name), msg.Refs); err != nil {
			return err
		}
	}
	return nil
}

func checkRefs(spec *Spec, context string, refs []Reference, sourceName string) error {
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref.Kind != RefGroup {
			if seen[ref.Name] {
				return schemaErrorf(sourceName, "%s: %s %q used twice at the same level", context, ref.Kind, ref.Name)
			}
			seen[ref.Name] = true
		}

		switch ref.Kind {
		case RefField:
			if _, ok := spec.fieldsByName[ref.Name]; !ok {
				return schemaErrorf(sourceName, "%s: reference to undefined field %q", context, ref.Name)
			}
		case RefComponent:
			comp, ok := spec.Components[ref.Name]
			if !ok {
				return schemaErrorf(sourceName, "%s: reference to undefined component %q", context, ref.Name)
			}
			_ = comp
		case RefGroup:
			if _, ok := spec.fieldsByName[ref.Name]; !ok {
				return schemaErrorf(sourceName, "%s: group %q has no matching NumInGroup field definition", context, ref.Name)
			}
			if err := checkRefs(spec, context+" group "+ref.Name, ref.Members, sourceName); err != nil {
				return err
			}
		}
	}
	return nil
}
