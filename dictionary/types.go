// Package dictionary parses a FIX dictionary XML file into the typed
// intermediate representation consumed by the codegen package. It holds
// no state beyond one Parse call; a Spec is a pure, immutable tree once
// returned (§3.3).
package dictionary

import "fmt"

// WireType is the closed set of FIX wire types a field definition can
// declare (§3.1).
type WireType int

const (
	Boolean WireType = iota
	Char
	Int
	Float
	String
	Seqnum
	Length
	UtcTimestamp
	MonthYear
	DayOfMonth
	UtcDate
	UtcDateOnly
	Date
	UtcTimeOnly
	Time
	Data
	NumInGroup
	Price
	Amount
	Quantity
	Currency
	MultipleValueString
	Exchange
	LocalMarketDate
	PriceOffset
	Percentage
	Country
)

var wireTypeNames = map[WireType]string{
	Boolean:              "BOOLEAN",
	Char:                 "CHAR",
	Int:                  "INT",
	Float:                "FLOAT",
	String:               "STRING",
	Seqnum:               "SEQNUM",
	Length:               "LENGTH",
	UtcTimestamp:         "UTCTIMESTAMP",
	MonthYear:            "MONTHYEAR",
	DayOfMonth:           "DAYOFMONTH",
	UtcDate:              "UTCDATE",
	UtcDateOnly:          "UTCDATEONLY",
	Date:                 "DATE",
	UtcTimeOnly:          "UTCTIMEONLY",
	Time:                 "TIME",
	Data:                 "DATA",
	NumInGroup:           "NUMINGROUP",
	Price:                "PRICE",
	Amount:               "AMT",
	Quantity:             "QTY",
	Currency:             "CURRENCY",
	MultipleValueString:  "MULTIPLEVALUESTRING",
	Exchange:             "EXCHANGE",
	LocalMarketDate:      "LOCALMKTDATE",
	PriceOffset:          "PRICEOFFSET",
	Percentage:           "PERCENTAGE",
	Country:              "COUNTRY",
}

// wireTypeAliases maps every XML spelling (including the explicit
// aliases named in §6.1) to its canonical WireType.
var wireTypeAliases = map[string]WireType{
	"BOOLEAN":              Boolean,
	"CHAR":                 Char,
	"INT":                  Int,
	"FLOAT":                Float,
	"STRING":               String,
	"SEQNUM":               Seqnum,
	"LENGTH":               Length,
	"UTCTIMESTAMP":         UtcTimestamp,
	"MONTHYEAR":            MonthYear,
	"DAYOFMONTH":           DayOfMonth,
	"UTCDATE":              UtcDate,
	"UTCDATEONLY":          UtcDateOnly,
	"DATE":                 Date,
	"UTCTIMEONLY":          UtcTimeOnly,
	"TIME":                 Time,
	"DATA":                 Data,
	"NUMINGROUP":           NumInGroup,
	"PRICE":                Price,
	"AMT":                  Amount,
	"QTY":                  Quantity,
	"CURRENCY":             Currency,
	"MULTIPLEVALUESTRING":  MultipleValueString,
	"EXCHANGE":             Exchange,
	"LOCALMKTDATE":         LocalMarketDate,
	"PRICEOFFSET":          PriceOffset,
	"PERCENTAGE":           Percentage,
	"COUNTRY":              Country,
}

// ParseWireType resolves an XML type= attribute value (case-sensitive,
// uppercase per §6.1) to its WireType, or reports it as unknown.
func ParseWireType(s string) (WireType, error) {
	wt, ok := wireTypeAliases[s]
	if !ok {
		return 0, fmt.Errorf("%w: unknown field type %q", ErrSchema, s)
	}
	return wt, nil
}

func (w WireType) String() string {
	if name, ok := wireTypeNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WireType(%d)", int(w))
}

// SemanticKind buckets a WireType into the representation family
// codegen uses to pick a Go type (§3.1's mapping table): one of "bool",
// "char", "int", "decimal", "float", "string", "daynum".
func (w WireType) SemanticKind() string {
	switch w {
	case Boolean:
		return "bool"
	case Char:
		return "char"
	case Int, Seqnum, Length, NumInGroup:
		return "int"
	case Price, Amount, Quantity, PriceOffset, Percentage:
		return "decimal"
	case Float, UtcTimestamp:
		return "float"
	case DayOfMonth:
		return "daynum"
	default:
		return "string"
	}
}

// enumerableWireTypes is the set of WireTypes §3.1 allows to carry a
// non-empty enum value list.
var enumerableWireTypes = map[WireType]bool{
	String:     true,
	Char:       true,
	Int:        true,
	MultipleValueString: true,
	Boolean:    true,
	NumInGroup: true,
}

// EnumValue is one <value enum=… description=…/> entry on a field
// definition.
type EnumValue struct {
	Wire        string `json:"wire"`
	Description string `json:"description"`
}

// FieldDef is a field definition indexed by its unique tag number
// (§3.1).
type FieldDef struct {
	Name   string      `json:"name"`
	Tag    int         `json:"tag"`
	Type   WireType    `json:"type"`
	Values []EnumValue `json:"values,omitempty"`
}

// HasEnum reports whether this field carries a declared list of enum
// values.
func (f *FieldDef) HasEnum() bool { return len(f.Values) > 0 }

// RefKind discriminates the three Reference variants (§3.1).
type RefKind int

const (
	RefField RefKind = iota
	RefComponent
	RefGroup
)

func (k RefKind) String() string {
	switch k {
	case RefField:
		return "field"
	case RefComponent:
		return "component"
	case RefGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Reference is one entry in an ordered reference container: a field
// use, a component use, or a repeating-group definition. It is modeled
// as a single tagged struct rather than an interface (§9's "tagged sum,
// dispatch at emission time, no inheritance") since there are exactly
// three variants and every consumer dispatches on Kind.
type Reference struct {
	Kind     RefKind     `json:"kind"`
	Name     string      `json:"name"`
	Required bool        `json:"required"`
	Members  []Reference `json:"members,omitempty"` // only set when Kind == RefGroup
}

// Category distinguishes administrative from application messages
// (msgcat in the XML).
type Category int

const (
	Admin Category = iota
	App
)

func (c Category) String() string {
	if c == Admin {
		return "Admin"
	}
	return "App"
}

// Component is a named, reusable ordered reference list (§3.1).
type Component struct {
	Name string      `json:"name"`
	Refs []Reference `json:"refs"`
}

// MessageDef is one message definition: a name, its wire msgtype, a
// category, and its ordered message-specific references (the header and
// trailer members are implicit and not part of Refs; see §4.3.2).
type MessageDef struct {
	Name     string      `json:"name"`
	MsgType  string      `json:"msgType"`
	Category Category    `json:"category"`
	Refs     []Reference `json:"refs"`
}

// Version is the dictionary's (major, minor, servicepack) triple,
// carried for reference only (§3.1).
type Version struct {
	Major       int `json:"major"`
	Minor       int `json:"minor"`
	ServicePack int `json:"servicepack"`
}

// Spec is the parsed, resolved dictionary IR (§3.1). It is a pure value:
// once Parse/ParseReader returns one, nothing in this package mutates
// it further.
type Spec struct {
	Version    Version               `json:"version"`
	FIXType    string                `json:"fixType"`
	Header     []Reference           `json:"header"`
	Trailer    []Reference           `json:"trailer"`
	Components map[string]*Component `json:"components"`
	Messages   []*MessageDef         `json:"messages"`
	Fields     map[int]*FieldDef     `json:"fields"`

	fieldsByName map[string]*FieldDef
}

// FieldByTag looks up a field definition by its tag number.
func (s *Spec) FieldByTag(tag int) (*FieldDef, bool) {
	f, ok := s.Fields[tag]
	return f, ok
}

// FieldByName looks up a field definition by its unique name.
func (s *Spec) FieldByName(name string) (*FieldDef, bool) {
	f, ok := s.fieldsByName[name]
	return f, ok
}

// ComponentByName looks up a component definition by its unique name.
func (s *Spec) ComponentByName(name string) (*Component, bool) {
	c, ok := s.Components[name]
	return c, ok
}
