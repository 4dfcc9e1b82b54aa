package codegen

import (
	"os"
	"strings"
	"testing"

	"github.com/arthurlm/fixgen/dictionary"
)

func loadSample(t *testing.T) *dictionary.Spec {
	t.Helper()
	raw, err := os.ReadFile("../testdata/dictionaries/sample.xml")
	if err != nil {
		t.Fatalf("read sample.xml: %v", err)
	}
	spec, err := dictionary.ParseReader(strings.NewReader(string(raw)), "sample.xml")
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	return spec
}

func TestBuildFileDataHeaderDropsEnvelopeTags(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	if fd.Header == nil {
		t.Fatal("expected a header record")
	}
	for _, m := range fd.Header.Members {
		if m.GoName == "BeginString" || m.GoName == "BodyLength" {
			t.Errorf("header member %q should have been excluded as envelope-owned", m.GoName)
		}
	}

	if fd.Trailer == nil {
		t.Fatal("expected a trailer record")
	}
	for _, m := range fd.Trailer.Members {
		if m.GoName == "CheckSum" {
			t.Errorf("trailer member %q should have been excluded as envelope-owned", m.GoName)
		}
	}
}

func TestBuildFileDataComponentStartTags(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	var newOrder *RecordData
	for i := range fd.Messages {
		if fd.Messages[i].Name == "MessageNewOrderSingle" {
			newOrder = &fd.Messages[i]
		}
	}
	if newOrder == nil {
		t.Fatal("expected MessageNewOrderSingle in fd.Messages")
	}

	var instrument *MemberData
	for i := range newOrder.Members {
		if newOrder.Members[i].GoName == "Instrument" {
			instrument = &newOrder.Members[i]
		}
	}
	if instrument == nil {
		t.Fatal("expected an Instrument member")
	}
	if !instrument.IsComponent {
		t.Error("Instrument member should be marked IsComponent")
	}
	if !instrument.Required {
		t.Error("Instrument is required=Y in the dictionary")
	}

	symbol, ok := spec.FieldByName("Symbol")
	if !ok {
		t.Fatal("Symbol field missing from spec")
	}
	if len(instrument.StartTags) != 1 || instrument.StartTags[0] != symbol.Tag {
		t.Errorf("Instrument.StartTags = %v, want [%d]", instrument.StartTags, symbol.Tag)
	}
}

func TestBuildFileDataGroupRegistration(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	if len(fd.Groups) != 1 {
		t.Fatalf("expected exactly one registered group, got %d", len(fd.Groups))
	}
	group := fd.Groups[0]
	if group.Name != "MessageNewOrderSingleNoAllocs" {
		t.Errorf("group.Name = %q, want %q", group.Name, "MessageNewOrderSingleNoAllocs")
	}
	if len(group.Variants) != 2 {
		t.Fatalf("expected 2 group entry members, got %d", len(group.Variants))
	}
	for _, v := range group.Variants {
		if !v.Required {
			t.Errorf("group member %q expected required=Y", v.GoName)
		}
	}
	if group.EncodeBody == "" {
		t.Error("group EncodeBody should not be empty")
	}
}

func TestBuildFileDataEnumField(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	var side *FieldData
	for i := range fd.Fields {
		if fd.Fields[i].GoName == "Side" {
			side = &fd.Fields[i]
		}
	}
	if side == nil {
		t.Fatal("expected a Side field")
	}
	if !side.IsEnum {
		t.Error("Side should be an enum field")
	}
	if len(side.Variants) != 2 {
		t.Fatalf("expected 2 Side variants, got %d", len(side.Variants))
	}
}

func TestBuildFileDataDecimalTriggersImport(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}
	if !fd.NeedsDecimal {
		t.Error("Price is a PRICE-typed field; NeedsDecimal should be true")
	}
}
