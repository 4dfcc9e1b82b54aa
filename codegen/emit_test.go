package codegen

import (
	"os"
	"strings"
	"testing"

	"github.com/arthurlm/fixgen/dictionary"
)

func TestRenderFieldsContainsEnumAndScalarTypes(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	src, err := renderFields(fd)
	if err != nil {
		t.Fatalf("renderFields: %v", err)
	}
	got := string(src)

	for _, want := range []string{
		"package fix44",
		`"github.com/shopspring/decimal"`,
		"type Side string",
		"SideBuy Side",
		"type MsgSeqNum struct",
		"func (ApplVerID) Tag() int { return 1128 }",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered fields source missing %q\n---\n%s", want, got)
		}
	}
}

func TestRenderMessagesContainsRecordsAndGroup(t *testing.T) {
	spec := loadSample(t)
	fd, err := BuildFileData(spec, "fix44", "sample")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	src, err := renderMessages(fd)
	if err != nil {
		t.Fatalf("renderMessages: %v", err)
	}
	got := string(src)

	for _, want := range []string{
		"type MessageHeader struct",
		"type MessageTrailer struct",
		"type Instrument struct",
		"type MessageHeartbeat struct",
		`func (MessageHeartbeat) MsgType() string { return "0" }`,
		"func (MessageHeartbeat) Dest() fix.MessageDest { return fix.DestAdmin }",
		"type MessageNewOrderSingle struct",
		`func (MessageNewOrderSingle) MsgType() string { return "D" }`,
		"func (MessageNewOrderSingle) Dest() fix.MessageDest { return fix.DestApp }",
		"type MessageNewOrderSingleNoAllocsEntry struct",
		"type MessageNewOrderSingleNoAllocs []MessageNewOrderSingleNoAllocsEntry",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered messages source missing %q\n---\n%s", want, got)
		}
	}

	if strings.Contains(got, "BeginString") {
		t.Error("rendered messages source should never mention BeginString (envelope-owned)")
	}
	if strings.Contains(got, "f.CheckSum") {
		t.Error("rendered messages source should never encode/decode CheckSum itself")
	}
}

func TestRenderCustomDictionary(t *testing.T) {
	raw, err := os.ReadFile("../testdata/dictionaries/custom.xml")
	if err != nil {
		t.Fatalf("read custom.xml: %v", err)
	}
	spec, err := dictionary.ParseReader(strings.NewReader(string(raw)), "custom.xml")
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}

	fd, err := BuildFileData(spec, "customfix", "custom")
	if err != nil {
		t.Fatalf("BuildFileData: %v", err)
	}

	// The custom dictionary declares MsgType in its header, which is not
	// envelope-owned (only BeginString/BodyLength are) and so survives;
	// its trailer's only field is CheckSum, which is envelope-owned and
	// gets excluded, leaving an empty MessageTrailer.
	if fd.Header == nil || len(fd.Header.Members) != 1 {
		t.Errorf("expected a MessageHeader with 1 member (MsgType), got %+v", fd.Header)
	}
	if fd.Trailer == nil || len(fd.Trailer.Members) != 0 {
		t.Errorf("expected an empty MessageTrailer, got %+v", fd.Trailer)
	}

	fieldsSrc, err := renderFields(fd)
	if err != nil {
		t.Fatalf("renderFields: %v", err)
	}
	if !strings.Contains(string(fieldsSrc), "package customfix") {
		t.Error("expected custom package name in generated fields source")
	}

	messagesSrc, err := renderMessages(fd)
	if err != nil {
		t.Fatalf("renderMessages: %v", err)
	}
	if !strings.Contains(string(messagesSrc), "type MessageHeartbeat struct") {
		t.Error("expected MessageHeartbeat in generated messages source")
	}
}

func TestStemOf(t *testing.T) {
	cases := map[string]string{
		"/tmp/FIX44.xml":        "fix44",
		"dictionaries/Custom.XML": "custom",
		"noext":                 "noext",
	}
	for in, want := range cases {
		if got := stemOf(in); got != want {
			t.Errorf("stemOf(%q) = %q, want %q", in, got, want)
		}
	}
}
