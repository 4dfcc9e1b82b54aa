package codegen

import "testing"

func TestSanitizeIdent(t *testing.T) {
	tests := map[string]string{
		"type":    "type_",
		"range":   "range_",
		"MsgType": "MsgType",
		"Symbol":  "Symbol",
	}
	for in, want := range tests {
		if got := SanitizeIdent(in); got != want {
			t.Errorf("SanitizeIdent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpperCamel(t *testing.T) {
	tests := map[string]string{
		"BUY":        "Buy",
		"NOT_HELD":   "NotHeld",
		"2FACTOR":    "2Factor",
		"FIX50SP2":   "Fix50Sp2",
		"already_ok": "AlreadyOk",
	}
	for in, want := range tests {
		if got := UpperCamel(in); got != want {
			t.Errorf("UpperCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEnumVariantName(t *testing.T) {
	tests := map[string]string{
		"BUY":     "Buy",
		"2FACTOR": "Value2Factor",
	}
	for in, want := range tests {
		if got := EnumVariantName(in); got != want {
			t.Errorf("EnumVariantName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessageTypeName(t *testing.T) {
	if got := MessageTypeName("NewOrderSingle"); got != "MessageNewOrderSingle" {
		t.Errorf("MessageTypeName = %q", got)
	}
}

func TestGroupTypeName(t *testing.T) {
	if got := GroupTypeName("MessageNewOrderSingle", "NoAllocs"); got != "MessageNewOrderSingleNoAllocs" {
		t.Errorf("GroupTypeName = %q", got)
	}
}
