package fix44

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arthurlm/fixgen/fix"
)

func encodeHeartbeat(t *testing.T, header *MessageHeader, hb *MessageHeartbeat, trailer *MessageTrailer) []byte {
	t.Helper()
	body := fix.EncodeRecords(header, hb, trailer)
	return fix.Wrap(body)
}

func TestHeartbeatEmptyTrailer(t *testing.T) {
	header := &MessageHeader{
		MsgType:      MsgType{Value: "0"},
		SenderCompID: SenderCompID{Value: "BROKER"},
		TargetCompID: TargetCompID{Value: "MARKET"},
		MsgSeqNum:    MsgSeqNum{Value: 23593},
		SendingTime:  SendingTime{Value: 1618082857.9780622},
	}
	applVerID := ApplVerIDFix42
	header.ApplVerID = &applVerID
	hb := &MessageHeartbeat{}
	trailer := &MessageTrailer{}

	got := string(encodeHeartbeat(t, header, hb, trailer))
	want := "8=FIX.4.4\x019=63\x0135=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x0110=240\x01"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestHeartbeatWithTrailer(t *testing.T) {
	header := &MessageHeader{
		MsgType:      MsgType{Value: "0"},
		SenderCompID: SenderCompID{Value: "BROKER"},
		TargetCompID: TargetCompID{Value: "MARKET"},
		MsgSeqNum:    MsgSeqNum{Value: 23593},
		SendingTime:  SendingTime{Value: 1618082857.9780622},
	}
	applVerID := ApplVerIDFix42
	header.ApplVerID = &applVerID
	hb := &MessageHeartbeat{}
	sigLen := SignatureLength{Value: 8}
	sig := Signature{Value: "arthurlm"}
	trailer := &MessageTrailer{SignatureLength: &sigLen, Signature: &sig}

	got := string(encodeHeartbeat(t, header, hb, trailer))
	want := "8=FIX.4.4\x019=80\x0135=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x0193=8\x0189=arthurlm\x0110=239\x01"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	// Inverse: decode the body back out and check it round-trips to the
	// same typed values (§8.7).
	tags := fix.Split([]byte(
		"35=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x0193=8\x0189=arthurlm\x01",
	))

	var decodedHeader MessageHeader
	if err := decodedHeader.Decode(tags); err != nil {
		t.Fatalf("header decode: %v", err)
	}
	wantHeader := MessageHeader{
		MsgType:      MsgType{Value: "0"},
		SenderCompID: SenderCompID{Value: "BROKER"},
		TargetCompID: TargetCompID{Value: "MARKET"},
		MsgSeqNum:    MsgSeqNum{Value: 23593},
		SendingTime:  SendingTime{Value: 1618082857.9780622},
		ApplVerID:    &applVerID,
	}
	if diff := cmp.Diff(wantHeader, decodedHeader); diff != "" {
		t.Fatalf("decoded header mismatch (-want +got):\n%s", diff)
	}

	var decodedTrailer MessageTrailer
	if err := decodedTrailer.Decode(tags); err != nil {
		t.Fatalf("trailer decode: %v", err)
	}
	wantTrailer := MessageTrailer{SignatureLength: &sigLen, Signature: &sig}
	if diff := cmp.Diff(wantTrailer, decodedTrailer); diff != "" {
		t.Fatalf("decoded trailer mismatch (-want +got):\n%s", diff)
	}
}
