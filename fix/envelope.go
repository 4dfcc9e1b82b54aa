package fix

import "fmt"

// DefaultBeginString is the BeginString (tag 8) used when an Envelope
// does not override it.
const DefaultBeginString = "FIX.4.4"

// Envelope wraps an already-encoded message body with the three framing
// fields every FIX message carries: BeginString (8), BodyLength (9) and
// CheckSum (10). The zero value is ready to use and defaults BeginString
// to DefaultBeginString.
type Envelope struct {
	// BeginString overrides the protocol version marker. Empty means
	// DefaultBeginString.
	BeginString string
}

func (e Envelope) beginString() string {
	if e.BeginString == "" {
		return DefaultBeginString
	}
	return e.BeginString
}

// Wrap produces "8=<begin>\x019=<len(body)>\x01<body>10=<ccc>\x01" where
// <ccc> is the three-digit zero-padded sum, modulo 256, of every byte
// from the start of tag 8 through the SOH preceding tag 10 — i.e. the
// header plus body, excluding the CheckSum field itself. body is assumed
// to already end in SOH, as a MessageCodec.Encode always produces; Wrap
// does not add a missing trailing SOH (§9, checksum-over-header note).
func Wrap(body []byte) []byte {
	return Envelope{}.Wrap(body)
}

// Wrap is the instance form of the package-level Wrap, honoring a
// non-default BeginString.
func (e Envelope) Wrap(body []byte) []byte {
	header := fmt.Sprintf("8=%s\x019=%d\x01", e.beginString(), len(body))

	sum := 0
	for i := 0; i < len(header); i++ {
		sum += int(header[i])
	}
	for i := 0; i < len(body); i++ {
		sum += int(body[i])
	}

	out := make([]byte, 0, len(header)+len(body)+8)
	out = append(out, header...)
	out = append(out, body...)
	out = fmt.Appendf(out, "10=%03d\x01", sum%256)
	return out
}
