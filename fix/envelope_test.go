package fix

import "testing"

func TestEnvelopeEmptyBodyDefaultBeginString(t *testing.T) {
	got := string(Wrap(nil))
	want := "8=FIX.4.4\x019=0\x0110=200\x01"
	if got != want {
		t.Errorf("Wrap(nil) = %q, want %q", got, want)
	}
}

func TestEnvelopeWithBody(t *testing.T) {
	body := "5=foo\x019=bar\x01"
	got := string(Wrap([]byte(body)))
	want := "8=FIX.4.4\x019=12\x015=foo\x019=bar\x0110=094\x01"
	if got != want {
		t.Errorf("Wrap(%q) = %q, want %q", body, got, want)
	}
}

func TestEnvelopeCustomBeginString(t *testing.T) {
	e := Envelope{BeginString: "FIXT.1.1"}
	got := string(e.Wrap(nil))
	want := "8=FIXT.1.1\x019=0\x0110=022\x01"
	if got != want {
		t.Errorf("Wrap(nil) with custom begin string = %q, want %q", got, want)
	}
}

func TestEnvelopeHeartbeat(t *testing.T) {
	body := "35=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x01"
	got := string(Wrap([]byte(body)))
	want := "8=FIX.4.4\x019=63\x0135=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x0110=240\x01"
	if got != want {
		t.Errorf("Wrap(heartbeat) = %q, want %q", got, want)
	}
}

func TestEnvelopeHeartbeatWithTrailer(t *testing.T) {
	body := "35=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x0193=8\x0189=arthurlm\x01"
	got := string(Wrap([]byte(body)))
	want := "8=FIX.4.4\x019=80\x0135=0\x0149=BROKER\x0156=MARKET\x0134=23593\x0152=1618082857.9780622\x011128=4\x0193=8\x0189=arthurlm\x0110=239\x01"
	if got != want {
		t.Errorf("Wrap(heartbeat with trailer) = %q, want %q", got, want)
	}
}
