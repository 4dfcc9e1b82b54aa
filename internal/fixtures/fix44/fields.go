// Package fix44 is a small, hand-authored stand-in for what fixgen
// would emit from a minimal FIX.4.4 dictionary covering Heartbeat: it
// lets the fix runtime package be exercised against the seed scenarios
// without running the generator as part of the test suite.
package fix44

import (
	"github.com/arthurlm/fixgen/fix"
)

// MsgType is FIX tag 35.
type MsgType struct {
	Value string
}

func (MsgType) Tag() int { return 35 }

func (f MsgType) Encode() []byte {
	return fix.EncodeText(35, f.Value)
}

func (f *MsgType) Decode(payload []byte) error {
	v, err := fix.DecodeString(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// SenderCompID is FIX tag 49.
type SenderCompID struct {
	Value string
}

func (SenderCompID) Tag() int { return 49 }

func (f SenderCompID) Encode() []byte {
	return fix.EncodeText(49, f.Value)
}

func (f *SenderCompID) Decode(payload []byte) error {
	v, err := fix.DecodeString(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// TargetCompID is FIX tag 56.
type TargetCompID struct {
	Value string
}

func (TargetCompID) Tag() int { return 56 }

func (f TargetCompID) Encode() []byte {
	return fix.EncodeText(56, f.Value)
}

func (f *TargetCompID) Decode(payload []byte) error {
	v, err := fix.DecodeString(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// MsgSeqNum is FIX tag 34.
type MsgSeqNum struct {
	Value int64
}

func (MsgSeqNum) Tag() int { return 34 }

func (f MsgSeqNum) Encode() []byte {
	return fix.EncodeText(34, fix.FormatInt(f.Value))
}

func (f *MsgSeqNum) Decode(payload []byte) error {
	v, err := fix.DecodeInt(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// SendingTime is FIX tag 52, modeled as epoch seconds (§9's open
// timestamp-representation question, preserved rather than resolved).
type SendingTime struct {
	Value float64
}

func (SendingTime) Tag() int { return 52 }

func (f SendingTime) Encode() []byte {
	return fix.EncodeText(52, fix.FormatFloat(f.Value))
}

func (f *SendingTime) Decode(payload []byte) error {
	v, err := fix.DecodeFloat(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// ApplVerID is FIX tag 1128, a closed set of wire values.
type ApplVerID string

const (
	ApplVerIDFix40 ApplVerID = "0"
	ApplVerIDFix41 ApplVerID = "1"
	ApplVerIDFix42 ApplVerID = "4"
	ApplVerIDFix43 ApplVerID = "5"
	ApplVerIDFix44 ApplVerID = "6"
	ApplVerIDFix50 ApplVerID = "7"
)

func (ApplVerID) Tag() int { return 1128 }

func (f ApplVerID) Encode() []byte {
	return fix.EncodeText(1128, string(f))
}

func (f *ApplVerID) Decode(payload []byte) error {
	switch ApplVerID(payload) {
	case ApplVerIDFix40, ApplVerIDFix41, ApplVerIDFix42, ApplVerIDFix43, ApplVerIDFix44, ApplVerIDFix50:
		*f = ApplVerID(payload)
		return nil
	default:
		return fix.EnumDecodeError(1128, payload)
	}
}

// SignatureLength is FIX tag 93.
type SignatureLength struct {
	Value int64
}

func (SignatureLength) Tag() int { return 93 }

func (f SignatureLength) Encode() []byte {
	return fix.EncodeText(93, fix.FormatInt(f.Value))
}

func (f *SignatureLength) Decode(payload []byte) error {
	v, err := fix.DecodeInt(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// Signature is FIX tag 89.
type Signature struct {
	Value string
}

func (Signature) Tag() int { return 89 }

func (f Signature) Encode() []byte {
	return fix.EncodeText(89, f.Value)
}

func (f *Signature) Decode(payload []byte) error {
	v, err := fix.DecodeString(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// TestReqID is FIX tag 112.
type TestReqID struct {
	Value string
}

func (TestReqID) Tag() int { return 112 }

func (f TestReqID) Encode() []byte {
	return fix.EncodeText(112, f.Value)
}

func (f *TestReqID) Decode(payload []byte) error {
	v, err := fix.DecodeString(payload)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}
