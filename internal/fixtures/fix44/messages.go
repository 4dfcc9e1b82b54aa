package fix44

import (
	"github.com/arthurlm/fixgen/fix"
)

// MessageHeader is the standard header, excluding BeginString (8) and
// BodyLength (9), which fix.Envelope computes and owns.
type MessageHeader struct {
	MsgType      MsgType
	SenderCompID SenderCompID
	TargetCompID TargetCompID
	MsgSeqNum    MsgSeqNum
	SendingTime  SendingTime
	ApplVerID    *ApplVerID
}

func (f *MessageHeader) Encode() []byte {
	var out []byte
	out = append(out, f.MsgType.Encode()...)
	out = append(out, f.SenderCompID.Encode()...)
	out = append(out, f.TargetCompID.Encode()...)
	out = append(out, f.MsgSeqNum.Encode()...)
	out = append(out, f.SendingTime.Encode()...)
	if f.ApplVerID != nil {
		out = append(out, f.ApplVerID.Encode()...)
	}
	return out
}

func (f *MessageHeader) Decode(tags fix.TagMap) error {
	var errs fix.FixParseError
	if payload, ok := tags[35]; ok {
		f.MsgType = MsgType{}
		if err := f.MsgType.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 35, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	} else {
		errs.Add(&fix.FieldError{Tag: 35, Kind: fix.ErrInvalidData})
	}
	if payload, ok := tags[49]; ok {
		f.SenderCompID = SenderCompID{}
		if err := f.SenderCompID.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 49, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	} else {
		errs.Add(&fix.FieldError{Tag: 49, Kind: fix.ErrInvalidData})
	}
	if payload, ok := tags[56]; ok {
		f.TargetCompID = TargetCompID{}
		if err := f.TargetCompID.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 56, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	} else {
		errs.Add(&fix.FieldError{Tag: 56, Kind: fix.ErrInvalidData})
	}
	if payload, ok := tags[34]; ok {
		f.MsgSeqNum = MsgSeqNum{}
		if err := f.MsgSeqNum.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 34, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	} else {
		errs.Add(&fix.FieldError{Tag: 34, Kind: fix.ErrInvalidData})
	}
	if payload, ok := tags[52]; ok {
		f.SendingTime = SendingTime{}
		if err := f.SendingTime.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 52, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	} else {
		errs.Add(&fix.FieldError{Tag: 52, Kind: fix.ErrInvalidData})
	}
	if payload, ok := tags[1128]; ok {
		f.ApplVerID = new(ApplVerID)
		if err := f.ApplVerID.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 1128, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	}
	return errs.OrNil()
}

// MessageTrailer is the standard trailer, excluding CheckSum (10),
// which fix.Envelope computes and appends itself.
type MessageTrailer struct {
	SignatureLength *SignatureLength
	Signature       *Signature
}

func (f *MessageTrailer) Encode() []byte {
	var out []byte
	if f.SignatureLength != nil {
		out = append(out, f.SignatureLength.Encode()...)
	}
	if f.Signature != nil {
		out = append(out, f.Signature.Encode()...)
	}
	return out
}

func (f *MessageTrailer) Decode(tags fix.TagMap) error {
	var errs fix.FixParseError
	if payload, ok := tags[93]; ok {
		f.SignatureLength = new(SignatureLength)
		if err := f.SignatureLength.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 93, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	}
	if payload, ok := tags[89]; ok {
		f.Signature = new(Signature)
		if err := f.Signature.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 89, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	}
	return errs.OrNil()
}

// MessageHeartbeat is FIX msgtype "0", an administrative message.
type MessageHeartbeat struct {
	TestReqID *TestReqID
}

func (f *MessageHeartbeat) Encode() []byte {
	var out []byte
	if f.TestReqID != nil {
		out = append(out, f.TestReqID.Encode()...)
	}
	return out
}

func (f *MessageHeartbeat) Decode(tags fix.TagMap) error {
	var errs fix.FixParseError
	if payload, ok := tags[112]; ok {
		f.TestReqID = new(TestReqID)
		if err := f.TestReqID.Decode([]byte(payload)); err != nil {
			errs.Add(&fix.FieldError{Tag: 112, Payload: payload, Kind: fix.ErrInvalidData, Cause: err})
		}
	}
	return errs.OrNil()
}

func (MessageHeartbeat) MsgType() string { return "0" }

func (MessageHeartbeat) Dest() fix.MessageDest { return fix.DestAdmin }
