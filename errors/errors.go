package errors

import "fmt"

var (
	ErrInputType             = fmt.Errorf("message must be raw text or a decoded message")
	ErrMalformedJSON         = fmt.Errorf("payload is not valid JSON")
	ErrSchemaValidation      = fmt.Errorf("payload does not match message schema")
	ErrMessageFormat         = fmt.Errorf("message format error")
	ErrUnknownMessageType    = fmt.Errorf("unknown message type")
	ErrUnknownBroadcastScope = fmt.Errorf("unknown broadcast scope")
	ErrInvalidScript         = fmt.Errorf("invalid replay script")
)

// IngestStage names the step of the inbound pipeline that rejected a payload.
type IngestStage string

const (
	StageParse  IngestStage = "parse"
	StageSchema IngestStage = "schema"
	StageFormat IngestStage = "format"
)

// IngestError is raised for untrusted wire content.
// The router recovers it locally: it is reported, then the payload is dropped.
type IngestError struct {
	Stage IngestStage
	Err   error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *IngestError) Unwrap() error { return e.Err }

// HandlerError carries a failure returned by a registered handler.
// It is never recovered by the router and aborts the current dispatch.
type HandlerError struct {
	Participant string
	Index       int
	Err         error
}

func (e *HandlerError) Error() string {
	target := e.Participant
	if target == "" {
		target = "broadcast"
	}
	return fmt.Sprintf("handler #%d for %s: %v", e.Index, target, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }
