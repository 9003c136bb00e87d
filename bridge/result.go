package bridge

import (
	"bytes"
	"encoding/json"
)

// Kind classifies a failed tool call.
type Kind string

const (
	KindUnknownTool       Kind = "UnknownTool"
	KindTimeout           Kind = "Timeout"
	KindUnreachable       Kind = "Unreachable"
	KindTransportError    Kind = "TransportError"
	KindRpcError          Kind = "RpcError"
	KindMalformedResponse Kind = "MalformedResponse"
	KindInternal          Kind = "Internal"
)

// Failure describes why a tool call did not produce a value.
type Failure struct {
	Kind    Kind            `json:"kind"`
	Code    *int            `json:"code,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Result is the outcome of one tool invocation: either Value or Failure.
type Result struct {
	Value   json.RawMessage
	Failure *Failure
}

// Success creates a successful result; value is kept byte for byte.
func Success(value json.RawMessage) *Result {
	return &Result{Value: value}
}

// Fail creates a failed result.
func Fail(kind Kind, message string) *Result {
	return &Result{Failure: &Failure{Kind: kind, Message: message}}
}

// Failed reports whether the result is a failure.
func (r *Result) Failed() bool {
	return r.Failure != nil
}

// Text renders the result as indented JSON for the caller.
func (r *Result) Text() string {
	if r.Failure != nil {
		failure := *r.Failure
		if failure.Kind == KindRpcError && len(failure.Data) == 0 {
			// RpcError always carries data, null when the editor sent none
			failure.Data = json.RawMessage("null")
		}
		envelope := struct {
			Error bool `json:"error"`
			*Failure
		}{Error: true, Failure: &failure}
		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return r.Failure.Message
		}
		return string(data)
	}
	if len(r.Value) == 0 {
		return "null"
	}
	buffer := bytes.Buffer{}
	if err := json.Indent(&buffer, r.Value, "", "  "); err != nil {
		return string(r.Value)
	}
	return buffer.String()
}
