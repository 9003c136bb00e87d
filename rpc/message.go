package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Version is the JSON-RPC protocol version.
const Version = "2.0"

const (
	defaultErrorCode    = -1
	defaultErrorMessage = "Unknown error"
)

// Request is an outbound JSON-RPC request.
type Request struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	Id      string          `json:"id"`
}

// NewRequest creates a request with a fresh random id.
func NewRequest(method string, params json.RawMessage) *Request {
	return &Request{Jsonrpc: Version, Method: method, Params: params, Id: uuid.NewString()}
}

// Error is a JSON-RPC error object returned by the remote host.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Outcome holds exactly one of Result or Error.
type Outcome struct {
	Result json.RawMessage
	Error  *Error
}

// decodeOutcome parses a JSON-RPC response correlated with requestID.
func decodeOutcome(data []byte, requestID string) (*Outcome, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if rawID, ok := fields["id"]; ok && !isNull(rawID) {
		var id interface{}
		if err := json.Unmarshal(rawID, &id); err != nil || fmt.Sprint(id) != requestID {
			return nil, fmt.Errorf("%w: response id %s did not match %v", ErrMalformedResponse, rawID, requestID)
		}
	}
	if rawErr, ok := fields["error"]; ok && !isNull(rawErr) {
		rpcErr, err := decodeError(rawErr)
		if err != nil {
			return nil, err
		}
		return &Outcome{Error: rpcErr}, nil
	}
	if result, ok := fields["result"]; ok {
		return &Outcome{Result: result}, nil
	}
	return nil, fmt.Errorf("%w: neither result nor error present", ErrMalformedResponse)
}

func decodeError(data json.RawMessage) (*Error, error) {
	var wire struct {
		Code    *int            `json:"code"`
		Message *string         `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: invalid error object: %v", ErrMalformedResponse, err)
	}
	ret := &Error{Code: defaultErrorCode, Message: defaultErrorMessage, Data: wire.Data}
	if wire.Code != nil {
		ret.Code = *wire.Code
	}
	if wire.Message != nil && *wire.Message != "" {
		ret.Message = *wire.Message
	}
	if isNull(ret.Data) {
		ret.Data = nil
	}
	return ret, nil
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
