package bridge

import (
	"errors"

	"github.com/viant/ue5-mcp-bridge/catalog"
	"github.com/viant/ue5-mcp-bridge/rpc"
)

// Translate converts a transport outcome or error into a tool result.
func Translate(outcome *rpc.Outcome, err error) *Result {
	if err != nil {
		return translateError(err)
	}
	if outcome == nil {
		return Fail(KindInternal, "rpc call returned no outcome")
	}
	if rpcErr := outcome.Error; rpcErr != nil {
		code := rpcErr.Code
		return &Result{Failure: &Failure{Kind: KindRpcError, Code: &code, Message: rpcErr.Message, Data: rpcErr.Data}}
	}
	return Success(outcome.Result)
}

func translateError(err error) *Result {
	var statusErr *rpc.StatusError
	switch {
	case errors.Is(err, catalog.ErrUnknownTool):
		return Fail(KindUnknownTool, err.Error())
	case errors.Is(err, rpc.ErrTimeout):
		return Fail(KindTimeout, err.Error())
	case errors.Is(err, rpc.ErrUnreachable):
		return Fail(KindUnreachable, err.Error())
	case errors.As(err, &statusErr):
		code := statusErr.StatusCode
		return &Result{Failure: &Failure{Kind: KindTransportError, Code: &code, Message: err.Error()}}
	case errors.Is(err, rpc.ErrMalformedResponse):
		return Fail(KindMalformedResponse, err.Error())
	}
	return Fail(KindInternal, err.Error())
}
