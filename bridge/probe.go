package bridge

import (
	"context"
	"fmt"
	"io"

	"github.com/viant/ue5-mcp-bridge/rpc"
)

var probeMethods = []string{"system.getInfo", "system.listMethods"}

// Probe checks editor connectivity by calling the system info and method
// listing endpoints, writing both results to w.
func Probe(ctx context.Context, caller rpc.Caller, w io.Writer) error {
	for _, method := range probeMethods {
		result := Translate(caller.Call(ctx, method, nil))
		if _, err := fmt.Fprintf(w, "%s:\n%s\n", method, result.Text()); err != nil {
			return err
		}
		if result.Failed() {
			return fmt.Errorf("%v failed: %v: %v", method, result.Failure.Kind, result.Failure.Message)
		}
	}
	return nil
}
