// Package rpc implements the JSON-RPC 2.0 over HTTP client used to reach the
// UltimateControl endpoint of the Unreal Engine editor.
//
// A Client supports two connection lifetimes behind the same Caller interface:
// an ephemeral call opens and closes its own connection, while a Session keeps
// one pooled connection alive until it is closed.
//
//	client := rpc.New(rpc.Endpoint("127.0.0.1", 7777), rpc.WithToken(token))
//	err := client.WithSession(ctx, func(ctx context.Context, caller rpc.Caller) error {
//		outcome, err := caller.Call(ctx, "system.getInfo", nil)
//		...
//	})
package rpc
