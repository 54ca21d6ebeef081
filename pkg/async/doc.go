// Package async provides a small generic Future for running a computation in
// the background and collecting its result later.
//
// Run starts the supplied function in its own goroutine and returns a *Future
// immediately. The caller can block with Await, bound the wait with
// AwaitWithTimeout, multiplex on Done, or poll with IsComplete.
//
//	future := async.Run(ctx, "alice", checkName)
//	// do other work …
//	res, err := future.Await()
//
// Run is context-aware only at the edges: a pre-cancelled context completes
// the Future with the context error without invoking the function, and the
// function itself receives the context to honor cancellation mid-flight.
// A Future completes exactly once and its result never changes afterwards.
package async
