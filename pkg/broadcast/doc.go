// Package broadcast provides a type-safe in-memory fan-out hub.
//
// A Hub delivers every published value to all current subscribers without ever
// blocking the publisher: subscribers that fall behind miss values instead.
// This is the delivery model for UI state streams, where each value is a full
// snapshot and a missed one is superseded by the next.
//
//	hub := broadcast.NewHub[Snapshot](8)
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx)
//	go func() {
//		for snap := range sub.C() {
//			render(snap)
//		}
//	}()
//
//	hub.Publish(current)
//
// Subscriptions end when their context is cancelled, when Close is called on
// them, or when the hub itself closes; in every case the receive channel is
// closed so range loops terminate.
package broadcast
