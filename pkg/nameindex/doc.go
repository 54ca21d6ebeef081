// Package nameindex tracks which names are already taken and turns that
// knowledge into a validation check for the field layer.
//
// The Index interface has two implementations: Memory for single-instance
// deployments and tests, and Redis for deployments where several instances
// must share the same claim set. Checker adapts any Index into a
// field.CheckFunc with user-facing messages.
package nameindex
