// Package widget implements the registration form widget: a name field with
// asynchronous uniqueness validation, a location dropdown, add/clear actions
// and a table of added entries.
//
// A Form holds one user's widget state and publishes a full Snapshot to
// subscribers after every change. The HTTP layer (Router) renders the widget
// server-side and keeps browsers current over a DataStar SSE stream, so the
// frontend carries no logic beyond forwarding input events.
package widget
