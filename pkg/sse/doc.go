// Package sse provides helpers for server-driven UI over DataStar
// Server-Sent Events: request detection, an open Stream bound to the request
// lifetime, and element/signal patch helpers for pushing rendered components
// and reactive state to the browser.
package sse
