// Package models holds the state of the demo scenes and the messages the
// debugger exchanges with them.
package models

// RefreshMsg tells the debugger a new frame was drawn.
type RefreshMsg bool

// UpdateDebugger is called by a scene after it changed state the debugger
// shows.
type UpdateDebugger func()
