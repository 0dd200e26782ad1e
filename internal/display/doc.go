// Package display renders user-facing output for the flatten CLI: the
// pre-flight summary shown before confirmation, the completion line, and
// warning blocks for surprising outcomes such as directories removed with
// files still inside. All functions write to an injected io.Writer so
// output is fully testable.
package display
