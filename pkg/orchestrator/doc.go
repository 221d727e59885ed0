// Package orchestrator wires the loader → parser → validator → token builder
// → renderer pipeline that turns a couple configuration and an HTML template
// into a written delivery page, providing dependency injection friendly
// helpers for consumers that prefer a single entry point.
package orchestrator
