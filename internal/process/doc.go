// Package process holds platform-specific helpers for tearing down the
// headless browser started by the PDF renderer.
package process
