// Package describe drafts listing descriptions with a text generation model.
//
// Describer never fails: any generator error, timeout or empty answer is
// logged and replaced with Fallback so the caller can ask the user to write
// the text by hand.
package describe
