// Package viewer holds the interactive state of the lesson catalog: the age
// filter and card selection, the lesson detail overlay with its step
// accordion, and the accessibility settings overlay.
//
// Nothing here performs I/O. The tui package renders this state and turns key
// presses into calls on it.
package viewer
