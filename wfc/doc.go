// Package wfc implements the overlapping variant of Wave Function Collapse
// texture synthesis: pattern extraction from a small exemplar, adjacency
// compatibility, and the observe/propagate constraint solver that resolves
// a larger output grid from it.
//
// The package never touches a file system, an image codec, or a logger —
// callers hand it a pre-parsed Grid of packed 24-bit colors, a populated
// Options record and a RandSource, and get back a Result. See wfcimage and
// wfcconfig for the collaborators that supply those inputs in practice.
package wfc
