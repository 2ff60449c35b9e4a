// Package wfcimage is the file-I/O and image-decoding collaborator the
// wfc core spec deliberately keeps external: it turns an on-disk PNG or
// GIF exemplar into the packed-color wfc.Grid the solver consumes, and
// turns a solved wfc.Result back into a PNG on disk.
package wfcimage
