// Package wfcconfig loads wfc.Options from a key=value settings file and
// from command-line flags, the two configuration surfaces cmd/wfc-gen
// supports. Neither the wfc core nor wfcimage know this format exists.
package wfcconfig
