// Package constraints provides generic type constraints.
package constraints

// Byteseq is raw media type input: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
