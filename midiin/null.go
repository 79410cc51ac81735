//go:build !cgo

package midiin

// NewContext returns a context with no devices: without cgo there is no
// rtmidi driver.
func NewContext() Context {
	return NullContext{}
}
