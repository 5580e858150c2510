//go:build !cgo || !linux

package ocr

// Without the native bindings the CLI on PATH is the only engine.
func newNative(opts Options) Engine {
	return &Command{Path: "tesseract", TessdataPrefix: opts.TessdataPrefix}
}
