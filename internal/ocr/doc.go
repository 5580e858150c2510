// Package ocr recognizes text in images using Tesseract.
//
// Two engines implement the Engine interface:
//
//   - Tesseract binds libtesseract through gosseract/v2. It is compiled only on Linux
//     with CGO enabled.
//   - Command runs the tesseract executable, writing the image as PNG on stdin and
//     reading the recognized text from stdout. It needs no CGO.
//
// New picks the engine: an explicit command path always selects Command; otherwise
// the native engine is used when it was compiled in, and the tesseract found on PATH
// when it was not.
//
// # Prerequisites
//
// Tesseract and the language data for every requested language must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: install from https://github.com/UB-Mannheim/tesseract/wiki and point
//     TESSERACT_CMD at tesseract.exe
//
// Language codes are Tesseract's ("eng", "deu", "fra", "spa", "chi_sim", ...). Several
// languages can be combined with "+", e.g. "eng+deu".
//
// # Error Handling
//
// A missing executable or library is reported as ErrEngineUnavailable so callers can
// tell a configuration problem from an unreadable image. Engines never panic on bad
// input; recognition errors are returned with the engine's own diagnostics attached.
package ocr
