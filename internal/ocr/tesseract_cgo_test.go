//go:build cgo && linux

package ocr

import (
	"context"
	"strings"
	"testing"
)

func TestTesseract_Recognize(t *testing.T) {
	testCases := []string{"HELLO", "TEST 123"}

	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			out, err := (&Tesseract{}).Recognize(context.Background(), textImage(text, 4), "eng")
			if err != nil {
				// Language data might not be installed on the build host.
				if strings.Contains(err.Error(), "tesseract") ||
					strings.Contains(err.Error(), "language") {
					t.Skip("Tesseract data not available")
				}
				t.Fatalf("Recognize failed: %v", err)
			}
			t.Logf("Input: %q, Output: %q", text, strings.TrimSpace(out))
		})
	}
}

func TestTesseract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (&Tesseract{}).Recognize(ctx, textImage("X", 1), "eng"); err == nil {
		t.Error("a cancelled context should stop recognition before it starts")
	}
}

func TestNew_NativeDefault(t *testing.T) {
	if _, ok := New(Options{}).(*Tesseract); !ok {
		t.Error("cgo builds should default to the native engine")
	}
}
