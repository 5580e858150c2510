package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os/exec"
	"strings"
)

// Command runs the tesseract executable.
type Command struct {
	// Path is the executable name or path. A bare name is resolved on PATH.
	Path           string
	TessdataPrefix string
}

// Recognize pipes img as PNG through `tesseract stdin stdout -l lang`.
func (c *Command) Recognize(ctx context.Context, img image.Image, lang string) (string, error) {
	bin, err := c.resolve()
	if err != nil {
		return "", err
	}

	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}

	args := []string{"stdin", "stdout", "-l", languageOrDefault(lang)}
	if c.TessdataPrefix != "" {
		args = append(args, "--tessdata-dir", c.TessdataPrefix)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("tesseract: %w: %s", err, msg)
		}
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return stdout.String(), nil
}

// Version returns the first line of `tesseract --version`.
func (c *Command) Version(ctx context.Context) (string, error) {
	bin, err := c.resolve()
	if err != nil {
		return "", err
	}
	out, err := exec.CommandContext(ctx, bin, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract --version: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line), nil
}

func (c *Command) resolve() (string, error) {
	path := c.Path
	if path == "" {
		path = "tesseract"
	}
	bin, err := exec.LookPath(path)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, exec.ErrDot) {
			return "", fmt.Errorf("%w: %s not found", ErrEngineUnavailable, path)
		}
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	return bin, nil
}
