// Package imaging decodes source images and prepares them for text recognition.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP data. JPEG images are rotated
// according to their EXIF orientation tag so that text is upright before OCR.
//
// # Preparation Pipeline
//
// PrepareForOCR turns an arbitrary photo or screenshot into the input Tesseract reads
// best: dark text on a light background.
//
//  1. Small images are upscaled so that glyphs are tall enough to recognize
//  2. The image is converted to grayscale
//  3. When the mean lightness says the image is mostly dark (light-on-dark text,
//     e.g. a terminal screenshot) it is inverted
//  4. Contrast is boosted to separate glyphs from the background
//  5. The result is stored as a single-channel *image.Gray
//
// # Lightness
//
// Lightness is the L* component of CIE L*a*b* (0 = black, 1 = white), which tracks
// perceived brightness more closely than the average of the RGB channels. Large images
// are sampled on a regular grid rather than pixel by pixel.
//
// # Thread Safety
//
// All functions are stateless and never modify their input, so they can be called
// concurrently.
package imaging
