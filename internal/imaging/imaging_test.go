package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func testImageBytes(t *testing.T, w, h int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(buf *bytes.Buffer, img image.Image) error {
	return jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
}

func encodePNG(buf *bytes.Buffer, img image.Image) error {
	return png.Encode(buf, img)
}

func TestProcessAcceptsJPEGAndPNG(t *testing.T) {
	for name, encode := range map[string]func(*bytes.Buffer, image.Image) error{
		"jpeg": encodeJPEG,
		"png":  encodePNG,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := Process(bytes.NewReader(testImageBytes(t, 64, 64, encode)))
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if result.MIME != "image/jpeg" {
				t.Errorf("expected image/jpeg output, got %s", result.MIME)
			}
			if len(result.Data) == 0 {
				t.Error("expected non-empty data")
			}
		})
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	_, err := Process(strings.NewReader("definitely not an image"))
	if err == nil {
		t.Fatal("expected error for non-image payload")
	}
}

func TestProcessDownscalesLargeImages(t *testing.T) {
	result, err := Process(bytes.NewReader(testImageBytes(t, 2048, 512, encodeJPEG)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding processed image: %v", err)
	}
	if img.Bounds().Dx() != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, img.Bounds().Dx())
	}
	if img.Bounds().Dy() != MaxDimension/4 {
		t.Errorf("expected aspect ratio preserved, got height %d", img.Bounds().Dy())
	}
}

func TestDataURI(t *testing.T) {
	result, err := Process(bytes.NewReader(testImageBytes(t, 8, 8, encodeJPEG)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	uri := result.DataURI()
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("unexpected data URI prefix: %.40s", uri)
	}
}
