package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, bottom-up, BGR
	data := append(tgaHeader(tgaTypeUncompressed, 2, 1, 24, 0),
		0, 0, 255, // red
		255, 0, 0, // blue
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if got := img.At(0, 0).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel 0 = %v, want red", got)
	}
	if got := img.At(1, 0).(color.RGBA); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel 1 = %v, want blue", got)
	}
}

func TestDecodeTGARLEBottomUp(t *testing.T) {
	// 1x2, 32bpp, one run packet of two green pixels with alpha 128
	data := append(tgaHeader(tgaTypeRLE, 1, 2, 32, 0), 0x81, 0, 255, 0, 128)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	want := color.RGBA{G: 255, A: 128}
	for y := 0; y < 2; y++ {
		if got := img.At(0, y).(color.RGBA); got != want {
			t.Errorf("pixel (0,%d) = %v, want %v", y, got, want)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{1, 2, 3}},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"bad type", tgaHeader(3, 1, 1, 24, 0)},
		{"bad depth", tgaHeader(tgaTypeUncompressed, 1, 1, 16, 0)},
		{"truncated pixels", tgaHeader(tgaTypeUncompressed, 4, 4, 24, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeSniffsPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := Decode("wall.png", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 2x2", img.Bounds())
	}

	if _, err := Decode("wall.png", []byte("not an image")); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestToRGBAFlip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	top := color.RGBA{R: 255, A: 255}
	bottom := color.RGBA{B: 255, A: 255}
	src.SetRGBA(0, 0, top)
	src.SetRGBA(0, 1, bottom)

	same := ToRGBA(src, false)
	if same.RGBAAt(0, 0) != top {
		t.Errorf("unflipped row 0 = %v, want %v", same.RGBAAt(0, 0), top)
	}

	flipped := ToRGBA(src, true)
	if flipped.RGBAAt(0, 0) != bottom || flipped.RGBAAt(0, 1) != top {
		t.Errorf("flipped rows = %v, %v", flipped.RGBAAt(0, 0), flipped.RGBAAt(0, 1))
	}
}

func TestChecker(t *testing.T) {
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{G: 255, A: 255}
	img := Checker(4, 2, a, b)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, a},
		{1, 1, a},
		{2, 0, b},
		{0, 2, b},
		{3, 3, a},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("Checker(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRegistryLoadChecker(t *testing.T) {
	r := NewRegistry()
	var uploaded []string
	r.upload = func(name string, img *image.RGBA) (*Texture, error) {
		uploaded = append(uploaded, name)
		return &Texture{name: name, width: img.Bounds().Dx(), height: img.Bounds().Dy()}, nil
	}

	tex, err := r.Load("floor", CheckerSource)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := tex.Size(); w != 256 || h != 256 {
		t.Errorf("Size = %dx%d, want 256x256", w, h)
	}
	if r.Get("floor") != tex {
		t.Error("Get did not return loaded texture")
	}
	if _, err := r.Load("floor", CheckerSource); err == nil {
		t.Error("expected duplicate name error")
	}
	if _, err := r.Load("missing", "does/not/exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if len(uploaded) != 1 {
		t.Errorf("uploads = %v, want one", uploaded)
	}

	r.Cleanup()
	if r.Get("floor") != nil {
		t.Error("Cleanup left texture registered")
	}
}

func TestRegistryReader(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	var reads []string
	r.SetReader(func(path string) ([]byte, error) {
		reads = append(reads, path)
		return buf.Bytes(), nil
	})
	r.upload = func(name string, img *image.RGBA) (*Texture, error) {
		return &Texture{name: name, width: img.Bounds().Dx(), height: img.Bounds().Dy()}, nil
	}

	tex, err := r.Load("window", "textures/window.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := tex.Size(); w != 2 || h != 3 {
		t.Errorf("Size = %dx%d, want 2x3", w, h)
	}
	if len(reads) != 1 || reads[0] != "textures/window.png" {
		t.Errorf("reads = %v", reads)
	}
}
