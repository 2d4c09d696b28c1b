package texture

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/logger"
)

// CheckerSource is the registry source name for the procedural checkerboard.
const CheckerSource = "checker"

var (
	checkerLight = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkerDark  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// Registry owns textures by name.
type Registry struct {
	textures map[string]*Texture
	read     func(path string) ([]byte, error)
	upload   func(name string, img *image.RGBA) (*Texture, error)
}

// NewRegistry creates an empty registry uploading through GL.
func NewRegistry() *Registry {
	return &Registry{
		textures: make(map[string]*Texture),
		read:     os.ReadFile,
		upload:   Upload,
	}
}

// SetReader replaces the function that reads texture files, os.ReadFile by
// default.
func (r *Registry) SetReader(read func(path string) ([]byte, error)) {
	r.read = read
}

// Load registers the texture at source, a file path or CheckerSource.
func (r *Registry) Load(name, source string) (*Texture, error) {
	if _, exists := r.textures[name]; exists {
		return nil, fmt.Errorf("texture %q already loaded", name)
	}

	var img *image.RGBA
	if source == CheckerSource {
		img = Checker(256, 32, checkerLight, checkerDark)
	} else {
		data, err := r.read(source)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		if img, err = DecodeRGBA(source, data); err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
	}

	t, err := r.upload(name, img)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	r.textures[name] = t
	logger.Debug("texture loaded", zap.String("name", name), zap.String("source", source),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return t, nil
}

// Get returns the texture registered under name, or nil.
func (r *Registry) Get(name string) *Texture {
	return r.textures[name]
}

// Cleanup deletes all textures.
func (r *Registry) Cleanup() {
	for name, t := range r.textures {
		t.Delete()
		delete(r.textures, name)
	}
}
