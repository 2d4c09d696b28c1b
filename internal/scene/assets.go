package scene

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/assets"
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/shader"
	"github.com/Faultbox/lumen/internal/engine/texture"
)

// GLAssets resolves assets through the GL shader and texture registries,
// reading source files from Files.
type GLAssets struct {
	Files    *assets.Manager
	Shaders  *shader.Registry
	Textures *texture.Registry
}

// Shader returns a registered program, compiling it from desc on first use.
func (a GLAssets) Shader(name string, desc ShaderDesc) (gfx.Shader, error) {
	if p := a.Shaders.Get(name); p != nil {
		return p, nil
	}
	if desc.Vertex == "" || desc.Fragment == "" {
		return nil, fmt.Errorf("shader %q: not built in and no sources given", name)
	}
	vs, err := a.Files.Load(desc.Vertex)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	fs, err := a.Files.Load(desc.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	return a.Shaders.Load(name, string(vs), string(fs))
}

// Texture returns a registered texture, loading it from source on first use.
func (a GLAssets) Texture(name, source string) (gfx.Texture, error) {
	if t := a.Textures.Get(name); t != nil {
		return t, nil
	}
	return a.Textures.Load(name, source)
}
