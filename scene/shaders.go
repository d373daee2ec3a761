package scene

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/noisersup/sgl/sglerr"
)

// Script types a ShaderScript may carry.
const (
	VertexScript   = "x-shader/x-vertex"
	FragmentScript = "x-shader/x-fragment"
)

// ShaderScript is the source of one shader together with its script type.
type ShaderScript struct {
	Type   string
	Source string
}

// Shaders maps shader ids to their scripts.
type Shaders map[string]ShaderScript

// LoadShaders reads every regular file of dir in fsys into a Shaders keyed
// by file name. Files ending in .vert are vertex scripts and .frag fragment
// scripts; anything else gets the type "text/<ext>" and fails to compile.
func LoadShaders(fsys fs.FS, dir string) (Shaders, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading shader dir %s: %w", dir, err)
	}
	shaders := make(Shaders, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading shader %s: %w", e.Name(), err)
		}
		shaders[e.Name()] = ShaderScript{Type: scriptType(e.Name()), Source: string(src)}
	}
	return shaders, nil
}

func scriptType(name string) string {
	switch ext := path.Ext(name); ext {
	case ".vert":
		return VertexScript
	case ".frag":
		return FragmentScript
	default:
		return "text/" + strings.TrimPrefix(ext, ".")
	}
}

// compileShader looks up id and compiles it. A shader that fails to
// compile is deleted before returning.
func compileShader(b Backend, shaders Shaders, id string) (uint32, error) {
	script, ok := shaders[id]
	if !ok {
		return 0, sglerr.NewMissingShader(id)
	}

	var kind ShaderKind
	var sort string
	switch script.Type {
	case FragmentScript:
		kind, sort = FragmentShader, "fragment"
	case VertexScript:
		kind, sort = VertexShader, "vertex"
	default:
		return 0, sglerr.NewUnknownShaderType(script.Type)
	}

	sh := b.CreateShader(kind)
	if ok, log := b.CompileShader(sh, script.Source); !ok {
		b.DeleteShader(sh)
		return 0, sglerr.NewShaderCompileFail(sort, log)
	}
	Logger().Debug("sgl: shader compiled", "id", id, "kind", sort, "shader", sh)
	return sh, nil
}
