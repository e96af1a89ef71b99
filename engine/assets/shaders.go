package assets

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed shaders/*.vert shaders/*.frag
var builtin embed.FS

// BuiltinVertex is the full-viewport quad shader shared by every builtin
// fragment shader.
const BuiltinVertex = "backdrop.vert"

// LoadShader reads a GLSL source file.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	return string(b), nil
}

// BuiltinShader returns an embedded shader by file name.
func BuiltinShader(name string) (string, error) {
	b, err := builtin.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("builtin shader %q: %w", name, err)
	}
	return string(b), nil
}

// BuiltinFractals lists the embedded fragment shaders by fractal name.
func BuiltinFractals() []string {
	entries, _ := builtin.ReadDir("shaders")
	var names []string
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".frag"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
