package shader

import (
	"embed"
	"fmt"
)

//go:embed assets/*.wgsl
var assets embed.FS

// Asset returns the source of a WGSL file compiled into the binary.
//
// Parameters:
//   - name: file name under assets/
//
// Returns:
//   - string: the WGSL source
//   - error: an error if no such asset exists
func Asset(name string) (string, error) {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("shader asset %q: %w", name, err)
	}
	return string(data), nil
}
