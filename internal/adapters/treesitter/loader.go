package treesitter

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// grammarSymbol is the C entry point every tree-sitter Rust grammar exports.
const grammarSymbol = "tree_sitter_rust"

// LibExtension returns the shared library extension for the current platform.
func LibExtension() string {
	if runtime.GOOS == "darwin" {
		return ".dylib"
	}
	return ".so"
}

// LoadGrammar loads a Rust grammar from a shared library (.so on Linux,
// .dylib on macOS) using purego. The handle is kept open for the life of the
// process — the returned Language points into the loaded library.
func LoadGrammar(soPath string) (*tree_sitter.Language, error) {
	if _, err := os.Stat(soPath); err != nil {
		return nil, fmt.Errorf("grammar library %s: %w", soPath, err)
	}

	handle, err := purego.Dlopen(soPath, purego.RTLD_LAZY)
	if err != nil {
		return nil, fmt.Errorf("grammar library %s: dlopen: %w", soPath, err)
	}

	var langFunc func() uintptr
	purego.RegisterLibFunc(&langFunc, handle, grammarSymbol)

	ptr := langFunc()
	if ptr == 0 {
		return nil, fmt.Errorf("grammar library %s: %s() returned null", soPath, grammarSymbol)
	}

	// Convert uintptr from C (purego) to unsafe.Pointer without triggering go
	// vet's unsafeptr check. Safe because ptr is a static TSLanguage* from the
	// grammar library, not a Go-managed pointer that could be moved by GC.
	return tree_sitter.NewLanguage(*(*unsafe.Pointer)(unsafe.Pointer(&ptr))), nil
}
