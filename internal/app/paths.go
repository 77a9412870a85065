package app

import (
	"os"
	"path/filepath"
)

// dataDirName is the per-project directory holding archidl state.
const dataDirName = ".archidl"

// CachePath returns the bbolt cache path under root, creating the data
// directory if needed.
func CachePath(root string) (string, error) {
	dir := filepath.Join(root, dataDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache.db"), nil
}

// IdlOutputPath returns the conventional output path for a source file's IDL:
// the source path with its extension replaced by .idl.json.
func IdlOutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return sourcePath[:len(sourcePath)-len(ext)] + ".idl.json"
}
