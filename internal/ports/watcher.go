package ports

// Watcher monitors a directory for Rust source changes and triggers
// regeneration. The adapter (fsnotify) must filter out non-source files and
// build artifacts (target/, .git, editor swap files) before invoking onChange.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring dir recursively. onChange is called with the
	// absolute path of each changed .rs file. The callback may be invoked
	// from any goroutine.
	Watch(dir string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
