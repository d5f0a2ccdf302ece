package document

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Writer renders a board in one output format.
type Writer interface {
	// WriteBoard writes the complete document for b to w.
	WriteBoard(w io.Writer, b *Board) error
}

// WriterFactory creates a Writer. Factories are registered with Register
// and called by NewWriter.
type WriterFactory func() Writer

// Registry state, protected by registryMu.
var (
	registryMu sync.RWMutex
	writers    = make(map[string]WriterFactory)
	extensions = make(map[string]string)
)

func init() {
	Register("eps", func() Writer { return epsWriter{} }, "ps")
	Register("fig", func() Writer { return figWriter{} })
	Register("svg", func() Writer { return svgWriter{} })
	Register("tikz", func() Writer { return tikzWriter{} }, "tex")
}

// Register makes a writer available under name, which is also the file
// extension Save recognizes for it. Additional extensions may be given.
//
//	func init() {
//	    document.Register("pgf", func() document.Writer { return pgfWriter{} })
//	}
//
// Register panics if factory is nil or if name or one of the extensions
// is already registered.
func Register(name string, factory WriterFactory, ext ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("document: Register factory is nil")
	}
	name = strings.ToLower(name)
	if _, dup := writers[name]; dup {
		panic("document: Register called twice for " + name)
	}
	for _, e := range ext {
		if _, dup := extensions[strings.ToLower(e)]; dup {
			panic("document: Register called twice for extension " + e)
		}
	}
	writers[name] = factory
	extensions[name] = name
	for _, e := range ext {
		extensions[strings.ToLower(e)] = name
	}
}

// Unregister removes a writer and its extensions from the registry.
// Unregistering an unknown name is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name = strings.ToLower(name)
	delete(writers, name)
	for e, n := range extensions {
		if n == name {
			delete(extensions, e)
		}
	}
}

// UnknownFormatError is returned for a format name or file extension that
// no writer is registered for.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("document: unknown format %q (registered: %s)",
		e.Format, strings.Join(Formats(), ", "))
}

// NewWriter creates the writer registered under name.
// It returns an *UnknownFormatError if there is none.
func NewWriter(name string) (Writer, error) {
	registryMu.RLock()
	factory, ok := writers[strings.ToLower(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, &UnknownFormatError{Format: name}
	}
	return factory(), nil
}

// FormatForExtension returns the format registered for a file extension,
// with or without the leading dot.
func FormatForExtension(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	registryMu.RLock()
	name, ok := extensions[ext]
	registryMu.RUnlock()

	if !ok {
		return "", &UnknownFormatError{Format: ext}
	}
	return name, nil
}

// Formats returns the registered format names in alphabetical order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a writer is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := writers[strings.ToLower(name)]
	return ok
}
