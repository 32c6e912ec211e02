package tagscript

// Library is a named group of handlers that can be added to an engine as a unit.
type Library struct {
	name     string
	handlers []Handler
}

// NewLibrary creates a library from handlers.
func NewLibrary(name string, handlers ...Handler) Library {
	return Library{name: name, handlers: handlers}
}

// Name returns the library name.
func (l Library) Name() string {
	return l.name
}

// Handlers returns a copy of the library's handlers.
func (l Library) Handlers() []Handler {
	out := make([]Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// DefaultLibraries returns every bundled library.
func DefaultLibraries() []Library {
	return []Library{
		StringsLibrary(),
		FunctionalLibrary(),
		VariablesLibrary(),
		MathLibrary(),
	}
}

// LibraryByName returns a bundled library by its config name.
func LibraryByName(name string) (Library, error) {
	switch name {
	case LibraryNameStrings:
		return StringsLibrary(), nil
	case LibraryNameFunctional:
		return FunctionalLibrary(), nil
	case LibraryNameVariables:
		return VariablesLibrary(), nil
	case LibraryNameMath:
		return MathLibrary(), nil
	default:
		return Library{}, NewUnknownLibraryError(name)
	}
}
