package models

// Generator describes one template offered by the generator service.
type Generator struct {
	Name        string
	Description string
}

// ErrorKind records which operation produced the current error message
type ErrorKind int

const (
	NoError ErrorKind = iota
	ValidationError
	CatalogError
	GenerationError
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationError:
		return "validation"
	case CatalogError:
		return "catalog"
	case GenerationError:
		return "generation"
	default:
		return "none"
	}
}

// FormSnapshot is a read-only copy of the generation form handed to the UI
type FormSnapshot struct {
	Generators       []Generator
	SelectedTemplate string
	Input            string
	LoadingCatalog   bool
	Generating       bool
	GeneratedCode    string
	Error            string
	ErrorKind        ErrorKind
}

// HasResult reports whether a generation has succeeded at least once.
func (s FormSnapshot) HasResult() bool {
	return s.GeneratedCode != ""
}

// SelectedIndex returns the catalog position of the selected template, or -1.
func (s FormSnapshot) SelectedIndex() int {
	for i, gen := range s.Generators {
		if gen.Name == s.SelectedTemplate {
			return i
		}
	}
	return -1
}
