// Package catalog defines the data model for the games catalog and the
// walker that discovers categories and entry documents on disk.
package catalog

// Canonical field names as they appear after lowercasing. Entry documents
// label them "Home:", "State:" and so on.
const (
	FieldHome     = "home"
	FieldState    = "state"
	FieldLanguage = "language"
	FieldLicense  = "license"
	FieldDownload = "download"
)

// Entry is one parsed game document.
type Entry struct {
	Title    string              // text of the single level-1 heading
	Fields   map[string][]string // lowercased field name -> cleaned values
	Raw      map[string]string   // lowercased field name -> verbatim value text
	Inactive string              // "inactive since" marker value, empty when active
	Category string              // owning category title
	File     string              // base filename without the .md extension
}

// Values returns the cleaned values of the named field, or nil when the
// field is absent.
func (e *Entry) Values(name string) []string {
	return e.Fields[name]
}

// First returns the first value of the named field, or the empty string when
// the field is absent or empty.
func (e *Entry) First(name string) string {
	if values := e.Fields[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// Has reports whether the named field is present.
func (e *Entry) Has(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

// HasValue reports whether the named field contains the given value.
func (e *Entry) HasValue(name, value string) bool {
	for _, v := range e.Fields[name] {
		if v == value {
			return true
		}
	}
	return false
}

// IsInactive reports whether the entry carries an "inactive since" state
// marker.
func (e *Entry) IsInactive() bool {
	return e.Inactive != ""
}
