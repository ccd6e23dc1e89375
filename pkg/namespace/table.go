package namespace

// Binding associates a namespace alias with its URI
type Binding struct {
	Alias string
	URI   string
}

// Table maps aliases to namespace URIs, keeping registration order
type Table struct {
	uris  map[string]string
	order []string
}

// NewTable creates an empty namespace table
func NewTable() *Table {
	return &Table{uris: make(map[string]string)}
}

// Set records uri for alias. Registering an existing alias overwrites its URI
// and keeps its original position.
func (t *Table) Set(alias, uri string) {
	if _, exists := t.uris[alias]; !exists {
		t.order = append(t.order, alias)
	}
	t.uris[alias] = uri
}

// Lookup returns the URI registered for alias
func (t *Table) Lookup(alias string) (string, bool) {
	uri, ok := t.uris[alias]
	return uri, ok
}

// Len returns the number of registered aliases
func (t *Table) Len() int {
	return len(t.order)
}

// Bindings returns all bindings in registration order
func (t *Table) Bindings() []Binding {
	bindings := make([]Binding, 0, len(t.order))
	for _, alias := range t.order {
		bindings = append(bindings, Binding{Alias: alias, URI: t.uris[alias]})
	}
	return bindings
}
