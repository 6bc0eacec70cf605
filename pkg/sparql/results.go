package sparql

// ResultSet is the SPARQL 1.1 Query Results JSON document returned by
// the store's query endpoint (application/sparql-results+json).
type ResultSet struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []BindingSet `json:"bindings"`
	} `json:"results"`
}

// BindingSet maps variable names to their bound values for one result
// row. Unbound variables are simply absent.
type BindingSet map[string]Binding

// Binding is a single bound RDF term.
type Binding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Value returns the bound value for var name, or the empty string when
// the variable is unbound in this row.
func (bs BindingSet) Value(name string) string {
	return bs[name].Value
}

// Has reports whether var name is bound in this row.
func (bs BindingSet) Has(name string) bool {
	_, ok := bs[name]
	return ok
}
