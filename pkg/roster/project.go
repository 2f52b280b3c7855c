package roster

// Project returns one attribute's value across all records in store
// order, addressed by the attribute's pluralized name ("names" for
// attribute "name"). Returns an empty, non-nil slice when the registry
// holds no records and a ProjectionError for an unrecognized name.
func (r *Registry[T]) Project(name string) ([]any, error) {
	pos, ok := r.plurals[name]
	if !ok {
		return nil, &ProjectionError{Name: name}
	}
	attr := r.schema.Attrs[pos]
	out := make([]any, len(r.records))
	for i, rec := range r.records {
		out[i] = attr.Value(rec)
	}
	return out, nil
}

// ProjectionNames returns the pluralized names Project accepts, in
// attribute order.
func (r *Registry[T]) ProjectionNames() []string {
	names := make([]string, len(r.schema.Attrs))
	for i, a := range r.schema.Attrs {
		names[i] = Pluralize(a.Name)
	}
	return names
}
