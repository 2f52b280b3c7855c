package roster

// resolveByKey returns the index of the record matching a value key, or
// found=false when nothing matches. Only the first declaration in
// schema order whose kind matches the key is consulted; when several
// identifier declarations share KindIdentifier, later ones are never
// searched. A second structural match under the selected declaration
// fails with an AmbiguousKeyError.
func (r *Registry[T]) resolveByKey(key Key) (idx int, found bool, err error) {
	kind := keyKind(key)
	for _, cfg := range r.schema.Keys {
		if cfg.Kind != kind {
			continue
		}
		want := keyValue(key)
		match := -1
		for i, rec := range r.records {
			if cfg.Value(rec) != want {
				continue
			}
			if match >= 0 {
				return 0, false, &AmbiguousKeyError{PropName: cfg.PropName, Value: want}
			}
			match = i
		}
		if match < 0 {
			r.log.Debug("no record for key", "key", cfg.PropName, "value", want)
			return 0, false, nil
		}
		return match, true, nil
	}
	// No declaration handles this key's kind.
	return 0, false, nil
}

// resolveIndex maps one key to a record index. Index keys are range
// checked against the current record count; value keys that match no
// record fail with a KeyNotFoundError.
func (r *Registry[T]) resolveIndex(key Key) (int, error) {
	if pos, ok := key.(Index); ok {
		i := int(pos)
		if i < 0 || i >= len(r.records) {
			return 0, &IndexError{Index: i, Len: len(r.records)}
		}
		return i, nil
	}
	idx, found, err := r.resolveByKey(key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, &KeyNotFoundError{Key: key}
	}
	return idx, nil
}

// resolveIndices resolves each key independently, preserving argument
// order. Duplicate resolved indices are permitted in the result.
func (r *Registry[T]) resolveIndices(keys []Key) ([]int, error) {
	indices := make([]int, len(keys))
	for i, k := range keys {
		idx, err := r.resolveIndex(k)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}
