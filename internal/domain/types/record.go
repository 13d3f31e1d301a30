package types

// Record is one contact on the Abook side: every field holds one or more
// values in their original order. Empty values are never stored.
type Record map[Field][]string

// NewRecord returns an empty record.
func NewRecord() Record { return make(Record) }

// Add appends non-empty values to f.
func (r Record) Add(f Field, values ...string) {
	for _, v := range values {
		if v == "" {
			continue
		}
		r[f] = append(r[f], v)
	}
}

// Set replaces the values of f. Setting no non-empty value removes f.
func (r Record) Set(f Field, values ...string) {
	delete(r, f)
	r.Add(f, values...)
}

// Get returns the first value of f, or "".
func (r Record) Get(f Field) string {
	if vs := r[f]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns all values of f.
func (r Record) Values(f Field) []string { return r[f] }

// Has reports whether f holds at least one value.
func (r Record) Has(f Field) bool { return len(r[f]) > 0 }

// HasAny reports whether any of fs holds a value.
func (r Record) HasAny(fs ...Field) bool {
	for _, f := range fs {
		if r.Has(f) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for f, vs := range r {
		out[f] = append([]string(nil), vs...)
	}
	return out
}
