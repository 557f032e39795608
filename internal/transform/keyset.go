package transform

// KeySet holds the valid primary-key values of one entity. Key 0 is reserved
// as the "unset reference" sentinel and is never a member.
type KeySet map[int64]struct{}

// Has reports whether k is a valid key.
func (s KeySet) Has(k int64) bool {
	_, ok := s[k]
	return ok
}

// ValidKeys scans the raw rows of one entity and collects the set of valid
// primary keys from column col. A key is valid when it coerces to an integer
// and is strictly positive; empty rows and short rows are skipped.
func ValidKeys(rows [][]string, col int) KeySet {
	keys := make(KeySet, len(rows))
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		if pk, ok := Int(row[col]); ok && pk > 0 {
			keys[pk] = struct{}{}
		}
	}
	return keys
}

// RefSets carries the valid-key sets a downstream transformer needs for
// foreign-key resolution. It is built once per run, in dependency order, and
// passed explicitly; transformers keep no state of their own.
type RefSets struct {
	Representatives KeySet
	Clients         KeySet
	Products        KeySet
	Orders          KeySet
}
