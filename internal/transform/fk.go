package transform

// ResolveKey validates a raw foreign-key field against the referenced
// entity's valid-key set. The result is always either 0 ("unset") or a key
// known to exist in valid: dangling references are downgraded to the
// sentinel, never rejected and never left invalid.
func ResolveKey(raw string, valid KeySet) int64 {
	return ResolveKeyDefault(raw, valid, 0)
}

// ResolveKeyDefault is ResolveKey with a caller-supplied fallback for cases
// that need an explicit value other than the unset sentinel.
func ResolveKeyDefault(raw string, valid KeySet, def int64) int64 {
	fk, ok := Int(raw)
	if !ok || fk == 0 {
		return def
	}
	if !valid.Has(fk) {
		return def
	}
	return fk
}
