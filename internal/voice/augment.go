package voice

// Augment unions the Japanese supplement into catalog when catalog already
// contains at least one Japanese voice. Supplement entries whose id is
// already present are skipped, so Augment(Augment(c)) equals Augment(c).
// Without a Japanese voice the catalog is returned unchanged.
func Augment(catalog []Voice) []Voice {
	hasJapanese := false
	ids := make(map[string]struct{}, len(catalog))
	for _, v := range catalog {
		ids[v.ID] = struct{}{}
		if v.Language == LanguageJapanese {
			hasJapanese = true
		}
	}

	out := make([]Voice, len(catalog))
	copy(out, catalog)
	if !hasJapanese {
		return out
	}

	for _, v := range JapaneseSupplement() {
		if _, exists := ids[v.ID]; exists {
			continue
		}
		ids[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}
