package labels

// Normalizer maps raw OCR labels to canonical labels through an alias table
type Normalizer struct {
	aliases *AliasTable
}

// NewNormalizer creates a normalizer backed by the given alias table.
// A nil table behaves as an empty one.
func NewNormalizer(aliases *AliasTable) *Normalizer {
	return &Normalizer{aliases: aliases}
}

// Normalize trims and lowercases raw and resolves it through the alias
// table. Labels without an alias are returned in folded form. A nil or
// blank label is absent.
func (n *Normalizer) Normalize(raw *string) (string, bool) {
	if raw == nil {
		return "", false
	}
	key := fold(*raw)
	if key == "" {
		return "", false
	}
	if canonical, ok := n.aliases.Get(key); ok {
		return canonical, true
	}
	return key, true
}

// Resolver picks the image to display for a label: the catalog image
// when one exists, otherwise the caller's fallback.
type Resolver struct {
	normalizer *Normalizer
	catalog    *CatalogTable
}

// NewResolver creates a resolver over the given tables
func NewResolver(aliases *AliasTable, catalog *CatalogTable) *Resolver {
	return &Resolver{
		normalizer: NewNormalizer(aliases),
		catalog:    catalog,
	}
}

// Normalize exposes the resolver's normalizer
func (r *Resolver) Normalize(raw *string) (string, bool) {
	return r.normalizer.Normalize(raw)
}

// Resolve returns the image reference for raw. Catalog matches win over
// fallback; an empty fallback counts as none.
func (r *Resolver) Resolve(raw, fallback *string) (string, bool) {
	if canonical, ok := r.normalizer.Normalize(raw); ok {
		if ref, found := r.catalog.Get(canonical); found {
			return ref, true
		}
	}
	if fallback != nil && *fallback != "" {
		return *fallback, true
	}
	return "", false
}

// Aliases returns the alias table
func (r *Resolver) Aliases() *AliasTable {
	return r.normalizer.aliases
}

// Catalog returns the catalog table
func (r *Resolver) Catalog() *CatalogTable {
	return r.catalog
}
