package labels

// DefaultCatalogImages maps canonical labels to the bundled product images
func DefaultCatalogImages() map[string]string {
	return map[string]string{
		"laptop": "/product-images/laptop.jpg",
		"mouse":  "/product-images/mouse.jpg",
	}
}

// DefaultAliases maps common OCR readings to canonical labels.
// "keyboard" has no catalog image yet.
func DefaultAliases() map[string]string {
	return map[string]string{
		// laptops
		"l":         "laptop",
		"lap top":   "laptop",
		"notebook":  "laptop",
		"notebooks": "laptop",

		// mice
		"m":      "mouse",
		"mice":   "mouse",
		"mou se": "mouse",

		// keyboards
		"k":  "keyboard",
		"kb": "keyboard",
	}
}

// NewDefaultResolver builds a resolver from the bundled tables
func NewDefaultResolver() *Resolver {
	aliases, err := NewAliasTable(DefaultAliases())
	if err != nil {
		panic(err)
	}
	catalog, err := NewCatalogTable(DefaultCatalogImages())
	if err != nil {
		panic(err)
	}
	return NewResolver(aliases, catalog)
}

// Ptr returns a pointer to s, for building optional labels and fallbacks
func Ptr(s string) *string {
	return &s
}
