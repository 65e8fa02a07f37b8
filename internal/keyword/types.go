package keyword

// SetKeywordInput maps a keyword to a category label. Keys are
// case-normalized to lowercase before storage.
type SetKeywordInput struct {
	Key      string
	Category string
}

// ListKeywordsOutput is the current keyword-to-category mapping.
type ListKeywordsOutput struct {
	Keywords map[string]string
}
