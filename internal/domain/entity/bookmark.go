package entity

// DefaultBookmarkTitle is used when the tab has no usable title.
const DefaultBookmarkTitle = "Bookmark"

// Bookmark is a saved URL. Bookmarks are keyed by URL, and search-result
// bookmarks additionally by their search query.
type Bookmark struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
