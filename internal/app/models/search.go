package models

// SearchSource is one organic result reduced to the fields the chat UI
// renders.
type SearchSource struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// SearchAnswer is the response of POST /api/search: a direct answer
// plus up to three supporting sources in upstream order.
type SearchAnswer struct {
	Answer  string         `json:"answer"`
	Sources []SearchSource `json:"sources"`
}
