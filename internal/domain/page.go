package domain

// ListQuery selects one page of a filtered listing
type ListQuery struct {
	Filter  string
	Page    int
	PerPage int
}

// Page is one slice of a listing with its navigation envelope.
// Prev and Next are nil at the edges.
type Page[T any] struct {
	First int  `json:"first"`
	Prev  *int `json:"prev"`
	Next  *int `json:"next"`
	Last  int  `json:"last"`
	Pages int  `json:"pages"`
	Items int  `json:"items"`
	Data  []T  `json:"data"`

	// Page and PerPage echo the effective query after clamping.
	Page    int `json:"-"`
	PerPage int `json:"-"`
}
