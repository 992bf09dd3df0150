package dto

type Product struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type State struct {
	SessionID    string   `json:"session_id"`
	Revision     uint64   `json:"revision"`
	Layout       string   `json:"layout"`
	Screen       string   `json:"screen"`
	Depth        int      `json:"depth"`
	HasSelection bool     `json:"has_selection"`
	Selected     *Product `json:"selected,omitempty"`
}

type SearchHit struct {
	Product
	Distance int `json:"distance"`
}
