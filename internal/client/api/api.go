// Package api is the HTTP access layer of the examtrainer client: a thin
// request adapter (Client) plus stateless per-capability facades (Auth,
// Catalog, Questions, Exams, Ranking). Each facade method maps one server
// endpoint to one typed call; every call is a single round trip with no
// retry or caching, and errors are exactly those of the adapter.
package api

// API bundles all facades over one shared Client.
type API struct {
	Auth      *Auth
	Catalog   *Catalog
	Questions *Questions
	Exams     *Exams
	Ranking   *Ranking
}

// New builds the facade set for the given API origin.
func New(baseURL string, tokens TokenSource, opts ...Option) *API {
	c := NewClient(baseURL, tokens, opts...)
	return &API{
		Auth:      &Auth{c: c},
		Catalog:   &Catalog{c: c},
		Questions: &Questions{c: c},
		Exams:     &Exams{c: c},
		Ranking:   &Ranking{c: c},
	}
}
