package testutil

import "context"

// StaticQuotes is a quote.Fetcher returning a fixed quote or error.
type StaticQuotes struct {
	Quote string
	Err   error
}

// Fetch returns q.Quote, q.Err.
func (q StaticQuotes) Fetch(context.Context) (string, error) {
	return q.Quote, q.Err
}
