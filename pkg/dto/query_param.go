package dto

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

type Filter struct {
	Limit int    `query:"limit"`
	Q     string `query:"q"`
}

// SearchLimit bounds the requested page size.
func (f Filter) SearchLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultSearchLimit
	case f.Limit > MaxSearchLimit:
		return MaxSearchLimit
	}

	return f.Limit
}
