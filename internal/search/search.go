package search

import (
	"context"
	"strings"

	"github.com/Skotchmaster/sleepsound/internal/catalog"
	"github.com/Skotchmaster/sleepsound/pkg/pagination"
)

// Searcher returns matching product ids, best match first.
type Searcher interface {
	Search(ctx context.Context, query string, from, size int) (total int64, ids []int, err error)
}

// Local matches against the live catalog with the storefront's substring
// rules. Used when no search cluster is configured.
type Local struct {
	Catalog func() catalog.Catalog
}

func (l Local) Search(_ context.Context, query string, from, size int) (int64, []int, error) {
	hits := l.Catalog().Filter(catalog.Query{Search: strings.TrimSpace(query)})
	ids := make([]int, len(hits))
	for i, p := range hits {
		ids[i] = p.ID
	}
	return int64(len(ids)), pagination.Slice(ids, from, size), nil
}
