package dtos

import (
	"time"

	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// Paged wraps one page of results with the resolved page metadata.
type Paged[T any] struct {
	Results []T            `json:"results"`
	Meta    utils.PageInfo `json:"meta"`
}

func NewPaged[T any](results []T, meta utils.PageInfo) Paged[T] {
	if results == nil {
		results = []T{}
	}
	return Paged[T]{Results: results, Meta: meta}
}

// Request dates travel as "2006-01-02" strings, enforced by the
// `datetime` validator tag before these helpers run.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// orZero defaults an optional decimal-string field for NUMERIC columns
// that do not accept empty strings.
func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
