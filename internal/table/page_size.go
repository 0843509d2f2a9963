package table

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultItemsPerPage = 10

// PageSize is one entry of the page-size selector. PageSizeAll is the "ALL" option.
type PageSize int

const PageSizeAll PageSize = 0

var PageSizeOptions = []PageSize{10, 20, 30, 40, 50, PageSizeAll}

func (p PageSize) String() string {
	if p == PageSizeAll {
		return "ALL"
	}
	return strconv.Itoa(int(p))
}

func ParsePageSize(raw string) (PageSize, error) {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, "all") {
		return PageSizeAll, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, raw)
	}
	for _, option := range PageSizeOptions {
		if option != PageSizeAll && int(option) == n {
			return option, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, raw)
}
