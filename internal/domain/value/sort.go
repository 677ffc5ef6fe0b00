package value

import (
	"fmt"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

type SortColumn string

const (
	ColumnRequiredCount SortColumn = "requiredCount"
	ColumnInstaBuyPrice SortColumn = "instaBuyPrice"
	ColumnInstaBuyTotal SortColumn = "instaBuyTotal"
	ColumnBuyOrderPrice SortColumn = "buyOrderPrice"
	ColumnBuyOrderTotal SortColumn = "buyOrderTotal"
)

func ParseSortColumn(s string) (SortColumn, error) {
	switch c := SortColumn(s); c {
	case ColumnRequiredCount, ColumnInstaBuyPrice, ColumnInstaBuyTotal, ColumnBuyOrderPrice, ColumnBuyOrderTotal:
		return c, nil
	default:
		return "", domain.NewError(errcodes.InvalidSortColumn, fmt.Sprintf("unknown sort column %q", s))
	}
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case Ascending, Descending:
		return d, nil
	default:
		return "", domain.NewError(errcodes.InvalidSortDirection, fmt.Sprintf("unknown sort direction %q", s))
	}
}

func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

type Sort struct {
	Column    SortColumn
	Direction SortDirection
}

// Toggle flips the direction when column is already active and otherwise
// switches to column in ascending order.
func (s Sort) Toggle(column SortColumn) Sort {
	if s.Column == column {
		return Sort{Column: column, Direction: s.Direction.Flip()}
	}

	return Sort{Column: column, Direction: Ascending}
}
