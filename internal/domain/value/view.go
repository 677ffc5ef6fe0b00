package value

import (
	"fmt"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

// View selects which ranking is displayed.
type View string

const (
	ViewInstaBuy View = "instaBuy"
	ViewBuyOrder View = "buyOrder"
)

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewInstaBuy, ViewBuyOrder:
		return v, nil
	default:
		return "", domain.NewError(errcodes.InvalidView, fmt.Sprintf("unknown view %q", s))
	}
}
