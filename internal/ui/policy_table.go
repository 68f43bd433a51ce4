package ui

import (
	"fmt"
	"io"
	"strconv"

	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// PrintPolicyTable prints scaling policies in a styled box table
func PrintPolicyTable(w io.Writer, policies []pkgtypes.ScalingPolicy) error {
	t := &Table{Columns: []Column{
		{Header: "Name"},
		{Header: "Group"},
		{Header: "Adjustment Type", Width: 23},
		{Header: "Scaling", Width: 7},
		{Header: "Cooldown", Width: 8},
	}}

	for _, p := range policies {
		t.AddRow(
			Cell{p.Name, NameStyle},
			Cell{p.Group, ASGStyle},
			Cell{string(p.AdjustmentType), TypeStyle},
			adjustmentCell(p.Adjustment),
			Cell{fmt.Sprintf("%ds", p.Cooldown), MutedStyle},
		)
	}

	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %d scaling policies\n", len(policies))
	return err
}

func adjustmentCell(n int) Cell {
	switch {
	case n > 0:
		return Cell{"+" + strconv.Itoa(n), RunningStyle}
	case n < 0:
		return Cell{strconv.Itoa(n), PendingStyle}
	}
	return Cell{"0", MutedStyle}
}
