package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// PrintLBTable prints classic load balancers in a styled box table
func PrintLBTable(w io.Writer, lbs []pkgtypes.LoadBalancer) error {
	t := &Table{Columns: []Column{
		{Header: "Name"},
		{Header: "Listeners"},
		{Header: "Health Check"},
		{Header: "Instances", Width: 9},
		{Header: "DNS Name"},
	}}

	for _, lb := range lbs {
		check := "-"
		if lb.HealthCheck != nil {
			check = lb.HealthCheck.Target
		}
		t.AddRow(
			Cell{lb.Name, NameStyle},
			Cell{formatListeners(lb.Listeners), TypeStyle},
			Cell{check, MutedStyle},
			Cell{strconv.Itoa(lb.Instances), IPStyle},
			Cell{formatOptional(lb.DNSName), IDStyle},
		)
	}

	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %d load balancers\n", len(lbs))
	return err
}

func formatListeners(listeners []pkgtypes.Listener) string {
	if len(listeners) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(listeners))
	for _, l := range listeners {
		parts = append(parts, fmt.Sprintf("%d->%d/%s", l.ExternalPort, l.InternalPort, l.Protocol))
	}
	return strings.Join(parts, ", ")
}

// PrintTargetGroupTable prints target groups in a styled box table
func PrintTargetGroupTable(w io.Writer, tgs []pkgtypes.TargetGroup) error {
	t := &Table{Columns: []Column{
		{Header: "Name"},
		{Header: "Protocol", Width: 8},
		{Header: "Port", Width: 6},
		{Header: "Type", Width: 8},
		{Header: "VPC"},
	}}

	for _, tg := range tgs {
		t.AddRow(
			Cell{tg.Name, NameStyle},
			Cell{tg.Protocol, TypeStyle},
			Cell{strconv.Itoa(tg.Port), TypeStyle},
			Cell{tg.Type, MutedStyle},
			Cell{formatOptional(tg.VPCID), IDStyle},
		)
	}

	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %d target groups\n", len(tgs))
	return err
}
