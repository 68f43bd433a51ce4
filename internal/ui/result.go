package ui

import (
	"fmt"
	"io"

	"github.com/vietdv277/scalekit/internal/provision"
)

// PrintResult prints what a provisioning run changed
func PrintResult(w io.Writer, res provision.Result) error {
	details := []detail{
		{"Group:", res.Group},
		{"Action:", string(res.Action)},
	}
	for _, r := range res.Deleted {
		details = append(details, detail{"Deleted:", r.Kind + " " + r.Name})
	}
	for _, r := range res.Created {
		details = append(details, detail{"Created:", r.Kind + " " + r.Name})
	}
	for _, p := range res.Policies {
		details = append(details, detail{"Policy:", fmt.Sprintf("%s (%+d, %ds)", p.Name, p.Adjustment, p.Cooldown)})
	}
	if len(res.Deleted)+len(res.Created)+len(res.Policies) == 0 {
		details = append(details, detail{"Changes:", "none"})
	}

	if err := renderDetails(w, "Provisioning Result", details); err != nil {
		return err
	}

	if lb := res.LoadBalancer; lb != nil && lb.DNSName != "" {
		_, err := fmt.Fprintf(w, "  Map the CNAME of your website to: %s\n", NameStyle.Render(lb.DNSName))
		return err
	}
	return nil
}
