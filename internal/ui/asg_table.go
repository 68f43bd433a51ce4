package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// PrintASGTable prints Auto Scaling Groups in a styled box table
func PrintASGTable(w io.Writer, groups []pkgtypes.AutoScalingGroup) error {
	t := &Table{Columns: []Column{
		{Header: "Name"},
		{Header: "Launch Config"},
		{Header: "Desired", Width: 8},
		{Header: "Min", Width: 6},
		{Header: "Max", Width: 6},
		{Header: "Running", Width: 8},
		{Header: "Healthy", Width: 8},
		{Header: "Status", Width: 12},
	}}

	for _, asg := range groups {
		t.AddRow(
			Cell{asg.Name, NameStyle},
			Cell{formatOptional(asg.LaunchConfiguration), ASGStyle},
			Cell{strconv.Itoa(asg.DesiredCapacity), TypeStyle},
			Cell{strconv.Itoa(asg.MinSize), MutedStyle},
			Cell{strconv.Itoa(asg.MaxSize), MutedStyle},
			Cell{strconv.Itoa(asg.InstanceCount), IPStyle},
			healthCell(asg.HealthyCount, asg.InstanceCount),
			statusCell(asg.Status),
		)
	}

	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %d Auto Scaling Groups\n", len(groups))
	return err
}

func healthCell(healthy, total int) Cell {
	text := fmt.Sprintf("%d/%d", healthy, total)

	switch {
	case healthy == total && total > 0:
		return Cell{text, RunningStyle}
	case healthy == 0 && total > 0:
		return Cell{text, StoppedStyle}
	}
	return Cell{text, PendingStyle}
}

func statusCell(status string) Cell {
	switch status {
	case "InService", "":
		return Cell{formatOptional(status), RunningStyle}
	case "Updating", "Pending":
		return Cell{status, PendingStyle}
	default:
		return Cell{status, MutedStyle}
	}
}

// PrintASGDetails prints detailed information about an ASG and its instances
func PrintASGDetails(w io.Writer, asg *pkgtypes.AutoScalingGroup) error {
	details := []detail{
		{"Name:", asg.Name},
		{"Launch Config:", formatOptional(asg.LaunchConfiguration)},
		{"Load Balancers:", formatOptional(strings.Join(asg.LoadBalancers, ", "))},
		{"Desired Capacity:", strconv.Itoa(asg.DesiredCapacity)},
		{"Min Size:", strconv.Itoa(asg.MinSize)},
		{"Max Size:", strconv.Itoa(asg.MaxSize)},
		{"Running Instances:", strconv.Itoa(asg.InstanceCount)},
		{"Healthy:", fmt.Sprintf("%d/%d", asg.HealthyCount, asg.InstanceCount)},
		{"Health Check:", fmt.Sprintf("%s, %ds grace", formatOptional(asg.HealthCheckType), asg.HealthCheckPeriod)},
		{"Status:", asg.Status},
		{"Availability Zones:", strings.Join(asg.AZs, ", ")},
		{"Name Tag:", formatOptional(asg.Tags["Name"])},
	}
	if !asg.CreatedTime.IsZero() {
		details = append(details, detail{"Created:", asg.CreatedTime.Format("2006-01-02 15:04:05")})
	}

	if err := renderDetails(w, "Auto Scaling Group Details", details); err != nil {
		return err
	}

	if len(asg.Instances) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "\n  Instances:\n"); err != nil {
		return err
	}
	return PrintInstanceTable(w, asg.Instances)
}

// PrintInstanceTable prints the instances of a group
func PrintInstanceTable(w io.Writer, instances []pkgtypes.Instance) error {
	t := &Table{Columns: []Column{
		{Header: "ID", Width: 20},
		{Header: "Type", Width: 12},
		{Header: "AZ", Width: 12},
		{Header: "Health", Width: 10},
		{Header: "Lifecycle", Width: 12},
		{Header: "Launch Config"},
	}}

	for _, inst := range instances {
		health := Cell{inst.Health, RunningStyle}
		if inst.Health != "Healthy" {
			health.Style = StoppedStyle
		}
		lifecycle := Cell{inst.Lifecycle, PendingStyle}
		if inst.Lifecycle == "InService" {
			lifecycle.Style = RunningStyle
		}

		t.AddRow(
			Cell{inst.ID, IDStyle},
			Cell{inst.Type, TypeStyle},
			Cell{inst.AZ, AZStyle},
			health,
			lifecycle,
			Cell{formatOptional(inst.LaunchConfiguration), ASGStyle},
		)
	}

	return t.Render(w)
}
