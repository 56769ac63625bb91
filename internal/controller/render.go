package controller

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

const (
	chartWidth    = 40
	maxListedName = 6
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

func renderRun(report m.RunReport) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Evaluating build script groups"))
	b.WriteString("\n")

	settings := fmt.Sprintf("algorithm=%s threshold=%g scripts=%d paths=%d universe=%d seed=%d",
		report.Algorithm, report.Threshold, report.Generate.Scripts, report.Generate.Paths,
		report.UniverseSize, report.Generate.Seed)
	if report.Metric != "" {
		settings += " metric=" + report.Metric
	}

	b.WriteString(mutedStyle.Render(settings))
	b.WriteString("\n\n")
	b.WriteString(renderGroupTable(report.Evaluation))
	b.WriteString("\n")
	b.WriteString(renderSummary(report.Evaluation))

	return b.String()
}

func renderGroupTable(eval m.Evaluation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Group", "Scripts", "Common Paths", "Per Script", "Members"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, g := range eval.Groups {
		table.Append([]string{
			fmt.Sprintf("%d", g.Index),
			fmt.Sprintf("%d", g.Members),
			fmt.Sprintf("%d", g.CommonPaths),
			fmt.Sprintf("%.2f", g.CommonPerMember),
			abbreviate(g.MemberNames),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", eval.TotalGroups),
		fmt.Sprintf("%d", eval.TotalItems),
		"", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

func renderSummary(eval m.Evaluation) string {
	if eval.TotalGroups == 0 {
		return "No groups to evaluate.\n"
	}

	var b strings.Builder

	b.WriteString(headingStyle.Render("Global statistics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total number of groups:           %d\n", eval.TotalGroups)
	fmt.Fprintf(&b, "  Average build scripts per group:  %.3f\n", eval.AvgMembers)
	fmt.Fprintf(&b, "  Average common paths per group:   %.3f\n", eval.AvgCommonPaths)
	fmt.Fprintf(&b, "  Average similarity within groups: %.3f\n", eval.AvgSimilarity)

	return b.String()
}

func renderSweep(report m.SweepReport) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Threshold sweep: " + report.Algorithm))
	b.WriteString("\n")

	settings := fmt.Sprintf("seeds=%v scripts=%d paths=%d min=%d max=%d",
		report.Seeds, report.Generate.Scripts, report.Generate.Paths,
		report.Generate.MinPaths, report.Generate.MaxPaths)
	if report.Metric != "" {
		settings += " metric=" + report.Metric
	}

	b.WriteString(mutedStyle.Render(settings))
	b.WriteString("\n\n")
	b.WriteString(renderSweepTable(report.Points))
	b.WriteString("\n")
	b.WriteString(renderSweepChart(report.Points, chartWidth))

	return b.String()
}

func renderSweepTable(points []m.SweepPoint) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Threshold", "Runs", "Groups", "Scripts/Group", "Common/Group", "Similarity"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, p := range points {
		table.Append([]string{
			fmt.Sprintf("%g", p.Threshold),
			fmt.Sprintf("%d", p.Runs),
			fmt.Sprintf("%.2f", p.AvgGroups),
			fmt.Sprintf("%.3f", p.AvgMembers),
			fmt.Sprintf("%.3f", p.AvgCommonPaths),
			fmt.Sprintf("%.3f", p.AvgSimilarity),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// renderSweepChart draws average scripts per group against threshold as
// horizontal bars scaled to width.
func renderSweepChart(points []m.SweepPoint, width int) string {
	if len(points) == 0 {
		return ""
	}

	peak := 0.0
	for _, p := range points {
		peak = math.Max(peak, p.AvgMembers)
	}

	var b strings.Builder

	b.WriteString(headingStyle.Render("Average build scripts per group"))
	b.WriteString("\n")

	for _, p := range points {
		n := 0
		if peak > 0 {
			n = int(math.Round(p.AvgMembers / peak * float64(width)))
		}

		fmt.Fprintf(&b, "%8g │%s %.3f\n", p.Threshold, barStyle.Render(strings.Repeat("█", n)), p.AvgMembers)
	}

	return b.String()
}

func abbreviate(names []string) string {
	if len(names) <= maxListedName {
		return strings.Join(names, ", ")
	}

	return fmt.Sprintf("%s, … (+%d)", strings.Join(names[:maxListedName], ", "), len(names)-maxListedName)
}
