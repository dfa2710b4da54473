/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package report renders the console summary and recommendation for a run.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/carverauto/netwatch/pkg/classify"
	"github.com/carverauto/netwatch/pkg/models"
)

var (
	infoColor     = color.New(color.FgCyan)
	successColor  = color.New(color.FgGreen)
	warningColor  = color.New(color.FgYellow)
	criticalColor = color.New(color.FgRed, color.Bold)
	sectionColor  = color.New(color.FgHiWhite, color.Bold)
)

// SetNoColor disables colored output globally.
func SetNoColor(nc bool) {
	color.NoColor = nc
}

// Recommendation is the final verdict of a run.
type Recommendation struct {
	HardwareSuspected bool
	Message           string
}

// Recommend inspects the correlation results and decides whether the
// evidence points at a hardware problem on a physical adapter.
func Recommend(results []models.CorrelationResult) Recommendation {
	withContext := false
	physical := false

	for _, r := range results {
		if !r.Physical {
			continue
		}

		physical = true

		if len(r.Correlated) > 0 {
			withContext = true
			break
		}
	}

	switch {
	case withContext:
		return Recommendation{
			HardwareSuspected: true,
			Message:           "Disconnect events on physical adapters have correlated system events. Check cabling, switch ports and NIC drivers.",
		}
	case physical:
		return Recommendation{
			HardwareSuspected: true,
			Message:           "Disconnect events touched physical adapters without further context. Review link stability on the affected ports.",
		}
	default:
		return Recommendation{
			Message: "No disconnect events were attributed to a physical adapter. No hardware action indicated.",
		}
	}
}

// Printer writes the human-readable run summary.
type Printer struct {
	out         io.Writer
	showVirtual bool
}

func NewPrinter(out io.Writer, showVirtual bool) *Printer {
	return &Printer{out: out, showVirtual: showVirtual}
}

func (p *Printer) section(title string) {
	fmt.Fprintln(p.out)
	sectionColor.Fprintf(p.out, "=== %s ===\n", title)
}

// PrintAdapters lists the classified adapters. Virtual adapters are shown
// only when requested.
func (p *Printer) PrintAdapters(partition classify.Partition) {
	p.section("Adapters")

	for _, a := range partition.Physical {
		successColor.Fprintf(p.out, "  [physical] %s", a.Name)

		if a.Description != "" {
			fmt.Fprintf(p.out, " (%s)", a.Description)
		}

		fmt.Fprintln(p.out)
	}

	if !p.showVirtual {
		if len(partition.Virtual) > 0 {
			infoColor.Fprintf(p.out, "  %d virtual/other adapters hidden\n", len(partition.Virtual))
		}

		return
	}

	for _, a := range partition.Virtual {
		infoColor.Fprintf(p.out, "  [virtual]  %s", a.Name)

		if a.Description != "" {
			fmt.Fprintf(p.out, " (%s)", a.Description)
		}

		fmt.Fprintln(p.out)
	}
}

// PrintCorrelations lists each disconnect anchor with its correlated
// context, newest first.
func (p *Printer) PrintCorrelations(results []models.CorrelationResult) {
	p.section("Disconnect events")

	if len(results) == 0 {
		successColor.Fprintln(p.out, "  No disconnect-class events in the collection window.")
		return
	}

	for _, r := range results {
		c := p.anchorColor(r)

		label := r.AdapterName
		if label == "" {
			label = "unattributed"
		}

		c.Fprintf(p.out, "  %s  [%d] %s (%s)\n",
			r.Anchor.Timestamp.Format(time.RFC3339), r.Anchor.KindID, r.Anchor.Description, label)

		for _, ev := range r.Correlated {
			fmt.Fprintf(p.out, "      ± %s  [%d] %s\n",
				ev.Timestamp.Format(time.RFC3339), ev.KindID, ev.Description)
		}
	}
}

func (p *Printer) anchorColor(r models.CorrelationResult) *color.Color {
	switch {
	case r.Physical:
		return criticalColor
	case r.Attributed():
		return warningColor
	default:
		return infoColor
	}
}

// PrintMonitorChanges lists the state changes detected by the live monitor.
func (p *Printer) PrintMonitorChanges(records []models.StateChangeRecord) {
	p.section("Live monitor")

	if len(records) == 0 {
		successColor.Fprintln(p.out, "  No state changes detected during monitoring.")
		return
	}

	for _, rec := range records {
		c := infoColor

		switch rec.Severity {
		case models.SeverityCritical:
			c = criticalColor
		case models.SeverityWarning:
			c = warningColor
		}

		c.Fprintf(p.out, "  %s  %s: %s\n",
			rec.Timestamp.Format(time.RFC3339), rec.AdapterName, rec.Description)
	}
}

// PrintRecommendation writes the final verdict.
func (p *Printer) PrintRecommendation(rec Recommendation) {
	p.section("Recommendation")

	if rec.HardwareSuspected {
		criticalColor.Fprintf(p.out, "  %s\n", rec.Message)
		return
	}

	successColor.Fprintf(p.out, "  %s\n", rec.Message)
}
