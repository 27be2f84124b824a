package commands

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/formulation"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/services"
)

func printOutcome(app *AppContext, inst *instance.Instance, outcome *services.Outcome) {
	fmt.Printf("\n🎯 Scheduling Results\n\n")
	fmt.Printf("Run ID:    %s\n", outcome.RunID)
	fmt.Printf("Status:    %s\n", outcome.Status)
	fmt.Printf("Elapsed:   %s\n", outcome.Elapsed.Round(time.Millisecond))

	if !outcome.Status.HasSolution() {
		fmt.Println("\nNo roster produced.")
		return
	}

	fmt.Printf("Objective: %.4f\n", outcome.Objective)

	printRoster(app, outcome.Roster)
	printViolations(outcome.Violations)
}

// printRoster renders the roster day by day. When the configuration carries
// a roster start date, day indices become calendar dates.
func printRoster(app *AppContext, roster *formulation.Roster) {
	var dates []time.Time
	if app.Cfg.RosterStart != "" {
		start, err := time.Parse("2006-01-02", app.Cfg.RosterStart)
		if err == nil {
			dates, err = instance.DayDates(start, roster.Horizon.Days)
			if err != nil {
				app.Logger.Warn("Failed to expand roster dates", zap.Error(err))
				dates = nil
			}
		}
	}

	fmt.Printf("\n📅 Roster:\n\n")
	for d := 0; d < roster.Horizon.Days; d++ {
		if dates != nil {
			fmt.Printf("%s\n", dates[d].Format("2006-01-02 (Monday)"))
		} else {
			fmt.Printf("Day %d\n", d+1)
		}
		for t := 0; t < roster.Horizon.ShiftTypes; t++ {
			staff := roster.Assigned[d][t]
			if len(staff) == 0 {
				fmt.Printf("  Shift %d -> (none)\n", t)
				continue
			}
			ids := make([]string, len(staff))
			for i, s := range staff {
				ids[i] = fmt.Sprintf("%d", s)
			}
			fmt.Printf("  Shift %d -> staff %s\n", t, strings.Join(ids, " "))
		}
	}
}

func printViolations(violations []formulation.Violation) {
	if len(violations) == 0 {
		return
	}

	fmt.Printf("\n⚠️  Validation warnings (%d):\n", len(violations))
	for _, v := range violations {
		fmt.Printf("  • %s: %s\n", v.Family, v.Description)
	}
	fmt.Println()
}
