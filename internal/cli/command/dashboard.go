package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/cli/output"
	"github.com/yndnr/moneytracker-go/internal/core/service"
)

// DashboardCommand returns the dashboard command.
func DashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Show aggregated finance overviews",
		Subcommands: []*cli.Command{
			{
				Name:   "summary",
				Usage:  "Show balances, monthly totals and expense breakdown",
				Action: dashboardSummary,
			},
			{
				Name:  "net-worth",
				Usage: "Show the net worth history",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "period",
						Usage: "7D, 1M, 3M, 6M or 1Y",
						Value: service.DefaultNetWorthPeriod,
					},
				},
				Action: dashboardNetWorth,
			},
		},
	}
}

// summaryTotals is the headline block of the summary table.
type summaryTotals struct {
	TotalBalance   float64 `json:"totalBalance"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	MonthlyExpense float64 `json:"monthlyExpense"`
	MonthlyChange  float64 `json:"monthlyChange"`
	Wallets        int     `json:"wallets"`
}

func dashboardSummary(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	summary, err := env.Services.Dashboard.Summary(c.Context)
	if err != nil {
		return err
	}

	if ParseGlobalFlags(c).Output != output.FormatTable {
		return render(c, summary)
	}

	if err := render(c, summaryTotals{
		TotalBalance:   summary.TotalBalance,
		MonthlyIncome:  summary.MonthlyIncome,
		MonthlyExpense: summary.MonthlyExpense,
		MonthlyChange:  summary.MonthlyChange,
		Wallets:        len(summary.Wallets),
	}); err != nil {
		return err
	}
	if len(summary.CategoryBreakdown) > 0 {
		fmt.Fprintln(c.App.Writer)
		if err := render(c, summary.CategoryBreakdown); err != nil {
			return err
		}
	}
	if len(summary.RecentTransactions) > 0 {
		fmt.Fprintln(c.App.Writer)
		return render(c, summary.RecentTransactions)
	}
	return nil
}

func dashboardNetWorth(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	history, err := env.Services.Dashboard.NetWorthHistory(c.Context, c.String("period"))
	if err != nil {
		return err
	}

	if ParseGlobalFlags(c).Output != output.FormatTable {
		return render(c, history)
	}

	t := &output.Table{}
	t.SetHeaders("DATE", "LABEL", "VALUE")
	for _, p := range history.History {
		t.AddRow(p.Date, p.Label, formatAmount(p.Value))
	}
	if err := t.Render(c.App.Writer); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "\nCurrent: %s  Change: %s (%.2f%%)\n",
		formatAmount(history.CurrentNetWorth), formatAmount(history.PeriodChange), history.PeriodChangePercent)
	return nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
