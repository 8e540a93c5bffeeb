package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the financial summary and due alerts",
	Long: `Report aggregates both ledger sides as of a date (today by default) and
prints the summary together with the pending entries needing attention. With
--json the raw summary is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("as-of", "", "report date in YYYY-MM-DD form (default: today)")
	reportCmd.Flags().Bool("json", false, "print the summary as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	svcs, _, err := openServices()
	if err != nil {
		return err
	}

	asOf := time.Now()
	if s, _ := cmd.Flags().GetString("as-of"); s != "" {
		asOf, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q, use YYYY-MM-DD", s)
		}
	}

	ctx := cmd.Context()
	summary, err := svcs.Reporting.FinancialSummary(ctx, asOf)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printSummary(summary)

	for _, kind := range []domain.LedgerKind{domain.KindPayable, domain.KindReceivable} {
		alerts, err := svcs.Ledger.GetDueAlerts(ctx, kind)
		if err != nil {
			return fmt.Errorf("collecting alerts: %w", err)
		}
		printAlerts(kind, alerts)
	}
	return nil
}

func printSummary(s *domain.FinancialSummary) {
	fmt.Printf("Financial summary as of %s\n\n", s.AsOf.Format("2006-01-02"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "\tTotal\tPending\tSettled\tOverdue\t")
	fmt.Fprintf(w, "Payables\t%s\t%s\t%s\t%s\t\n",
		utils.FormatBRL(s.Payables.TotalAmount), utils.FormatBRL(s.Payables.PendingAmount),
		utils.FormatBRL(s.Payables.SettledAmount), utils.FormatBRL(s.Payables.OverdueAmount))
	fmt.Fprintf(w, "Receivables\t%s\t%s\t%s\t%s\t\n",
		utils.FormatBRL(s.Receivables.TotalAmount), utils.FormatBRL(s.Receivables.PendingAmount),
		utils.FormatBRL(s.Receivables.SettledAmount), utils.FormatBRL(s.Receivables.OverdueAmount))
	w.Flush()

	fmt.Printf("\nCurrent balance:   %s\n", utils.FormatBRL(s.CurrentBalance))
	fmt.Printf("Projected balance: %s\n", utils.FormatBRL(s.ProjectedBalance))
}

func printAlerts(kind domain.LedgerKind, alerts *domain.DueAlerts) {
	label := "Payables"
	if kind == domain.KindReceivable {
		label = "Receivables"
	}

	total := len(alerts.Overdue) + len(alerts.DueToday) + len(alerts.DueSoon)
	if total == 0 {
		fmt.Printf("\n%s: nothing needs attention\n", label)
		return
	}

	fmt.Printf("\n%s needing attention (%d overdue, %d due today, %d due soon):\n",
		label, len(alerts.Overdue), len(alerts.DueToday), len(alerts.DueSoon))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, group := range [][]domain.LedgerEntry{alerts.Overdue, alerts.DueToday, alerts.DueSoon} {
		for _, e := range group {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				e.EntryID, e.DueDate.Format("2006-01-02"), string(e.Urgency),
				utils.FormatBRL(e.Amount), e.Counterpart)
		}
	}
	w.Flush()
}
