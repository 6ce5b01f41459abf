package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/spf13/cobra"
)

// rentOptions are shared by the rent subcommands.
type rentOptions struct {
	file         string
	hybridPolicy string
	precision    int
	asJSON       bool
}

func (o *rentOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Lease terms JSON file (- for stdin)")
	cmd.Flags().StringVar(&o.hybridPolicy, "hybrid-policy", string(domain.HybridSum), "SUM or GREATER_OF")
	cmd.Flags().IntVar(&o.precision, "precision", 2, "Minor unit digits of the lease currency")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "Print JSON instead of a table")
	_ = cmd.MarkFlagRequired("file")
}

func (o *rentOptions) calculator() (domain.RentCalculator, error) {
	policy := domain.HybridPolicy(o.hybridPolicy)
	if !policy.IsValid() {
		return domain.RentCalculator{}, fmt.Errorf("unknown hybrid policy %q", o.hybridPolicy)
	}
	return domain.RentCalculator{Hybrid: policy}, nil
}

// loadLease reads lease terms and validates them the way the API does on create.
func (o *rentOptions) loadLease(stdin io.Reader) (*domain.Lease, error) {
	var r io.Reader = stdin
	if o.file != "-" {
		f, err := os.Open(o.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var terms dto.LeaseTerms
	if err := json.NewDecoder(r).Decode(&terms); err != nil {
		return nil, fmt.Errorf("failed to parse lease terms: %w", err)
	}

	lease := &domain.Lease{}
	terms.ApplyTo(lease)
	if err := lease.ValidateWith(domain.DefaultLeaseRules()); err != nil {
		return nil, err
	}
	return lease, nil
}

func RentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Preview rent for lease terms without touching the database",
	}
	cmd.AddCommand(rentScheduleCmd())
	cmd.AddCommand(rentDueCmd())
	return cmd
}

func rentScheduleCmd() *cobra.Command {
	opts := &rentOptions{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the billing schedule for the lease term",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := opts.calculator()
			if err != nil {
				return err
			}
			lease, err := opts.loadLease(cmd.InOrStdin())
			if err != nil {
				return err
			}
			lines, err := calc.BillingSchedule(lease)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToBillingScheduleResponse(lease, lines))
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PERIOD START\tPERIOD END\tDUE DATE\tMINIMUM DUE")
			for _, line := range lines {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", line.Period.Start, line.Period.End, line.DueDate, line.MinimumDue.Format(opts.precision))
			}
			return tw.Flush()
		},
	}

	opts.bind(cmd)
	return cmd
}

func rentDueCmd() *cobra.Command {
	opts := &rentOptions{}
	var (
		from, to string
		revenue  int64
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Compute rent due for one billing period",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := opts.calculator()
			if err != nil {
				return err
			}
			start, err := domain.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			end, err := domain.ParseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			lease, err := opts.loadLease(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var reported *domain.Money
			if cmd.Flags().Changed("revenue") {
				m := domain.NewMoney(revenue, lease.Currency)
				reported = &m
			}

			period := domain.Period{Start: start, End: end}
			due, err := calc.RentDueFor(lease, period, reported)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(dto.RentDueResponse{
					RentModel:   string(lease.RentModel),
					PeriodStart: start,
					PeriodEnd:   end,
					AmountDue:   due.Amount,
					Currency:    due.Currency,
					Display:     due.Format(opts.precision),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s to %s: %s\n", start, end, due.Format(opts.precision))
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&revenue, "revenue", 0, "Reported revenue for the period in minor units")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
