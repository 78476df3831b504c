package main

import (
	"context"
	"fmt"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/services/core/availability"
	"guidingpath-service/internal/app/services/guidingpath"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/utils"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const commandTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "slots",
		Short: "Inspect Guiding Path appointment availability",
	}
	rootCmd.PersistentFlags().Bool("json", false, "Print the raw JSON response")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log upstream calls to stderr")

	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(monthCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func dayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Print the slot grid for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")

			usecase, err := newAvailabilityUsecase(cmd)
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format(constvars.LayoutDateOnly)
			}

			ctx, cancel := newCommandContext()
			defer cancel()

			daySlots, err := usecase.GetDaySlots(ctx, date)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd.OutOrStdout(), daySlots)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d available)\n", daySlots.Date, daySlots.AvailableCount)
			for _, slot := range daySlots.Slots {
				fmt.Fprintf(out, "  %s  %s\n", slot.Time, slot.Status)
			}
			return nil
		},
	}
	cmd.Flags().String("date", "", "Date in YYYY-MM-DD, defaults to today")
	return cmd
}

func monthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the calendar summary for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetString("month")

			usecase, err := newAvailabilityUsecase(cmd)
			if err != nil {
				return err
			}
			if month == "" {
				month = availability.MonthKeyOf(time.Now())
			}

			ctx, cancel := newCommandContext()
			defer cancel()

			calendar, err := usecase.GetMonthCalendar(ctx, month)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd.OutOrStdout(), calendar)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (previous %s, next %s)\n", calendar.Month, calendar.PreviousMonth, calendar.NextMonth)
			for _, day := range calendar.Days {
				marker := "-"
				if day.Selectable {
					marker = "+"
				}
				fmt.Fprintf(out, "  %s %s %-9s occupied=%d\n", marker, day.Date, day.Weekday, day.OccupiedCount)
			}
			return nil
		},
	}
	cmd.Flags().String("month", "", "Month in YYYY-MM, defaults to the current month")
	return cmd
}

// newAvailabilityUsecase reads the same configuration as the HTTP service
// and sets the process time zone before any date is resolved.
func newAvailabilityUsecase(cmd *cobra.Command) (contracts.AvailabilityUsecase, error) {
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", internalConfig.App.Timezone, err)
	}
	time.Local = location

	log := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}

	client := guidingpath.NewAppointmentAPIClient(internalConfig, log)
	return availability.NewAvailabilityUsecase(client, log), nil
}

func newCommandContext() (context.Context, context.CancelFunc) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	return context.WithTimeout(ctx, commandTimeout)
}

func printJSON(w io.Writer, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
