package main

import (
	"encoding/json"
	"fmt"
	"io"

	"script-sheets/internal/script"

	"github.com/spf13/cobra"
)

var nightOrderJSON bool

var nightOrderCmd = &cobra.Command{
	Use:   "night-order <script.json>",
	Short: "Print the first and other night wake order",
	Args:  cobra.ExactArgs(1),
	RunE:  runNightOrder,
}

func init() {
	nightOrderCmd.Flags().BoolVar(&nightOrderJSON, "json", false, "print the orders as json")
}

func runNightOrder(cmd *cobra.Command, args []string) error {
	parsed, _, err := loadScript(cmd, args[0])
	if err != nil {
		return err
	}
	orders := script.BuildNightOrders(parsed.Characters)
	out := cmd.OutOrStdout()
	if nightOrderJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(orders)
	}
	fmt.Fprintf(out, "%s\n\n", parsed.Title())
	printNight(out, "First Night", orders.First, script.FirstNight)
	fmt.Fprintln(out)
	printNight(out, "Other Nights", orders.Other, script.OtherNight)
	return nil
}

func printNight(w io.Writer, heading string, entries []script.NightOrderEntry, night script.Night) {
	fmt.Fprintf(w, "%s\n", heading)
	for i, entry := range entries {
		reminder := entry.Reminder(night)
		if reminder == "" {
			fmt.Fprintf(w, "%2d. %s\n", i+1, entry.Name())
			continue
		}
		fmt.Fprintf(w, "%2d. %s: %s\n", i+1, entry.Name(), reminder)
	}
}
