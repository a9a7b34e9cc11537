package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mauv0809/courtchart/internal/format"
	courthttp "github.com/mauv0809/courtchart/internal/http"
	"github.com/mauv0809/courtchart/internal/metrics"
	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/processor"
	"github.com/mauv0809/courtchart/internal/snapshot"
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	snapshotPath string
	output       string
	tournamentID string
	winsLevel    int
	order        []int
	reason       string
	resolvedBy   string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(overrideCmd)

	for _, cmd := range []*cobra.Command{scheduleCmd, standingsCmd, resolveCmd} {
		cmd.Flags().StringVarP(&snapshotPath, "file", "f", "", "Snapshot file (YAML or JSON)")
		cmd.MarkFlagRequired("file")
	}
	for _, cmd := range []*cobra.Command{standingsCmd, resolveCmd} {
		cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, csv or json")
	}

	overrideCmd.PersistentFlags().StringVarP(&tournamentID, "tournament", "t", "", "Tournament id")
	overrideCmd.MarkPersistentFlagRequired("tournament")
	overrideSetCmd.Flags().IntVarP(&winsLevel, "wins", "w", 0, "Wins level of the tie group")
	overrideSetCmd.Flags().IntSliceVar(&order, "order", nil, "Seeds in their final order, e.g. 3,1,2")
	overrideSetCmd.Flags().StringVar(&reason, "reason", "", "Why the order was decided manually")
	overrideSetCmd.Flags().StringVar(&resolvedBy, "by", "", "Who decided the order")
	overrideSetCmd.MarkFlagRequired("wins")
	overrideSetCmd.MarkFlagRequired("order")
	overrideClearCmd.Flags().IntVarP(&winsLevel, "wins", "w", 0, "Wins level of the tie group")
	overrideClearCmd.MarkFlagRequired("wins")
	overrideCmd.AddCommand(overrideSetCmd, overrideClearCmd, overrideListCmd, overrideHistoryCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats [query]",
	Short: "List the supported formats, optionally filtered by a search query",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return performGetRequest("/formats")
		}
		return performGetRequest("/formats?q=" + url.QueryEscape(args[0]))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate the schedule for the format and competitors of a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.Load(snapshotPath)
		if err != nil {
			return err
		}
		body, err := json.Marshal(courthttp.ScheduleRequest{Format: snap.FormatID, Competitors: snap.Seeded()})
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		return performRequest(http.MethodPost, "/schedule", "application/json", body)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Resolve the standings of a snapshot on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(snapshotPath)
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		return performRequest(http.MethodPost, "/standings?format="+url.QueryEscape(output), "application/yaml", body)
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the standings of a snapshot locally, using only its inline overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.Load(snapshotPath)
		if err != nil {
			return err
		}
		proc := processor.New(format.Default(), override.NewMemoryLedger(), metrics.NewService(prometheus.NewRegistry()))
		res, err := proc.Standings(snap)
		if err != nil {
			return err
		}
		return printStandings(cmd.OutOrStdout(), res)
	},
}

func printStandings(w io.Writer, res *processor.StandingsResult) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "csv":
		return standings.WriteCSV(w, res.Projection)
	case "text":
		fmt.Fprintln(w, standings.FormatText(res.Projection))
		for _, line := range res.Trace {
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage manual tiebreak overrides of a tournament",
}

var overrideSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record the final order of a tie group",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(courthttp.OverrideRequest{ResolvedOrder: order, Reason: reason, ResolvedBy: resolvedBy})
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		return performRequest(http.MethodPut, overridePath()+"/"+strconv.Itoa(winsLevel), "application/json", body)
	},
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the override of a tie group",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, overridePath()+"/"+strconv.Itoa(winsLevel), "", nil)
	},
}

var overrideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(overridePath())
	},
}

var overrideHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show every recorded and cleared override",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(overridePath() + "/history")
	},
}

func overridePath() string {
	return "/tournaments/" + url.PathEscape(tournamentID) + "/overrides"
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, "", nil)
}

func performRequest(method, endpoint, contentType string, payload []byte) error {
	target := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
