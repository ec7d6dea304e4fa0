package cmd

import (
	"fmt"
	"os"
	"strconv"

	"venue-manager/core/reconcile"
	"venue-manager/core/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	eventFlag  string
	dateFlag   string
	dryRunFlag bool
)

// roomsCmd is the parent command for room operations.
var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Probe rooms and reconcile their shares",
	Long: `Runs room operations from the command line. Runs take the same per-room
lock as the server, so a CLI scan and an HTTP scan of one room never overlap.`,
}

var roomPingCmd = &cobra.Command{
	Use:   "ping [room-id]",
	Short: "Check whether a room's machine is reachable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRoomID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}

		result, err := rt.rooms().Service().Ping(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var roomScanCmd = &cobra.Command{
	Use:   "scan [room-id]",
	Short: "Scan a room share and match files against expected uploads",
	Long: `Probes the room, scans its share and matches every file against the
uploads expected for the room. Matched uploads are marked delivered unless --dry-run is set.

Examples:
  # Scan and commit matches for one event day
  rooms scan 3 --event 12 --date 2026-03-14

  # Report only
  rooms scan 3 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := roomRequest(args[0])
		if err != nil {
			return err
		}
		req.Commit = !dryRunFlag

		rt, err := bootstrap(true)
		if err != nil {
			return err
		}

		report, err := rt.rooms().Service().Scan(cmd.Context(), req)
		if err != nil {
			return err
		}

		rt.log.Info("Scan finished",
			zap.Uint("room_id", report.RoomID),
			zap.String("status", string(report.Status)),
			zap.Int("total_files", report.TotalFiles),
			zap.Int("matched_uploads", report.MatchedUploads),
			zap.Int("unmatched_files", report.UnmatchedFiles),
			zap.Bool("committed", report.Committed),
		)
		if err := printJSON(report); err != nil {
			return err
		}
		if report.Status == reconcile.StatusError {
			return fmt.Errorf("scan failed (%s): %s", report.ErrorKind, report.Error)
		}
		return nil
	},
}

var roomVerifyCmd = &cobra.Command{
	Use:   "verify [room-id]",
	Short: "List which expected uploads of a room were delivered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := roomRequest(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}

		report, err := rt.rooms().Service().Verify(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

var eventScanCmd = &cobra.Command{
	Use:   "scan-event [event-id]",
	Short: "Scan every room that expects uploads for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseRoomID(args[0])
		if err != nil {
			return err
		}
		date, err := utils.OptionalDate(dateFlag)
		if err != nil {
			return err
		}
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}

		reports, err := rt.rooms().Service().ScanEvent(cmd.Context(), eventID, date, !dryRunFlag)
		if err != nil {
			return err
		}
		return printJSON(reports)
	},
}

func init() {
	roomsCmd.AddCommand(roomPingCmd, roomScanCmd, roomVerifyCmd, eventScanCmd)

	for _, c := range []*cobra.Command{roomScanCmd, roomVerifyCmd} {
		c.Flags().StringVar(&eventFlag, "event", "", "Only consider uploads of this event")
	}
	for _, c := range []*cobra.Command{roomScanCmd, roomVerifyCmd, eventScanCmd} {
		c.Flags().StringVar(&dateFlag, "date", "", "Only consider uploads of this session date (YYYY-MM-DD)")
	}
	roomScanCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report matches without marking uploads delivered")
	eventScanCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report matches without marking uploads delivered")

	RootCmd.AddCommand(roomsCmd)
}

func parseRoomID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return uint(id), nil
}

func roomRequest(arg string) (reconcile.Request, error) {
	id, err := parseRoomID(arg)
	if err != nil {
		return reconcile.Request{}, err
	}
	eventID, err := utils.OptionalUint(eventFlag)
	if err != nil {
		return reconcile.Request{}, err
	}
	date, err := utils.OptionalDate(dateFlag)
	if err != nil {
		return reconcile.Request{}, err
	}
	return reconcile.Request{RoomID: id, EventID: eventID, SessionDate: date}, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
