package cmd

import (
	"venue-manager/feature/integrity"
	"venue-manager/feature/rooms/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and upload storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the upload bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the upload bucket if missing")
}

func runIntegrityChecks(cmd *cobra.Command, runSchema, runStorage bool) error {
	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	logg := rt.log
	svc := integrity.NewFeature(rt.client, rt.cfg.Storage, rt.db, models.All(), logg).Service()

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Database schema matches the models.")
		} else {
			logg.Warn("Database schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if !tbl.Exists {
					logg.Warn("Missing Table", zap.String("table", table))
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking upload storage...")
		check := svc.CheckStorage
		if fixFlag {
			check = svc.FixStorage
		}
		report, err := check(cmd.Context())
		if err != nil {
			return err
		}
		switch {
		case report.Fixed:
			logg.Info("Upload bucket created.", zap.String("bucket", report.Bucket))
		case report.Exists:
			logg.Info("Upload storage is intact.", zap.String("backend", report.Backend))
		default:
			logg.Warn("Upload bucket is missing. Run with --fix to create it.", zap.String("bucket", report.Bucket))
		}
	}

	return nil
}
