package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
	caseExporter "github.com/Mentoons-github/Mentoons-website-sub002/pkg/exporter/case-records"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
)

func main() {
	slog.Info("Starting case export job")
	start := time.Now()

	for _, task := range conf.ExportTasks {
		if err := runExportTask(task); err != nil {
			slog.Error("Export task failed", slog.String("instanceID", task.InstanceID), slog.String("error", err.Error()))
			continue
		}
	}

	if err := caseDBService.DBClient.Disconnect(context.Background()); err != nil {
		slog.Error("Error closing DB connection", slog.String("error", err.Error()))
	}
	slog.Info("Case export job completed", slog.String("duration", time.Since(start).String()))
}

func runExportTask(task CaseExportTask) error {
	format := task.ExportFormat
	if format == "" {
		format = caseExporter.FormatCSV
	}

	targetDir := filepath.Join(conf.ExportPath, task.InstanceID)
	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		return err
	}

	versionID := utils.GenerateExportVersionID(usedVersionIDs(targetDir))
	filename := exportFileName(versionID, format)
	targetPath := filepath.Join(targetDir, filename)

	file, err := os.Create(targetPath)
	if err != nil {
		return err
	}
	defer file.Close()

	exporter, err := caseExporter.NewCaseRecordExporter(file, format)
	if err != nil {
		return err
	}

	count := 0
	err = caseDBService.FindAllCaseRecords(task.InstanceID, func(record types.Details) error {
		count++
		return exporter.WriteRecord(record)
	})
	if err != nil {
		return err
	}

	if err := exporter.Finish(); err != nil {
		return err
	}

	slog.Info("Exported case records", slog.String("instanceID", task.InstanceID), slog.Int("count", count), slog.String("file", targetPath))
	return nil
}

func exportFileName(versionID string, format string) string {
	return fmt.Sprintf("case-records##%s.%s", versionID, format)
}

// usedVersionIDs collects the version part of already existing export files so
// a rerun on the same day gets a fresh suffix.
func usedVersionIDs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		name = name[:len(name)-len(ext)]
		if idx := len("case-records##"); len(name) > idx && name[:idx] == "case-records##" {
			ids = append(ids, name[idx:])
		}
	}
	return ids
}
