package main

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func main() {
	dropIndexes()

	createIndexes()

	migrationTasks()
}

func dropIndexes() {
	if conf.TaskConfigs.DropIndexes.CaseDB == DropIndexesModeAll {
		caseDBService.DropAllIndexes()
	}

	if conf.TaskConfigs.DropIndexes.PortalUserDB == DropIndexesModeAll {
		portalUserDBService.DropAllIndexes()
	}
}

func createIndexes() {
	if conf.TaskConfigs.CreateIndexes.CaseDB {
		caseDBService.CreateDefaultIndexes()
	}

	if conf.TaskConfigs.CreateIndexes.PortalUserDB {
		portalUserDBService.CreateDefaultIndexes()
	}
}

func migrationTasks() {
	if conf.TaskConfigs.MigrationTasks.NormalizeCaseRecordSlots {
		for _, instanceID := range caseDBService.InstanceIDs {
			start := time.Now()
			slog.Info("Normalizing case record slots", slog.String("instanceID", instanceID))
			count, err := normalizeCaseRecordSlots(instanceID)
			if err != nil {
				slog.Error("Error normalizing case record slots", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
			}
			slog.Info("Case record slots normalized",
				slog.String("instanceID", instanceID),
				slog.Int("updatedRecords", count),
				slog.String("duration", time.Since(start).String()))
		}
	}
}

// normalizeCaseRecordSlots rewrites stored records whose three-slot lists do
// not have exactly three entries. Records already in shape are left alone.
func normalizeCaseRecordSlots(instanceID string) (int, error) {
	var toUpdate []types.Details
	err := caseDBService.FindAllCaseRecords(instanceID, func(record types.Details) error {
		normalized := casedata.NormalizeThreeSlots(record)
		if !reflect.DeepEqual(record, normalized) {
			toUpdate = append(toUpdate, normalized)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, record := range toUpdate {
		if _, err := caseDBService.ReplaceCaseRecord(instanceID, record.ID.Hex(), record); err != nil {
			slog.Error("Error replacing case record", slog.String("caseID", record.ID.Hex()), slog.String("error", err.Error()))
			continue
		}
		updated++
	}
	return updated, nil
}
