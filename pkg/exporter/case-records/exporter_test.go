package caserecords

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

func sampleRecord() types.Details {
	return types.Details{
		Psychologist: "user-1",
		CreatedAt:    1756425600,
		Demographic: types.DemographicDetails{
			Child: types.ChildDetails{
				Name:           "Test Child",
				Age:            "10",
				DateOfBirth:    "2016-02-14",
				Gender:         "Female",
				Languages:      []string{"English", "Hindi"},
				Class:          "5",
				School:         "Green Valley School",
				EconomicStatus: "Lower",
			},
			Guardians: types.GuardianDetails{
				PrimaryCareGiver: "Mother",
				FamilyStructure:  "Nuclear Family",
			},
		},
		Academic: types.AcademicDetails{Performance: "Average"},
		ScreenAndDigitalAddiction: types.ScreenAndDigitalAddiction{
			ParentPerspective: types.ParentScreenPerspective{DailyScreenTime: "1-2 hours"},
		},
		ScoringSystem:   true,
		ReviewMechanism: &types.ReviewMechanism{SubmittedAt: 1},
	}
}

func TestFlattenRecord(t *testing.T) {
	row := FlattenRecord(sampleRecord())
	if len(row) != len(Columns()) {
		t.Fatalf("row length %d does not match column count %d", len(row), len(Columns()))
	}
	if row[3] != "Test Child" {
		t.Errorf("unexpected child name: %s", row[3])
	}
	if row[7] != "English; Hindi" {
		t.Errorf("unexpected languages: %s", row[7])
	}
	if row[15] != "yes" || row[16] != "yes" {
		t.Errorf("unexpected flags: %s %s", row[15], row[16])
	}
	if !strings.HasPrefix(row[1], "2025-") && !strings.HasPrefix(row[1], "2026-") {
		t.Errorf("unexpected createdAt: %s", row[1])
	}
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	exporter, err := NewCaseRecordExporter(&buf, FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exporter.WriteRecord(sampleRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exporter.WriteRecord(types.Details{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exporter.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if rows[0][0] != "recordID" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][3] != "Test Child" {
		t.Errorf("unexpected row: %v", rows[1])
	}
	if rows[2][16] != "no" {
		t.Errorf("unexpected row: %v", rows[2])
	}
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	exporter, err := NewCaseRecordExporter(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exporter.WriteRecord(sampleRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exporter.WriteRecord(types.Details{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exporter.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed struct {
		CaseRecords []map[string]string `json:"caseRecords"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.CaseRecords) != 2 {
		t.Fatalf("unexpected record count: %d", len(parsed.CaseRecords))
	}
	if parsed.CaseRecords[0]["childName"] != "Test Child" {
		t.Errorf("unexpected record: %v", parsed.CaseRecords[0])
	}
	if parsed.CaseRecords[1]["scoringSystem"] != "no" {
		t.Errorf("unexpected record: %v", parsed.CaseRecords[1])
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewCaseRecordExporter(&buf, "xlsx"); err == nil {
		t.Error("should return an error")
	}
}
