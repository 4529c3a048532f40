package caserecords

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// CaseRecordExporter streams case records as spreadsheet rows: the header is
// written on construction, one row per record, Finish flushes. The flattened
// columns mirror the demographic show-view export.

type CaseRecordExporter struct {
	writer    *csv.Writer
	jsonMode  bool
	rawWriter io.Writer
	counter   int
}

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var exportColumns = []string{
	"recordID",
	"createdAt",
	"psychologist",
	"childName",
	"age",
	"dateOfBirth",
	"gender",
	"languages",
	"class",
	"school",
	"economicStatus",
	"familyStructure",
	"primaryCareGiver",
	"academicPerformance",
	"dailyScreenTime",
	"scoringSystem",
	"reviewSubmitted",
}

func NewCaseRecordExporter(writer io.Writer, format string) (*CaseRecordExporter, error) {
	exporter := &CaseRecordExporter{rawWriter: writer}
	switch format {
	case FormatCSV:
		exporter.writer = csv.NewWriter(writer)
		if err := exporter.writer.Write(exportColumns); err != nil {
			return nil, err
		}
	case FormatJSON:
		exporter.jsonMode = true
		if _, err := writer.Write([]byte(`{ "caseRecords": [`)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return exporter, nil
}

// WriteRecord appends one flattened case record.
func (e *CaseRecordExporter) WriteRecord(record types.Details) error {
	if e.jsonMode {
		return e.writeJSONRecord(record)
	}
	return e.writer.Write(FlattenRecord(record))
}

// Finish flushes buffered output and closes the JSON envelope.
func (e *CaseRecordExporter) Finish() error {
	if e.jsonMode {
		_, err := e.rawWriter.Write([]byte("] }"))
		return err
	}
	e.writer.Flush()
	return e.writer.Error()
}

func (e *CaseRecordExporter) writeJSONRecord(record types.Details) error {
	row := FlattenRecord(record)
	var sb strings.Builder
	if e.counter > 0 {
		sb.WriteString(",")
	}
	sb.WriteString("{")
	for i, col := range exportColumns {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%q:%q", col, row[i])
	}
	sb.WriteString("}")
	e.counter++
	_, err := e.rawWriter.Write([]byte(sb.String()))
	return err
}

// FlattenRecord maps a case record onto the export columns, in order.
func FlattenRecord(record types.Details) []string {
	createdAt := ""
	if record.CreatedAt > 0 {
		createdAt = time.Unix(record.CreatedAt, 0).UTC().Format(time.RFC3339)
	}
	reviewSubmitted := "no"
	if record.ReviewMechanism != nil {
		reviewSubmitted = "yes"
	}
	scoringSystem := "no"
	if record.ScoringSystem {
		scoringSystem = "yes"
	}

	return []string{
		record.ID.Hex(),
		createdAt,
		record.Psychologist,
		record.Demographic.Child.Name,
		record.Demographic.Child.Age,
		record.Demographic.Child.DateOfBirth,
		record.Demographic.Child.Gender,
		strings.Join(record.Demographic.Child.Languages, "; "),
		record.Demographic.Child.Class,
		record.Demographic.Child.School,
		record.Demographic.Child.EconomicStatus,
		record.Demographic.Guardians.FamilyStructure,
		record.Demographic.Guardians.PrimaryCareGiver,
		record.Academic.Performance,
		record.ScreenAndDigitalAddiction.ParentPerspective.DailyScreenTime,
		scoringSystem,
		reviewSubmitted,
	}
}

// Columns returns the export header, for callers that build their own sink.
func Columns() []string {
	out := make([]string, len(exportColumns))
	copy(out, exportColumns)
	return out
}
