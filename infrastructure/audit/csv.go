package audit

import (
	"encoding/csv"
	"io"
	"time"

	"orgconnect/models"
)

// CSVHeader is the fixed first row of every export.
var CSVHeader = []string{"ID", "Timestamp", "Action", "User", "Organization", "Resource", "Severity", "IP Address", "Hash"}

// TimestampLayout renders export timestamps in UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// WriteCSV writes entries in the order given under CSVHeader.
func WriteCSV(w io.Writer, entries []models.AuditEntry) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			e.Timestamp.UTC().Format(TimestampLayout),
			e.Action,
			e.User,
			e.Organization,
			e.Resource,
			e.Severity,
			e.IPAddress,
			e.Hash,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportFilename names the download after the export day.
func ExportFilename(now time.Time) string {
	return "audit-log-" + now.UTC().Format("2006-01-02") + ".csv"
}
