package storage

import (
	"fmt"
	"strings"
	"time"
)

// Stable paths for the most recent snapshot. Consumers poll these
// without having to know the dated archive layout.
const (
	LatestSnapshotPath = "latest/prices.json"
	LatestSummaryPath  = "latest/index.html"
)

// SnapshotArchivePath generates the dated archive path for a snapshot.
// Format: snapshots/YYYY/MM/DD/prices-YYYY-MM-DD-HH-MM-SS.json
func SnapshotArchivePath(timestamp time.Time) string {
	return fmt.Sprintf("snapshots/%04d/%02d/%02d/prices-%04d-%02d-%02d-%02d-%02d-%02d.json",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// GetContentType determines the MIME content type based on file extension.
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}
