package utils

import (
	"fmt"
	"time"
)

// GenerateExportVersionID produces a new dated version ID (YY-MM-N) that does
// not collide with any of the already used ones.
func GenerateExportVersionID(usedIDs []string) string {
	t := time.Now()

	date := t.Format("06-01")

	counter := 1
	newID := fmt.Sprintf("%s-%d", date, counter)
	for {
		idAlreadyPresent := false
		for _, used := range usedIDs {
			if used == newID {
				idAlreadyPresent = true
				break
			}
		}
		if !idAlreadyPresent {
			break
		}
		counter += 1
		newID = fmt.Sprintf("%s-%d", date, counter)
	}

	return newID
}
