package cohorts

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/amby-app/feedsync/pkg/constants"
)

// Roster row layout. The info column holds "Name [id] locale"; the
// composite column holds "'id';'cohort'" for the analytics importer.
const (
	colInfo      = 0
	colCohort    = 1
	colPlatform  = 3
	colComposite = 6

	rowWidth = 7
)

var bracketedID = regexp.MustCompile(`\[([^\]]+)\]`)

// Reconcile merges the roster sheet with the unsubscribe log and the bot
// user store and returns the full rewritten roster:
//
//   - every existing row is kept, padded to the full column width
//   - rows with an empty cohort get the undefined marker
//   - rows whose user id appears in the unsubscribe log get the
//     unsubscribed cohort
//   - the composite column is recomputed from id and cohort; a sentinel
//     character in the existing cell or in either part marks it undefined
//   - store users missing from the sheet are appended with the default
//     cohort
//   - the result is sorted ascending by the numeric sort column, with
//     non-numeric cells ordered first
func Reconcile(sheetRows [][]string, unsubscribed []string, storeUsers []User, defaultCohort string) [][]string {
	gone := make(map[string]struct{}, len(unsubscribed))
	for _, id := range unsubscribed {
		gone[id] = struct{}{}
	}

	present := make(map[string]struct{}, len(sheetRows))
	rows := make([][]string, 0, len(sheetRows)+len(storeUsers))

	for _, row := range sheetRows {
		padded := make([]string, rowWidth)
		copy(padded, row)

		id := extractID(padded[colInfo])
		if id != "" {
			present[id] = struct{}{}
		}

		if padded[colCohort] == "" {
			padded[colCohort] = constants.UndefinedMarker
		}
		if _, ok := gone[id]; ok {
			padded[colCohort] = constants.UnsubscribedCohort
		}

		if strings.Contains(padded[colComposite], constants.CohortSentinel) {
			padded[colComposite] = constants.UndefinedMarker
		} else {
			padded[colComposite] = composite(id, padded[colCohort])
		}
		rows = append(rows, padded)
	}

	for _, user := range storeUsers {
		if _, ok := present[user.UserID]; ok {
			continue
		}

		cohort := defaultCohort
		if _, unsub := gone[user.UserID]; unsub {
			cohort = constants.UnsubscribedCohort
		}

		row := make([]string, rowWidth)
		row[colInfo] = fmt.Sprintf("%s [%s] %s", user.Name, user.UserID, user.Locale)
		row[colCohort] = cohort
		row[colPlatform] = user.Platform
		row[colComposite] = composite(user.UserID, cohort)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i]) < sortKey(rows[j])
	})

	return rows
}

// extractID pulls the bracketed user id out of an info cell.
func extractID(info string) string {
	match := bracketedID.FindStringSubmatch(info)
	if match == nil {
		return ""
	}
	return match[1]
}

// composite builds the analytics id/cohort pair. The importer chokes on
// the sentinel character, so any occurrence degrades the cell to the
// undefined marker.
func composite(id, cohort string) string {
	if id == "" ||
		strings.Contains(id, constants.CohortSentinel) ||
		strings.Contains(cohort, constants.CohortSentinel) {
		return constants.UndefinedMarker
	}
	return fmt.Sprintf("'%s';'%s'", id, cohort)
}

func sortKey(row []string) int {
	value, err := strconv.Atoi(strings.TrimSpace(row[constants.CohortSortColumn]))
	if err != nil {
		return 0
	}
	return value
}
