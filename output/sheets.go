// Package output publishes leaderboard standings to Google Sheets.
package output

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"frag-rating/leaderboard"
)

// mapPool is the active duty pool, in the column order analysts expect.
// Maps outside the pool still get columns, appended alphabetically.
var mapPool = []string{
	"de_ancient",
	"de_dust2",
	"de_inferno",
	"de_mirage",
	"de_nuke",
	"de_overpass",
	"de_train",
}

// SheetsClient handles Google Sheets operations
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsClient creates a new Google Sheets client using service account credentials
func NewSheetsClient(credentialsJSON []byte, sheetURL, sheetName string) (*SheetsClient, error) {
	ctx := context.Background()

	// Parse credentials and create JWT config
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse credentials")
	}

	// Create the Sheets service
	client := config.Client(ctx)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets service")
	}

	// Extract spreadsheet ID from URL
	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	return &SheetsClient{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// extractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL
func extractSpreadsheetID(url string) (string, error) {
	// Match pattern: /spreadsheets/d/{spreadsheetId}/
	re := regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	matches := re.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", errors.Errorf("could not extract spreadsheet ID from URL: %s", url)
	}
	return matches[1], nil
}

// UploadStandings replaces the sheet contents with the given standings,
// written in the order they arrive.
func (c *SheetsClient) UploadStandings(standings []leaderboard.Standing) error {
	ctx := context.Background()

	rows := standingRows(standings)

	// Clear existing data in the sheet first
	clearRange := fmt.Sprintf("%s!A:ZZ", c.sheetName)
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "failed to clear sheet")
	}

	// Write the data
	writeRange := fmt.Sprintf("%s!A1", c.sheetName)
	valueRange := &sheets.ValueRange{
		Values: rows,
	}

	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrap(err, "failed to write to sheet")
	}

	log.WithFields(log.Fields{
		"spreadsheet": c.spreadsheetID,
		"sheet":       c.sheetName,
		"players":     len(standings),
	}).Info("Uploaded leaderboard standings")

	return nil
}

// standingRows renders the header row plus one row per standing.
func standingRows(standings []leaderboard.Standing) [][]interface{} {
	mapCols := mapColumns(standings)

	headers := []interface{}{
		"Name", "Role", "Games",
		"Avg Rating", "Adjusted Rating", "Consistency Penalty", "Saturation Penalty", "Avg Raw Impact",
	}
	for _, m := range mapCols {
		title := mapColumnTitle(m)
		headers = append(headers, title+" Rating", title+" Games")
	}

	rows := make([][]interface{}, 0, len(standings)+1)
	rows = append(rows, headers)

	for _, s := range standings {
		row := []interface{}{
			s.Name, string(s.Role), s.Games,
			s.AvgRating, s.AdjustedRating, s.ConsistencyPenalty, s.SaturationPenalty, s.AvgRawImpact,
		}
		for _, m := range mapCols {
			row = append(row, mapRatingCell(s, m), mapGamesCell(s, m))
		}
		rows = append(rows, row)
	}
	return rows
}

// mapColumns returns the pool maps followed by any other maps present in
// the standings, sorted by name.
func mapColumns(standings []leaderboard.Standing) []string {
	inPool := make(map[string]bool, len(mapPool))
	for _, m := range mapPool {
		inPool[m] = true
	}

	extraSet := make(map[string]bool)
	for _, s := range standings {
		for m := range s.MapGames {
			if !inPool[m] {
				extraSet[m] = true
			}
		}
	}

	extras := maps.Keys(extraSet)
	sort.Strings(extras)
	return append(append([]string{}, mapPool...), extras...)
}

// mapRatingCell returns the standing's rating on a map, or an empty cell if not played
func mapRatingCell(s leaderboard.Standing, mapName string) interface{} {
	if rating, ok := s.MapRatings[mapName]; ok {
		return rating
	}
	return ""
}

// mapGamesCell returns the games played on a map, or an empty cell if not played
func mapGamesCell(s leaderboard.Standing, mapName string) interface{} {
	if games, ok := s.MapGames[mapName]; ok {
		return games
	}
	return ""
}

// mapColumnTitle turns "de_dust2" into "Dust2".
func mapColumnTitle(mapName string) string {
	name := strings.TrimPrefix(mapName, "de_")
	if name == "" {
		return mapName
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
