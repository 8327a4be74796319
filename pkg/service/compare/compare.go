// Package compare reconciles the authoritative setting schema with the
// settings present in local config files and reports the discrepancies.
package compare

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils"
	"go.uber.org/zap"
)

type Compare struct {
	logger   *zap.Logger
	config   *config.Config
	schemaDB SchemaDB
	out      io.Writer
}

func New(logger *zap.Logger, cfg *config.Config, schemaDB SchemaDB) *Compare {
	return &Compare{
		logger:   logger,
		config:   cfg,
		schemaDB: schemaDB,
		out:      os.Stdout,
	}
}

// Compare runs the whole pipeline: locate config files, extract occurrences,
// reconcile against the schema and print the grouped report. Only a missing
// explicit path or an unavailable schema abort the run; everything else
// degrades into warnings surfaced alongside the report.
func (c *Compare) Compare(ctx context.Context) error {
	schema, err := c.schemaDB.GetSchema(ctx)
	if err != nil {
		utils.LogError(c.logger, err, "failed to load the settings schema")
		return err
	}

	files, warnings, err := Locate(c.logger, c.config.Paths, c.config.HostConfigName)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		c.logger.Warn("no local config files found, every setting will be reported as missing")
	}

	var occurrences []models.Occurrence
	for _, file := range files {
		occs, warns, err := ExtractFile(file)
		if err != nil {
			c.logger.Warn("skipping unreadable config file", zap.String("file", file), zap.Error(err))
			warnings = append(warnings, models.Warning{File: file, Message: "unreadable: " + err.Error()})
			continue
		}
		c.logger.Debug("extracted settings",
			zap.String("file", file),
			zap.Int("occurrences", len(occs)))
		occurrences = append(occurrences, occs...)
		warnings = append(warnings, warns...)
	}

	missing, dropped, changedDefaults := c.config.Selection()
	report := Reconcile(schema, occurrences, Selection{
		Missing:         missing,
		Dropped:         dropped,
		ChangedDefaults: changedDefaults,
	})
	report.Warnings = warnings

	return c.printReport(report)
}

// ListSettings prints the authoritative setting names in schema order.
func (c *Compare) ListSettings(ctx context.Context) error {
	schema, err := c.schemaDB.GetSchema(ctx)
	if err != nil {
		utils.LogError(c.logger, err, "failed to load the settings schema")
		return err
	}
	for _, entry := range schema.Entries() {
		if _, err := fmt.Fprintln(c.out, entry.Name); err != nil {
			return err
		}
	}
	return nil
}

// Selection is the set of report categories a run should produce.
type Selection struct {
	Missing         bool
	Dropped         bool
	ChangedDefaults bool
}

// Reconcile merges the authoritative set, the live occurrences and the
// commented occurrences into the three report categories. Output order is
// deterministic: authoritative order for Missing, file-then-line order of
// first encounter for Dropped and of the compared occurrence for
// ChangedDefaults.
func Reconcile(schema *models.Schema, occurrences []models.Occurrence, sel Selection) *models.Report {
	// A commented occurrence counts as present too: it is the user's record of
	// the setting, just not an active customization.
	present := make(map[string]bool)
	type commented struct {
		occ models.Occurrence
		pos int
	}
	// The last commented occurrence in file order wins the comparison when a
	// name is commented out more than once.
	lastCommented := make(map[string]commented)

	var droppedEntries []models.ReportEntry
	droppedSeen := make(map[string]bool)

	for i, occ := range occurrences {
		if !schema.Has(occ.Name) {
			if !droppedSeen[occ.Name] {
				droppedSeen[occ.Name] = true
				droppedEntries = append(droppedEntries, models.ReportEntry{
					Category: models.CategoryDropped,
					Name:     occ.Name,
					File:     occ.File,
					Line:     occ.Line,
				})
			}
			continue
		}
		present[occ.Name] = true
		if occ.Commented {
			lastCommented[occ.Name] = commented{occ: occ, pos: i}
		}
	}

	report := &models.Report{}

	if sel.Missing {
		for _, entry := range schema.Entries() {
			if present[entry.Name] {
				continue
			}
			report.Missing = append(report.Missing, models.ReportEntry{
				Category: models.CategoryMissing,
				Name:     entry.Name,
				URL:      entry.DocURL,
			})
		}
	}

	if sel.Dropped {
		report.Dropped = droppedEntries
	}

	if sel.ChangedDefaults {
		compared := make([]commented, 0, len(lastCommented))
		for _, c := range lastCommented {
			compared = append(compared, c)
		}
		sort.Slice(compared, func(i, j int) bool { return compared[i].pos < compared[j].pos })

		for _, cand := range compared {
			entry, _ := schema.Lookup(cand.occ.Name)
			if e, ok := compareDefault(entry, cand.occ); ok {
				report.ChangedDefaults = append(report.ChangedDefaults, e)
			}
		}
	}

	return report
}

// compareDefault normalizes a commented occurrence and compares it against
// the authoritative default. A normalization failure on either side is
// reported as unverifiable rather than silently passing or failing.
func compareDefault(entry models.SettingEntry, occ models.Occurrence) (models.ReportEntry, bool) {
	result := models.ReportEntry{
		Category: models.CategoryChangedDefault,
		Name:     occ.Name,
		File:     occ.File,
		Line:     occ.Line,
		URL:      entry.DocURL,
	}

	expected, expErr := models.ValueFromYAML(entry.Default)
	found, foundErr := Normalize(occ.RawValue)

	if expErr != nil || foundErr != nil {
		result.Unverifiable = true
		result.Found = occ.RawValue
		if expErr == nil {
			result.Expected = expected.String()
		} else {
			result.Expected = fmt.Sprintf("%v", entry.Default)
		}
		return result, true
	}

	if expected.Equal(found) {
		return models.ReportEntry{}, false
	}

	result.Expected = expected.String()
	result.Found = found.String()
	return result, true
}
