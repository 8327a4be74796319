package compare

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSchema() *models.Schema {
	return models.NewSchema([]models.SettingEntry{
		{Name: "tabs.show", Default: "always", DocURL: "https://example.org/#tabs.show"},
		{Name: "scrolling.smooth", Default: false, DocURL: "https://example.org/#scrolling.smooth"},
		{Name: "downloads.position", Default: "top", DocURL: "https://example.org/#downloads.position"},
	})
}

func names(entries []models.ReportEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestReconcile_Categories(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "tabs.show", RawValue: "'never'", File: "config.py", Line: 3},
		{Name: "scrolling.smooth", RawValue: "True", Commented: true, File: "config.py", Line: 5},
		{Name: "tabs.favicons.gone", RawValue: "True", File: "config.py", Line: 9},
	}

	report := Reconcile(testSchema(), occs, Selection{Missing: true, Dropped: true, ChangedDefaults: true})

	// Live and commented occurrences both count as present.
	require.Equal(t, []string{"downloads.position"}, names(report.Missing))
	require.Equal(t, "https://example.org/#downloads.position", report.Missing[0].URL)

	require.Equal(t, []string{"tabs.favicons.gone"}, names(report.Dropped))
	require.Equal(t, 9, report.Dropped[0].Line)

	require.Equal(t, []string{"scrolling.smooth"}, names(report.ChangedDefaults))
	require.Equal(t, "False", report.ChangedDefaults[0].Expected)
	require.Equal(t, "True", report.ChangedDefaults[0].Found)
	require.False(t, report.ChangedDefaults[0].Unverifiable)
}

func TestReconcile_CommentedMatchingDefaultIsQuiet(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "downloads.position", RawValue: "'top'", Commented: true, File: "config.py", Line: 2},
	}
	report := Reconcile(testSchema(), occs, Selection{ChangedDefaults: true})
	require.Empty(t, report.ChangedDefaults)
}

func TestReconcile_LastCommentedOccurrenceWins(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "downloads.position", RawValue: "'bottom'", Commented: true, File: "config.py", Line: 2},
		{Name: "downloads.position", RawValue: "'top'", Commented: true, File: "config.py", Line: 8},
	}
	report := Reconcile(testSchema(), occs, Selection{ChangedDefaults: true})
	require.Empty(t, report.ChangedDefaults)

	// And the other way round: the final occurrence disagrees.
	occs[0], occs[1] = occs[1], occs[0]
	report = Reconcile(testSchema(), occs, Selection{ChangedDefaults: true})
	require.Equal(t, []string{"downloads.position"}, names(report.ChangedDefaults))
	require.Equal(t, 2, report.ChangedDefaults[0].Line)
}

func TestReconcile_DroppedDeduplicated(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "gone.b", File: "a.py", Line: 1},
		{Name: "gone.a", File: "a.py", Line: 2, Commented: true},
		{Name: "gone.b", File: "b.py", Line: 7},
	}
	report := Reconcile(testSchema(), occs, Selection{Dropped: true})
	require.Equal(t, []string{"gone.b", "gone.a"}, names(report.Dropped))
	require.Equal(t, "a.py", report.Dropped[0].File)
}

func TestReconcile_SelectionFilters(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "gone.a", File: "a.py", Line: 1},
		{Name: "scrolling.smooth", RawValue: "True", Commented: true, File: "a.py", Line: 2},
	}
	report := Reconcile(testSchema(), occs, Selection{Missing: true})
	require.NotEmpty(t, report.Missing)
	require.Empty(t, report.Dropped)
	require.Empty(t, report.ChangedDefaults)
}

func TestReconcile_UnverifiableValue(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "tabs.show", RawValue: "os.environ['TABS']", Commented: true, File: "a.py", Line: 4},
	}
	report := Reconcile(testSchema(), occs, Selection{ChangedDefaults: true})
	require.Len(t, report.ChangedDefaults, 1)
	entry := report.ChangedDefaults[0]
	require.True(t, entry.Unverifiable)
	require.Equal(t, "os.environ['TABS']", entry.Found)
	require.Equal(t, "'always'", entry.Expected)
}

// Two files against an authoritative set of {x, y, z}: x set live in one, y
// commented out in the other, z nowhere. Only z is missing; the commented y
// feeds the changed-defaults comparison instead.
func TestReconcile_CommentedCountsAsPresent(t *testing.T) {
	schema := models.NewSchema([]models.SettingEntry{
		{Name: "x", Default: "0"},
		{Name: "y", Default: "0"},
		{Name: "z", Default: "0"},
	})
	occs := []models.Occurrence{
		{Name: "x", RawValue: "'1'", File: "one.py", Line: 1},
		{Name: "y", RawValue: "'2'", Commented: true, File: "two.py", Line: 1},
	}

	report := Reconcile(schema, occs, Selection{Missing: true, Dropped: true, ChangedDefaults: true})

	require.Equal(t, []string{"z"}, names(report.Missing))
	require.Empty(t, report.Dropped)
	require.Equal(t, []string{"y"}, names(report.ChangedDefaults))
	require.Equal(t, "'0'", report.ChangedDefaults[0].Expected)
	require.Equal(t, "'2'", report.ChangedDefaults[0].Found)
}

func TestReconcile_EmptyOccurrences(t *testing.T) {
	report := Reconcile(testSchema(), nil, Selection{Missing: true, Dropped: true, ChangedDefaults: true})
	require.Equal(t, testSchema().Len(), len(report.Missing))
	require.Empty(t, report.Dropped)
	require.Empty(t, report.ChangedDefaults)
}

func TestReconcile_Idempotent(t *testing.T) {
	occs := []models.Occurrence{
		{Name: "tabs.show", RawValue: "'never'", File: "a.py", Line: 1},
		{Name: "gone.a", File: "a.py", Line: 2},
		{Name: "scrolling.smooth", RawValue: "True", Commented: true, File: "a.py", Line: 3},
	}
	sel := Selection{Missing: true, Dropped: true, ChangedDefaults: true}
	first := Reconcile(testSchema(), occs, sel)
	second := Reconcile(testSchema(), occs, sel)
	require.Equal(t, first, second)
}

type fakeSchemaDB struct {
	schema *models.Schema
	err    error
}

func (f *fakeSchemaDB) GetSchema(_ context.Context) (*models.Schema, error) {
	return f.schema, f.err
}

func newTestCompare(cfg *config.Config, db SchemaDB, out *bytes.Buffer) *Compare {
	return &Compare{
		logger:   zap.NewNop(),
		config:   cfg,
		schemaDB: db,
		out:      out,
	}
}

func TestCompare_EndToEnd(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.py"), `## Autogenerated doc comment.
c.tabs.show = 'never'

# c.scrolling.smooth = True
c.tabs.favicons.gone = True
`)
	writeFile(t, filepath.Join(dir, "sub", "extra.py"), `config.set('gone.too', 'x')
`)

	var out bytes.Buffer
	cfg := &config.Config{Paths: []string{dir}, Naked: true, HostConfigName: "config.py"}
	c := newTestCompare(cfg, &fakeSchemaDB{schema: testSchema()}, &out)

	require.NoError(t, c.Compare(context.Background()))

	got := out.String()
	require.Contains(t, got, "Not in local config:")
	require.Contains(t, got, "scrolling.smooth")
	require.Contains(t, got, "downloads.position")
	require.NotContains(t, got, "tabs.show\n")

	require.Contains(t, got, "Not available in qutebrowser anymore:")
	require.Contains(t, got, "tabs.favicons.gone")
	require.Contains(t, got, "gone.too")
}

func TestCompare_SchemaUnavailableIsFatal(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{HostConfigName: "config.py"}
	c := newTestCompare(cfg, &fakeSchemaDB{err: models.ErrSchemaUnavailable}, &out)

	err := c.Compare(context.Background())
	require.ErrorIs(t, err, models.ErrSchemaUnavailable)
	require.Empty(t, out.String())
}

func TestCompare_MissingPathIsFatal(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{Paths: []string{"/no/such/config.py"}, HostConfigName: "config.py"}
	c := newTestCompare(cfg, &fakeSchemaDB{schema: testSchema()}, &out)

	err := c.Compare(context.Background())
	var notFound *models.PathNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCompare_InSyncReport(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.py"), `c.tabs.show = 'never'
c.scrolling.smooth = True
c.downloads.position = 'bottom'
`)

	var out bytes.Buffer
	cfg := &config.Config{Paths: []string{dir}, Naked: true, HostConfigName: "config.py"}
	c := newTestCompare(cfg, &fakeSchemaDB{schema: testSchema()}, &out)

	require.NoError(t, c.Compare(context.Background()))
	require.Contains(t, out.String(), "in sync")
}

func TestListSettings(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{HostConfigName: "config.py"}
	c := newTestCompare(cfg, &fakeSchemaDB{schema: testSchema()}, &out)

	require.NoError(t, c.ListSettings(context.Background()))
	require.Equal(t, "tabs.show\nscrolling.smooth\ndownloads.position\n", out.String())
}
