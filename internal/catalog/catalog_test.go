package catalog_test

import (
	"bytes"
	"context"
	"testing"

	"drills/internal/catalog"
	"drills/pkg/drill"

	"github.com/stretchr/testify/require"
)

func runDrill(t *testing.T, id string) string {
	t.Helper()

	d, ok := catalog.Builtin().Get(id)
	require.True(t, ok, "drill %q must exist", id)
	require.True(t, d.Runnable(), "drill %q must be runnable", id)

	var buf bytes.Buffer
	err := d.Run(context.Background(), &buf, drill.Env{Workdir: t.TempDir()})
	require.NoError(t, err, "drill %q must handle its failure at the point of use", id)

	return buf.String()
}

func TestBuiltinRegistry(t *testing.T) {
	r := catalog.Builtin()

	all := r.All()
	require.NotEmpty(t, all)

	// IDs are unique and lookups agree with All
	seen := map[string]bool{}
	for _, d := range all {
		require.False(t, seen[d.ID], "duplicate drill ID %q", d.ID)
		seen[d.ID] = true

		got, ok := r.Get(d.ID)
		require.True(t, ok)
		require.Equal(t, d.ID, got.ID)
		require.NotEmpty(t, d.Question, "drill %q needs a question", d.ID)
		require.NotEmpty(t, d.Answer, "drill %q needs an answer", d.ID)
	}

	require.Equal(t,
		[]drill.Topic{drill.TopicErrors, drill.TopicFiles, drill.TopicLogging, drill.TopicMemory},
		r.Topics())
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := catalog.NewRegistry()
	d := drill.Drill{ID: "x/y", Topic: drill.TopicErrors}

	require.NoError(t, r.Register(d))
	require.Error(t, r.Register(d))
	require.Error(t, r.Register(drill.Drill{}))
}

func TestByTopic(t *testing.T) {
	r := catalog.Builtin()

	for _, d := range r.ByTopic(drill.TopicFiles) {
		require.Equal(t, drill.TopicFiles, d.Topic)
	}
	require.NotEmpty(t, r.ByTopic(drill.TopicFiles))
	require.Empty(t, r.ByTopic(drill.Topic("bogus")))
}

func TestDivideDrill(t *testing.T) {
	out := runDrill(t, "errors/divide")
	require.Contains(t, out, "10 / 2 = 5")
	require.Contains(t, out, "Cannot divide by zero!")
}

func TestLookupDrill(t *testing.T) {
	out := runDrill(t, "errors/lookup")
	require.Contains(t, out, "a = 1")
	require.Contains(t, out, "Key not found!")
}

func TestIndexDrill(t *testing.T) {
	out := runDrill(t, "errors/index")
	require.Contains(t, out, "s[2] = 30")
	require.Contains(t, out, "Index out of range!")
}

func TestConvertDrill(t *testing.T) {
	out := runDrill(t, "errors/convert")
	require.Contains(t, out, "parsed 42")
	require.Contains(t, out, "Invalid number!")
}

func TestMissingFileDrill(t *testing.T) {
	out := runDrill(t, "files/missing")
	require.Contains(t, out, "File not found!")
}

func TestRoundtripDrill(t *testing.T) {
	out := runDrill(t, "files/roundtrip")
	require.Contains(t, out, "read back: 1 2 3 4 5")
}

func TestLinesDrill(t *testing.T) {
	out := runDrill(t, "files/lines")
	require.Contains(t, out, "line 1: the quick")
	require.Contains(t, out, "line 3: jumps")
}

func TestAppendDrill(t *testing.T) {
	out := runDrill(t, "files/append")
	require.Contains(t, out, "3 lines after appending")
}

func TestLoggingLevelsDrill(t *testing.T) {
	out := runDrill(t, "logging/levels")
	require.NotContains(t, out, "debug entry")
	require.Contains(t, out, "info entry")
	require.Contains(t, out, "warn entry")
	require.Contains(t, out, "error entry")
}

func TestLoggingRotateDrill(t *testing.T) {
	out := runDrill(t, "logging/rotate")
	require.Contains(t, out, "retained backups: 2")
	require.Contains(t, out, "app.log.1")
	require.Contains(t, out, "app.log.2")
}

func TestMemoryDrillsAreProseOnly(t *testing.T) {
	r := catalog.Builtin()
	for _, d := range r.ByTopic(drill.TopicMemory) {
		require.False(t, d.Runnable(), "memory drill %q must be prose-only", d.ID)
		require.NotEmpty(t, d.Answer)
	}
}
