package memory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/testutil"
)

func newTestStore(t *testing.T, longTerm, shortTerm string) *Store {
	t.Helper()
	dir := testutil.NewMemoryProject(t, longTerm, shortTerm)
	return NewStore(config.Default(dir), WithClock(func() time.Time { return fixedNow }))
}

func TestStoreReadLongTerm(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, testutil.ShortTermFixture)

	full, err := s.ReadLongTerm("")
	require.NoError(t, err)
	assert.Contains(t, full, "# Project Long-Term Memory")
	assert.Contains(t, full, "## Project Overview")

	section, err := s.ReadLongTerm("Project Overview")
	require.NoError(t, err)
	assert.Contains(t, section, "Initial overview")
	assert.NotContains(t, section, "## Architecture Decisions")

	_, err = s.ReadLongTerm("Technology Choices")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestStoreReadEmptyDocuments(t *testing.T) {
	s := newTestStore(t, "\n", " \n")

	long, err := s.ReadLongTerm("")
	require.NoError(t, err)
	assert.Equal(t, EmptyLongTerm, long)

	short, err := s.ReadShortTerm()
	require.NoError(t, err)
	assert.Equal(t, EmptyShortTerm, short)
}

func TestStoreReadMissingDocuments(t *testing.T) {
	s := NewStore(config.Default(t.TempDir()))

	_, err := s.ReadLongTerm("")
	assert.ErrorIs(t, err, ErrDocumentMissing)
	_, err = s.ReadShortTerm()
	assert.ErrorIs(t, err, ErrDocumentMissing)
	_, err = s.Read(KindAll, "")
	assert.ErrorIs(t, err, ErrDocumentMissing)
}

func TestStoreReadAll(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, testutil.ShortTermFixture)

	got, err := s.Read(KindAll, "")
	require.NoError(t, err)
	assert.Equal(t, testutil.LongTermFixture+"\n\n---\n\n"+testutil.ShortTermFixture, got)
}

func TestStoreUpdateReplace(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, "")

	msg, err := s.Update("Architecture Decisions", "Use SQLite", ModeReplace)
	require.NoError(t, err)
	assert.Contains(t, msg, "updated")

	section, err := s.ReadLongTerm("Architecture Decisions")
	require.NoError(t, err)
	assert.Contains(t, section, "Use SQLite")
	assert.Contains(t, section, "*Updated: 2026-02-04 10:00*")
	assert.NotContains(t, section, "<!-- -->")

	overview, err := s.ReadLongTerm("Project Overview")
	require.NoError(t, err)
	assert.Equal(t, "## Project Overview\nInitial overview", overview)
}

func TestStoreUpdateAppend(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, "")

	msg, err := s.Update("Project Overview", "Appended content", ModeAppend)
	require.NoError(t, err)
	assert.Contains(t, msg, "appended")

	section, err := s.ReadLongTerm("Project Overview")
	require.NoError(t, err)
	assert.Contains(t, section, "Initial overview")
	assert.Contains(t, section, "Appended content")
	assert.Contains(t, section, "*Appended: 2026-02-04 10:00*")
}

func TestStoreRejectsInvalidSection(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, "")
	path := s.Config().LongTermPath()
	before := testutil.ReadFile(t, path)

	err := s.ReplaceSection("Secret Weapon", "content")
	assert.ErrorIs(t, err, ErrInvalidSection)
	err = s.AppendSection("Project", "content")
	assert.ErrorIs(t, err, ErrInvalidSection)

	assert.Equal(t, before, testutil.ReadFile(t, path))
}

func TestStoreUpdateMissingDocument(t *testing.T) {
	s := NewStore(config.Default(t.TempDir()))

	_, err := s.Update("Project Overview", "content", ModeReplace)
	assert.ErrorIs(t, err, ErrDocumentMissing)
}

func TestStoreUpdateSectionMissingFromDocument(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, "")

	_, err := s.Update("Technology Choices", "Go", ModeAppend)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestStoreUpdateKeepsFileMode(t *testing.T) {
	s := newTestStore(t, testutil.LongTermFixture, "")
	path := s.Config().LongTermPath()
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, s.ReplaceSection("Project Overview", "x"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteShortTermCreatesDirectory(t *testing.T) {
	s := NewStore(config.Default(t.TempDir()))

	require.NoError(t, s.WriteShortTerm("# Short-Term Memory\n"))
	got, err := s.ReadShortTerm()
	require.NoError(t, err)
	assert.Equal(t, "# Short-Term Memory\n", got)
}

func TestParseKindAndMode(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindAll, k)
	k, err = ParseKind("SHORT")
	require.NoError(t, err)
	assert.Equal(t, KindShort, k)
	_, err = ParseKind("medium")
	assert.ErrorIs(t, err, ErrInvalidKind)

	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeReplace, m)
	m, err = ParseMode("append")
	require.NoError(t, err)
	assert.Equal(t, ModeAppend, m)
	_, err = ParseMode("merge")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
