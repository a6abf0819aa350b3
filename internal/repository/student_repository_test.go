package repository

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stemsi/exstem-roster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var (
	bob = model.NewStudent("Bob", 2, "b@x.com", "CS")
	amy = model.NewStudent("Amy", 3, "a@x.com", "CS")
	cat = model.NewStudent("Cat", 1, "c@x.com", "Math")
)

func newRepo(students ...model.Student) *StudentRepository {
	r := NewStudentRepository(language.English)
	for _, s := range students {
		r.Add(s)
	}
	return r
}

func names(students []model.Student) []string {
	out := make([]string, 0, len(students))
	for _, s := range students {
		out = append(out, s.Name())
	}
	return out
}

func TestStudentRepository_Scenario(t *testing.T) {
	r := newRepo(bob, amy)

	assert.Equal(t, []string{"Bob", "Amy"}, r.Names())
	assert.Equal(t, []string{"Amy", "Bob"}, names(r.SortedByName()))

	cs := r.FilterBySpecialization("CS")
	require.Len(t, cs, 2)
	assert.Equal(t, amy, cs[0])
	assert.Equal(t, bob, cs[1])
}

func TestStudentRepository_Empty(t *testing.T) {
	r := newRepo()

	_, ok := r.FindByEmail("x@x.com")
	assert.False(t, ok)
	assert.Empty(t, r.Names())
	assert.Empty(t, r.SortedByName())
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.RemoveByEmail("x@x.com"))
}

func TestStudentRepository_LenTracksAddsAndRemovals(t *testing.T) {
	r := newRepo()
	removed := 0
	for i := 0; i < 10; i++ {
		r.Add(model.NewStudent(fmt.Sprintf("S%d", i), i, fmt.Sprintf("s%d@x.com", i), "CS"))
	}
	for _, email := range []string{"s1@x.com", "s3@x.com", "missing@x.com", "s3@x.com"} {
		if r.RemoveByEmail(email) {
			removed++
		}
	}

	assert.Equal(t, 2, removed)
	assert.Equal(t, 10-removed, r.Len())
	assert.Len(t, r.Snapshot(), r.Len())
}

func TestStudentRepository_FindAfterAdd(t *testing.T) {
	r := newRepo(bob)
	r.Add(amy)

	got, ok := r.FindByEmail("a@x.com")
	require.True(t, ok)
	assert.Equal(t, amy, got)
}

func TestStudentRepository_FindIsCaseSensitive(t *testing.T) {
	r := newRepo(amy)

	_, ok := r.FindByEmail("A@X.COM")
	assert.False(t, ok)
}

func TestStudentRepository_RemoveThenFind(t *testing.T) {
	r := newRepo(bob, amy, cat)

	require.True(t, r.RemoveByEmail("a@x.com"))
	_, ok := r.FindByEmail("a@x.com")
	assert.False(t, ok)
	assert.Equal(t, []string{"Bob", "Cat"}, r.Names())
}

func TestStudentRepository_RemoveMissingIsNoop(t *testing.T) {
	r := newRepo(bob, amy)

	assert.False(t, r.RemoveByEmail("nobody@x.com"))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"Bob", "Amy"}, r.Names())
}

func TestStudentRepository_DuplicateEmails(t *testing.T) {
	first := model.NewStudent("First", 1, "dup@x.com", "CS")
	second := model.NewStudent("Second", 2, "dup@x.com", "Math")
	r := newRepo(first, second)

	assert.Equal(t, 2, r.Len())

	got, ok := r.FindByEmail("dup@x.com")
	require.True(t, ok)
	assert.Equal(t, first, got)

	require.True(t, r.RemoveByEmail("dup@x.com"))
	got, ok = r.FindByEmail("dup@x.com")
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestStudentRepository_SortedByNameIsACopy(t *testing.T) {
	r := newRepo(cat, bob, amy)

	sorted := r.SortedByName()
	sorted[0] = model.NewStudent("Zed", 9, "z@x.com", "Art")

	assert.Equal(t, []string{"Cat", "Bob", "Amy"}, r.Names())
	assert.Equal(t, []string{"Amy", "Bob", "Cat"}, names(r.SortedByName()))
}

func TestStudentRepository_SortedByNameIsPermutationAndStable(t *testing.T) {
	r := newRepo(
		model.NewStudent("dora", 1, "d1@x.com", "CS"),
		model.NewStudent("Émile", 2, "e@x.com", "CS"),
		model.NewStudent("Zoe", 3, "z@x.com", "CS"),
		model.NewStudent("adam", 4, "a@x.com", "CS"),
		model.NewStudent("Dora", 5, "d2@x.com", "CS"),
	)

	first := r.SortedByName()
	second := r.SortedByName()
	assert.Equal(t, first, second)

	assert.ElementsMatch(t, r.Snapshot(), first)

	got := names(first)
	assert.Equal(t, "adam", got[0])
	assert.Equal(t, "Zoe", got[len(got)-1])
	assert.Less(t, indexOf(got, "Émile"), indexOf(got, "Zoe"), "accented names collate with their base letter")
}

func TestStudentRepository_FilterBySpecialization(t *testing.T) {
	r := newRepo(cat, bob, amy)

	got := r.FilterBySpecialization("CS")
	assert.Equal(t, []string{"Amy", "Bob"}, names(got))

	// subset of the sorted view, in sorted order
	var want []model.Student
	for _, s := range r.SortedByName() {
		if s.Specialization() == "CS" {
			want = append(want, s)
		}
	}
	assert.Equal(t, want, got)

	assert.Empty(t, r.FilterBySpecialization("cs"))
}

func TestStudentRepository_FilterByMinYear(t *testing.T) {
	r := newRepo(cat, bob, amy)

	assert.Equal(t, []string{"Amy", "Bob"}, names(r.FilterByMinYear(2)))
	assert.Equal(t, []string{"Amy", "Bob", "Cat"}, names(r.FilterByMinYear(0)))
	assert.Empty(t, r.FilterByMinYear(4))
}

func TestStudentRepository_Update(t *testing.T) {
	r := newRepo(bob, amy)

	require.True(t, r.UpdateEmail("a@x.com", "amy@x.com"))
	require.True(t, r.UpdateSpecialization("amy@x.com", "Math"))
	assert.False(t, r.UpdateEmail("a@x.com", "other@x.com"))
	assert.False(t, r.UpdateSpecialization("missing@x.com", "Art"))

	got, ok := r.FindByEmail("amy@x.com")
	require.True(t, ok)
	assert.Equal(t, model.NewStudent("Amy", 3, "amy@x.com", "Math"), got)
	assert.Equal(t, []string{"Bob", "Amy"}, r.Names())
}

func TestStudentRepository_FindReturnsCopy(t *testing.T) {
	r := newRepo(amy)

	got, _ := r.FindByEmail("a@x.com")
	got.SetEmail("changed@x.com")

	_, ok := r.FindByEmail("a@x.com")
	assert.True(t, ok)
}

func TestStudentRepository_Clear(t *testing.T) {
	r := newRepo(bob, amy)

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Names())

	r.Clear()
	assert.Equal(t, 0, r.Len())

	r.Add(cat)
	assert.Equal(t, []string{"Cat"}, r.Names())
}

func TestStudentRepository_SnapshotRestoreRoundTrip(t *testing.T) {
	r := newRepo(cat, bob, amy)
	before := r.Snapshot()

	records := make([]model.StudentRecord, 0, len(before))
	for _, s := range before {
		records = append(records, s.Record())
	}

	r.Add(model.NewStudent("Extra", 1, "e@x.com", "Art"))
	r.Restore(records)

	assert.Equal(t, before, r.Snapshot())
	assert.Equal(t, []string{"Cat", "Bob", "Amy"}, r.Names())
}

func TestStudentRepository_RestoreReplaces(t *testing.T) {
	r := newRepo(bob, amy)

	r.Restore([]model.StudentRecord{cat.Record()})
	assert.Equal(t, []string{"Cat"}, r.Names())

	r.Restore(nil)
	assert.Equal(t, 0, r.Len())
}

func TestStudentRepository_SnapshotIsACopy(t *testing.T) {
	r := newRepo(bob)

	snap := r.Snapshot()
	snap[0].SetEmail("other@x.com")

	_, ok := r.FindByEmail("b@x.com")
	assert.True(t, ok)
}

func TestStudentRepository_Locale(t *testing.T) {
	// Swedish places "ö" after "z"; English collates it with "o".
	students := []model.Student{
		model.NewStudent("zeta", 1, "z@x.com", "CS"),
		model.NewStudent("öga", 1, "o@x.com", "CS"),
	}

	en := newRepo(students...)
	sv := NewStudentRepository(language.Swedish)
	for _, s := range students {
		sv.Add(s)
	}

	assert.Equal(t, []string{"öga", "zeta"}, names(en.SortedByName()))
	assert.Equal(t, []string{"zeta", "öga"}, names(sv.SortedByName()))
}

func TestStudentRepository_SortedMatchesCollatorOrder(t *testing.T) {
	r := newRepo(cat, bob, amy)
	got := names(r.SortedByName())
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		return r.collator.CompareString(got[i], got[j]) < 0
	}))
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}
