// file: internals/features/imports/service/resolver_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
)

func TestResolveCollegeExactMatch(t *testing.T) {
	fs := newFakeStore()
	campus := fs.addCampus("Main Campus")
	want := fs.addCollege("College of Engineering", &campus.CampusID)

	r := NewResolver(fs)
	got, err := r.ResolveCollege("college of engineering", &campus.CampusID, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.CollegeID != want.CollegeID {
		t.Fatalf("dapat college lain: %v", got.CollegeName)
	}
}

func TestResolveCollegeContainsMatch(t *testing.T) {
	fs := newFakeStore()
	want := fs.addCollege("College of Engineering and Technology", nil)

	r := NewResolver(fs)
	got, err := r.ResolveCollege("Engineering", nil, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.CollegeID != want.CollegeID {
		t.Fatalf("substring match gagal, dapat %v", got.CollegeName)
	}
}

func TestResolveCollegeDropsCampusScope(t *testing.T) {
	// college terekam tanpa campus; import sekarang bawa campus lain —
	// tahap lepas-scope harus menemukannya, lalu relink campus.
	fs := newFakeStore()
	campus := fs.addCampus("North Campus")
	want := fs.addCollege("College of Science", nil)

	r := NewResolver(fs)
	got, err := r.ResolveCollege("College of Science", &campus.CampusID, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.CollegeID != want.CollegeID {
		t.Fatalf("lepas-scope gagal")
	}
	if got.CollegeCampusID == nil || *got.CollegeCampusID != campus.CampusID {
		t.Fatalf("campus harus di-relink (last write wins)")
	}
}

func TestResolveCollegeFallsBackToAnyInCampus(t *testing.T) {
	fs := newFakeStore()
	campus := fs.addCampus("Main Campus")
	existing := fs.addCollege("College of Arts", &campus.CampusID)

	r := NewResolver(fs)
	got, err := r.ResolveCollege("Nonexistent College", &campus.CampusID, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.CollegeID != existing.CollegeID {
		t.Fatalf("fallback any-college-in-campus gagal")
	}
}

func TestResolveCollegeSynthesizesWhenEmpty(t *testing.T) {
	fs := newFakeStore()
	r := NewResolver(fs)

	got, err := r.ResolveCollege("", nil, "Computer Science")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.CollegeName != "Computer Science College" {
		t.Fatalf("nama sintesis = %q", got.CollegeName)
	}
	if len(fs.colleges) != 1 {
		t.Fatalf("college sintesis harus tersimpan")
	}
}

func TestResolveCollegeSynthesizesGeneralWithoutContext(t *testing.T) {
	fs := newFakeStore()
	r := NewResolver(fs)

	got, err := r.ResolveCollege("", nil, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.CollegeName != "General College" {
		t.Fatalf("nama sintesis = %q", got.CollegeName)
	}
}

func TestResolveDepartmentNeverOrphan(t *testing.T) {
	// DB kosong total: resolve department harus mensintesis college dulu,
	// tidak pernah membuat department menggantung.
	fs := newFakeStore()
	r := NewResolver(fs)

	dep, err := r.ResolveDepartment("Computer Science", "", nil, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if dep.DepartmentCollegeID == uuid.Nil {
		t.Fatalf("department tanpa college")
	}
	if len(fs.colleges) != 1 {
		t.Fatalf("college harus ikut dibuat, ada %d", len(fs.colleges))
	}
	if fs.colleges[0].CollegeName != "Computer Science College" {
		t.Fatalf("nama college sintesis = %q", fs.colleges[0].CollegeName)
	}
	if dep.DepartmentCode != "CS" {
		t.Fatalf("DepartmentCode = %q", dep.DepartmentCode)
	}
}

func TestResolveDepartmentReusesExisting(t *testing.T) {
	fs := newFakeStore()
	college := fs.addCollege("College of Engineering", nil)
	want := fs.addDepartment("Computer Science", college.CollegeID)

	r := NewResolver(fs)
	dep, err := r.ResolveDepartment("computer science", "", nil, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if dep.DepartmentID != want.DepartmentID {
		t.Fatalf("harus reuse department yang ada")
	}
	if len(fs.departments) != 1 {
		t.Fatalf("tidak boleh bikin duplikat")
	}
}

func TestResolveDepartmentRelinksCollege(t *testing.T) {
	// department terekam di college A, import sekarang menyebut college B
	// yang sudah ada → pindahkan parent, jangan duplikat.
	fs := newFakeStore()
	collegeA := fs.addCollege("College of Arts", nil)
	collegeB := fs.addCollege("College of Engineering", nil)
	dep := fs.addDepartment("Computer Science", collegeA.CollegeID)

	r := NewResolver(fs)
	got, err := r.ResolveDepartment("Computer Science", "College of Engineering", nil, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.DepartmentID != dep.DepartmentID {
		t.Fatalf("harus department yang sama")
	}
	if got.DepartmentCollegeID != collegeB.CollegeID {
		t.Fatalf("college harus di-relink ke Engineering")
	}
	if len(fs.departments) != 1 {
		t.Fatalf("tidak boleh bikin duplikat")
	}
}

func TestResolveDepartmentFallbackName(t *testing.T) {
	fs := newFakeStore()
	fs.addCollege("College of Science", nil)

	r := NewResolver(fs)
	dep, err := r.ResolveDepartment("", "", nil, "Physics Group")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if dep.DepartmentName != "Physics Group" {
		t.Fatalf("fallback name gagal: %q", dep.DepartmentName)
	}

	dep2, err := r.ResolveDepartment("", "", nil, "")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if dep2.DepartmentName != "General" {
		t.Fatalf("default name = %q, mau General", dep2.DepartmentName)
	}
}

func TestResolveDepartmentParentFailureIsTyped(t *testing.T) {
	fs := &failingCollegeStore{fakeStore: newFakeStore()}
	r := NewResolver(fs)

	_, err := r.ResolveDepartment("Computer Science", "", nil, "")
	if !errors.Is(err, ErrUnresolvableParent) {
		t.Fatalf("mau ErrUnresolvableParent, dapat %v", err)
	}
	if len(fs.departments) != 0 {
		t.Fatalf("department tidak boleh tersimpan kalau parent gagal")
	}
}

// failingCollegeStore bikin create college selalu gagal
type failingCollegeStore struct {
	*fakeStore
}

func (f *failingCollegeStore) CreateCollege(m *collegeModel.CollegeModel) error {
	return errors.New("storage down")
}
