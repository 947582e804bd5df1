// file: internals/features/imports/service/resolver.go
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
	departmentModel "kampusku_backend/internals/features/campus/departments/model"
)

// Resolver cari-atau-buat parent entity (college, department) dari nama
// free-text spreadsheet. Resolusi bertahap: exact → contains → lepas scope →
// fallback/sintesis. Tiap tahap hanya jalan kalau tahap sebelumnya nihil.
//
// Kebijakan ambiguity: first match wins. Kandidat kedua yang sama-sama cocok
// tidak dideteksi.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver { return &Resolver{store: store} }

// ResolveCollege cari college by nama (boleh kosong), scoped ke campus kalau
// ada. Tidak pernah gagal selama storage sehat: tahap terakhir mensintesis
// college baru dengan nama diturunkan dari contextName (biasanya nama
// department yang memicu resolusi).
func (r *Resolver) ResolveCollege(name string, campusID *uuid.UUID, contextName string) (*collegeModel.CollegeModel, error) {
	name = strings.TrimSpace(name)

	if name != "" {
		found, err := r.findCollegeStaged(name, campusID)
		if err != nil {
			return nil, err
		}
		if found != nil {
			if err := r.relinkCollegeCampus(found, campusID); err != nil {
				return nil, err
			}
			return found, nil
		}
	}

	// Tahap 4: college mana pun di campus yang sama → college mana pun →
	// sintesis baru.
	if campusID != nil {
		c, err := r.store.AnyCollege(campusID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	c, err := r.store.AnyCollege(nil)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	synth := &collegeModel.CollegeModel{
		CollegeName:     synthesizeCollegeName(name, contextName),
		CollegeCampusID: campusID,
	}
	if err := r.store.CreateCollege(synth); err != nil {
		return nil, fmt.Errorf("create college: %w", err)
	}
	return synth, nil
}

// ResolveDepartment cari department by nama, lalu buat di dalam college hasil
// resolusi kalau tidak ketemu. Invariant keras: department TIDAK PERNAH dibuat
// tanpa college — gagal dapat college = ErrUnresolvableParent (fatal untuk
// baris itu, bukan silent skip).
func (r *Resolver) ResolveDepartment(name, collegeName string, campusID *uuid.UUID, fallbackName string) (*departmentModel.DepartmentModel, error) {
	depName := strings.TrimSpace(name)
	if depName == "" {
		depName = strings.TrimSpace(fallbackName)
	}
	if depName == "" {
		depName = "General"
	}

	// Scope college (kalau sheet menyebut college) — resolve tanpa create.
	var scopeCollege *collegeModel.CollegeModel
	if cn := strings.TrimSpace(collegeName); cn != "" {
		var err error
		scopeCollege, err = r.findCollegeStaged(cn, campusID)
		if err != nil {
			return nil, err
		}
	}
	var scopeID *uuid.UUID
	if scopeCollege != nil {
		scopeID = &scopeCollege.CollegeID
	}

	found, err := r.findDepartmentStaged(depName, scopeID)
	if err != nil {
		return nil, err
	}
	if found != nil {
		// Parent sudah beda dengan yang disiratkan import sekarang →
		// last-write-wins, jangan bikin duplikat.
		if scopeCollege != nil && found.DepartmentCollegeID != scopeCollege.CollegeID {
			if err := r.store.UpdateDepartmentCollege(found.DepartmentID, scopeCollege.CollegeID); err != nil {
				return nil, err
			}
			found.DepartmentCollegeID = scopeCollege.CollegeID
		}
		return found, nil
	}

	college := scopeCollege
	if college == nil {
		college, err = r.ResolveCollege(collegeName, campusID, depName)
		if err != nil {
			return nil, fmt.Errorf("%w: department %q butuh college: %v", ErrUnresolvableParent, depName, err)
		}
	}
	if college == nil {
		return nil, fmt.Errorf("%w: department %q tanpa college", ErrUnresolvableParent, depName)
	}

	dep := &departmentModel.DepartmentModel{
		DepartmentName:      depName,
		DepartmentCode:      DeriveDepartmentCode(depName),
		DepartmentCollegeID: college.CollegeID,
	}
	if err := r.store.CreateDepartment(dep); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return dep, nil
}

// findCollegeStaged: exact scoped → contains scoped → (lepas scope) exact →
// contains. Lepas scope menangani kasus parent di sheet tidak cocok dengan
// parent yang sudah terekam di DB.
func (r *Resolver) findCollegeStaged(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	c, err := r.store.FindCollegeExact(name, campusID)
	if err != nil || c != nil {
		return c, err
	}
	c, err = r.store.FindCollegeContains(name, campusID)
	if err != nil || c != nil {
		return c, err
	}
	if campusID == nil {
		return nil, nil
	}
	c, err = r.store.FindCollegeExact(name, nil)
	if err != nil || c != nil {
		return c, err
	}
	return r.store.FindCollegeContains(name, nil)
}

func (r *Resolver) findDepartmentStaged(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error) {
	d, err := r.store.FindDepartmentExact(name, collegeID)
	if err != nil || d != nil {
		return d, err
	}
	d, err = r.store.FindDepartmentContains(name, collegeID)
	if err != nil || d != nil {
		return d, err
	}
	if collegeID == nil {
		return nil, nil
	}
	d, err = r.store.FindDepartmentExact(name, nil)
	if err != nil || d != nil {
		return d, err
	}
	return r.store.FindDepartmentContains(name, nil)
}

// relinkCollegeCampus: campus yang terekam beda dengan campus import sekarang
// → update (last-write-wins), bukan bikin college baru.
func (r *Resolver) relinkCollegeCampus(c *collegeModel.CollegeModel, campusID *uuid.UUID) error {
	if campusID == nil {
		return nil
	}
	if c.CollegeCampusID != nil && *c.CollegeCampusID == *campusID {
		return nil
	}
	if err := r.store.UpdateCollegeCampus(c.CollegeID, campusID); err != nil {
		return err
	}
	c.CollegeCampusID = campusID
	return nil
}

func synthesizeCollegeName(name, contextName string) string {
	if name != "" {
		return name
	}
	ctx := strings.TrimSpace(contextName)
	if ctx == "" {
		return "General College"
	}
	if strings.Contains(strings.ToLower(ctx), "college") {
		return ctx
	}
	return ctx + " College"
}

// DeriveDepartmentCode bikin kode pendek uppercase dari nama department:
// multi-kata pakai inisial ("Computer Science" -> "CS"), satu kata ambil
// 3 huruf pertama ("Mathematics" -> "MAT").
func DeriveDepartmentCode(name string) string {
	words := strings.Fields(name)
	if len(words) >= 2 {
		var b strings.Builder
		for _, w := range words {
			r := []rune(w)
			if len(r) > 0 {
				b.WriteRune(r[0])
			}
		}
		return strings.ToUpper(b.String())
	}
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
