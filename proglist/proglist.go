package proglist

import "context"

// DegreeProgram is a reference entity a monograph is registered under.
// Code is the stable identifier stored on records; Name is what people read.
type DegreeProgram struct {
	Code string
	Name string
}

// Lister returns the selectable degree programs in presentation order.
type Lister interface {
	ListDegreePrograms(ctx context.Context) ([]DegreeProgram, error)
}

// StaticLister serves a fixed catalog. It backs local development and tests,
// and is the fallback when no external catalog is configured.
type StaticLister struct {
	programs []DegreeProgram
}

func NewStaticLister(programs []DegreeProgram) *StaticLister {
	if programs == nil {
		programs = builtinCatalog()
	}
	return &StaticLister{programs: programs}
}

// ListDegreePrograms implements Lister. The returned slice is a copy; callers
// may reorder or filter it freely.
func (l *StaticLister) ListDegreePrograms(ctx context.Context) ([]DegreeProgram, error) {
	res := make([]DegreeProgram, len(l.programs))
	copy(res, l.programs)
	return res, nil
}

// Exists reports whether code names a program of the given catalog.
func Exists(programs []DegreeProgram, code string) bool {
	for _, p := range programs {
		if p.Code == code {
			return true
		}
	}
	return false
}

// builtinCatalog returns the default degree-program catalog.
func builtinCatalog() []DegreeProgram {
	return []DegreeProgram{
		{Code: "CS01", Name: "Computer Science"},
		{Code: "SE02", Name: "Software Engineering"},
		{Code: "IS03", Name: "Information Systems"},
		{Code: "EE04", Name: "Electrical Engineering"},
		{Code: "ME05", Name: "Mechanical Engineering"},
		{Code: "BA06", Name: "Business Administration"},
		{Code: "AR07", Name: "Architecture"},
		{Code: "LW08", Name: "Law"},
	}
}
