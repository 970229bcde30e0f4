package finder

import "context"

// AlwaysFinding finds everyone, fabricating the first name.
type AlwaysFinding struct {
	// FirstName is the fabricated first name. Empty means DefaultFirstName.
	FirstName string
}

var _ Finder = AlwaysFinding{}

// FindByLastName implements Finder.
func (f AlwaysFinding) FindByLastName(_ context.Context, lastName string) (Result, error) {
	first := f.FirstName
	if first == "" {
		first = DefaultFirstName
	}
	return Found(Person{FirstName: first, LastName: lastName}), nil
}

// NeverFinding finds nobody.
type NeverFinding struct{}

var _ Finder = NeverFinding{}

// FindByLastName implements Finder.
func (NeverFinding) FindByLastName(_ context.Context, _ string) (Result, error) {
	return NotFound(), nil
}
