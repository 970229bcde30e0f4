package finder

// Person is a found person record.
type Person struct {
	FirstName string
	LastName  string
}

// Result is the outcome of a lookup: either a found Person or not found.
// The zero value is NotFound.
type Result struct {
	person Person
	found  bool
}

// Found returns a Result holding p.
func Found(p Person) Result {
	return Result{person: p, found: true}
}

// NotFound returns the not-found Result.
func NotFound() Result {
	return Result{}
}

// Person returns the found record and true, or the zero Person and false.
func (r Result) Person() (Person, bool) {
	return r.person, r.found
}

// Found reports whether the lookup produced a record.
func (r Result) Found() bool {
	return r.found
}

// String renders the result for logs and examples.
func (r Result) String() string {
	if !r.found {
		return "not found"
	}
	return r.person.FirstName + " " + r.person.LastName
}
