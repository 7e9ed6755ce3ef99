package testdata

// Person is a sample composite type.
type Person struct {
	ID    uint32
	Name  string
	Phone uint64
}

// Roster exercises slice, byte-slice and bool fields.
type Roster struct {
	Members []Person
	Blob    []byte
	Active  bool
}
