// Package schematics validates arbitrary nested runtime data against a
// declaratively described shape and reports every mismatch it finds,
// annotated with the location of the defect, instead of a single
// pass/fail bit.
//
// Build a [Schema] for a declared type and validate any value against it:
//
//	s := schematics.New[[]int]()
//	res := s.Validate([]any{1, 2, "three"})
//	for _, e := range res.Errors() {
//	    fmt.Println(e) // root[2]: expected type int, got string
//	}
//
// Constraints are accumulated fluently with a [Builder]:
//
//	s := schematics.NewBuilder[string]().
//	    MinLength(3).
//	    Matches(regexp.MustCompile(`^[a-z]+$`)).
//	    Build()
//
// For record-shaped data, declare a [Model] once and validate instances:
//
//	user := schematics.DefineModel("User").
//	    Field("name", schematics.Type[string]()).Required().
//	    Field("age", schematics.Type[int](), schematics.Min(0)).
//	    Build()
//
//	rec := user.New()
//	rec.Set("age", -1)
//	rec.Valid() // false; rec.Errors() holds per-field messages
//
// Validation never performs I/O and validator trees are immutable after
// construction, so a Schema or Model may be shared freely across
// goroutines. A [Record] owns a mutable error bucket and must be confined
// to one goroutine at a time.
//
// Sub-packages:
//   - is – common string format validation rules
package schematics
