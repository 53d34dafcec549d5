// Command example demonstrates schema, builder, and model validation.
package main

import (
	"fmt"
	"regexp"

	"github.com/qequ/schematics"
	"github.com/qequ/schematics/is"
)

func main() {
	// Shape-inferred schema over nested data.
	nums := schematics.New[[]int]()
	res := nums.Validate([]any{1, 2, "three", 4, "five"})
	for _, e := range res.Errors() {
		fmt.Println(e)
	}

	// Fluent constraint builder.
	slug := schematics.NewBuilder[string]().
		MinLength(3).
		MaxLength(32).
		Matches(regexp.MustCompile(`^[a-z0-9-]+$`)).
		Build()
	fmt.Println("slug valid:", slug.Valid("my-first-post"))

	// Declarative model with per-field rules and a cross-field check.
	signup := schematics.DefineModel("Signup").
		Field("email", schematics.Type[string](), is.Email).Required().
		Field("age", schematics.Type[int](), schematics.Min(13)).
		Field("password", schematics.Type[string](), schematics.MinLength(8)).Required().
		Field("confirmation", schematics.Type[string]()).Required().
		Check(func(r *schematics.Record) {
			a, _ := r.Get("password")
			b, _ := r.Get("confirmation")
			if a != b {
				r.AddError("confirmation", "must match password")
			}
		}).
		Build()

	rec, err := signup.UnmarshalAndValidate([]byte(`{
		"email": "dev@example.com",
		"age": 12,
		"password": "hunter2hunter2",
		"confirmation": "hunter3"
	}`))
	if err != nil {
		fmt.Println("invalid signup:", err)
	}
	for field, msgs := range rec.Errors() {
		fmt.Println(field, msgs)
	}
}
