package models

// Stream is a fixed academic track grouping modules. Each stream is backed by
// its own module table; there is no shared modules table.
type Stream struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Streams is the fixed four-entry reference list served by GET /streams.
var Streams = []Stream{
	{Name: "Information Systems", Code: "IS"},
	{Name: "Information Technology", Code: "IT"},
	{Name: "Computer Science", Code: "CS"},
	{Name: "Software Engineering", Code: "SE"},
}

// StreamTables maps a lower-cased stream name to its module table. The table
// choice is enum-constrained here, never interpolated from raw input.
var StreamTables = map[string]string{
	"information systems":    "information_systems_modules",
	"information technology": "information_technology_modules",
	"computer science":       "computer_science_modules",
	"software engineering":   "software_engineering_modules",
}

// Module is a single course unit within a stream.
type Module struct {
	Code   string `json:"module_code" db:"module_code"`
	Name   string `json:"module_name" db:"module_name"`
	Stream string `json:"stream,omitempty" db:"stream"` // set on the all-streams listing
}
