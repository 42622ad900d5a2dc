// model/dashboard.go
package model

// AcademicSummary groups the per-user academic payloads fetched from our own
// platform. Each field falls back to an empty sequence when its downstream
// call fails.
type AcademicSummary struct {
	Assignments interface{} `json:"assignments"`
	Quizzes     interface{} `json:"quizzes"`
	Grades      interface{} `json:"grades"`
}

// Dashboard is the composite document assembled by the aggregation endpoint
// once all fan-out calls have settled. User degrades to {"error": ...} and
// Analytics to {} when their calls fail; the document is never partially
// emitted.
type Dashboard struct {
	User        interface{}     `json:"user"`
	Academic    AcademicSummary `json:"academic"`
	Analytics   interface{}     `json:"analytics"`
	GeneratedAt string          `json:"generated_at"`
}
