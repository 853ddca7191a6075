package models

// Figure is the ordered list of sanitized traces plus one layout.
type Figure struct {
	// Traces are rendered in order.
	Traces []Trace `json:"traces"`
	// Layout applies to the whole figure.
	Layout Layout `json:"layout"`
}
