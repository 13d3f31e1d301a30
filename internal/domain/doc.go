// Package domain defines the contact data model and interfaces shared across the app.
// It contains plain types (fields, records, field configuration, errors) and
// contracts (interfaces) only; codecs and services live elsewhere.
package domain
