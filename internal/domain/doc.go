// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (time values, fields, keys) and contracts (interfaces) only.
package domain
