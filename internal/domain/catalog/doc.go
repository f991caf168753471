// Package catalog holds the curated static data served when every remote
// provider for a widget has failed, plus the purely static widgets (games,
// gradient presets).
//
// All tables are package-level values initialised at process start and never
// mutated. Accessors return copies so callers cannot alter the shared tables.
package catalog
