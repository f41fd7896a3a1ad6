// Package manifest models the package.json files stamped into generated
// projects. It renders manifests deterministically, parses them back for
// diagnostics, and validates generated output against an embedded JSON Schema
// so template regressions surface as warnings at generation time.
package manifest
