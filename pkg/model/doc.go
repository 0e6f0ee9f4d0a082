// Package model exposes the sign-up field data model: field definitions, the
// built-in default sets per username strategy, and the deterministic
// resolution of caller configuration into an ordered field set.
package model
