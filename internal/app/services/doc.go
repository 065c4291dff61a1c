// Package services holds the workflow rules of the portal: who may see
// which rows, and which status transitions each role may apply.
//
// Scoping: students see their own rows (the medicine stock list is visible
// to everyone), principals see complaints of their own institution targeted
// at them, and wardens see every row of every institution. The unscoped
// warden view is historical behavior carried over as-is; whether wardens
// should be institution-scoped like the other roles is unresolved, so it is
// preserved here rather than silently changed.
package services
