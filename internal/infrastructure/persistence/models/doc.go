// Package models contains GORM persistence models that map to database tables.
// They are kept apart from domain entities so the domain layer stays free of
// ORM tags; each model converts with ToDomain and FromDomain.
//
// Tables:
//   - products: the catalog, unique per (business_email, name)
//   - bills: recorded sales, append-only
//   - bill_lines: order lines of a bill, in submission order
package models
