// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// Translation tables are not modelled as structs: their name, foreign key and
// locale column come from configuration, and their attribute columns depend
// on the fields declared for the resource. Queries are therefore written as
// raw SQL with every identifier quoted by the dialector.
package gorm
