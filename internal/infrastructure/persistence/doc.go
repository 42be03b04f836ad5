// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing the
// multi-tenant storefront records: catalog, carts, orders, customers and
// their credit ledger, users and appearance settings. The package includes
// validation and logging for traceability and error handling.
package persistence
