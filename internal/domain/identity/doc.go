// Package identity contains the tenant, user and permission entities of the
// storefront along with the contracts for authentication and user management.
package identity
