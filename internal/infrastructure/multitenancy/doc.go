// Package multitenancy resolves the database of the current tenant and
// stores tenants with protected connection strings.
package multitenancy
