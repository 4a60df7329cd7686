// Package cart keeps the shopping cart of the logged-in user.
//
// Carts are persisted per user and resolved against the catalog on every
// read, so the reported total always reflects current catalog prices.
package cart
