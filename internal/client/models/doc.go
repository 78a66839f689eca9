// Package models defines the client-side data models of the expense tracker:
// form state submitted by the pages and the payloads exchanged with the API.
package models
