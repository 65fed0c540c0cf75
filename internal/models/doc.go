// Package models defines the listing domain types: users, properties, their
// categories and the partial drafts used to create and update properties.
package models
