// Package store is the persistence and query layer of imob.
//
// A Store keeps three JSON documents on a kv.Repository: the users
// collection, the properties collection and the single-slot session. Every
// read goes to the medium and every mutation rewrites each affected document
// in full. A Store is meant for a single client and does no locking.
package store
