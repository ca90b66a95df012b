package ent

// The sql/lock feature gates the ForUpdate row locks the credit service
// relies on for serialized balance mutations.
//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
