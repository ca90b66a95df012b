// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// CreditAccount is the predicate function for creditaccount builders.
type CreditAccount func(*sql.Selector)

// CreditLedger is the predicate function for creditledger builders.
type CreditLedger func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// Trigger is the predicate function for trigger builders.
type Trigger func(*sql.Selector)

// TriggerEvent is the predicate function for triggerevent builders.
type TriggerEvent func(*sql.Selector)
