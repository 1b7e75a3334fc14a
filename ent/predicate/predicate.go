// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SessionSnapshot is the predicate function for sessionsnapshot builders.
type SessionSnapshot func(*sql.Selector)

// TurnEvent is the predicate function for turnevent builders.
type TurnEvent func(*sql.Selector)
