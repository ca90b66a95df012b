// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "version_id", Type: field.TypeString, Nullable: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_account_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agent_account_id_is_default",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[6]},
			},
		},
	}
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "agent_run_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "stopped", "completed", "failed"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "thread_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_threads_agent_runs",
				Columns:    []*schema.Column{AgentRunsColumns[9]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_thread_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[9], AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1], AgentRunsColumns[8]},
			},
			{
				Name:    "agent_run_one_running_idx",
				Unique:  true,
				Columns: []*schema.Column{AgentRunsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
		},
	}
	// CreditAccountsColumns holds the columns for the "credit_accounts" table.
	CreditAccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "balance", Type: field.TypeFloat64, Default: 0},
		{Name: "tier", Type: field.TypeString, Default: "free"},
		{Name: "billing_cycle_anchor", Type: field.TypeTime, Nullable: true},
		{Name: "next_credit_grant", Type: field.TypeTime, Nullable: true},
		{Name: "last_grant_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CreditAccountsTable holds the schema information for the "credit_accounts" table.
	CreditAccountsTable = &schema.Table{
		Name:       "credit_accounts",
		Columns:    CreditAccountsColumns,
		PrimaryKey: []*schema.Column{CreditAccountsColumns[0]},
	}
	// CreditLedgersColumns holds the columns for the "credit_ledgers" table.
	CreditLedgersColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "balance_after", Type: field.TypeFloat64},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"deduction", "grant", "refund", "reservation"}},
		{Name: "llm_response_id", Type: field.TypeString, Nullable: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeString},
	}
	// CreditLedgersTable holds the schema information for the "credit_ledgers" table.
	CreditLedgersTable = &schema.Table{
		Name:       "credit_ledgers",
		Columns:    CreditLedgersColumns,
		PrimaryKey: []*schema.Column{CreditLedgersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_ledgers_credit_accounts_ledger_entries",
				Columns:    []*schema.Column{CreditLedgersColumns[9]},
				RefColumns: []*schema.Column{CreditAccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "creditledger_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CreditLedgersColumns[9], CreditLedgersColumns[8]},
			},
			{
				Name:    "credit_ledger_llm_response_idx",
				Unique:  true,
				Columns: []*schema.Column{CreditLedgersColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "llm_response_id IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_threads_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "is_llm_message", Type: field.TypeBool, Default: false},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_version_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_threads_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[7]},
			},
			{
				Name:    "message_thread_id_type",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[1]},
			},
			{
				Name:    "message_usage_rows_idx",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "type = 'llm_response_end'",
				},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_account_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "threads_projects_threads",
				Columns:    []*schema.Column{ThreadsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thread_account_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[1]},
			},
			{
				Name:    "thread_created_at",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[3]},
			},
		},
	}
	// TriggersColumns holds the columns for the "triggers" table.
	TriggersColumns = []*schema.Column{
		{Name: "trigger_id", Type: field.TypeString, Unique: true},
		{Name: "provider_id", Type: field.TypeString},
		{Name: "trigger_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// TriggersTable holds the schema information for the "triggers" table.
	TriggersTable = &schema.Table{
		Name:       "triggers",
		Columns:    TriggersColumns,
		PrimaryKey: []*schema.Column{TriggersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "triggers_agents_triggers",
				Columns:    []*schema.Column{TriggersColumns[9]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trigger_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[9]},
			},
			{
				Name:    "trigger_provider_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[1], TriggersColumns[5]},
			},
		},
	}
	// TriggerEventsColumns holds the columns for the "trigger_events" table.
	TriggerEventsColumns = []*schema.Column{
		{Name: "trigger_event_id", Type: field.TypeString, Unique: true},
		{Name: "trigger_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "trigger_type", Type: field.TypeString},
		{Name: "raw_data", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "should_execute", Type: field.TypeBool, Default: false},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TriggerEventsTable holds the schema information for the "trigger_events" table.
	TriggerEventsTable = &schema.Table{
		Name:       "trigger_events",
		Columns:    TriggerEventsColumns,
		PrimaryKey: []*schema.Column{TriggerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triggerevent_trigger_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerEventsColumns[1], TriggerEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentRunsTable,
		CreditAccountsTable,
		CreditLedgersTable,
		EventsTable,
		MessagesTable,
		ProjectsTable,
		ThreadsTable,
		TriggersTable,
		TriggerEventsTable,
	}
)

func init() {
	AgentRunsTable.ForeignKeys[0].RefTable = ThreadsTable
	CreditLedgersTable.ForeignKeys[0].RefTable = CreditAccountsTable
	EventsTable.ForeignKeys[0].RefTable = ThreadsTable
	MessagesTable.ForeignKeys[0].RefTable = ThreadsTable
	ThreadsTable.ForeignKeys[0].RefTable = ProjectsTable
	TriggersTable.ForeignKeys[0].RefTable = AgentsTable
}
