// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/weftlabs/weft/ent/agent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/ent/creditaccount"
	"github.com/weftlabs/weft/ent/creditledger"
	"github.com/weftlabs/weft/ent/event"
	"github.com/weftlabs/weft/ent/message"
	"github.com/weftlabs/weft/ent/project"
	"github.com/weftlabs/weft/ent/schema"
	"github.com/weftlabs/weft/ent/thread"
	"github.com/weftlabs/weft/ent/trigger"
	"github.com/weftlabs/weft/ent/triggerevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescIsDefault is the schema descriptor for is_default field.
	agentDescIsDefault := agentFields[6].Descriptor()
	// agent.DefaultIsDefault holds the default value on creation for the is_default field.
	agent.DefaultIsDefault = agentDescIsDefault.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[7].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[8].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescStartedAt is the schema descriptor for started_at field.
	agentrunDescStartedAt := agentrunFields[3].Descriptor()
	// agentrun.DefaultStartedAt holds the default value on creation for the started_at field.
	agentrun.DefaultStartedAt = agentrunDescStartedAt.Default.(func() time.Time)
	creditaccountFields := schema.CreditAccount{}.Fields()
	_ = creditaccountFields
	// creditaccountDescBalance is the schema descriptor for balance field.
	creditaccountDescBalance := creditaccountFields[2].Descriptor()
	// creditaccount.DefaultBalance holds the default value on creation for the balance field.
	creditaccount.DefaultBalance = creditaccountDescBalance.Default.(float64)
	// creditaccountDescTier is the schema descriptor for tier field.
	creditaccountDescTier := creditaccountFields[3].Descriptor()
	// creditaccount.DefaultTier holds the default value on creation for the tier field.
	creditaccount.DefaultTier = creditaccountDescTier.Default.(string)
	// creditaccountDescCreatedAt is the schema descriptor for created_at field.
	creditaccountDescCreatedAt := creditaccountFields[7].Descriptor()
	// creditaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditaccount.DefaultCreatedAt = creditaccountDescCreatedAt.Default.(func() time.Time)
	// creditaccountDescUpdatedAt is the schema descriptor for updated_at field.
	creditaccountDescUpdatedAt := creditaccountFields[8].Descriptor()
	// creditaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditaccount.DefaultUpdatedAt = creditaccountDescUpdatedAt.Default.(func() time.Time)
	// creditaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditaccount.UpdateDefaultUpdatedAt = creditaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	creditledgerFields := schema.CreditLedger{}.Fields()
	_ = creditledgerFields
	// creditledgerDescCreatedAt is the schema descriptor for created_at field.
	creditledgerDescCreatedAt := creditledgerFields[9].Descriptor()
	// creditledger.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditledger.DefaultCreatedAt = creditledgerDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescIsLlmMessage is the schema descriptor for is_llm_message field.
	messageDescIsLlmMessage := messageFields[3].Descriptor()
	// message.DefaultIsLlmMessage holds the default value on creation for the is_llm_message field.
	message.DefaultIsLlmMessage = messageDescIsLlmMessage.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescUpdatedAt is the schema descriptor for updated_at field.
	messageDescUpdatedAt := messageFields[9].Descriptor()
	// message.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	message.DefaultUpdatedAt = messageDescUpdatedAt.Default.(func() time.Time)
	// message.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	message.UpdateDefaultUpdatedAt = messageDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[6].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[4].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[5].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
	triggerFields := schema.Trigger{}.Fields()
	_ = triggerFields
	// triggerDescIsActive is the schema descriptor for is_active field.
	triggerDescIsActive := triggerFields[6].Descriptor()
	// trigger.DefaultIsActive holds the default value on creation for the is_active field.
	trigger.DefaultIsActive = triggerDescIsActive.Default.(bool)
	// triggerDescCreatedAt is the schema descriptor for created_at field.
	triggerDescCreatedAt := triggerFields[8].Descriptor()
	// trigger.DefaultCreatedAt holds the default value on creation for the created_at field.
	trigger.DefaultCreatedAt = triggerDescCreatedAt.Default.(func() time.Time)
	// triggerDescUpdatedAt is the schema descriptor for updated_at field.
	triggerDescUpdatedAt := triggerFields[9].Descriptor()
	// trigger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trigger.DefaultUpdatedAt = triggerDescUpdatedAt.Default.(func() time.Time)
	// trigger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	trigger.UpdateDefaultUpdatedAt = triggerDescUpdatedAt.UpdateDefault.(func() time.Time)
	triggereventFields := schema.TriggerEvent{}.Fields()
	_ = triggereventFields
	// triggereventDescSuccess is the schema descriptor for success field.
	triggereventDescSuccess := triggereventFields[6].Descriptor()
	// triggerevent.DefaultSuccess holds the default value on creation for the success field.
	triggerevent.DefaultSuccess = triggereventDescSuccess.Default.(bool)
	// triggereventDescShouldExecute is the schema descriptor for should_execute field.
	triggereventDescShouldExecute := triggereventFields[7].Descriptor()
	// triggerevent.DefaultShouldExecute holds the default value on creation for the should_execute field.
	triggerevent.DefaultShouldExecute = triggereventDescShouldExecute.Default.(bool)
	// triggereventDescCreatedAt is the schema descriptor for created_at field.
	triggereventDescCreatedAt := triggereventFields[9].Descriptor()
	// triggerevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggerevent.DefaultCreatedAt = triggereventDescCreatedAt.Default.(func() time.Time)
}
