// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/deletedcall"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/schema"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescProviderUserID is the schema descriptor for provider_user_id field.
	agentDescProviderUserID := agentFields[1].Descriptor()
	// agent.ProviderUserIDValidator is a validator for the "provider_user_id" field. It is called by the builders before save.
	agent.ProviderUserIDValidator = func() func(string) error {
		validators := agentDescProviderUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider_user_id string) error {
			for _, fn := range fns {
				if err := fn(provider_user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[2].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = func() func(string) error {
		validators := agentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescEmail is the schema descriptor for email field.
	agentDescEmail := agentFields[3].Descriptor()
	// agent.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	agent.EmailValidator = agentDescEmail.Validators[0].(func(string) error)
	// agentDescActive is the schema descriptor for active field.
	agentDescActive := agentFields[4].Descriptor()
	// agent.DefaultActive holds the default value on creation for the active field.
	agent.DefaultActive = agentDescActive.Default.(bool)
	// agentDescVerified is the schema descriptor for verified field.
	agentDescVerified := agentFields[5].Descriptor()
	// agent.DefaultVerified holds the default value on creation for the verified field.
	agent.DefaultVerified = agentDescVerified.Default.(bool)
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
	billingaccountFields := schema.BillingAccount{}.Fields()
	_ = billingaccountFields
	// billingaccountDescInboundRateCents is the schema descriptor for inbound_rate_cents field.
	billingaccountDescInboundRateCents := billingaccountFields[1].Descriptor()
	// billingaccount.DefaultInboundRateCents holds the default value on creation for the inbound_rate_cents field.
	billingaccount.DefaultInboundRateCents = billingaccountDescInboundRateCents.Default.(int)
	// billingaccount.InboundRateCentsValidator is a validator for the "inbound_rate_cents" field. It is called by the builders before save.
	billingaccount.InboundRateCentsValidator = billingaccountDescInboundRateCents.Validators[0].(func(int) error)
	// billingaccountDescOutboundRateCents is the schema descriptor for outbound_rate_cents field.
	billingaccountDescOutboundRateCents := billingaccountFields[2].Descriptor()
	// billingaccount.DefaultOutboundRateCents holds the default value on creation for the outbound_rate_cents field.
	billingaccount.DefaultOutboundRateCents = billingaccountDescOutboundRateCents.Default.(int)
	// billingaccount.OutboundRateCentsValidator is a validator for the "outbound_rate_cents" field. It is called by the builders before save.
	billingaccount.OutboundRateCentsValidator = billingaccountDescOutboundRateCents.Validators[0].(func(int) error)
	// billingaccountDescMonthlySpendCents is the schema descriptor for monthly_spend_cents field.
	billingaccountDescMonthlySpendCents := billingaccountFields[5].Descriptor()
	// billingaccount.DefaultMonthlySpendCents holds the default value on creation for the monthly_spend_cents field.
	billingaccount.DefaultMonthlySpendCents = billingaccountDescMonthlySpendCents.Default.(int64)
	// billingaccountDescStripeCustomerID is the schema descriptor for stripe_customer_id field.
	billingaccountDescStripeCustomerID := billingaccountFields[6].Descriptor()
	// billingaccount.StripeCustomerIDValidator is a validator for the "stripe_customer_id" field. It is called by the builders before save.
	billingaccount.StripeCustomerIDValidator = billingaccountDescStripeCustomerID.Validators[0].(func(string) error)
	// billingaccountDescStripeSubscriptionItemID is the schema descriptor for stripe_subscription_item_id field.
	billingaccountDescStripeSubscriptionItemID := billingaccountFields[7].Descriptor()
	// billingaccount.StripeSubscriptionItemIDValidator is a validator for the "stripe_subscription_item_id" field. It is called by the builders before save.
	billingaccount.StripeSubscriptionItemIDValidator = billingaccountDescStripeSubscriptionItemID.Validators[0].(func(string) error)
	// billingaccountDescCreatedAt is the schema descriptor for created_at field.
	billingaccountDescCreatedAt := billingaccountFields[8].Descriptor()
	// billingaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingaccount.DefaultCreatedAt = billingaccountDescCreatedAt.Default.(func() time.Time)
	// billingaccountDescUpdatedAt is the schema descriptor for updated_at field.
	billingaccountDescUpdatedAt := billingaccountFields[9].Descriptor()
	// billingaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	billingaccount.DefaultUpdatedAt = billingaccountDescUpdatedAt.Default.(func() time.Time)
	// billingaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	billingaccount.UpdateDefaultUpdatedAt = billingaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	crmconnectionFields := schema.CRMConnection{}.Fields()
	_ = crmconnectionFields
	// crmconnectionDescLocationID is the schema descriptor for location_id field.
	crmconnectionDescLocationID := crmconnectionFields[1].Descriptor()
	// crmconnection.LocationIDValidator is a validator for the "location_id" field. It is called by the builders before save.
	crmconnection.LocationIDValidator = func() func(string) error {
		validators := crmconnectionDescLocationID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(location_id string) error {
			for _, fn := range fns {
				if err := fn(location_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// crmconnectionDescAutoSync is the schema descriptor for auto_sync field.
	crmconnectionDescAutoSync := crmconnectionFields[5].Descriptor()
	// crmconnection.DefaultAutoSync holds the default value on creation for the auto_sync field.
	crmconnection.DefaultAutoSync = crmconnectionDescAutoSync.Default.(bool)
	// crmconnectionDescSyncIntervalMinutes is the schema descriptor for sync_interval_minutes field.
	crmconnectionDescSyncIntervalMinutes := crmconnectionFields[6].Descriptor()
	// crmconnection.DefaultSyncIntervalMinutes holds the default value on creation for the sync_interval_minutes field.
	crmconnection.DefaultSyncIntervalMinutes = crmconnectionDescSyncIntervalMinutes.Default.(int)
	// crmconnection.SyncIntervalMinutesValidator is a validator for the "sync_interval_minutes" field. It is called by the builders before save.
	crmconnection.SyncIntervalMinutesValidator = crmconnectionDescSyncIntervalMinutes.Validators[0].(func(int) error)
	// crmconnectionDescCreatedAt is the schema descriptor for created_at field.
	crmconnectionDescCreatedAt := crmconnectionFields[9].Descriptor()
	// crmconnection.DefaultCreatedAt holds the default value on creation for the created_at field.
	crmconnection.DefaultCreatedAt = crmconnectionDescCreatedAt.Default.(func() time.Time)
	// crmconnectionDescUpdatedAt is the schema descriptor for updated_at field.
	crmconnectionDescUpdatedAt := crmconnectionFields[10].Descriptor()
	// crmconnection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crmconnection.DefaultUpdatedAt = crmconnectionDescUpdatedAt.Default.(func() time.Time)
	// crmconnection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crmconnection.UpdateDefaultUpdatedAt = crmconnectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	callrecordFields := schema.CallRecord{}.Fields()
	_ = callrecordFields
	// callrecordDescProviderCallID is the schema descriptor for provider_call_id field.
	callrecordDescProviderCallID := callrecordFields[1].Descriptor()
	// callrecord.ProviderCallIDValidator is a validator for the "provider_call_id" field. It is called by the builders before save.
	callrecord.ProviderCallIDValidator = func() func(string) error {
		validators := callrecordDescProviderCallID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider_call_id string) error {
			for _, fn := range fns {
				if err := fn(provider_call_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// callrecordDescFromNumber is the schema descriptor for from_number field.
	callrecordDescFromNumber := callrecordFields[3].Descriptor()
	// callrecord.FromNumberValidator is a validator for the "from_number" field. It is called by the builders before save.
	callrecord.FromNumberValidator = func() func(string) error {
		validators := callrecordDescFromNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(from_number string) error {
			for _, fn := range fns {
				if err := fn(from_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// callrecordDescToNumber is the schema descriptor for to_number field.
	callrecordDescToNumber := callrecordFields[4].Descriptor()
	// callrecord.ToNumberValidator is a validator for the "to_number" field. It is called by the builders before save.
	callrecord.ToNumberValidator = callrecordDescToNumber.Validators[0].(func(string) error)
	// callrecordDescStatus is the schema descriptor for status field.
	callrecordDescStatus := callrecordFields[5].Descriptor()
	// callrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	callrecord.StatusValidator = callrecordDescStatus.Validators[0].(func(string) error)
	// callrecordDescDuration is the schema descriptor for duration field.
	callrecordDescDuration := callrecordFields[6].Descriptor()
	// callrecord.DefaultDuration holds the default value on creation for the duration field.
	callrecord.DefaultDuration = callrecordDescDuration.Default.(int)
	// callrecord.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	callrecord.DurationValidator = callrecordDescDuration.Validators[0].(func(int) error)
	// callrecordDescCost is the schema descriptor for cost field.
	callrecordDescCost := callrecordFields[7].Descriptor()
	// callrecord.DefaultCost holds the default value on creation for the cost field.
	callrecord.DefaultCost = callrecordDescCost.Default.(float64)
	// callrecord.CostValidator is a validator for the "cost" field. It is called by the builders before save.
	callrecord.CostValidator = callrecordDescCost.Validators[0].(func(float64) error)
	// callrecordDescDisplayCost is the schema descriptor for display_cost field.
	callrecordDescDisplayCost := callrecordFields[8].Descriptor()
	// callrecord.DisplayCostValidator is a validator for the "display_cost" field. It is called by the builders before save.
	callrecord.DisplayCostValidator = callrecordDescDisplayCost.Validators[0].(func(string) error)
	// callrecordDescContactName is the schema descriptor for contact_name field.
	callrecordDescContactName := callrecordFields[11].Descriptor()
	// callrecord.DefaultContactName holds the default value on creation for the contact_name field.
	callrecord.DefaultContactName = callrecordDescContactName.Default.(string)
	// callrecord.ContactNameValidator is a validator for the "contact_name" field. It is called by the builders before save.
	callrecord.ContactNameValidator = callrecordDescContactName.Validators[0].(func(string) error)
	// callrecordDescTranscriptID is the schema descriptor for transcript_id field.
	callrecordDescTranscriptID := callrecordFields[13].Descriptor()
	// callrecord.TranscriptIDValidator is a validator for the "transcript_id" field. It is called by the builders before save.
	callrecord.TranscriptIDValidator = callrecordDescTranscriptID.Validators[0].(func(string) error)
	// callrecordDescMessageID is the schema descriptor for message_id field.
	callrecordDescMessageID := callrecordFields[14].Descriptor()
	// callrecord.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	callrecord.MessageIDValidator = callrecordDescMessageID.Validators[0].(func(string) error)
	// callrecordDescIsTest is the schema descriptor for is_test field.
	callrecordDescIsTest := callrecordFields[15].Descriptor()
	// callrecord.DefaultIsTest holds the default value on creation for the is_test field.
	callrecord.DefaultIsTest = callrecordDescIsTest.Default.(bool)
	// callrecordDescCreatedAt is the schema descriptor for created_at field.
	callrecordDescCreatedAt := callrecordFields[18].Descriptor()
	// callrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	callrecord.DefaultCreatedAt = callrecordDescCreatedAt.Default.(func() time.Time)
	// callrecordDescUpdatedAt is the schema descriptor for updated_at field.
	callrecordDescUpdatedAt := callrecordFields[19].Descriptor()
	// callrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	callrecord.DefaultUpdatedAt = callrecordDescUpdatedAt.Default.(func() time.Time)
	// callrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	callrecord.UpdateDefaultUpdatedAt = callrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	deletedcallFields := schema.DeletedCall{}.Fields()
	_ = deletedcallFields
	// deletedcallDescProviderCallID is the schema descriptor for provider_call_id field.
	deletedcallDescProviderCallID := deletedcallFields[1].Descriptor()
	// deletedcall.ProviderCallIDValidator is a validator for the "provider_call_id" field. It is called by the builders before save.
	deletedcall.ProviderCallIDValidator = func() func(string) error {
		validators := deletedcallDescProviderCallID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider_call_id string) error {
			for _, fn := range fns {
				if err := fn(provider_call_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// deletedcallDescDeletedAt is the schema descriptor for deleted_at field.
	deletedcallDescDeletedAt := deletedcallFields[3].Descriptor()
	// deletedcall.DefaultDeletedAt holds the default value on creation for the deleted_at field.
	deletedcall.DefaultDeletedAt = deletedcallDescDeletedAt.Default.(func() time.Time)
	phonenumberFields := schema.PhoneNumber{}.Fields()
	_ = phonenumberFields
	// phonenumberDescNumber is the schema descriptor for number field.
	phonenumberDescNumber := phonenumberFields[2].Descriptor()
	// phonenumber.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	phonenumber.NumberValidator = func() func(string) error {
		validators := phonenumberDescNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(number string) error {
			for _, fn := range fns {
				if err := fn(number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// phonenumberDescNormalized is the schema descriptor for normalized field.
	phonenumberDescNormalized := phonenumberFields[3].Descriptor()
	// phonenumber.NormalizedValidator is a validator for the "normalized" field. It is called by the builders before save.
	phonenumber.NormalizedValidator = func() func(string) error {
		validators := phonenumberDescNormalized.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(normalized string) error {
			for _, fn := range fns {
				if err := fn(normalized); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// phonenumberDescLabel is the schema descriptor for label field.
	phonenumberDescLabel := phonenumberFields[4].Descriptor()
	// phonenumber.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	phonenumber.LabelValidator = phonenumberDescLabel.Validators[0].(func(string) error)
	// phonenumberDescActive is the schema descriptor for active field.
	phonenumberDescActive := phonenumberFields[5].Descriptor()
	// phonenumber.DefaultActive holds the default value on creation for the active field.
	phonenumber.DefaultActive = phonenumberDescActive.Default.(bool)
	// phonenumberDescCreatedAt is the schema descriptor for created_at field.
	phonenumberDescCreatedAt := phonenumberFields[6].Descriptor()
	// phonenumber.DefaultCreatedAt holds the default value on creation for the created_at field.
	phonenumber.DefaultCreatedAt = phonenumberDescCreatedAt.Default.(func() time.Time)
	// phonenumberDescUpdatedAt is the schema descriptor for updated_at field.
	phonenumberDescUpdatedAt := phonenumberFields[7].Descriptor()
	// phonenumber.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	phonenumber.DefaultUpdatedAt = phonenumberDescUpdatedAt.Default.(func() time.Time)
	// phonenumber.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	phonenumber.UpdateDefaultUpdatedAt = phonenumberDescUpdatedAt.UpdateDefault.(func() time.Time)
	syncrunFields := schema.SyncRun{}.Fields()
	_ = syncrunFields
	// syncrunDescTimezone is the schema descriptor for timezone field.
	syncrunDescTimezone := syncrunFields[7].Descriptor()
	// syncrun.DefaultTimezone holds the default value on creation for the timezone field.
	syncrun.DefaultTimezone = syncrunDescTimezone.Default.(string)
	// syncrunDescTotal is the schema descriptor for total field.
	syncrunDescTotal := syncrunFields[13].Descriptor()
	// syncrun.DefaultTotal holds the default value on creation for the total field.
	syncrun.DefaultTotal = syncrunDescTotal.Default.(int)
	// syncrun.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	syncrun.TotalValidator = syncrunDescTotal.Validators[0].(func(int) error)
	// syncrunDescInserted is the schema descriptor for inserted field.
	syncrunDescInserted := syncrunFields[14].Descriptor()
	// syncrun.DefaultInserted holds the default value on creation for the inserted field.
	syncrun.DefaultInserted = syncrunDescInserted.Default.(int)
	// syncrun.InsertedValidator is a validator for the "inserted" field. It is called by the builders before save.
	syncrun.InsertedValidator = syncrunDescInserted.Validators[0].(func(int) error)
	// syncrunDescUpdated is the schema descriptor for updated field.
	syncrunDescUpdated := syncrunFields[15].Descriptor()
	// syncrun.DefaultUpdated holds the default value on creation for the updated field.
	syncrun.DefaultUpdated = syncrunDescUpdated.Default.(int)
	// syncrun.UpdatedValidator is a validator for the "updated" field. It is called by the builders before save.
	syncrun.UpdatedValidator = syncrunDescUpdated.Validators[0].(func(int) error)
	// syncrunDescSkipped is the schema descriptor for skipped field.
	syncrunDescSkipped := syncrunFields[16].Descriptor()
	// syncrun.DefaultSkipped holds the default value on creation for the skipped field.
	syncrun.DefaultSkipped = syncrunDescSkipped.Default.(int)
	// syncrun.SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	syncrun.SkippedValidator = syncrunDescSkipped.Validators[0].(func(int) error)
	// syncrunDescAPIMs is the schema descriptor for api_ms field.
	syncrunDescAPIMs := syncrunFields[17].Descriptor()
	// syncrun.DefaultAPIMs holds the default value on creation for the api_ms field.
	syncrun.DefaultAPIMs = syncrunDescAPIMs.Default.(int64)
	// syncrunDescTotalMs is the schema descriptor for total_ms field.
	syncrunDescTotalMs := syncrunFields[18].Descriptor()
	// syncrun.DefaultTotalMs holds the default value on creation for the total_ms field.
	syncrun.DefaultTotalMs = syncrunDescTotalMs.Default.(int64)
	// syncrunDescTriggeredBy is the schema descriptor for triggered_by field.
	syncrunDescTriggeredBy := syncrunFields[20].Descriptor()
	// syncrun.TriggeredByValidator is a validator for the "triggered_by" field. It is called by the builders before save.
	syncrun.TriggeredByValidator = syncrunDescTriggeredBy.Validators[0].(func(string) error)
	// syncrunDescStartedAt is the schema descriptor for started_at field.
	syncrunDescStartedAt := syncrunFields[21].Descriptor()
	// syncrun.DefaultStartedAt holds the default value on creation for the started_at field.
	syncrun.DefaultStartedAt = syncrunDescStartedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[0].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = func() func(string) error {
		validators := tenantDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tenantDescTimezone is the schema descriptor for timezone field.
	tenantDescTimezone := tenantFields[1].Descriptor()
	// tenant.DefaultTimezone holds the default value on creation for the timezone field.
	tenant.DefaultTimezone = tenantDescTimezone.Default.(string)
	// tenantDescActive is the schema descriptor for active field.
	tenantDescActive := tenantFields[2].Descriptor()
	// tenant.DefaultActive holds the default value on creation for the active field.
	tenant.DefaultActive = tenantDescActive.Default.(bool)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[4].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	usageledgerentryFields := schema.UsageLedgerEntry{}.Fields()
	_ = usageledgerentryFields
	// usageledgerentryDescAmountCents is the schema descriptor for amount_cents field.
	usageledgerentryDescAmountCents := usageledgerentryFields[2].Descriptor()
	// usageledgerentry.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	usageledgerentry.AmountCentsValidator = usageledgerentryDescAmountCents.Validators[0].(func(int64) error)
	// usageledgerentryDescCreatedAt is the schema descriptor for created_at field.
	usageledgerentryDescCreatedAt := usageledgerentryFields[6].Descriptor()
	// usageledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageledgerentry.DefaultCreatedAt = usageledgerentryDescCreatedAt.Default.(func() time.Time)
	// usageledgerentryDescUpdatedAt is the schema descriptor for updated_at field.
	usageledgerentryDescUpdatedAt := usageledgerentryFields[7].Descriptor()
	// usageledgerentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usageledgerentry.DefaultUpdatedAt = usageledgerentryDescUpdatedAt.Default.(func() time.Time)
	// usageledgerentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usageledgerentry.UpdateDefaultUpdatedAt = usageledgerentryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
