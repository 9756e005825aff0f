// Code generated by ent, DO NOT EDIT.

package callrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTenantID, v))
}

// ProviderCallID applies equality check predicate on the "provider_call_id" field. It's identical to ProviderCallIDEQ.
func ProviderCallID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldProviderCallID, v))
}

// FromNumber applies equality check predicate on the "from_number" field. It's identical to FromNumberEQ.
func FromNumber(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldFromNumber, v))
}

// ToNumber applies equality check predicate on the "to_number" field. It's identical to ToNumberEQ.
func ToNumber(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldToNumber, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldStatus, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDuration, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCost, v))
}

// DisplayCost applies equality check predicate on the "display_cost" field. It's identical to DisplayCostEQ.
func DisplayCost(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDisplayCost, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldAgentID, v))
}

// PhoneNumberID applies equality check predicate on the "phone_number_id" field. It's identical to PhoneNumberIDEQ.
func PhoneNumberID(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldPhoneNumberID, v))
}

// ContactName applies equality check predicate on the "contact_name" field. It's identical to ContactNameEQ.
func ContactName(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldContactName, v))
}

// RecordingURL applies equality check predicate on the "recording_url" field. It's identical to RecordingURLEQ.
func RecordingURL(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldRecordingURL, v))
}

// TranscriptID applies equality check predicate on the "transcript_id" field. It's identical to TranscriptIDEQ.
func TranscriptID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTranscriptID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldMessageID, v))
}

// IsTest applies equality check predicate on the "is_test" field. It's identical to IsTestEQ.
func IsTest(v bool) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldIsTest, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldTenantID, vs...))
}

// ProviderCallIDEQ applies the EQ predicate on the "provider_call_id" field.
func ProviderCallIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldProviderCallID, v))
}

// ProviderCallIDNEQ applies the NEQ predicate on the "provider_call_id" field.
func ProviderCallIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldProviderCallID, v))
}

// ProviderCallIDIn applies the In predicate on the "provider_call_id" field.
func ProviderCallIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldProviderCallID, vs...))
}

// ProviderCallIDNotIn applies the NotIn predicate on the "provider_call_id" field.
func ProviderCallIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldProviderCallID, vs...))
}

// ProviderCallIDGT applies the GT predicate on the "provider_call_id" field.
func ProviderCallIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldProviderCallID, v))
}

// ProviderCallIDGTE applies the GTE predicate on the "provider_call_id" field.
func ProviderCallIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldProviderCallID, v))
}

// ProviderCallIDLT applies the LT predicate on the "provider_call_id" field.
func ProviderCallIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldProviderCallID, v))
}

// ProviderCallIDLTE applies the LTE predicate on the "provider_call_id" field.
func ProviderCallIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldProviderCallID, v))
}

// ProviderCallIDContains applies the Contains predicate on the "provider_call_id" field.
func ProviderCallIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldProviderCallID, v))
}

// ProviderCallIDHasPrefix applies the HasPrefix predicate on the "provider_call_id" field.
func ProviderCallIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldProviderCallID, v))
}

// ProviderCallIDHasSuffix applies the HasSuffix predicate on the "provider_call_id" field.
func ProviderCallIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldProviderCallID, v))
}

// ProviderCallIDEqualFold applies the EqualFold predicate on the "provider_call_id" field.
func ProviderCallIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldProviderCallID, v))
}

// ProviderCallIDContainsFold applies the ContainsFold predicate on the "provider_call_id" field.
func ProviderCallIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldProviderCallID, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldDirection, vs...))
}

// FromNumberEQ applies the EQ predicate on the "from_number" field.
func FromNumberEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldFromNumber, v))
}

// FromNumberNEQ applies the NEQ predicate on the "from_number" field.
func FromNumberNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldFromNumber, v))
}

// FromNumberIn applies the In predicate on the "from_number" field.
func FromNumberIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldFromNumber, vs...))
}

// FromNumberNotIn applies the NotIn predicate on the "from_number" field.
func FromNumberNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldFromNumber, vs...))
}

// FromNumberGT applies the GT predicate on the "from_number" field.
func FromNumberGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldFromNumber, v))
}

// FromNumberGTE applies the GTE predicate on the "from_number" field.
func FromNumberGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldFromNumber, v))
}

// FromNumberLT applies the LT predicate on the "from_number" field.
func FromNumberLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldFromNumber, v))
}

// FromNumberLTE applies the LTE predicate on the "from_number" field.
func FromNumberLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldFromNumber, v))
}

// FromNumberContains applies the Contains predicate on the "from_number" field.
func FromNumberContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldFromNumber, v))
}

// FromNumberHasPrefix applies the HasPrefix predicate on the "from_number" field.
func FromNumberHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldFromNumber, v))
}

// FromNumberHasSuffix applies the HasSuffix predicate on the "from_number" field.
func FromNumberHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldFromNumber, v))
}

// FromNumberEqualFold applies the EqualFold predicate on the "from_number" field.
func FromNumberEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldFromNumber, v))
}

// FromNumberContainsFold applies the ContainsFold predicate on the "from_number" field.
func FromNumberContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldFromNumber, v))
}

// ToNumberEQ applies the EQ predicate on the "to_number" field.
func ToNumberEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldToNumber, v))
}

// ToNumberNEQ applies the NEQ predicate on the "to_number" field.
func ToNumberNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldToNumber, v))
}

// ToNumberIn applies the In predicate on the "to_number" field.
func ToNumberIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldToNumber, vs...))
}

// ToNumberNotIn applies the NotIn predicate on the "to_number" field.
func ToNumberNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldToNumber, vs...))
}

// ToNumberGT applies the GT predicate on the "to_number" field.
func ToNumberGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldToNumber, v))
}

// ToNumberGTE applies the GTE predicate on the "to_number" field.
func ToNumberGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldToNumber, v))
}

// ToNumberLT applies the LT predicate on the "to_number" field.
func ToNumberLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldToNumber, v))
}

// ToNumberLTE applies the LTE predicate on the "to_number" field.
func ToNumberLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldToNumber, v))
}

// ToNumberContains applies the Contains predicate on the "to_number" field.
func ToNumberContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldToNumber, v))
}

// ToNumberHasPrefix applies the HasPrefix predicate on the "to_number" field.
func ToNumberHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldToNumber, v))
}

// ToNumberHasSuffix applies the HasSuffix predicate on the "to_number" field.
func ToNumberHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldToNumber, v))
}

// ToNumberIsNil applies the IsNil predicate on the "to_number" field.
func ToNumberIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldToNumber))
}

// ToNumberNotNil applies the NotNil predicate on the "to_number" field.
func ToNumberNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldToNumber))
}

// ToNumberEqualFold applies the EqualFold predicate on the "to_number" field.
func ToNumberEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldToNumber, v))
}

// ToNumberContainsFold applies the ContainsFold predicate on the "to_number" field.
func ToNumberContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldToNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldStatus, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldDuration, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCost, v))
}

// DisplayCostEQ applies the EQ predicate on the "display_cost" field.
func DisplayCostEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDisplayCost, v))
}

// DisplayCostNEQ applies the NEQ predicate on the "display_cost" field.
func DisplayCostNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldDisplayCost, v))
}

// DisplayCostIn applies the In predicate on the "display_cost" field.
func DisplayCostIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldDisplayCost, vs...))
}

// DisplayCostNotIn applies the NotIn predicate on the "display_cost" field.
func DisplayCostNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldDisplayCost, vs...))
}

// DisplayCostGT applies the GT predicate on the "display_cost" field.
func DisplayCostGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldDisplayCost, v))
}

// DisplayCostGTE applies the GTE predicate on the "display_cost" field.
func DisplayCostGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldDisplayCost, v))
}

// DisplayCostLT applies the LT predicate on the "display_cost" field.
func DisplayCostLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldDisplayCost, v))
}

// DisplayCostLTE applies the LTE predicate on the "display_cost" field.
func DisplayCostLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldDisplayCost, v))
}

// DisplayCostContains applies the Contains predicate on the "display_cost" field.
func DisplayCostContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldDisplayCost, v))
}

// DisplayCostHasPrefix applies the HasPrefix predicate on the "display_cost" field.
func DisplayCostHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldDisplayCost, v))
}

// DisplayCostHasSuffix applies the HasSuffix predicate on the "display_cost" field.
func DisplayCostHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldDisplayCost, v))
}

// DisplayCostIsNil applies the IsNil predicate on the "display_cost" field.
func DisplayCostIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldDisplayCost))
}

// DisplayCostNotNil applies the NotNil predicate on the "display_cost" field.
func DisplayCostNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldDisplayCost))
}

// DisplayCostEqualFold applies the EqualFold predicate on the "display_cost" field.
func DisplayCostEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldDisplayCost, v))
}

// DisplayCostContainsFold applies the ContainsFold predicate on the "display_cost" field.
func DisplayCostContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldDisplayCost, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldAgentID))
}

// PhoneNumberIDEQ applies the EQ predicate on the "phone_number_id" field.
func PhoneNumberIDEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldPhoneNumberID, v))
}

// PhoneNumberIDNEQ applies the NEQ predicate on the "phone_number_id" field.
func PhoneNumberIDNEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldPhoneNumberID, v))
}

// PhoneNumberIDIn applies the In predicate on the "phone_number_id" field.
func PhoneNumberIDIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldPhoneNumberID, vs...))
}

// PhoneNumberIDNotIn applies the NotIn predicate on the "phone_number_id" field.
func PhoneNumberIDNotIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldPhoneNumberID, vs...))
}

// PhoneNumberIDIsNil applies the IsNil predicate on the "phone_number_id" field.
func PhoneNumberIDIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldPhoneNumberID))
}

// PhoneNumberIDNotNil applies the NotNil predicate on the "phone_number_id" field.
func PhoneNumberIDNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldPhoneNumberID))
}

// ContactNameEQ applies the EQ predicate on the "contact_name" field.
func ContactNameEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldContactName, v))
}

// ContactNameNEQ applies the NEQ predicate on the "contact_name" field.
func ContactNameNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldContactName, v))
}

// ContactNameIn applies the In predicate on the "contact_name" field.
func ContactNameIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldContactName, vs...))
}

// ContactNameNotIn applies the NotIn predicate on the "contact_name" field.
func ContactNameNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldContactName, vs...))
}

// ContactNameGT applies the GT predicate on the "contact_name" field.
func ContactNameGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldContactName, v))
}

// ContactNameGTE applies the GTE predicate on the "contact_name" field.
func ContactNameGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldContactName, v))
}

// ContactNameLT applies the LT predicate on the "contact_name" field.
func ContactNameLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldContactName, v))
}

// ContactNameLTE applies the LTE predicate on the "contact_name" field.
func ContactNameLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldContactName, v))
}

// ContactNameContains applies the Contains predicate on the "contact_name" field.
func ContactNameContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldContactName, v))
}

// ContactNameHasPrefix applies the HasPrefix predicate on the "contact_name" field.
func ContactNameHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldContactName, v))
}

// ContactNameHasSuffix applies the HasSuffix predicate on the "contact_name" field.
func ContactNameHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldContactName, v))
}

// ContactNameEqualFold applies the EqualFold predicate on the "contact_name" field.
func ContactNameEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldContactName, v))
}

// ContactNameContainsFold applies the ContainsFold predicate on the "contact_name" field.
func ContactNameContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldContactName, v))
}

// RecordingURLEQ applies the EQ predicate on the "recording_url" field.
func RecordingURLEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldRecordingURL, v))
}

// RecordingURLNEQ applies the NEQ predicate on the "recording_url" field.
func RecordingURLNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldRecordingURL, v))
}

// RecordingURLIn applies the In predicate on the "recording_url" field.
func RecordingURLIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldRecordingURL, vs...))
}

// RecordingURLNotIn applies the NotIn predicate on the "recording_url" field.
func RecordingURLNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldRecordingURL, vs...))
}

// RecordingURLGT applies the GT predicate on the "recording_url" field.
func RecordingURLGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldRecordingURL, v))
}

// RecordingURLGTE applies the GTE predicate on the "recording_url" field.
func RecordingURLGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldRecordingURL, v))
}

// RecordingURLLT applies the LT predicate on the "recording_url" field.
func RecordingURLLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldRecordingURL, v))
}

// RecordingURLLTE applies the LTE predicate on the "recording_url" field.
func RecordingURLLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldRecordingURL, v))
}

// RecordingURLContains applies the Contains predicate on the "recording_url" field.
func RecordingURLContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldRecordingURL, v))
}

// RecordingURLHasPrefix applies the HasPrefix predicate on the "recording_url" field.
func RecordingURLHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldRecordingURL, v))
}

// RecordingURLHasSuffix applies the HasSuffix predicate on the "recording_url" field.
func RecordingURLHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldRecordingURL, v))
}

// RecordingURLIsNil applies the IsNil predicate on the "recording_url" field.
func RecordingURLIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldRecordingURL))
}

// RecordingURLNotNil applies the NotNil predicate on the "recording_url" field.
func RecordingURLNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldRecordingURL))
}

// RecordingURLEqualFold applies the EqualFold predicate on the "recording_url" field.
func RecordingURLEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldRecordingURL, v))
}

// RecordingURLContainsFold applies the ContainsFold predicate on the "recording_url" field.
func RecordingURLContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldRecordingURL, v))
}

// TranscriptIDEQ applies the EQ predicate on the "transcript_id" field.
func TranscriptIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTranscriptID, v))
}

// TranscriptIDNEQ applies the NEQ predicate on the "transcript_id" field.
func TranscriptIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldTranscriptID, v))
}

// TranscriptIDIn applies the In predicate on the "transcript_id" field.
func TranscriptIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldTranscriptID, vs...))
}

// TranscriptIDNotIn applies the NotIn predicate on the "transcript_id" field.
func TranscriptIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldTranscriptID, vs...))
}

// TranscriptIDGT applies the GT predicate on the "transcript_id" field.
func TranscriptIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldTranscriptID, v))
}

// TranscriptIDGTE applies the GTE predicate on the "transcript_id" field.
func TranscriptIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldTranscriptID, v))
}

// TranscriptIDLT applies the LT predicate on the "transcript_id" field.
func TranscriptIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldTranscriptID, v))
}

// TranscriptIDLTE applies the LTE predicate on the "transcript_id" field.
func TranscriptIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldTranscriptID, v))
}

// TranscriptIDContains applies the Contains predicate on the "transcript_id" field.
func TranscriptIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldTranscriptID, v))
}

// TranscriptIDHasPrefix applies the HasPrefix predicate on the "transcript_id" field.
func TranscriptIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldTranscriptID, v))
}

// TranscriptIDHasSuffix applies the HasSuffix predicate on the "transcript_id" field.
func TranscriptIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldTranscriptID, v))
}

// TranscriptIDIsNil applies the IsNil predicate on the "transcript_id" field.
func TranscriptIDIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldTranscriptID))
}

// TranscriptIDNotNil applies the NotNil predicate on the "transcript_id" field.
func TranscriptIDNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldTranscriptID))
}

// TranscriptIDEqualFold applies the EqualFold predicate on the "transcript_id" field.
func TranscriptIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldTranscriptID, v))
}

// TranscriptIDContainsFold applies the ContainsFold predicate on the "transcript_id" field.
func TranscriptIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldTranscriptID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldMessageID, v))
}

// IsTestEQ applies the EQ predicate on the "is_test" field.
func IsTestEQ(v bool) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldIsTest, v))
}

// IsTestNEQ applies the NEQ predicate on the "is_test" field.
func IsTestNEQ(v bool) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldIsTest, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldEndedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhoneNumber applies the HasEdge predicate on the "phone_number" edge.
func HasPhoneNumber() predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PhoneNumberTable, PhoneNumberColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhoneNumberWith applies the HasEdge predicate on the "phone_number" edge with a given conditions (other predicates).
func HasPhoneNumberWith(preds ...predicate.PhoneNumber) predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := newPhoneNumberStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsageEntry applies the HasEdge predicate on the "usage_entry" edge.
func HasUsageEntry() predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, UsageEntryTable, UsageEntryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsageEntryWith applies the HasEdge predicate on the "usage_entry" edge with a given conditions (other predicates).
func HasUsageEntryWith(preds ...predicate.UsageLedgerEntry) predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := newUsageEntryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.NotPredicates(p))
}
