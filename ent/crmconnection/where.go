// Code generated by ent, DO NOT EDIT.

package crmconnection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldTenantID, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldLocationID, v))
}

// AccessToken applies equality check predicate on the "access_token" field. It's identical to AccessTokenEQ.
func AccessToken(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldAccessToken, v))
}

// RefreshToken applies equality check predicate on the "refresh_token" field. It's identical to RefreshTokenEQ.
func RefreshToken(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldRefreshToken, v))
}

// TokenExpiresAt applies equality check predicate on the "token_expires_at" field. It's identical to TokenExpiresAtEQ.
func TokenExpiresAt(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// AutoSync applies equality check predicate on the "auto_sync" field. It's identical to AutoSyncEQ.
func AutoSync(v bool) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldAutoSync, v))
}

// SyncIntervalMinutes applies equality check predicate on the "sync_interval_minutes" field. It's identical to SyncIntervalMinutesEQ.
func SyncIntervalMinutes(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldSyncIntervalMinutes, v))
}

// LastSyncAt applies equality check predicate on the "last_sync_at" field. It's identical to LastSyncAtEQ.
func LastSyncAt(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncError applies equality check predicate on the "last_sync_error" field. It's identical to LastSyncErrorEQ.
func LastSyncError(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldLastSyncError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldTenantID, vs...))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldLocationID, v))
}

// LocationIDContains applies the Contains predicate on the "location_id" field.
func LocationIDContains(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContains(FieldLocationID, v))
}

// LocationIDHasPrefix applies the HasPrefix predicate on the "location_id" field.
func LocationIDHasPrefix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasPrefix(FieldLocationID, v))
}

// LocationIDHasSuffix applies the HasSuffix predicate on the "location_id" field.
func LocationIDHasSuffix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasSuffix(FieldLocationID, v))
}

// LocationIDEqualFold applies the EqualFold predicate on the "location_id" field.
func LocationIDEqualFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEqualFold(FieldLocationID, v))
}

// LocationIDContainsFold applies the ContainsFold predicate on the "location_id" field.
func LocationIDContainsFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContainsFold(FieldLocationID, v))
}

// AccessTokenEQ applies the EQ predicate on the "access_token" field.
func AccessTokenEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldAccessToken, v))
}

// AccessTokenNEQ applies the NEQ predicate on the "access_token" field.
func AccessTokenNEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldAccessToken, v))
}

// AccessTokenIn applies the In predicate on the "access_token" field.
func AccessTokenIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldAccessToken, vs...))
}

// AccessTokenNotIn applies the NotIn predicate on the "access_token" field.
func AccessTokenNotIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldAccessToken, vs...))
}

// AccessTokenGT applies the GT predicate on the "access_token" field.
func AccessTokenGT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldAccessToken, v))
}

// AccessTokenGTE applies the GTE predicate on the "access_token" field.
func AccessTokenGTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldAccessToken, v))
}

// AccessTokenLT applies the LT predicate on the "access_token" field.
func AccessTokenLT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldAccessToken, v))
}

// AccessTokenLTE applies the LTE predicate on the "access_token" field.
func AccessTokenLTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldAccessToken, v))
}

// AccessTokenContains applies the Contains predicate on the "access_token" field.
func AccessTokenContains(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContains(FieldAccessToken, v))
}

// AccessTokenHasPrefix applies the HasPrefix predicate on the "access_token" field.
func AccessTokenHasPrefix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasPrefix(FieldAccessToken, v))
}

// AccessTokenHasSuffix applies the HasSuffix predicate on the "access_token" field.
func AccessTokenHasSuffix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasSuffix(FieldAccessToken, v))
}

// AccessTokenEqualFold applies the EqualFold predicate on the "access_token" field.
func AccessTokenEqualFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEqualFold(FieldAccessToken, v))
}

// AccessTokenContainsFold applies the ContainsFold predicate on the "access_token" field.
func AccessTokenContainsFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContainsFold(FieldAccessToken, v))
}

// RefreshTokenEQ applies the EQ predicate on the "refresh_token" field.
func RefreshTokenEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldRefreshToken, v))
}

// RefreshTokenNEQ applies the NEQ predicate on the "refresh_token" field.
func RefreshTokenNEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldRefreshToken, v))
}

// RefreshTokenIn applies the In predicate on the "refresh_token" field.
func RefreshTokenIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldRefreshToken, vs...))
}

// RefreshTokenNotIn applies the NotIn predicate on the "refresh_token" field.
func RefreshTokenNotIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldRefreshToken, vs...))
}

// RefreshTokenGT applies the GT predicate on the "refresh_token" field.
func RefreshTokenGT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldRefreshToken, v))
}

// RefreshTokenGTE applies the GTE predicate on the "refresh_token" field.
func RefreshTokenGTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldRefreshToken, v))
}

// RefreshTokenLT applies the LT predicate on the "refresh_token" field.
func RefreshTokenLT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldRefreshToken, v))
}

// RefreshTokenLTE applies the LTE predicate on the "refresh_token" field.
func RefreshTokenLTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldRefreshToken, v))
}

// RefreshTokenContains applies the Contains predicate on the "refresh_token" field.
func RefreshTokenContains(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContains(FieldRefreshToken, v))
}

// RefreshTokenHasPrefix applies the HasPrefix predicate on the "refresh_token" field.
func RefreshTokenHasPrefix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasPrefix(FieldRefreshToken, v))
}

// RefreshTokenHasSuffix applies the HasSuffix predicate on the "refresh_token" field.
func RefreshTokenHasSuffix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasSuffix(FieldRefreshToken, v))
}

// RefreshTokenEqualFold applies the EqualFold predicate on the "refresh_token" field.
func RefreshTokenEqualFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEqualFold(FieldRefreshToken, v))
}

// RefreshTokenContainsFold applies the ContainsFold predicate on the "refresh_token" field.
func RefreshTokenContainsFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContainsFold(FieldRefreshToken, v))
}

// TokenExpiresAtEQ applies the EQ predicate on the "token_expires_at" field.
func TokenExpiresAtEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtNEQ applies the NEQ predicate on the "token_expires_at" field.
func TokenExpiresAtNEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIn applies the In predicate on the "token_expires_at" field.
func TokenExpiresAtIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtNotIn applies the NotIn predicate on the "token_expires_at" field.
func TokenExpiresAtNotIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtGT applies the GT predicate on the "token_expires_at" field.
func TokenExpiresAtGT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtGTE applies the GTE predicate on the "token_expires_at" field.
func TokenExpiresAtGTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLT applies the LT predicate on the "token_expires_at" field.
func TokenExpiresAtLT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLTE applies the LTE predicate on the "token_expires_at" field.
func TokenExpiresAtLTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIsNil applies the IsNil predicate on the "token_expires_at" field.
func TokenExpiresAtIsNil() predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIsNull(FieldTokenExpiresAt))
}

// TokenExpiresAtNotNil applies the NotNil predicate on the "token_expires_at" field.
func TokenExpiresAtNotNil() predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotNull(FieldTokenExpiresAt))
}

// AutoSyncEQ applies the EQ predicate on the "auto_sync" field.
func AutoSyncEQ(v bool) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldAutoSync, v))
}

// AutoSyncNEQ applies the NEQ predicate on the "auto_sync" field.
func AutoSyncNEQ(v bool) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldAutoSync, v))
}

// SyncIntervalMinutesEQ applies the EQ predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesEQ(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldSyncIntervalMinutes, v))
}

// SyncIntervalMinutesNEQ applies the NEQ predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesNEQ(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldSyncIntervalMinutes, v))
}

// SyncIntervalMinutesIn applies the In predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesIn(vs ...int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldSyncIntervalMinutes, vs...))
}

// SyncIntervalMinutesNotIn applies the NotIn predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesNotIn(vs ...int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldSyncIntervalMinutes, vs...))
}

// SyncIntervalMinutesGT applies the GT predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesGT(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldSyncIntervalMinutes, v))
}

// SyncIntervalMinutesGTE applies the GTE predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesGTE(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldSyncIntervalMinutes, v))
}

// SyncIntervalMinutesLT applies the LT predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesLT(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldSyncIntervalMinutes, v))
}

// SyncIntervalMinutesLTE applies the LTE predicate on the "sync_interval_minutes" field.
func SyncIntervalMinutesLTE(v int) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldSyncIntervalMinutes, v))
}

// LastSyncAtEQ applies the EQ predicate on the "last_sync_at" field.
func LastSyncAtEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncAtNEQ applies the NEQ predicate on the "last_sync_at" field.
func LastSyncAtNEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldLastSyncAt, v))
}

// LastSyncAtIn applies the In predicate on the "last_sync_at" field.
func LastSyncAtIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldLastSyncAt, vs...))
}

// LastSyncAtNotIn applies the NotIn predicate on the "last_sync_at" field.
func LastSyncAtNotIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldLastSyncAt, vs...))
}

// LastSyncAtGT applies the GT predicate on the "last_sync_at" field.
func LastSyncAtGT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldLastSyncAt, v))
}

// LastSyncAtGTE applies the GTE predicate on the "last_sync_at" field.
func LastSyncAtGTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldLastSyncAt, v))
}

// LastSyncAtLT applies the LT predicate on the "last_sync_at" field.
func LastSyncAtLT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldLastSyncAt, v))
}

// LastSyncAtLTE applies the LTE predicate on the "last_sync_at" field.
func LastSyncAtLTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldLastSyncAt, v))
}

// LastSyncAtIsNil applies the IsNil predicate on the "last_sync_at" field.
func LastSyncAtIsNil() predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIsNull(FieldLastSyncAt))
}

// LastSyncAtNotNil applies the NotNil predicate on the "last_sync_at" field.
func LastSyncAtNotNil() predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotNull(FieldLastSyncAt))
}

// LastSyncErrorEQ applies the EQ predicate on the "last_sync_error" field.
func LastSyncErrorEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldLastSyncError, v))
}

// LastSyncErrorNEQ applies the NEQ predicate on the "last_sync_error" field.
func LastSyncErrorNEQ(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldLastSyncError, v))
}

// LastSyncErrorIn applies the In predicate on the "last_sync_error" field.
func LastSyncErrorIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldLastSyncError, vs...))
}

// LastSyncErrorNotIn applies the NotIn predicate on the "last_sync_error" field.
func LastSyncErrorNotIn(vs ...string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldLastSyncError, vs...))
}

// LastSyncErrorGT applies the GT predicate on the "last_sync_error" field.
func LastSyncErrorGT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldLastSyncError, v))
}

// LastSyncErrorGTE applies the GTE predicate on the "last_sync_error" field.
func LastSyncErrorGTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldLastSyncError, v))
}

// LastSyncErrorLT applies the LT predicate on the "last_sync_error" field.
func LastSyncErrorLT(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldLastSyncError, v))
}

// LastSyncErrorLTE applies the LTE predicate on the "last_sync_error" field.
func LastSyncErrorLTE(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldLastSyncError, v))
}

// LastSyncErrorContains applies the Contains predicate on the "last_sync_error" field.
func LastSyncErrorContains(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContains(FieldLastSyncError, v))
}

// LastSyncErrorHasPrefix applies the HasPrefix predicate on the "last_sync_error" field.
func LastSyncErrorHasPrefix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasPrefix(FieldLastSyncError, v))
}

// LastSyncErrorHasSuffix applies the HasSuffix predicate on the "last_sync_error" field.
func LastSyncErrorHasSuffix(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldHasSuffix(FieldLastSyncError, v))
}

// LastSyncErrorIsNil applies the IsNil predicate on the "last_sync_error" field.
func LastSyncErrorIsNil() predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIsNull(FieldLastSyncError))
}

// LastSyncErrorNotNil applies the NotNil predicate on the "last_sync_error" field.
func LastSyncErrorNotNil() predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotNull(FieldLastSyncError))
}

// LastSyncErrorEqualFold applies the EqualFold predicate on the "last_sync_error" field.
func LastSyncErrorEqualFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEqualFold(FieldLastSyncError, v))
}

// LastSyncErrorContainsFold applies the ContainsFold predicate on the "last_sync_error" field.
func LastSyncErrorContainsFold(v string) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldContainsFold(FieldLastSyncError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CRMConnection {
	return predicate.CRMConnection(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.CRMConnection {
	return predicate.CRMConnection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.CRMConnection {
	return predicate.CRMConnection(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CRMConnection) predicate.CRMConnection {
	return predicate.CRMConnection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CRMConnection) predicate.CRMConnection {
	return predicate.CRMConnection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CRMConnection) predicate.CRMConnection {
	return predicate.CRMConnection(sql.NotPredicates(p))
}
