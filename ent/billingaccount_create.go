// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/tenant"
)

// BillingAccountCreate is the builder for creating a BillingAccount entity.
type BillingAccountCreate struct {
	config
	mutation *BillingAccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (bac *BillingAccountCreate) SetTenantID(i int) *BillingAccountCreate {
	bac.mutation.SetTenantID(i)
	return bac
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (bac *BillingAccountCreate) SetInboundRateCents(i int) *BillingAccountCreate {
	bac.mutation.SetInboundRateCents(i)
	return bac
}

// SetNillableInboundRateCents sets the "inbound_rate_cents" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableInboundRateCents(i *int) *BillingAccountCreate {
	if i != nil {
		bac.SetInboundRateCents(*i)
	}
	return bac
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (bac *BillingAccountCreate) SetOutboundRateCents(i int) *BillingAccountCreate {
	bac.mutation.SetOutboundRateCents(i)
	return bac
}

// SetNillableOutboundRateCents sets the "outbound_rate_cents" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableOutboundRateCents(i *int) *BillingAccountCreate {
	if i != nil {
		bac.SetOutboundRateCents(*i)
	}
	return bac
}

// SetInboundPlan sets the "inbound_plan" field.
func (bac *BillingAccountCreate) SetInboundPlan(bp billingaccount.InboundPlan) *BillingAccountCreate {
	bac.mutation.SetInboundPlan(bp)
	return bac
}

// SetNillableInboundPlan sets the "inbound_plan" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableInboundPlan(bp *billingaccount.InboundPlan) *BillingAccountCreate {
	if bp != nil {
		bac.SetInboundPlan(*bp)
	}
	return bac
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (bac *BillingAccountCreate) SetCallsResetAt(t time.Time) *BillingAccountCreate {
	bac.mutation.SetCallsResetAt(t)
	return bac
}

// SetNillableCallsResetAt sets the "calls_reset_at" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableCallsResetAt(t *time.Time) *BillingAccountCreate {
	if t != nil {
		bac.SetCallsResetAt(*t)
	}
	return bac
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (bac *BillingAccountCreate) SetMonthlySpendCents(i int64) *BillingAccountCreate {
	bac.mutation.SetMonthlySpendCents(i)
	return bac
}

// SetNillableMonthlySpendCents sets the "monthly_spend_cents" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableMonthlySpendCents(i *int64) *BillingAccountCreate {
	if i != nil {
		bac.SetMonthlySpendCents(*i)
	}
	return bac
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (bac *BillingAccountCreate) SetStripeCustomerID(s string) *BillingAccountCreate {
	bac.mutation.SetStripeCustomerID(s)
	return bac
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableStripeCustomerID(s *string) *BillingAccountCreate {
	if s != nil {
		bac.SetStripeCustomerID(*s)
	}
	return bac
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (bac *BillingAccountCreate) SetStripeSubscriptionItemID(s string) *BillingAccountCreate {
	bac.mutation.SetStripeSubscriptionItemID(s)
	return bac
}

// SetNillableStripeSubscriptionItemID sets the "stripe_subscription_item_id" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableStripeSubscriptionItemID(s *string) *BillingAccountCreate {
	if s != nil {
		bac.SetStripeSubscriptionItemID(*s)
	}
	return bac
}

// SetCreatedAt sets the "created_at" field.
func (bac *BillingAccountCreate) SetCreatedAt(t time.Time) *BillingAccountCreate {
	bac.mutation.SetCreatedAt(t)
	return bac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableCreatedAt(t *time.Time) *BillingAccountCreate {
	if t != nil {
		bac.SetCreatedAt(*t)
	}
	return bac
}

// SetUpdatedAt sets the "updated_at" field.
func (bac *BillingAccountCreate) SetUpdatedAt(t time.Time) *BillingAccountCreate {
	bac.mutation.SetUpdatedAt(t)
	return bac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bac *BillingAccountCreate) SetNillableUpdatedAt(t *time.Time) *BillingAccountCreate {
	if t != nil {
		bac.SetUpdatedAt(*t)
	}
	return bac
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (bac *BillingAccountCreate) SetTenant(t *Tenant) *BillingAccountCreate {
	return bac.SetTenantID(t.ID)
}

// Mutation returns the BillingAccountMutation object of the builder.
func (bac *BillingAccountCreate) Mutation() *BillingAccountMutation {
	return bac.mutation
}

// Save creates the BillingAccount in the database.
func (bac *BillingAccountCreate) Save(ctx context.Context) (*BillingAccount, error) {
	bac.defaults()
	return withHooks(ctx, bac.sqlSave, bac.mutation, bac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bac *BillingAccountCreate) SaveX(ctx context.Context) *BillingAccount {
	v, err := bac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bac *BillingAccountCreate) Exec(ctx context.Context) error {
	_, err := bac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bac *BillingAccountCreate) ExecX(ctx context.Context) {
	if err := bac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bac *BillingAccountCreate) defaults() {
	if _, ok := bac.mutation.InboundRateCents(); !ok {
		v := billingaccount.DefaultInboundRateCents
		bac.mutation.SetInboundRateCents(v)
	}
	if _, ok := bac.mutation.OutboundRateCents(); !ok {
		v := billingaccount.DefaultOutboundRateCents
		bac.mutation.SetOutboundRateCents(v)
	}
	if _, ok := bac.mutation.InboundPlan(); !ok {
		v := billingaccount.DefaultInboundPlan
		bac.mutation.SetInboundPlan(v)
	}
	if _, ok := bac.mutation.MonthlySpendCents(); !ok {
		v := billingaccount.DefaultMonthlySpendCents
		bac.mutation.SetMonthlySpendCents(v)
	}
	if _, ok := bac.mutation.CreatedAt(); !ok {
		v := billingaccount.DefaultCreatedAt()
		bac.mutation.SetCreatedAt(v)
	}
	if _, ok := bac.mutation.UpdatedAt(); !ok {
		v := billingaccount.DefaultUpdatedAt()
		bac.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bac *BillingAccountCreate) check() error {
	if _, ok := bac.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "BillingAccount.tenant_id"`)}
	}
	if _, ok := bac.mutation.InboundRateCents(); !ok {
		return &ValidationError{Name: "inbound_rate_cents", err: errors.New(`ent: missing required field "BillingAccount.inbound_rate_cents"`)}
	}
	if v, ok := bac.mutation.InboundRateCents(); ok {
		if err := billingaccount.InboundRateCentsValidator(v); err != nil {
			return &ValidationError{Name: "inbound_rate_cents", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.inbound_rate_cents": %w`, err)}
		}
	}
	if _, ok := bac.mutation.OutboundRateCents(); !ok {
		return &ValidationError{Name: "outbound_rate_cents", err: errors.New(`ent: missing required field "BillingAccount.outbound_rate_cents"`)}
	}
	if v, ok := bac.mutation.OutboundRateCents(); ok {
		if err := billingaccount.OutboundRateCentsValidator(v); err != nil {
			return &ValidationError{Name: "outbound_rate_cents", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.outbound_rate_cents": %w`, err)}
		}
	}
	if _, ok := bac.mutation.InboundPlan(); !ok {
		return &ValidationError{Name: "inbound_plan", err: errors.New(`ent: missing required field "BillingAccount.inbound_plan"`)}
	}
	if v, ok := bac.mutation.InboundPlan(); ok {
		if err := billingaccount.InboundPlanValidator(v); err != nil {
			return &ValidationError{Name: "inbound_plan", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.inbound_plan": %w`, err)}
		}
	}
	if _, ok := bac.mutation.MonthlySpendCents(); !ok {
		return &ValidationError{Name: "monthly_spend_cents", err: errors.New(`ent: missing required field "BillingAccount.monthly_spend_cents"`)}
	}
	if v, ok := bac.mutation.StripeCustomerID(); ok {
		if err := billingaccount.StripeCustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.stripe_customer_id": %w`, err)}
		}
	}
	if v, ok := bac.mutation.StripeSubscriptionItemID(); ok {
		if err := billingaccount.StripeSubscriptionItemIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_subscription_item_id", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.stripe_subscription_item_id": %w`, err)}
		}
	}
	if _, ok := bac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingAccount.created_at"`)}
	}
	if _, ok := bac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BillingAccount.updated_at"`)}
	}
	if len(bac.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "BillingAccount.tenant"`)}
	}
	return nil
}

func (bac *BillingAccountCreate) sqlSave(ctx context.Context) (*BillingAccount, error) {
	if err := bac.check(); err != nil {
		return nil, err
	}
	_node, _spec := bac.createSpec()
	if err := sqlgraph.CreateNode(ctx, bac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	bac.mutation.id = &_node.ID
	bac.mutation.done = true
	return _node, nil
}

func (bac *BillingAccountCreate) createSpec() (*BillingAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingAccount{config: bac.config}
		_spec = sqlgraph.NewCreateSpec(billingaccount.Table, sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt))
	)
	_spec.OnConflict = bac.conflict
	if value, ok := bac.mutation.InboundRateCents(); ok {
		_spec.SetField(billingaccount.FieldInboundRateCents, field.TypeInt, value)
		_node.InboundRateCents = value
	}
	if value, ok := bac.mutation.OutboundRateCents(); ok {
		_spec.SetField(billingaccount.FieldOutboundRateCents, field.TypeInt, value)
		_node.OutboundRateCents = value
	}
	if value, ok := bac.mutation.InboundPlan(); ok {
		_spec.SetField(billingaccount.FieldInboundPlan, field.TypeEnum, value)
		_node.InboundPlan = value
	}
	if value, ok := bac.mutation.CallsResetAt(); ok {
		_spec.SetField(billingaccount.FieldCallsResetAt, field.TypeTime, value)
		_node.CallsResetAt = &value
	}
	if value, ok := bac.mutation.MonthlySpendCents(); ok {
		_spec.SetField(billingaccount.FieldMonthlySpendCents, field.TypeInt64, value)
		_node.MonthlySpendCents = value
	}
	if value, ok := bac.mutation.StripeCustomerID(); ok {
		_spec.SetField(billingaccount.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = &value
	}
	if value, ok := bac.mutation.StripeSubscriptionItemID(); ok {
		_spec.SetField(billingaccount.FieldStripeSubscriptionItemID, field.TypeString, value)
		_node.StripeSubscriptionItemID = value
	}
	if value, ok := bac.mutation.CreatedAt(); ok {
		_spec.SetField(billingaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bac.mutation.UpdatedAt(); ok {
		_spec.SetField(billingaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := bac.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   billingaccount.TenantTable,
			Columns: []string{billingaccount.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BillingAccount.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillingAccountUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (bac *BillingAccountCreate) OnConflict(opts ...sql.ConflictOption) *BillingAccountUpsertOne {
	bac.conflict = opts
	return &BillingAccountUpsertOne{
		create: bac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BillingAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bac *BillingAccountCreate) OnConflictColumns(columns ...string) *BillingAccountUpsertOne {
	bac.conflict = append(bac.conflict, sql.ConflictColumns(columns...))
	return &BillingAccountUpsertOne{
		create: bac,
	}
}

type (
	// BillingAccountUpsertOne is the builder for "upsert"-ing
	//  one BillingAccount node.
	BillingAccountUpsertOne struct {
		create *BillingAccountCreate
	}

	// BillingAccountUpsert is the "OnConflict" setter.
	BillingAccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *BillingAccountUpsert) SetTenantID(v int) *BillingAccountUpsert {
	u.Set(billingaccount.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateTenantID() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldTenantID)
	return u
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (u *BillingAccountUpsert) SetInboundRateCents(v int) *BillingAccountUpsert {
	u.Set(billingaccount.FieldInboundRateCents, v)
	return u
}

// UpdateInboundRateCents sets the "inbound_rate_cents" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateInboundRateCents() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldInboundRateCents)
	return u
}

// AddInboundRateCents adds v to the "inbound_rate_cents" field.
func (u *BillingAccountUpsert) AddInboundRateCents(v int) *BillingAccountUpsert {
	u.Add(billingaccount.FieldInboundRateCents, v)
	return u
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (u *BillingAccountUpsert) SetOutboundRateCents(v int) *BillingAccountUpsert {
	u.Set(billingaccount.FieldOutboundRateCents, v)
	return u
}

// UpdateOutboundRateCents sets the "outbound_rate_cents" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateOutboundRateCents() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldOutboundRateCents)
	return u
}

// AddOutboundRateCents adds v to the "outbound_rate_cents" field.
func (u *BillingAccountUpsert) AddOutboundRateCents(v int) *BillingAccountUpsert {
	u.Add(billingaccount.FieldOutboundRateCents, v)
	return u
}

// SetInboundPlan sets the "inbound_plan" field.
func (u *BillingAccountUpsert) SetInboundPlan(v billingaccount.InboundPlan) *BillingAccountUpsert {
	u.Set(billingaccount.FieldInboundPlan, v)
	return u
}

// UpdateInboundPlan sets the "inbound_plan" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateInboundPlan() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldInboundPlan)
	return u
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (u *BillingAccountUpsert) SetCallsResetAt(v time.Time) *BillingAccountUpsert {
	u.Set(billingaccount.FieldCallsResetAt, v)
	return u
}

// UpdateCallsResetAt sets the "calls_reset_at" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateCallsResetAt() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldCallsResetAt)
	return u
}

// ClearCallsResetAt clears the value of the "calls_reset_at" field.
func (u *BillingAccountUpsert) ClearCallsResetAt() *BillingAccountUpsert {
	u.SetNull(billingaccount.FieldCallsResetAt)
	return u
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (u *BillingAccountUpsert) SetMonthlySpendCents(v int64) *BillingAccountUpsert {
	u.Set(billingaccount.FieldMonthlySpendCents, v)
	return u
}

// UpdateMonthlySpendCents sets the "monthly_spend_cents" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateMonthlySpendCents() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldMonthlySpendCents)
	return u
}

// AddMonthlySpendCents adds v to the "monthly_spend_cents" field.
func (u *BillingAccountUpsert) AddMonthlySpendCents(v int64) *BillingAccountUpsert {
	u.Add(billingaccount.FieldMonthlySpendCents, v)
	return u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (u *BillingAccountUpsert) SetStripeCustomerID(v string) *BillingAccountUpsert {
	u.Set(billingaccount.FieldStripeCustomerID, v)
	return u
}

// UpdateStripeCustomerID sets the "stripe_customer_id" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateStripeCustomerID() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldStripeCustomerID)
	return u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (u *BillingAccountUpsert) ClearStripeCustomerID() *BillingAccountUpsert {
	u.SetNull(billingaccount.FieldStripeCustomerID)
	return u
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (u *BillingAccountUpsert) SetStripeSubscriptionItemID(v string) *BillingAccountUpsert {
	u.Set(billingaccount.FieldStripeSubscriptionItemID, v)
	return u
}

// UpdateStripeSubscriptionItemID sets the "stripe_subscription_item_id" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateStripeSubscriptionItemID() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldStripeSubscriptionItemID)
	return u
}

// ClearStripeSubscriptionItemID clears the value of the "stripe_subscription_item_id" field.
func (u *BillingAccountUpsert) ClearStripeSubscriptionItemID() *BillingAccountUpsert {
	u.SetNull(billingaccount.FieldStripeSubscriptionItemID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillingAccountUpsert) SetUpdatedAt(v time.Time) *BillingAccountUpsert {
	u.Set(billingaccount.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillingAccountUpsert) UpdateUpdatedAt() *BillingAccountUpsert {
	u.SetExcluded(billingaccount.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BillingAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BillingAccountUpsertOne) UpdateNewValues() *BillingAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(billingaccount.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BillingAccount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BillingAccountUpsertOne) Ignore() *BillingAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillingAccountUpsertOne) DoNothing() *BillingAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillingAccountCreate.OnConflict
// documentation for more info.
func (u *BillingAccountUpsertOne) Update(set func(*BillingAccountUpsert)) *BillingAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillingAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *BillingAccountUpsertOne) SetTenantID(v int) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateTenantID() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateTenantID()
	})
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (u *BillingAccountUpsertOne) SetInboundRateCents(v int) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetInboundRateCents(v)
	})
}

// AddInboundRateCents adds v to the "inbound_rate_cents" field.
func (u *BillingAccountUpsertOne) AddInboundRateCents(v int) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.AddInboundRateCents(v)
	})
}

// UpdateInboundRateCents sets the "inbound_rate_cents" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateInboundRateCents() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateInboundRateCents()
	})
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (u *BillingAccountUpsertOne) SetOutboundRateCents(v int) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetOutboundRateCents(v)
	})
}

// AddOutboundRateCents adds v to the "outbound_rate_cents" field.
func (u *BillingAccountUpsertOne) AddOutboundRateCents(v int) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.AddOutboundRateCents(v)
	})
}

// UpdateOutboundRateCents sets the "outbound_rate_cents" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateOutboundRateCents() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateOutboundRateCents()
	})
}

// SetInboundPlan sets the "inbound_plan" field.
func (u *BillingAccountUpsertOne) SetInboundPlan(v billingaccount.InboundPlan) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetInboundPlan(v)
	})
}

// UpdateInboundPlan sets the "inbound_plan" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateInboundPlan() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateInboundPlan()
	})
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (u *BillingAccountUpsertOne) SetCallsResetAt(v time.Time) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetCallsResetAt(v)
	})
}

// UpdateCallsResetAt sets the "calls_reset_at" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateCallsResetAt() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateCallsResetAt()
	})
}

// ClearCallsResetAt clears the value of the "calls_reset_at" field.
func (u *BillingAccountUpsertOne) ClearCallsResetAt() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.ClearCallsResetAt()
	})
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (u *BillingAccountUpsertOne) SetMonthlySpendCents(v int64) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetMonthlySpendCents(v)
	})
}

// AddMonthlySpendCents adds v to the "monthly_spend_cents" field.
func (u *BillingAccountUpsertOne) AddMonthlySpendCents(v int64) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.AddMonthlySpendCents(v)
	})
}

// UpdateMonthlySpendCents sets the "monthly_spend_cents" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateMonthlySpendCents() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateMonthlySpendCents()
	})
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (u *BillingAccountUpsertOne) SetStripeCustomerID(v string) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetStripeCustomerID(v)
	})
}

// UpdateStripeCustomerID sets the "stripe_customer_id" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateStripeCustomerID() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateStripeCustomerID()
	})
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (u *BillingAccountUpsertOne) ClearStripeCustomerID() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.ClearStripeCustomerID()
	})
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (u *BillingAccountUpsertOne) SetStripeSubscriptionItemID(v string) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetStripeSubscriptionItemID(v)
	})
}

// UpdateStripeSubscriptionItemID sets the "stripe_subscription_item_id" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateStripeSubscriptionItemID() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateStripeSubscriptionItemID()
	})
}

// ClearStripeSubscriptionItemID clears the value of the "stripe_subscription_item_id" field.
func (u *BillingAccountUpsertOne) ClearStripeSubscriptionItemID() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.ClearStripeSubscriptionItemID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillingAccountUpsertOne) SetUpdatedAt(v time.Time) *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillingAccountUpsertOne) UpdateUpdatedAt() *BillingAccountUpsertOne {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BillingAccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillingAccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillingAccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BillingAccountUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BillingAccountUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BillingAccountCreateBulk is the builder for creating many BillingAccount entities in bulk.
type BillingAccountCreateBulk struct {
	config
	err      error
	builders []*BillingAccountCreate
	conflict []sql.ConflictOption
}

// Save creates the BillingAccount entities in the database.
func (bacb *BillingAccountCreateBulk) Save(ctx context.Context) ([]*BillingAccount, error) {
	if bacb.err != nil {
		return nil, bacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bacb.builders))
	nodes := make([]*BillingAccount, len(bacb.builders))
	mutators := make([]Mutator, len(bacb.builders))
	for i := range bacb.builders {
		func(i int, root context.Context) {
			builder := bacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingAccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, bacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = bacb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bacb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, bacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bacb *BillingAccountCreateBulk) SaveX(ctx context.Context) []*BillingAccount {
	v, err := bacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bacb *BillingAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := bacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bacb *BillingAccountCreateBulk) ExecX(ctx context.Context) {
	if err := bacb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BillingAccount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillingAccountUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (bacb *BillingAccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *BillingAccountUpsertBulk {
	bacb.conflict = opts
	return &BillingAccountUpsertBulk{
		create: bacb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BillingAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bacb *BillingAccountCreateBulk) OnConflictColumns(columns ...string) *BillingAccountUpsertBulk {
	bacb.conflict = append(bacb.conflict, sql.ConflictColumns(columns...))
	return &BillingAccountUpsertBulk{
		create: bacb,
	}
}

// BillingAccountUpsertBulk is the builder for "upsert"-ing
// a bulk of BillingAccount nodes.
type BillingAccountUpsertBulk struct {
	create *BillingAccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BillingAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BillingAccountUpsertBulk) UpdateNewValues() *BillingAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(billingaccount.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BillingAccount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BillingAccountUpsertBulk) Ignore() *BillingAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillingAccountUpsertBulk) DoNothing() *BillingAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillingAccountCreateBulk.OnConflict
// documentation for more info.
func (u *BillingAccountUpsertBulk) Update(set func(*BillingAccountUpsert)) *BillingAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillingAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *BillingAccountUpsertBulk) SetTenantID(v int) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateTenantID() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateTenantID()
	})
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (u *BillingAccountUpsertBulk) SetInboundRateCents(v int) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetInboundRateCents(v)
	})
}

// AddInboundRateCents adds v to the "inbound_rate_cents" field.
func (u *BillingAccountUpsertBulk) AddInboundRateCents(v int) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.AddInboundRateCents(v)
	})
}

// UpdateInboundRateCents sets the "inbound_rate_cents" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateInboundRateCents() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateInboundRateCents()
	})
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (u *BillingAccountUpsertBulk) SetOutboundRateCents(v int) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetOutboundRateCents(v)
	})
}

// AddOutboundRateCents adds v to the "outbound_rate_cents" field.
func (u *BillingAccountUpsertBulk) AddOutboundRateCents(v int) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.AddOutboundRateCents(v)
	})
}

// UpdateOutboundRateCents sets the "outbound_rate_cents" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateOutboundRateCents() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateOutboundRateCents()
	})
}

// SetInboundPlan sets the "inbound_plan" field.
func (u *BillingAccountUpsertBulk) SetInboundPlan(v billingaccount.InboundPlan) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetInboundPlan(v)
	})
}

// UpdateInboundPlan sets the "inbound_plan" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateInboundPlan() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateInboundPlan()
	})
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (u *BillingAccountUpsertBulk) SetCallsResetAt(v time.Time) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetCallsResetAt(v)
	})
}

// UpdateCallsResetAt sets the "calls_reset_at" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateCallsResetAt() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateCallsResetAt()
	})
}

// ClearCallsResetAt clears the value of the "calls_reset_at" field.
func (u *BillingAccountUpsertBulk) ClearCallsResetAt() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.ClearCallsResetAt()
	})
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (u *BillingAccountUpsertBulk) SetMonthlySpendCents(v int64) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetMonthlySpendCents(v)
	})
}

// AddMonthlySpendCents adds v to the "monthly_spend_cents" field.
func (u *BillingAccountUpsertBulk) AddMonthlySpendCents(v int64) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.AddMonthlySpendCents(v)
	})
}

// UpdateMonthlySpendCents sets the "monthly_spend_cents" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateMonthlySpendCents() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateMonthlySpendCents()
	})
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (u *BillingAccountUpsertBulk) SetStripeCustomerID(v string) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetStripeCustomerID(v)
	})
}

// UpdateStripeCustomerID sets the "stripe_customer_id" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateStripeCustomerID() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateStripeCustomerID()
	})
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (u *BillingAccountUpsertBulk) ClearStripeCustomerID() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.ClearStripeCustomerID()
	})
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (u *BillingAccountUpsertBulk) SetStripeSubscriptionItemID(v string) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetStripeSubscriptionItemID(v)
	})
}

// UpdateStripeSubscriptionItemID sets the "stripe_subscription_item_id" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateStripeSubscriptionItemID() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateStripeSubscriptionItemID()
	})
}

// ClearStripeSubscriptionItemID clears the value of the "stripe_subscription_item_id" field.
func (u *BillingAccountUpsertBulk) ClearStripeSubscriptionItemID() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.ClearStripeSubscriptionItemID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillingAccountUpsertBulk) SetUpdatedAt(v time.Time) *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillingAccountUpsertBulk) UpdateUpdatedAt() *BillingAccountUpsertBulk {
	return u.Update(func(s *BillingAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BillingAccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BillingAccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillingAccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillingAccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
