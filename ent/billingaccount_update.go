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
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/tenant"
)

// BillingAccountUpdate is the builder for updating BillingAccount entities.
type BillingAccountUpdate struct {
	config
	hooks    []Hook
	mutation *BillingAccountMutation
}

// Where appends a list predicates to the BillingAccountUpdate builder.
func (bau *BillingAccountUpdate) Where(ps ...predicate.BillingAccount) *BillingAccountUpdate {
	bau.mutation.Where(ps...)
	return bau
}

// SetTenantID sets the "tenant_id" field.
func (bau *BillingAccountUpdate) SetTenantID(i int) *BillingAccountUpdate {
	bau.mutation.SetTenantID(i)
	return bau
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableTenantID(i *int) *BillingAccountUpdate {
	if i != nil {
		bau.SetTenantID(*i)
	}
	return bau
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (bau *BillingAccountUpdate) SetInboundRateCents(i int) *BillingAccountUpdate {
	bau.mutation.ResetInboundRateCents()
	bau.mutation.SetInboundRateCents(i)
	return bau
}

// SetNillableInboundRateCents sets the "inbound_rate_cents" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableInboundRateCents(i *int) *BillingAccountUpdate {
	if i != nil {
		bau.SetInboundRateCents(*i)
	}
	return bau
}

// AddInboundRateCents adds i to the "inbound_rate_cents" field.
func (bau *BillingAccountUpdate) AddInboundRateCents(i int) *BillingAccountUpdate {
	bau.mutation.AddInboundRateCents(i)
	return bau
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (bau *BillingAccountUpdate) SetOutboundRateCents(i int) *BillingAccountUpdate {
	bau.mutation.ResetOutboundRateCents()
	bau.mutation.SetOutboundRateCents(i)
	return bau
}

// SetNillableOutboundRateCents sets the "outbound_rate_cents" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableOutboundRateCents(i *int) *BillingAccountUpdate {
	if i != nil {
		bau.SetOutboundRateCents(*i)
	}
	return bau
}

// AddOutboundRateCents adds i to the "outbound_rate_cents" field.
func (bau *BillingAccountUpdate) AddOutboundRateCents(i int) *BillingAccountUpdate {
	bau.mutation.AddOutboundRateCents(i)
	return bau
}

// SetInboundPlan sets the "inbound_plan" field.
func (bau *BillingAccountUpdate) SetInboundPlan(bp billingaccount.InboundPlan) *BillingAccountUpdate {
	bau.mutation.SetInboundPlan(bp)
	return bau
}

// SetNillableInboundPlan sets the "inbound_plan" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableInboundPlan(bp *billingaccount.InboundPlan) *BillingAccountUpdate {
	if bp != nil {
		bau.SetInboundPlan(*bp)
	}
	return bau
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (bau *BillingAccountUpdate) SetCallsResetAt(t time.Time) *BillingAccountUpdate {
	bau.mutation.SetCallsResetAt(t)
	return bau
}

// SetNillableCallsResetAt sets the "calls_reset_at" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableCallsResetAt(t *time.Time) *BillingAccountUpdate {
	if t != nil {
		bau.SetCallsResetAt(*t)
	}
	return bau
}

// ClearCallsResetAt clears the value of the "calls_reset_at" field.
func (bau *BillingAccountUpdate) ClearCallsResetAt() *BillingAccountUpdate {
	bau.mutation.ClearCallsResetAt()
	return bau
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (bau *BillingAccountUpdate) SetMonthlySpendCents(i int64) *BillingAccountUpdate {
	bau.mutation.ResetMonthlySpendCents()
	bau.mutation.SetMonthlySpendCents(i)
	return bau
}

// SetNillableMonthlySpendCents sets the "monthly_spend_cents" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableMonthlySpendCents(i *int64) *BillingAccountUpdate {
	if i != nil {
		bau.SetMonthlySpendCents(*i)
	}
	return bau
}

// AddMonthlySpendCents adds i to the "monthly_spend_cents" field.
func (bau *BillingAccountUpdate) AddMonthlySpendCents(i int64) *BillingAccountUpdate {
	bau.mutation.AddMonthlySpendCents(i)
	return bau
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (bau *BillingAccountUpdate) SetStripeCustomerID(s string) *BillingAccountUpdate {
	bau.mutation.SetStripeCustomerID(s)
	return bau
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableStripeCustomerID(s *string) *BillingAccountUpdate {
	if s != nil {
		bau.SetStripeCustomerID(*s)
	}
	return bau
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (bau *BillingAccountUpdate) ClearStripeCustomerID() *BillingAccountUpdate {
	bau.mutation.ClearStripeCustomerID()
	return bau
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (bau *BillingAccountUpdate) SetStripeSubscriptionItemID(s string) *BillingAccountUpdate {
	bau.mutation.SetStripeSubscriptionItemID(s)
	return bau
}

// SetNillableStripeSubscriptionItemID sets the "stripe_subscription_item_id" field if the given value is not nil.
func (bau *BillingAccountUpdate) SetNillableStripeSubscriptionItemID(s *string) *BillingAccountUpdate {
	if s != nil {
		bau.SetStripeSubscriptionItemID(*s)
	}
	return bau
}

// ClearStripeSubscriptionItemID clears the value of the "stripe_subscription_item_id" field.
func (bau *BillingAccountUpdate) ClearStripeSubscriptionItemID() *BillingAccountUpdate {
	bau.mutation.ClearStripeSubscriptionItemID()
	return bau
}

// SetUpdatedAt sets the "updated_at" field.
func (bau *BillingAccountUpdate) SetUpdatedAt(t time.Time) *BillingAccountUpdate {
	bau.mutation.SetUpdatedAt(t)
	return bau
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (bau *BillingAccountUpdate) SetTenant(t *Tenant) *BillingAccountUpdate {
	return bau.SetTenantID(t.ID)
}

// Mutation returns the BillingAccountMutation object of the builder.
func (bau *BillingAccountUpdate) Mutation() *BillingAccountMutation {
	return bau.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (bau *BillingAccountUpdate) ClearTenant() *BillingAccountUpdate {
	bau.mutation.ClearTenant()
	return bau
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bau *BillingAccountUpdate) Save(ctx context.Context) (int, error) {
	bau.defaults()
	return withHooks(ctx, bau.sqlSave, bau.mutation, bau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bau *BillingAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := bau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bau *BillingAccountUpdate) Exec(ctx context.Context) error {
	_, err := bau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bau *BillingAccountUpdate) ExecX(ctx context.Context) {
	if err := bau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bau *BillingAccountUpdate) defaults() {
	if _, ok := bau.mutation.UpdatedAt(); !ok {
		v := billingaccount.UpdateDefaultUpdatedAt()
		bau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bau *BillingAccountUpdate) check() error {
	if v, ok := bau.mutation.InboundRateCents(); ok {
		if err := billingaccount.InboundRateCentsValidator(v); err != nil {
			return &ValidationError{Name: "inbound_rate_cents", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.inbound_rate_cents": %w`, err)}
		}
	}
	if v, ok := bau.mutation.OutboundRateCents(); ok {
		if err := billingaccount.OutboundRateCentsValidator(v); err != nil {
			return &ValidationError{Name: "outbound_rate_cents", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.outbound_rate_cents": %w`, err)}
		}
	}
	if v, ok := bau.mutation.InboundPlan(); ok {
		if err := billingaccount.InboundPlanValidator(v); err != nil {
			return &ValidationError{Name: "inbound_plan", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.inbound_plan": %w`, err)}
		}
	}
	if v, ok := bau.mutation.StripeCustomerID(); ok {
		if err := billingaccount.StripeCustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.stripe_customer_id": %w`, err)}
		}
	}
	if v, ok := bau.mutation.StripeSubscriptionItemID(); ok {
		if err := billingaccount.StripeSubscriptionItemIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_subscription_item_id", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.stripe_subscription_item_id": %w`, err)}
		}
	}
	if bau.mutation.TenantCleared() && len(bau.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillingAccount.tenant"`)
	}
	return nil
}

func (bau *BillingAccountUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingaccount.Table, billingaccount.Columns, sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt))
	if ps := bau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bau.mutation.InboundRateCents(); ok {
		_spec.SetField(billingaccount.FieldInboundRateCents, field.TypeInt, value)
	}
	if value, ok := bau.mutation.AddedInboundRateCents(); ok {
		_spec.AddField(billingaccount.FieldInboundRateCents, field.TypeInt, value)
	}
	if value, ok := bau.mutation.OutboundRateCents(); ok {
		_spec.SetField(billingaccount.FieldOutboundRateCents, field.TypeInt, value)
	}
	if value, ok := bau.mutation.AddedOutboundRateCents(); ok {
		_spec.AddField(billingaccount.FieldOutboundRateCents, field.TypeInt, value)
	}
	if value, ok := bau.mutation.InboundPlan(); ok {
		_spec.SetField(billingaccount.FieldInboundPlan, field.TypeEnum, value)
	}
	if value, ok := bau.mutation.CallsResetAt(); ok {
		_spec.SetField(billingaccount.FieldCallsResetAt, field.TypeTime, value)
	}
	if bau.mutation.CallsResetAtCleared() {
		_spec.ClearField(billingaccount.FieldCallsResetAt, field.TypeTime)
	}
	if value, ok := bau.mutation.MonthlySpendCents(); ok {
		_spec.SetField(billingaccount.FieldMonthlySpendCents, field.TypeInt64, value)
	}
	if value, ok := bau.mutation.AddedMonthlySpendCents(); ok {
		_spec.AddField(billingaccount.FieldMonthlySpendCents, field.TypeInt64, value)
	}
	if value, ok := bau.mutation.StripeCustomerID(); ok {
		_spec.SetField(billingaccount.FieldStripeCustomerID, field.TypeString, value)
	}
	if bau.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(billingaccount.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := bau.mutation.StripeSubscriptionItemID(); ok {
		_spec.SetField(billingaccount.FieldStripeSubscriptionItemID, field.TypeString, value)
	}
	if bau.mutation.StripeSubscriptionItemIDCleared() {
		_spec.ClearField(billingaccount.FieldStripeSubscriptionItemID, field.TypeString)
	}
	if value, ok := bau.mutation.UpdatedAt(); ok {
		_spec.SetField(billingaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if bau.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bau.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bau.mutation.done = true
	return n, nil
}

// BillingAccountUpdateOne is the builder for updating a single BillingAccount entity.
type BillingAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingAccountMutation
}

// SetTenantID sets the "tenant_id" field.
func (bauo *BillingAccountUpdateOne) SetTenantID(i int) *BillingAccountUpdateOne {
	bauo.mutation.SetTenantID(i)
	return bauo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableTenantID(i *int) *BillingAccountUpdateOne {
	if i != nil {
		bauo.SetTenantID(*i)
	}
	return bauo
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (bauo *BillingAccountUpdateOne) SetInboundRateCents(i int) *BillingAccountUpdateOne {
	bauo.mutation.ResetInboundRateCents()
	bauo.mutation.SetInboundRateCents(i)
	return bauo
}

// SetNillableInboundRateCents sets the "inbound_rate_cents" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableInboundRateCents(i *int) *BillingAccountUpdateOne {
	if i != nil {
		bauo.SetInboundRateCents(*i)
	}
	return bauo
}

// AddInboundRateCents adds i to the "inbound_rate_cents" field.
func (bauo *BillingAccountUpdateOne) AddInboundRateCents(i int) *BillingAccountUpdateOne {
	bauo.mutation.AddInboundRateCents(i)
	return bauo
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (bauo *BillingAccountUpdateOne) SetOutboundRateCents(i int) *BillingAccountUpdateOne {
	bauo.mutation.ResetOutboundRateCents()
	bauo.mutation.SetOutboundRateCents(i)
	return bauo
}

// SetNillableOutboundRateCents sets the "outbound_rate_cents" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableOutboundRateCents(i *int) *BillingAccountUpdateOne {
	if i != nil {
		bauo.SetOutboundRateCents(*i)
	}
	return bauo
}

// AddOutboundRateCents adds i to the "outbound_rate_cents" field.
func (bauo *BillingAccountUpdateOne) AddOutboundRateCents(i int) *BillingAccountUpdateOne {
	bauo.mutation.AddOutboundRateCents(i)
	return bauo
}

// SetInboundPlan sets the "inbound_plan" field.
func (bauo *BillingAccountUpdateOne) SetInboundPlan(bp billingaccount.InboundPlan) *BillingAccountUpdateOne {
	bauo.mutation.SetInboundPlan(bp)
	return bauo
}

// SetNillableInboundPlan sets the "inbound_plan" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableInboundPlan(bp *billingaccount.InboundPlan) *BillingAccountUpdateOne {
	if bp != nil {
		bauo.SetInboundPlan(*bp)
	}
	return bauo
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (bauo *BillingAccountUpdateOne) SetCallsResetAt(t time.Time) *BillingAccountUpdateOne {
	bauo.mutation.SetCallsResetAt(t)
	return bauo
}

// SetNillableCallsResetAt sets the "calls_reset_at" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableCallsResetAt(t *time.Time) *BillingAccountUpdateOne {
	if t != nil {
		bauo.SetCallsResetAt(*t)
	}
	return bauo
}

// ClearCallsResetAt clears the value of the "calls_reset_at" field.
func (bauo *BillingAccountUpdateOne) ClearCallsResetAt() *BillingAccountUpdateOne {
	bauo.mutation.ClearCallsResetAt()
	return bauo
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (bauo *BillingAccountUpdateOne) SetMonthlySpendCents(i int64) *BillingAccountUpdateOne {
	bauo.mutation.ResetMonthlySpendCents()
	bauo.mutation.SetMonthlySpendCents(i)
	return bauo
}

// SetNillableMonthlySpendCents sets the "monthly_spend_cents" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableMonthlySpendCents(i *int64) *BillingAccountUpdateOne {
	if i != nil {
		bauo.SetMonthlySpendCents(*i)
	}
	return bauo
}

// AddMonthlySpendCents adds i to the "monthly_spend_cents" field.
func (bauo *BillingAccountUpdateOne) AddMonthlySpendCents(i int64) *BillingAccountUpdateOne {
	bauo.mutation.AddMonthlySpendCents(i)
	return bauo
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (bauo *BillingAccountUpdateOne) SetStripeCustomerID(s string) *BillingAccountUpdateOne {
	bauo.mutation.SetStripeCustomerID(s)
	return bauo
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableStripeCustomerID(s *string) *BillingAccountUpdateOne {
	if s != nil {
		bauo.SetStripeCustomerID(*s)
	}
	return bauo
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (bauo *BillingAccountUpdateOne) ClearStripeCustomerID() *BillingAccountUpdateOne {
	bauo.mutation.ClearStripeCustomerID()
	return bauo
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (bauo *BillingAccountUpdateOne) SetStripeSubscriptionItemID(s string) *BillingAccountUpdateOne {
	bauo.mutation.SetStripeSubscriptionItemID(s)
	return bauo
}

// SetNillableStripeSubscriptionItemID sets the "stripe_subscription_item_id" field if the given value is not nil.
func (bauo *BillingAccountUpdateOne) SetNillableStripeSubscriptionItemID(s *string) *BillingAccountUpdateOne {
	if s != nil {
		bauo.SetStripeSubscriptionItemID(*s)
	}
	return bauo
}

// ClearStripeSubscriptionItemID clears the value of the "stripe_subscription_item_id" field.
func (bauo *BillingAccountUpdateOne) ClearStripeSubscriptionItemID() *BillingAccountUpdateOne {
	bauo.mutation.ClearStripeSubscriptionItemID()
	return bauo
}

// SetUpdatedAt sets the "updated_at" field.
func (bauo *BillingAccountUpdateOne) SetUpdatedAt(t time.Time) *BillingAccountUpdateOne {
	bauo.mutation.SetUpdatedAt(t)
	return bauo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (bauo *BillingAccountUpdateOne) SetTenant(t *Tenant) *BillingAccountUpdateOne {
	return bauo.SetTenantID(t.ID)
}

// Mutation returns the BillingAccountMutation object of the builder.
func (bauo *BillingAccountUpdateOne) Mutation() *BillingAccountMutation {
	return bauo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (bauo *BillingAccountUpdateOne) ClearTenant() *BillingAccountUpdateOne {
	bauo.mutation.ClearTenant()
	return bauo
}

// Where appends a list predicates to the BillingAccountUpdate builder.
func (bauo *BillingAccountUpdateOne) Where(ps ...predicate.BillingAccount) *BillingAccountUpdateOne {
	bauo.mutation.Where(ps...)
	return bauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bauo *BillingAccountUpdateOne) Select(field string, fields ...string) *BillingAccountUpdateOne {
	bauo.fields = append([]string{field}, fields...)
	return bauo
}

// Save executes the query and returns the updated BillingAccount entity.
func (bauo *BillingAccountUpdateOne) Save(ctx context.Context) (*BillingAccount, error) {
	bauo.defaults()
	return withHooks(ctx, bauo.sqlSave, bauo.mutation, bauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bauo *BillingAccountUpdateOne) SaveX(ctx context.Context) *BillingAccount {
	node, err := bauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bauo *BillingAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := bauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bauo *BillingAccountUpdateOne) ExecX(ctx context.Context) {
	if err := bauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bauo *BillingAccountUpdateOne) defaults() {
	if _, ok := bauo.mutation.UpdatedAt(); !ok {
		v := billingaccount.UpdateDefaultUpdatedAt()
		bauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bauo *BillingAccountUpdateOne) check() error {
	if v, ok := bauo.mutation.InboundRateCents(); ok {
		if err := billingaccount.InboundRateCentsValidator(v); err != nil {
			return &ValidationError{Name: "inbound_rate_cents", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.inbound_rate_cents": %w`, err)}
		}
	}
	if v, ok := bauo.mutation.OutboundRateCents(); ok {
		if err := billingaccount.OutboundRateCentsValidator(v); err != nil {
			return &ValidationError{Name: "outbound_rate_cents", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.outbound_rate_cents": %w`, err)}
		}
	}
	if v, ok := bauo.mutation.InboundPlan(); ok {
		if err := billingaccount.InboundPlanValidator(v); err != nil {
			return &ValidationError{Name: "inbound_plan", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.inbound_plan": %w`, err)}
		}
	}
	if v, ok := bauo.mutation.StripeCustomerID(); ok {
		if err := billingaccount.StripeCustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.stripe_customer_id": %w`, err)}
		}
	}
	if v, ok := bauo.mutation.StripeSubscriptionItemID(); ok {
		if err := billingaccount.StripeSubscriptionItemIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_subscription_item_id", err: fmt.Errorf(`ent: validator failed for field "BillingAccount.stripe_subscription_item_id": %w`, err)}
		}
	}
	if bauo.mutation.TenantCleared() && len(bauo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillingAccount.tenant"`)
	}
	return nil
}

func (bauo *BillingAccountUpdateOne) sqlSave(ctx context.Context) (_node *BillingAccount, err error) {
	if err := bauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingaccount.Table, billingaccount.Columns, sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt))
	id, ok := bauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingaccount.FieldID)
		for _, f := range fields {
			if !billingaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bauo.mutation.InboundRateCents(); ok {
		_spec.SetField(billingaccount.FieldInboundRateCents, field.TypeInt, value)
	}
	if value, ok := bauo.mutation.AddedInboundRateCents(); ok {
		_spec.AddField(billingaccount.FieldInboundRateCents, field.TypeInt, value)
	}
	if value, ok := bauo.mutation.OutboundRateCents(); ok {
		_spec.SetField(billingaccount.FieldOutboundRateCents, field.TypeInt, value)
	}
	if value, ok := bauo.mutation.AddedOutboundRateCents(); ok {
		_spec.AddField(billingaccount.FieldOutboundRateCents, field.TypeInt, value)
	}
	if value, ok := bauo.mutation.InboundPlan(); ok {
		_spec.SetField(billingaccount.FieldInboundPlan, field.TypeEnum, value)
	}
	if value, ok := bauo.mutation.CallsResetAt(); ok {
		_spec.SetField(billingaccount.FieldCallsResetAt, field.TypeTime, value)
	}
	if bauo.mutation.CallsResetAtCleared() {
		_spec.ClearField(billingaccount.FieldCallsResetAt, field.TypeTime)
	}
	if value, ok := bauo.mutation.MonthlySpendCents(); ok {
		_spec.SetField(billingaccount.FieldMonthlySpendCents, field.TypeInt64, value)
	}
	if value, ok := bauo.mutation.AddedMonthlySpendCents(); ok {
		_spec.AddField(billingaccount.FieldMonthlySpendCents, field.TypeInt64, value)
	}
	if value, ok := bauo.mutation.StripeCustomerID(); ok {
		_spec.SetField(billingaccount.FieldStripeCustomerID, field.TypeString, value)
	}
	if bauo.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(billingaccount.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := bauo.mutation.StripeSubscriptionItemID(); ok {
		_spec.SetField(billingaccount.FieldStripeSubscriptionItemID, field.TypeString, value)
	}
	if bauo.mutation.StripeSubscriptionItemIDCleared() {
		_spec.ClearField(billingaccount.FieldStripeSubscriptionItemID, field.TypeString)
	}
	if value, ok := bauo.mutation.UpdatedAt(); ok {
		_spec.SetField(billingaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if bauo.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bauo.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BillingAccount{config: bauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bauo.mutation.done = true
	return _node, nil
}
