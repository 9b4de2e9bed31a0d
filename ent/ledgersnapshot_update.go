// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"vocadrill/ent/ledgersnapshot"
	"vocadrill/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LedgerSnapshotUpdate is the builder for updating LedgerSnapshot entities.
type LedgerSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerSnapshotMutation
}

// Where appends a list predicates to the LedgerSnapshotUpdate builder.
func (_u *LedgerSnapshotUpdate) Where(ps ...predicate.LedgerSnapshot) *LedgerSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *LedgerSnapshotUpdate) SetSequence(v int64) *LedgerSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *LedgerSnapshotUpdate) SetNillableSequence(v *int64) *LedgerSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *LedgerSnapshotUpdate) AddSequence(v int64) *LedgerSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *LedgerSnapshotUpdate) SetTimestamp(v time.Time) *LedgerSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *LedgerSnapshotUpdate) SetNillableTimestamp(v *time.Time) *LedgerSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LedgerSnapshotUpdate) SetData(v map[string]interface{}) *LedgerSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the LedgerSnapshotMutation object of the builder.
func (_u *LedgerSnapshotUpdate) Mutation() *LedgerSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LedgerSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LedgerSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LedgerSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ledgersnapshot.Table, ledgersnapshot.Columns, sqlgraph.NewFieldSpec(ledgersnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(ledgersnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(ledgersnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(ledgersnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(ledgersnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LedgerSnapshotUpdateOne is the builder for updating a single LedgerSnapshot entity.
type LedgerSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerSnapshotMutation
}

// SetSequence sets the "sequence" field.
func (_u *LedgerSnapshotUpdateOne) SetSequence(v int64) *LedgerSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *LedgerSnapshotUpdateOne) SetNillableSequence(v *int64) *LedgerSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *LedgerSnapshotUpdateOne) AddSequence(v int64) *LedgerSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *LedgerSnapshotUpdateOne) SetTimestamp(v time.Time) *LedgerSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *LedgerSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *LedgerSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LedgerSnapshotUpdateOne) SetData(v map[string]interface{}) *LedgerSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the LedgerSnapshotMutation object of the builder.
func (_u *LedgerSnapshotUpdateOne) Mutation() *LedgerSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the LedgerSnapshotUpdate builder.
func (_u *LedgerSnapshotUpdateOne) Where(ps ...predicate.LedgerSnapshot) *LedgerSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LedgerSnapshotUpdateOne) Select(field string, fields ...string) *LedgerSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LedgerSnapshot entity.
func (_u *LedgerSnapshotUpdateOne) Save(ctx context.Context) (*LedgerSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerSnapshotUpdateOne) SaveX(ctx context.Context) *LedgerSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LedgerSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LedgerSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *LedgerSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(ledgersnapshot.Table, ledgersnapshot.Columns, sqlgraph.NewFieldSpec(ledgersnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgersnapshot.FieldID)
		for _, f := range fields {
			if !ledgersnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgersnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(ledgersnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(ledgersnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(ledgersnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(ledgersnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &LedgerSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
