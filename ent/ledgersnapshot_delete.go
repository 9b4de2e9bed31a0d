// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"vocadrill/ent/ledgersnapshot"
	"vocadrill/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LedgerSnapshotDelete is the builder for deleting a LedgerSnapshot entity.
type LedgerSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *LedgerSnapshotMutation
}

// Where appends a list predicates to the LedgerSnapshotDelete builder.
func (_d *LedgerSnapshotDelete) Where(ps ...predicate.LedgerSnapshot) *LedgerSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LedgerSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LedgerSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LedgerSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ledgersnapshot.Table, sqlgraph.NewFieldSpec(ledgersnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LedgerSnapshotDeleteOne is the builder for deleting a single LedgerSnapshot entity.
type LedgerSnapshotDeleteOne struct {
	_d *LedgerSnapshotDelete
}

// Where appends a list predicates to the LedgerSnapshotDelete builder.
func (_d *LedgerSnapshotDeleteOne) Where(ps ...predicate.LedgerSnapshot) *LedgerSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LedgerSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ledgersnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LedgerSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
