// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaisuddinahmed/mymath/ent/predicate"
	"github.com/kaisuddinahmed/mymath/ent/solverfaultevent"
)

// SolverFaultEventUpdate is the builder for updating SolverFaultEvent entities.
type SolverFaultEventUpdate struct {
	config
	hooks    []Hook
	mutation *SolverFaultEventMutation
}

// Where appends a list predicates to the SolverFaultEventUpdate builder.
func (_u *SolverFaultEventUpdate) Where(ps ...predicate.SolverFaultEvent) *SolverFaultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSolverName sets the "solver_name" field.
func (_u *SolverFaultEventUpdate) SetSolverName(v string) *SolverFaultEventUpdate {
	_u.mutation.SetSolverName(v)
	return _u
}

// SetNillableSolverName sets the "solver_name" field if the given value is not nil.
func (_u *SolverFaultEventUpdate) SetNillableSolverName(v *string) *SolverFaultEventUpdate {
	if v != nil {
		_u.SetSolverName(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *SolverFaultEventUpdate) SetQuestion(v string) *SolverFaultEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *SolverFaultEventUpdate) SetNillableQuestion(v *string) *SolverFaultEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetPanicText sets the "panic_text" field.
func (_u *SolverFaultEventUpdate) SetPanicText(v string) *SolverFaultEventUpdate {
	_u.mutation.SetPanicText(v)
	return _u
}

// SetNillablePanicText sets the "panic_text" field if the given value is not nil.
func (_u *SolverFaultEventUpdate) SetNillablePanicText(v *string) *SolverFaultEventUpdate {
	if v != nil {
		_u.SetPanicText(*v)
	}
	return _u
}

// Mutation returns the SolverFaultEventMutation object of the builder.
func (_u *SolverFaultEventUpdate) Mutation() *SolverFaultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolverFaultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolverFaultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolverFaultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolverFaultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolverFaultEventUpdate) check() error {
	if v, ok := _u.mutation.SolverName(); ok {
		if err := solverfaultevent.SolverNameValidator(v); err != nil {
			return &ValidationError{Name: "solver_name", err: fmt.Errorf(`ent: validator failed for field "SolverFaultEvent.solver_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := solverfaultevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "SolverFaultEvent.question": %w`, err)}
		}
	}
	return nil
}

func (_u *SolverFaultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solverfaultevent.Table, solverfaultevent.Columns, sqlgraph.NewFieldSpec(solverfaultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SolverName(); ok {
		_spec.SetField(solverfaultevent.FieldSolverName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(solverfaultevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PanicText(); ok {
		_spec.SetField(solverfaultevent.FieldPanicText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solverfaultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolverFaultEventUpdateOne is the builder for updating a single SolverFaultEvent entity.
type SolverFaultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolverFaultEventMutation
}

// SetSolverName sets the "solver_name" field.
func (_u *SolverFaultEventUpdateOne) SetSolverName(v string) *SolverFaultEventUpdateOne {
	_u.mutation.SetSolverName(v)
	return _u
}

// SetNillableSolverName sets the "solver_name" field if the given value is not nil.
func (_u *SolverFaultEventUpdateOne) SetNillableSolverName(v *string) *SolverFaultEventUpdateOne {
	if v != nil {
		_u.SetSolverName(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *SolverFaultEventUpdateOne) SetQuestion(v string) *SolverFaultEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *SolverFaultEventUpdateOne) SetNillableQuestion(v *string) *SolverFaultEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetPanicText sets the "panic_text" field.
func (_u *SolverFaultEventUpdateOne) SetPanicText(v string) *SolverFaultEventUpdateOne {
	_u.mutation.SetPanicText(v)
	return _u
}

// SetNillablePanicText sets the "panic_text" field if the given value is not nil.
func (_u *SolverFaultEventUpdateOne) SetNillablePanicText(v *string) *SolverFaultEventUpdateOne {
	if v != nil {
		_u.SetPanicText(*v)
	}
	return _u
}

// Mutation returns the SolverFaultEventMutation object of the builder.
func (_u *SolverFaultEventUpdateOne) Mutation() *SolverFaultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SolverFaultEventUpdate builder.
func (_u *SolverFaultEventUpdateOne) Where(ps ...predicate.SolverFaultEvent) *SolverFaultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolverFaultEventUpdateOne) Select(field string, fields ...string) *SolverFaultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolverFaultEvent entity.
func (_u *SolverFaultEventUpdateOne) Save(ctx context.Context) (*SolverFaultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolverFaultEventUpdateOne) SaveX(ctx context.Context) *SolverFaultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolverFaultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolverFaultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolverFaultEventUpdateOne) check() error {
	if v, ok := _u.mutation.SolverName(); ok {
		if err := solverfaultevent.SolverNameValidator(v); err != nil {
			return &ValidationError{Name: "solver_name", err: fmt.Errorf(`ent: validator failed for field "SolverFaultEvent.solver_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := solverfaultevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "SolverFaultEvent.question": %w`, err)}
		}
	}
	return nil
}

func (_u *SolverFaultEventUpdateOne) sqlSave(ctx context.Context) (_node *SolverFaultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solverfaultevent.Table, solverfaultevent.Columns, sqlgraph.NewFieldSpec(solverfaultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolverFaultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solverfaultevent.FieldID)
		for _, f := range fields {
			if !solverfaultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solverfaultevent.FieldID {
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
	if value, ok := _u.mutation.SolverName(); ok {
		_spec.SetField(solverfaultevent.FieldSolverName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(solverfaultevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PanicText(); ok {
		_spec.SetField(solverfaultevent.FieldPanicText, field.TypeString, value)
	}
	_node = &SolverFaultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solverfaultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
