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
	"github.com/kaisuddinahmed/mymath/ent/solveevent"
)

// SolveEventUpdate is the builder for updating SolveEvent entities.
type SolveEventUpdate struct {
	config
	hooks    []Hook
	mutation *SolveEventMutation
}

// Where appends a list predicates to the SolveEventUpdate builder.
func (_u *SolveEventUpdate) Where(ps ...predicate.SolveEvent) *SolveEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *SolveEventUpdate) SetRequestID(v string) *SolveEventUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableRequestID(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *SolveEventUpdate) SetQuestion(v string) *SolveEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableQuestion(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SolveEventUpdate) SetGrade(v int) *SolveEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableGrade(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SolveEventUpdate) AddGrade(v int) *SolveEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SolveEventUpdate) SetTopic(v string) *SolveEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableTopic(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SolveEventUpdate) SetAnswer(v string) *SolveEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableAnswer(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetSolverUsed sets the "solver_used" field.
func (_u *SolveEventUpdate) SetSolverUsed(v string) *SolveEventUpdate {
	_u.mutation.SetSolverUsed(v)
	return _u
}

// SetNillableSolverUsed sets the "solver_used" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableSolverUsed(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetSolverUsed(*v)
	}
	return _u
}

// SetIsAboveGrade sets the "is_above_grade" field.
func (_u *SolveEventUpdate) SetIsAboveGrade(v bool) *SolveEventUpdate {
	_u.mutation.SetIsAboveGrade(v)
	return _u
}

// SetNillableIsAboveGrade sets the "is_above_grade" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableIsAboveGrade(v *bool) *SolveEventUpdate {
	if v != nil {
		_u.SetIsAboveGrade(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SolveEventUpdate) SetDurationMs(v int64) *SolveEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableDurationMs(v *int64) *SolveEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SolveEventUpdate) AddDurationMs(v int64) *SolveEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the SolveEventMutation object of the builder.
func (_u *SolveEventUpdate) Mutation() *SolveEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolveEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolveEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolveEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolveEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolveEventUpdate) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := solveevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := solveevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := solveevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SolverUsed(); ok {
		if err := solveevent.SolverUsedValidator(v); err != nil {
			return &ValidationError{Name: "solver_used", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.solver_used": %w`, err)}
		}
	}
	return nil
}

func (_u *SolveEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solveevent.Table, solveevent.Columns, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(solveevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(solveevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(solveevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(solveevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(solveevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(solveevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolverUsed(); ok {
		_spec.SetField(solveevent.FieldSolverUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAboveGrade(); ok {
		_spec.SetField(solveevent.FieldIsAboveGrade, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(solveevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(solveevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolveEventUpdateOne is the builder for updating a single SolveEvent entity.
type SolveEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolveEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *SolveEventUpdateOne) SetRequestID(v string) *SolveEventUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableRequestID(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *SolveEventUpdateOne) SetQuestion(v string) *SolveEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableQuestion(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SolveEventUpdateOne) SetGrade(v int) *SolveEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableGrade(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SolveEventUpdateOne) AddGrade(v int) *SolveEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SolveEventUpdateOne) SetTopic(v string) *SolveEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableTopic(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SolveEventUpdateOne) SetAnswer(v string) *SolveEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableAnswer(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetSolverUsed sets the "solver_used" field.
func (_u *SolveEventUpdateOne) SetSolverUsed(v string) *SolveEventUpdateOne {
	_u.mutation.SetSolverUsed(v)
	return _u
}

// SetNillableSolverUsed sets the "solver_used" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableSolverUsed(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetSolverUsed(*v)
	}
	return _u
}

// SetIsAboveGrade sets the "is_above_grade" field.
func (_u *SolveEventUpdateOne) SetIsAboveGrade(v bool) *SolveEventUpdateOne {
	_u.mutation.SetIsAboveGrade(v)
	return _u
}

// SetNillableIsAboveGrade sets the "is_above_grade" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableIsAboveGrade(v *bool) *SolveEventUpdateOne {
	if v != nil {
		_u.SetIsAboveGrade(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SolveEventUpdateOne) SetDurationMs(v int64) *SolveEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableDurationMs(v *int64) *SolveEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SolveEventUpdateOne) AddDurationMs(v int64) *SolveEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the SolveEventMutation object of the builder.
func (_u *SolveEventUpdateOne) Mutation() *SolveEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SolveEventUpdate builder.
func (_u *SolveEventUpdateOne) Where(ps ...predicate.SolveEvent) *SolveEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolveEventUpdateOne) Select(field string, fields ...string) *SolveEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolveEvent entity.
func (_u *SolveEventUpdateOne) Save(ctx context.Context) (*SolveEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolveEventUpdateOne) SaveX(ctx context.Context) *SolveEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolveEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolveEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolveEventUpdateOne) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := solveevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := solveevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := solveevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SolverUsed(); ok {
		if err := solveevent.SolverUsedValidator(v); err != nil {
			return &ValidationError{Name: "solver_used", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.solver_used": %w`, err)}
		}
	}
	return nil
}

func (_u *SolveEventUpdateOne) sqlSave(ctx context.Context) (_node *SolveEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solveevent.Table, solveevent.Columns, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolveEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solveevent.FieldID)
		for _, f := range fields {
			if !solveevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solveevent.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(solveevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(solveevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(solveevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(solveevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(solveevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(solveevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolverUsed(); ok {
		_spec.SetField(solveevent.FieldSolverUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAboveGrade(); ok {
		_spec.SetField(solveevent.FieldIsAboveGrade, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(solveevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(solveevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &SolveEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
