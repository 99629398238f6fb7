// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaisuddinahmed/mymath/ent/solveevent"
)

// SolveEventCreate is the builder for creating a SolveEvent entity.
type SolveEventCreate struct {
	config
	mutation *SolveEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SolveEventCreate) SetSequence(v int64) *SolveEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SolveEventCreate) SetTimestamp(v time.Time) *SolveEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillableTimestamp(v *time.Time) *SolveEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *SolveEventCreate) SetRequestID(v string) *SolveEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *SolveEventCreate) SetQuestion(v string) *SolveEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *SolveEventCreate) SetGrade(v int) *SolveEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SolveEventCreate) SetTopic(v string) *SolveEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *SolveEventCreate) SetAnswer(v string) *SolveEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetSolverUsed sets the "solver_used" field.
func (_c *SolveEventCreate) SetSolverUsed(v string) *SolveEventCreate {
	_c.mutation.SetSolverUsed(v)
	return _c
}

// SetIsAboveGrade sets the "is_above_grade" field.
func (_c *SolveEventCreate) SetIsAboveGrade(v bool) *SolveEventCreate {
	_c.mutation.SetIsAboveGrade(v)
	return _c
}

// SetNillableIsAboveGrade sets the "is_above_grade" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillableIsAboveGrade(v *bool) *SolveEventCreate {
	if v != nil {
		_c.SetIsAboveGrade(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SolveEventCreate) SetDurationMs(v int64) *SolveEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillableDurationMs(v *int64) *SolveEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the SolveEventMutation object of the builder.
func (_c *SolveEventCreate) Mutation() *SolveEventMutation {
	return _c.mutation
}

// Save creates the SolveEvent in the database.
func (_c *SolveEventCreate) Save(ctx context.Context) (*SolveEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolveEventCreate) SaveX(ctx context.Context) *SolveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolveEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolveEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolveEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := solveevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IsAboveGrade(); !ok {
		v := solveevent.DefaultIsAboveGrade
		_c.mutation.SetIsAboveGrade(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := solveevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolveEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SolveEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SolveEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "SolveEvent.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := solveevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "SolveEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := solveevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "SolveEvent.grade"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SolveEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := solveevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "SolveEvent.answer"`)}
	}
	if _, ok := _c.mutation.SolverUsed(); !ok {
		return &ValidationError{Name: "solver_used", err: errors.New(`ent: missing required field "SolveEvent.solver_used"`)}
	}
	if v, ok := _c.mutation.SolverUsed(); ok {
		if err := solveevent.SolverUsedValidator(v); err != nil {
			return &ValidationError{Name: "solver_used", err: fmt.Errorf(`ent: validator failed for field "SolveEvent.solver_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAboveGrade(); !ok {
		return &ValidationError{Name: "is_above_grade", err: errors.New(`ent: missing required field "SolveEvent.is_above_grade"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "SolveEvent.duration_ms"`)}
	}
	return nil
}

func (_c *SolveEventCreate) sqlSave(ctx context.Context) (*SolveEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SolveEventCreate) createSpec() (*SolveEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SolveEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solveevent.Table, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(solveevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(solveevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(solveevent.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(solveevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(solveevent.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(solveevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(solveevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.SolverUsed(); ok {
		_spec.SetField(solveevent.FieldSolverUsed, field.TypeString, value)
		_node.SolverUsed = value
	}
	if value, ok := _c.mutation.IsAboveGrade(); ok {
		_spec.SetField(solveevent.FieldIsAboveGrade, field.TypeBool, value)
		_node.IsAboveGrade = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(solveevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// SolveEventCreateBulk is the builder for creating many SolveEvent entities in bulk.
type SolveEventCreateBulk struct {
	config
	err      error
	builders []*SolveEventCreate
}

// Save creates the SolveEvent entities in the database.
func (_c *SolveEventCreateBulk) Save(ctx context.Context) ([]*SolveEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SolveEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolveEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SolveEventCreateBulk) SaveX(ctx context.Context) []*SolveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolveEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolveEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
