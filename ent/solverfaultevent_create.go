// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaisuddinahmed/mymath/ent/solverfaultevent"
)

// SolverFaultEventCreate is the builder for creating a SolverFaultEvent entity.
type SolverFaultEventCreate struct {
	config
	mutation *SolverFaultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SolverFaultEventCreate) SetSequence(v int64) *SolverFaultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SolverFaultEventCreate) SetTimestamp(v time.Time) *SolverFaultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SolverFaultEventCreate) SetNillableTimestamp(v *time.Time) *SolverFaultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSolverName sets the "solver_name" field.
func (_c *SolverFaultEventCreate) SetSolverName(v string) *SolverFaultEventCreate {
	_c.mutation.SetSolverName(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *SolverFaultEventCreate) SetQuestion(v string) *SolverFaultEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetPanicText sets the "panic_text" field.
func (_c *SolverFaultEventCreate) SetPanicText(v string) *SolverFaultEventCreate {
	_c.mutation.SetPanicText(v)
	return _c
}

// SetNillablePanicText sets the "panic_text" field if the given value is not nil.
func (_c *SolverFaultEventCreate) SetNillablePanicText(v *string) *SolverFaultEventCreate {
	if v != nil {
		_c.SetPanicText(*v)
	}
	return _c
}

// Mutation returns the SolverFaultEventMutation object of the builder.
func (_c *SolverFaultEventCreate) Mutation() *SolverFaultEventMutation {
	return _c.mutation
}

// Save creates the SolverFaultEvent in the database.
func (_c *SolverFaultEventCreate) Save(ctx context.Context) (*SolverFaultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolverFaultEventCreate) SaveX(ctx context.Context) *SolverFaultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolverFaultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolverFaultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolverFaultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := solverfaultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PanicText(); !ok {
		v := solverfaultevent.DefaultPanicText
		_c.mutation.SetPanicText(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolverFaultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SolverFaultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SolverFaultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SolverName(); !ok {
		return &ValidationError{Name: "solver_name", err: errors.New(`ent: missing required field "SolverFaultEvent.solver_name"`)}
	}
	if v, ok := _c.mutation.SolverName(); ok {
		if err := solverfaultevent.SolverNameValidator(v); err != nil {
			return &ValidationError{Name: "solver_name", err: fmt.Errorf(`ent: validator failed for field "SolverFaultEvent.solver_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "SolverFaultEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := solverfaultevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "SolverFaultEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PanicText(); !ok {
		return &ValidationError{Name: "panic_text", err: errors.New(`ent: missing required field "SolverFaultEvent.panic_text"`)}
	}
	return nil
}

func (_c *SolverFaultEventCreate) sqlSave(ctx context.Context) (*SolverFaultEvent, error) {
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

func (_c *SolverFaultEventCreate) createSpec() (*SolverFaultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SolverFaultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solverfaultevent.Table, sqlgraph.NewFieldSpec(solverfaultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(solverfaultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(solverfaultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SolverName(); ok {
		_spec.SetField(solverfaultevent.FieldSolverName, field.TypeString, value)
		_node.SolverName = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(solverfaultevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.PanicText(); ok {
		_spec.SetField(solverfaultevent.FieldPanicText, field.TypeString, value)
		_node.PanicText = value
	}
	return _node, _spec
}

// SolverFaultEventCreateBulk is the builder for creating many SolverFaultEvent entities in bulk.
type SolverFaultEventCreateBulk struct {
	config
	err      error
	builders []*SolverFaultEventCreate
}

// Save creates the SolverFaultEvent entities in the database.
func (_c *SolverFaultEventCreateBulk) Save(ctx context.Context) ([]*SolverFaultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SolverFaultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolverFaultEventMutation)
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
func (_c *SolverFaultEventCreateBulk) SaveX(ctx context.Context) []*SolverFaultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolverFaultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolverFaultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
