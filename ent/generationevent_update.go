// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ianleeapple/Online-Math-Dictionary/ent/generationevent"
	"github.com/ianleeapple/Online-Math-Dictionary/ent/predicate"
)

// GenerationEventUpdate is the builder for updating GenerationEvent entities.
type GenerationEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationEventMutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdate) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *GenerationEventUpdate) SetRequestID(v string) *GenerationEventUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableRequestID(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *GenerationEventUpdate) SetQuestionType(v string) *GenerationEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableQuestionType(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GenerationEventUpdate) SetDifficulty(v string) *GenerationEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableDifficulty(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetVariationCount sets the "variation_count" field.
func (_u *GenerationEventUpdate) SetVariationCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetVariationCount()
	_u.mutation.SetVariationCount(v)
	return _u
}

// SetNillableVariationCount sets the "variation_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableVariationCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetVariationCount(*v)
	}
	return _u
}

// AddVariationCount adds value to the "variation_count" field.
func (_u *GenerationEventUpdate) AddVariationCount(v int) *GenerationEventUpdate {
	_u.mutation.AddVariationCount(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GenerationEventUpdate) SetOutcome(v string) *GenerationEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableOutcome(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *GenerationEventUpdate) SetItemCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableItemCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *GenerationEventUpdate) AddItemCount(v int) *GenerationEventUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *GenerationEventUpdate) SetAttempts(v int) *GenerationEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableAttempts(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *GenerationEventUpdate) AddAttempts(v int) *GenerationEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdate) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(generationevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(generationevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generationevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariationCount(); ok {
		_spec.SetField(generationevent.FieldVariationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVariationCount(); ok {
		_spec.AddField(generationevent.FieldVariationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(generationevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(generationevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(generationevent.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationEventUpdateOne is the builder for updating a single GenerationEvent entity.
type GenerationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *GenerationEventUpdateOne) SetRequestID(v string) *GenerationEventUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableRequestID(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *GenerationEventUpdateOne) SetQuestionType(v string) *GenerationEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableQuestionType(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GenerationEventUpdateOne) SetDifficulty(v string) *GenerationEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableDifficulty(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetVariationCount sets the "variation_count" field.
func (_u *GenerationEventUpdateOne) SetVariationCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetVariationCount()
	_u.mutation.SetVariationCount(v)
	return _u
}

// SetNillableVariationCount sets the "variation_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableVariationCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetVariationCount(*v)
	}
	return _u
}

// AddVariationCount adds value to the "variation_count" field.
func (_u *GenerationEventUpdateOne) AddVariationCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddVariationCount(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GenerationEventUpdateOne) SetOutcome(v string) *GenerationEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableOutcome(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *GenerationEventUpdateOne) SetItemCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableItemCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *GenerationEventUpdateOne) AddItemCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *GenerationEventUpdateOne) SetAttempts(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableAttempts(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *GenerationEventUpdateOne) AddAttempts(v int) *GenerationEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdateOne) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdateOne) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationEventUpdateOne) Select(field string, fields ...string) *GenerationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationEvent entity.
func (_u *GenerationEventUpdateOne) Save(ctx context.Context) (*GenerationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) SaveX(ctx context.Context) *GenerationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationEventUpdateOne) sqlSave(ctx context.Context) (_node *GenerationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationevent.FieldID)
		for _, f := range fields {
			if !generationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationevent.FieldID {
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
		_spec.SetField(generationevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(generationevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generationevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariationCount(); ok {
		_spec.SetField(generationevent.FieldVariationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVariationCount(); ok {
		_spec.AddField(generationevent.FieldVariationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(generationevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(generationevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(generationevent.FieldAttempts, field.TypeInt, value)
	}
	_node = &GenerationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
