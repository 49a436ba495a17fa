package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records one logical generation run and its outcome,
// regardless of how many provider attempts it took.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Comment("Matches the request_id of the run's LLMRequestEvents"),
		field.String("question_type").
			Comment("single-choice, multi-choice, fill-blank, open"),
		field.String("difficulty").
			Comment("easy, medium, hard"),
		field.Int("variation_count").
			Comment("Requested number of variants"),
		field.String("outcome").
			Comment("success, blocked, malformed, exhausted"),
		field.Int("item_count").
			Default(0).
			Comment("Variants actually returned on success"),
		field.Int("attempts").
			Default(0).
			Comment("Provider calls consumed by the run"),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("outcome"),
	}
}
