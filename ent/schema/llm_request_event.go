package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every provider attempt for cost tracking and
// debugging. A generation run with fallbacks produces one row per attempt,
// correlated by request_id.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Vendor family: gemini, openai, anthropic, openrouter"),
		field.String("model").
			Comment("Model ID this attempt targeted"),
		field.String("purpose").
			Comment("Consumer-provided label, e.g. variant-gen"),
		field.String("request_id").
			Default("").
			Comment("Correlates the attempts of one generation run"),
		field.Int("input_tokens").
			Default(0).
			Comment("Tokens in the request"),
		field.Int("output_tokens").
			Default(0).
			Comment("Tokens in the response"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the attempt"),
		field.Bool("success").
			Comment("Whether the attempt returned a response"),
		field.String("finish_reason").
			Default("").
			Comment("Normalized finish reason: STOP, SAFETY, EMPTY, OTHER"),
		field.String("error_message").
			Default("").
			Comment("Classified error if the attempt failed"),
		field.Text("request_body").
			Default("").
			Comment("Serialized prompt pair for debugging"),
		field.Text("response_body").
			Default("").
			Comment("Raw response text for debugging"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("request_id"),
		index.Fields("success"),
	}
}
