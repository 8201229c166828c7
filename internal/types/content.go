package types

import (
	"github.com/go-playground/validator/v10"
)

// Content planning defaults.
const (
	DefaultTargetWords = 2000
	DefaultDensity     = 1.5
	TitleCount         = 5
	HeadingCount       = 8
)

// Tone enumerates the supported writing tones for prompt assembly.
type Tone string

const (
	ToneExpertAccessible Tone = "expert-accessible"
	ToneCasual           Tone = "casual"
	ToneFormal           Tone = "formal"
	ToneConversational   Tone = "conversational"
	ToneTechnical        Tone = "technical"
)

// ContentStructure is the derived outline for a planned piece of content.
// It is created once per seed phrase from the pool and scores, and is
// immutable for the lifetime of that run.
type ContentStructure struct {
	Titles          []string `json:"titles"`
	Headings        []string `json:"headings"`
	MetaDescription string   `json:"meta_description"`
	TargetLength    int      `json:"target_length"`
	KeywordDensity  float64  `json:"keyword_density"`
}

// TargetMentions returns how many times the primary keyword should appear
// in a piece of the structure's target length and density.
func (s *ContentStructure) TargetMentions() int {
	return int(float64(s.TargetLength)*s.KeywordDensity/100 + 0.5)
}

// PlanConfig carries caller overrides for content planning. Zero values
// fall back to the documented defaults.
type PlanConfig struct {
	TargetWords int     `json:"target_words,omitempty" validate:"omitempty,min=100,max=20000"`
	Density     float64 `json:"density,omitempty" validate:"omitempty,gt=0,lte=10"`
}

// PromptOptions carries caller overrides for the AI writing prompt.
type PromptOptions struct {
	TargetWords     int    `json:"target_words,omitempty" validate:"omitempty,min=100,max=20000"`
	Tone            Tone   `json:"tone,omitempty" validate:"omitempty,oneof=expert-accessible casual formal conversational technical"`
	Audience        string `json:"audience,omitempty" validate:"omitempty,max=200"`
	IncludeFAQ      bool   `json:"include_faq,omitempty"`
	IncludeExamples bool   `json:"include_examples,omitempty"`
}

// Validate validates the PromptOptions using the validator.
func (o *PromptOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Validate validates the PlanConfig using the validator.
func (c *PlanConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
