package agents

import (
	"github.com/pharmaxis/pharmintel/components"
)

type Option func(c *Config)

func WithEngine(engine components.Engine) Option {
	return func(c *Config) {
		c.engine = engine
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

func WithMaxIterations(n int) Option {
	return func(c *Config) {
		c.maxIterations = n
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(c *Config) {
		c.systemPrompt = prompt
	}
}

// WithLeadingQuery places the user query before the scratchpad instead of
// after it when building a reasoning pass.
func WithLeadingQuery() Option {
	return func(c *Config) {
		c.leadingQuery = true
	}
}

// WithAccumulatedRawData keeps every capability result in the raw data, keyed
// by capability name and call ID, instead of retaining only the most recent
// one.
func WithAccumulatedRawData() Option {
	return func(c *Config) {
		c.accumulateRawData = true
	}
}

// Config represents general agent configuration.
type Config struct {
	// engine is the reasoning engine the agent runs its passes against.
	engine components.Engine
	// model llm model
	model string
	// temperature Temperature for response generation, typically ranging from 0 to 1.
	temperature float32
	// maxTokens Maximum number of tokens allowed in the response
	maxTokens int
	// name is the agent name presentation, used in error analyses.
	name string
	// maxIterations bounds the reasoning loop.
	maxIterations int
	// systemPrompt is the agent role prompt.
	systemPrompt      string
	leadingQuery      bool
	accumulateRawData bool
}

// Name returns the agent presentation name.
func (c *Config) Name() string {
	return c.name
}
