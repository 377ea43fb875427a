package agents

import (
	"context"
	"fmt"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/schema"
	"github.com/pharmaxis/pharmintel/tools"
)

// queryInput is the argument payload of every agent invocation capability.
type queryInput struct {
	Query string `json:"query" validate:"required"`
}

// agentCapability exposes a specialist's full reasoning loop as a single
// capability, so the master dispatcher can plan over agents the same way
// specialists plan over lookups.
type agentCapability struct {
	id    tools.ID
	def   components.ToolDefinition
	agent *Specialist
}

// AsCapability wraps a specialist as an invocable capability. The returned
// text payload is always the JSON-encoded result envelope; agent failures are
// folded into it rather than raised, so one broken specialist degrades a
// single scratchpad turn instead of the whole dispatch.
func AsCapability(id tools.ID, description string, agent *Specialist) tools.Capability {
	return &agentCapability{
		id:    id,
		agent: agent,
		def: components.ToolDefinition{
			Name:                 id.String(),
			Description:          description,
			Parameter:            "query",
			ParameterDescription: "A natural language query for the agent.",
		},
	}
}

func (c *agentCapability) ID() tools.ID { return c.id }

func (c *agentCapability) Definition() components.ToolDefinition { return c.def }

func (c *agentCapability) Call(ctx context.Context, arguments string) (string, error) {
	input, err := tools.ParseArguments[queryInput](arguments)
	if err != nil {
		return "", err
	}
	result, err := c.agent.Invoke(ctx, input.Query)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		result = schema.ErrorResult(
			fmt.Sprintf("Error during %s invocation: %v", c.agent.Name(), err),
			err.Error(),
		)
	}
	return result.String(), nil
}
