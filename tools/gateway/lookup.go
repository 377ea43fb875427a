package gateway

import (
	"context"
	"strings"

	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/tools"
)

// MoleculeInput is the argument payload shared by the molecule-keyed lookups.
type MoleculeInput struct {
	MoleculeName string `json:"molecule_name" validate:"required"`
}

// TherapyAreaInput is the argument payload for the market data lookup.
type TherapyAreaInput struct {
	TherapyArea string `json:"therapy_area" validate:"required"`
}

// DocumentInput is the argument payload for the knowledge base lookup.
type DocumentInput struct {
	DocID string `json:"doc_id" validate:"required"`
}

type argumentKind int

const (
	byMolecule argumentKind = iota
	byTherapyArea
	byDocument
)

// lookup is one gateway-backed capability. All six only differ in ID, path,
// query parameter and description.
type lookup struct {
	id       tools.ID
	client   *Client
	path     string
	queryKey string
	kind     argumentKind
	def      components.ToolDefinition
}

func (l *lookup) ID() tools.ID { return l.id }

func (l *lookup) Definition() components.ToolDefinition { return l.def }

func (l *lookup) Call(ctx context.Context, arguments string) (string, error) {
	value, err := l.parse(arguments)
	if err != nil {
		return "", err
	}
	return l.client.Get(ctx, l.path, l.queryKey, value)
}

func (l *lookup) parse(arguments string) (string, error) {
	switch l.kind {
	case byTherapyArea:
		input, err := tools.ParseArguments[TherapyAreaInput](arguments)
		if err != nil {
			return "", err
		}
		return strings.ToLower(input.TherapyArea), nil
	case byDocument:
		input, err := tools.ParseArguments[DocumentInput](arguments)
		if err != nil {
			return "", err
		}
		return input.DocID, nil
	default:
		input, err := tools.ParseArguments[MoleculeInput](arguments)
		if err != nil {
			return "", err
		}
		return strings.ToLower(input.MoleculeName), nil
	}
}
