package commands

import (
	"context"
	"fmt"
	"strings"

	"gocery/internal/domain/cart"
	"gocery/internal/infra/clientstate"
	"gocery/internal/pkg/errs"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAssistantUnavailable = errs.New("assistant is unavailable")

// AssistantGateway abstracts the hosted text-generation endpoint. One
// request in, one completion out; failures surface to the caller.
type AssistantGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type AssistantCommands interface {
	// SuggestRecipe asks for a recipe using the cart contents as the
	// ingredient list.
	SuggestRecipe(ctx context.Context, ownerID string) (string, error)
	// DescribeProduct asks for a short marketing description of a product.
	DescribeProduct(ctx context.Context, productID uuid.UUID) (string, error)
}

type assistantCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway AssistantGateway
}

func NewAssistantCommands(uow shared.UnitOfWork, gateway AssistantGateway) AssistantCommands {
	return &assistantCommandsImpl{uow: uow, gateway: gateway}
}

func (c *assistantCommandsImpl) SuggestRecipe(ctx context.Context, ownerID string) (string, error) {
	raw, err := c.uow.CommandReads().ClientState(ctx, ownerID, clientstate.ScopeCart)
	if err != nil {
		return "", err
	}

	ct := cart.NewCart()
	clientstate.Decode(raw, ct)

	names := make([]string, 0, len(ct.Items))
	for _, l := range ct.Items {
		names = append(names, l.Name)
	}

	prompt := "Suggest a simple recipe using some of these grocery items: " + strings.Join(names, ", ") + "."
	if len(names) == 0 {
		prompt = "Suggest a simple weeknight dinner recipe using common grocery items."
	}

	text, err := c.gateway.Complete(ctx, prompt)
	if err != nil {
		return "", errs.Mark(err, ErrAssistantUnavailable)
	}
	return text, nil
}

func (c *assistantCommandsImpl) DescribeProduct(ctx context.Context, productID uuid.UUID) (string, error) {
	snap, err := c.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Write a two sentence product description for the grocery item %q.", snap.Name)
	text, err := c.gateway.Complete(ctx, prompt)
	if err != nil {
		return "", errs.Mark(err, ErrAssistantUnavailable)
	}
	return text, nil
}
