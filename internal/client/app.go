package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type command struct {
	usage string
	args  int
	run   func(ctx context.Context, args []string) (any, error)
}

// App dispatches CLI commands to a [adapter.ShopClient].
type App struct {
	shop     adapter.ShopClient
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

// NewApp builds an App printing results to out. A non-empty token is set on
// shop before any command runs.
func NewApp(shop adapter.ShopClient, token string, out io.Writer, logger *logger.Logger) (*App, error) {
	if shop == nil {
		return nil, ErrNilShopClient
	}
	if token != "" {
		shop.SetToken(token)
	}

	a := &App{shop: shop, out: out, logger: logger}
	a.commands = map[string]command{
		"health":       {usage: "health", run: a.health},
		"sign-up":      {usage: "sign-up <email> <name> <password>", args: 3, run: a.signUp},
		"sign-in":      {usage: "sign-in <email> <password>", args: 2, run: a.signIn},
		"validate":     {usage: "validate", run: a.validate},
		"users":        {usage: "users", run: a.listUsers},
		"user":         {usage: "user <id>", args: 1, run: a.getUser},
		"update-user":  {usage: "update-user <id> <email|-> <name|->", args: 3, run: a.updateUser},
		"items":        {usage: "items", run: a.listItems},
		"item":         {usage: "item <id>", args: 1, run: a.getItem},
		"create-item":  {usage: "create-item <title> <image> <price>", args: 3, run: a.createItem},
		"orders":       {usage: "orders", run: a.listOrders},
		"order":        {usage: "order <id>", args: 1, run: a.getOrder},
		"create-order": {usage: "create-order <userId> <itemId> <quantity>", args: 3, run: a.createOrder},
		"delete-order": {usage: "delete-order <id>", args: 1, run: a.deleteOrder},
	}

	return a, nil
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) != cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrWrongArguments, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	result, err := cmd.run(ctx, rest)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

// Usage lists the supported commands, sorted.
func (a *App) Usage() []string {
	usages := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		usages = append(usages, cmd.usage)
	}
	slices.Sort(usages)

	return usages
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (a *App) health(ctx context.Context, _ []string) (any, error) {
	return a.shop.Health(ctx)
}

func (a *App) signUp(ctx context.Context, args []string) (any, error) {
	return a.shop.SignUp(ctx, models.SignUpRequest{Email: args[0], Name: args[1], Password: args[2]})
}

func (a *App) signIn(ctx context.Context, args []string) (any, error) {
	return a.shop.SignIn(ctx, models.SignInRequest{Email: args[0], Password: args[1]})
}

func (a *App) validate(ctx context.Context, _ []string) (any, error) {
	return a.shop.Validate(ctx)
}

func (a *App) listUsers(ctx context.Context, _ []string) (any, error) {
	return a.shop.ListUsers(ctx)
}

func (a *App) getUser(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	return a.shop.GetUser(ctx, id)
}

func (a *App) updateUser(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	return a.shop.UpdateUser(ctx, id, models.UpdateUserRequest{
		Email: optional(args[1]),
		Name:  optional(args[2]),
	})
}

func (a *App) listItems(ctx context.Context, _ []string) (any, error) {
	return a.shop.ListItems(ctx)
}

func (a *App) getItem(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	return a.shop.GetItem(ctx, id)
}

func (a *App) createItem(ctx context.Context, args []string) (any, error) {
	price, err := decimal.NewFromString(args[2])
	if err != nil {
		return nil, fmt.Errorf("%w: price %q: %w", ErrWrongArguments, args[2], err)
	}

	return a.shop.CreateItem(ctx, models.CreateItemRequest{Title: args[0], Image: args[1], Price: price})
}

func (a *App) listOrders(ctx context.Context, _ []string) (any, error) {
	return a.shop.ListOrders(ctx)
}

func (a *App) getOrder(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	return a.shop.GetOrder(ctx, id)
}

func (a *App) createOrder(ctx context.Context, args []string) (any, error) {
	userID, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(args[1])
	if err != nil {
		return nil, err
	}
	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("%w: quantity %q", ErrWrongArguments, args[2])
	}

	return a.shop.CreateOrder(ctx, models.CreateOrderRequest{Quantity: quantity, UserID: userID, ItemID: itemID})
}

func (a *App) deleteOrder(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	return a.shop.DeleteOrder(ctx, id)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", ErrWrongArguments, s)
	}

	return id, nil
}

// optional treats "-" as an absent value.
func optional(s string) *string {
	if s == "-" || strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
