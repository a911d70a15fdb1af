package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
)

// CategoriesCommand returns the categories command.
func CategoriesCommand() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"category"},
		Usage:   "Manage transaction categories",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all categories",
				Action: categoryListFunc(func(ctx context.Context, env *Env) ([]domain.Category, error) {
					return env.Services.Categories.List(ctx)
				}),
			},
			{
				Name:  "income",
				Usage: "List income categories",
				Action: categoryListFunc(func(ctx context.Context, env *Env) ([]domain.Category, error) {
					return env.Services.Categories.Income(ctx)
				}),
			},
			{
				Name:  "expense",
				Usage: "List expense categories",
				Action: categoryListFunc(func(ctx context.Context, env *Env) ([]domain.Category, error) {
					return env.Services.Categories.Expense(ctx)
				}),
			},
			{
				Name:  "system",
				Usage: "List built-in categories",
				Action: categoryListFunc(func(ctx context.Context, env *Env) ([]domain.Category, error) {
					return env.Services.Categories.System(ctx)
				}),
			},
			{
				Name:      "get",
				Usage:     "Show one category",
				ArgsUsage: "<category-id>",
				Action:    categoryGet,
			},
			{
				Name:  "create",
				Usage: "Create a category",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Category name", Required: true},
					&cli.StringFlag{Name: "type", Usage: "INCOME or EXPENSE", Required: true},
					&cli.StringFlag{Name: "icon", Usage: "Icon name"},
					&cli.StringFlag{Name: "color", Usage: "Color"},
				},
				Action: categoryCreate,
			},
			{
				Name:      "update",
				Usage:     "Update category fields",
				ArgsUsage: "<category-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Category name"},
					&cli.StringFlag{Name: "type", Usage: "INCOME or EXPENSE"},
					&cli.StringFlag{Name: "icon", Usage: "Icon name"},
					&cli.StringFlag{Name: "color", Usage: "Color"},
				},
				Action: categoryUpdate,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a category",
				ArgsUsage: "<category-id>",
				Action:    categoryDelete,
			},
		},
	}
}

func categoryListFunc(list func(context.Context, *Env) ([]domain.Category, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := envFrom(c)
		if err != nil {
			return err
		}
		categories, err := list(c.Context, env)
		if err != nil {
			return err
		}
		return render(c, categories)
	}
}

func categoryGet(c *cli.Context) error {
	id, err := requireArg(c, "category ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	category, err := env.Services.Categories.Get(c.Context, id)
	if err != nil {
		return err
	}
	return render(c, category)
}

func categoryCreate(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.CreateCategoryRequest{
		Name:  c.String("name"),
		Type:  domain.CategoryType(c.String("type")),
		Icon:  c.String("icon"),
		Color: c.String("color"),
	}
	category, err := env.Services.Categories.Create(c.Context, req)
	if err != nil {
		return err
	}
	return render(c, category)
}

func categoryUpdate(c *cli.Context) error {
	id, err := requireArg(c, "category ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.UpdateCategoryRequest{
		Name:  optString(c, "name"),
		Type:  optEnum[domain.CategoryType](c, "type"),
		Icon:  optString(c, "icon"),
		Color: optString(c, "color"),
	}
	category, err := env.Services.Categories.Update(c.Context, id, req)
	if err != nil {
		return err
	}
	return render(c, category)
}

func categoryDelete(c *cli.Context) error {
	id, err := requireArg(c, "category ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	if err := env.Services.Categories.Delete(c.Context, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	notice(c, "Category %s deleted", id)
	return nil
}
