package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
)

// TransactionsCommand returns the transactions command.
func TransactionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "transactions",
		Aliases: []string{"tx"},
		Usage:   "Manage transactions",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List transactions",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wallet", Usage: "Only transactions of this wallet"},
				},
				Action: transactionList,
			},
			{
				Name:      "get",
				Usage:     "Show one transaction",
				ArgsUsage: "<transaction-id>",
				Action:    transactionGet,
			},
			{
				Name:  "range",
				Usage: "List a wallet's transactions dated within [from, to]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wallet", Usage: "Wallet ID", Required: true},
					&cli.StringFlag{Name: "from", Usage: "Start date (YYYY-MM-DD)", Required: true},
					&cli.StringFlag{Name: "to", Usage: "End date (YYYY-MM-DD)", Required: true},
				},
				Action: transactionRange,
			},
			{
				Name:  "balance",
				Usage: "Show a wallet's balance (income minus expenses)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wallet", Usage: "Wallet ID", Required: true},
				},
				Action: transactionBalance,
			},
			{
				Name:  "create",
				Usage: "Record a transaction",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wallet", Usage: "Wallet ID", Required: true},
					&cli.StringFlag{Name: "type", Usage: "INCOME, EXPENSE or TRANSFER", Value: string(domain.TransactionExpense)},
					&cli.Float64Flag{Name: "amount", Usage: "Amount (positive)", Required: true},
					&cli.StringFlag{Name: "category", Usage: "Category ID"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "target-wallet", Usage: "Target wallet ID (TRANSFER only)"},
					&cli.StringFlag{Name: "date", Usage: "Transaction date (YYYY-MM-DD), default today"},
				},
				Action: transactionCreate,
			},
			{
				Name:      "update",
				Usage:     "Update transaction fields",
				ArgsUsage: "<transaction-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "INCOME, EXPENSE or TRANSFER"},
					&cli.Float64Flag{Name: "amount", Usage: "Amount"},
					&cli.StringFlag{Name: "category", Usage: "Category ID"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "date", Usage: "Transaction date (YYYY-MM-DD)"},
				},
				Action: transactionUpdate,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a transaction",
				ArgsUsage: "<transaction-id>",
				Action:    transactionDelete,
			},
		},
	}
}

func transactionList(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	txs, err := env.Services.Transactions.List(c.Context, c.String("wallet"))
	if err != nil {
		return err
	}
	return render(c, txs)
}

func transactionGet(c *cli.Context) error {
	id, err := requireArg(c, "transaction ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	tx, err := env.Services.Transactions.Get(c.Context, id)
	if err != nil {
		return err
	}
	return render(c, tx)
}

func transactionRange(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	txs, err := env.Services.Transactions.Range(c.Context, c.String("wallet"), c.String("from"), c.String("to"))
	if err != nil {
		return err
	}
	return render(c, txs)
}

// balanceResult is the printed form of a wallet balance.
type balanceResult struct {
	WalletID string  `json:"walletId"`
	Balance  float64 `json:"balance"`
}

func transactionBalance(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	walletID := c.String("wallet")
	balance, err := env.Services.Transactions.Balance(c.Context, walletID)
	if err != nil {
		return err
	}
	return render(c, balanceResult{WalletID: walletID, Balance: balance})
}

func transactionCreate(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.CreateTransactionRequest{
		WalletID:        c.String("wallet"),
		Type:            domain.TransactionType(c.String("type")),
		Amount:          c.Float64("amount"),
		CategoryID:      c.String("category"),
		Description:     c.String("description"),
		TargetWalletID:  c.String("target-wallet"),
		TransactionDate: c.String("date"),
	}
	tx, err := env.Services.Transactions.Create(c.Context, req)
	if err != nil {
		return err
	}
	return render(c, tx)
}

func transactionUpdate(c *cli.Context) error {
	id, err := requireArg(c, "transaction ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.UpdateTransactionRequest{
		Type:            optEnum[domain.TransactionType](c, "type"),
		Amount:          optFloat(c, "amount"),
		CategoryID:      optString(c, "category"),
		Description:     optString(c, "description"),
		TransactionDate: optString(c, "date"),
	}
	tx, err := env.Services.Transactions.Update(c.Context, id, req)
	if err != nil {
		return err
	}
	return render(c, tx)
}

func transactionDelete(c *cli.Context) error {
	id, err := requireArg(c, "transaction ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	if err := env.Services.Transactions.Delete(c.Context, id); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	notice(c, "Transaction %s deleted", id)
	return nil
}
