package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"pocketbook/internal/cli"
	"pocketbook/internal/core"
	"pocketbook/internal/ids"
	"pocketbook/internal/services"
	"pocketbook/internal/storage"
)

// app holds the wired services shared by all commands.
type app struct {
	ctx context.Context

	repo         *storage.Repository
	transactions *services.TransactionService
	accounts     *services.AccountService
	categories   *services.CategoryService
	goal         *services.GoalService

	clearGoalOnReset bool
}

var flags struct {
	Tx         txCmd         `cmd:"" name:"tx" help:"Record and browse transactions."`
	Accounts   accountsCmd   `cmd:"" help:"Manage accounts."`
	Categories categoriesCmd `cmd:"" help:"Manage income and expense categories."`
	Goal       goalCmd       `cmd:"" help:"Show or set the savings goal."`
	Summary    summaryCmd    `cmd:"" help:"Total balance and goal progress."`
	Calendar   calendarCmd   `cmd:"" help:"Per-day totals for one month."`
	Reset      resetCmd      `cmd:"" help:"Delete all stored data."`
}

type txCmd struct {
	Add  txAddCmd  `cmd:"" help:"Record a transaction."`
	List txListCmd `cmd:"" help:"List transactions, most recent first."`
	Rm   txRmCmd   `cmd:"" help:"Delete a transaction by id."`
}

type txAddCmd struct {
	Type     string `required:"" enum:"income,expense" help:"Transaction type."`
	Amount   string `required:"" help:"Positive amount, e.g. 12.34."`
	Category string `required:"" help:"Category name."`
	Account  string `help:"Account id."`
	Date     string `help:"Calendar day as YYYY-MM-DD, defaults to today."`
}

func (c *txAddCmd) Run(a *app) error {
	amount, err := core.ParseAmount(c.Amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", c.Amount, err)
	}
	date := core.Date(c.Date)
	if c.Date == "" {
		date = core.Today()
	}

	txn := core.Transaction{
		ID:        ids.UUID{}.NewID(),
		Type:      core.TransactionType(c.Type),
		Amount:    amount,
		Category:  c.Category,
		AccountID: c.Account,
		Date:      date,
	}
	if err := a.transactions.Load(a.ctx); err != nil {
		return err
	}
	if err := a.transactions.Add(a.ctx, txn); err != nil {
		return err
	}
	fmt.Printf("recorded %s\n", txn.ID)
	return nil
}

type txListCmd struct {
	Date string `help:"Only this day (YYYY-MM-DD)."`
}

func (c *txListCmd) Run(a *app) error {
	if err := a.transactions.Load(a.ctx); err != nil {
		return err
	}
	txns := a.transactions.All()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, t := range txns {
		if c.Date != "" && t.Date != core.Date(c.Date) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.Type, t.Amount, t.Category, t.AccountID, t.ID)
	}
	if c.Date != "" {
		fmt.Fprintf(w, "total\t\t%s\t\t\t\n", core.DailyTotalFor(txns, core.Date(c.Date)))
	}
	return nil
}

type txRmCmd struct {
	ID string `arg:"" help:"Transaction id."`
}

func (c *txRmCmd) Run(a *app) error {
	if err := a.transactions.Load(a.ctx); err != nil {
		return err
	}
	return a.transactions.Remove(a.ctx, c.ID)
}

type accountsCmd struct {
	List   accountsListCmd   `cmd:"" default:"1" help:"List accounts."`
	Add    accountsAddCmd    `cmd:"" help:"Add an account."`
	Rm     accountsRmCmd     `cmd:"" help:"Delete an account by id."`
	Emoji  accountsEmojiCmd  `cmd:"" help:"Change an account's emoji."`
	Rename accountsRenameCmd `cmd:"" help:"Rename an account."`
}

type accountsListCmd struct{}

func (c *accountsListCmd) Run(a *app) error {
	accounts, err := a.accounts.List(a.ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", acc.Emoji, acc.Name, acc.Balance.StringFixed(2), acc.ID)
	}
	return nil
}

type accountsAddCmd struct {
	Name  string `arg:"" help:"Account name."`
	Emoji string `help:"Display glyph." default:"💳"`
}

func (c *accountsAddCmd) Run(a *app) error {
	account, err := a.accounts.Add(a.ctx, c.Name, c.Emoji)
	if err != nil {
		return err
	}
	fmt.Printf("added %s\n", account.ID)
	return nil
}

type accountsRmCmd struct {
	ID string `arg:"" help:"Account id."`
}

func (c *accountsRmCmd) Run(a *app) error {
	return a.accounts.Remove(a.ctx, c.ID)
}

type accountsEmojiCmd struct {
	ID    string `arg:"" help:"Account id."`
	Emoji string `arg:"" help:"New glyph."`
}

func (c *accountsEmojiCmd) Run(a *app) error {
	return a.accounts.SetEmoji(a.ctx, c.ID, c.Emoji)
}

type accountsRenameCmd struct {
	ID   string `arg:"" help:"Account id."`
	Name string `arg:"" help:"New name."`
}

func (c *accountsRenameCmd) Run(a *app) error {
	return a.accounts.Rename(a.ctx, c.ID, c.Name)
}

type categoriesCmd struct {
	List categoriesListCmd `cmd:"" default:"1" help:"List categories."`
	Add  categoriesAddCmd  `cmd:"" help:"Add a category."`
	Rm   categoriesRmCmd   `cmd:"" help:"Delete a category by id."`
}

type categoriesListCmd struct {
	Kind string `required:"" enum:"income,expense" help:"Which collection."`
}

func (c *categoriesListCmd) Run(a *app) error {
	cats, err := a.categories.List(a.ctx, services.CategoryKind(c.Kind))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, cat := range cats {
		fmt.Fprintf(w, "%s\t%s\n", cat.Name, cat.ID)
	}
	return nil
}

type categoriesAddCmd struct {
	Kind string `required:"" enum:"income,expense" help:"Which collection."`
	Name string `arg:"" help:"Category name."`
}

func (c *categoriesAddCmd) Run(a *app) error {
	cat, err := a.categories.Add(a.ctx, services.CategoryKind(c.Kind), c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("added %s\n", cat.ID)
	return nil
}

type categoriesRmCmd struct {
	Kind string `required:"" enum:"income,expense" help:"Which collection."`
	ID   string `arg:"" help:"Category id."`
}

func (c *categoriesRmCmd) Run(a *app) error {
	return a.categories.Remove(a.ctx, services.CategoryKind(c.Kind), c.ID)
}

type goalCmd struct {
	Show goalShowCmd `cmd:"" default:"1" help:"Show the goal."`
	Set  goalSetCmd  `cmd:"" help:"Set a new goal."`
}

type goalShowCmd struct{}

func (c *goalShowCmd) Run(a *app) error {
	goal, err := a.goal.Amount(a.ctx)
	if err != nil {
		return err
	}
	fmt.Println(goal)
	return nil
}

type goalSetCmd struct {
	Amount string `arg:"" help:"New goal amount."`
}

func (c *goalSetCmd) Run(a *app) error {
	goal, err := core.ParseAmount(c.Amount)
	if err != nil {
		return fmt.Errorf("goal %q: %w", c.Amount, err)
	}
	return a.goal.SetAmount(a.ctx, goal)
}

type summaryCmd struct{}

func (c *summaryCmd) Run(a *app) error {
	var goal decimal.Decimal
	g, ctx := errgroup.WithContext(a.ctx)
	g.Go(func() error { return a.transactions.Load(ctx) })
	g.Go(func() error {
		var err error
		goal, err = a.goal.Amount(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	txns := a.transactions.All()
	total := core.TotalBalance(txns)
	fmt.Printf("balance: %s / %s\n", total.StringFixed(2), goal)
	fmt.Printf("goal progress: %.1f%%\n", core.GoalProgress(total, goal))
	return nil
}

type calendarCmd struct {
	Month string `required:"" help:"Month as YYYY-MM."`
}

func (c *calendarCmd) Run(a *app) error {
	if err := a.transactions.Load(a.ctx); err != nil {
		return err
	}
	marks := core.CalendarMarks(a.transactions.All(), c.Month)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, m := range marks {
		sign := ""
		if m.Positive {
			sign = "+"
		}
		fmt.Fprintf(w, "%s\t%s%s\n", m.Date, sign, m.Amount.StringFixed(2))
	}
	return nil
}

type resetCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *resetCmd) Run(a *app) error {
	if !c.Yes {
		return fmt.Errorf("refusing to delete all data without --yes")
	}
	return a.repo.ClearAllData(a.ctx, a.clearGoalOnReset)
}

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()

	cfg, err := cli.LoadConfig()
	if err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	repo, cleanup, err := cli.OpenRepository(cfg)
	if err != nil {
		logger.Error("Failed to open store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	a := &app{
		ctx:              context.Background(),
		repo:             repo,
		transactions:     services.NewTransactionService(repo),
		accounts:         services.NewAccountService(repo, ids.Timestamp{}),
		categories:       services.NewCategoryService(repo, ids.UUID{}),
		goal:             services.NewGoalService(repo),
		clearGoalOnReset: cfg.ClearGoalOnReset,
	}

	kctx := kong.Parse(&flags,
		kong.Name("pocketbook"),
		kong.Description("Local personal budgeting: transactions, accounts, categories, savings goal."),
		kong.Bind(a),
	)
	err = kctx.Run()
	if cerr := cleanup(); cerr != nil {
		logger.Warn("Failed to close store", "error", cerr)
	}
	kctx.FatalIfErrorf(err)
}
