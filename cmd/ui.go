package cmd

import (
	"context"
	"errors"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/errhandler"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/ui"
	"github.com/hance08/txindex/internal/ui/prompts"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type uiRunner struct {
	env *cmdutil.Env
}

func NewUICmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Interactive session over one loaded batch",
		Long: `Load a batch once and run lookups against it interactively.
Without --source/--batch the batch is picked from the feed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &uiRunner{
				env: env,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *uiRunner) Run(ctx context.Context) error {
	ui.Banner("txindex")

	stats, err := r.env.LoadIndex(ctx)
	if errors.Is(err, cmdutil.ErrNoSource) {
		stats, err = r.loadFromFeed(ctx)
	}
	if err != nil {
		return err
	}
	if err := views.RenderLoadReport("session", stats); err != nil {
		return err
	}

	for {
		action, err := prompts.PromptAction()
		if err != nil {
			return err
		}
		if action == prompts.ActionQuit {
			return nil
		}

		if err := r.handle(ctx, action); err != nil {
			// lookups that miss are part of a session, anything else ends it
			if !isQueryMiss(err) {
				return err
			}
			pterm.Warning.Println(errhandler.Capitalize(err.Error()))
		}
		pterm.Println()
	}
}

func (r *uiRunner) handle(ctx context.Context, action prompts.Action) error {
	svc := r.env.Service().Ledger
	precision := r.env.Precision()

	switch action {
	case prompts.ActionFind:
		accountID, err := prompts.PromptAccountID("Account number:", svc.Accounts())
		if err != nil {
			return err
		}
		number, err := prompts.PromptTransactionNumber("Transaction number:")
		if err != nil {
			return err
		}
		tx, err := svc.FindTransaction(accountID, number)
		if err != nil {
			return err
		}
		return views.RenderTransactionDetail(tx, precision)

	case prompts.ActionList:
		accountID, err := prompts.PromptAccountID("Account number:", svc.Accounts())
		if err != nil {
			return err
		}
		txs, err := svc.FindTransactions(accountID)
		if err != nil {
			return err
		}
		average, err := svc.AverageAmount(accountID)
		if err != nil {
			return err
		}
		return views.NewTransactionListView(precision).Render(accountID, txs, average)

	case prompts.ActionAverage:
		accountID, err := prompts.PromptAccountID("Account number:", svc.Accounts())
		if err != nil {
			return err
		}
		average, err := svc.AverageAmount(accountID)
		if err != nil {
			return err
		}
		views.RenderAverage(accountID, average, precision)
		return nil

	case prompts.ActionAccounts:
		summaries, err := svc.AccountSummaries()
		if err != nil {
			return err
		}
		return views.NewAccountListView(precision).Render(summaries)

	case prompts.ActionReload:
		stats, err := r.loadFromFeed(ctx)
		if err != nil {
			return err
		}
		return views.RenderLoadReport("session", stats)
	}

	return nil
}

func (r *uiRunner) loadFromFeed(ctx context.Context) (ledger.LoadStats, error) {
	names, err := r.env.Service().Feed.BatchNames(ctx)
	if err != nil {
		return ledger.LoadStats{}, err
	}

	name, err := prompts.PromptBatch(names)
	if err != nil {
		return ledger.LoadStats{}, err
	}

	return r.env.LoadRef(ctx, cmdutil.FeedPrefix+name)
}

func isQueryMiss(err error) bool {
	return errors.Is(err, ledger.ErrAccountNotFound) ||
		errors.Is(err, ledger.ErrTransactionNotFound) ||
		errors.Is(err, ledger.ErrInvalidTransactionNumber) ||
		errors.Is(err, ledger.ErrInvalidAccountNumber)
}
