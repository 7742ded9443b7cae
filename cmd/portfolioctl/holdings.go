package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	portfoliov1 "github.com/simaogato/investments-backend/internal/adapter/grpc/portfolio/v1"
)

// holdingFlags are the five business fields shared by create and update
type holdingFlags struct {
	assetType string
	symbol    string
	quantity  float64
	price     string
	date      string
}

func (h *holdingFlags) register(f *flag.FlagSet) {
	f.StringVar(&h.assetType, "type", "", "Asset type (STOCK, BOND, CRYPTO, FUND, OTHER).")
	f.StringVar(&h.symbol, "symbol", "", "Ticker or identifier of the asset.")
	f.Float64Var(&h.quantity, "quantity", 0, "Units held, must be positive.")
	f.StringVar(&h.price, "price", "", "Unit purchase price, as exact decimal text.")
	f.StringVar(&h.date, "date", time.Now().Format("2006-01-02"), "Purchase date (YYYY-MM-DD).")
}

type createCmd struct {
	holdingFlags
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "record a new holding" }
func (*createCmd) Usage() string {
	return `portfolioctl create -type <type> -symbol <symbol> -quantity <n> -price <p> [-date <YYYY-MM-DD>]

  Records a new holding and prints it with its assigned ID.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *createCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withClient(ctx, func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error {
		holding, err := client.CreateHolding(ctx, &portfoliov1.CreateHoldingRequest{
			Type:          c.assetType,
			Symbol:        c.symbol,
			Quantity:      c.quantity,
			PurchasePrice: c.price,
			PurchaseDate:  c.date,
		})
		if err != nil {
			return err
		}
		printHoldings(holding)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type listCmd struct {
	assetType string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list holdings, optionally of one asset type" }
func (*listCmd) Usage() string {
	return `portfolioctl list [-type <type>]

  Lists holdings in the order they were recorded.
`
}

func (l *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.assetType, "type", "", "Only list holdings of this asset type.")
}

func (l *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withClient(ctx, func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error {
		resp, err := client.ListHoldings(ctx, &portfoliov1.ListHoldingsRequest{Type: l.assetType})
		if err != nil {
			return err
		}
		printHoldings(resp.Holdings...)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type getCmd struct{}

func (*getCmd) Name() string           { return "get" }
func (*getCmd) Synopsis() string       { return "show one holding" }
func (*getCmd) Usage() string          { return "portfolioctl get <id>\n" }
func (*getCmd) SetFlags(*flag.FlagSet) {}

func (*getCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "get requires exactly one holding ID")
		return subcommands.ExitUsageError
	}

	err := withClient(ctx, func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error {
		holding, err := client.GetHolding(ctx, &portfoliov1.GetHoldingRequest{Id: f.Arg(0)})
		if err != nil {
			return err
		}
		printHoldings(holding)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type updateCmd struct {
	holdingFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "overwrite every field of a holding" }
func (*updateCmd) Usage() string {
	return `portfolioctl update -type <type> -symbol <symbol> -quantity <n> -price <p> [-date <YYYY-MM-DD>] <id>

  Replaces all five fields of an existing holding. There is no partial update.
`
}

func (u *updateCmd) SetFlags(f *flag.FlagSet) { u.register(f) }

func (u *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "update requires exactly one holding ID")
		return subcommands.ExitUsageError
	}

	err := withClient(ctx, func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error {
		holding, err := client.UpdateHolding(ctx, &portfoliov1.UpdateHoldingRequest{
			Id:            f.Arg(0),
			Type:          u.assetType,
			Symbol:        u.symbol,
			Quantity:      u.quantity,
			PurchasePrice: u.price,
			PurchaseDate:  u.date,
		})
		if err != nil {
			return err
		}
		printHoldings(holding)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string           { return "delete" }
func (*deleteCmd) Synopsis() string       { return "permanently remove a holding" }
func (*deleteCmd) Usage() string          { return "portfolioctl delete <id>\n" }
func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "delete requires exactly one holding ID")
		return subcommands.ExitUsageError
	}

	err := withClient(ctx, func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error {
		if _, err := client.DeleteHolding(ctx, &portfoliov1.DeleteHoldingRequest{Id: f.Arg(0)}); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "deleted %s\n", f.Arg(0))
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
