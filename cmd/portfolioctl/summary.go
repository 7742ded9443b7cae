package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/subcommands"
	"google.golang.org/protobuf/types/known/emptypb"

	portfoliov1 "github.com/simaogato/investments-backend/internal/adapter/grpc/portfolio/v1"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show total invested, per asset type and overall" }
func (*summaryCmd) Usage() string {
	return `portfolioctl summary

  Prints the amount invested per asset type, the overall total and the number of holdings.
`
}
func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := withClient(ctx, func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error {
		summary, err := client.GetSummary(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}

		types := make([]string, 0, len(summary.TotalByType))
		for t := range summary.TotalByType {
			types = append(types, t)
		}
		sort.Strings(types)

		w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tINVESTED")
		for _, t := range types {
			fmt.Fprintf(w, "%s\t%s\n", t, summary.TotalByType[t])
		}
		fmt.Fprintf(w, "TOTAL\t%s\n", summary.TotalInvested)
		fmt.Fprintf(w, "HOLDINGS\t%d\n", summary.AssetCount)
		return w.Flush()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
