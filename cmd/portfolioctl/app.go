package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	portfoliov1 "github.com/simaogato/investments-backend/internal/adapter/grpc/portfolio/v1"
)

var (
	serverAddr = flag.String("addr", "localhost:8080", "gRPC address of the portfolio server")
	rpcTimeout = flag.Duration("timeout", 10*time.Second, "Deadline applied to each call")
)

// stdout is swapped in tests
var stdout io.Writer = os.Stdout

// dial opens a client connection; tests replace it with an in-memory dialer
var dial = func(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// withClient connects to the server and runs fn under the configured deadline
func withClient(ctx context.Context, fn func(ctx context.Context, client portfoliov1.PortfolioServiceClient) error) error {
	conn, err := dial(*serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", *serverAddr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, *rpcTimeout)
	defer cancel()

	return fn(ctx, portfoliov1.NewPortfolioServiceClient(conn))
}

func printHoldings(holdings ...*portfoliov1.Holding) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSYMBOL\tQUANTITY\tPRICE\tDATE")
	for _, h := range holdings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%s\n", h.Id, h.Type, h.Symbol, h.Quantity, h.PurchasePrice, h.PurchaseDate)
	}
	w.Flush()
}
