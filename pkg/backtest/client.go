// Package backtest wraps the gRPC connection to the external backtest
// comparator consulted by drift contribution checks.
package backtest

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/quantmuse/eventcore/proto"
)

// Comparison is the comparator's verdict for one window.
type Comparison struct {
	TotalReturnDelta float64
	SharpeDelta      float64
	EventRowRatio    float64
	EventsLoaded     int64
}

// Comparator compares a strategy with and without event features over a
// window. Implemented by Client; faked in tests.
type Comparator interface {
	Compare(ctx context.Context, symbol, strategy string, start, end time.Time) (*Comparison, error)
}

// Client wraps the gRPC connection to the comparator service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.BacktestComparatorClient
}

// NewClient connects to the comparator service.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to backtest comparator: %w", err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewBacktestComparatorClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Compare implements Comparator.
func (c *Client) Compare(ctx context.Context, symbol, strategy string, start, end time.Time) (*Comparison, error) {
	resp, err := c.client.Compare(ctx, &pb.CompareRequest{
		Symbol:    symbol,
		Strategy:  strategy,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("comparator call failed: %w", err)
	}
	out := &Comparison{}
	if d := resp.GetDelta(); d != nil {
		out.TotalReturnDelta = d.GetTotalReturnDelta()
		out.SharpeDelta = d.GetSharpeDelta()
	}
	if d := resp.GetDiagnostics(); d != nil {
		out.EventRowRatio = d.GetEventRowRatio()
		out.EventsLoaded = d.GetEventsLoaded()
	}
	return out, nil
}
