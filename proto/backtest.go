// Package proto holds the wire bindings for the backtest comparator
// service defined in backtest.proto. The bindings are hand-maintained:
// the service has a single unary method, so the full protoc toolchain is
// not worth carrying. Messages implement the legacy proto interface and
// are adapted by the gRPC proto codec on the wire.
package proto

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/protoadapt"
)

// CompareRequest asks for a with/without-events replay of one strategy
// over a date window.
type CompareRequest struct {
	Symbol   string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Strategy string `protobuf:"bytes,2,opt,name=strategy,proto3" json:"strategy,omitempty"`
	// Local calendar dates, YYYY-MM-DD.
	StartDate string `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate   string `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
}

func (x *CompareRequest) Reset()         { *x = CompareRequest{} }
func (x *CompareRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*CompareRequest) ProtoMessage()    {}

func (x *CompareRequest) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *CompareRequest) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

func (x *CompareRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *CompareRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

// CompareResponse carries the comparator's verdict.
type CompareResponse struct {
	Delta       *Delta       `protobuf:"bytes,1,opt,name=delta,proto3" json:"delta,omitempty"`
	Diagnostics *Diagnostics `protobuf:"bytes,2,opt,name=diagnostics,proto3" json:"diagnostics,omitempty"`
}

func (x *CompareResponse) Reset()         { *x = CompareResponse{} }
func (x *CompareResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*CompareResponse) ProtoMessage()    {}

func (x *CompareResponse) GetDelta() *Delta {
	if x != nil {
		return x.Delta
	}
	return nil
}

func (x *CompareResponse) GetDiagnostics() *Diagnostics {
	if x != nil {
		return x.Diagnostics
	}
	return nil
}

// Delta is the performance difference attributable to event features.
type Delta struct {
	TotalReturnDelta float64 `protobuf:"fixed64,1,opt,name=total_return_delta,json=totalReturnDelta,proto3" json:"total_return_delta,omitempty"`
	SharpeDelta      float64 `protobuf:"fixed64,2,opt,name=sharpe_delta,json=sharpeDelta,proto3" json:"sharpe_delta,omitempty"`
}

func (x *Delta) Reset()         { *x = Delta{} }
func (x *Delta) String() string { return fmt.Sprintf("%+v", *x) }
func (*Delta) ProtoMessage()    {}

func (x *Delta) GetTotalReturnDelta() float64 {
	if x != nil {
		return x.TotalReturnDelta
	}
	return 0
}

func (x *Delta) GetSharpeDelta() float64 {
	if x != nil {
		return x.SharpeDelta
	}
	return 0
}

// Diagnostics reports how much event data backed the comparison.
type Diagnostics struct {
	EventRowRatio float64 `protobuf:"fixed64,1,opt,name=event_row_ratio,json=eventRowRatio,proto3" json:"event_row_ratio,omitempty"`
	EventsLoaded  int64   `protobuf:"varint,2,opt,name=events_loaded,json=eventsLoaded,proto3" json:"events_loaded,omitempty"`
}

func (x *Diagnostics) Reset()         { *x = Diagnostics{} }
func (x *Diagnostics) String() string { return fmt.Sprintf("%+v", *x) }
func (*Diagnostics) ProtoMessage()    {}

func (x *Diagnostics) GetEventRowRatio() float64 {
	if x != nil {
		return x.EventRowRatio
	}
	return 0
}

func (x *Diagnostics) GetEventsLoaded() int64 {
	if x != nil {
		return x.EventsLoaded
	}
	return 0
}

// The gRPC proto codec adapts legacy messages through protoadapt; these
// assertions pin the contract the codec relies on.
var (
	_ protoadapt.MessageV1 = (*CompareRequest)(nil)
	_ protoadapt.MessageV1 = (*CompareResponse)(nil)
	_ protoadapt.MessageV1 = (*Delta)(nil)
	_ protoadapt.MessageV1 = (*Diagnostics)(nil)
)

const backtestComparatorCompareMethod = "/backtest.BacktestComparator/Compare"

// BacktestComparatorClient is the client API for the BacktestComparator
// service.
type BacktestComparatorClient interface {
	Compare(ctx context.Context, in *CompareRequest, opts ...grpc.CallOption) (*CompareResponse, error)
}

type backtestComparatorClient struct {
	cc grpc.ClientConnInterface
}

// NewBacktestComparatorClient creates a client over an established
// connection.
func NewBacktestComparatorClient(cc grpc.ClientConnInterface) BacktestComparatorClient {
	return &backtestComparatorClient{cc: cc}
}

func (c *backtestComparatorClient) Compare(ctx context.Context, in *CompareRequest, opts ...grpc.CallOption) (*CompareResponse, error) {
	out := new(CompareResponse)
	if err := c.cc.Invoke(ctx, backtestComparatorCompareMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
