package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRequestDataRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithRequestData(context.Background(), &RequestData{UserID: id, TokenString: "tok"})
	if got := UserID(ctx); got != id {
		t.Fatalf("UserID: want=%s got=%s", id, got)
	}
	if rd := GetRequestData(ctx); rd == nil || rd.TokenString != "tok" {
		t.Fatalf("GetRequestData: unexpected %+v", rd)
	}
	if got := UserID(context.Background()); got != uuid.Nil {
		t.Fatalf("UserID without data: want nil uuid got=%s", got)
	}
}

func TestTraceData(t *testing.T) {
	if td := GetTraceData(context.Background()); td != nil {
		t.Fatalf("expected nil trace data, got %+v", td)
	}
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t1", RequestID: "r1"})
	td := GetTraceData(ctx)
	if td == nil || td.TraceID != "t1" || td.RequestID != "r1" {
		t.Fatalf("unexpected trace data: %+v", td)
	}
}
