package submit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/submit"
)

func listingSchema() schema.FormSchema {
	return schema.FormSchema{Fields: []schema.FieldSpec{
		{ID: "city", Kind: schema.KindCity, Required: true},
		{ID: "street", Kind: schema.KindStreet, Required: true},
		{ID: "district", Kind: schema.KindDistrict},
		{ID: "comment", Kind: schema.KindFreeText},
		{ID: "price", Kind: schema.KindPrice, Required: true},
	}}
}

func TestPayload_OmitsEmptyOptionalFields(t *testing.T) {
	values := map[string]string{
		"city":    "Москва",
		"street":  "Тверская, 1",
		"price":   "50000",
		"comment": "",
	}

	payload := submit.Payload(listingSchema(), values, submit.PayloadOptions{})

	want := map[string]string{
		"city":   "Москва",
		"street": "Тверская, 1",
		"price":  "50000",
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPayload_RequiredFieldsAlwaysPresent(t *testing.T) {
	payload := submit.Payload(listingSchema(), map[string]string{}, submit.PayloadOptions{})

	for _, id := range []string{"city", "street", "price"} {
		if _, ok := payload[id]; !ok {
			t.Fatalf("required field %q missing from payload", id)
		}
	}
	if _, ok := payload["comment"]; ok {
		t.Fatal("empty optional field leaked into payload")
	}
}

func TestPayload_BackfillsDistrict(t *testing.T) {
	values := map[string]string{"city": "Москва", "street": "Тверская", "price": "1"}

	payload := submit.Payload(listingSchema(), values, submit.PayloadOptions{
		BackfillDistrict: true,
		NotSpecified:     "Не указан",
	})

	if payload["district"] != "Не указан" {
		t.Fatalf("district = %q, want placeholder", payload["district"])
	}
}

func TestPayload_IgnoresValuesOutsideSchema(t *testing.T) {
	values := map[string]string{"city": "Москва", "debug": "1"}

	payload := submit.Payload(listingSchema(), values, submit.PayloadOptions{})

	if _, ok := payload["debug"]; ok {
		t.Fatal("value outside the schema leaked into payload")
	}
}

func TestBridgeTransport(t *testing.T) {
	var sent []byte
	transport, err := submit.NewBridgeTransport(func(ctx context.Context, data []byte) error {
		sent = data
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if transport.Name() != "bridge" {
		t.Fatalf("name = %q", transport.Name())
	}

	if err := transport.Send(context.Background(), []byte(`{"a":"b"}`)); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if string(sent) != `{"a":"b"}` {
		t.Fatalf("bridge received %q", sent)
	}
}

func TestBridgeTransport_NilFunc(t *testing.T) {
	if _, err := submit.NewBridgeTransport(nil); err == nil {
		t.Fatal("expected error for nil bridge function")
	}
}

func TestBridgeTransport_CancelledContext(t *testing.T) {
	transport, err := submit.NewBridgeTransport(func(ctx context.Context, data []byte) error {
		t.Fatal("bridge must not be called after cancellation")
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := transport.Send(ctx, []byte("{}")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFallbackTransport_RendersSortedSummary(t *testing.T) {
	var buf bytes.Buffer
	transport, err := submit.NewFallbackTransport(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := json.Marshal(map[string]string{
		"price": "50000",
		"city":  "Москва",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := transport.Send(context.Background(), data); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	want := "city: Москва\nprice: 50000\n"
	if buf.String() != want {
		t.Fatalf("summary = %q, want %q", buf.String(), want)
	}
}

func TestFallbackTransport_RejectsMalformedPayload(t *testing.T) {
	var buf bytes.Buffer
	transport, err := submit.NewFallbackTransport(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := transport.Send(context.Background(), []byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestAdapter_Submit(t *testing.T) {
	var buf bytes.Buffer
	transport, err := submit.NewFallbackTransport(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	adapter, err := submit.NewAdapter(transport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	outcome := adapter.Submit(context.Background(), map[string]string{"city": "Москва"})

	if !outcome.Delivered {
		t.Fatalf("expected delivery, got %+v", outcome)
	}
	if outcome.Transport != "fallback" {
		t.Fatalf("transport = %q", outcome.Transport)
	}
}

func TestAdapter_SubmitCapturesTransportFailure(t *testing.T) {
	failure := errors.New("bridge down")
	transport, err := submit.NewBridgeTransport(func(ctx context.Context, data []byte) error {
		return failure
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	adapter, err := submit.NewAdapter(transport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	outcome := adapter.Submit(context.Background(), map[string]string{"city": "Москва"})

	if outcome.Delivered {
		t.Fatal("failed delivery reported as success")
	}
	if !errors.Is(outcome.Err, failure) {
		t.Fatalf("outcome error = %v", outcome.Err)
	}
}

func TestNewAdapter_RequiresTransport(t *testing.T) {
	if _, err := submit.NewAdapter(nil); err == nil {
		t.Fatal("expected error for nil transport")
	}
}
