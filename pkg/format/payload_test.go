package format

import (
	"testing"

	"github.com/goliatone/go-formflow/pkg/schema"
)

func TestPayload_StreetDisplay(t *testing.T) {
	tests := []struct {
		name    string
		payload *Payload
		want    string
	}{
		{
			name:    "typed street wins over value",
			payload: &Payload{Value: "г Москва, ул Тверская", StreetWithType: "ул Тверская"},
			want:    "ул Тверская",
		},
		{
			name:    "house appended after comma",
			payload: &Payload{StreetWithType: "ул Тверская", House: "12"},
			want:    "ул Тверская, 12",
		},
		{
			name:    "value fallback",
			payload: &Payload{Value: "Тверская"},
			want:    "Тверская",
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.StreetDisplay(); got != tt.want {
				t.Fatalf("StreetDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPayload_DistrictDisplay(t *testing.T) {
	tests := []struct {
		name    string
		payload *Payload
		want    string
	}{
		{
			name:    "city district first",
			payload: &Payload{Value: "x", CityDistrictWithType: "Тверской район", AreaWithType: "ЦАО"},
			want:    "Тверской район",
		},
		{
			name:    "area fallback",
			payload: &Payload{Value: "x", AreaWithType: "ЦАО"},
			want:    "ЦАО",
		},
		{
			name:    "value fallback",
			payload: &Payload{Value: "Тверской"},
			want:    "Тверской",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.DistrictDisplay(); got != tt.want {
				t.Fatalf("DistrictDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	if got := Apply(schema.KindPhone, "79991234567"); got != "+7 (999) 123-45-67" {
		t.Fatalf("phone apply = %q", got)
	}
	if got := Apply(schema.KindPrice, "50 000"); got != "50000" {
		t.Fatalf("price apply = %q", got)
	}
	if got := Apply(schema.KindFreeText, "  уютно  "); got != "уютно" {
		t.Fatalf("free text apply = %q", got)
	}
}

func TestApplyPayload(t *testing.T) {
	street := &Payload{StreetWithType: "ул Тверская", House: "1"}
	if got := ApplyPayload(schema.KindStreet, street); got != "ул Тверская, 1" {
		t.Fatalf("street payload = %q", got)
	}

	district := &Payload{AreaWithType: "ЦАО"}
	if got := ApplyPayload(schema.KindDistrict, district); got != "ЦАО" {
		t.Fatalf("district payload = %q", got)
	}

	if got := ApplyPayload(schema.KindCity, &Payload{Value: "Москва"}); got != "Москва" {
		t.Fatalf("city payload = %q", got)
	}

	if got := ApplyPayload(schema.KindFreeText, nil); got != "" {
		t.Fatalf("nil payload = %q", got)
	}
}
