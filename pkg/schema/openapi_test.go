package schema_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/schema"
)

const listingDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "Listings", "version": "1.0.0"},
  "paths": {
    "/listings": {
      "post": {
        "operationId": "createListing",
        "summary": "Создание объявления",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["city", "price"],
                "properties": {
                  "city": {"type": "string", "title": "Город"},
                  "price": {"type": "string", "title": "Цена"},
                  "contact": {"type": "string", "format": "tel", "title": "Телефон"},
                  "deal": {"type": "string", "title": "Сделка", "enum": ["Аренда", "Продажа"]}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func TestFromOpenAPI(t *testing.T) {
	parsed, err := schema.FromOpenAPI(context.Background(), []byte(listingDoc), "createListing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := schema.FormSchema{
		Title: "Создание объявления",
		Fields: []schema.FieldSpec{
			{ID: "city", Label: "Город", Kind: schema.KindCity, Required: true},
			{ID: "contact", Label: "Телефон", Kind: schema.KindPhone},
			{ID: "deal", Label: "Сделка", Kind: schema.KindFixedChoice, Choices: []string{"Аренда", "Продажа"}},
			{ID: "price", Label: "Цена", Kind: schema.KindPrice, Required: true},
		},
	}
	if diff := cmp.Diff(want, parsed); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_UnknownOperation(t *testing.T) {
	_, err := schema.FromOpenAPI(context.Background(), []byte(listingDoc), "missing")
	if err == nil {
		t.Fatal("expected error for unknown operation id")
	}
}

func TestFromOpenAPI_EmptyDocument(t *testing.T) {
	_, err := schema.FromOpenAPI(context.Background(), nil, "createListing")
	if err == nil {
		t.Fatal("expected error for empty document")
	}
}
