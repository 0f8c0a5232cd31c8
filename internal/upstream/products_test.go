package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProductList_Normalization(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Products/products/" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"ProductID":1,"ProductName":"Latte","ProductTypeName":"Drink","ProductCategory":"Coffee","ProductDescription":"Espresso with milk","ProductPrice":120,"ProductImage":"/static/pos_product_images/latte.jpg","ProductSizes":["12oz","16oz"]},
			{"ProductID":2,"ProductName":"","ProductTypeName":"Food","ProductCategory":"","ProductDescription":"","ProductPrice":95.5,"ProductImage":"https://cdn.example/cake.jpg","ProductSizes":null},
			{"ProductID":3,"ProductName":"Mocha","ProductTypeName":"Drink","ProductCategory":"Coffee","ProductDescription":"x","ProductPrice":130,"ProductImage":"  ","ProductSizes":[]}
		]`))
	}))
	defer ts.Close()

	client := NewProductClient(ts.URL, placeholder, time.Second)

	products, err := client.List(context.Background(), "tok")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("len = %d, want 3", len(products))
	}

	if products[0].ImageURL != ts.URL+"/static/pos_product_images/latte.jpg" {
		t.Fatalf("relative image = %q", products[0].ImageURL)
	}
	if len(products[0].Sizes) != 2 {
		t.Fatalf("sizes = %v", products[0].Sizes)
	}

	if products[1].Name != "Unknown Product" {
		t.Fatalf("name fallback = %q", products[1].Name)
	}
	if products[1].Category != "N/A" || products[1].Description != "N/A" {
		t.Fatalf("category/description fallbacks = %q/%q", products[1].Category, products[1].Description)
	}
	if products[1].ImageURL != "https://cdn.example/cake.jpg" {
		t.Fatalf("absolute image = %q", products[1].ImageURL)
	}

	if products[2].ImageURL != placeholder {
		t.Fatalf("blank image = %q, want placeholder", products[2].ImageURL)
	}
}
