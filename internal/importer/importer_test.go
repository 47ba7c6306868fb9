package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"shopcart/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,name,description,price,quantity
00000000-0000-0000-0000-000000000001,Green Tea,Loose-leaf sencha,4.50,25
,,,,
,Stoneware Mug,Glazed mug,12.99,10`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 products saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.ID != "00000000-0000-0000-0000-000000000001" {
		t.Fatalf("expected id to be preserved, got %s", first.ID)
	}
	if first.Name != "Green Tea" || first.Quantity != 25 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if !first.Price.Equal(decimal.RequireFromString("4.50")) {
		t.Fatalf("expected price 4.50, got %s", first.Price)
	}

	if repo.items[1].ID != "" {
		t.Fatalf("expected generated id for second product, got %s", repo.items[1].ID)
	}
}

func TestCSVImporter_MissingColumn(t *testing.T) {
	csvData := `name,description
Green Tea,Loose-leaf sencha`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing price/quantity columns")
	}
}

func TestCSVImporter_BadPrice(t *testing.T) {
	csvData := `name,price,quantity
Green Tea,not-a-price,3`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for malformed price")
	}
}
