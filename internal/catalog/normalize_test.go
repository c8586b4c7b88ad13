package catalog

import (
	"reflect"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func colorModelRaw() RawProduct {
	return RawProduct{
		ID:    1,
		Name:  "Linen Kurta",
		Price: 1299,
		Colors: []RawColor{
			{
				Name:       "Red",
				Sizes:      []string{"S", "M"},
				SizeCounts: map[string]int{"S": 0, "M": 3},
				Images:     []string{"red-1.jpg", "red-2.jpg"},
			},
			{
				Name:       "Green",
				Sizes:      []string{"S", "M", "L"},
				SizeCounts: map[string]int{"S": 2, "M": 0, "L": 1},
				Images:     []string{"green-1.jpg"},
			},
		},
		// Losing representations must be ignored entirely.
		Color: "Blue,Black",
		Sizes: map[string]int{"XL": 9},
	}
}

func TestNormalizePrefersColorModel(t *testing.T) {
	p := Normalize(colorModelRaw())

	if p.Model != ModelColor {
		t.Fatalf("expected color model, got %s", p.Model)
	}
	if len(p.Variants) != 0 || p.FlatColors != nil || p.FlatSizes != nil {
		t.Fatal("color model must not carry fields of other representations")
	}
	if got := p.AvailableColors(); !reflect.DeepEqual(got, []string{"Red", "Green"}) {
		t.Fatalf("unexpected colors %v", got)
	}
	if got := p.AvailableSizes(); !reflect.DeepEqual(got, []string{"S", "M"}) {
		t.Fatalf("unexpected initial sizes %v", got)
	}
}

func TestNormalizeLegacyVariantsDedupeInOrder(t *testing.T) {
	p := Normalize(RawProduct{
		ID:    2,
		Name:  "Denim Jacket",
		Price: 2499,
		Variants: []RawVariant{
			{Color: "Blue", Size: "M", Stock: 2},
			{Color: "Blue", Size: "L", Stock: 0},
			{Color: "Black", Size: "M", Stock: 4},
		},
	})

	if p.Model != ModelLegacyVariant {
		t.Fatalf("expected legacy model, got %s", p.Model)
	}
	if got := p.AvailableColors(); !reflect.DeepEqual(got, []string{"Blue", "Black"}) {
		t.Fatalf("unexpected colors %v", got)
	}
	if got := p.AvailableSizes(); !reflect.DeepEqual(got, []string{"M", "L"}) {
		t.Fatalf("unexpected sizes %v", got)
	}
}

func TestNormalizeVariantAvailabilityDefaultsToTrue(t *testing.T) {
	p := Normalize(RawProduct{
		Variants: []RawVariant{
			{Color: "Blue", Size: "M", Stock: 2},
			{Color: "Blue", Size: "L", Stock: 2, IsAvailable: boolPtr(false)},
		},
	})

	if !p.Variants[0].Available {
		t.Fatal("nil is_available must read as available")
	}
	if p.Variants[1].Available {
		t.Fatal("is_available=false must read as unavailable")
	}
}

func TestNormalizeFlatModel(t *testing.T) {
	p := Normalize(RawProduct{
		ID:    3,
		Name:  "Plain Tee",
		Price: 499,
		Color: " Blue , Black ,",
		Sizes: map[string]int{"M": 5, "L": 0},
		Image: "tee.jpg",
	})

	if p.Model != ModelFlat {
		t.Fatalf("expected flat model, got %s", p.Model)
	}
	if got := p.AvailableColors(); !reflect.DeepEqual(got, []string{"Blue", "Black"}) {
		t.Fatalf("unexpected colors %v", got)
	}
	if got := p.AvailableSizes(); !reflect.DeepEqual(got, []string{"L", "M"}) {
		t.Fatalf("unexpected sizes %v", got)
	}
	if got := p.Images; !reflect.DeepEqual(got, []string{"tee.jpg"}) {
		t.Fatalf("expected single image fallback, got %v", got)
	}
}

func TestNormalizeFlatAvailableSizesWinOverMapKeys(t *testing.T) {
	p := Normalize(RawProduct{
		AvailableSizes: []string{"L", "M"},
		Sizes:          map[string]int{"S": 1},
	})

	if got := p.AvailableSizes(); !reflect.DeepEqual(got, []string{"L", "M"}) {
		t.Fatalf("unexpected sizes %v", got)
	}
}

func TestNormalizeEmptyRepresentations(t *testing.T) {
	p := Normalize(RawProduct{ID: 4, Name: "Gift Card", Price: 1000})

	if p.Model != ModelFlat {
		t.Fatalf("expected flat model, got %s", p.Model)
	}
	if len(p.AvailableColors()) != 0 || len(p.AvailableSizes()) != 0 {
		t.Fatal("expected empty colors and sizes")
	}
	if p.Images != nil {
		t.Fatalf("expected no image set, got %v", p.Images)
	}
}
