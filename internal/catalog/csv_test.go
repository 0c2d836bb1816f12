package catalog

import (
	"strings"
	"testing"
)

func TestCSVLoader_Load(t *testing.T) {
	sheet := `id,name,price,originalPrice,image,description,category,rating,reviews,colors,sizes
10,Trail Bottle,19.50,24.00,https://example.com/b.jpg,Keeps water cold,Accessories,4.2,12,Blue;Green,500ml
,,,,,,,,,Red,750ml
11,Jump Rope,9.99,,,,Equipment,,,,`

	c, err := NewCSVLoader(strings.NewReader(sheet)).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", c.Len())
	}

	bottle, err := c.Get(10)
	if err != nil {
		t.Fatalf("get bottle: %v", err)
	}
	if bottle.PriceCents != 1950 || bottle.OriginalPriceCents != 2400 || bottle.Rating != 4.2 || bottle.Reviews != 12 {
		t.Fatalf("unexpected bottle %+v", bottle)
	}
	if len(bottle.Colors) != 3 || bottle.Colors[2] != "Red" {
		t.Fatalf("expected continuation color, got %v", bottle.Colors)
	}
	if len(bottle.Sizes) != 2 || bottle.Sizes[1] != "750ml" {
		t.Fatalf("expected continuation size, got %v", bottle.Sizes)
	}

	rope, err := c.Get(11)
	if err != nil {
		t.Fatalf("get rope: %v", err)
	}
	if rope.OriginalPriceCents != 0 || rope.Colors != nil || rope.Sizes != nil {
		t.Fatalf("expected rope without discount or variants, got %+v", rope)
	}
}

func TestCSVLoader_Errors(t *testing.T) {
	cases := map[string]string{
		"missing column":    "id,name\n1,x",
		"bad price":         "id,name,price\n1,x,abc",
		"bad id":            "id,name,price\nabc,x,1.00",
		"orphan row":        "id,name,price,colors\n,,,Red",
		"empty sheet":       "id,name,price\n",
		"duplicate product": "id,name,price\n1,x,1.00\n1,y,2.00",
	}
	for name, sheet := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewCSVLoader(strings.NewReader(sheet)).Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
