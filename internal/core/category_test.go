package core

import "testing"

func TestCatalogByMCC(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		name string
		code string
		want string
	}{
		{"known code", "5815", "Müzik"},
		{"merged name", "5814", "Yeme & İçme"},
		{"unknown code", "9999", "Diğer"},
		{"empty code", "", "Diğer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.ByMCC(tt.code).Name; got != tt.want {
				t.Errorf("ByMCC(%q).Name = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCatalogFallbackIsShared(t *testing.T) {
	cat := DefaultCatalog()
	if cat.ByMCC("") != cat.ByMCC("0042") {
		t.Error("unknown and empty codes must resolve to the same sentinel")
	}
	if cat.ByMCC("") != cat.Fallback() {
		t.Error("fallback mismatch")
	}
}

func TestCatalogNames(t *testing.T) {
	names := DefaultCatalog().Names()
	if len(names) == 0 {
		t.Fatal("no names")
	}
	seen := map[string]bool{}
	for i, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name %q", n)
		}
		seen[n] = true
		if i > 0 && names[i-1] > n {
			t.Fatalf("names not sorted: %q before %q", names[i-1], n)
		}
	}
	// 5812/5814 and 5732/5734 collapse into one entry each.
	if seen["Yeme & İçme"] == false || seen["Teknoloji"] == false {
		t.Error("expected merged category names present")
	}
}
