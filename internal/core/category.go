package core

import "sort"

// Category is a display category resolved from a merchant category code.
type Category struct {
	Code  string
	Name  string
	Icon  string // Lucide icon name
	Color string // hex color
}

// Catalog maps merchant category codes to display categories. It is plain
// configuration data injected at construction so tests can swap tables; the
// fallback is the single shared sentinel for unknown or missing codes.
type Catalog struct {
	byCode   map[string]Category
	fallback Category
}

// NewCatalog builds a catalog from the given categories, keyed by code.
func NewCatalog(categories []Category, fallback Category) Catalog {
	byCode := make(map[string]Category, len(categories))
	for _, c := range categories {
		byCode[c.Code] = c
	}
	return Catalog{byCode: byCode, fallback: fallback}
}

// ByMCC resolves a merchant category code. Unknown and empty codes both map
// to the fallback category.
func (c Catalog) ByMCC(code string) Category {
	if code == "" {
		return c.fallback
	}
	if cat, ok := c.byCode[code]; ok {
		return cat
	}
	return c.fallback
}

// Fallback returns the catalog's sentinel category.
func (c Catalog) Fallback() Category { return c.fallback }

// Names returns the distinct category names, sorted. Several codes can share
// one name (5812 and 5814 are both "Yeme & İçme").
func (c Catalog) Names() []string {
	seen := make(map[string]struct{}, len(c.byCode))
	names := make([]string, 0, len(c.byCode))
	for _, cat := range c.byCode {
		if _, ok := seen[cat.Name]; ok {
			continue
		}
		seen[cat.Name] = struct{}{}
		names = append(names, cat.Name)
	}
	sort.Strings(names)
	return names
}

// DefaultCatalog returns the built-in MCC table for Turkish card schemes.
func DefaultCatalog() Catalog {
	return NewCatalog([]Category{
		{Code: "4899", Name: "Dijital İçerik", Icon: "Play", Color: "#E50914"},
		{Code: "5411", Name: "Market", Icon: "ShoppingCart", Color: "#10B981"},
		{Code: "5541", Name: "Akaryakıt", Icon: "Fuel", Color: "#F59E0B"},
		{Code: "5651", Name: "Giyim", Icon: "Shirt", Color: "#EC4899"},
		{Code: "5732", Name: "Teknoloji", Icon: "Laptop", Color: "#0EA5E9"},
		{Code: "5734", Name: "Teknoloji", Icon: "Code", Color: "#6366F1"},
		{Code: "5735", Name: "Apple", Icon: "Smartphone", Color: "#A1A1AA"},
		{Code: "5812", Name: "Yeme & İçme", Icon: "UtensilsCrossed", Color: "#F97316"},
		{Code: "5814", Name: "Yeme & İçme", Icon: "Coffee", Color: "#F97316"},
		{Code: "5815", Name: "Müzik", Icon: "Music", Color: "#1DB954"},
		{Code: "5818", Name: "Eğitim", Icon: "GraduationCap", Color: "#8B5CF6"},
		{Code: "5912", Name: "Kişisel Bakım", Icon: "Heart", Color: "#F472B6"},
		{Code: "5942", Name: "Kitap & Hobi", Icon: "BookOpen", Color: "#A855F7"},
		{Code: "5968", Name: "Abonelik", Icon: "RotateCw", Color: "#06B6D4"},
		{Code: "7922", Name: "Eğlence", Icon: "Ticket", Color: "#EF4444"},
		{Code: "3000", Name: "Havayolu", Icon: "Plane", Color: "#DC2626"},
		{Code: "5311", Name: "E-Ticaret", Icon: "Package", Color: "#F97316"},
		{Code: "5941", Name: "Spor", Icon: "Dumbbell", Color: "#14B8A6"},
	}, Category{Code: "0000", Name: "Diğer", Icon: "CircleDot", Color: "#6B7280"})
}
