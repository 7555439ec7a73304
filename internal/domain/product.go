package domain

import (
	"time"
)

// Product type constants. "nil" is the unset default carried over from the
// original catalog schema.
const (
	ProductTypeSmall  = "small"
	ProductTypeMedium = "medium"
	ProductTypeLarge  = "large"
	ProductTypeNil    = "nil"
)

// MaxImagesPerProduct is the maximum number of image files accepted on creation.
const MaxImagesPerProduct = 5

// AllowedImageContentTypes restricts uploads to jpg/jpeg/png.
var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Size holds the physical dimensions of a product. Each dimension is a
// non-negative number.
type Size struct {
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
}

// Product represents a product in the catalog.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Images    []string  `json:"images"`
	Size      Size      `json:"size"`
	Type      string    `json:"type"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidTypes returns the set of valid product types.
func ValidTypes() []string {
	return []string{ProductTypeSmall, ProductTypeMedium, ProductTypeLarge, ProductTypeNil}
}

// IsValidType checks whether the given type string is a valid product type.
func IsValidType(t string) bool {
	for _, v := range ValidTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// IsAllowedImageContentType checks whether the given content type may be
// relayed to the media store.
func IsAllowedImageContentType(contentType string) bool {
	return AllowedImageContentTypes[contentType]
}
