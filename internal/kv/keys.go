package kv

import "strings"

// Kind identifies the entity type a key belongs to.
type Kind string

const (
	KindUnknown     Kind = ""
	KindGallery     Kind = "gallery"
	KindOrder       Kind = "order"
	KindOrderImages Kind = "order_images"
)

const (
	GalleryPrefix     = "gallery_"
	OrderPrefix       = "order_"
	OrderImagesPrefix = "order_images_"
)

// prefixes is ordered longest first so Classify resolves overlapping
// prefixes ("order_images_" vs "order_") to the most specific kind.
var prefixes = []struct {
	prefix string
	kind   Kind
}{
	{OrderImagesPrefix, KindOrderImages},
	{GalleryPrefix, KindGallery},
	{OrderPrefix, KindOrder},
}

func GalleryKey(id string) string {
	return GalleryPrefix + id
}

// OrderKey returns the storage key of an order. Order ids are generated with
// the order prefix already applied, so the id is the key.
func OrderKey(orderID string) string {
	return orderID
}

func OrderImagesKey(orderID string) string {
	return OrderImagesPrefix + orderID
}

// PrefixFor returns the scan prefix for a kind.
func PrefixFor(kind Kind) string {
	for _, p := range prefixes {
		if p.kind == kind {
			return p.prefix
		}
	}
	return ""
}

// Classify returns the kind of key using the longest matching prefix.
func Classify(key string) Kind {
	for _, p := range prefixes {
		if strings.HasPrefix(key, p.prefix) {
			return p.kind
		}
	}
	return KindUnknown
}

// FilterKind keeps only the entries whose key classifies as kind. Prefix scans
// for "order_" also return "order_images_" keys; this drops them.
func FilterKind(entries []Entry, kind Kind) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if Classify(e.Key) == kind {
			out = append(out, e)
		}
	}
	return out
}

// EscapeLike escapes the SQL LIKE metacharacters in s using backslash, so the
// result can be used with ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
