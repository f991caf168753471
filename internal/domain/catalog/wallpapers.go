package catalog

import (
	"fmt"
	"net/url"
	"time"
)

// Wallpaper source identifiers.
const (
	WallpaperUnsplash = "unsplash"
	WallpaperPicsum   = "picsum"
	WallpaperBing     = "bing"
)

// DefaultWallpaperSource and DefaultWallpaperCategory apply when a request
// names neither.
const (
	DefaultWallpaperSource   = WallpaperUnsplash
	DefaultWallpaperCategory = "nature"
)

// PicsumStaticURL is the Bing fallback image.
const PicsumStaticURL = "https://picsum.photos/1920/1080"

// WallpaperSources lists the known sources.
func WallpaperSources() []string {
	return []string{WallpaperUnsplash, WallpaperPicsum, WallpaperBing}
}

// UnsplashURL returns a random Unsplash image for category. The timestamp
// defeats browser caching.
func UnsplashURL(category string, t time.Time) string {
	if category == "" {
		category = DefaultWallpaperCategory
	}
	return fmt.Sprintf("https://source.unsplash.com/1920x1080/?%s&t=%d", url.QueryEscape(category), t.UnixMilli())
}

// PicsumURL returns a random Picsum image.
func PicsumURL(t time.Time) string {
	return fmt.Sprintf("%s?t=%d", PicsumStaticURL, t.UnixMilli())
}
