package config

import (
	"github.com/goodsign/monday"
	"github.com/spf13/viper"
)

var (
	KeyContentDirectory = "content.directory"
	KeyMediaDirectory   = "content.media"
	KeyMediaPrefix      = "serve.media_prefix"
	KeyListenAddress    = "serve.listen"
	KeySiteURL          = "site.url"
	KeyDateLocale       = "site.locale"
	KeyLogLevel         = "log.level"
	KeyLogDevelopment   = "log.development"
	KeyJPEGQuality      = "images.jpeg_quality"
	KeySizePreset       = "images.preset"
	KeyMaxImageWidth    = "images.max_width"
	KeyEditor           = "tools.editor"
)

// SetDefaults registers the fallback values for every key.
func SetDefaults() {
	viper.SetDefault(KeyMediaDirectory, "images")
	viper.SetDefault(KeyMediaPrefix, "/media")
	viper.SetDefault(KeyListenAddress, ":8000")
	viper.SetDefault(KeyDateLocale, string(monday.LocaleEnUS))
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogDevelopment, false)
	viper.SetDefault(KeyJPEGQuality, 90)
	viper.SetDefault(KeySizePreset, "medium")
	viper.SetDefault(KeyMaxImageWidth, 2000)
}

func HasContentDirectory() bool {
	return viper.IsSet(KeyContentDirectory)
}

func ContentDirectory() string {
	return viper.GetString(KeyContentDirectory)
}

// MediaDirectory is the directory, relative to a post, that imported images
// are copied to.
func MediaDirectory() string {
	return viper.GetString(KeyMediaDirectory)
}

func MediaPrefix() string {
	return viper.GetString(KeyMediaPrefix)
}

func ListenAddress() string {
	return viper.GetString(KeyListenAddress)
}

func SiteURL() string {
	return viper.GetString(KeySiteURL)
}

// DateLocale returns the configured locale, falling back to en_US for
// unknown names.
func DateLocale() monday.Locale {
	locale := monday.Locale(viper.GetString(KeyDateLocale))
	for _, l := range monday.ListLocales() {
		if l == locale {
			return locale
		}
	}

	return monday.LocaleEnUS
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func LogDevelopment() bool {
	return viper.GetBool(KeyLogDevelopment)
}

func JPEGQuality() int {
	return viper.GetInt(KeyJPEGQuality)
}

func SizePreset() string {
	return viper.GetString(KeySizePreset)
}

// MaxImageWidth is the width imported images are scaled down to. Zero
// copies them unchanged.
func MaxImageWidth() int {
	return viper.GetInt(KeyMaxImageWidth)
}

// Editor is the configured editor command, empty when unset.
func Editor() string {
	return viper.GetString(KeyEditor)
}
