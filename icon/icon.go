// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/anisan-cli/reel/key"
	"github.com/spf13/viper"
)

// Variants
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef maps a variant to its rendering.
type iconDef map[string]string

// Get renders i in the configured variant. Unknown variants render as "".
func Get(i Icon) string {
	return icons[i][viper.GetString(key.IconsVariant)]
}
