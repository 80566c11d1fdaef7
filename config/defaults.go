package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Identifier defaults match the CommunityToolkit MVVM + WinForms pairing
	v.SetDefault("identifiers.annotation", "CommunityToolkit.Mvvm.ComponentModel.MVVMFormAttribute")
	v.SetDefault("identifiers.form_base", "System.Windows.Forms.Form")
	v.SetDefault("identifiers.observable_base", "CommunityToolkit.Mvvm.ComponentModel.ObservableObject")

	// Emit defaults
	v.SetDefault("emit.extension", "cs")
	v.SetDefault("emit.line_ending", LineEndingCRLF)
	v.SetDefault("emit.property", "VMDataContext")
	v.SetDefault("emit.member", "DataContext")

	// Pipeline defaults
	v.SetDefault("pipeline.workers", 4)
	v.SetDefault("pipeline.max_ancestry_depth", 64)

	// Output defaults
	v.SetDefault("output.dir", "")
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}
