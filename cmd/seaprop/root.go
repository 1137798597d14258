/*
Copyright © 2024 the seaprop authors.
This file is part of seaprop.

seaprop is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seaprop is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seaprop.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oceanmodel/seaprop/ocean"
)

// cfg holds the configuration assembled from flags, environment
// variables, and an optional configuration file.
var cfg = viper.New()

var root = &cobra.Command{
	Use:   "seaprop",
	Short: "Build and query ocean acoustic environments",
	Long: `seaprop builds an ocean environment, either an idealized isovelocity
ocean or one loaded from the standard ETOPO and World Ocean Atlas
databases, publishes it to the in-process registry, and samples or
plots the published environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if file := cfg.GetString("config"); file != "" {
			cfg.SetConfigFile(file)
			if err := cfg.ReadInConfig(); err != nil {
				return fmt.Errorf("reading configuration: %w", err)
			}
		}
		if cfg.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	pf := root.PersistentFlags()
	pf.String("config", "", "configuration file location")
	pf.Bool("verbose", false, "enable debug logging")
	pf.String("ocean", "iso", "environment to build: iso or basic")
	pf.String("data-dir", "data", "directory holding the standard databases")
	pf.Float64("depth", 1000, "water depth for the isovelocity ocean [m]")
	pf.Float64("bottom-loss", 0, "bottom reflection loss for the isovelocity ocean [dB]")
	pf.Float64("south", 35, "southern edge of the area of operations [deg]")
	pf.Float64("north", 37, "northern edge of the area of operations [deg]")
	pf.Float64("west", 15, "western edge of the area of operations [deg]")
	pf.Float64("east", 17, "eastern edge of the area of operations [deg]")
	pf.Int("month", 6, "month of the year for the ocean atlas profiles (1-12)")
	pf.Float64("wind", 5, "wind speed [m/s]")
	pf.String("bottom-type", "sand", "bottom sediment province for Rayleigh loss")
	cfg.SetEnvPrefix("SEAPROP")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	root.AddCommand(sampleCmd, plotCmd)
}

// buildOcean assembles and publishes the environment selected by the
// configuration.
func buildOcean() (*ocean.Ocean, error) {
	switch kind := cfg.GetString("ocean"); kind {
	case "iso":
		return ocean.MakeIso(cfg.GetFloat64("depth"), cfg.GetFloat64("bottom-loss"))
	case "basic":
		bottom, err := bottomTypeFromName(cfg.GetString("bottom-type"))
		if err != nil {
			return nil, err
		}
		return ocean.MakeBasic(
			cfg.GetString("data-dir"),
			cfg.GetFloat64("south"), cfg.GetFloat64("north"),
			cfg.GetFloat64("west"), cfg.GetFloat64("east"),
			cfg.GetInt("month"), cfg.GetFloat64("wind"), bottom)
	default:
		return nil, fmt.Errorf("unknown ocean kind %q: use iso or basic", kind)
	}
}

func bottomTypeFromName(name string) (ocean.BottomType, error) {
	for t := ocean.Clay; t <= ocean.Basalt; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown bottom type %q", name)
}
