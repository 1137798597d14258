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
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oceanmodel/seaprop/grid"
	"github.com/oceanmodel/seaprop/ocean"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample the environment at one position",
	RunE: func(cmd *cobra.Command, _ []string) error {
		o, err := buildOcean()
		if err != nil {
			return err
		}
		p := ocean.Position{
			Latitude:  cfg.GetFloat64("lat"),
			Longitude: cfg.GetFloat64("lon"),
			Altitude:  -cfg.GetFloat64("sample-depth"),
		}
		freq, err := grid.NewLog(
			cfg.GetFloat64("fmin"),
			math.Pow(cfg.GetFloat64("fmax")/cfg.GetFloat64("fmin"), 1/float64(cfg.GetInt("nfreq")-1)),
			cfg.GetInt("nfreq"))
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"lat": p.Latitude, "lon": p.Longitude, "depth": p.Depth(),
		}).Info("sampling published ocean")

		grad := make([]float64, 3)
		speed := o.SoundSpeed(p, grad)
		fmt.Printf("sound speed: %.2f m/s (dc/dz %.4f 1/s)\n", speed, grad[0])
		fmt.Printf("bottom: %.1f m\n", o.Bottom().Height(p, nil))
		fmt.Printf("surface: %.1f m\n", o.Surface().Height(p, nil))

		n := freq.Size()
		loss := make([]float64, n)
		atten := make([]float64, n)
		o.Bottom().ReflectLoss(p, freq, 45*math.Pi/180, loss, nil)
		o.Attenuate(p, freq, 1000, atten)
		var noise []float64
		if o.Ambient() != nil {
			noise = make([]float64, n)
			o.Ambient().Ambient(p, freq, noise)
		}
		for i := 0; i < n; i++ {
			line := fmt.Sprintf("f %8.1f Hz  bottom loss %6.2f dB  attenuation %8.4f dB/km",
				freq.Value(i), loss[i], atten[i])
			if noise != nil {
				line += fmt.Sprintf("  ambient %6.1f dB", noise[i])
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	f := sampleCmd.Flags()
	f.Float64("lat", 36, "sample latitude [deg]")
	f.Float64("lon", 16, "sample longitude [deg]")
	f.Float64("sample-depth", 100, "sample depth [m]")
	f.Float64("fmin", 100, "lowest frequency [Hz]")
	f.Float64("fmax", 10000, "highest frequency [Hz]")
	f.Int("nfreq", 5, "number of frequencies")
}
