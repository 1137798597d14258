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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/oceanmodel/seaprop/ocean"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the sound speed profile versus depth",
	RunE: func(cmd *cobra.Command, _ []string) error {
		o, err := buildOcean()
		if err != nil {
			return err
		}
		p := ocean.Position{
			Latitude:  cfg.GetFloat64("lat"),
			Longitude: cfg.GetFloat64("lon"),
		}
		bottom := -o.Bottom().Height(p, nil)
		n := cfg.GetInt("points")
		pts := make(plotter.XYs, n)
		for i := 0; i < n; i++ {
			depth := bottom * float64(i) / float64(n-1)
			p.Altitude = -depth
			pts[i].X = o.SoundSpeed(p, nil)
			pts[i].Y = -depth
		}

		pl := plot.New()
		pl.Title.Text = "Sound speed profile"
		pl.X.Label.Text = "sound speed [m/s]"
		pl.Y.Label.Text = "altitude [m]"
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		pl.Add(line, plotter.NewGrid())

		out := cfg.GetString("output")
		if err := pl.Save(4*vg.Inch, 6*vg.Inch, out); err != nil {
			return err
		}
		logrus.WithField("file", out).Info("wrote sound speed profile plot")
		return nil
	},
}

func init() {
	f := plotCmd.Flags()
	f.Float64("lat", 36, "profile latitude [deg]")
	f.Float64("lon", 16, "profile longitude [deg]")
	f.Int("points", 50, "number of profile points")
	f.String("output", "ssp.png", "output image file")
}
