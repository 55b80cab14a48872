// csplot renders the centroidal trajectory of a contact-sequence file: COM
// height and each patch's vertical force over time, for eyeballing a
// locomotion plan before handing it to a controller.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/edaniels/golog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gaitworks/locomotion/contactsequence"
	"github.com/gaitworks/locomotion/locomotion"
)

const plotSamples = 400

func main() {
	if err := realMain(); err != nil {
		panic(err)
	}
}

func realMain() error {
	logger := golog.NewDebugLogger("csplot")

	mass := flag.Float64("mass", 90, "total robot mass in kg")
	patchArg := flag.String("patches", "RF_patch,LF_patch,RH_patch,LH_patch", "comma-separated patch names, in control column order")
	out := flag.String("out", "centroidal.png", "output image path")
	flag.Parse()
	if len(flag.Args()) == 0 {
		return fmt.Errorf("need a contact sequence json file")
	}

	cs, err := contactsequence.ParseJSONFile(flag.Arg(0))
	if err != nil {
		return err
	}

	var patches []locomotion.ContactPatch
	for _, name := range strings.Split(*patchArg, ",") {
		patches = append(patches, locomotion.ContactPatch{Name: name})
	}

	ct, err := locomotion.BuildCentroidalTrajectory(cs, *mass, patches, logger)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "centroidal trajectory"
	p.X.Label.Text = "time [s]"

	comLine, err := sampleLine(ct.ComVcom.StartTime(), ct.ComVcom.EndTime(), func(t float64) (float64, error) {
		vals, err := ct.ComVcom.Evaluate(t)
		if err != nil {
			return 0, err
		}
		return vals[2], nil
	})
	if err != nil {
		return err
	}
	comLine.Width = vg.Points(2)
	p.Add(comLine)
	p.Legend.Add("com z [m]", comLine)

	for i, name := range ct.PatchNames() {
		force, err := ct.Force(name)
		if err != nil {
			return err
		}
		forceLine, err := sampleLine(force.StartTime(), force.EndTime(), func(t float64) (float64, error) {
			vals, err := force.Evaluate(t)
			if err != nil {
				return 0, err
			}
			return vals[2], nil
		})
		if err != nil {
			return err
		}
		forceLine.Color = plotutil.Color(i)
		p.Add(forceLine)
		p.Legend.Add(name+" fz [N]", forceLine)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		return err
	}
	logger.Infof("wrote %s", *out)
	return nil
}

func sampleLine(start, end float64, f func(float64) (float64, error)) (*plotter.Line, error) {
	pts := make(plotter.XYs, plotSamples)
	step := (end - start) / float64(plotSamples-1)
	for i := range pts {
		t := start + float64(i)*step
		if i == plotSamples-1 {
			t = end
		}
		y, err := f(t)
		if err != nil {
			return nil, err
		}
		pts[i].X = t
		pts[i].Y = y
	}
	return plotter.NewLine(pts)
}
