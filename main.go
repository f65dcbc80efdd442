package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bobleesj/sasmodels/internal/config"
	"github.com/bobleesj/sasmodels/internal/kernel"
	"github.com/bobleesj/sasmodels/internal/quadrature"
	"github.com/bobleesj/sasmodels/internal/utils"
)

type output struct {
	saveFlag    *bool
	fileSuffix  string
	columnNames []string
	data        *[]float64

	// channel-selective polarization efficiencies; the configured
	// efficiencies are used when override is false
	upI, upF float64
	override bool
}

func main() {
	var intensity []float64
	var uuCurve []float64
	var ddCurve []float64
	var udCurve []float64
	var duCurve []float64

	outputs := map[string]output{
		"Polarized intensity": {
			saveFlag:    flag.Bool("iq", true, "save the 1D intensity with the configured polarization efficiencies"),
			fileSuffix:  "iq",
			columnNames: []string{"q (A^-1)", "I (cm^-1)"},
			data:        &intensity,
		},
		"Non-spin-flip uu": {
			saveFlag:    flag.Bool("uu", false, "save the uu non-spin-flip 1D cross section"),
			fileSuffix:  "uu",
			columnNames: []string{"q (A^-1)", "I_uu (cm^-1)"},
			data:        &uuCurve,
			upI:         1., upF: 1., override: true,
		},
		"Non-spin-flip dd": {
			saveFlag:    flag.Bool("dd", false, "save the dd non-spin-flip 1D cross section"),
			fileSuffix:  "dd",
			columnNames: []string{"q (A^-1)", "I_dd (cm^-1)"},
			data:        &ddCurve,
			upI:         0., upF: 0., override: true,
		},
		"Spin-flip ud": {
			saveFlag:    flag.Bool("ud", false, "save the ud spin-flip 1D cross section"),
			fileSuffix:  "ud",
			columnNames: []string{"q (A^-1)", "I_ud (cm^-1)"},
			data:        &udCurve,
			upI:         1., upF: 0., override: true,
		},
		"Spin-flip du": {
			saveFlag:    flag.Bool("du", false, "save the du spin-flip 1D cross section"),
			fileSuffix:  "du",
			columnNames: []string{"q (A^-1)", "I_du (cm^-1)"},
			data:        &duCurve,
			upI:         0., upF: 1., override: true,
		},
	}
	var saveMap = flag.Bool("map", false, "save the 2D detector map with the configured polarization efficiencies")
	var nodes = flag.Int("nodes", quadrature.DefaultNodes, "Gauss-Legendre nodes per quadrature pass")
	var configFileNamePointer = flag.String("input", "models", "model configuration in toml format")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")

	cfg, meta, err := config.LoadConfig(configFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath += cfg.OutputDir + "/"
	}

	grid := quadrature.New(*nodes)
	threads := runtime.NumCPU()
	var summary utils.CSV

	for modelName, parameters := range cfg.Models {
		fmt.Println("\n" + modelName)
		if err := parameters.CheckDefaults(modelName, &cfg, &meta); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		var qs []float64
		if parameters.LogQ {
			qs = utils.Logspace(parameters.QMin, parameters.QMax, parameters.QPoints)
		} else {
			qs = utils.Linspace(parameters.QMin, parameters.QMax, parameters.QPoints)
		}

		for _, output := range outputs {
			if *output.saveFlag {
				*output.data = make([]float64, len(qs))
			}
		}

		p := parameters.Kernel()
		var curveWg sync.WaitGroup
		jobs := make(chan int, len(qs))
		for w := 0; w < threads; w++ {
			curveWg.Add(1)
			go func() {
				defer curveWg.Done()
				for i := range jobs {
					for _, output := range outputs {
						if !*output.saveFlag {
							continue
						}
						pc := p
						if output.override {
							pc.UpI, pc.UpF = output.upI, output.upF
						}
						(*output.data)[i] = kernel.Iq(qs[i], pc, grid)
					}
				}
			}()
		}
		for i := range qs {
			jobs <- i
		}
		close(jobs)
		curveWg.Wait()

		for name, output := range outputs {
			if !*output.saveFlag {
				continue
			}
			rows := make([][]string, 0, len(qs))
			for i := range qs {
				rows = append(rows, []string{
					strconv.FormatFloat(qs[i], 'g', -1, 64),
					strconv.FormatFloat((*output.data)[i], 'g', -1, 64),
				})
			}
			if err := utils.WriteRows(rows, parameters.MakeDir, outputPath, modelName, output.fileSuffix, output.columnNames); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Println(name + " saved")
		}
		if len(intensity) > 0 {
			fmt.Printf("mean I(q): %g cm^-1\n", utils.Average(intensity))
			summary = append(summary, []string{
				modelName,
				strconv.FormatFloat(utils.Average(intensity), 'g', -1, 64),
				strconv.FormatFloat(kernel.FormVolume(p.Radius, p.Thickness), 'g', -1, 64),
				strconv.FormatFloat(kernel.EffectiveRadius(1, p.Radius, p.Thickness), 'g', -1, 64),
				strconv.FormatFloat(kernel.EffectiveRadius(2, p.Radius, p.Thickness), 'g', -1, 64),
			})
		}

		if *saveMap {
			if err := saveDetectorMap(parameters, p, grid, threads, outputPath, modelName); err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Println("Detector map saved")
			}
		}
	}

	if len(summary) > 0 {
		err := utils.WriteAsCSV(summary, false, outputPath, "models", "summary",
			[]string{"model", "mean I (cm^-1)", "V (A^3)", "R_eff outer (A)", "R_eff core (A)"})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

func saveDetectorMap(parameters config.ModelParameters, p kernel.Parameters, grid quadrature.Grid, threads int, outputPath, modelName string) error {
	n := parameters.MapPoints
	axis := utils.Linspace(-parameters.QMapMax, parameters.QMapMax, n)
	values := make([]float64, n*n)

	var mapWg sync.WaitGroup
	rows := make(chan int, n)
	for w := 0; w < threads; w++ {
		mapWg.Add(1)
		go func() {
			defer mapWg.Done()
			for iy := range rows {
				for ix := 0; ix < n; ix++ {
					values[iy*n+ix] = kernel.Iqxy(axis[ix], axis[iy], p, grid)
				}
			}
		}()
	}
	for iy := 0; iy < n; iy++ {
		rows <- iy
	}
	close(rows)
	mapWg.Wait()

	data := make([][]string, 0, n*n)
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			data = append(data, []string{
				strconv.FormatFloat(axis[ix], 'g', -1, 64),
				strconv.FormatFloat(axis[iy], 'g', -1, 64),
				strconv.FormatFloat(values[iy*n+ix], 'g', -1, 64),
			})
		}
	}
	return utils.WriteRows(data, parameters.MakeDir, outputPath, modelName, "map",
		[]string{"qx (A^-1)", "qy (A^-1)", "I (cm^-1)"})
}
