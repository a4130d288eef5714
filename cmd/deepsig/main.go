// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command deepsig tests whether one model's evaluation scores are
// significantly better than another's. It reads score files, groups
// scores by model, and runs a distribution-free significance test over
// the models found. If no inputs are provided, it reads from stdin.
//
// Each input line holds an optional model name and one score:
//
//	baseline 0.712
//	tuned 0.731
//	0.724
//
// Lines without a model name belong to a model named after the input
// file. Higher scores are better, and models are compared in the order
// they first appear.
//
// The default test reports the epsilon bound of almost stochastic
// order for each ordered pair: values below 0.5 support the claim that
// the first model dominates the second, and values near 0 indicate
// clear superiority. The bootstrap and permutation tests instead
// report one-sided p-values for the chosen statistic. With more than
// two models, every ordered pair is tested and the results are
// Bonferroni corrected.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/kogolobo/deep-significance/scorefmt"
	"github.com/kogolobo/deep-significance/sigstat"
)

func usage() {
	// Note: Keep this in sync with the package doc.
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [inputs...]

deepsig tests whether one model's evaluation scores are significantly
better than another's. It reads score files, groups scores by model,
and runs a distribution-free significance test over the models found.
If no inputs are provided, it reads from stdin.

Each input line holds an optional model name and one score:

	baseline 0.712
	tuned 0.731
	0.724

Lines without a model name belong to a model named after the input
file. Higher scores are better, and models are compared in the order
they first appear.

The default test reports the epsilon bound of almost stochastic order
for each ordered pair: values below 0.5 support the claim that the
first model dominates the second, and values near 0 indicate clear
superiority. The bootstrap and permutation tests instead report
one-sided p-values for the chosen statistic. With more than two
models, every ordered pair is tested and the results are Bonferroni
corrected.
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("deepsig: ")
	log.SetFlags(0)

	flag.Usage = usage
	flagTest := flag.String("test", "aso", "significance `test` to run: aso, bootstrap, or permutation")
	flagStat := flag.String("stat", "mean", "test `statistic` for bootstrap and permutation: mean or median")
	flagAlpha := flag.Float64("alpha", 0.05, "significance `level` in (0, 1)")
	flagIter := flag.Int("iter", 1000, "number of bootstrap or permutation `iterations`")
	flagResample := flag.Int("resample", 0, "bootstrap resample `size` (0 means each sample's own size)")
	flagSeed := flag.Uint64("seed", 0, "base random `seed` (0 picks a random seed)")
	flagWorkers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of parallel `workers`")
	flag.Parse()

	var stat sigstat.Statistic
	switch *flagStat {
	case "mean":
		stat = sigstat.MeanDiff
	case "median":
		stat = sigstat.MedianDiff
	default:
		log.Fatalf("unknown -stat %q; want mean or median", *flagStat)
	}
	switch *flagTest {
	case "aso", "bootstrap", "permutation":
	default:
		log.Fatalf("unknown -test %q; want aso, bootstrap, or permutation", *flagTest)
	}
	if !(*flagAlpha > 0 && *flagAlpha < 1) {
		log.Fatalf("-alpha must be in (0, 1); have %v", *flagAlpha)
	}

	files := scorefmt.Files{Paths: flag.Args(), AllowStdin: true}
	set, syntaxErrs, err := files.ReadAll()
	if err != nil {
		log.Fatal(err)
	}
	for _, err := range syntaxErrs {
		// Non-fatal line parse error. Warn but keep going.
		fmt.Fprintln(os.Stderr, err)
	}
	if set.Len() < 2 {
		log.Fatalf("need scores for at least two models; have %d", set.Len())
	}

	models := make([]sigstat.Model, set.Len())
	for i, name := range set.Models() {
		s, err := sigstat.NewSample(set.Scores(name))
		if err != nil {
			log.Fatalf("model %s: %v", name, err)
		}
		models[i] = sigstat.Model{Name: name, Sample: s}
	}

	opts := &sigstat.Options{
		ConfidenceLevel: *flagAlpha,
		Iterations:      *flagIter,
		ResampleSize:    *flagResample,
		Seed:            *flagSeed,
		Workers:         *flagWorkers,
	}

	switch *flagTest {
	case "aso":
		runASO(models, opts)
	case "bootstrap":
		runPairTest(models, sigstat.BootstrapTest, "bootstrap", stat, opts, *flagAlpha)
	case "permutation":
		runPairTest(models, sigstat.PermutationTest, "permutation", stat, opts, *flagAlpha)
	}
}

func runASO(models []sigstat.Model, opts *sigstat.Options) {
	if len(models) == 2 {
		res, err := sigstat.ASO(models[0].Sample, models[1].Sample, opts)
		if err != nil {
			log.Fatal(err)
		}
		printWarnings(res.Warnings)
		fmt.Printf("%s > %s: %s\n", models[0].Name, models[1].Name, res)
		if res.EpsMin < 0.5 {
			fmt.Printf("%s almost stochastically dominates %s (eps < 0.5)\n", models[0].Name, models[1].Name)
		} else {
			fmt.Printf("no evidence that %s dominates %s (eps >= 0.5)\n", models[0].Name, models[1].Name)
		}
		return
	}

	mat, err := sigstat.MultiASO(models, opts)
	if err != nil {
		log.Fatal(err)
	}
	printWarnings(mat.Warnings)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "eps")
	for _, name := range mat.Models {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)
	for i, name := range mat.Models {
		fmt.Fprint(w, name)
		for j := range mat.Models {
			if i == j {
				fmt.Fprint(w, "\t-")
			} else {
				fmt.Fprintf(w, "\t%.3f", mat.At(i, j))
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		log.Fatal("writing output: ", err)
	}
	pairs := len(mat.Models) * (len(mat.Models) - 1)
	fmt.Printf("rows dominate columns where eps < 0.5; per-pair alpha %.4g over %d ordered pairs\n", mat.Alpha, pairs)
}

type pairTest func(a, b *sigstat.Sample, stat sigstat.Statistic, opts *sigstat.Options) (*sigstat.TestResult, error)

func runPairTest(models []sigstat.Model, run pairTest, testName string, stat sigstat.Statistic, opts *sigstat.Options, alpha float64) {
	if len(models) == 2 {
		res, err := run(models[0].Sample, models[1].Sample, stat, opts)
		if err != nil {
			log.Fatal(err)
		}
		printWarnings(res.Warnings)
		fmt.Printf("%s > %s: %s\n", models[0].Name, models[1].Name, res)
		if res.P < alpha {
			fmt.Printf("%s outperforms %s (%s test, p < %v)\n", models[0].Name, models[1].Name, testName, alpha)
		} else {
			fmt.Printf("no significant advantage for %s over %s (%s test, p >= %v)\n", models[0].Name, models[1].Name, testName, alpha)
		}
		return
	}

	// Every ordered pair gets its own slice of the seed space so the
	// whole table is reproducible from the one base seed.
	type pairResult struct {
		a, b string
		res  *sigstat.TestResult
	}
	var pairs []pairResult
	var pvalues []float64
	seen := make(map[string]bool)
	for i := range models {
		for j := range models {
			if i == j {
				continue
			}
			po := *opts
			if po.Seed != 0 {
				po.Seed = opts.Seed + uint64(len(pairs))*uint64(opts.Iterations+1)
			}
			res, err := run(models[i].Sample, models[j].Sample, stat, &po)
			if err != nil {
				log.Fatalf("%s > %s: %v", models[i].Name, models[j].Name, err)
			}
			for _, warn := range res.Warnings {
				if !seen[warn.Error()] {
					seen[warn.Error()] = true
					fmt.Fprintln(os.Stderr, warn)
				}
			}
			pairs = append(pairs, pairResult{models[i].Name, models[j].Name, res})
			pvalues = append(pvalues, res.P)
		}
	}

	adjusted, err := sigstat.BonferroniAdjust(pvalues)
	if err != nil {
		log.Fatal(err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "pair\t%s\tp\tp(bonf)\n", stat.Name())
	for i, pr := range pairs {
		mark := ""
		if adjusted[i] < alpha {
			mark = " *"
		}
		fmt.Fprintf(w, "%s > %s\t%.3f\t%.3f\t%.3f%s\n", pr.a, pr.b, pr.res.Value, pr.res.P, adjusted[i], mark)
	}
	if err := w.Flush(); err != nil {
		log.Fatal("writing output: ", err)
	}
	fmt.Printf("* rejects at alpha %v after Bonferroni correction over %d ordered pairs\n", alpha, len(pairs))
}

func printWarnings(warnings []error) {
	for _, warn := range warnings {
		fmt.Fprintln(os.Stderr, warn)
	}
}
