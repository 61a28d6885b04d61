package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	MT "github.com/forminitri/forMiniTriGo"
	"github.com/forminitri/forMiniTriGo/GraphBLAS"
	"github.com/intel/forGraphBLASGo/GrB"
	"github.com/rs/zerolog/log"
)

var presorts = map[string]MT.Presort{
	"none": MT.NoSort,
	"asc":  MT.SortByDegreeAscending,
	"desc": MT.SortByDegreeDescending,
	"auto": MT.AutoSelectSort,
}

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	var cpuprofile, memprofile, presortName string
	var threads int
	var verify, printTriangles, verbose, noColour bool
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional output file for a cpu profile")
	flag.StringVar(&memprofile, "memprofile", "", "optional output file for a mem profile")
	flag.StringVar(&presortName, "presort", "none", "relabel vertices by degree: none, asc, desc or auto")
	flag.IntVar(&threads, "threads", runtime.NumCPU(), "number of threads")
	flag.BoolVar(&verify, "verify", false, "cross-check the triangle count with GraphBLAS")
	flag.BoolVar(&printTriangles, "triangles", false, "print every triangle")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&noColour, "nocolour", false, "disable coloured log output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] mat.mtx\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	setLogger(verbose, noColour)

	if threads < 1 {
		log.Fatal().Int("threads", threads).Msg("Invalid thread count.")
	}
	runtime.GOMAXPROCS(threads)
	presort, ok := presorts[strings.ToLower(presortName)]
	if !ok {
		log.Fatal().Str("presort", presortName).Msg("Unknown presort.")
	}

	G, err := MT.ReadProblem(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("could not read problem")
	}
	G = G.Presorted(&presort)

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	tic := time.Now()
	G.TriangleEnumerate()
	toc := time.Now()
	log.Info().Dur("duration", toc.Sub(tic)).Msg("triangle enumeration")
	tic = toc
	G.OrderTriangles()
	G.CalculateTriangleDegrees()
	G.CalculateKCounts()
	log.Info().Dur("duration", time.Since(tic)).Msg("k-counts")

	fmt.Println("Number of Triangles:", G.NumTriangles())
	if printTriangles {
		for _, t := range G.Triangles() {
			fmt.Println(t[0], t[1], t[2])
		}
	}
	fmt.Println("K-Counts:")
	for k, c := range G.KCounts() {
		if k >= 3 {
			fmt.Printf("K[%v] = %v\n", k, c)
		}
	}

	if verify {
		nt, err := verifyTriangleCount(G.A)
		if err != nil {
			log.Error().Err(err).Msg("GraphBLAS triangle count failed")
			exitCode = 1
		} else if nt != G.NumTriangles() {
			log.Error().Int("graphblas", nt).Int("minitri", G.NumTriangles()).Msg("triangle counts differ")
			exitCode = 1
		} else {
			log.Info().Int("triangles", nt).Msg("GraphBLAS triangle count agrees")
		}
	}

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()
		runtime.GC()
		if err = pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
	return
}

func verifyTriangleCount(A *MT.Pattern) (nt int, err error) {
	if err = GraphBLAS.Init(GrB.NonBlocking); err != nil {
		return
	}
	defer func() {
		if e := GraphBLAS.Finalize(); e != nil && err == nil {
			err = e
		}
	}()
	return GraphBLAS.TriangleCount(A, GraphBLAS.SandiaDot)
}
