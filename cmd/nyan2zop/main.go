package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/staD020/nyan2zop"
)

var (
	cpuProfile string
	help       bool
)

func main() {
	t0 := time.Now()
	opt := initAndParseFlags()
	if !opt.Quiet {
		fmt.Fprintf(os.Stderr, "nyan2zop %v by burg\n", nyan2zop.Version)
	}
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile %q: %v", cpuProfile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}
	if help {
		flag.Usage()
		return
	}

	c, err := nyan2zop.NewFromPath(opt)
	if err != nil {
		log.Fatalf("NewFromPath failed: %v", err)
	}

	w := io.Writer(os.Stdout)
	if dest := nyan2zop.DestinationFilename(opt); dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			log.Fatalf("os.Create %q failed: %v", dest, err)
		}
		defer f.Close()
		w = f
	}
	if _, err = c.WriteTo(w); err != nil {
		log.Fatalf("WriteTo failed: %v", err)
	}

	if !opt.Quiet {
		fmt.Fprintf(os.Stderr, "transcoded %d frame(s)\n", len(c.Frames()))
		fmt.Fprintf(os.Stderr, "elapsed: %v\n", time.Since(t0))
	}
}

func initAndParseFlags() (opt nyan2zop.Options) {
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.BoolVar(&help, "h", false, "help")
	flag.BoolVar(&help, "help", false, "help")

	flag.BoolVar(&opt.Quiet, "q", false, "quiet")
	flag.BoolVar(&opt.Quiet, "quiet", false, "quiet, only display errors")
	flag.BoolVar(&opt.Verbose, "v", false, "verbose")
	flag.BoolVar(&opt.Verbose, "verbose", false, "verbose output")
	flag.StringVar(&opt.OutFile, "o", "", "out")
	flag.StringVar(&opt.OutFile, "out", "", "write the opcode stream to this file instead of stdout")
	flag.StringVar(&opt.TargetDir, "td", "", "targetdir")
	flag.StringVar(&opt.TargetDir, "targetdir", "", "specify targetdir")
	flag.StringVar(&opt.FramesDir, "frames", nyan2zop.DefaultFramesDir, "directory containing the frame<N>.txt files")
	flag.IntVar(&opt.FrameCount, "n", nyan2zop.DefaultFrameCount, "frame-count")
	flag.IntVar(&opt.FrameCount, "frame-count", nyan2zop.DefaultFrameCount, "number of frames to transcode")
	flag.Parse()
	return opt
}
