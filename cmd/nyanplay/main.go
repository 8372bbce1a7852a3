package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/staD020/nyan2zop"
)

var help bool

func main() {
	opt := initAndParseFlags()
	if help {
		fmt.Fprintf(os.Stderr, "nyanplay %v by burg\n", nyan2zop.Version)
		flag.Usage()
		return
	}

	p, err := nyan2zop.NewPlayerFromPath(opt)
	if err != nil {
		log.Fatalf("NewPlayerFromPath failed: %v", err)
	}
	if err = p.Run(); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

func initAndParseFlags() (opt nyan2zop.Options) {
	flag.BoolVar(&help, "h", false, "help")
	flag.BoolVar(&help, "help", false, "help")
	flag.StringVar(&opt.FramesDir, "frames", nyan2zop.DefaultFramesDir, "directory containing the frame<N>.txt files")
	flag.IntVar(&opt.FrameCount, "n", nyan2zop.DefaultFrameCount, "frame-count")
	flag.IntVar(&opt.FrameCount, "frame-count", nyan2zop.DefaultFrameCount, "number of frames to play")
	flag.IntVar(&opt.FrameDelay, "frame-delay", nyan2zop.DefaultFrameDelay, "frames to wait before displaying next animation frame")
	flag.Parse()
	opt.Quiet = true
	return opt
}
