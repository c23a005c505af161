package main

import (
	"fmt"
	"os"

	"github.com/chaos-io/logoforge/icon"
	"github.com/chaos-io/logoforge/logo"
	"github.com/chaos-io/logoforge/util"
)

func main() {
	inputPath := "public/logo_circuit_s.png" // 可用第一个参数替换
	outputDir := "public"                    // 可用第二个参数替换，目录必须已存在
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outputDir = os.Args[2]
	}

	if err := run(inputPath, outputDir); err != nil {
		fmt.Printf("Error processing logo: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputDir string) error {
	defer util.Trace("process logo")()

	img, err := logo.Load(inputPath)
	if err != nil {
		return err
	}

	master, err := logo.NewProcessor().Process(img)
	if err != nil {
		return fmt.Errorf("process image: %w", err)
	}

	return icon.NewExporter(outputDir).Export(master)
}
