package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"github.com/kaelbran/nescore/pkg/cartridge"
	"github.com/kaelbran/nescore/pkg/gui"
	"github.com/kaelbran/nescore/pkg/logger"
	"github.com/kaelbran/nescore/pkg/nes"
)

func main() {
	var (
		cpuLog     = flag.Bool("cpu-log", false, "Enable CPU instruction logging")
		ppuLog     = flag.Bool("ppu-log", false, "Enable PPU logging")
		apuLog     = flag.Bool("apu-log", false, "Enable APU logging")
		mapperLog  = flag.Bool("mapper-log", false, "Enable mapper logging")
		headless   = flag.Bool("headless", false, "Run in headless mode for testing")
		testFrames = flag.Int("test-frames", 600, "Number of frames to run in headless mode")
	)

	flag.Usage = func() {
		fmt.Printf("Usage: %s [options] <rom_file>\n\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println("\nControls:")
		fmt.Println("  Z - A button")
		fmt.Println("  X - B button")
		fmt.Println("  A - Select")
		fmt.Println("  S - Start")
		fmt.Println("  Arrow keys - D-pad")
		fmt.Println("  ESC - Quit")
	}

	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	romFile := flag.Arg(0)

	gate := logger.NewGate()
	gate.CPU = *cpuLog
	gate.PPU = *ppuLog
	gate.APU = *apuLog
	gate.Mapper = *mapperLog

	glog.Infof("GoNES Emulator starting...")

	if _, err := os.Stat(romFile); os.IsNotExist(err) {
		log.Fatalf("ROM file not found: %s", romFile)
	}

	file, err := os.Open(romFile)
	if err != nil {
		log.Fatalf("Failed to open ROM file: %v", err)
	}
	defer file.Close()

	cart, err := cartridge.LoadFromReader(file)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	mapperNumber := (cart.Header.Flags6 >> 4) | (cart.Header.Flags7 & 0xF0)

	glog.Infof("Loaded ROM: %s", filepath.Base(romFile))
	glog.Infof("Mapper: %d", mapperNumber)
	glog.Infof("PRG ROM: %d KB", len(cart.PRGROM)/1024)
	if len(cart.CHRROM) > 0 {
		glog.Infof("CHR ROM: %d KB", len(cart.CHRROM)/1024)
	} else {
		glog.Infof("CHR RAM: %d KB", len(cart.CHRRAM)/1024)
	}

	nesSystem := nes.NewNESWithLogGate(gate)
	nesSystem.LoadCartridge(cart)
	nesSystem.Reset()
	glog.Infof("NES system initialized")

	if *headless {
		runHeadless(nesSystem, *testFrames)
	} else {
		nesGUI, err := gui.NewNESGUI(nesSystem)
		if err != nil {
			log.Fatalf("Failed to create GUI: %v", err)
		}
		defer nesGUI.Destroy()

		glog.Infof("Starting emulator...")
		nesGUI.Run()
		glog.Infof("Emulator stopped")
	}
}

func runHeadless(nesSystem *nes.NES, maxFrames int) {
	glog.Infof("Starting headless mode for %d frames", maxFrames)

	startTime := time.Now()
	for frame := 0; frame < maxFrames; frame++ {
		nesSystem.StepFrame()
	}
	elapsed := time.Since(startTime)
	glog.Infof("Headless execution completed in %v", elapsed)

	frameBuffer := nesSystem.GetDisplayFramebufferRaw()
	analyzeFrameBuffer(frameBuffer, maxFrames-1)
}

func saveFrameBuffer(frameBuffer []uint32, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		glog.Errorf("Error creating file %s: %v", filename, err)
		return
	}
	defer file.Close()

	for _, pixel := range frameBuffer {
		file.Write([]byte{
			byte(pixel >> 24),
			byte(pixel >> 16),
			byte(pixel >> 8),
			byte(pixel),
		})
	}

	glog.Infof("Frame buffer saved: %s (%d bytes)", filename, len(frameBuffer)*4)
}

func analyzeFrameBuffer(frameBuffer []uint32, frame int) {
	pixelCounts := make(map[uint32]int)
	totalPixels := len(frameBuffer)

	for _, pixel := range frameBuffer {
		pixelCounts[pixel]++
	}

	glog.Infof("Frame %d analysis:", frame)
	glog.Infof("  Total pixels: %d", totalPixels)
	glog.Infof("  Unique colors: %d", len(pixelCounts))

	for color, count := range pixelCounts {
		percentage := float64(count) / float64(totalPixels) * 100
		if percentage > 1.0 {
			glog.Infof("  Color 0x%08X: %d pixels (%.1f%%)", color, count, percentage)
		}
	}

	nonBgCount := 0
	for color, count := range pixelCounts {
		if color != 0xFF050505 {
			nonBgCount += count
		}
	}

	if nonBgCount > 0 {
		glog.Infof("  Non-background pixels: %d (%.1f%%)",
			nonBgCount, float64(nonBgCount)/float64(totalPixels)*100)
	} else {
		glog.Infof("  All pixels are background color")
	}
}

func countNonBackgroundPixels(frameBuffer []uint32) int {
	count := 0
	bgColor := uint32(0xFF050505)
	blackColor := uint32(0xFF000000)
	zeroColor := uint32(0x00000000)

	for _, pixel := range frameBuffer {
		if pixel != bgColor && pixel != blackColor && pixel != zeroColor {
			count++
		}
	}
	return count
}
