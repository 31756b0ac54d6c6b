package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/kaelbran/nescore/pkg/cartridge"
	"github.com/kaelbran/nescore/pkg/cartridge/mapper"
	"github.com/kaelbran/nescore/pkg/nes"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: headless_debug <rom_file> [frames]")
		os.Exit(1)
	}

	romFile := os.Args[1]
	maxFrames := 10
	if len(os.Args) >= 3 {
		fmt.Sscanf(os.Args[2], "%d", &maxFrames)
	}

	flag.Parse()
	defer glog.Flush()

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
	glog.Infof("=== Headless Debug Mode ===")
	glog.Infof("ROM: %s", romFile)
	glog.Infof("Mapper: %d", mapperNumber)
	glog.Infof("Max frames to run: %d", maxFrames)

	nesSystem := nes.NewNES()
	nesSystem.LoadCartridge(cart)
	nesSystem.Reset()

	glog.Infof("=== Initial State ===")
	glog.Infof("Frame: %d", nesSystem.GetFrame())
	glog.Infof("Cycles: %d", nesSystem.Cycles)

	if mapperNumber == 7 {
		printMapper7State(cart.Mapper, 0)
	}

	glog.Infof("=== Starting Emulation ===")
	startTime := time.Now()

	for i := 0; i < maxFrames; i++ {
		frameStart := time.Now()

		nesSystem.StepFrame()

		frameTime := time.Since(frameStart)
		glog.Infof("Frame %d completed in %v", nesSystem.GetFrame(), frameTime)
		glog.Infof("  Total cycles: %d", nesSystem.Cycles)

		if i == 0 {
			printPPUState(nesSystem)
		}

		if mapperNumber == 7 && (i+1)%3 == 0 {
			printMapper7State(cart.Mapper, nesSystem.GetFrame())
		}

		framebuffer := nesSystem.GetFramebuffer()
		nonZeroPixels := 0
		for j := 0; j < len(framebuffer); j++ {
			if framebuffer[j] != 0 {
				nonZeroPixels++
			}
		}
		glog.Infof("  Non-zero pixels in framebuffer: %d", nonZeroPixels)

		if i == maxFrames-1 {
			glog.Infof("  Saving final framebuffer...")
			saveFramebuffer(framebuffer, fmt.Sprintf("debug_frame_%d.raw", nesSystem.GetFrame()))
		}
	}

	totalTime := time.Since(startTime)
	glog.Infof("=== Final Results ===")
	glog.Infof("Completed %d frames in %v", nesSystem.GetFrame(), totalTime)
	glog.Infof("Average frame time: %v", totalTime/time.Duration(maxFrames))
	glog.Infof("Final cycle count: %d", nesSystem.Cycles)

	if mapperNumber == 7 {
		glog.Infof("=== Final Mapper 7 State ===")
		printMapper7State(cart.Mapper, nesSystem.GetFrame())
	}
}

func printMapper7State(m mapper.Mapper, frame uint64) {
	if m7, ok := m.(*mapper.Mapper7); ok {
		glog.Infof("--- Mapper 7 State (Frame %d) ---", frame)
		glog.Infof("  PRG Bank: %d, Nametable: %d", m7.PRGBank(), m7.NametableSelect())
	}
}

func printPPUState(nesSystem *nes.NES) {
	glog.Infof("  PPU State:")
	glog.Infof("    Frame: %d, Scanline: %d, Cycle: %d",
		nesSystem.PPU.Frame, nesSystem.PPU.Scanline, nesSystem.PPU.Cycle)
	glog.Infof("    PPUCTRL: 0x%02X, PPUMASK: 0x%02X, PPUSTATUS: 0x%02X",
		nesSystem.PPU.PPUCTRL, nesSystem.PPU.PPUMASK, nesSystem.PPU.PPUSTATUS)

	bgEnabled := nesSystem.PPU.PPUMASK&0x08 != 0
	spriteEnabled := nesSystem.PPU.PPUMASK&0x10 != 0
	glog.Infof("    Rendering: BG=%v, Sprites=%v", bgEnabled, spriteEnabled)

	nmiEnabled := nesSystem.PPU.PPUCTRL&0x80 != 0
	glog.Infof("    NMI Enabled: %v, NMI Requested: %v", nmiEnabled, nesSystem.PPU.NMIRequested)
}

func saveFramebuffer(framebuffer []uint8, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		glog.Errorf("Error creating framebuffer file: %v", err)
		return
	}
	defer file.Close()

	_, err = file.Write(framebuffer)
	if err != nil {
		glog.Errorf("Error writing framebuffer: %v", err)
		return
	}

	glog.Infof("  Framebuffer saved to %s (%d bytes)", filename, len(framebuffer))
}
