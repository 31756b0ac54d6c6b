package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kaelbran/nescore/pkg/cartridge"
	"github.com/kaelbran/nescore/pkg/cartridge/mapper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: rom_analyzer <rom_file>")
		os.Exit(1)
	}

	romFile := os.Args[1]

	file, err := os.Open(romFile)
	if err != nil {
		log.Fatalf("Failed to open ROM file: %v", err)
	}
	defer file.Close()

	cart, err := cartridge.LoadFromReader(file)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	fmt.Println("=== ROM Analysis ===")
	fmt.Printf("File: %s\n", romFile)
	fmt.Println("\n=== Header Information ===")
	fmt.Printf("Magic: %s (0x%02X%02X%02X%02X)\n",
		string(cart.Header.Magic[:]), cart.Header.Magic[0], cart.Header.Magic[1], cart.Header.Magic[2], cart.Header.Magic[3])
	fmt.Printf("PRG ROM Size: %d units (%d KB)\n", cart.Header.PRGROMSize, int(cart.Header.PRGROMSize)*16)
	fmt.Printf("CHR ROM Size: %d units (%d KB)\n", cart.Header.CHRROMSize, int(cart.Header.CHRROMSize)*8)
	fmt.Printf("Flags6: 0x%02X\n", cart.Header.Flags6)
	fmt.Printf("Flags7: 0x%02X\n", cart.Header.Flags7)
	fmt.Printf("Flags8: 0x%02X\n", cart.Header.Flags8)
	fmt.Printf("Flags9: 0x%02X\n", cart.Header.Flags9)
	fmt.Printf("Flags10: 0x%02X\n", cart.Header.Flags10)

	mapperNumber := (cart.Header.Flags6 >> 4) | (cart.Header.Flags7 & 0xF0)
	fmt.Println("\n=== Mapper Information ===")
	fmt.Printf("Mapper Number: %d\n", mapperNumber)

	fmt.Println("\n=== ROM Configuration ===")
	fmt.Printf("Trainer Present: %v\n", cart.Header.Flags6&0x04 != 0)
	fmt.Printf("Battery Backed: %v\n", cart.Header.Flags6&0x02 != 0)
	fmt.Printf("Four Screen VRAM: %v\n", cart.Header.Flags6&0x08 != 0)

	if cart.Header.Flags6&0x08 != 0 {
		fmt.Println("Mirroring: Four Screen")
	} else if cart.Header.Flags6&0x01 != 0 {
		fmt.Println("Mirroring: Vertical")
	} else {
		fmt.Println("Mirroring: Horizontal")
	}

	fmt.Println("\n=== Memory Configuration ===")
	fmt.Printf("PRG ROM: %d bytes (0x%04X)\n", len(cart.PRGROM), len(cart.PRGROM))
	if len(cart.CHRROM) > 0 {
		fmt.Printf("CHR ROM: %d bytes (0x%04X)\n", len(cart.CHRROM), len(cart.CHRROM))
	}
	if len(cart.CHRRAM) > 0 {
		fmt.Printf("CHR RAM: %d bytes (0x%04X)\n", len(cart.CHRRAM), len(cart.CHRRAM))
	}
	if len(cart.PRGRAM) > 0 {
		fmt.Printf("PRG RAM: %d bytes (0x%04X)\n", len(cart.PRGRAM), len(cart.PRGRAM))
	}

	if mapperNumber == 7 {
		fmt.Println("\n=== AxROM (Mapper 7) Specific Information ===")
		if m7, ok := cart.Mapper.(*mapper.Mapper7); ok {
			fmt.Printf("Current PRG Bank: %d (32 KB)\n", m7.PRGBank())
			fmt.Printf("Current Nametable: %d\n", m7.NametableSelect())
			fmt.Printf("PRG Banks (32KB each): %d\n", len(cart.PRGROM)/32768)
		}
	}

	fmt.Println("\n=== Raw Header Dump ===")
	fmt.Println("00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F")
	headerBytes := []uint8{
		cart.Header.Magic[0], cart.Header.Magic[1], cart.Header.Magic[2], cart.Header.Magic[3],
		cart.Header.PRGROMSize, cart.Header.CHRROMSize, cart.Header.Flags6, cart.Header.Flags7,
		cart.Header.Flags8, cart.Header.Flags9, cart.Header.Flags10,
		cart.Header.Padding[0], cart.Header.Padding[1], cart.Header.Padding[2], cart.Header.Padding[3], cart.Header.Padding[4],
	}
	for i, b := range headerBytes {
		fmt.Printf("%02X ", b)
		if (i+1)%16 == 0 {
			fmt.Println()
		}
	}
	if len(headerBytes)%16 != 0 {
		fmt.Println()
	}
}
