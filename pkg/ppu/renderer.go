package ppu

// TileData represents an 8x8 pixel tile
type TileData struct {
	LowByte  uint8 // Low bit plane
	HighByte uint8 // High bit plane
}

// SpriteData represents sprite attribute data
type SpriteData struct {
	Y          uint8 // Y position - 1
	TileIndex  uint8 // Tile index
	Attributes uint8 // Attributes (palette, priority, flip)
	X          uint8 // X position
}

// BackgroundTile represents a background tile with attributes
type BackgroundTile struct {
	TileIndex  uint8
	Attributes uint8
	PatternLo  uint8
	PatternHi  uint8
}

// SpriteInfo represents a sprite with its OAM index
type SpriteInfo struct {
	SpriteData
	OAMIndex int // Original index in OAM (for sprite 0 detection)
}

// Sprite attribute flags
const (
	SpriteFlipHorizontal = 0x40
	SpriteFlipVertical   = 0x80
	SpritePriority       = 0x20 // 0=front of background, 1=behind background
	SpritePaletteMask    = 0x03
)

// tileCache holds the last-fetched background tile so consecutive pixels in
// the same 8x8 cell don't re-walk the nametable/attribute/pattern chain.
type tileCache struct {
	valid      bool
	attributes uint8
	patternLo  uint8
	patternHi  uint8
	tileX      int
	tileY      int
}

// fetchBackgroundTileWithScroll fetches tile data for background rendering
// using the v register's coarse/fine scroll fields.
func (p *PPU) fetchBackgroundTileWithScroll(tileX, tileY, pixelY int) BackgroundTile {
	coarseX := int(p.v & 0x1F)
	coarseY := int((p.v >> 5) & 0x1F)

	fineY := int((p.v >> 12) & 0x07)
	effectiveTileY := tileY
	if (pixelY + fineY) >= 8 {
		effectiveTileY++
	}

	scrolledTileX := coarseX + tileX
	scrolledTileY := coarseY + effectiveTileY

	nameTableX := 0
	nameTableY := 0
	if scrolledTileX >= 32 {
		nameTableX = 1
		scrolledTileX -= 32
	}
	if scrolledTileY >= 30 {
		nameTableY = 1
		scrolledTileY -= 30
	}

	baseNTX := int(p.v>>10) & 1
	baseNTY := int(p.v>>11) & 1
	finalNTX := (baseNTX + nameTableX) % 2
	finalNTY := (baseNTY + nameTableY) % 2

	nameTableIndex := finalNTY*2 + finalNTX
	nameTableBase := uint16(0x2000) + uint16(nameTableIndex)*0x400
	nameTableAddr := nameTableBase + uint16(scrolledTileY*32+scrolledTileX)

	tileIndex := p.readVRAM(nameTableAddr)

	attrAddr := nameTableBase + 0x3C0 + uint16((scrolledTileY/4)*8+(scrolledTileX/4))
	attrByte := p.readVRAM(attrAddr)
	attrShift := ((scrolledTileY & 2) * 2) + ((scrolledTileX & 2) / 2 * 2)
	attributes := (attrByte >> attrShift) & 0x03

	patternTableBase := uint16(0x0000)
	if p.PPUCTRL&PPUCTRLBGTable != 0 {
		patternTableBase = 0x1000
	}

	tileAddr := patternTableBase + uint16(tileIndex)*16
	adjustedPixelY := (pixelY + fineY) % 8
	patternLo := p.readVRAM(tileAddr + uint16(adjustedPixelY))
	patternHi := p.readVRAM(tileAddr + uint16(adjustedPixelY) + 8)

	return BackgroundTile{
		TileIndex:  tileIndex,
		Attributes: attributes,
		PatternLo:  patternLo,
		PatternHi:  patternHi,
	}
}

// getPixelColor extracts pixel color from tile pattern data
func getPixelColor(patternLo, patternHi uint8, pixelX int) uint8 {
	bitPos := 7 - pixelX
	lowBit := (patternLo >> bitPos) & 1
	highBit := (patternHi >> bitPos) & 1
	return (highBit << 1) | lowBit
}

// isBackgroundPixelOpaque checks if background pixel is opaque
func (p *PPU) isBackgroundPixelOpaque(x, y int) bool {
	if p.PPUMASK&PPUMASKBGShow == 0 {
		return false
	}
	if x < 8 && p.PPUMASK&PPUMASKBGLeft == 0 {
		return false
	}

	adjustedX := x + int(p.x)
	tileX := adjustedX / 8
	pixelX := adjustedX % 8
	tileY := y / 8
	pixelY := y % 8

	tile := p.fetchBackgroundTileWithScroll(tileX, tileY, pixelY)
	return getPixelColor(tile.PatternLo, tile.PatternHi, pixelX) != 0
}

// renderBackgroundPixelCached renders a single background pixel, reusing the
// last-fetched tile while consecutive pixels fall in the same 8x8 cell.
func (p *PPU) renderBackgroundPixelCached(x, y int) uint32 {
	if p.PPUMASK&PPUMASKBGShow == 0 {
		return p.PaletteManager.GetBackgroundColor(0, 0)
	}
	if x < 8 && p.PPUMASK&PPUMASKBGLeft == 0 {
		return p.PaletteManager.GetBackgroundColor(0, 0)
	}

	adjustedX := x + int(p.x)
	tileX := adjustedX / 8
	pixelX := adjustedX % 8
	tileY := y / 8
	pixelY := y % 8

	if !p.bgCache.valid || p.bgCache.tileX != tileX || p.bgCache.tileY != tileY {
		tile := p.fetchBackgroundTileWithScroll(tileX, tileY, pixelY)
		p.bgCache = tileCache{
			valid:      true,
			attributes: tile.Attributes,
			patternLo:  tile.PatternLo,
			patternHi:  tile.PatternHi,
			tileX:      tileX,
			tileY:      tileY,
		}
	}

	colorIndex := getPixelColor(p.bgCache.patternLo, p.bgCache.patternHi, pixelX)
	return p.PaletteManager.GetBackgroundColor(p.bgCache.attributes, colorIndex)
}

// fetchSpriteData evaluates OAM for the given scanline into a secondary-OAM
// equivalent, reproducing the hardware's sprite overflow bug: once eight
// in-range sprites are found, the evaluation continues scanning OAM with a
// broken increment that produces false-positive and false-negative
// overflow flags on real hardware, rather than a clean "ninth sprite" check.
func (p *PPU) fetchSpriteData(scanline int) []SpriteInfo {
	var sprites []SpriteInfo
	spriteHeight := 8
	if p.PPUCTRL&PPUCTRLSpriteSize != 0 {
		spriteHeight = 16
	}

	n := 0
	m := 0 // byte offset into the OAM entry; only drifts once secondary OAM is full
	for n < 64 {
		spriteY := int(p.OAM[n*4+m])
		if scanline >= spriteY && scanline < spriteY+spriteHeight {
			if len(sprites) < 8 {
				sprites = append(sprites, SpriteInfo{
					SpriteData: SpriteData{
						Y:          p.OAM[n*4],
						TileIndex:  p.OAM[n*4+1],
						Attributes: p.OAM[n*4+2],
						X:          p.OAM[n*4+3],
					},
					OAMIndex: n,
				})
			} else {
				// Secondary OAM is full: the byte read (at offset m) is
				// in range, so overflow is set even though no sprite is
				// added.
				p.PPUSTATUS |= PPUSTATUSOverflow
				break
			}
		} else if len(sprites) == 8 {
			// Hardware bug: with secondary OAM full, a miss advances m
			// as well as n, so later checks read the wrong byte as Y.
			m = (m + 1) & 3
		}
		n++
	}

	return sprites
}

// renderSpritePixel renders sprite pixels for a given position
func (p *PPU) renderSpritePixel(x, y int, sprites []SpriteInfo) (uint32, bool, bool) {
	if p.PPUMASK&PPUMASKSpriteShow == 0 {
		return 0x00000000, false, false
	}
	if x < 8 && p.PPUMASK&PPUMASKSpriteLeft == 0 {
		return 0x00000000, false, false
	}

	spriteHeight := 8
	if p.PPUCTRL&PPUCTRLSpriteSize != 0 {
		spriteHeight = 16
	}

	for _, sprite := range sprites {
		spriteX := int(sprite.X)
		spriteY := int(sprite.Y)

		if x >= spriteX && x < spriteX+8 && y >= spriteY && y < spriteY+spriteHeight {
			pixelX := x - spriteX
			pixelY := y - spriteY

			if sprite.Attributes&SpriteFlipHorizontal != 0 {
				pixelX = 7 - pixelX
			}
			if sprite.Attributes&SpriteFlipVertical != 0 {
				pixelY = (spriteHeight - 1) - pixelY
			}

			patternTableBase := uint16(0x0000)
			if p.PPUCTRL&PPUCTRLSpriteTable != 0 {
				patternTableBase = 0x1000
			}

			var tileAddr uint16
			if spriteHeight == 16 {
				tileIndex := sprite.TileIndex & 0xFE
				if pixelY >= 8 {
					tileIndex++
					pixelY -= 8
				}
				if sprite.TileIndex&1 != 0 {
					patternTableBase = 0x1000
				} else {
					patternTableBase = 0x0000
				}
				tileAddr = patternTableBase + uint16(tileIndex)*16 + uint16(pixelY)
			} else {
				tileAddr = patternTableBase + uint16(sprite.TileIndex)*16 + uint16(pixelY)
			}

			patternLo := p.readVRAM(tileAddr)
			patternHi := p.readVRAM(tileAddr + 8)
			colorIndex := getPixelColor(patternLo, patternHi, pixelX)

			if colorIndex != 0 {
				palette := sprite.Attributes & SpritePaletteMask
				color := p.PaletteManager.GetSpriteColor(palette, colorIndex)
				priority := sprite.Attributes&SpritePriority == 0
				sprite0Hit := sprite.OAMIndex == 0
				return color, priority, sprite0Hit
			}
		}
	}

	return 0x00000000, false, false
}

// renderPixel renders a single pixel combining background and sprites
func (p *PPU) renderPixel() {
	if p.Cycle < 0 || p.Cycle >= 256 {
		return
	}

	x := p.Cycle
	y := p.Scanline
	index := y*256 + x

	if !p.renderingEnabled() {
		p.FrameBuffer[index] = p.PaletteManager.GetBackgroundColor(0, 0)
		return
	}

	bgColor := p.renderBackgroundPixelCached(x, y)

	if len(p.currentSprites) == 0 {
		p.FrameBuffer[index] = bgColor
		return
	}

	spriteColor, spritePriority, sprite0Hit := p.renderSpritePixel(x, y, p.currentSprites)

	var finalColor uint32
	if spriteColor&0xFF000000 != 0 {
		bgOpaque := p.isBackgroundPixelOpaque(x, y)

		if spritePriority || !bgOpaque {
			finalColor = spriteColor
		} else {
			finalColor = bgColor
		}

		if sprite0Hit && p.PPUSTATUS&PPUSTATUSSprite0Hit == 0 && x != 255 {
			spriteEnabled := p.PPUMASK&PPUMASKSpriteShow != 0
			bgEnabled := p.PPUMASK&PPUMASKBGShow != 0
			leftClipped := x < 8 && (p.PPUMASK&(PPUMASKSpriteLeft|PPUMASKBGLeft)) != (PPUMASKSpriteLeft|PPUMASKBGLeft)

			if bgOpaque && spriteEnabled && bgEnabled && !leftClipped {
				p.PPUSTATUS |= PPUSTATUSSprite0Hit
			}
		}
	} else {
		finalColor = bgColor
	}

	p.FrameBuffer[index] = finalColor
}
